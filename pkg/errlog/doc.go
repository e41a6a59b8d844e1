// Package errlog annotates failed operations with their call site and logs
// them at the moment they fail.
//
// Records go to the process-wide collector in pkg/util/log, which discards
// everything until one is installed:
//
//	log.InitLogger(&log.Config{Level: log.LevelInfo, Format: "logfmt"})
//
// A fallible call is passed straight to Wrap and finished with Get, Msg or
// Msgf. On failure the error gains a "<file>:<line> => <message>" layer and
// the same text is logged, at error level unless At says otherwise:
//
//	func readConfig(path string) ([]byte, error) {
//		f, err := errlog.Wrap(os.Open(path)).Msgf("failed to open file %s", path)
//		if err != nil {
//			return nil, err
//		}
//		defer f.Close()
//		return errlog.Wrap(io.ReadAll(f)).At(errlog.Debug).Msg("failed to read config")
//	}
//
// Operations that only return an error use WrapErr:
//
//	if err := errlog.WrapErr(f.Sync()).Get(); err != nil {
//		return err
//	}
//
// Nothing is formatted, logged or looked up on the success path.
//
// The layers of a failure, minus the top one, can be listed with Backtrace or
// Causes:
//
//	for _, cause := range errlog.Backtrace(readConfig(path)) {
//		errlog.Log(errlog.Error, cause)
//	}
package errlog
