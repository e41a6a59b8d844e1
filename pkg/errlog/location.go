package errlog

import (
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
)

// FileLocation returns the location of a caller as file:line. Depth follows
// the convention of runtime.Caller. The file is reduced to its trailing
// nameLen path components; 2 keeps the enclosing directory, which is usually
// enough to tell files apart.
func FileLocation(depth, nameLen int) string {
	_, file, line, ok := runtime.Caller(depth)
	if !ok {
		return "???:0"
	}
	file = filepath.ToSlash(file)
	if nameLen <= 1 {
		return filepath.Base(file) + ":" + strconv.Itoa(line)
	}

	parts := strings.Split(file, "/")
	if len(parts) > nameLen {
		parts = parts[len(parts)-nameLen:]
	}
	return strings.TrimPrefix(strings.Join(parts, "/"), "/") + ":" + strconv.Itoa(line)
}
