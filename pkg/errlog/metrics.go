package errlog

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var metricAnnotatedErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "errlog",
	Name:      "annotated_errors_total",
	Help:      "The total number of failed operations annotated with their call site, by log level.",
}, []string{"level"})
