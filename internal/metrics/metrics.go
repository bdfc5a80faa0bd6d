package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "dblogger"

type Counter interface {
	Inc(labels ...string)
}

type Counters struct {
	RecordsWritten Counter
	Queries        Counter

	HTTPRequests Counter
}

type PrometheusCounter struct {
	counter *prometheus.CounterVec
}

func newCounterVec(name, help string, labels []string) *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      name,
		Help:      help,
	}, labels)
}

func NewPrometheusCounter(reg prometheus.Registerer, name, help string, labels []string) *PrometheusCounter {
	c := &PrometheusCounter{counter: newCounterVec(name, help, labels)}
	reg.MustRegister(c.counter)
	return c
}

func (p *PrometheusCounter) Inc(labels ...string) {
	p.counter.WithLabelValues(labels...).Inc()
}

func newCounters(reg prometheus.Registerer) *Counters {
	return &Counters{
		RecordsWritten: NewPrometheusCounter(reg,
			"records_written_total",
			"Log records handed to storage, by level and outcome",
			[]string{"level", "status"},
		),
		Queries: NewPrometheusCounter(reg,
			"queries_total",
			"Log queries, by outcome",
			[]string{"status"},
		),
		HTTPRequests: NewPrometheusCounter(reg,
			"http_requests_total",
			"Admin API requests",
			[]string{"method", "status"},
		),
	}
}

var (
	defaultOnce     sync.Once
	defaultCounters *Counters
)

// New returns the process wide counters registered on the default registerer.
func New() *Counters {
	defaultOnce.Do(func() {
		defaultCounters = newCounters(prometheus.DefaultRegisterer)
	})
	return defaultCounters
}

// NewTestCounters registers on a private registry so tests may build any number of them.
func NewTestCounters() *Counters {
	return newCounters(prometheus.NewRegistry())
}
