package datacite

import (
	"errors"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// clientMetrics holds the collectors of an instrumented client. A nil
// *clientMetrics records nothing.
type clientMetrics struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

func newClientMetrics(reg prometheus.Registerer) (*clientMetrics, error) {
	if reg == nil {
		return nil, nil
	}

	requestsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "datacite_client_requests_total",
			Help: "Total number of DataCite API requests by request type and status.",
		},
		[]string{"request", "status"},
	)
	requestDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "datacite_client_request_duration_seconds",
			Help:    "Duration of DataCite API requests in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"request"},
	)

	var err error
	if requestsTotal, err = register(reg, requestsTotal); err != nil {
		return nil, err
	}
	if requestDuration, err = register(reg, requestDuration); err != nil {
		return nil, err
	}

	return &clientMetrics{requestsTotal: requestsTotal, requestDuration: requestDuration}, nil
}

// register adds c to reg, reusing the collector already registered by
// another client on the same registry
func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

// observe records one finished request. status is the HTTP status code, or
// zero for a transport failure.
func (m *clientMetrics) observe(request string, status int, start time.Time) {
	if m == nil {
		return
	}
	label := "error"
	if status > 0 {
		label = strconv.Itoa(status)
	}
	m.requestsTotal.WithLabelValues(request, label).Inc()
	m.requestDuration.WithLabelValues(request).Observe(time.Since(start).Seconds())
}
