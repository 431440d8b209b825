package metrics

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/uber-go/tally/v6"
	"github.com/uber-go/tally/v6/prometheus"
	"go.uber.org/zap"
)

// NewMetricsReporter creates a root scope reporting to Prometheus and
// serves the /metrics endpoint on the given port.
func NewMetricsReporter(logger *zap.Logger, serviceName string, metricsPort int) (scope tally.Scope, closer io.Closer) {
	reporter := prometheus.NewReporter(prometheus.Options{})
	scope, closer = tally.NewRootScope(tally.ScopeOptions{
		Tags:            map[string]string{"service": serviceName},
		CachedReporter:  reporter,
		SanitizeOptions: &prometheus.DefaultSanitizerOpts,
	}, 10*time.Second)
	mux := http.NewServeMux()
	mux.Handle("/metrics", reporter.HTTPHandler())
	go func() {
		if err := http.ListenAndServe(fmt.Sprintf(":%d", metricsPort), mux); err != nil {
			logger.Error("Metrics handler stopped", zap.Error(err))
		}
	}()

	scope.Counter("service_started").Inc(1)
	return scope, closer
}

// EndpointMetrics defines an endpoint metrics.
type EndpointMetrics struct {
	Calls                 tally.Counter
	InvalidArgumentErrors tally.Counter
	NotFoundErrors        tally.Counter
	ConflictErrors        tally.Counter
	InternalErrors        tally.Counter
	Successes             tally.Counter
	Latency               tally.Timer
}

// NewEndpointMetrics creates a new endpoint metrics.
func NewEndpointMetrics(scope tally.Scope, handler string, endpoint string) *EndpointMetrics {
	scope = scope.Tagged(map[string]string{
		"component": "handler",
		"handler":   handler,
		"endpoint":  endpoint,
	})
	errorCounter := func(kind string) tally.Counter {
		return scope.Tagged(map[string]string{"error": kind}).Counter("error")
	}
	return &EndpointMetrics{
		Calls:                 scope.Counter("calls"),
		InvalidArgumentErrors: errorCounter("invalid_argument"),
		NotFoundErrors:        errorCounter("not_found"),
		ConflictErrors:        errorCounter("conflict"),
		InternalErrors:        errorCounter("internal"),
		Successes:             scope.Counter("success"),
		Latency:               scope.Timer("latency"),
	}
}
