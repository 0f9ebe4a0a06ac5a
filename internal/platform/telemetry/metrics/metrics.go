package metrics

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

const namespace = "dicegoblin"

// Recorder owns a Prometheus registry and the Dice Goblin collectors.
type Recorder struct {
	registry *prometheus.Registry
	rolls    *prometheus.CounterVec
	dice     prometheus.Counter
	duration prometheus.Histogram
	requests *prometheus.CounterVec
}

// NewRecorder creates a Recorder with process and Go runtime collectors
// registered alongside the roll collectors.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		rolls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rolls_total",
			Help:      "Roll requests by result.",
		}, []string{"result"}),
		dice: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dice_sampled_total",
			Help:      "Dice sampled by accepted rolls.",
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "roll_duration_seconds",
			Help:      "Time spent parsing and evaluating a roll.",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10),
		}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "grpc_requests_total",
			Help:      "gRPC requests by method and status code.",
		}, []string{"method", "code"}),
	}
	r.registry.MustRegister(
		r.rolls,
		r.dice,
		r.duration,
		r.requests,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return r
}

// ObserveRoll records one roll. Dice are counted only for successful rolls.
func (r *Recorder) ObserveRoll(result string, dice int64, elapsed time.Duration) {
	r.rolls.WithLabelValues(result).Inc()
	if result == "ok" && dice > 0 {
		r.dice.Add(float64(dice))
	}
	r.duration.Observe(elapsed.Seconds())
}

// UnaryServerInterceptor counts unary requests by method and status code.
func (r *Recorder) UnaryServerInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		r.requests.WithLabelValues(info.FullMethod, status.Code(err).String()).Inc()
		return resp, err
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

// Registry exposes the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}
