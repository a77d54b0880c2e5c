// Package metrics holds the OpenTelemetry instruments shared by the bot, the
// leave service and the push worker, exported to Prometheus.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

const meterName = "leavebot"

// NewMeterProvider returns a meter provider whose readings are exported to
// registerer. A nil registerer means prometheus.DefaultRegisterer.
func NewMeterProvider(registerer prometheus.Registerer) (*sdkmetric.MeterProvider, error) {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	exp, err := otelprom.New(otelprom.WithRegisterer(registerer))
	if err != nil {
		return nil, fmt.Errorf("could not create otel exporter: %w", err)
	}

	return sdkmetric.NewMeterProvider(sdkmetric.WithReader(exp)), nil
}

// Instruments groups the application's counters and histograms.
type Instruments struct {
	// Events counts inbound webhook events by "intent".
	Events metric.Int64Counter
	// LeaveSubmissions counts leave submissions by "result" (accepted, rejected).
	LeaveSubmissions metric.Int64Counter
	// Pushes counts push deliveries by "result" (sent, retry, failed).
	Pushes metric.Int64Counter
	// PushLatency records the duration of push calls in seconds.
	PushLatency metric.Float64Histogram
}

// NewInstruments creates the instruments on mp.
func NewInstruments(mp metric.MeterProvider) (*Instruments, error) {
	meter := mp.Meter(meterName)

	events, err := meter.Int64Counter("leavebot.events",
		metric.WithDescription("Webhook events handled, by intent."))
	if err != nil {
		return nil, fmt.Errorf("could not create events counter: %w", err)
	}
	submissions, err := meter.Int64Counter("leavebot.leave.submissions",
		metric.WithDescription("Leave submissions, by result."))
	if err != nil {
		return nil, fmt.Errorf("could not create submissions counter: %w", err)
	}
	pushes, err := meter.Int64Counter("leavebot.pushes",
		metric.WithDescription("Push message deliveries, by result."))
	if err != nil {
		return nil, fmt.Errorf("could not create pushes counter: %w", err)
	}
	latency, err := meter.Float64Histogram("leavebot.push.duration",
		metric.WithDescription("Push message call latency."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(DefaultBuckets...))
	if err != nil {
		return nil, fmt.Errorf("could not create push latency histogram: %w", err)
	}

	return &Instruments{
		Events:           events,
		LeaveSubmissions: submissions,
		Pushes:           pushes,
		PushLatency:      latency,
	}, nil
}

// Noop returns instruments that record nothing. Used by tests and commands
// that do not serve metrics.
func Noop() *Instruments {
	i, _ := NewInstruments(noop.NewMeterProvider())

	return i
}
