package webcall

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// callMetrics holds the metric instruments for webcall exchanges.
// A nil *callMetrics is a no-op, so a failed instrument registration
// degrades to an uninstrumented client instead of failing calls.
type callMetrics struct {
	// duration measures the full exchange duration in seconds, from
	// locator resolution to handler return.
	duration metric.Float64Histogram

	// requestBodySize measures materialized request bodies in bytes.
	requestBodySize metric.Int64Histogram

	// callErrors counts failed exchanges.
	callErrors metric.Int64Counter
}

// newCallMetrics creates and registers the metric instruments.
func newCallMetrics(meter metric.Meter) (*callMetrics, error) {
	m := &callMetrics{}
	var err error

	m.duration, err = meter.Float64Histogram(
		"http.client.request.duration",
		metric.WithDescription("Duration of webcall exchanges in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(
			0.005, 0.01, 0.025, 0.05, 0.075, 0.1, 0.25, 0.5, 0.75, 1, 2.5, 5, 7.5, 10,
		),
	)
	if err != nil {
		return nil, err
	}

	m.requestBodySize, err = meter.Int64Histogram(
		"http.client.request.body.size",
		metric.WithDescription("Size of materialized request bodies in bytes"),
		metric.WithUnit("By"),
		metric.WithExplicitBucketBoundaries(
			0, 100, 1024, 10*1024, 100*1024, 1024*1024, 10*1024*1024,
		),
	)
	if err != nil {
		return nil, err
	}

	m.callErrors, err = meter.Int64Counter(
		"http.client.errors",
		metric.WithDescription("Number of failed webcall exchanges"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return nil, err
	}

	return m, nil
}

// recordCall records the outcome of one exchange.
func (m *callMetrics) recordCall(
	ctx context.Context,
	method string,
	elapsed time.Duration,
	bodySize int64,
	err error,
) {
	if m == nil {
		return
	}

	attrs := metric.WithAttributes(attribute.String("http.request.method", method))

	m.duration.Record(ctx, elapsed.Seconds(), attrs)
	if bodySize > 0 {
		m.requestBodySize.Record(ctx, bodySize, attrs)
	}
	if err != nil {
		m.callErrors.Add(ctx, 1, attrs)
	}
}
