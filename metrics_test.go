package webcall

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

// collect gathers the metrics recorded through reader, keyed by name.
func collect(t *testing.T, reader *sdkmetric.ManualReader) map[string]metricdata.Metrics {
	t.Helper()

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	out := make(map[string]metricdata.Metrics)
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			out[m.Name] = m
		}
	}
	return out
}

func TestCallMetrics_Success(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	defer mp.Shutdown(context.Background())

	mock := NewMockTransport()
	client := New(mock, WithMeterProvider(mp))

	produce := func(w io.Writer) error {
		_, err := io.WriteString(w, "payload")
		return err
	}
	_, err := Post(context.Background(), client, "http://example.com/", "text/plain", produce, readBody)
	require.NoError(t, err)

	metrics := collect(t, reader)

	duration, ok := metrics["http.client.request.duration"].Data.(metricdata.Histogram[float64])
	require.True(t, ok)
	require.Len(t, duration.DataPoints, 1)
	assert.EqualValues(t, 1, duration.DataPoints[0].Count)

	bodySize, ok := metrics["http.client.request.body.size"].Data.(metricdata.Histogram[int64])
	require.True(t, ok)
	require.Len(t, bodySize.DataPoints, 1)
	assert.EqualValues(t, 7, bodySize.DataPoints[0].Sum)

	// No error counter data on a clean call.
	_, recorded := metrics["http.client.errors"]
	assert.False(t, recorded)
}

func TestCallMetrics_Error(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	defer mp.Shutdown(context.Background())

	mock := NewMockTransport().StubOpenError(errors.New("connection refused"))
	client := New(mock, WithMeterProvider(mp))

	_, err := Get(context.Background(), client, "http://example.com/", readBody)
	require.Error(t, err)

	metrics := collect(t, reader)

	errCount, ok := metrics["http.client.errors"].Data.(metricdata.Sum[int64])
	require.True(t, ok)
	require.Len(t, errCount.DataPoints, 1)
	assert.EqualValues(t, 1, errCount.DataPoints[0].Value)
}
