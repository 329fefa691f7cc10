package webcall

import (
	"os"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// scope is the instrumentation scope name for OpenTelemetry.
const scope = "github.com/kroma-labs/webcall-go"

// internalConfig holds resolved client configuration.
type internalConfig struct {
	logger    zerolog.Logger
	debug     bool
	userAgent string
	requestID bool

	tracerProvider trace.TracerProvider
	meterProvider  metric.MeterProvider

	tracer trace.Tracer
	meter  metric.Meter
}

// Option configures a Client.
type Option func(*internalConfig)

func newConfig(opts ...Option) *internalConfig {
	cfg := &internalConfig{
		logger:         zerolog.New(os.Stdout).With().Timestamp().Logger(),
		tracerProvider: otel.GetTracerProvider(),
		meterProvider:  otel.GetMeterProvider(),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	cfg.tracer = cfg.tracerProvider.Tracer(scope)
	cfg.meter = cfg.meterProvider.Meter(scope)
	return cfg
}

// WithLogger sets the zerolog logger used for debug output.
// If not called, a timestamped logger writing to stdout is used.
func WithLogger(logger zerolog.Logger) Option {
	return func(cfg *internalConfig) {
		cfg.logger = logger
	}
}

// WithDebug enables request/response debug logging.
func WithDebug(enabled bool) Option {
	return func(cfg *internalConfig) {
		cfg.debug = enabled
	}
}

// WithUserAgent sets a User-Agent header sent on every request.
func WithUserAgent(ua string) Option {
	return func(cfg *internalConfig) {
		cfg.userAgent = ua
	}
}

// WithRequestID mints a fresh X-Request-Id header per request, for
// correlating client calls with downstream logs.
func WithRequestID(enabled bool) Option {
	return func(cfg *internalConfig) {
		cfg.requestID = enabled
	}
}

// WithTracerProvider sets a custom OpenTelemetry TracerProvider.
// If not called, the global provider from otel.GetTracerProvider() is used.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(cfg *internalConfig) {
		cfg.tracerProvider = tp
	}
}

// WithMeterProvider sets a custom OpenTelemetry MeterProvider.
// If not called, the global provider from otel.GetMeterProvider() is used.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(cfg *internalConfig) {
		cfg.meterProvider = mp
	}
}
