package webcall

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// startSpan opens a client-kind span covering one full exchange.
func (c *Client) startSpan(ctx context.Context, method, rawurl string) (context.Context, trace.Span) {
	return c.cfg.tracer.Start(ctx, "HTTP "+method,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", method),
			attribute.String("url.full", rawurl),
		),
	)
}

// setSpanError records err on the span and marks the span failed.
func setSpanError(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}

// setSpanResponse records the response status on the span.
func setSpanResponse(span trace.Span, resp *Response) {
	span.SetAttributes(attribute.Int("http.response.status_code", resp.Status))
}
