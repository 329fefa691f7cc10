package webcall

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Handler consumes the response head and body stream of one exchange. Its
// result becomes the call's result; its error propagates unchanged. The
// body reader is only valid until the handler returns - the connection is
// closed right after, whether or not the body was read.
type Handler[T any] func(resp *Response, body io.Reader) (T, error)

// Client issues HTTP exchanges over a caller-supplied Transport.
//
// A Client holds no connection state: every call opens its own connection
// and closes it before returning. Concurrent calls simply get independent
// connections.
type Client struct {
	transport Transport
	cfg       *internalConfig
	metrics   *callMetrics
}

// New creates a Client that dispatches over transport.
//
// Example:
//
//	client := webcall.New(transport,
//	    webcall.WithUserAgent("inventory-sync/1.2"),
//	    webcall.WithRequestID(true),
//	)
func New(transport Transport, opts ...Option) *Client {
	cfg := newConfig(opts...)

	m, err := newCallMetrics(cfg.meter)
	if err != nil {
		cfg.logger.Warn().Err(err).Msg("webcall: metric instruments unavailable")
		m = nil
	}

	return &Client{
		transport: transport,
		cfg:       cfg,
		metrics:   m,
	}
}

// Get issues a GET with an Accept: */* header and no body, and hands the
// response to handle.
func Get[T any](ctx context.Context, c *Client, rawurl string, handle Handler[T]) (T, error) {
	return exchange(ctx, c, http.MethodGet, rawurl, "", nil, handle)
}

// Post issues a POST whose body is pushed by produce. The body is
// materialized in memory first so the request carries an exact
// Content-Length.
func Post[T any](
	ctx context.Context,
	c *Client,
	rawurl, contentType string,
	produce Producer,
	handle Handler[T],
) (T, error) {
	return exchange(ctx, c, http.MethodPost, rawurl, contentType, produce, handle)
}

// PostForm issues a POST of percent-encoded form fields. Field order is
// preserved and duplicate names are kept.
func PostForm[T any](
	ctx context.Context,
	c *Client,
	rawurl string,
	fields []Field,
	handle Handler[T],
) (T, error) {
	produce := func(w io.Writer) error {
		_, err := io.WriteString(w, EncodeFields(fields))
		return err
	}
	return exchange(ctx, c, http.MethodPost, rawurl, "application/x-www-form-urlencoded", produce, handle)
}

// Put issues a PUT with the same body handling as Post.
func Put[T any](
	ctx context.Context,
	c *Client,
	rawurl, contentType string,
	produce Producer,
	handle Handler[T],
) (T, error) {
	return exchange(ctx, c, http.MethodPut, rawurl, contentType, produce, handle)
}

// exchange is the shared skeleton of all entry points:
// resolve -> open -> materialize -> build -> send -> receive -> handle,
// with the connection closed exactly once on every exit path.
func exchange[T any](
	ctx context.Context,
	c *Client,
	method, rawurl, contentType string,
	produce Producer,
	handle Handler[T],
) (result T, err error) {
	start := time.Now()

	ctx, span := c.startSpan(ctx, method, rawurl)
	defer func() {
		if err != nil {
			setSpanError(span, err)
		}
		span.End()
	}()

	var bodySize int64
	defer func() {
		c.metrics.recordCall(ctx, method, time.Since(start), bodySize, err)
	}()

	loc, err := ResolveLocator(rawurl)
	if err != nil {
		return result, err
	}

	conn, err := c.connect(ctx, loc)
	if err != nil {
		return result, err
	}
	defer func() {
		// The in-flight error wins over a close error.
		if cerr := conn.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	var body io.Reader
	hdr := c.baseHeader()
	if produce == nil {
		hdr = append(hdr, HeaderField{Name: "Accept", Value: "*/*"})
	} else {
		var replay *bytes.Reader
		replay, bodySize, err = Materialize(produce)
		if err != nil {
			return result, err
		}
		body = replay
		hdr = append(hdr,
			HeaderField{Name: "Content-Type", Value: contentType},
			HeaderField{Name: "Content-Length", Value: strconv.FormatInt(bodySize, 10)},
		)
	}

	if c.cfg.debug {
		logRequest(c.cfg.logger, method, loc, bodySize)
	}

	req, err := conn.Request(method, loc.Target(), hdr)
	if err != nil {
		return result, err
	}

	if err = conn.Send(req, body); err != nil {
		return result, err
	}

	resp, respBody, err := conn.Receive()
	if err != nil {
		return result, err
	}

	setSpanResponse(span, resp)
	if c.cfg.debug {
		logResponse(c.cfg.logger, resp, time.Since(start))
	}

	return handle(resp, respBody)
}

// connect gates the scheme and opens the connection. The switch is the one
// place that knows which schemes have a transport; if TLS support arrives,
// the default-port logic in ResolveLocator has to change with it.
func (c *Client) connect(ctx context.Context, loc Locator) (Conn, error) {
	switch loc.Scheme {
	case SchemeHTTP:
		return c.transport.Open(ctx, loc.Host, loc.Port)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedScheme, loc.Scheme)
	}
}

// baseHeader returns the client-wide header fields for one request.
func (c *Client) baseHeader() Header {
	var hdr Header
	if c.cfg.userAgent != "" {
		hdr = append(hdr, HeaderField{Name: "User-Agent", Value: c.cfg.userAgent})
	}
	if c.cfg.requestID {
		hdr = append(hdr, HeaderField{Name: "X-Request-Id", Value: uuid.NewString()})
	}
	return hdr
}
