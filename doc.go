// Package webcall is a convenience layer over a lower-level HTTP
// connection engine. It exposes four entry points - Get, Post, PostForm
// and Put - that resolve a target locator, open a transport connection,
// build and send a request, hand the response to a caller-supplied
// handler, and close the connection on every exit path.
//
// The wire protocol itself lives behind the Transport interface; webcall
// only sequences the exchange. Production code plugs in a real transport,
// tests plug in MockTransport.
//
// # Quick Start
//
//	client := webcall.New(transport)
//
//	body, err := webcall.Get(ctx, client, "http://example.com/health",
//	    func(resp *webcall.Response, body io.Reader) (string, error) {
//	        b, err := io.ReadAll(body)
//	        return string(b), err
//	    })
//
// # Request Bodies
//
// Post and Put take a Producer that pushes the body into a sink. The body
// is captured in memory, counted, and replayed with an exact
// Content-Length, since the transport needs the length before the first
// body byte goes out:
//
//	_, err := webcall.Post(ctx, client, "http://example.com/upload", "text/plain",
//	    func(w io.Writer) error {
//	        _, err := io.Copy(w, file)
//	        return err
//	    }, handler)
//
// PostForm synthesizes an application/x-www-form-urlencoded body from
// ordered name/value pairs, and PostJSON marshals a value as JSON.
//
// # Observability
//
// Each call emits an OpenTelemetry client span and duration/error metrics.
// WithDebug enables zerolog request/response logging. Both default to the
// global otel providers and are overridable per client:
//
//	client := webcall.New(transport,
//	    webcall.WithTracerProvider(tp),
//	    webcall.WithDebug(true),
//	)
package webcall
