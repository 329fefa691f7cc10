package webcall

import (
	"context"
	"io"
	"strings"
)

// HeaderField is a single name/value header pair.
type HeaderField struct {
	Name  string
	Value string
}

// Header is an ordered list of header fields. Order is preserved on the
// wire.
type Header []HeaderField

// Get returns the value of the first field whose name matches
// case-insensitively, or "" if there is none.
func (h Header) Get(name string) string {
	for _, f := range h {
		if strings.EqualFold(f.Name, name) {
			return f.Value
		}
	}
	return ""
}

// Field is one form field for PostForm.
type Field struct {
	Name  string
	Value string
}

// Request is an opaque request handle minted by a Conn. webcall never
// inspects it; it only threads it from Conn.Request to Conn.Send.
type Request any

// Response is the parsed head of an HTTP response, produced by the
// transport and handed to the caller's handler untouched. webcall does not
// validate it.
type Response struct {
	Status int
	Reason string
	Header Header
}

// Conn is a single-exchange connection to an origin server. A Conn is
// owned by exactly one in-flight call; the dispatcher closes it exactly
// once, on every exit path.
type Conn interface {
	// Request builds a request for this connection. hdr order is
	// preserved on the wire.
	Request(method, target string, hdr Header) (Request, error)

	// Send transmits req. body may be nil for bodyless methods; when
	// non-nil it is read to completion before Send returns.
	Send(req Request, body io.Reader) error

	// Receive blocks until the response head is parsed. The returned
	// reader yields the response body and stays valid until Close.
	Receive() (*Response, io.Reader, error)

	// Close releases the connection.
	Close() error
}

// Transport opens connections to origin servers. Implementations own the
// wire protocol - framing, header serialization, body decoding - while
// webcall only sequences the exchange. Connections are never pooled or
// shared across calls.
type Transport interface {
	Open(ctx context.Context, host string, port int) (Conn, error)
}
