package webcall

import (
	"context"
	"io"
	"strings"
	"sync"
)

// MockTransport is a configurable Transport for testing. It stubs the
// response (or an error at any stage of the exchange) and records every
// connection it hands out so tests can verify what was built, sent, and
// closed.
type MockTransport struct {
	mu sync.Mutex

	status  int
	reason  string
	header  Header
	body    string
	openErr error
	reqErr  error
	sendErr error
	recvErr error

	conns []*MockConn
}

// NewMockTransport creates a MockTransport answering 200 OK with an empty
// body until stubbed otherwise.
func NewMockTransport() *MockTransport {
	return &MockTransport{status: 200, reason: "OK"}
}

// StubResponse stubs the response head and body for subsequent opens.
func (m *MockTransport) StubResponse(status int, reason, body string) *MockTransport {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.status = status
	m.reason = reason
	m.body = body
	return m
}

// StubHeader stubs the response header for subsequent opens.
func (m *MockTransport) StubHeader(hdr Header) *MockTransport {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.header = hdr
	return m
}

// StubOpenError makes Open fail with err.
func (m *MockTransport) StubOpenError(err error) *MockTransport {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.openErr = err
	return m
}

// StubRequestError makes Conn.Request fail with err.
func (m *MockTransport) StubRequestError(err error) *MockTransport {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reqErr = err
	return m
}

// StubSendError makes Conn.Send fail with err.
func (m *MockTransport) StubSendError(err error) *MockTransport {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sendErr = err
	return m
}

// StubReceiveError makes Conn.Receive fail with err.
func (m *MockTransport) StubReceiveError(err error) *MockTransport {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.recvErr = err
	return m
}

// Open implements Transport. Each open snapshots the current stubs into a
// fresh MockConn.
func (m *MockTransport) Open(_ context.Context, host string, port int) (Conn, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.openErr != nil {
		return nil, m.openErr
	}

	conn := &MockConn{
		Host:    host,
		Port:    port,
		status:  m.status,
		reason:  m.reason,
		header:  m.header,
		body:    m.body,
		reqErr:  m.reqErr,
		sendErr: m.sendErr,
		recvErr: m.recvErr,
	}
	m.conns = append(m.conns, conn)
	return conn, nil
}

// OpenCount returns the number of connections handed out.
func (m *MockTransport) OpenCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.conns)
}

// LastConn returns the most recently opened connection, or nil.
func (m *MockTransport) LastConn() *MockConn {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.conns) == 0 {
		return nil
	}
	return m.conns[len(m.conns)-1]
}

// Conns returns every connection handed out, in open order.
func (m *MockTransport) Conns() []*MockConn {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*MockConn{}, m.conns...)
}

// Reset clears all stubs and recorded connections.
func (m *MockTransport) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.status = 200
	m.reason = "OK"
	m.header = nil
	m.body = ""
	m.openErr = nil
	m.reqErr = nil
	m.sendErr = nil
	m.recvErr = nil
	m.conns = nil
}

// BuiltRequest records one Conn.Request call.
type BuiltRequest struct {
	Method string
	Target string
	Header Header
}

// MockConn is the Conn handed out by MockTransport. It drains sent bodies
// into memory and counts Close calls.
type MockConn struct {
	Host string
	Port int

	mu      sync.Mutex
	status  int
	reason  string
	header  Header
	body    string
	reqErr  error
	sendErr error
	recvErr error

	built  []BuiltRequest
	sent   []byte
	events []string
	closed int
}

// Request implements Conn.
func (c *MockConn) Request(method, target string, hdr Header) (Request, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, "request")
	if c.reqErr != nil {
		return nil, c.reqErr
	}
	br := BuiltRequest{Method: method, Target: target, Header: hdr}
	c.built = append(c.built, br)
	return br, nil
}

// Send implements Conn, draining body (when non-nil) into the sent buffer.
func (c *MockConn) Send(_ Request, body io.Reader) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, "send")
	if c.sendErr != nil {
		return c.sendErr
	}
	if body != nil {
		data, err := io.ReadAll(body)
		if err != nil {
			return err
		}
		c.sent = append(c.sent, data...)
	}
	return nil
}

// Receive implements Conn.
func (c *MockConn) Receive() (*Response, io.Reader, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, "receive")
	if c.recvErr != nil {
		return nil, nil, c.recvErr
	}
	resp := &Response{Status: c.status, Reason: c.reason, Header: c.header}
	return resp, strings.NewReader(c.body), nil
}

// Close implements Conn.
func (c *MockConn) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, "close")
	c.closed++
	return nil
}

// Requests returns every request built on this connection.
func (c *MockConn) Requests() []BuiltRequest {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]BuiltRequest{}, c.built...)
}

// LastRequest returns the most recently built request, or a zero value.
func (c *MockConn) LastRequest() BuiltRequest {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.built) == 0 {
		return BuiltRequest{}
	}
	return c.built[len(c.built)-1]
}

// SentBody returns every body byte drained through Send.
func (c *MockConn) SentBody() []byte {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]byte{}, c.sent...)
}

// CloseCount returns how many times Close was called.
func (c *MockConn) CloseCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

// Events returns the ordered method calls observed on this connection.
func (c *MockConn) Events() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string{}, c.events...)
}
