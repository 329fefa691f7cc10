package webcall

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockTransport_RecordsConns(t *testing.T) {
	mock := NewMockTransport().StubResponse(200, "OK", "body")

	for i, host := range []string{"a.example.com", "b.example.com"} {
		conn, err := mock.Open(context.Background(), host, 8000+i)
		require.NoError(t, err)

		_, err = conn.Request("GET", "/", nil)
		require.NoError(t, err)

		resp, body, err := conn.Receive()
		require.NoError(t, err)
		assert.Equal(t, 200, resp.Status)

		got, err := io.ReadAll(body)
		require.NoError(t, err)
		assert.Equal(t, "body", string(got))

		require.NoError(t, conn.Close())
	}

	conns := mock.Conns()
	require.Len(t, conns, 2)
	assert.Equal(t, "a.example.com", conns[0].Host)
	assert.Equal(t, 8000, conns[0].Port)
	assert.Equal(t, "b.example.com", conns[1].Host)
	assert.Equal(t, mock.LastConn(), conns[1])
}

func TestMockTransport_StubSendError(t *testing.T) {
	errWrite := errors.New("broken pipe")
	mock := NewMockTransport().StubSendError(errWrite)

	conn, err := mock.Open(context.Background(), "example.com", 80)
	require.NoError(t, err)

	req, err := conn.Request("PUT", "/x", nil)
	require.NoError(t, err)

	err = conn.Send(req, nil)
	assert.ErrorIs(t, err, errWrite)
}

func TestMockTransport_Reset(t *testing.T) {
	mock := NewMockTransport().
		StubResponse(503, "Service Unavailable", "down").
		StubOpenError(errors.New("refused"))

	mock.Reset()

	conn, err := mock.Open(context.Background(), "example.com", 80)
	require.NoError(t, err)

	resp, _, err := conn.Receive()
	require.NoError(t, err)
	assert.Equal(t, 200, resp.Status)
	assert.Equal(t, 1, mock.OpenCount())
}

func TestHeaderGet(t *testing.T) {
	hdr := Header{
		{Name: "Content-Type", Value: "text/plain"},
		{Name: "X-Dup", Value: "first"},
		{Name: "X-Dup", Value: "second"},
	}

	assert.Equal(t, "text/plain", hdr.Get("content-type"))
	assert.Equal(t, "first", hdr.Get("X-Dup"))
	assert.Empty(t, hdr.Get("Missing"))
}
