package webcall

import (
	"bufio"
	"bytes"
	"io"
)

// Producer pushes a request body into the sink it is given. It may write
// zero or more chunks; an error aborts the call and nothing is sent.
type Producer func(w io.Writer) error

// Materialize runs produce against an in-memory capturing sink and returns
// the captured bytes as a replayable reader together with their exact
// count. The whole body is held in memory: the transport needs a
// Content-Length before the first body byte goes out, and a push-style
// producer offers no way to learn the length up front.
func Materialize(produce Producer) (*bytes.Reader, int64, error) {
	var buf bytes.Buffer
	sink := bufio.NewWriter(&buf)
	if err := produce(sink); err != nil {
		return nil, 0, err
	}
	// Data still sitting in the bufio layer counts too.
	if err := sink.Flush(); err != nil {
		return nil, 0, err
	}
	return bytes.NewReader(buf.Bytes()), int64(buf.Len()), nil
}
