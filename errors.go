package webcall

import "errors"

var (
	// ErrMalformedLocator reports an input string that could not be parsed
	// into a Locator. No connection is attempted.
	ErrMalformedLocator = errors.New("webcall: malformed locator")

	// ErrUnsupportedScheme reports a locator whose scheme no transport can
	// carry. TLS schemes land here: secure transport is not implemented,
	// and the call fails loudly rather than downgrading.
	ErrUnsupportedScheme = errors.New("webcall: unsupported scheme")
)
