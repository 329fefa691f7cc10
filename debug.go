package webcall

import (
	"time"

	"github.com/rs/zerolog"
)

// logRequest logs the outgoing request details using zerolog.
func logRequest(logger zerolog.Logger, method string, loc Locator, bodySize int64) {
	logger.Debug().
		Str("method", method).
		Str("host", loc.Host).
		Int("port", loc.Port).
		Str("target", loc.Target()).
		Int64("body_size", bodySize).
		Msg("webcall request")
}

// logResponse logs the response head using zerolog.
func logResponse(logger zerolog.Logger, resp *Response, duration time.Duration) {
	logger.Debug().
		Int("status", resp.Status).
		Str("reason", resp.Reason).
		Dur("duration", duration).
		Msg("webcall response")
}
