package middleware

import (
	"encoding/json"
	"io"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
)

// logEntry is one request log line.
type logEntry struct {
	TS        string  `json:"ts"`
	RequestID string  `json:"request_id"`
	Method    string  `json:"method"`
	Path      string  `json:"path"`
	Status    int     `json:"status"`
	Latency   float64 `json:"latency"`
}

// Logger logs each HTTP request as one JSON object per line on stdout.
func Logger() fiber.Handler {
	return LoggerWithWriter(os.Stdout, time.Local)
}

// LoggerWithWriter is Logger with an explicit output and timezone, mainly
// for tests. Latency is reported in milliseconds. The request ID comes from
// context locals, so RequestID should be registered first.
func LoggerWithWriter(w io.Writer, loc *time.Location) fiber.Handler {
	enc := json.NewEncoder(w)

	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		// Collect fields after the handler ran to capture the final status.
		rid, _ := c.Locals(RequestIDLocalKey).(string)
		_ = enc.Encode(logEntry{
			TS:        time.Now().In(loc).Format(time.RFC3339Nano),
			RequestID: rid,
			Method:    c.Method(),
			Path:      c.Path(),
			Status:    c.Response().StatusCode(),
			Latency:   float64(time.Since(start).Milliseconds()),
		})

		return err
	}
}
