package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestID(t *testing.T) {
	t.Run("generates when absent", func(t *testing.T) {
		app := fiber.New()
		app.Use(RequestID())

		var seen string
		app.Get("/", func(c *fiber.Ctx) error {
			seen, _ = c.Locals(RequestIDLocalKey).(string)
			return c.SendString("ok")
		})

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.NotEmpty(t, seen)
		assert.Equal(t, seen, resp.Header.Get(RequestIDHeader))
	})

	t.Run("preserves incoming header", func(t *testing.T) {
		app := fiber.New()
		app.Use(RequestID())
		app.Get("/", func(c *fiber.Ctx) error {
			return c.SendString("ok")
		})

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, "client-supplied-id")
		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, "client-supplied-id", resp.Header.Get(RequestIDHeader))
	})
}

func TestLoggerWithWriter(t *testing.T) {
	var buf bytes.Buffer

	app := fiber.New()
	app.Use(RequestID())
	app.Use(LoggerWithWriter(&buf, time.UTC))
	app.Get("/documents", func(c *fiber.Ctx) error {
		return c.Status(http.StatusOK).SendString("ok")
	})

	req := httptest.NewRequest(http.MethodGet, "/documents", nil)
	req.Header.Set(RequestIDHeader, "rid-123")
	_, err := app.Test(req)
	require.NoError(t, err)

	var entry logEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	assert.Equal(t, "rid-123", entry.RequestID)
	assert.Equal(t, http.MethodGet, entry.Method)
	assert.Equal(t, "/documents", entry.Path)
	assert.Equal(t, http.StatusOK, entry.Status)
	assert.GreaterOrEqual(t, entry.Latency, float64(0))

	ts, err := time.Parse(time.RFC3339Nano, entry.TS)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), ts, time.Minute)
}

func TestLoggerWithWriter_ErrorStatus(t *testing.T) {
	var buf bytes.Buffer

	app := fiber.New()
	app.Use(LoggerWithWriter(&buf, time.UTC))
	app.Get("/boom", func(c *fiber.Ctx) error {
		return c.Status(http.StatusInternalServerError).SendString("boom")
	})

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	_, err := app.Test(req)
	require.NoError(t, err)

	var entry logEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, http.StatusInternalServerError, entry.Status)
	assert.Empty(t, entry.RequestID)
}
