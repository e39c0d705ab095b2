package middleware

import (
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anhminhnguyen3110/chatbot/internal/testutil"
)

func TestLogging_Handle(t *testing.T) {
	t.Parallel()

	lg := NewLogging(testutil.MakeNoopLogger())

	tests := []struct {
		name       string
		handler    fiber.Handler
		wantStatus int
	}{
		{
			name: "success path",
			handler: func(c *fiber.Ctx) error {
				time.Sleep(10 * time.Millisecond)
				return c.SendString("ok")
			},
			wantStatus: fiber.StatusOK,
		},
		{
			name: "fiber error propagates",
			handler: func(c *fiber.Ctx) error {
				return fiber.NewError(fiber.StatusNotFound, "missing")
			},
			wantStatus: fiber.StatusNotFound,
		},
		{
			name: "generic error becomes internal",
			handler: func(c *fiber.Ctx) error {
				return errors.New("boom")
			},
			wantStatus: fiber.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			app := fiber.New()
			app.Use(lg.Handle)
			app.Get("/", tt.handler)

			resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}

func TestLogging_Handle_WritesRequestLog(t *testing.T) {
	t.Parallel()

	capture, buf := testutil.MakeCaptureLogger()
	l := NewLogging(capture)

	app := fiber.New()
	app.Use(l.Handle)
	app.Get("/ping", func(c *fiber.Ctx) error { return c.SendString("pong") })

	_, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/ping", nil))
	require.NoError(t, err)

	logs := buf.String()
	assert.Contains(t, logs, "HTTP request started")
	assert.Contains(t, logs, "HTTP request completed")
	assert.Contains(t, logs, `"path":"/ping"`)
	assert.Contains(t, logs, `"status":200`)
}
