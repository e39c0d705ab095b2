package handler

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealth(t *testing.T) {
	t.Parallel()

	app := newTestApp()
	app.Get("/health", Health)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "AI Chatbot Backend is running", body["message"])
}

func TestRoot(t *testing.T) {
	t.Parallel()

	app := newTestApp()
	app.Get("/", Root)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "AI Chatbot Backend API", body["message"])
	assert.Equal(t, "1.0.0", body["version"])
	assert.Equal(t, "/docs", body["docs"])
}
