package flog

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestRequestLoggerFields(t *testing.T) {
	var buf bytes.Buffer
	app := fiber.New()
	app.Use(
		NewHandlerMiddleware(zerolog.New(&buf)),
		RequestIDHandler("request_id", "X-Request-ID"),
		MethodHandler("method"),
		URLHandler("url"),
		AccessHandler(func(ctx *fiber.Ctx, duration time.Duration, err error) {
			FromFiberCtx(ctx).Info().Msg("done")
		}),
	)
	app.Get("/ping", func(ctx *fiber.Ctx) error {
		_, ok := IDFromFiberCtx(ctx)
		assert.True(t, ok)
		return ctx.SendString("pong")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ping", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	requestID := resp.Header.Get("X-Request-ID")
	assert.NotEmpty(t, requestID)

	line := buf.String()
	assert.Equal(t, requestID, gjson.Get(line, "request_id").String())
	assert.Equal(t, "GET", gjson.Get(line, "method").String())
	assert.Equal(t, "/ping", gjson.Get(line, "url").String())
	assert.Equal(t, "done", gjson.Get(line, "message").String())
}
