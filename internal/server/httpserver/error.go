package httpserver

import (
	"strconv"
	"strings"

	"github.com/getsentry/sentry-go"
	"github.com/gofiber/contrib/fibersentry"
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/visitstats/dashboard/internal/pkg/apierr"
	"github.com/visitstats/dashboard/internal/pkg/flog"
)

// wantsHTML reports whether the failed request came from the web pages rather than the API.
func wantsHTML(ctx *fiber.Ctx) bool {
	return !strings.HasPrefix(ctx.Path(), "/api") && ctx.Path() != "/metrics"
}

func handleCustomError(ctx *fiber.Ctx, e *apierr.Error) error {
	log.Warn().
		Err(e).
		Str("method", ctx.Method()).
		Str("path", ctx.Path()).
		Msg(e.Message)

	if wantsHTML(ctx) {
		return ctx.Status(e.StatusCode).Render("error", fiber.Map{
			"Title":  strconv.Itoa(e.StatusCode),
			"Status": e.StatusCode,
			"Code":   e.ErrorCode,
			"Error":  e.Message,
		}, LayoutMain)
	}

	body := fiber.Map{
		"code":    e.ErrorCode,
		"message": e.Message,
	}

	// Add extra details if needed
	if e.Extras != nil && len(*e.Extras) > 0 {
		for k, v := range *e.Extras {
			body[k] = v
		}
	}

	return ctx.Status(e.StatusCode).JSON(body)
}

func ErrorHandler(ctx *fiber.Ctx, err error) error {
	var e *apierr.Error
	if errors.As(err, &e) {
		return handleCustomError(ctx, e)
	}

	// Default 500 statuscode
	re := apierr.ErrInternalError.Msg(apierr.ErrInternalError.Message)

	var fe *fiber.Error
	if errors.As(err, &fe) {
		// Overwrite status code if fiber.Error type & provided code
		if fe.Code == fiber.StatusNotFound {
			return handleCustomError(ctx, apierr.ErrNotFound)
		}
		re.StatusCode = fe.Code
		re.ErrorCode = "UNKNOWN_ERROR"
		re.Message = fe.Message
		if fe.Code < fiber.StatusInternalServerError {
			return handleCustomError(ctx, re)
		}
	}

	log.Error().
		Stack().
		Err(err).
		Str("method", ctx.Method()).
		Str("path", ctx.Path()).
		Int("status", re.StatusCode).
		Msg("Internal Server Error")

	if hub := fibersentry.GetHubFromContext(ctx); hub != nil {
		hub.Scope().SetTag("status", strconv.Itoa(re.StatusCode))
		if id, ok := flog.IDFromFiberCtx(ctx); ok {
			hub.Scope().SetTag("request_id", id.String())
		}
		req := &sentry.Request{
			URL:    ctx.OriginalURL(),
			Method: ctx.Method(),
		}
		hub.Scope().AddEventProcessor(func(event *sentry.Event, _ *sentry.EventHint) *sentry.Event {
			event.Request = req
			return event
		})
		hub.CaptureException(err)
	}

	return handleCustomError(ctx, re)
}
