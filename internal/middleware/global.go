package middleware

import (
	"net/http"

	"github.com/NehaP1706/APILearn-ExerciseTracker/internal/errs"
	"github.com/NehaP1706/APILearn-ExerciseTracker/internal/server"
	"github.com/NehaP1706/APILearn-ExerciseTracker/internal/sqlerr"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// GlobalMiddlewares groups the middleware applied to every route and the
// echo error handler.
type GlobalMiddlewares struct {
	server *server.Server
}

func NewGlobalMiddlewares(s *server.Server) *GlobalMiddlewares {
	return &GlobalMiddlewares{
		server: s,
	}
}

func (global *GlobalMiddlewares) CORS() echo.MiddlewareFunc {
	return middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: global.server.Config.Server.CORSAllowedOrigins,
	})
}

// statusOf derives the final status of a failed request. The error handler
// writes the response after the logger has run, so v.Status may still be 200.
// See https://github.com/labstack/echo/issues/2310#issuecomment-1288196898
func statusOf(err error, fallback int) int {
	var httpErr *errs.HTTPError
	var echoErr *echo.HTTPError

	switch {
	case err == nil:
		return fallback
	case errors.As(err, &httpErr):
		return httpErr.Status
	case errors.As(err, &echoErr):
		return echoErr.Code
	default:
		return http.StatusInternalServerError
	}
}

// RequestLogger writes one "API" line per request, at error for 5xx, warn
// for 4xx and info otherwise.
func (global *GlobalMiddlewares) RequestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:     true,
		LogStatus:  true,
		LogError:   true,
		LogLatency: true,
		LogHost:    true,
		LogMethod:  true,
		LogURIPath: true,

		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			statusCode := statusOf(v.Error, v.Status)
			logger := GetLogger(c)

			var e *zerolog.Event
			switch {
			case statusCode >= 500:
				e = logger.Error().Err(v.Error)
			case statusCode >= 400:
				e = logger.Warn()
			default:
				e = logger.Info()
			}

			e.
				Dur("latency", v.Latency).
				Int("status", statusCode).
				Str("method", v.Method).
				Str("uri", v.URI).
				Str("host", v.Host).
				Str("user_agent", c.Request().UserAgent()).
				Msg("API")

			return nil
		},
	})
}

func (global *GlobalMiddlewares) Recover() echo.MiddlewareFunc {
	return middleware.Recover()
}

func (global *GlobalMiddlewares) Secure() echo.MiddlewareFunc {
	return middleware.Secure()
}

// GlobalErrorHandler turns any returned error into the JSON error body.
//
// *errs.HTTPError is written as is. An echo 404 becomes "Route not found",
// other echo errors keep their status, and anything else goes through
// sqlerr.HandleError. The original error, including a hidden cause, is
// logged with the request logger.
func (global *GlobalMiddlewares) GlobalErrorHandler(err error, c echo.Context) {
	originalErr := err

	var httpErr *errs.HTTPError
	var echoErr *echo.HTTPError

	if !errors.As(err, &httpErr) {
		if errors.As(err, &echoErr) {
			if echoErr.Code == http.StatusNotFound {
				httpErr = errs.NewNotFoundError("Route not found", false, nil)
			}
		} else {
			converted := sqlerr.HandleError(err)
			if !errors.As(converted, &httpErr) {
				httpErr = errs.NewInternalServerError()
			}
		}
	}

	var body errs.HTTPError
	switch {
	case httpErr != nil:
		body = errs.HTTPError{
			Code:     httpErr.Code,
			Message:  httpErr.Message,
			Status:   httpErr.Status,
			Override: httpErr.Override,
			Errors:   httpErr.Errors,
			Action:   httpErr.Action,
		}
	default:
		message := http.StatusText(echoErr.Code)
		if msg, ok := echoErr.Message.(string); ok {
			message = msg
		}
		body = errs.HTTPError{
			Code:    errs.MakeUpperCaseWithUnderscores(http.StatusText(echoErr.Code)),
			Message: message,
			Status:  echoErr.Code,
		}
	}

	logger := GetLogger(c)

	event := logger.Warn()
	if body.Status >= http.StatusInternalServerError {
		event = logger.Error().Stack()
	}
	if httpErr != nil && httpErr.Cause() != nil {
		event = event.AnErr("cause", httpErr.Cause())
	}
	event.
		Err(originalErr).
		Int("status", body.Status).
		Str("error_code", body.Code).
		Msg(body.Message)

	if !c.Response().Committed {
		if err := c.JSON(body.Status, body); err != nil {
			logger.Error().Err(err).Msg("failed to write error response")
		}
	}
}
