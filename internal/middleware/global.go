package middleware

import (
	"net/http"
	"slices"
	"strings"

	"github.com/Bishop-Massey-Knapp/ecommerce-api/internal/errs"
	"github.com/Bishop-Massey-Knapp/ecommerce-api/internal/server"
	"github.com/Bishop-Massey-Knapp/ecommerce-api/internal/sqlerr"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// GlobalMiddlewares groups the middleware applied to every route and the
// global error handler.
type GlobalMiddlewares struct {
	server *server.Server
}

func NewGlobalMiddlewares(s *server.Server) *GlobalMiddlewares {
	return &GlobalMiddlewares{
		server: s,
	}
}

var (
	corsAllowMethods = []string{
		http.MethodGet,
		http.MethodPut,
		http.MethodPost,
		http.MethodDelete,
		http.MethodOptions,
	}
	corsAllowHeaders = []string{
		echo.HeaderContentType,
		echo.HeaderAuthorization,
	}
)

// CORS answers preflight requests for the configured origins ("*" by default).
func (global *GlobalMiddlewares) CORS() echo.MiddlewareFunc {
	return middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: global.server.Config.Server.CORSAllowedOrigins,
		AllowMethods: corsAllowMethods,
		AllowHeaders: corsAllowHeaders,
	})
}

// CORSHeaders sets the allow-origin, allow-methods and allow-headers
// headers on every response, whether or not the request sent an Origin.
// It must run before CORS, which overwrites them for preflight requests.
func (global *GlobalMiddlewares) CORSHeaders() echo.MiddlewareFunc {
	origins := global.server.Config.Server.CORSAllowedOrigins
	methods := strings.Join(corsAllowMethods, ",")
	headers := strings.Join(corsAllowHeaders, ",")

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			h := c.Response().Header()

			switch origin := c.Request().Header.Get(echo.HeaderOrigin); {
			case slices.Contains(origins, "*"):
				h.Set(echo.HeaderAccessControlAllowOrigin, "*")
			case origin != "" && slices.Contains(origins, origin):
				h.Set(echo.HeaderAccessControlAllowOrigin, origin)
				h.Add(echo.HeaderVary, echo.HeaderOrigin)
			}

			h.Set(echo.HeaderAccessControlAllowMethods, methods)
			h.Set(echo.HeaderAccessControlAllowHeaders, headers)

			return next(c)
		}
	}
}

// RequestLogger writes one "API" line per request, at a level chosen from
// the final status.
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
			statusCode := v.Status

			// The error handler has not written the response yet when a
			// handler returns an error, so v.Status may still read 200.
			// https://github.com/labstack/echo/issues/2310#issuecomment-1288196898
			if v.Error != nil {
				var httpErr *errs.HTTPError
				var echoErr *echo.HTTPError

				if errors.As(v.Error, &httpErr) {
					statusCode = httpErr.Status
				} else if errors.As(v.Error, &echoErr) {
					statusCode = echoErr.Code
				} else {
					statusCode = http.StatusInternalServerError
				}
			}

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
				Str("ip", c.RealIP()).
				Str("user_agent", c.Request().UserAgent()).
				Msg("API")

			return nil
		},
	})
}

// Recover turns panics into errors handled by GlobalErrorHandler.
func (global *GlobalMiddlewares) Recover() echo.MiddlewareFunc {
	return middleware.RecoverWithConfig(middleware.RecoverConfig{
		DisablePrintStack: true,
	})
}

func (global *GlobalMiddlewares) Secure() echo.MiddlewareFunc {
	return middleware.Secure()
}

// GlobalErrorHandler is the single place errors become responses.
//
// Application errors are written as they are; Echo's route 404 becomes
// "Route not found"; anything else goes through sqlerr.HandleError, which
// yields a 500 without internals for unknown errors. The original error is
// always logged.
func (global *GlobalMiddlewares) GlobalErrorHandler(err error, c echo.Context) {
	originalErr := err

	var httpErr *errs.HTTPError
	if !errors.As(err, &httpErr) {
		var echoErr *echo.HTTPError
		if errors.As(err, &echoErr) {
			switch echoErr.Code {
			case http.StatusNotFound:
				httpErr = errs.NewNotFoundError("Route not found", false, nil)
			default:
				httpErr = fromEchoError(echoErr)
			}
		} else {
			err = sqlerr.HandleError(err)
			if !errors.As(err, &httpErr) {
				httpErr = errs.NewInternalServerError()
			}
		}
	}

	logger := GetLogger(c)

	event := logger.Error()
	if httpErr.Status < http.StatusInternalServerError {
		event = logger.Warn()
	}
	event.Stack().
		Err(originalErr).
		Int("status", httpErr.Status).
		Str("error_code", httpErr.Code).
		Msg(httpErr.Message)

	if c.Response().Committed {
		return
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(httpErr.Status)
		return
	}

	_ = c.JSON(httpErr.Status, httpErr.ToResponse())
}

// fromEchoError covers the errors Echo raises itself (405, 413, 429, ...).
func fromEchoError(echoErr *echo.HTTPError) *errs.HTTPError {
	message, ok := echoErr.Message.(string)
	if !ok {
		message = http.StatusText(echoErr.Code)
	}

	return &errs.HTTPError{
		Code:    errs.MakeUpperCaseWithUnderscores(http.StatusText(echoErr.Code)),
		Message: message,
		Status:  echoErr.Code,
	}
}
