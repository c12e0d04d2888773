package httpx

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/adeilh/rakh-status/status"
)

// Context represents the context of the current HTTP request.
type Context = echo.Context

// HandlerFunc defines a function to handle HTTP requests.
type HandlerFunc = echo.HandlerFunc

// MiddlewareFunc defines a function to process middleware.
type MiddlewareFunc = echo.MiddlewareFunc

// App is the main application instance for handling HTTP requests.
type App struct{ e *echo.Echo }

// New creates a new App instance.
func New() *App { return &App{echo.New()} }

// Use attaches middleware to the App instance.
func (a *App) Use(mw ...MiddlewareFunc) { a.e.Use(mw...) }

// Group creates a route group with an optional prefix and middleware stack.
// Returns a Router that wraps the internal group.
func (a *App) Group(prefix string, mw ...MiddlewareFunc) *Router {
	return &Router{group: a.newGroup(prefix, mw...)}
}

// RecoverMiddleware returns a middleware that recovers from panics that are
// not thrown responses.
func RecoverMiddleware() MiddlewareFunc { return middleware.Recover() }

// RequestLoggerMiddleware logs one line per request on log, at a level
// picked from the response class.
func RequestLoggerMiddleware(log *zap.Logger) MiddlewareFunc {
	if log == nil {
		log = zap.NewNop()
	}
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:      true,
		LogStatus:   true,
		LogMethod:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c Context, v middleware.RequestLoggerValues) error {
			code := status.Code(v.Status)
			fields := []zap.Field{
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.String("class", code.Class().String()),
				zap.Duration("latency", v.Latency),
			}
			if v.Error != nil {
				fields = append(fields, zap.Error(v.Error))
			}
			switch code.Class() {
			case status.ClassServerError:
				log.Error("request processed", fields...)
			case status.ClassClientError:
				log.Warn("request processed", fields...)
			default:
				log.Info("request processed", fields...)
			}
			return nil
		},
	})
}

// CORSMiddleware builds a CORS middleware from the provided config; nil uses defaults.
func CORSMiddleware(cfg *middleware.CORSConfig) MiddlewareFunc {
	if cfg == nil {
		return middleware.CORSWithConfig(middleware.DefaultCORSConfig)
	}
	return middleware.CORSWithConfig(*cfg)
}

// GET registers a GET route.
func (a *App) GET(path string, h HandlerFunc, mw ...MiddlewareFunc) {
	a.e.GET(path, h, mw...)
}

// POST registers a POST route.
func (a *App) POST(path string, h HandlerFunc, mw ...MiddlewareFunc) {
	a.e.POST(path, h, mw...)
}

// PUT registers a PUT route.
func (a *App) PUT(path string, h HandlerFunc, mw ...MiddlewareFunc) {
	a.e.PUT(path, h, mw...)
}

// DELETE registers a DELETE route.
func (a *App) DELETE(path string, h HandlerFunc, mw ...MiddlewareFunc) {
	a.e.DELETE(path, h, mw...)
}

// PATCH registers a PATCH route.
func (a *App) PATCH(path string, h HandlerFunc, mw ...MiddlewareFunc) {
	a.e.PATCH(path, h, mw...)
}

// HTTPError constructs an HTTP error for returning from handlers. A nil
// message falls back to the registered label of code.
func HTTPError(code int, message any) error {
	if message == nil {
		message = status.Text(status.Code(code))
	}
	return echo.NewHTTPError(code, message)
}

// DefaultCORSConfig provides the default CORS configuration.
var DefaultCORSConfig = middleware.DefaultCORSConfig
