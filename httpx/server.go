package httpx

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/adeilh/rakh-status/status"
)

// Validator runs before route handlers; return an error to stop the pipeline.
type Validator func(Context) error

type Server struct {
	app      *App
	address  string
	srv      *http.Server
	shutdown time.Duration
	log      *zap.Logger
}

type RouteRegistrar func(*App)

type StartOption func(*Server)

func WithShutdownTimeout(d time.Duration) StartOption {
	return func(s *Server) {
		if d > 0 {
			s.shutdown = d
		}
	}
}

func NewServer(opts ...ServerOption) *Server {
	cfg := defaultServerOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	a := New()
	a.e.HideBanner = true
	a.e.HidePort = true
	a.e.HTTPErrorHandler = cfg.ErrorHandler
	if a.e.HTTPErrorHandler == nil {
		a.e.HTTPErrorHandler = newHTTPErrorHandler(cfg.Logger)
	}
	a.e.Server.ReadTimeout = cfg.ReadTimeout
	a.e.Server.WriteTimeout = cfg.WriteTimeout

	mws := cfg.Middlewares
	if mws == nil {
		mws = []MiddlewareFunc{RecoverMiddleware(), RequestLoggerMiddleware(cfg.Logger)}
	}
	a.Use(mws...)
	a.Use(cfg.Additional...)
	if cfg.CORS != nil {
		a.Use(CORSMiddleware(cfg.CORS))
	}
	a.Use(ResponseRecoverMiddleware(cfg.Logger))
	if len(cfg.Validators) > 0 {
		a.Use(validatorMiddleware(cfg.Validators...))
	}

	return &Server{
		app:      a,
		address:  cfg.Address,
		shutdown: 5 * time.Second,
		log:      cfg.Logger,
	}
}

func (s *Server) RegisterRoutes(reg RouteRegistrar) {
	if reg != nil {
		reg(s.app)
	}
}

func (s *Server) Handler() http.Handler {
	return s.app.e
}

func (s *Server) Start(ctx context.Context, opts ...StartOption) error {
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}

	s.srv = &http.Server{
		Addr:         s.address,
		Handler:      s.app.e,
		ReadTimeout:  s.app.e.Server.ReadTimeout,
		WriteTimeout: s.app.e.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()
	s.log.Info("server started", zap.String("address", s.address))

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdown)
		defer cancel()
		if err := s.srv.Shutdown(shutdownCtx); err != nil {
			s.log.Warn("server shutdown", zap.Error(err))
		}
		return ctx.Err()
	case err := <-errCh:
		return err
	}
}

// newHTTPErrorHandler renders a returned *Response verbatim and any other
// error as {"error": msg, "status": label}.
func newHTTPErrorHandler(log *zap.Logger) HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		if resp, ok := AsResponse(err); ok {
			if rerr := resp.render(c); rerr != nil {
				log.Error("unable to render response", zap.Error(rerr))
			}
			return
		}

		code := StatusInternalError
		msg := status.Text(status.Code(code))
		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
			switch m := he.Message.(type) {
			case string:
				msg = m
			case error:
				msg = m.Error()
			case nil:
				msg = status.Text(status.Code(code))
			default:
				msg = fmt.Sprint(m)
			}
		}

		fields := []zap.Field{
			zap.Int("status", code),
			zap.String("message", msg),
			zap.String("method", c.Request().Method),
			zap.String("path", c.Request().URL.Path),
		}
		switch status.ClassOf(status.Code(code)) {
		case status.ClassServerError:
			log.Error("request failed", append(fields, zap.Error(err))...)
		case status.ClassClientError:
			log.Warn("request rejected", fields...)
		}

		if rerr := c.JSON(code, map[string]any{"error": msg, "status": status.Text(status.Code(code))}); rerr != nil {
			log.Error("unable to write error response", zap.Error(rerr))
		}
	}
}

func validatorMiddleware(v ...Validator) MiddlewareFunc {
	copied := append([]Validator(nil), v...)
	return func(next HandlerFunc) HandlerFunc {
		return func(c Context) error {
			for _, validator := range copied {
				if validator == nil {
					continue
				}
				if err := validator(c); err != nil {
					return err
				}
			}
			return next(c)
		}
	}
}
