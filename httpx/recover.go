package httpx

import (
	"net/http"

	"go.uber.org/zap"
)

// ResponseRecoverMiddleware recovers a Response thrown by ThrowResponse and
// renders it. Any other panic is re-raised for the outer recover middleware.
func ResponseRecoverMiddleware(log *zap.Logger) MiddlewareFunc {
	if log == nil {
		log = zap.NewNop()
	}
	return func(next HandlerFunc) HandlerFunc {
		return func(c Context) (err error) {
			defer func() {
				rv := recover()
				if rv == nil {
					return
				}
				resp, ok := AsResponse(rv)
				if !ok {
					panic(rv)
				}
				if c.Response().Committed {
					log.Warn("thrown response after commit",
						zap.Int("status", int(resp.Status())),
						zap.String("path", c.Request().URL.Path),
					)
					return
				}
				log.Debug("thrown response recovered",
					zap.Int("status", int(resp.Status())),
					zap.String("status_text", resp.StatusText()),
					zap.String("path", c.Request().URL.Path),
				)
				err = resp.render(c)
			}()
			return next(c)
		}
	}
}

// RecoverResponses is the net/http counterpart of ResponseRecoverMiddleware.
func RecoverResponses(log *zap.Logger) func(http.Handler) http.Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rv := recover()
				if rv == nil {
					return
				}
				resp, ok := AsResponse(rv)
				if !ok {
					panic(rv)
				}
				if err := resp.Send(w); err != nil {
					log.Error("unable to send thrown response",
						zap.Error(err),
						zap.Int("status", int(resp.Status())),
						zap.String("path", r.URL.Path),
					)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
