package httpx

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HTTPMiddleware bridges a net/http middleware into the echo chain. The
// writer and request the middleware hands downstream become the echo
// handler's response and request. A nil middleware rejects every request
// with 500.
func HTTPMiddleware(mw func(http.Handler) http.Handler) MiddlewareFunc {
	if mw == nil {
		return func(next HandlerFunc) HandlerFunc {
			return func(c Context) error {
				return HTTPError(StatusInternalError, "http middleware missing")
			}
		}
	}
	return echo.WrapMiddleware(mw)
}
