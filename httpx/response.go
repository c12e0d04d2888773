package httpx

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/pkg/errors"

	"github.com/adeilh/rakh-status/status"
)

// ErrUntransmittableStatus is returned by Send for codes that cannot end a
// response: anything outside 100-999, and 1xx, which net/http sends as an
// interim header before answering 200.
var ErrUntransmittableStatus = errors.New("httpx: status code cannot be transmitted")

// Response is an in-memory response descriptor. It is built by
// CreateResponse or ThrowResponse and transmitted by the caller.
type Response struct {
	status     status.Code
	statusText string
	header     http.Header
	body       []byte
	err        error
}

func (r *Response) Status() status.Code { return r.status }
func (r *Response) StatusText() string { return r.statusText }
func (r *Response) Header() http.Header { return r.header }
func (r *Response) Body() []byte { return r.body }
func (r *Response) Error() string { return fmt.Sprintf("httpx: %d %s", int(r.status), r.statusText) }
func (r *Response) contentType() string { return r.header.Get("Content-Type") }
func (r *Response) transmittable() bool { return r.status >= 200 && r.status <= 999 }

// ResponseOptions is the option bag accepted by CreateResponse. Status and
// status text are not part of it. Err records a body that failed to encode.
type ResponseOptions struct {
	Header http.Header
	Body   []byte
	Err    error
}

type ResponseOption func(*ResponseOptions)

// WithResponseHeader adds a header value.
func WithResponseHeader(key, value string) ResponseOption {
	return func(o *ResponseOptions) {
		o.Header.Add(key, value)
	}
}

// WithResponseHeaders adds every header in headers.
func WithResponseHeaders(headers map[string]string) ResponseOption {
	return func(o *ResponseOptions) {
		for k, v := range headers {
			o.Header.Add(k, v)
		}
	}
}

// WithResponseBody sets the body. An empty contentType leaves Content-Type
// untouched.
func WithResponseBody(contentType string, body []byte) ResponseOption {
	return func(o *ResponseOptions) {
		if contentType != "" {
			o.Header.Set("Content-Type", contentType)
		}
		o.Body = append([]byte(nil), body...)
		o.Err = nil
	}
}

// WithResponseJSON encodes v as the body. If v cannot be encoded the body is
// left empty and the encoding error is returned when the response is sent.
func WithResponseJSON(v any) ResponseOption {
	return func(o *ResponseOptions) {
		raw, err := json.Marshal(v)
		if err != nil {
			o.Body = nil
			o.Err = errors.Wrap(err, "httpx: encode response body")
			return
		}
		o.Header.Set("Content-Type", "application/json")
		o.Body = raw
		o.Err = nil
	}
}

// CreateResponse builds a Response carrying code and its registered label.
func CreateResponse(code status.Code, opts ...ResponseOption) *Response {
	cfg := ResponseOptions{Header: http.Header{}}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return &Response{
		status:     code,
		statusText: status.Text(code),
		header:     cfg.Header,
		body:       cfg.Body,
		err:        cfg.Err,
	}
}

// ThrowResponse panics with the Response CreateResponse would return. It
// never returns. The panic is meant to be recovered by the server's
// response-recover middleware, RecoverResponses or CatchResponse.
func ThrowResponse(code status.Code, opts ...ResponseOption) {
	panic(CreateResponse(code, opts...))
}

// AsResponse reports whether v, a recovered panic value or an error, carries
// a Response.
func AsResponse(v any) (*Response, bool) {
	switch t := v.(type) {
	case *Response:
		return t, t != nil
	case error:
		var resp *Response
		if errors.As(t, &resp) && resp != nil {
			return resp, true
		}
	}
	return nil, false
}

// CatchResponse runs fn and returns the Response it threw, or nil when fn
// returned normally. Other panics propagate unchanged.
func CatchResponse(fn func()) (resp *Response) {
	defer func() {
		if rv := recover(); rv != nil {
			r, ok := AsResponse(rv)
			if !ok {
				panic(rv)
			}
			resp = r
		}
	}()
	fn()
	return nil
}

// Send transmits r on w. Codes that cannot end a response are answered with
// 500 and ErrUntransmittableStatus. A body encoding error is returned after
// the status and headers are written.
func (r *Response) Send(w http.ResponseWriter) error {
	if !r.transmittable() {
		w.WriteHeader(http.StatusInternalServerError)
		return ErrUntransmittableStatus
	}
	h := w.Header()
	for k, vs := range r.header {
		for _, v := range vs {
			h.Add(k, v)
		}
	}
	w.WriteHeader(int(r.status))
	if len(r.body) == 0 {
		return r.err
	}
	_, err := w.Write(r.body)
	return err
}

func (r *Response) render(c Context) error {
	if !r.transmittable() {
		if err := c.NoContent(http.StatusInternalServerError); err != nil {
			return errors.WithMessagef(ErrUntransmittableStatus, "write 500: %v", err)
		}
		return ErrUntransmittableStatus
	}
	h := c.Response().Header()
	for k, vs := range r.header {
		for _, v := range vs {
			h.Add(k, v)
		}
	}
	if len(r.body) == 0 {
		if err := c.NoContent(int(r.status)); err != nil {
			return err
		}
		return r.err
	}
	ct := r.contentType()
	if ct == "" {
		ct = "application/octet-stream"
	}
	return c.Blob(int(r.status), ct, r.body)
}
