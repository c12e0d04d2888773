// Package status is a registry of the HTTP status codes defined by RFC 9110
// and its WebDAV extensions. Each registered code carries a short label and a
// one sentence description; the tables are fixed at compile time.
package status

import (
	"fmt"
	"strconv"
)

// Code is an HTTP status code. Any int converts to a Code; only the
// constants below are registered.
type Code int

// Registered status codes.
const (
	// 1xx informational
	Continue           Code = 100
	SwitchingProtocols Code = 101
	Processing         Code = 102
	EarlyHints         Code = 103

	// 2xx success
	OK                          Code = 200
	Created                     Code = 201
	Accepted                    Code = 202
	NonAuthoritativeInformation Code = 203
	NoContent                   Code = 204
	ResetContent                Code = 205
	PartialContent              Code = 206
	MultiStatus                 Code = 207
	AlreadyReported             Code = 208
	IMUsed                      Code = 226

	// 3xx redirection
	MultipleChoices   Code = 300
	MovedPermanently  Code = 301
	Found             Code = 302
	SeeOther          Code = 303
	NotModified       Code = 304
	UseProxy          Code = 305
	TemporaryRedirect Code = 307
	PermanentRedirect Code = 308

	// 4xx client errors
	BadRequest                  Code = 400
	Unauthorized                Code = 401
	PaymentRequired             Code = 402
	Forbidden                   Code = 403
	NotFound                    Code = 404
	MethodNotAllowed            Code = 405
	NotAcceptable               Code = 406
	ProxyAuthenticationRequired Code = 407
	RequestTimeout              Code = 408
	Conflict                    Code = 409
	Gone                        Code = 410
	LengthRequired              Code = 411
	PreconditionFailed          Code = 412
	ContentTooLarge             Code = 413
	URITooLong                  Code = 414
	UnsupportedMediaType        Code = 415
	RangeNotSatisfiable         Code = 416
	ExpectationFailed           Code = 417
	Teapot                      Code = 418
	MisdirectedRequest          Code = 421
	UnprocessableContent        Code = 422
	Locked                      Code = 423
	FailedDependency            Code = 424
	TooEarly                    Code = 425
	UpgradeRequired             Code = 426
	PreconditionRequired        Code = 428
	TooManyRequests             Code = 429
	RequestHeaderFieldsTooLarge Code = 431

	// 5xx server errors
	InternalServerError           Code = 500
	NotImplemented                Code = 501
	BadGateway                    Code = 502
	ServiceUnavailable            Code = 503
	GatewayTimeout                Code = 504
	HTTPVersionNotSupported       Code = 505
	VariantAlsoNegotiates         Code = 506
	InsufficientStorage           Code = 507
	LoopDetected                  Code = 508
	NotExtended                   Code = 510
	NetworkAuthenticationRequired Code = 511
)

// UnknownText is returned in place of a label or description for codes that
// are not registered.
const UnknownText = "Unknown Status"

const docBaseURL = "https://developer.mozilla.org/en-US/docs/Web/HTTP/Status/"

type entry struct {
	code        Code
	text        string
	description string
}

// registry is ordered by code.
var registry = [...]entry{
	{Continue, "Continue", "Client should continue the request or ignore if already finished."},
	{SwitchingProtocols, "Switching Protocols", "Server is switching protocols as requested by client."},
	{Processing, "Processing", "Request received, no status available (WebDAV, deprecated)."},
	{EarlyHints, "Early Hints", "Allows preloading resources with Link header."},
	{OK, "OK", "Request succeeded, result depends on HTTP method."},
	{Created, "Created", "Request succeeded, new resource created."},
	{Accepted, "Accepted", "Request received but not acted upon, noncommittal."},
	{NonAuthoritativeInformation, "Non-Authoritative Information", "Metadata from local or third-party copy, not origin server."},
	{NoContent, "No Content", "No content to send, headers may be useful."},
	{ResetContent, "Reset Content", "Tells user agent to reset the document."},
	{PartialContent, "Partial Content", "Response to a range request for part of a resource."},
	{MultiStatus, "Multi-Status", "Conveys information about multiple resources (WebDAV)."},
	{AlreadyReported, "Already Reported", "Avoids enumerating bindings in WebDAV collections."},
	{IMUsed, "IM Used", "Result of instance-manipulations applied to resource."},
	{MultipleChoices, "Multiple Choices", "Multiple possible responses, client should choose one."},
	{MovedPermanently, "Moved Permanently", "Resource URL changed permanently, new URL given."},
	{Found, "Found", "Resource URI changed temporarily."},
	{SeeOther, "See Other", "Directs client to get resource at another URI with GET."},
	{NotModified, "Not Modified", "Response not modified, client can use cached version."},
	{UseProxy, "Use Proxy", "Response must be accessed by a proxy (deprecated)."},
	{TemporaryRedirect, "Temporary Redirect", "Redirect to another URI with same method as prior request."},
	{PermanentRedirect, "Permanent Redirect", "Resource permanently at another URI, same method required."},
	{BadRequest, "Bad Request", "Server cannot process due to client error."},
	{Unauthorized, "Unauthorized", "Client must authenticate to get response."},
	{PaymentRequired, "Payment Required", "Reserved for digital payment systems, rarely used."},
	{Forbidden, "Forbidden", "Client lacks access rights, server refuses resource."},
	{NotFound, "Not Found", "Server cannot find requested resource."},
	{MethodNotAllowed, "Method Not Allowed", "Request method not supported by target resource."},
	{NotAcceptable, "Not Acceptable", "No content matches user agent criteria."},
	{ProxyAuthenticationRequired, "Proxy Authentication Required", "Authentication required by a proxy."},
	{RequestTimeout, "Request Timeout", "Server timed out on idle connection."},
	{Conflict, "Conflict", "Request conflicts with current server state."},
	{Gone, "Gone", "Requested content permanently deleted."},
	{LengthRequired, "Length Required", "Content-Length header required but not provided."},
	{PreconditionFailed, "Precondition Failed", "Client preconditions in headers not met."},
	{ContentTooLarge, "Content Too Large", "Request body exceeds server limits."},
	{URITooLong, "URI Too Long", "Requested URI too long for server to interpret."},
	{UnsupportedMediaType, "Unsupported Media Type", "Media format of request data not supported."},
	{RangeNotSatisfiable, "Range Not Satisfiable", "Requested range cannot be fulfilled."},
	{ExpectationFailed, "Expectation Failed", "Expectation in Expect header cannot be met."},
	{Teapot, "I'm a teapot", "Server refuses to brew coffee with a teapot."},
	{MisdirectedRequest, "Misdirected Request", "Request directed to server unable to respond."},
	{UnprocessableContent, "Unprocessable Content", "Request well-formed but has semantic errors (WebDAV)."},
	{Locked, "Locked", "Resource being accessed is locked (WebDAV)."},
	{FailedDependency, "Failed Dependency", "Request failed due to failure of a previous request (WebDAV)."},
	{TooEarly, "Too Early", "Server unwilling to process potentially replayed request."},
	{UpgradeRequired, "Upgrade Required", "Server requires client to upgrade protocol."},
	{PreconditionRequired, "Precondition Required", "Server requires conditional request to prevent conflicts."},
	{TooManyRequests, "Too Many Requests", "Too many requests sent in a given time (rate limiting)."},
	{RequestHeaderFieldsTooLarge, "Request Header Fields Too Large", "Request headers too large for server to process."},
	{InternalServerError, "Internal Server Error", "Server encountered an unknown error."},
	{NotImplemented, "Not Implemented", "Request method not supported by server."},
	{BadGateway, "Bad Gateway", "Server as gateway received invalid response."},
	{ServiceUnavailable, "Service Unavailable", "Server unavailable due to maintenance or overloading."},
	{GatewayTimeout, "Gateway Timeout", "Server as gateway timed out."},
	{HTTPVersionNotSupported, "HTTP Version Not Supported", "HTTP version in request not supported."},
	{VariantAlsoNegotiates, "Variant Also Negotiates", "Content negotiation caused circular reference."},
	{InsufficientStorage, "Insufficient Storage", "Server unable to store representation (WebDAV)."},
	{LoopDetected, "Loop Detected", "Infinite loop detected in request processing (WebDAV)."},
	{NotExtended, "Not Extended", "HTTP extension not supported for request."},
	{NetworkAuthenticationRequired, "Network Authentication Required", "Client needs to authenticate for network access."},
}

var index = func() map[Code]*entry {
	m := make(map[Code]*entry, len(registry))
	for i := range registry {
		m[registry[i].code] = &registry[i]
	}
	return m
}()

// Text returns the label registered for c, or UnknownText.
func Text(c Code) string {
	if e, ok := index[c]; ok {
		return e.text
	}
	return UnknownText
}

// Description returns the description registered for c, or UnknownText.
func Description(c Code) string {
	if e, ok := index[c]; ok {
		return e.description
	}
	return UnknownText
}

// IsValid reports whether v is a registered status code.
func IsValid(v int) bool {
	_, ok := index[Code(v)]
	return ok
}

// Parse converts v to a Code if it is registered.
func Parse(v int) (Code, bool) {
	if !IsValid(v) {
		return 0, false
	}
	return Code(v), true
}

// Codes returns every registered code in ascending order. The slice is a
// copy and may be modified by the caller.
func Codes() []Code {
	out := make([]Code, len(registry))
	for i, e := range registry {
		out[i] = e.code
	}
	return out
}

// DocURL returns the MDN reference page for a registered code and an empty
// string otherwise.
func DocURL(c Code) string {
	if !IsValid(int(c)) {
		return ""
	}
	return docBaseURL + strconv.Itoa(int(c))
}

// Info is the serializable view of a registered code.
type Info struct {
	Code        Code   `json:"code"`
	Text        string `json:"text"`
	Description string `json:"description"`
	Class       Class  `json:"class"`
	URL         string `json:"url"`
}

// Lookup returns the Info for c. The boolean is false when c is not
// registered.
func Lookup(c Code) (Info, bool) {
	e, ok := index[c]
	if !ok {
		return Info{}, false
	}
	return Info{
		Code:        e.code,
		Text:        e.text,
		Description: e.description,
		Class:       ClassOf(e.code),
		URL:         DocURL(e.code),
	}, true
}

// All returns the Info of every registered code in ascending order.
func All() []Info {
	out := make([]Info, 0, len(registry))
	for _, c := range Codes() {
		info, _ := Lookup(c)
		out = append(out, info)
	}
	return out
}

func (c Code) Text() string        { return Text(c) }
func (c Code) Description() string { return Description(c) }
func (c Code) Class() Class        { return ClassOf(c) }

// Valid reports whether c is registered.
func (c Code) Valid() bool { return IsValid(int(c)) }

// IsError reports whether c falls in the 4xx or 5xx band.
func (c Code) IsError() bool {
	cl := ClassOf(c)
	return cl == ClassClientError || cl == ClassServerError
}

// String formats c as "<code> <label>", e.g. "404 Not Found".
func (c Code) String() string {
	return fmt.Sprintf("%d %s", int(c), Text(c))
}
