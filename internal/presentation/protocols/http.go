package protocols

import (
	"io"
	"net/http"
	"net/url"
)

type HttpRequest struct {
	Body      io.ReadCloser
	Header    http.Header
	UrlParams url.Values
	Req       *http.Request
}

// HttpResponse carries the body and status a controller produced.
// Headers is optional; the route adapter falls back to JSON when it is
// nil.
type HttpResponse struct {
	Body       io.ReadCloser
	StatusCode int
	Headers    http.Header
}

type ErrorResponse struct {
	Error string `json:"error"`
}
