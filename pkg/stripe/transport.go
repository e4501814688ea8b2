package stripe

import (
	"bytes"
	"context"
	"net/http"
)

// Request is a fully formed outbound request. The transport sends it as is
// and adds no authentication, versioning or idempotency headers of its own.
type Request struct {
	Method string
	URL    string
	Header http.Header
	Body   []byte
}

// Clone returns a deep copy of the request so each attempt gets its own
// headers and body.
func (r *Request) Clone() *Request {
	clone := &Request{
		Method: r.Method,
		URL:    r.URL,
		Header: r.Header.Clone(),
	}

	if clone.Header == nil {
		clone.Header = make(http.Header)
	}

	if r.Body != nil {
		clone.Body = bytes.Clone(r.Body)
	}

	return clone
}

// Response is what a transport observed: the status, headers and the whole
// body.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Transport sends one request and returns the complete response.
// Implementations must be safe for concurrent use since every clone of a
// client shares the same transport.
type Transport interface {
	Send(ctx context.Context, req *Request) (*Response, error)
}

// TransportFunc adapts a function to the Transport interface.
type TransportFunc func(ctx context.Context, req *Request) (*Response, error)

// Send implements Transport.
func (f TransportFunc) Send(ctx context.Context, req *Request) (*Response, error) {
	return f(ctx, req)
}
