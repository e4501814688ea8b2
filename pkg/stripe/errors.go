package stripe

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"unicode/utf8"
)

// Static errors for err113 compliance.
var (
	// ErrUnsupportedVersion is returned when a list whose URL is not under
	// /v1/ is asked for its next page.
	ErrUnsupportedVersion = errors.New("unsupported API version: list url is not under /v1/")

	// ErrTimeout is returned by the blocking client when a call overruns its
	// deadline. The outcome of the in-flight request is unknown.
	ErrTimeout = errors.New("request timed out")

	ErrConfigRequired    = errors.New("config is required")
	ErrSecretKeyRequired = errors.New("secret key is required")
	ErrAPIBaseInvalid    = errors.New("API base must be an absolute http(s) URL")
)

// RequestError is the error envelope the API returns with a non-2xx status.
type RequestError struct {
	// HTTPStatus is filled from the response, it is not part of the body.
	HTTPStatus    int       `json:"-"                         yaml:"http_status"`
	Type          ErrorType `json:"type"                      yaml:"type"`
	Code          ErrorCode `json:"code,omitempty"            yaml:"code,omitempty"`
	Message       string    `json:"message,omitempty"         yaml:"message,omitempty"`
	DeclineCode   string    `json:"decline_code,omitempty"    yaml:"decline_code,omitempty"`
	Charge        string    `json:"charge,omitempty"          yaml:"charge,omitempty"`
	Param         string    `json:"param,omitempty"           yaml:"param,omitempty"`
	DocURL        string    `json:"doc_url,omitempty"         yaml:"doc_url,omitempty"`
	RequestLogURL string    `json:"request_log_url,omitempty" yaml:"request_log_url,omitempty"`
}

// Error implements the error interface.
func (e *RequestError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.HTTPStatus)
	}

	if e.Code != "" {
		return fmt.Sprintf("stripe: %s (status %d, type %s, code %s)", msg, e.HTTPStatus, e.Type, e.Code)
	}

	return fmt.Sprintf("stripe: %s (status %d, type %s)", msg, e.HTTPStatus, e.Type)
}

// ErrorResponse is the wire shape of an API error body.
type ErrorResponse struct {
	Error *RequestError `json:"error"`
}

// ParseErrorResponse decodes an API error body and stamps the HTTP status on
// the envelope. A body that does not decode, or is not valid UTF-8, yields a
// synthetic envelope of unknown type.
func ParseErrorResponse(status int, data []byte) *RequestError {
	var errResp ErrorResponse

	err := json.Unmarshal(data, &errResp)
	if err != nil || errResp.Error == nil || !utf8.Valid(data) {
		return &RequestError{
			HTTPStatus: status,
			Type:       ErrorTypeUnknown,
			Message:    "failed to deserialize error",
		}
	}

	errResp.Error.HTTPStatus = status

	return errResp.Error
}

// ClientError reports a transport, connection or framing failure.
type ClientError struct {
	Message string
}

// Error implements the error interface.
func (e *ClientError) Error() string {
	return "stripe client error: " + e.Message
}

// JSONError reports a success body that could not be decoded. Path points
// at the offending field when it is known.
type JSONError struct {
	Path string
	Err  error
}

// Error implements the error interface.
func (e *JSONError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("error deserializing response: %v", e.Err)
	}

	return fmt.Sprintf("error deserializing response at %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying decode error.
func (e *JSONError) Unwrap() error {
	return e.Err
}

// NewJSONError builds a JSONError, extracting the field path from the
// standard library decode errors.
func NewJSONError(err error) *JSONError {
	jsonErr := &JSONError{Err: err}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		jsonErr.Path = typeErr.Field

		return jsonErr
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		jsonErr.Path = fmt.Sprintf("offset %d", syntaxErr.Offset)
	}

	return jsonErr
}

// QueryStringError reports parameters that could not be form encoded.
type QueryStringError struct {
	Err error
}

// Error implements the error interface.
func (e *QueryStringError) Error() string {
	return fmt.Sprintf("error serializing query parameters: %v", e.Err)
}

// Unwrap returns the underlying encoding error.
func (e *QueryStringError) Unwrap() error {
	return e.Err
}

// IsRecoverable reports whether err is of a kind a request strategy may
// recover from by issuing another attempt.
func IsRecoverable(err error) bool {
	reqErr := &RequestError{}
	if errors.As(err, &reqErr) {
		return true
	}

	clientErr := &ClientError{}

	return errors.As(err, &clientErr)
}

// IsNotFound checks if the error is a not found error.
func IsNotFound(err error) bool {
	reqErr := &RequestError{}
	if errors.As(err, &reqErr) {
		return reqErr.HTTPStatus == http.StatusNotFound || reqErr.Code == ErrorCodeResourceMissing
	}

	return false
}

// IsRateLimited checks if the error is a rate limit error.
func IsRateLimited(err error) bool {
	reqErr := &RequestError{}
	if errors.As(err, &reqErr) {
		return reqErr.HTTPStatus == http.StatusTooManyRequests || reqErr.Type == ErrorTypeRateLimit
	}

	return false
}

// IsCardError checks if the error is a card error.
func IsCardError(err error) bool {
	reqErr := &RequestError{}
	if errors.As(err, &reqErr) {
		return reqErr.Type == ErrorTypeCard
	}

	return false
}

// IsIdempotencyError checks if the error reports a reused idempotency key.
func IsIdempotencyError(err error) bool {
	reqErr := &RequestError{}
	if errors.As(err, &reqErr) {
		return reqErr.Type == ErrorTypeIdempotency
	}

	return false
}
