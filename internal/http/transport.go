package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hashicorp/go-cleanhttp"
	"github.com/hashicorp/go-retryablehttp"

	"github.com/fivetwenty-io/stripe-client/pkg/stripe"
)

// RetryableTransport is the default stripe.Transport. It sends each request
// exactly once over a pooled connection; retries belong to the request
// strategy.
type RetryableTransport struct {
	client *retryablehttp.Client
}

// TransportOption configures a RetryableTransport.
type TransportOption func(*retryablehttp.Client)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(httpClient *http.Client) TransportOption {
	return func(c *retryablehttp.Client) {
		c.HTTPClient = httpClient
	}
}

// WithTimeout sets the per-attempt timeout.
func WithTimeout(timeout time.Duration) TransportOption {
	return func(c *retryablehttp.Client) {
		c.HTTPClient.Timeout = timeout
	}
}

// WithTransportLogger routes the transport's own logging to logger.
func WithTransportLogger(logger Logger) TransportOption {
	return func(c *retryablehttp.Client) {
		if logger != nil {
			c.Logger = &leveledLogger{logger: logger}
		}
	}
}

// NewTransport creates the default transport.
func NewTransport(opts ...TransportOption) *RetryableTransport {
	client := retryablehttp.NewClient()
	client.HTTPClient = cleanhttp.DefaultPooledClient()
	client.Logger = nil
	client.RetryMax = 0
	client.CheckRetry = neverRetry
	client.ErrorHandler = retryablehttp.PassthroughErrorHandler

	for _, opt := range opts {
		opt(client)
	}

	return &RetryableTransport{client: client}
}

// Send implements stripe.Transport.
func (t *RetryableTransport) Send(ctx context.Context, req *stripe.Request) (*stripe.Response, error) {
	var body interface{}
	if len(req.Body) > 0 {
		body = req.Body
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, req.URL, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	for key, values := range req.Header {
		httpReq.Header[key] = append([]string(nil), values...)
	}

	resp, err := t.client.Do(httpReq)
	if err != nil {
		if resp != nil {
			_ = resp.Body.Close()
		}

		return nil, fmt.Errorf("failed to execute request: %w", err)
	}

	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return &stripe.Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       data,
	}, nil
}

// HTTPClient exposes the pooled client, e.g. to close idle connections.
func (t *RetryableTransport) HTTPClient() *http.Client {
	return t.client.HTTPClient
}

func neverRetry(_ context.Context, _ *http.Response, _ error) (bool, error) {
	return false, nil
}

// leveledLogger adapts Logger to retryablehttp.LeveledLogger.
type leveledLogger struct {
	logger Logger
}

func (l *leveledLogger) Error(msg string, keysAndValues ...interface{}) {
	l.logger.Error(msg, kvFields(keysAndValues))
}

func (l *leveledLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Info(msg, kvFields(keysAndValues))
}

func (l *leveledLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.logger.Debug(msg, kvFields(keysAndValues))
}

func (l *leveledLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.logger.Warn(msg, kvFields(keysAndValues))
}

func kvFields(keysAndValues []interface{}) map[string]interface{} {
	fields := make(map[string]interface{}, len(keysAndValues)/2)

	for i := 0; i+1 < len(keysAndValues); i += 2 {
		fields[fmt.Sprint(keysAndValues[i])] = keysAndValues[i+1]
	}

	return fields
}
