package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
	"unicode/utf8"

	"github.com/fivetwenty-io/stripe-client/internal/constants"
	"github.com/fivetwenty-io/stripe-client/pkg/stripe"
)

// Static errors for err113 compliance.
var (
	ErrInvalidUTF8     = errors.New("response body is not valid UTF-8")
	ErrRequestCanceled = errors.New("request canceled")
)

// invalidStrategyMessage is reported when a strategy stops before any
// attempt was made.
const invalidStrategyMessage = "Invalid strategy"

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Client runs logical API calls over a transport under a request strategy.
type Client struct {
	transport stripe.Transport
	logger    Logger
	debug     bool
}

// Option configures the client.
type Option func(*Client)

// WithLogger sets the logger.
func WithLogger(logger Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// NewClient creates a client over transport. A nil transport gets the
// default pooled transport.
func NewClient(transport stripe.Transport, opts ...Option) *Client {
	client := &Client{transport: transport}

	for _, opt := range opts {
		opt(client)
	}

	if client.transport == nil {
		client.transport = NewTransport(WithTimeout(constants.DefaultHTTPTimeout))
	}

	return client
}

// Transport returns the transport shared by every user of this client.
func (c *Client) Transport() stripe.Transport {
	return c.transport
}

// Execute sends req until it succeeds or strategy stops, and decodes a
// successful body into out. A nil out discards the body.
//
// The idempotency key, if the strategy has one, is set once and carried by
// every attempt. Each attempt gets a fresh copy of the request and its body.
func (c *Client) Execute(ctx context.Context, req *stripe.Request, strategy stripe.RequestStrategy, out any) error {
	template := req.Clone()
	if key, ok := strategy.IdempotencyKey(); ok {
		template.Header.Set(constants.HeaderIdempotencyKey, key)
	}

	var (
		lastErr     error = &stripe.ClientError{Message: invalidStrategyMessage}
		lastStatus  int
		shouldRetry *bool
		attempts    uint32
	)

	for {
		outcome := strategy.Test(lastStatus, shouldRetry, attempts)
		if outcome.Stop {
			return lastErr
		}

		if attempts > 0 {
			c.logRetry(template, strategy, attempts, lastStatus, outcome.Delay)
		}

		err := sleep(ctx, outcome.Delay)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrRequestCanceled, err)
		}

		attemptReq := template.Clone()
		c.logRequest(attemptReq, attempts+1)

		start := time.Now()
		resp, err := c.transport.Send(ctx, attemptReq)
		attempts++

		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return fmt.Errorf("%w: %w", ErrRequestCanceled, ctxErr)
			}

			lastErr = &stripe.ClientError{Message: err.Error()}
			lastStatus = 0
			shouldRetry = nil

			continue
		}

		lastStatus = resp.StatusCode
		shouldRetry = parseShouldRetry(resp.Header)
		c.logResponse(attemptReq, resp, time.Since(start))

		if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
			return decodeBody(resp.Body, out)
		}

		lastErr = stripe.ParseErrorResponse(resp.StatusCode, resp.Body)
	}
}

func decodeBody(body []byte, out any) error {
	if out == nil {
		return nil
	}

	if !utf8.Valid(body) {
		return &stripe.JSONError{Err: ErrInvalidUTF8}
	}

	err := json.Unmarshal(body, out)
	if err != nil {
		return stripe.NewJSONError(err)
	}

	return nil
}

// parseShouldRetry reads Stripe-Should-Retry. Anything but "true" or
// "false" counts as absent.
func parseShouldRetry(header http.Header) *bool {
	var value bool

	switch header.Get(constants.HeaderStripeShouldRetry) {
	case "true":
		value = true
	case "false":
		value = false
	default:
		return nil
	}

	return &value
}

func sleep(ctx context.Context, delay time.Duration) error {
	if delay <= 0 {
		return nil
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (c *Client) logRequest(req *stripe.Request, attempt uint32) {
	if !c.debug || c.logger == nil {
		return
	}

	fields := map[string]interface{}{
		"method":  req.Method,
		"url":     req.URL,
		"attempt": attempt,
	}
	if key := req.Header.Get(constants.HeaderIdempotencyKey); key != "" {
		fields["idempotency_key"] = key
	}

	c.logger.Debug("HTTP Request", fields)
}

func (c *Client) logResponse(req *stripe.Request, resp *stripe.Response, duration time.Duration) {
	if !c.debug || c.logger == nil {
		return
	}

	c.logger.Debug("HTTP Response", map[string]interface{}{
		"method":     req.Method,
		"url":        req.URL,
		"status":     resp.StatusCode,
		"request_id": resp.Header.Get(constants.HeaderRequestID),
		"duration":   duration.String(),
	})
}

func (c *Client) logRetry(req *stripe.Request, strategy stripe.RequestStrategy, attempts uint32, status int, delay time.Duration) {
	if c.logger == nil {
		return
	}

	c.logger.Warn("Retrying request", map[string]interface{}{
		"method":   req.Method,
		"url":      req.URL,
		"strategy": strategy.String(),
		"attempts": attempts,
		"status":   status,
		"delay":    delay.String(),
	})
}
