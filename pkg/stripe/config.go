package stripe

import "time"

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a stripe.Client.
//
// # Strategy
//
// Strategy is the default request strategy of the client. The zero value
// sends every request once without an idempotency key; use Retry or
// ExponentialBackoff to recover from 5xx, 429, 409 and connection failures.
// A single call can run under another strategy through Client.WithStrategy.
//
// # Timeouts
//
// The request pipeline does not enforce a wall clock deadline of its own.
// Deadlines come from the context passed to each call. HTTPTimeout only
// bounds a single attempt on the default transport.
type Config struct {
	// SecretKey: the secret API key sent as a Bearer token. Required.
	SecretKey string
	// APIBase: scheme, host and version prefix, e.g. "https://api.stripe.com/v1".
	// Defaults to the public API when empty.
	APIBase string

	// Optional headers
	// ClientID: sent as Client-Id when set.
	ClientID string
	// StripeAccount: connected account to act on behalf of.
	StripeAccount string
	// StripeVersion: pinned API version. Defaults to DefaultAPIVersion.
	StripeVersion APIVersion
	// AppInfo: appended to the User-Agent when set.
	AppInfo *AppInfo

	// Optional behavior
	// Strategy: default request strategy. Zero value is Once.
	Strategy RequestStrategy
	// HTTPTimeout: per-attempt timeout of the default transport.
	HTTPTimeout time.Duration
	// Debug: enables request/response logging when a Logger is provided.
	Debug bool
	// Logger: optional structured logger used by the HTTP layer.
	Logger Logger
	// Transport: replaces the default HTTP backend, mostly for tests.
	Transport Transport
}
