package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// Library identity.
const (
	// LibraryVersion is the version reported in the User-Agent header.
	LibraryVersion = "0.4.0"

	// UserAgentPrefix is the fixed leading part of the User-Agent header.
	UserAgentPrefix = "Stripe/v1 GoBindings/"
)

// API endpoints.
const (
	// DefaultAPIBase is the default Stripe API base URL, version prefix included.
	DefaultAPIBase = "https://api.stripe.com/v1"

	// VersionedPathPrefix is the prefix every paginatable list URL starts with.
	VersionedPathPrefix = "/v1/"
)

// HTTP header names.
const (
	HeaderAuthorization     = "Authorization"
	HeaderStripeAccount     = "Stripe-Account"
	HeaderStripeVersion     = "Stripe-Version"
	HeaderClientID          = "Client-Id"
	HeaderUserAgent         = "User-Agent"
	HeaderIdempotencyKey    = "Idempotency-Key"
	HeaderContentType       = "Content-Type"
	HeaderStripeShouldRetry = "Stripe-Should-Retry"
	HeaderStripeSignature   = "Stripe-Signature"
	HeaderRequestID         = "Request-Id"

	// ContentTypeForm is the content type of every POST body.
	ContentTypeForm = "application/x-www-form-urlencoded"
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for a single HTTP attempt.
	DefaultHTTPTimeout = 80 * time.Second

	// BlockingCallTimeout bounds every call made through the blocking client.
	BlockingCallTimeout = 30 * time.Second
)

// Retry and backoff.
const (
	// DefaultRetryDelay is the fixed delay between attempts of a Retry strategy.
	DefaultRetryDelay = 500 * time.Millisecond

	// DefaultBackoffBase is the first delay of an ExponentialBackoff strategy.
	DefaultBackoffBase = 500 * time.Millisecond

	// MaxBackoffDelay caps every backoff delay.
	MaxBackoffDelay = 32 * time.Second
)

// Webhooks.
const (
	// WebhookTolerance is the maximum allowed distance between the signed
	// timestamp and the current time.
	WebhookTolerance = 300 * time.Second

	// MaxWebhookBodyBytes bounds the size of a webhook request body.
	MaxWebhookBodyBytes = 65536

	// DefaultEventSubjectPrefix is the NATS subject prefix for relayed events.
	DefaultEventSubjectPrefix = "stripe.events"
)

// Pagination.
const (
	// DefaultPageSize is the list limit used by the CLI.
	DefaultPageSize = 10

	// MaxPageSize is the largest limit the API accepts.
	MaxPageSize = 100
)

// UI and display constants.
const (
	// NotAvailable is shown for absent values.
	NotAvailable = "N/A"

	// MaskedSecret replaces secrets in displayed configuration.
	MaskedSecret = "***"
)

// Format constants.
const (
	// FormatJSON is the JSON output format.
	FormatJSON = "json"

	// FormatYAML is the YAML output format.
	FormatYAML = "yaml"

	// FormatTable is the table output format.
	FormatTable = "table"
)
