package constants

import "errors"

// Configuration errors.
var (
	ErrUnknownConfigKey   = errors.New("unknown configuration key")
	ErrNotInteractive     = errors.New("no secret key configured and stdin is not a terminal")
	ErrEmptySecretEntered = errors.New("empty secret key entered")
)

// CLI validation errors.
var (
	ErrInvalidOutputFormat = errors.New("invalid output format, expected table, json or yaml")
	ErrWebhookSecretNeeded = errors.New("--secret or the webhook_secret setting is required")
	ErrSignatureRequired   = errors.New("--signature is required")
	ErrLimitOutOfRange     = errors.New("--limit must be between 1 and 100")
)

// File system errors.
var (
	ErrNotRegularFile             = errors.New("path is not a regular file")
	ErrDirectoryTraversalDetected = errors.New("directory traversal detected in file path")
)
