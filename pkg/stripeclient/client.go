// Package stripeclient provides the main entry point for creating Stripe API clients.
package stripeclient

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/fivetwenty-io/stripe-client/internal/client"
	"github.com/fivetwenty-io/stripe-client/internal/constants"
	"github.com/fivetwenty-io/stripe-client/pkg/stripe"
)

// New creates a new Stripe API client. An empty APIBase selects the public
// API and an empty StripeVersion the default version. config is not
// modified.
func New(config *stripe.Config) (stripe.Client, error) {
	normalized, err := normalizeConfig(config)
	if err != nil {
		return nil, err
	}

	c, err := client.New(normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return c, nil
}

// NewFromURL creates a client against apiBase, e.g. a mock server.
func NewFromURL(secretKey, apiBase string) (stripe.Client, error) {
	return New(&stripe.Config{
		SecretKey: secretKey,
		APIBase:   apiBase,
	})
}

// NewWithSecretKey creates a client against the public API.
func NewWithSecretKey(secretKey string) (stripe.Client, error) {
	return New(&stripe.Config{SecretKey: secretKey})
}

// NewBlocking creates a client whose calls block, each bounded by a 30
// second deadline.
func NewBlocking(config *stripe.Config) (stripe.BlockingClient, error) {
	c, err := New(config)
	if err != nil {
		return nil, err
	}

	return client.NewBlocking(c), nil
}

func normalizeConfig(config *stripe.Config) (*stripe.Config, error) {
	if config == nil {
		return nil, stripe.ErrConfigRequired
	}

	if config.SecretKey == "" {
		return nil, stripe.ErrSecretKeyRequired
	}

	normalized := *config

	apiBase, err := normalizeAPIBase(config.APIBase)
	if err != nil {
		return nil, err
	}

	normalized.APIBase = apiBase

	if normalized.StripeVersion == "" {
		normalized.StripeVersion = stripe.DefaultAPIVersion
	}

	return &normalized, nil
}

// normalizeAPIBase trims trailing slashes, adds https:// to a bare host and
// rejects anything that is not an absolute http(s) URL.
func normalizeAPIBase(apiBase string) (string, error) {
	apiBase = strings.TrimRight(strings.TrimSpace(apiBase), "/")
	if apiBase == "" {
		return constants.DefaultAPIBase, nil
	}

	if !strings.Contains(apiBase, "://") {
		apiBase = "https://" + apiBase
	}

	parsed, err := url.Parse(apiBase)
	if err != nil {
		return "", fmt.Errorf("%w: %w", stripe.ErrAPIBaseInvalid, err)
	}

	if (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return "", fmt.Errorf("%w: %s", stripe.ErrAPIBaseInvalid, apiBase)
	}

	return apiBase, nil
}
