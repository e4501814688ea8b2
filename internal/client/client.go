package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/fivetwenty-io/stripe-client/internal/auth"
	"github.com/fivetwenty-io/stripe-client/internal/constants"
	stripehttp "github.com/fivetwenty-io/stripe-client/internal/http"
	"github.com/fivetwenty-io/stripe-client/pkg/stripe"
)

// Static errors for err113 compliance.
var (
	ErrAPIBaseRequired = errors.New("API base URL is required")
)

// Client implements the stripe.Client interface.
type Client struct {
	httpClient *stripehttp.Client
	keys       auth.KeyManager
	baseURL    string
	headers    stripe.Headers
	appInfo    *stripe.AppInfo
	strategy   stripe.RequestStrategy

	// Resource clients
	customers      stripe.CustomersClient
	charges        stripe.ChargesClient
	paymentIntents stripe.PaymentIntentsClient
	refunds        stripe.RefundsClient
	events         stripe.EventsClient
}

// New creates a new Stripe API client. config.APIBase must already be
// normalized; see pkg/stripeclient for the public constructor.
func New(config *stripe.Config) (*Client, error) {
	if config == nil {
		return nil, stripe.ErrConfigRequired
	}

	if config.SecretKey == "" {
		return nil, stripe.ErrSecretKeyRequired
	}

	return NewWithKeyManager(config, auth.NewStaticKeyManager(config.SecretKey))
}

// NewWithKeyManager creates a client whose secret key comes from keys.
func NewWithKeyManager(config *stripe.Config, keys auth.KeyManager) (*Client, error) {
	if config == nil {
		return nil, stripe.ErrConfigRequired
	}

	if config.APIBase == "" {
		return nil, ErrAPIBaseRequired
	}

	client := &Client{
		httpClient: stripehttp.NewClient(createTransport(config), createHTTPClientOptions(config)...),
		keys:       keys,
		baseURL:    strings.TrimRight(config.APIBase, "/"),
		headers: stripe.Headers{
			ClientID:      config.ClientID,
			StripeAccount: config.StripeAccount,
			StripeVersion: config.StripeVersion,
		},
		strategy: config.Strategy,
	}

	if config.AppInfo != nil {
		info := *config.AppInfo
		client.appInfo = &info
	}

	client.initializeResourceClients()

	return client, nil
}

func createHTTPClientOptions(config *stripe.Config) []stripehttp.Option {
	var opts []stripehttp.Option

	if config.Logger != nil {
		opts = append(opts, stripehttp.WithLogger(&loggerAdapter{logger: config.Logger}))
	}

	if config.Debug {
		opts = append(opts, stripehttp.WithDebug(true))
	}

	return opts
}

// createTransport returns config.Transport or the default pooled backend.
func createTransport(config *stripe.Config) stripe.Transport {
	if config.Transport != nil {
		return config.Transport
	}

	timeout := config.HTTPTimeout
	if timeout <= 0 {
		timeout = constants.DefaultHTTPTimeout
	}

	opts := []stripehttp.TransportOption{stripehttp.WithTimeout(timeout)}
	if config.Logger != nil && config.Debug {
		opts = append(opts, stripehttp.WithTransportLogger(&loggerAdapter{logger: config.Logger}))
	}

	return stripehttp.NewTransport(opts...)
}

// Get sends a GET request to path.
func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.GetQuery(ctx, path, nil, out)
}

// GetQuery sends a GET request to path with params encoded in the query.
func (c *Client) GetQuery(ctx context.Context, path string, params any, out any) error {
	return c.send(ctx, http.MethodGet, path, params, false, out)
}

// Delete sends a DELETE request to path.
func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.DeleteQuery(ctx, path, nil, out)
}

// DeleteQuery sends a DELETE request to path with params encoded in the query.
func (c *Client) DeleteQuery(ctx context.Context, path string, params any, out any) error {
	return c.send(ctx, http.MethodDelete, path, params, false, out)
}

// Post sends a POST request to path with an empty form body.
func (c *Client) Post(ctx context.Context, path string, out any) error {
	return c.PostForm(ctx, path, nil, out)
}

// PostForm sends a POST request to path with form encoded in the body.
func (c *Client) PostForm(ctx context.Context, path string, form any, out any) error {
	return c.send(ctx, http.MethodPost, path, form, true, out)
}

func (c *Client) send(ctx context.Context, method, path string, params any, inBody bool, out any) error {
	req, err := c.newRequest(ctx, method, path, params, inBody)
	if err != nil {
		return err
	}

	return c.httpClient.Execute(ctx, req, c.strategy, out)
}

func (c *Client) newRequest(ctx context.Context, method, path string, params any, inBody bool) (*stripe.Request, error) {
	encoded, err := stripe.EncodeForm(params, c.headers.Expand...)
	if err != nil {
		return nil, err
	}

	key, err := c.keys.GetKey(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get secret key: %w", err)
	}

	req := &stripe.Request{
		Method: method,
		URL:    c.url(path),
		Header: make(http.Header),
	}

	req.Header.Set(constants.HeaderAuthorization, auth.AuthorizationHeader(key))
	req.Header.Set(constants.HeaderUserAgent, stripe.UserAgent(c.appInfo))
	c.headers.Apply(req.Header)

	if inBody {
		req.Header.Set(constants.HeaderContentType, constants.ContentTypeForm)
		req.Body = []byte(encoded)
	} else if encoded != "" {
		req.URL += "?" + encoded
	}

	return req, nil
}

func (c *Client) url(path string) string {
	return c.baseURL + "/" + strings.TrimLeft(path, "/")
}

// WithHeaders implements stripe.Client.WithHeaders.
func (c *Client) WithHeaders(headers stripe.Headers) stripe.Client {
	clone := c.clone()
	clone.headers = headers
	clone.headers.Expand = append([]string(nil), headers.Expand...)

	return clone
}

// WithStrategy implements stripe.Client.WithStrategy.
func (c *Client) WithStrategy(strategy stripe.RequestStrategy) stripe.Client {
	clone := c.clone()
	clone.strategy = strategy

	return clone
}

func (c *Client) clone() *Client {
	clone := *c
	clone.headers.Expand = append([]string(nil), c.headers.Expand...)

	if c.appInfo != nil {
		info := *c.appInfo
		clone.appInfo = &info
	}

	clone.initializeResourceClients()

	return &clone
}

// Headers returns a copy of the default headers.
func (c *Client) Headers() stripe.Headers {
	headers := c.headers
	headers.Expand = append([]string(nil), c.headers.Expand...)

	return headers
}

// Strategy returns the default request strategy.
func (c *Client) Strategy() stripe.RequestStrategy {
	return c.strategy
}

// SetAppInfo implements stripe.Client.SetAppInfo.
func (c *Client) SetAppInfo(name, version, url string) {
	c.appInfo = &stripe.AppInfo{Name: name, Version: version, URL: url}
}

// SetStripeAccount implements stripe.Client.SetStripeAccount.
func (c *Client) SetStripeAccount(id string) {
	c.headers.StripeAccount = id
}

// SetClientID implements stripe.Client.SetClientID.
func (c *Client) SetClientID(id string) {
	c.headers.ClientID = id
}

// HTTPClient returns the request pipeline shared by clones of this client.
func (c *Client) HTTPClient() *stripehttp.Client {
	return c.httpClient
}

// Customers implements stripe.Client.Customers.
func (c *Client) Customers() stripe.CustomersClient {
	return c.customers
}

// Charges implements stripe.Client.Charges.
func (c *Client) Charges() stripe.ChargesClient {
	return c.charges
}

// PaymentIntents implements stripe.Client.PaymentIntents.
func (c *Client) PaymentIntents() stripe.PaymentIntentsClient {
	return c.paymentIntents
}

// Refunds implements stripe.Client.Refunds.
func (c *Client) Refunds() stripe.RefundsClient {
	return c.refunds
}

// Events implements stripe.Client.Events.
func (c *Client) Events() stripe.EventsClient {
	return c.events
}

// initializeResourceClients binds the resource clients to c. Clones call it
// again so their resource clients use the clone's headers.
func (c *Client) initializeResourceClients() {
	c.customers = NewCustomersClient(c)
	c.charges = NewChargesClient(c)
	c.paymentIntents = NewPaymentIntentsClient(c)
	c.refunds = NewRefundsClient(c)
	c.events = NewEventsClient(c)
}

// loggerAdapter adapts stripe.Logger to the HTTP layer's Logger.
type loggerAdapter struct {
	logger stripe.Logger
}

func (l *loggerAdapter) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug(msg, fields)
}

func (l *loggerAdapter) Info(msg string, fields map[string]interface{}) {
	l.logger.Info(msg, fields)
}

func (l *loggerAdapter) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn(msg, fields)
}

func (l *loggerAdapter) Error(msg string, fields map[string]interface{}) {
	l.logger.Error(msg, fields)
}
