package stripeclient_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/stripe-client/pkg/stripe"
	"github.com/fivetwenty-io/stripe-client/pkg/stripeclient"
)

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		config  *stripe.Config
		wantErr error
	}{
		{"nil config", nil, stripe.ErrConfigRequired},
		{"missing secret key", &stripe.Config{}, stripe.ErrSecretKeyRequired},
		{"default API base", &stripe.Config{SecretKey: "sk_test_123"}, nil},
		{"bare host", &stripe.Config{SecretKey: "sk_test_123", APIBase: "api.stripe.com/v1/"}, nil},
		{"unsupported scheme", &stripe.Config{SecretKey: "sk_test_123", APIBase: "ftp://api.stripe.com/v1"}, stripe.ErrAPIBaseInvalid},
		{"missing host", &stripe.Config{SecretKey: "sk_test_123", APIBase: "https:///v1"}, stripe.ErrAPIBaseInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			client, err := stripeclient.New(tt.config)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.NotNil(t, client)
		})
	}
}

func TestNew_DoesNotModifyConfig(t *testing.T) {
	t.Parallel()

	config := &stripe.Config{SecretKey: "sk_test_123", APIBase: "api.stripe.com/v1/"}

	client, err := stripeclient.New(config)
	require.NoError(t, err)

	assert.Equal(t, "api.stripe.com/v1/", config.APIBase)
	assert.Empty(t, config.StripeVersion)
	assert.Equal(t, stripe.DefaultAPIVersion, client.Headers().StripeVersion)
}

func TestNewFromURL(t *testing.T) {
	t.Parallel()

	var (
		path    string
		version string
	)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		version = r.Header.Get("Stripe-Version")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"cus_1","object":"customer","email":"jenny@example.com"}`))
	}))
	defer server.Close()

	client, err := stripeclient.NewFromURL("sk_test_123", server.URL+"/v1/")
	require.NoError(t, err)

	customer, err := client.Customers().Retrieve(context.Background(), "cus_1", nil)
	require.NoError(t, err)
	assert.Equal(t, "jenny@example.com", customer.Email)
	assert.Equal(t, "/v1/customers/cus_1", path)
	assert.Equal(t, string(stripe.DefaultAPIVersion), version)
}

func TestNewWithSecretKey(t *testing.T) {
	t.Parallel()

	client, err := stripeclient.NewWithSecretKey("sk_test_123")
	require.NoError(t, err)
	assert.NotNil(t, client.Customers())
}

func TestNewBlocking(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"re_1","object":"refund","amount":500}`))
	}))
	defer server.Close()

	blocking, err := stripeclient.NewBlocking(&stripe.Config{SecretKey: "sk_test_123", APIBase: server.URL + "/v1"})
	require.NoError(t, err)

	var refund stripe.Refund
	require.NoError(t, blocking.Get("refunds/re_1", &refund))
	assert.Equal(t, int64(500), refund.Amount)

	_, err = stripeclient.NewBlocking(nil)
	require.ErrorIs(t, err, stripe.ErrConfigRequired)
}
