package client

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fivetwenty-io/stripe-client/internal/constants"
	"github.com/fivetwenty-io/stripe-client/pkg/stripe"
)

// BlockingClient implements stripe.BlockingClient on top of a stripe.Client.
type BlockingClient struct {
	inner   stripe.Client
	timeout time.Duration
}

// BlockingOption configures a BlockingClient.
type BlockingOption func(*BlockingClient)

// WithCallTimeout replaces the per-call deadline.
func WithCallTimeout(timeout time.Duration) BlockingOption {
	return func(b *BlockingClient) {
		if timeout > 0 {
			b.timeout = timeout
		}
	}
}

// NewBlocking wraps inner. Every call gets its own deadline, 30 seconds
// unless overridden.
func NewBlocking(inner stripe.Client, opts ...BlockingOption) *BlockingClient {
	b := &BlockingClient{
		inner:   inner,
		timeout: constants.BlockingCallTimeout,
	}

	for _, opt := range opts {
		opt(b)
	}

	return b
}

// Do implements stripe.BlockingClient.Do.
func (b *BlockingClient) Do(fn func(ctx context.Context, client stripe.Client) error) error {
	ctx, cancel := context.WithTimeout(context.Background(), b.timeout)
	defer cancel()

	err := fn(ctx, b.inner)
	if err != nil && errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("%w: call exceeded %s", stripe.ErrTimeout, b.timeout)
	}

	return err
}

// Get implements stripe.BlockingClient.Get.
func (b *BlockingClient) Get(path string, out any) error {
	return b.Do(func(ctx context.Context, client stripe.Client) error {
		return client.Get(ctx, path, out)
	})
}

// GetQuery implements stripe.BlockingClient.GetQuery.
func (b *BlockingClient) GetQuery(path string, params any, out any) error {
	return b.Do(func(ctx context.Context, client stripe.Client) error {
		return client.GetQuery(ctx, path, params, out)
	})
}

// Delete implements stripe.BlockingClient.Delete.
func (b *BlockingClient) Delete(path string, out any) error {
	return b.Do(func(ctx context.Context, client stripe.Client) error {
		return client.Delete(ctx, path, out)
	})
}

// DeleteQuery implements stripe.BlockingClient.DeleteQuery.
func (b *BlockingClient) DeleteQuery(path string, params any, out any) error {
	return b.Do(func(ctx context.Context, client stripe.Client) error {
		return client.DeleteQuery(ctx, path, params, out)
	})
}

// Post implements stripe.BlockingClient.Post.
func (b *BlockingClient) Post(path string, out any) error {
	return b.Do(func(ctx context.Context, client stripe.Client) error {
		return client.Post(ctx, path, out)
	})
}

// PostForm implements stripe.BlockingClient.PostForm.
func (b *BlockingClient) PostForm(path string, form any, out any) error {
	return b.Do(func(ctx context.Context, client stripe.Client) error {
		return client.PostForm(ctx, path, form, out)
	})
}

// WithHeaders implements stripe.BlockingClient.WithHeaders.
func (b *BlockingClient) WithHeaders(headers stripe.Headers) stripe.BlockingClient {
	return &BlockingClient{inner: b.inner.WithHeaders(headers), timeout: b.timeout}
}

// Client implements stripe.BlockingClient.Client.
func (b *BlockingClient) Client() stripe.Client {
	return b.inner
}

// Timeout returns the per-call deadline.
func (b *BlockingClient) Timeout() time.Duration {
	return b.timeout
}
