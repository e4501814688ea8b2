package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/fivetwenty-io/stripe-client/pkg/stripe"
)

// RefundsClient implements stripe.RefundsClient.
type RefundsClient struct {
	requester stripe.Requester
}

// NewRefundsClient creates a new refunds client.
func NewRefundsClient(requester stripe.Requester) *RefundsClient {
	return &RefundsClient{requester: requester}
}

// Create implements stripe.RefundsClient.Create.
func (c *RefundsClient) Create(ctx context.Context, params *stripe.RefundParams) (*stripe.Refund, error) {
	var refund stripe.Refund

	err := c.requester.PostForm(ctx, "/refunds", params, &refund)
	if err != nil {
		return nil, fmt.Errorf("creating refund: %w", err)
	}

	return &refund, nil
}

// Retrieve implements stripe.RefundsClient.Retrieve.
func (c *RefundsClient) Retrieve(ctx context.Context, id string, params *stripe.Params) (*stripe.Refund, error) {
	var refund stripe.Refund

	err := c.requester.GetQuery(ctx, "/refunds/"+url.PathEscape(id), params, &refund)
	if err != nil {
		return nil, fmt.Errorf("getting refund: %w", err)
	}

	return &refund, nil
}

// List implements stripe.RefundsClient.List.
func (c *RefundsClient) List(ctx context.Context, params stripe.RefundListParams) (*stripe.List[stripe.Refund], error) {
	var list stripe.List[stripe.Refund]

	err := c.requester.GetQuery(ctx, "/refunds", params, &list)
	if err != nil {
		return nil, fmt.Errorf("listing refunds: %w", err)
	}

	return &list, nil
}
