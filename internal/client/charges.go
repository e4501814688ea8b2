package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/fivetwenty-io/stripe-client/pkg/stripe"
)

// ChargesClient implements stripe.ChargesClient.
type ChargesClient struct {
	requester stripe.Requester
}

// NewChargesClient creates a new charges client.
func NewChargesClient(requester stripe.Requester) *ChargesClient {
	return &ChargesClient{requester: requester}
}

// Create implements stripe.ChargesClient.Create.
func (c *ChargesClient) Create(ctx context.Context, params *stripe.ChargeParams) (*stripe.Charge, error) {
	var charge stripe.Charge

	err := c.requester.PostForm(ctx, "/charges", params, &charge)
	if err != nil {
		return nil, fmt.Errorf("creating charge: %w", err)
	}

	return &charge, nil
}

// Retrieve implements stripe.ChargesClient.Retrieve.
func (c *ChargesClient) Retrieve(ctx context.Context, id string, params *stripe.Params) (*stripe.Charge, error) {
	var charge stripe.Charge

	err := c.requester.GetQuery(ctx, "/charges/"+url.PathEscape(id), params, &charge)
	if err != nil {
		return nil, fmt.Errorf("getting charge: %w", err)
	}

	return &charge, nil
}

// Update implements stripe.ChargesClient.Update.
func (c *ChargesClient) Update(ctx context.Context, id string, params *stripe.ChargeParams) (*stripe.Charge, error) {
	var charge stripe.Charge

	err := c.requester.PostForm(ctx, "/charges/"+url.PathEscape(id), params, &charge)
	if err != nil {
		return nil, fmt.Errorf("updating charge: %w", err)
	}

	return &charge, nil
}

// Capture implements stripe.ChargesClient.Capture.
func (c *ChargesClient) Capture(ctx context.Context, id string, params *stripe.ChargeCaptureParams) (*stripe.Charge, error) {
	var charge stripe.Charge

	err := c.requester.PostForm(ctx, "/charges/"+url.PathEscape(id)+"/capture", params, &charge)
	if err != nil {
		return nil, fmt.Errorf("capturing charge: %w", err)
	}

	return &charge, nil
}

// List implements stripe.ChargesClient.List.
func (c *ChargesClient) List(ctx context.Context, params stripe.ChargeListParams) (*stripe.List[stripe.Charge], error) {
	var list stripe.List[stripe.Charge]

	err := c.requester.GetQuery(ctx, "/charges", params, &list)
	if err != nil {
		return nil, fmt.Errorf("listing charges: %w", err)
	}

	return &list, nil
}

// ListAll implements stripe.ChargesClient.ListAll.
func (c *ChargesClient) ListAll(
	ctx context.Context, params stripe.ChargeListParams,
) (*stripe.ListPaginator[stripe.Charge, stripe.ChargeListParams], error) {
	list, err := c.List(ctx, params)
	if err != nil {
		return nil, err
	}

	return stripe.NewListPaginator(list, params), nil
}
