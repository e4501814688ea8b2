package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/fivetwenty-io/stripe-client/pkg/stripe"
)

// PaymentIntentsClient implements stripe.PaymentIntentsClient.
type PaymentIntentsClient struct {
	requester stripe.Requester
}

// NewPaymentIntentsClient creates a new payment intents client.
func NewPaymentIntentsClient(requester stripe.Requester) *PaymentIntentsClient {
	return &PaymentIntentsClient{requester: requester}
}

func paymentIntentPath(id string, action string) string {
	path := "/payment_intents/" + url.PathEscape(id)
	if action != "" {
		path += "/" + action
	}

	return path
}

// Create implements stripe.PaymentIntentsClient.Create.
func (c *PaymentIntentsClient) Create(
	ctx context.Context, params *stripe.PaymentIntentParams,
) (*stripe.PaymentIntent, error) {
	var intent stripe.PaymentIntent

	err := c.requester.PostForm(ctx, "/payment_intents", params, &intent)
	if err != nil {
		return nil, fmt.Errorf("creating payment intent: %w", err)
	}

	return &intent, nil
}

// Retrieve implements stripe.PaymentIntentsClient.Retrieve.
func (c *PaymentIntentsClient) Retrieve(
	ctx context.Context, id string, params *stripe.Params,
) (*stripe.PaymentIntent, error) {
	var intent stripe.PaymentIntent

	err := c.requester.GetQuery(ctx, paymentIntentPath(id, ""), params, &intent)
	if err != nil {
		return nil, fmt.Errorf("getting payment intent: %w", err)
	}

	return &intent, nil
}

// Update implements stripe.PaymentIntentsClient.Update.
func (c *PaymentIntentsClient) Update(
	ctx context.Context, id string, params *stripe.PaymentIntentParams,
) (*stripe.PaymentIntent, error) {
	var intent stripe.PaymentIntent

	err := c.requester.PostForm(ctx, paymentIntentPath(id, ""), params, &intent)
	if err != nil {
		return nil, fmt.Errorf("updating payment intent: %w", err)
	}

	return &intent, nil
}

// Confirm implements stripe.PaymentIntentsClient.Confirm.
func (c *PaymentIntentsClient) Confirm(
	ctx context.Context, id string, params *stripe.PaymentIntentConfirmParams,
) (*stripe.PaymentIntent, error) {
	var intent stripe.PaymentIntent

	err := c.requester.PostForm(ctx, paymentIntentPath(id, "confirm"), params, &intent)
	if err != nil {
		return nil, fmt.Errorf("confirming payment intent: %w", err)
	}

	return &intent, nil
}

// Capture implements stripe.PaymentIntentsClient.Capture.
func (c *PaymentIntentsClient) Capture(
	ctx context.Context, id string, params *stripe.PaymentIntentCaptureParams,
) (*stripe.PaymentIntent, error) {
	var intent stripe.PaymentIntent

	err := c.requester.PostForm(ctx, paymentIntentPath(id, "capture"), params, &intent)
	if err != nil {
		return nil, fmt.Errorf("capturing payment intent: %w", err)
	}

	return &intent, nil
}

// Cancel implements stripe.PaymentIntentsClient.Cancel.
func (c *PaymentIntentsClient) Cancel(
	ctx context.Context, id string, params *stripe.PaymentIntentCancelParams,
) (*stripe.PaymentIntent, error) {
	var intent stripe.PaymentIntent

	err := c.requester.PostForm(ctx, paymentIntentPath(id, "cancel"), params, &intent)
	if err != nil {
		return nil, fmt.Errorf("canceling payment intent: %w", err)
	}

	return &intent, nil
}

// List implements stripe.PaymentIntentsClient.List.
func (c *PaymentIntentsClient) List(
	ctx context.Context, params stripe.PaymentIntentListParams,
) (*stripe.List[stripe.PaymentIntent], error) {
	var list stripe.List[stripe.PaymentIntent]

	err := c.requester.GetQuery(ctx, "/payment_intents", params, &list)
	if err != nil {
		return nil, fmt.Errorf("listing payment intents: %w", err)
	}

	return &list, nil
}

// ListAll implements stripe.PaymentIntentsClient.ListAll.
func (c *PaymentIntentsClient) ListAll(
	ctx context.Context, params stripe.PaymentIntentListParams,
) (*stripe.ListPaginator[stripe.PaymentIntent, stripe.PaymentIntentListParams], error) {
	list, err := c.List(ctx, params)
	if err != nil {
		return nil, err
	}

	return stripe.NewListPaginator(list, params), nil
}

// Search implements stripe.PaymentIntentsClient.Search.
func (c *PaymentIntentsClient) Search(
	ctx context.Context, params stripe.PaymentIntentSearchParams,
) (*stripe.SearchPaginator[stripe.PaymentIntent, stripe.PaymentIntentSearchParams], error) {
	var list stripe.SearchList[stripe.PaymentIntent]

	err := c.requester.GetQuery(ctx, "/payment_intents/search", params, &list)
	if err != nil {
		return nil, fmt.Errorf("searching payment intents: %w", err)
	}

	return stripe.NewSearchPaginator(&list, params), nil
}
