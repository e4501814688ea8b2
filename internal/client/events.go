package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/fivetwenty-io/stripe-client/pkg/stripe"
)

// EventsClient implements stripe.EventsClient.
type EventsClient struct {
	requester stripe.Requester
}

// NewEventsClient creates a new events client.
func NewEventsClient(requester stripe.Requester) *EventsClient {
	return &EventsClient{requester: requester}
}

// Retrieve implements stripe.EventsClient.Retrieve.
func (c *EventsClient) Retrieve(ctx context.Context, id string) (*stripe.Event, error) {
	var event stripe.Event

	err := c.requester.Get(ctx, "/events/"+url.PathEscape(id), &event)
	if err != nil {
		return nil, fmt.Errorf("getting event: %w", err)
	}

	return &event, nil
}

// List implements stripe.EventsClient.List.
func (c *EventsClient) List(ctx context.Context, params stripe.EventListParams) (*stripe.List[stripe.Event], error) {
	var list stripe.List[stripe.Event]

	err := c.requester.GetQuery(ctx, "/events", params, &list)
	if err != nil {
		return nil, fmt.Errorf("listing events: %w", err)
	}

	return &list, nil
}

// ListAll implements stripe.EventsClient.ListAll.
func (c *EventsClient) ListAll(
	ctx context.Context, params stripe.EventListParams,
) (*stripe.ListPaginator[stripe.Event, stripe.EventListParams], error) {
	list, err := c.List(ctx, params)
	if err != nil {
		return nil, err
	}

	return stripe.NewListPaginator(list, params), nil
}
