package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/fivetwenty-io/stripe-client/pkg/stripe"
)

// CustomersClient implements stripe.CustomersClient.
type CustomersClient struct {
	requester stripe.Requester
}

// NewCustomersClient creates a new customers client.
func NewCustomersClient(requester stripe.Requester) *CustomersClient {
	return &CustomersClient{requester: requester}
}

// Create implements stripe.CustomersClient.Create.
func (c *CustomersClient) Create(ctx context.Context, params *stripe.CustomerParams) (*stripe.Customer, error) {
	var customer stripe.Customer

	err := c.requester.PostForm(ctx, "/customers", params, &customer)
	if err != nil {
		return nil, fmt.Errorf("creating customer: %w", err)
	}

	return &customer, nil
}

// Retrieve implements stripe.CustomersClient.Retrieve.
func (c *CustomersClient) Retrieve(ctx context.Context, id string, params *stripe.Params) (*stripe.Customer, error) {
	var customer stripe.Customer

	err := c.requester.GetQuery(ctx, "/customers/"+url.PathEscape(id), params, &customer)
	if err != nil {
		return nil, fmt.Errorf("getting customer: %w", err)
	}

	return &customer, nil
}

// Update implements stripe.CustomersClient.Update.
func (c *CustomersClient) Update(ctx context.Context, id string, params *stripe.CustomerParams) (*stripe.Customer, error) {
	var customer stripe.Customer

	err := c.requester.PostForm(ctx, "/customers/"+url.PathEscape(id), params, &customer)
	if err != nil {
		return nil, fmt.Errorf("updating customer: %w", err)
	}

	return &customer, nil
}

// Delete implements stripe.CustomersClient.Delete.
func (c *CustomersClient) Delete(ctx context.Context, id string) (*stripe.DeletedObject, error) {
	var deleted stripe.DeletedObject

	err := c.requester.Delete(ctx, "/customers/"+url.PathEscape(id), &deleted)
	if err != nil {
		return nil, fmt.Errorf("deleting customer: %w", err)
	}

	return &deleted, nil
}

// List implements stripe.CustomersClient.List.
func (c *CustomersClient) List(ctx context.Context, params stripe.CustomerListParams) (*stripe.List[stripe.Customer], error) {
	var list stripe.List[stripe.Customer]

	err := c.requester.GetQuery(ctx, "/customers", params, &list)
	if err != nil {
		return nil, fmt.Errorf("listing customers: %w", err)
	}

	return &list, nil
}

// ListAll implements stripe.CustomersClient.ListAll.
func (c *CustomersClient) ListAll(
	ctx context.Context, params stripe.CustomerListParams,
) (*stripe.ListPaginator[stripe.Customer, stripe.CustomerListParams], error) {
	list, err := c.List(ctx, params)
	if err != nil {
		return nil, err
	}

	return stripe.NewListPaginator(list, params), nil
}

// Search implements stripe.CustomersClient.Search.
func (c *CustomersClient) Search(
	ctx context.Context, params stripe.CustomerSearchParams,
) (*stripe.SearchPaginator[stripe.Customer, stripe.CustomerSearchParams], error) {
	var list stripe.SearchList[stripe.Customer]

	err := c.requester.GetQuery(ctx, "/customers/search", params, &list)
	if err != nil {
		return nil, fmt.Errorf("searching customers: %w", err)
	}

	return stripe.NewSearchPaginator(&list, params), nil
}
