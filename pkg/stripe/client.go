package stripe

import "context"

// Requester is the low-level request surface resource clients are built on.
// A nil out discards the response body.
type Requester interface {
	Backend

	Get(ctx context.Context, path string, out any) error
	Delete(ctx context.Context, path string, out any) error
	DeleteQuery(ctx context.Context, path string, params any, out any) error
	Post(ctx context.Context, path string, out any) error
	PostForm(ctx context.Context, path string, form any, out any) error
}

// ResourceClients provides access to the resource-specific clients.
type ResourceClients interface {
	Customers() CustomersClient
	Charges() ChargesClient
	PaymentIntents() PaymentIntentsClient
	Refunds() RefundsClient
	Events() EventsClient
}

// Client is a Stripe API client.
type Client interface {
	Requester
	ResourceClients

	// WithHeaders returns a copy of the client using headers in place of its
	// defaults. The copy shares the transport.
	WithHeaders(headers Headers) Client
	// WithStrategy returns a copy of the client using another request
	// strategy. The copy shares the transport.
	WithStrategy(strategy RequestStrategy) Client
	// Headers returns the headers sent with every request.
	Headers() Headers

	// SetAppInfo identifies the application in the User-Agent. Version and
	// url may be empty. Mutators are meant for setup, before the client is
	// shared between goroutines.
	SetAppInfo(name, version, url string)
	// SetStripeAccount sets the connected account requests act on.
	SetStripeAccount(id string)
	// SetClientID sets the Client-Id header.
	SetClientID(id string)
}

// BlockingClient runs calls synchronously, each bounded by a fixed
// deadline. A call that overruns it fails with ErrTimeout and is not
// retried; its outcome on the server is unknown.
type BlockingClient interface {
	Get(path string, out any) error
	GetQuery(path string, params any, out any) error
	Delete(path string, out any) error
	DeleteQuery(path string, params any, out any) error
	Post(path string, out any) error
	PostForm(path string, form any, out any) error

	// Do runs fn against the underlying client under the call deadline.
	Do(fn func(ctx context.Context, client Client) error) error
	// WithHeaders returns a copy using headers in place of its defaults.
	WithHeaders(headers Headers) BlockingClient
	// Client returns the underlying context-aware client.
	Client() Client
}

// CustomersClient defines operations for customers.
type CustomersClient interface {
	Create(ctx context.Context, params *CustomerParams) (*Customer, error)
	Retrieve(ctx context.Context, id string, params *Params) (*Customer, error)
	Update(ctx context.Context, id string, params *CustomerParams) (*Customer, error)
	Delete(ctx context.Context, id string) (*DeletedObject, error)
	List(ctx context.Context, params CustomerListParams) (*List[Customer], error)
	ListAll(ctx context.Context, params CustomerListParams) (*ListPaginator[Customer, CustomerListParams], error)
	Search(ctx context.Context, params CustomerSearchParams) (*SearchPaginator[Customer, CustomerSearchParams], error)
}

// ChargesClient defines operations for charges.
type ChargesClient interface {
	Create(ctx context.Context, params *ChargeParams) (*Charge, error)
	Retrieve(ctx context.Context, id string, params *Params) (*Charge, error)
	Update(ctx context.Context, id string, params *ChargeParams) (*Charge, error)
	Capture(ctx context.Context, id string, params *ChargeCaptureParams) (*Charge, error)
	List(ctx context.Context, params ChargeListParams) (*List[Charge], error)
	ListAll(ctx context.Context, params ChargeListParams) (*ListPaginator[Charge, ChargeListParams], error)
}

// PaymentIntentsClient defines operations for payment intents.
type PaymentIntentsClient interface {
	Create(ctx context.Context, params *PaymentIntentParams) (*PaymentIntent, error)
	Retrieve(ctx context.Context, id string, params *Params) (*PaymentIntent, error)
	Update(ctx context.Context, id string, params *PaymentIntentParams) (*PaymentIntent, error)
	Confirm(ctx context.Context, id string, params *PaymentIntentConfirmParams) (*PaymentIntent, error)
	Capture(ctx context.Context, id string, params *PaymentIntentCaptureParams) (*PaymentIntent, error)
	Cancel(ctx context.Context, id string, params *PaymentIntentCancelParams) (*PaymentIntent, error)
	List(ctx context.Context, params PaymentIntentListParams) (*List[PaymentIntent], error)
	ListAll(
		ctx context.Context, params PaymentIntentListParams,
	) (*ListPaginator[PaymentIntent, PaymentIntentListParams], error)
	Search(
		ctx context.Context, params PaymentIntentSearchParams,
	) (*SearchPaginator[PaymentIntent, PaymentIntentSearchParams], error)
}

// RefundsClient defines operations for refunds.
type RefundsClient interface {
	Create(ctx context.Context, params *RefundParams) (*Refund, error)
	Retrieve(ctx context.Context, id string, params *Params) (*Refund, error)
	List(ctx context.Context, params RefundListParams) (*List[Refund], error)
}

// EventsClient defines operations for events.
type EventsClient interface {
	Retrieve(ctx context.Context, id string) (*Event, error)
	List(ctx context.Context, params EventListParams) (*List[Event], error)
	ListAll(ctx context.Context, params EventListParams) (*ListPaginator[Event, EventListParams], error)
}
