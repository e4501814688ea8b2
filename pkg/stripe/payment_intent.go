package stripe

// PaymentIntentStatus is the state of a payment intent.
type PaymentIntentStatus string

// Payment intent statuses.
const (
	PaymentIntentStatusCanceled              PaymentIntentStatus = "canceled"
	PaymentIntentStatusProcessing            PaymentIntentStatus = "processing"
	PaymentIntentStatusRequiresAction        PaymentIntentStatus = "requires_action"
	PaymentIntentStatusRequiresCapture       PaymentIntentStatus = "requires_capture"
	PaymentIntentStatusRequiresConfirmation  PaymentIntentStatus = "requires_confirmation"
	PaymentIntentStatusRequiresPaymentMethod PaymentIntentStatus = "requires_payment_method"
	PaymentIntentStatusSucceeded             PaymentIntentStatus = "succeeded"
)

// PaymentIntent guides a payment through its lifecycle.
type PaymentIntent struct {
	ID                 string                `json:"id"                            yaml:"id"`
	Object             string                `json:"object"                        yaml:"object"`
	Amount             int64                 `json:"amount"                        yaml:"amount"`
	AmountCapturable   int64                 `json:"amount_capturable"             yaml:"amount_capturable"`
	AmountReceived     int64                 `json:"amount_received"               yaml:"amount_received"`
	CanceledAt         int64                 `json:"canceled_at,omitempty"         yaml:"canceled_at,omitempty"`
	CancellationReason string                `json:"cancellation_reason,omitempty" yaml:"cancellation_reason,omitempty"`
	CaptureMethod      string                `json:"capture_method,omitempty"      yaml:"capture_method,omitempty"`
	ClientSecret       string                `json:"client_secret,omitempty"       yaml:"-"`
	ConfirmationMethod string                `json:"confirmation_method,omitempty" yaml:"confirmation_method,omitempty"`
	Created            int64                 `json:"created"                       yaml:"created"`
	Currency           string                `json:"currency"                      yaml:"currency"`
	Customer           *Expandable[Customer] `json:"customer,omitempty"            yaml:"-"`
	Description        string                `json:"description,omitempty"         yaml:"description,omitempty"`
	LastPaymentError   *RequestError         `json:"last_payment_error,omitempty"  yaml:"last_payment_error,omitempty"`
	LatestCharge       *Expandable[Charge]   `json:"latest_charge,omitempty"       yaml:"-"`
	Livemode           bool                  `json:"livemode"                      yaml:"livemode"`
	Metadata           Metadata              `json:"metadata,omitempty"            yaml:"metadata,omitempty"`
	PaymentMethodTypes []string              `json:"payment_method_types"          yaml:"payment_method_types"`
	ReceiptEmail       string                `json:"receipt_email,omitempty"       yaml:"receipt_email,omitempty"`
	Status             PaymentIntentStatus   `json:"status"                        yaml:"status"`
}

// ObjectID implements Object.
func (p PaymentIntent) ObjectID() string { return p.ID }

// ObjectType implements Object.
func (p PaymentIntent) ObjectType() string { return "payment_intent" }

// Cursor implements Paginate.
func (p PaymentIntent) Cursor() string { return p.ID }

// PaymentIntentParams is the set of parameters for creating or updating a
// payment intent.
type PaymentIntentParams struct {
	Params `form:"*"`

	Amount             *int64   `form:"amount"`
	CaptureMethod      *string  `form:"capture_method"`
	Confirm            *bool    `form:"confirm"`
	Currency           *string  `form:"currency"`
	Customer           *string  `form:"customer"`
	Description        *string  `form:"description"`
	PaymentMethod      *string  `form:"payment_method"`
	PaymentMethodTypes []string `form:"payment_method_types"`
	ReceiptEmail       *string  `form:"receipt_email"`
}

// PaymentIntentConfirmParams is the set of parameters for confirming a
// payment intent.
type PaymentIntentConfirmParams struct {
	Params `form:"*"`

	PaymentMethod *string `form:"payment_method"`
	ReturnURL     *string `form:"return_url"`
}

// PaymentIntentCaptureParams is the set of parameters for capturing a
// payment intent.
type PaymentIntentCaptureParams struct {
	Params `form:"*"`

	AmountToCapture *int64 `form:"amount_to_capture"`
}

// PaymentIntentCancelParams is the set of parameters for canceling a
// payment intent.
type PaymentIntentCancelParams struct {
	Params `form:"*"`

	CancellationReason *string `form:"cancellation_reason"`
}

// PaymentIntentListParams is the set of parameters for listing payment
// intents.
type PaymentIntentListParams struct {
	ListParams `form:"*"`

	Created  *RangeQueryParams `form:"created"`
	Customer *string           `form:"customer"`
}

// WithCursor implements Paginable.
func (p PaymentIntentListParams) WithCursor(cursor string) PaymentIntentListParams {
	p.StartingAfter = String(cursor)

	return p
}

// PaymentIntentSearchParams is the set of parameters for searching payment
// intents.
type PaymentIntentSearchParams struct {
	SearchParams `form:"*"`
}

// WithPage implements SearchPaginable.
func (p PaymentIntentSearchParams) WithPage(page string) PaymentIntentSearchParams {
	p.Page = String(page)

	return p
}
