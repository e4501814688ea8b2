package stripe

// ChargeStatus is the state of a charge.
type ChargeStatus string

// Charge statuses.
const (
	ChargeStatusFailed    ChargeStatus = "failed"
	ChargeStatusPending   ChargeStatus = "pending"
	ChargeStatusSucceeded ChargeStatus = "succeeded"
)

// Charge represents an attempt to move money.
type Charge struct {
	ID                  string                     `json:"id"                             yaml:"id"`
	Object              string                     `json:"object"                         yaml:"object"`
	Amount              int64                      `json:"amount"                         yaml:"amount"`
	AmountCaptured      int64                      `json:"amount_captured"                yaml:"amount_captured"`
	AmountRefunded      int64                      `json:"amount_refunded"                yaml:"amount_refunded"`
	Captured            bool                       `json:"captured"                       yaml:"captured"`
	Created             int64                      `json:"created"                        yaml:"created"`
	Currency            string                     `json:"currency"                       yaml:"currency"`
	Customer            *Expandable[Customer]      `json:"customer,omitempty"             yaml:"-"`
	Description         string                     `json:"description,omitempty"          yaml:"description,omitempty"`
	FailureCode         string                     `json:"failure_code,omitempty"         yaml:"failure_code,omitempty"`
	FailureMessage      string                     `json:"failure_message,omitempty"      yaml:"failure_message,omitempty"`
	Invoice             *Expandable[Invoice]       `json:"invoice,omitempty"              yaml:"-"`
	Livemode            bool                       `json:"livemode"                       yaml:"livemode"`
	Metadata            Metadata                   `json:"metadata,omitempty"             yaml:"metadata,omitempty"`
	Paid                bool                       `json:"paid"                           yaml:"paid"`
	PaymentIntent       *Expandable[PaymentIntent] `json:"payment_intent,omitempty"       yaml:"-"`
	ReceiptEmail        string                     `json:"receipt_email,omitempty"        yaml:"receipt_email,omitempty"`
	Refunded            bool                       `json:"refunded"                       yaml:"refunded"`
	StatementDescriptor string                     `json:"statement_descriptor,omitempty" yaml:"statement_descriptor,omitempty"`
	Status              ChargeStatus               `json:"status"                         yaml:"status"`
}

// ObjectID implements Object.
func (c Charge) ObjectID() string { return c.ID }

// ObjectType implements Object.
func (c Charge) ObjectType() string { return "charge" }

// Cursor implements Paginate.
func (c Charge) Cursor() string { return c.ID }

// ChargeParams is the set of parameters for creating or updating a charge.
type ChargeParams struct {
	Params `form:"*"`

	Amount              *int64  `form:"amount"`
	Capture             *bool   `form:"capture"`
	Currency            *string `form:"currency"`
	Customer            *string `form:"customer"`
	Description         *string `form:"description"`
	ReceiptEmail        *string `form:"receipt_email"`
	Source              *string `form:"source"`
	StatementDescriptor *string `form:"statement_descriptor"`
}

// ChargeCaptureParams is the set of parameters for capturing a charge.
type ChargeCaptureParams struct {
	Params `form:"*"`

	Amount       *int64  `form:"amount"`
	ReceiptEmail *string `form:"receipt_email"`
}

// ChargeListParams is the set of parameters for listing charges.
type ChargeListParams struct {
	ListParams `form:"*"`

	Created       *RangeQueryParams `form:"created"`
	Customer      *string           `form:"customer"`
	PaymentIntent *string           `form:"payment_intent"`
}

// WithCursor implements Paginable.
func (p ChargeListParams) WithCursor(cursor string) ChargeListParams {
	p.StartingAfter = String(cursor)

	return p
}
