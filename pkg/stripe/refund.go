package stripe

// Refund returns money from a charge.
type Refund struct {
	ID            string                     `json:"id"                       yaml:"id"`
	Object        string                     `json:"object"                   yaml:"object"`
	Amount        int64                      `json:"amount"                   yaml:"amount"`
	Charge        *Expandable[Charge]        `json:"charge,omitempty"         yaml:"-"`
	Created       int64                      `json:"created"                  yaml:"created"`
	Currency      string                     `json:"currency"                 yaml:"currency"`
	FailureReason string                     `json:"failure_reason,omitempty" yaml:"failure_reason,omitempty"`
	Metadata      Metadata                   `json:"metadata,omitempty"       yaml:"metadata,omitempty"`
	PaymentIntent *Expandable[PaymentIntent] `json:"payment_intent,omitempty" yaml:"-"`
	Reason        string                     `json:"reason,omitempty"         yaml:"reason,omitempty"`
	Status        string                     `json:"status"                   yaml:"status"`
}

// ObjectID implements Object.
func (r Refund) ObjectID() string { return r.ID }

// ObjectType implements Object.
func (r Refund) ObjectType() string { return "refund" }

// Cursor implements Paginate.
func (r Refund) Cursor() string { return r.ID }

// RefundParams is the set of parameters for creating a refund.
type RefundParams struct {
	Params `form:"*"`

	Amount        *int64  `form:"amount"`
	Charge        *string `form:"charge"`
	PaymentIntent *string `form:"payment_intent"`
	Reason        *string `form:"reason"`
}

// RefundListParams is the set of parameters for listing refunds.
type RefundListParams struct {
	ListParams `form:"*"`

	Charge        *string `form:"charge"`
	PaymentIntent *string `form:"payment_intent"`
}

// WithCursor implements Paginable.
func (p RefundListParams) WithCursor(cursor string) RefundListParams {
	p.StartingAfter = String(cursor)

	return p
}
