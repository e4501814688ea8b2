package stripe

// Invoice is a statement of amounts owed by a customer.
type Invoice struct {
	ID            string                     `json:"id"                       yaml:"id"`
	Object        string                     `json:"object"                   yaml:"object"`
	AmountDue     int64                      `json:"amount_due"               yaml:"amount_due"`
	AmountPaid    int64                      `json:"amount_paid"              yaml:"amount_paid"`
	Created       int64                      `json:"created"                  yaml:"created"`
	Currency      string                     `json:"currency"                 yaml:"currency"`
	Customer      *Expandable[Customer]      `json:"customer,omitempty"       yaml:"-"`
	Livemode      bool                       `json:"livemode"                 yaml:"livemode"`
	Metadata      Metadata                   `json:"metadata,omitempty"       yaml:"metadata,omitempty"`
	Number        string                     `json:"number,omitempty"         yaml:"number,omitempty"`
	Paid          bool                       `json:"paid"                     yaml:"paid"`
	PaymentIntent *Expandable[PaymentIntent] `json:"payment_intent,omitempty" yaml:"-"`
	Status        string                     `json:"status,omitempty"         yaml:"status,omitempty"`
	Total         int64                      `json:"total"                    yaml:"total"`
}

// ObjectID implements Object.
func (i Invoice) ObjectID() string { return i.ID }

// ObjectType implements Object.
func (i Invoice) ObjectType() string { return "invoice" }

// Cursor implements Paginate.
func (i Invoice) Cursor() string { return i.ID }

// Period is a closed time range in unix seconds.
type Period struct {
	Start int64 `json:"start" yaml:"start"`
	End   int64 `json:"end"   yaml:"end"`
}

// InvoiceItem is a line added to a customer's next invoice.
type InvoiceItem struct {
	ID           string                `json:"id"                    yaml:"id"`
	Object       string                `json:"object"                yaml:"object"`
	Amount       int64                 `json:"amount"                yaml:"amount"`
	Currency     string                `json:"currency"              yaml:"currency"`
	Customer     *Expandable[Customer] `json:"customer,omitempty"    yaml:"-"`
	Date         int64                 `json:"date"                  yaml:"date"`
	Description  string                `json:"description,omitempty" yaml:"description,omitempty"`
	Discountable bool                  `json:"discountable"          yaml:"discountable"`
	Invoice      *Expandable[Invoice]  `json:"invoice,omitempty"     yaml:"-"`
	Livemode     bool                  `json:"livemode"              yaml:"livemode"`
	Metadata     Metadata              `json:"metadata,omitempty"    yaml:"metadata,omitempty"`
	Period       *Period               `json:"period,omitempty"      yaml:"period,omitempty"`
	Proration    bool                  `json:"proration"             yaml:"proration"`
	Quantity     int64                 `json:"quantity"              yaml:"quantity"`
}

// ObjectID implements Object.
func (i InvoiceItem) ObjectID() string { return i.ID }

// ObjectType implements Object.
func (i InvoiceItem) ObjectType() string { return "invoiceitem" }

// Cursor implements Paginate.
func (i InvoiceItem) Cursor() string { return i.ID }
