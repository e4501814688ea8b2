package stripe

// Customer represents a customer of the account.
type Customer struct {
	ID            string    `json:"id"                       yaml:"id"`
	Object        string    `json:"object"                   yaml:"object"`
	Address       *Address  `json:"address,omitempty"        yaml:"address,omitempty"`
	Balance       int64     `json:"balance"                  yaml:"balance"`
	Created       int64     `json:"created"                  yaml:"created"`
	Currency      string    `json:"currency,omitempty"       yaml:"currency,omitempty"`
	Delinquent    bool      `json:"delinquent"               yaml:"delinquent"`
	Description   string    `json:"description,omitempty"    yaml:"description,omitempty"`
	Email         string    `json:"email,omitempty"          yaml:"email,omitempty"`
	InvoicePrefix string    `json:"invoice_prefix,omitempty" yaml:"invoice_prefix,omitempty"`
	Livemode      bool      `json:"livemode"                 yaml:"livemode"`
	Metadata      Metadata  `json:"metadata,omitempty"       yaml:"metadata,omitempty"`
	Name          string    `json:"name,omitempty"           yaml:"name,omitempty"`
	Phone         string    `json:"phone,omitempty"          yaml:"phone,omitempty"`
	Deleted       bool      `json:"deleted,omitempty"        yaml:"deleted,omitempty"`
	Shipping      *Shipping `json:"shipping,omitempty"       yaml:"shipping,omitempty"`
}

// ObjectID implements Object.
func (c Customer) ObjectID() string { return c.ID }

// ObjectType implements Object.
func (c Customer) ObjectType() string { return "customer" }

// Cursor implements Paginate.
func (c Customer) Cursor() string { return c.ID }

// Address is a postal address.
type Address struct {
	City       string `json:"city,omitempty"        yaml:"city,omitempty"        form:"city"`
	Country    string `json:"country,omitempty"     yaml:"country,omitempty"     form:"country"`
	Line1      string `json:"line1,omitempty"       yaml:"line1,omitempty"       form:"line1"`
	Line2      string `json:"line2,omitempty"       yaml:"line2,omitempty"       form:"line2"`
	PostalCode string `json:"postal_code,omitempty" yaml:"postal_code,omitempty" form:"postal_code"`
	State      string `json:"state,omitempty"       yaml:"state,omitempty"       form:"state"`
}

// Shipping holds shipping details.
type Shipping struct {
	Address *Address `json:"address,omitempty" yaml:"address,omitempty" form:"address"`
	Name    string   `json:"name"              yaml:"name"              form:"name"`
	Phone   string   `json:"phone,omitempty"   yaml:"phone,omitempty"   form:"phone"`
}

// CustomerParams is the set of parameters for creating or updating a customer.
type CustomerParams struct {
	Params `form:"*"`

	Address     *Address  `form:"address"`
	Balance     *int64    `form:"balance"`
	Description *string   `form:"description"`
	Email       *string   `form:"email"`
	Name        *string   `form:"name"`
	Phone       *string   `form:"phone"`
	Shipping    *Shipping `form:"shipping"`
}

// CustomerListParams is the set of parameters for listing customers.
type CustomerListParams struct {
	ListParams `form:"*"`

	Created *RangeQueryParams `form:"created"`
	Email   *string           `form:"email"`
}

// WithCursor implements Paginable.
func (p CustomerListParams) WithCursor(cursor string) CustomerListParams {
	p.StartingAfter = String(cursor)

	return p
}

// CustomerSearchParams is the set of parameters for searching customers.
type CustomerSearchParams struct {
	SearchParams `form:"*"`
}

// WithPage implements SearchPaginable.
func (p CustomerSearchParams) WithPage(page string) CustomerSearchParams {
	p.Page = String(page)

	return p
}
