package stripe

// Object is implemented by every API resource.
type Object interface {
	// ObjectID returns the resource id, e.g. "cus_123".
	ObjectID() string
	// ObjectType returns the server discriminator, e.g. "customer".
	ObjectType() string
}

// Paginate is implemented by list items. The cursor of the last item of a
// page selects the next page.
type Paginate interface {
	Cursor() string
}

// List is one page of a cursor-paginated collection.
type List[T any] struct {
	Object     string  `json:"object"                yaml:"object"`
	Data       []T     `json:"data"                  yaml:"data"`
	HasMore    bool    `json:"has_more"              yaml:"has_more"`
	URL        string  `json:"url"                   yaml:"url"`
	TotalCount *uint64 `json:"total_count,omitempty" yaml:"total_count,omitempty"`
}

// SearchList is one page of search results. NextPage is the token of the
// following page.
type SearchList[T any] struct {
	Object     string  `json:"object"                yaml:"object"`
	Data       []T     `json:"data"                  yaml:"data"`
	HasMore    bool    `json:"has_more"              yaml:"has_more"`
	URL        string  `json:"url"                   yaml:"url"`
	TotalCount *uint64 `json:"total_count,omitempty" yaml:"total_count,omitempty"`
	NextPage   *string `json:"next_page,omitempty"   yaml:"next_page,omitempty"`
}

// Metadata is the free-form key/value set attached to most resources.
type Metadata map[string]string

// DeletedObject is returned by delete endpoints.
type DeletedObject struct {
	ID      string `json:"id"      yaml:"id"`
	Object  string `json:"object"  yaml:"object"`
	Deleted bool   `json:"deleted" yaml:"deleted"`
}

// ObjectID implements Object.
func (d DeletedObject) ObjectID() string { return d.ID }

// ObjectType implements Object.
func (d DeletedObject) ObjectType() string { return d.Object }

// String returns a pointer to v.
func String(v string) *string {
	return &v
}

// Int64 returns a pointer to v.
func Int64(v int64) *int64 {
	return &v
}

// Bool returns a pointer to v.
func Bool(v bool) *bool {
	return &v
}

// StringValue returns the value of p, or "" when p is nil.
func StringValue(p *string) string {
	if p == nil {
		return ""
	}

	return *p
}
