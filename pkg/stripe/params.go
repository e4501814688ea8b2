package stripe

// Params holds the options shared by create, retrieve and update calls.
type Params struct {
	Expand   []string `form:"expand"`
	Metadata Metadata `form:"metadata"`
}

// AddExpand appends a field to expand.
func (p *Params) AddExpand(field string) {
	p.Expand = append(p.Expand, field)
}

// AddMetadata sets a metadata key.
func (p *Params) AddMetadata(key, value string) {
	if p.Metadata == nil {
		p.Metadata = make(Metadata)
	}

	p.Metadata[key] = value
}

// ListParams holds the cursor options shared by every list call.
type ListParams struct {
	EndingBefore  *string  `form:"ending_before"`
	StartingAfter *string  `form:"starting_after"`
	Limit         *int64   `form:"limit"`
	Expand        []string `form:"expand"`
}

// SearchParams holds the options shared by every search call.
type SearchParams struct {
	Query  string   `form:"query"`
	Page   *string  `form:"page"`
	Limit  *int64   `form:"limit"`
	Expand []string `form:"expand"`
}

// RangeQueryParams filters a timestamp field of a list.
type RangeQueryParams struct {
	GreaterThan        *int64 `form:"gt"`
	GreaterThanOrEqual *int64 `form:"gte"`
	LesserThan         *int64 `form:"lt"`
	LesserThanOrEqual  *int64 `form:"lte"`
}
