package stripe

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Event is a notification of a change in the account, delivered through
// webhooks and the events endpoint.
type Event struct {
	ID              string        `json:"id"                    yaml:"id"`
	Object          string        `json:"object"                yaml:"object"`
	Account         string        `json:"account,omitempty"     yaml:"account,omitempty"`
	APIVersion      string        `json:"api_version,omitempty" yaml:"api_version,omitempty"`
	Created         int64         `json:"created"               yaml:"created"`
	Data            EventData     `json:"data"                  yaml:"data"`
	Livemode        bool          `json:"livemode"              yaml:"livemode"`
	PendingWebhooks int64         `json:"pending_webhooks"      yaml:"pending_webhooks"`
	Request         *EventRequest `json:"request,omitempty"     yaml:"request,omitempty"`
	Type            EventType     `json:"type"                  yaml:"type"`
}

// ObjectID implements Object.
func (e Event) ObjectID() string { return e.ID }

// ObjectType implements Object.
func (e Event) ObjectType() string { return "event" }

// Cursor implements Paginate.
func (e Event) Cursor() string { return e.ID }

// EventData holds the object the event is about.
type EventData struct {
	Object             EventObject    `json:"object"                        yaml:"object"`
	PreviousAttributes map[string]any `json:"previous_attributes,omitempty" yaml:"previous_attributes,omitempty"`
}

// EventRequest identifies the API request that caused an event. Older API
// versions send only the request id as a string.
type EventRequest struct {
	ID             string `json:"id,omitempty"              yaml:"id,omitempty"`
	IdempotencyKey string `json:"idempotency_key,omitempty" yaml:"idempotency_key,omitempty"`
}

// UnmarshalJSON accepts both the object and the bare id form.
func (r *EventRequest) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '"' {
		return json.Unmarshal(trimmed, &r.ID)
	}

	type plain EventRequest

	return json.Unmarshal(trimmed, (*plain)(r))
}

// EventObject is the resource carried by an event, discriminated by its
// "object" field. Value holds *Customer, *Charge, *PaymentIntent, *Refund,
// *Invoice or *InvoiceItem; for any other object Value is nil and only Raw
// is available.
type EventObject struct {
	Type  string          `json:"-" yaml:"type"`
	Raw   json.RawMessage `json:"-" yaml:"-"`
	Value any             `json:"-" yaml:"value,omitempty"`
}

var eventObjectDecoders = map[string]func([]byte) (any, error){
	"customer":       decodeEventObject[Customer],
	"charge":         decodeEventObject[Charge],
	"payment_intent": decodeEventObject[PaymentIntent],
	"refund":         decodeEventObject[Refund],
	"invoice":        decodeEventObject[Invoice],
	"invoiceitem":    decodeEventObject[InvoiceItem],
}

func decodeEventObject[T any](data []byte) (any, error) {
	v := new(T)

	err := json.Unmarshal(data, v)
	if err != nil {
		return nil, err
	}

	return v, nil
}

// UnmarshalJSON decodes known objects into their types and keeps every
// object's raw JSON.
func (o *EventObject) UnmarshalJSON(data []byte) error {
	var head struct {
		Object string `json:"object"`
	}

	err := json.Unmarshal(data, &head)
	if err != nil {
		return err
	}

	o.Type = head.Object
	o.Raw = append(json.RawMessage(nil), data...)
	o.Value = nil

	decode, ok := eventObjectDecoders[head.Object]
	if !ok {
		return nil
	}

	value, err := decode(data)
	if err != nil {
		return fmt.Errorf("decoding %s event object: %w", head.Object, err)
	}

	o.Value = value

	return nil
}

// MarshalJSON writes the raw object when it is available.
func (o EventObject) MarshalJSON() ([]byte, error) {
	if o.Raw != nil {
		return o.Raw, nil
	}

	if o.Value == nil {
		return []byte("null"), nil
	}

	return json.Marshal(o.Value)
}

// IsKnown reports whether the object decoded into a typed value.
func (o EventObject) IsKnown() bool {
	return o.Value != nil
}

// EventObjectAs returns the event object as *T when it decoded to that type.
func EventObjectAs[T any](o EventObject) (*T, bool) {
	v, ok := o.Value.(*T)

	return v, ok
}

// EventListParams is the set of parameters for listing events.
type EventListParams struct {
	ListParams `form:"*"`

	Created         *RangeQueryParams `form:"created"`
	DeliverySuccess *bool             `form:"delivery_success"`
	Type            *string           `form:"type"`
	Types           []string          `form:"types"`
}

// WithCursor implements Paginable.
func (p EventListParams) WithCursor(cursor string) EventListParams {
	p.StartingAfter = String(cursor)

	return p
}
