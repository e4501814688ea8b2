package stripe

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvent_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	t.Run("known object", func(t *testing.T) {
		t.Parallel()

		body := `{
			"id": "evt_1",
			"object": "event",
			"type": "customer.created",
			"created": 1533204620,
			"data": {"object": {"id": "cus_1", "object": "customer", "email": "a@b.c"}},
			"request": {"id": "req_1", "idempotency_key": "key-1"}
		}`

		var event Event
		require.NoError(t, json.Unmarshal([]byte(body), &event))

		assert.Equal(t, EventTypeCustomerCreated, event.Type)
		assert.Equal(t, "customer", event.Data.Object.Type)
		require.True(t, event.Data.Object.IsKnown())

		cus, ok := EventObjectAs[Customer](event.Data.Object)
		require.True(t, ok)
		assert.Equal(t, "a@b.c", cus.Email)

		_, ok = EventObjectAs[Charge](event.Data.Object)
		assert.False(t, ok)

		require.NotNil(t, event.Request)
		assert.Equal(t, "key-1", event.Request.IdempotencyKey)
	})

	t.Run("unknown object and type", func(t *testing.T) {
		t.Parallel()

		body := `{
			"id": "evt_2",
			"type": "hologram.materialized",
			"data": {"object": {"id": "holo_1", "object": "hologram", "depth": 3}},
			"request": "req_legacy"
		}`

		var event Event
		require.NoError(t, json.Unmarshal([]byte(body), &event))

		assert.Equal(t, EventTypeUnknown, event.Type)
		assert.Equal(t, "hologram", event.Data.Object.Type)
		assert.False(t, event.Data.Object.IsKnown())
		assert.JSONEq(t, `{"id": "holo_1", "object": "hologram", "depth": 3}`, string(event.Data.Object.Raw))
		assert.Equal(t, "req_legacy", event.Request.ID)
	})

	t.Run("previous attributes", func(t *testing.T) {
		t.Parallel()

		body := `{"id":"evt_3","type":"charge.updated","data":{"object":{"id":"ch_1","object":"charge","customer":"cus_9"},` +
			`"previous_attributes":{"description":null}}}`

		var event Event
		require.NoError(t, json.Unmarshal([]byte(body), &event))

		charge, ok := EventObjectAs[Charge](event.Data.Object)
		require.True(t, ok)
		assert.Equal(t, "cus_9", charge.Customer.ID())
		assert.Contains(t, event.Data.PreviousAttributes, "description")
	})

	t.Run("round trip keeps object", func(t *testing.T) {
		t.Parallel()

		body := `{"id":"evt_4","object":"event","type":"refund.created","created":1,"livemode":false,"pending_webhooks":0,` +
			`"data":{"object":{"id":"re_1","object":"refund","amount":100}}}`

		var event Event
		require.NoError(t, json.Unmarshal([]byte(body), &event))

		data, err := json.Marshal(event)
		require.NoError(t, err)

		var again Event
		require.NoError(t, json.Unmarshal(data, &again))

		refund, ok := EventObjectAs[Refund](again.Data.Object)
		require.True(t, ok)
		assert.Equal(t, int64(100), refund.Amount)
		assert.Equal(t, EventTypeRefundCreated, again.Type)
	})
}
