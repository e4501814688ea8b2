package stripe

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type chargeHolder struct {
	Customer Expandable[Customer] `json:"customer"`
}

func TestExpandable_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	t.Run("id", func(t *testing.T) {
		t.Parallel()

		var holder chargeHolder
		require.NoError(t, json.Unmarshal([]byte(`{"customer":"cus_123"}`), &holder))

		assert.Equal(t, "cus_123", holder.Customer.ID())
		assert.False(t, holder.Customer.IsObject())
		assert.Nil(t, holder.Customer.Object())
	})

	t.Run("object", func(t *testing.T) {
		t.Parallel()

		var holder chargeHolder
		require.NoError(t, json.Unmarshal(
			[]byte(`{"customer":{"id":"cus_123","object":"customer","email":"jenny@example.com"}}`), &holder))

		require.True(t, holder.Customer.IsObject())
		assert.Equal(t, "cus_123", holder.Customer.ID())
		assert.Equal(t, "jenny@example.com", holder.Customer.Object().Email)
	})

	t.Run("null", func(t *testing.T) {
		t.Parallel()

		var holder chargeHolder
		require.NoError(t, json.Unmarshal([]byte(`{"customer":null}`), &holder))
		assert.Empty(t, holder.Customer.ID())
	})

	for _, body := range []string{`{"customer":42}`, `{"customer":true}`, `{"customer":["cus_1"]}`} {
		t.Run("rejects "+body, func(t *testing.T) {
			t.Parallel()

			var holder chargeHolder

			err := json.Unmarshal([]byte(body), &holder)
			require.Error(t, err)

			var typeErr *json.UnmarshalTypeError
			require.ErrorAs(t, err, &typeErr)
			assert.Equal(t, "customer", typeErr.Field)
		})
	}

	t.Run("nested path", func(t *testing.T) {
		t.Parallel()

		var charge Charge

		err := json.Unmarshal([]byte(`{"id":"ch_1","customer":{"id":"cus_1","balance":"lots"}}`), &charge)
		require.Error(t, err)

		jsonErr := NewJSONError(err)
		assert.Contains(t, jsonErr.Path, "customer")
	})
}

func TestExpandable_MarshalJSON(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(chargeHolder{Customer: ExpandableID[Customer]("cus_1")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"customer":"cus_1"}`, string(data))

	cus := &Customer{ID: "cus_2", Object: "customer", Email: "a@b.c"}
	holder := chargeHolder{Customer: ExpandableObject(cus)}
	assert.Equal(t, "cus_2", holder.Customer.ID())

	data, err = json.Marshal(holder)
	require.NoError(t, err)

	var decoded chargeHolder
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.True(t, decoded.Customer.IsObject())
	assert.Equal(t, "a@b.c", decoded.Customer.Object().Email)
}
