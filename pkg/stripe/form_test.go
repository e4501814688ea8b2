package stripe

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeForm(t *testing.T) {
	t.Parallel()

	t.Run("nested struct", func(t *testing.T) {
		t.Parallel()

		params := &CustomerParams{
			Email: String("jenny@example.com"),
			Address: &Address{
				City:    "Berlin",
				Country: "DE",
			},
		}
		params.AddMetadata("order_id", "6735")

		encoded, err := EncodeForm(params)
		require.NoError(t, err)

		values, err := url.ParseQuery(encoded)
		require.NoError(t, err)
		assert.Equal(t, "jenny@example.com", values.Get("email"))
		assert.Equal(t, "Berlin", values.Get("address[city]"))
		assert.Equal(t, "DE", values.Get("address[country]"))
		assert.Equal(t, "6735", values.Get("metadata[order_id]"))
		assert.False(t, values.Has("name"))
	})

	t.Run("list cursor", func(t *testing.T) {
		t.Parallel()

		params := CustomerListParams{}.WithCursor("cus_1")
		params.Limit = Int64(3)

		encoded, err := EncodeForm(params)
		require.NoError(t, err)

		values, err := url.ParseQuery(encoded)
		require.NoError(t, err)
		assert.Equal(t, "cus_1", values.Get("starting_after"))
		assert.Equal(t, "3", values.Get("limit"))
	})

	t.Run("expand keys", func(t *testing.T) {
		t.Parallel()

		encoded, err := EncodeForm(nil, "customer", "invoice")
		require.NoError(t, err)

		values, err := url.ParseQuery(encoded)
		require.NoError(t, err)
		assert.Equal(t, []string{"customer", "invoice"}, values["expand[]"])
	})

	t.Run("percent encoding", func(t *testing.T) {
		t.Parallel()

		encoded, err := EncodeForm(&CustomerParams{Description: String("a&b=c d")})
		require.NoError(t, err)

		values, err := url.ParseQuery(encoded)
		require.NoError(t, err)
		assert.Equal(t, "a&b=c d", values.Get("description"))
	})

	t.Run("empty", func(t *testing.T) {
		t.Parallel()

		encoded, err := EncodeForm(nil)
		require.NoError(t, err)
		assert.Empty(t, encoded)

		var nilParams *CustomerParams

		encoded, err = EncodeForm(nilParams)
		require.NoError(t, err)
		assert.Empty(t, encoded)
	})

	t.Run("url values", func(t *testing.T) {
		t.Parallel()

		encoded, err := EncodeForm(url.Values{"limit": {"5"}})
		require.NoError(t, err)
		assert.Equal(t, "limit=5", encoded)
	})

	t.Run("maps encode in key order", func(t *testing.T) {
		t.Parallel()

		params := map[string]string{"c": "3", "a": "1", "d": "4", "b": "2"}

		for range 20 {
			encoded, err := EncodeForm(params)
			require.NoError(t, err)
			assert.Equal(t, "a=1&b=2&c=3&d=4", encoded)
		}

		encoded, err := EncodeForm(url.Values{"starting_after": {"cus_9"}, "limit": {"5"}, "email": {"a@b.c"}})
		require.NoError(t, err)
		assert.Equal(t, "email=a%40b.c&limit=5&starting_after=cus_9", encoded)
	})

	t.Run("unsupported", func(t *testing.T) {
		t.Parallel()

		_, err := EncodeForm(42)
		require.Error(t, err)

		var qsErr *QueryStringError
		require.ErrorAs(t, err, &qsErr)
		assert.ErrorIs(t, err, ErrUnsupportedParams)
	})
}
