package stripe

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestError_Error(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      *RequestError
		expected string
	}{
		{
			name:     "with code",
			err:      &RequestError{HTTPStatus: 402, Type: ErrorTypeCard, Code: ErrorCodeCardDeclined, Message: "Your card was declined."},
			expected: "stripe: Your card was declined. (status 402, type card_error, code card_declined)",
		},
		{
			name:     "without code",
			err:      &RequestError{HTTPStatus: 404, Type: ErrorTypeInvalidRequest, Message: "No such customer"},
			expected: "stripe: No such customer (status 404, type invalid_request_error)",
		},
		{
			name:     "without message",
			err:      &RequestError{HTTPStatus: 500, Type: ErrorTypeUnknown},
			expected: "stripe: Internal Server Error (status 500, type unknown)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestParseErrorResponse(t *testing.T) {
	t.Parallel()

	t.Run("full envelope", func(t *testing.T) {
		t.Parallel()

		body := `{"error":{"type":"card_error","code":"card_declined","message":"declined","decline_code":"insufficient_funds","charge":"ch_123"}}`
		reqErr := ParseErrorResponse(http.StatusPaymentRequired, []byte(body))

		assert.Equal(t, http.StatusPaymentRequired, reqErr.HTTPStatus)
		assert.Equal(t, ErrorTypeCard, reqErr.Type)
		assert.Equal(t, ErrorCodeCardDeclined, reqErr.Code)
		assert.Equal(t, "declined", reqErr.Message)
		assert.Equal(t, "insufficient_funds", reqErr.DeclineCode)
		assert.Equal(t, "ch_123", reqErr.Charge)
	})

	t.Run("unknown enum values", func(t *testing.T) {
		t.Parallel()

		body := `{"error":{"type":"brand_new_error","code":"brand_new_code","message":"m"}}`
		reqErr := ParseErrorResponse(http.StatusBadRequest, []byte(body))

		assert.Equal(t, ErrorTypeUnknown, reqErr.Type)
		assert.Equal(t, ErrorCodeUnknown, reqErr.Code)
		assert.Equal(t, "m", reqErr.Message)
	})

	t.Run("null code", func(t *testing.T) {
		t.Parallel()

		body := `{"error":{"type":"api_error","code":null}}`
		reqErr := ParseErrorResponse(http.StatusInternalServerError, []byte(body))

		assert.Equal(t, ErrorTypeAPI, reqErr.Type)
		assert.Empty(t, reqErr.Code)
	})

	for _, body := range []string{"", "not json", `{"message":"no envelope"}`, "\xff\xfe"} {
		t.Run(fmt.Sprintf("synthetic for %q", body), func(t *testing.T) {
			t.Parallel()

			reqErr := ParseErrorResponse(http.StatusBadGateway, []byte(body))

			assert.Equal(t, http.StatusBadGateway, reqErr.HTTPStatus)
			assert.Equal(t, ErrorTypeUnknown, reqErr.Type)
			assert.Equal(t, "failed to deserialize error", reqErr.Message)
		})
	}
}

func TestNewJSONError(t *testing.T) {
	t.Parallel()

	var target struct {
		Amount int64 `json:"amount"`
	}

	err := json.Unmarshal([]byte(`{"amount":"ten"}`), &target)
	require.Error(t, err)

	jsonErr := NewJSONError(err)
	assert.Equal(t, "amount", jsonErr.Path)
	assert.Contains(t, jsonErr.Error(), "at amount")

	var typeErr *json.UnmarshalTypeError
	assert.ErrorAs(t, jsonErr, &typeErr)

	err = json.Unmarshal([]byte(`{"amount" 1}`), &target)
	require.Error(t, err)
	assert.Contains(t, NewJSONError(err).Path, "offset")

	assert.Empty(t, NewJSONError(errors.New("invalid utf-8")).Path)
}

func TestErrorHelpers(t *testing.T) {
	t.Parallel()

	notFound := fmt.Errorf("wrapped: %w", &RequestError{HTTPStatus: 404, Type: ErrorTypeInvalidRequest})
	missing := &RequestError{HTTPStatus: 400, Type: ErrorTypeInvalidRequest, Code: ErrorCodeResourceMissing}
	rateLimited := &RequestError{HTTPStatus: 429, Type: ErrorTypeRateLimit}
	card := &RequestError{HTTPStatus: 402, Type: ErrorTypeCard}
	idem := &RequestError{HTTPStatus: 400, Type: ErrorTypeIdempotency}
	client := &ClientError{Message: "connection refused"}
	plain := errors.New("plain")

	assert.True(t, IsNotFound(notFound))
	assert.True(t, IsNotFound(missing))
	assert.False(t, IsNotFound(card))
	assert.False(t, IsNotFound(plain))

	assert.True(t, IsRateLimited(rateLimited))
	assert.False(t, IsRateLimited(card))

	assert.True(t, IsCardError(card))
	assert.False(t, IsCardError(idem))

	assert.True(t, IsIdempotencyError(idem))
	assert.False(t, IsIdempotencyError(plain))

	assert.True(t, IsRecoverable(notFound))
	assert.True(t, IsRecoverable(client))
	assert.False(t, IsRecoverable(&JSONError{Err: plain}))
	assert.False(t, IsRecoverable(&QueryStringError{Err: plain}))
	assert.False(t, IsRecoverable(ErrUnsupportedVersion))
	assert.False(t, IsRecoverable(ErrTimeout))
}
