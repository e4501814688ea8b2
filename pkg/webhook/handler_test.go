package webhook_test

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/stripe-client/pkg/stripe"
	"github.com/fivetwenty-io/stripe-client/pkg/webhook"
)

// Static errors for err113 compliance.
var errSinkDown = errors.New("sink down")

func itoa(n int64) string {
	return strconv.FormatInt(n, 10)
}

func signedRequest(t *testing.T, payload []byte, secret string, timestamp int64) *http.Request {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/webhooks", bytes.NewReader(payload))
	req.Header.Set(webhook.SignatureHeader, webhook.FormatHeader(payload, secret, timestamp))

	return req
}

func fixedClock(unix int64) func() time.Time {
	return func() time.Time { return time.Unix(unix, 0) }
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestHandler(t *testing.T) {
	t.Parallel()

	payload := loadPayload(t)

	t.Run("delivers to the type-specific sink", func(t *testing.T) {
		t.Parallel()

		var fallbackCalls int

		handler := webhook.NewHandler(testSecret,
			webhook.SinkFunc(func(context.Context, *stripe.Event) error {
				fallbackCalls++

				return nil
			}),
			webhook.WithClock(fixedClock(testTimestamp)))

		var got *stripe.Event

		handler.Handle(stripe.EventTypeInvoiceItemCreated, webhook.SinkFunc(func(_ context.Context, event *stripe.Event) error {
			got = event

			return nil
		}))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, signedRequest(t, payload, testSecret, testTimestamp))

		assert.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, got)
		assert.Equal(t, "evt_123", got.ID)
		assert.Zero(t, fallbackCalls)
	})

	t.Run("falls back for unhandled types", func(t *testing.T) {
		t.Parallel()

		var got []stripe.EventType

		handler := webhook.NewHandler(testSecret,
			webhook.SinkFunc(func(_ context.Context, event *stripe.Event) error {
				got = append(got, event.Type)

				return nil
			}),
			webhook.WithClock(fixedClock(testTimestamp)))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, signedRequest(t, payload, testSecret, testTimestamp))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, []stripe.EventType{stripe.EventTypeInvoiceItemCreated}, got)
	})

	t.Run("rejects bad signatures", func(t *testing.T) {
		t.Parallel()

		var reported error

		handler := webhook.NewHandler(testSecret, nil,
			webhook.WithClock(fixedClock(testTimestamp)),
			webhook.WithErrorHandler(func(err error) { reported = err }))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, signedRequest(t, payload, "other_secret", testTimestamp))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		require.ErrorIs(t, reported, webhook.ErrBadSignature)
	})

	t.Run("rejects stale events", func(t *testing.T) {
		t.Parallel()

		handler := webhook.NewHandler(testSecret, nil, webhook.WithClock(fixedClock(testTimestamp+3600)))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, signedRequest(t, payload, testSecret, testTimestamp))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("reports sink failures", func(t *testing.T) {
		t.Parallel()

		handler := webhook.NewHandler(testSecret,
			webhook.SinkFunc(func(context.Context, *stripe.Event) error { return errSinkDown }),
			webhook.WithClock(fixedClock(testTimestamp)))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, signedRequest(t, payload, testSecret, testTimestamp))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("limits the body size", func(t *testing.T) {
		t.Parallel()

		handler := webhook.NewHandler(testSecret, nil, webhook.WithMaxBodyBytes(16))

		req := httptest.NewRequest(http.MethodPost, "/webhooks", strings.NewReader(strings.Repeat("x", 64)))
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	})

	t.Run("only accepts POST", func(t *testing.T) {
		t.Parallel()

		handler := webhook.NewHandler(testSecret, nil)

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/webhooks", nil))

		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
		assert.Equal(t, http.MethodPost, rec.Header().Get("Allow"))
	})

	t.Run("custom tolerance", func(t *testing.T) {
		t.Parallel()

		handler := webhook.NewHandler(testSecret, nil,
			webhook.WithClock(fixedClock(testTimestamp+10)),
			webhook.WithTolerance(5*time.Second))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, signedRequest(t, payload, testSecret, testTimestamp))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
