package http_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	stripehttp "github.com/fivetwenty-io/stripe-client/internal/http"
	"github.com/fivetwenty-io/stripe-client/pkg/stripe"
)

var errConnectionReset = errors.New("connection reset by peer")

// MockLogger for testing.
type MockLogger struct {
	mu   sync.Mutex
	logs []map[string]interface{}
}

func (l *MockLogger) add(level, msg string, fields map[string]interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.logs = append(l.logs, map[string]interface{}{"level": level, "msg": msg, "fields": fields})
}

func (l *MockLogger) Debug(msg string, fields map[string]interface{}) { l.add("debug", msg, fields) }

func (l *MockLogger) Info(msg string, fields map[string]interface{}) { l.add("info", msg, fields) }

func (l *MockLogger) Warn(msg string, fields map[string]interface{}) { l.add("warn", msg, fields) }

func (l *MockLogger) Error(msg string, fields map[string]interface{}) { l.add("error", msg, fields) }

// recorder keeps what the test server saw.
type recorder struct {
	mu     sync.Mutex
	calls  int
	bodies []string
	keys   []string
}

func (r *recorder) record(req *http.Request) {
	body, _ := io.ReadAll(req.Body)

	r.mu.Lock()
	defer r.mu.Unlock()

	r.calls++
	r.bodies = append(r.bodies, string(body))
	r.keys = append(r.keys, req.Header.Get("Idempotency-Key"))
}

func (r *recorder) snapshot() (int, []string, []string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.calls, append([]string(nil), r.bodies...), append([]string(nil), r.keys...)
}

func fastRetry(maxAttempts uint32) stripe.RequestStrategy {
	return stripe.Retry(maxAttempts).WithBaseDelay(time.Millisecond)
}

func newRequest(method, url string, body []byte) *stripe.Request {
	return &stripe.Request{Method: method, URL: url, Header: http.Header{}, Body: body}
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_Execute_Scenarios(t *testing.T) {
	t.Parallel()

	t.Run("retry exhaustion", func(t *testing.T) {
		t.Parallel()

		rec := &recorder{}
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rec.record(r)
			assert.Equal(t, "/server-errors", r.URL.Path)
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		client := stripehttp.NewClient(stripehttp.NewTransport())
		err := client.Execute(context.Background(), newRequest(http.MethodGet, server.URL+"/server-errors", nil), fastRetry(5), nil)
		require.Error(t, err)

		var reqErr *stripe.RequestError
		require.ErrorAs(t, err, &reqErr)
		assert.Equal(t, http.StatusInternalServerError, reqErr.HTTPStatus)
		assert.Equal(t, stripe.ErrorTypeUnknown, reqErr.Type)

		calls, _, keys := rec.snapshot()
		assert.Equal(t, 5, calls)

		for _, key := range keys {
			assert.Equal(t, keys[0], key, "idempotency key must not change between attempts")
		}

		assert.NotEmpty(t, keys[0])
	})

	t.Run("user error is not retried", func(t *testing.T) {
		t.Parallel()

		rec := &recorder{}
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rec.record(r)
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error":{"message":"Unrecognized request URL (GET: /v1/missing). Please see https://stripe.com/docs.",` +
				`"type":"invalid_request_error"}}`))
		}))
		defer server.Close()

		client := stripehttp.NewClient(stripehttp.NewTransport())
		err := client.Execute(context.Background(), newRequest(http.MethodGet, server.URL+"/v1/missing", nil), fastRetry(3), nil)

		var reqErr *stripe.RequestError
		require.ErrorAs(t, err, &reqErr)
		assert.Equal(t, http.StatusNotFound, reqErr.HTTPStatus)
		assert.Equal(t, stripe.ErrorTypeInvalidRequest, reqErr.Type)
		assert.Contains(t, reqErr.Message, "Unrecognized request URL")
		assert.True(t, stripe.IsNotFound(err))

		calls, _, _ := rec.snapshot()
		assert.Equal(t, 1, calls)
	})

	t.Run("server suppressed retry", func(t *testing.T) {
		t.Parallel()

		rec := &recorder{}
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rec.record(r)
			w.Header().Set("Stripe-Should-Retry", "false")
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		client := stripehttp.NewClient(stripehttp.NewTransport())
		err := client.Execute(context.Background(), newRequest(http.MethodGet, server.URL+"/server-errors", nil), fastRetry(5), nil)
		require.Error(t, err)

		calls, _, _ := rec.snapshot()
		assert.Equal(t, 1, calls)
	})

	t.Run("body is replayed on every attempt", func(t *testing.T) {
		t.Parallel()

		rec := &recorder{}
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rec.record(r)

			_, bodies, _ := rec.snapshot()
			if bodies[len(bodies)-1] == "body" {
				w.WriteHeader(http.StatusInternalServerError)

				return
			}

			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := stripehttp.NewClient(stripehttp.NewTransport())
		err := client.Execute(context.Background(),
			newRequest(http.MethodPost, server.URL+"/server-errors", []byte("body")), fastRetry(5), nil)
		require.Error(t, err)

		calls, bodies, _ := rec.snapshot()
		assert.Equal(t, 5, calls)

		for _, body := range bodies {
			assert.Equal(t, "body", body)
		}
	})
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_Execute(t *testing.T) {
	t.Parallel()

	t.Run("decodes success body", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Empty(t, r.Header.Get("Idempotency-Key"))
			_, _ = w.Write([]byte(`{"id":"cus_1","object":"customer","unknown_field":true}`))
		}))
		defer server.Close()

		var cus stripe.Customer

		client := stripehttp.NewClient(stripehttp.NewTransport())
		err := client.Execute(context.Background(), newRequest(http.MethodGet, server.URL+"/customers/cus_1", nil), stripe.Once(), &cus)
		require.NoError(t, err)
		assert.Equal(t, "cus_1", cus.ID)
	})

	t.Run("idempotent strategy sends user key once", func(t *testing.T) {
		t.Parallel()

		rec := &recorder{}
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rec.record(r)
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		client := stripehttp.NewClient(stripehttp.NewTransport())
		err := client.Execute(context.Background(),
			newRequest(http.MethodPost, server.URL+"/charges", []byte("amount=100")), stripe.Idempotent("order-7"), nil)
		require.Error(t, err)

		calls, _, keys := rec.snapshot()
		assert.Equal(t, 1, calls)
		assert.Equal(t, []string{"order-7"}, keys)
	})

	t.Run("empty idempotency key sends no header", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, present := r.Header["Idempotency-Key"]
			assert.False(t, present)
			_, _ = w.Write([]byte(`{"id":"ch_1","object":"charge"}`))
		}))
		defer server.Close()

		client := stripehttp.NewClient(stripehttp.NewTransport())
		err := client.Execute(context.Background(),
			newRequest(http.MethodPost, server.URL+"/charges", []byte("amount=100")), stripe.Idempotent(""), nil)
		require.NoError(t, err)
	})

	t.Run("separate calls get separate keys", func(t *testing.T) {
		t.Parallel()

		rec := &recorder{}
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rec.record(r)
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := stripehttp.NewClient(stripehttp.NewTransport())
		strategy := fastRetry(2)

		require.NoError(t, client.Execute(context.Background(), newRequest(http.MethodPost, server.URL+"/a", nil), strategy, nil))
		require.NoError(t, client.Execute(context.Background(), newRequest(http.MethodPost, server.URL+"/b", nil), strategy, nil))

		_, _, keys := rec.snapshot()
		require.Len(t, keys, 2)
		assert.NotEqual(t, keys[0], keys[1])
	})

	t.Run("recovers after transient failures", func(t *testing.T) {
		t.Parallel()

		var attempts atomic.Int32

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			if attempts.Add(1) < 3 {
				w.WriteHeader(http.StatusTooManyRequests)

				return
			}

			_, _ = w.Write([]byte(`{"id":"ch_1","object":"charge"}`))
		}))
		defer server.Close()

		var charge stripe.Charge

		client := stripehttp.NewClient(stripehttp.NewTransport())
		err := client.Execute(context.Background(), newRequest(http.MethodGet, server.URL+"/charges/ch_1", nil), fastRetry(5), &charge)
		require.NoError(t, err)
		assert.Equal(t, "ch_1", charge.ID)
		assert.Equal(t, int32(3), attempts.Load())
	})

	t.Run("once does not retry", func(t *testing.T) {
		t.Parallel()

		var attempts atomic.Int32

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			attempts.Add(1)
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		client := stripehttp.NewClient(stripehttp.NewTransport())
		err := client.Execute(context.Background(), newRequest(http.MethodGet, server.URL, nil), stripe.Once(), nil)
		require.Error(t, err)
		assert.Equal(t, int32(1), attempts.Load())
	})

	t.Run("decode failure is terminal", func(t *testing.T) {
		t.Parallel()

		var attempts atomic.Int32

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			attempts.Add(1)
			_, _ = w.Write([]byte(`{"id":5}`))
		}))
		defer server.Close()

		var cus stripe.Customer

		client := stripehttp.NewClient(stripehttp.NewTransport())
		err := client.Execute(context.Background(), newRequest(http.MethodGet, server.URL, nil), fastRetry(5), &cus)

		var jsonErr *stripe.JSONError
		require.ErrorAs(t, err, &jsonErr)
		assert.Equal(t, "id", jsonErr.Path)
		assert.Equal(t, int32(1), attempts.Load())
	})

	t.Run("invalid utf-8 success body", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("{\"id\":\"\xff\"}"))
		}))
		defer server.Close()

		var cus stripe.Customer

		client := stripehttp.NewClient(stripehttp.NewTransport())
		err := client.Execute(context.Background(), newRequest(http.MethodGet, server.URL, nil), stripe.Once(), &cus)

		var jsonErr *stripe.JSONError
		require.ErrorAs(t, err, &jsonErr)
		assert.ErrorIs(t, err, stripehttp.ErrInvalidUTF8)
	})

	t.Run("empty body with nil out", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := stripehttp.NewClient(stripehttp.NewTransport())
		require.NoError(t, client.Execute(context.Background(), newRequest(http.MethodDelete, server.URL, nil), stripe.Once(), nil))
	})

	t.Run("with debug logging", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Request-Id", "req_123")
			_, _ = w.Write([]byte(`{}`))
		}))
		defer server.Close()

		logger := &MockLogger{}
		client := stripehttp.NewClient(stripehttp.NewTransport(), stripehttp.WithLogger(logger), stripehttp.WithDebug(true))

		require.NoError(t, client.Execute(context.Background(), newRequest(http.MethodGet, server.URL, nil), stripe.Once(), nil))

		require.Len(t, logger.logs, 2)
		assert.Equal(t, "HTTP Request", logger.logs[0]["msg"])
		assert.Equal(t, "HTTP Response", logger.logs[1]["msg"])

		fields, ok := logger.logs[1]["fields"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "req_123", fields["request_id"])
	})
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_Execute_TransportFailures(t *testing.T) {
	t.Parallel()

	t.Run("transport errors count as attempts", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32

		transport := stripe.TransportFunc(func(_ context.Context, _ *stripe.Request) (*stripe.Response, error) {
			calls.Add(1)

			return nil, errConnectionReset
		})

		client := stripehttp.NewClient(transport)
		err := client.Execute(context.Background(), newRequest(http.MethodGet, "https://api.stripe.test/v1/x", nil), fastRetry(3), nil)

		var clientErr *stripe.ClientError
		require.ErrorAs(t, err, &clientErr)
		assert.Contains(t, clientErr.Message, "connection reset")
		assert.Equal(t, int32(3), calls.Load())
	})

	t.Run("connection refused", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {}))
		url := server.URL
		server.Close()

		client := stripehttp.NewClient(stripehttp.NewTransport())
		err := client.Execute(context.Background(), newRequest(http.MethodGet, url, nil), stripe.Once(), nil)

		var clientErr *stripe.ClientError
		require.ErrorAs(t, err, &clientErr)
	})

	t.Run("cancellation during backoff", func(t *testing.T) {
		t.Parallel()

		transport := stripe.TransportFunc(func(_ context.Context, _ *stripe.Request) (*stripe.Response, error) {
			return &stripe.Response{StatusCode: http.StatusInternalServerError, Header: http.Header{}}, nil
		})

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		client := stripehttp.NewClient(transport)
		start := time.Now()
		err := client.Execute(ctx, newRequest(http.MethodGet, "https://x.test", nil), stripe.Retry(5).WithBaseDelay(time.Hour), nil)

		require.ErrorIs(t, err, stripehttp.ErrRequestCanceled)
		require.ErrorIs(t, err, context.DeadlineExceeded)
		assert.Less(t, time.Since(start), 10*time.Second)
	})

	t.Run("canceled context is not retried", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())

		var calls atomic.Int32

		transport := stripe.TransportFunc(func(ctx context.Context, _ *stripe.Request) (*stripe.Response, error) {
			calls.Add(1)
			cancel()

			return nil, ctx.Err()
		})

		client := stripehttp.NewClient(transport)
		err := client.Execute(ctx, newRequest(http.MethodGet, "https://x.test", nil), fastRetry(5), nil)

		require.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("warns on retry", func(t *testing.T) {
		t.Parallel()

		transport := stripe.TransportFunc(func(_ context.Context, _ *stripe.Request) (*stripe.Response, error) {
			return &stripe.Response{StatusCode: http.StatusConflict, Header: http.Header{}}, nil
		})

		logger := &MockLogger{}
		client := stripehttp.NewClient(transport, stripehttp.WithLogger(logger))
		err := client.Execute(context.Background(), newRequest(http.MethodPost, "https://x.test", nil), fastRetry(2), nil)
		require.Error(t, err)

		require.Len(t, logger.logs, 1)
		assert.Equal(t, "warn", logger.logs[0]["level"])
		assert.Equal(t, "Retrying request", logger.logs[0]["msg"])
	})
}

func TestRetryableTransport_Send(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)

		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))
		assert.Equal(t, "Bearer sk_test_123", r.Header.Get("Authorization"))
		assert.Equal(t, "email=a%40b.c", string(body))

		w.Header().Set("Request-Id", "req_1")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	req := newRequest(http.MethodPost, server.URL+"/v1/customers", []byte("email=a%40b.c"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", "Bearer sk_test_123")

	resp, err := stripehttp.NewTransport(stripehttp.WithTimeout(5*time.Second)).Send(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "req_1", resp.Header.Get("Request-Id"))
	assert.JSONEq(t, `{"ok":true}`, string(resp.Body))
}
