package client_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	. "github.com/fivetwenty-io/stripe-client/internal/client"
	"github.com/fivetwenty-io/stripe-client/pkg/stripe"
)

const testSecretKey = "sk_test_4eC39HqLyjWDarjtT1zdp7dc"

// recordedRequest is what the test server saw of one request.
type recordedRequest struct {
	Method string
	Path   string
	Query  string
	Header http.Header
	Body   string
}

// recorder is an httptest server that records every request and answers
// with the handler's response.
type recorder struct {
	server   *httptest.Server
	mutex    sync.Mutex
	requests []recordedRequest
}

func newRecorder(t *testing.T, handler func(w http.ResponseWriter, r *http.Request)) *recorder {
	t.Helper()

	rec := &recorder{}
	rec.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)

		rec.mutex.Lock()
		rec.requests = append(rec.requests, recordedRequest{
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  r.URL.RawQuery,
			Header: r.Header.Clone(),
			Body:   string(body),
		})
		rec.mutex.Unlock()

		handler(w, r)
	}))
	t.Cleanup(rec.server.Close)

	return rec
}

func (r *recorder) Requests() []recordedRequest {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	return append([]recordedRequest(nil), r.requests...)
}

func (r *recorder) Last(t *testing.T) recordedRequest {
	t.Helper()

	requests := r.Requests()
	require.NotEmpty(t, requests)

	return requests[len(requests)-1]
}

// newTestClient creates a client against the recorder.
func newTestClient(t *testing.T, rec *recorder, modify ...func(*stripe.Config)) *Client {
	t.Helper()

	config := &stripe.Config{
		SecretKey:     testSecretKey,
		APIBase:       rec.server.URL + "/v1",
		StripeVersion: stripe.APIVersion20240620,
	}

	for _, fn := range modify {
		fn(config)
	}

	client, err := New(config)
	require.NoError(t, err)

	return client
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
