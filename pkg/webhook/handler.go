package webhook

import (
	"context"
	"errors"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/fivetwenty-io/stripe-client/internal/constants"
	"github.com/fivetwenty-io/stripe-client/pkg/stripe"
)

// Sink receives verified events.
type Sink interface {
	Deliver(ctx context.Context, event *stripe.Event) error
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(ctx context.Context, event *stripe.Event) error

// Deliver implements Sink.
func (f SinkFunc) Deliver(ctx context.Context, event *stripe.Event) error {
	return f(ctx, event)
}

// Handler is an http.Handler that verifies webhook requests and hands the
// events to the sink registered for their type, or to the default sink.
//
// Responses: 400 for requests that fail verification, 413 for oversized
// bodies, 500 when a sink fails and 200 otherwise, including events nobody
// handles.
type Handler struct {
	mutex     sync.RWMutex
	secret    string
	tolerance time.Duration
	maxBytes  int64
	fallback  Sink
	sinks     map[stripe.EventType]Sink
	onError   func(error)
	now       func() time.Time
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithTolerance replaces the timestamp tolerance.
func WithTolerance(tolerance time.Duration) HandlerOption {
	return func(h *Handler) {
		h.tolerance = tolerance
	}
}

// WithMaxBodyBytes limits the accepted body size.
func WithMaxBodyBytes(n int64) HandlerOption {
	return func(h *Handler) {
		if n > 0 {
			h.maxBytes = n
		}
	}
}

// WithErrorHandler is called with every verification and delivery error.
func WithErrorHandler(fn func(error)) HandlerOption {
	return func(h *Handler) {
		h.onError = fn
	}
}

// WithClock replaces the clock used for the tolerance check.
func WithClock(now func() time.Time) HandlerOption {
	return func(h *Handler) {
		h.now = now
	}
}

// NewHandler creates a handler verifying with secret. fallback receives
// events with no type-specific sink and may be nil.
func NewHandler(secret string, fallback Sink, opts ...HandlerOption) *Handler {
	h := &Handler{
		secret:    secret,
		tolerance: DefaultTolerance,
		maxBytes:  constants.MaxWebhookBodyBytes,
		fallback:  fallback,
		sinks:     make(map[stripe.EventType]Sink),
		onError:   func(error) {},
		now:       time.Now,
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

// Handle registers sink for events of type eventType, replacing any sink
// registered before.
func (h *Handler) Handle(eventType stripe.EventType, sink Sink) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	h.sinks[eventType] = sink
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		w.WriteHeader(http.StatusMethodNotAllowed)

		return
	}

	payload, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.maxBytes))
	if err != nil {
		h.onError(err)

		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			w.WriteHeader(http.StatusRequestEntityTooLarge)

			return
		}

		w.WriteHeader(http.StatusServiceUnavailable)

		return
	}

	event, err := ConstructEventWithTolerance(payload, r.Header.Get(SignatureHeader), h.secret, h.now().Unix(), h.tolerance)
	if err != nil {
		h.onError(err)
		w.WriteHeader(http.StatusBadRequest)

		return
	}

	sink := h.sinkFor(event.Type)
	if sink != nil {
		err = sink.Deliver(r.Context(), event)
		if err != nil {
			h.onError(err)
			w.WriteHeader(http.StatusInternalServerError)

			return
		}
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) sinkFor(eventType stripe.EventType) Sink {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	if sink, ok := h.sinks[eventType]; ok {
		return sink
	}

	return h.fallback
}
