// Package natsbus publishes verified webhook events to NATS.
package natsbus

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/fivetwenty-io/stripe-client/internal/constants"
	"github.com/fivetwenty-io/stripe-client/pkg/stripe"
)

// Static errors for err113 compliance.
var (
	ErrURLRequired = errors.New("NATS URL is required")
	ErrEventID     = errors.New("event has no id")
)

// Header names set on every published message.
const (
	HeaderEventType = "Stripe-Event-Type"
	HeaderAccount   = "Stripe-Account"
)

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Conn is the part of *nats.Conn the publisher uses.
type Conn interface {
	PublishMsg(msg *nats.Msg) error
	FlushWithContext(ctx context.Context) error
}

// Config holds the connection settings.
type Config struct {
	URL           string
	Name          string
	SubjectPrefix string
	Timeout       time.Duration
}

// Publisher sends events to "<prefix>.<event type>". It implements
// webhook.Sink. The event id is set as Nats-Msg-Id so JetStream streams can
// drop redeliveries.
type Publisher struct {
	conn   Conn
	prefix string
	logger Logger
}

// Option configures a Publisher.
type Option func(*Publisher)

// WithLogger sets the logger.
func WithLogger(logger Logger) Option {
	return func(p *Publisher) {
		p.logger = logger
	}
}

// WithSubjectPrefix replaces the subject prefix.
func WithSubjectPrefix(prefix string) Option {
	return func(p *Publisher) {
		if prefix != "" {
			p.prefix = strings.TrimSuffix(prefix, ".")
		}
	}
}

// NewPublisher creates a publisher over an existing connection.
func NewPublisher(conn Conn, opts ...Option) *Publisher {
	p := &Publisher{
		conn:   conn,
		prefix: constants.DefaultEventSubjectPrefix,
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Connect dials NATS and returns a publisher plus the connection, which the
// caller drains on shutdown.
func Connect(config Config, opts ...Option) (*Publisher, *nats.Conn, error) {
	if config.URL == "" {
		return nil, nil, ErrURLRequired
	}

	natsOpts := []nats.Option{nats.MaxReconnects(-1)}
	if config.Name != "" {
		natsOpts = append(natsOpts, nats.Name(config.Name))
	}

	if config.Timeout > 0 {
		natsOpts = append(natsOpts, nats.Timeout(config.Timeout))
	}

	conn, err := nats.Connect(config.URL, natsOpts...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	if config.SubjectPrefix != "" {
		opts = append(opts, WithSubjectPrefix(config.SubjectPrefix))
	}

	return NewPublisher(conn, opts...), conn, nil
}

// Subject returns the subject an event of type eventType is published on.
func (p *Publisher) Subject(eventType stripe.EventType) string {
	return p.prefix + "." + string(eventType)
}

// Deliver publishes event and waits for the server to acknowledge the flush.
func (p *Publisher) Deliver(ctx context.Context, event *stripe.Event) error {
	if event.ID == "" {
		return ErrEventID
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode event %s: %w", event.ID, err)
	}

	msg := nats.NewMsg(p.Subject(event.Type))
	msg.Data = data
	msg.Header.Set(nats.MsgIdHdr, event.ID)
	msg.Header.Set(HeaderEventType, string(event.Type))

	if event.Account != "" {
		msg.Header.Set(HeaderAccount, event.Account)
	}

	err = p.conn.PublishMsg(msg)
	if err != nil {
		return fmt.Errorf("failed to publish event %s: %w", event.ID, err)
	}

	err = p.conn.FlushWithContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to flush event %s: %w", event.ID, err)
	}

	if p.logger != nil {
		p.logger.Debug("Published event", map[string]interface{}{
			"event_id": event.ID,
			"type":     string(event.Type),
			"subject":  msg.Subject,
		})
	}

	return nil
}
