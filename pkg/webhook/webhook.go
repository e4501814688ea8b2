// Package webhook verifies and decodes signed event notifications.
package webhook

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	stripewebhook "github.com/stripe/stripe-go/v72/webhook"

	"github.com/fivetwenty-io/stripe-client/internal/constants"
	"github.com/fivetwenty-io/stripe-client/pkg/stripe"
)

// SignatureHeader is the request header carrying the signature.
const SignatureHeader = constants.HeaderStripeSignature

// DefaultTolerance is the largest accepted distance between the signed
// timestamp and the current time.
const DefaultTolerance = constants.WebhookTolerance

const (
	signingScheme = "v1"
	timestampKey  = "t"
)

// Static errors for err113 compliance.
var (
	// ErrBadKey is returned when the endpoint secret cannot key the HMAC.
	ErrBadKey = errors.New("webhook secret is empty")
	// ErrBadSignature is returned when no v1 signature matches the payload,
	// or the header carries no timestamp or v1 signature.
	ErrBadSignature = errors.New("webhook signature does not match")
)

// BadHeaderError reports a timestamp that is not a signed 64-bit integer,
// or a header element that is not a key=value pair.
type BadHeaderError struct {
	Err error
}

func (e *BadHeaderError) Error() string {
	return fmt.Sprintf("invalid webhook signature header: %v", e.Err)
}

func (e *BadHeaderError) Unwrap() error {
	return e.Err
}

// BadTimestampError reports a signature outside the tolerance window.
type BadTimestampError struct {
	Timestamp int64
}

func (e *BadTimestampError) Error() string {
	return fmt.Sprintf("webhook timestamp %d is outside the tolerance window", e.Timestamp)
}

// BadParseError reports a verified payload that is not a valid event.
type BadParseError struct {
	Err error
}

func (e *BadParseError) Error() string {
	return fmt.Sprintf("failed to parse webhook event: %v", e.Err)
}

func (e *BadParseError) Unwrap() error {
	return e.Err
}

// ConstructEvent verifies payload against header and decodes the event.
func ConstructEvent(payload []byte, header, secret string) (*stripe.Event, error) {
	return ConstructEventWithTimestamp(payload, header, secret, time.Now().Unix())
}

// ConstructEventWithTimestamp is ConstructEvent with the current time given
// as unix seconds.
func ConstructEventWithTimestamp(payload []byte, header, secret string, now int64) (*stripe.Event, error) {
	return ConstructEventWithTolerance(payload, header, secret, now, DefaultTolerance)
}

// ConstructEventWithTolerance is ConstructEventWithTimestamp with a custom
// tolerance window.
func ConstructEventWithTolerance(
	payload []byte, header, secret string, now int64, tolerance time.Duration,
) (*stripe.Event, error) {
	err := VerifySignature(payload, header, secret, now, tolerance)
	if err != nil {
		return nil, err
	}

	var event stripe.Event

	err = json.Unmarshal(payload, &event)
	if err != nil {
		return nil, &BadParseError{Err: stripe.NewJSONError(err)}
	}

	return &event, nil
}

// VerifySignature checks that one of the v1 signatures in header signs
// payload, then that the signed timestamp is within tolerance of now.
func VerifySignature(payload []byte, header, secret string, now int64, tolerance time.Duration) error {
	if secret == "" {
		return ErrBadKey
	}

	timestamp, err := headerTimestamp(header)
	if err != nil {
		return err
	}

	err = stripewebhook.ValidatePayloadIgnoringTolerance(payload, header, secret)
	if err != nil {
		return signatureError(err)
	}

	age := now - timestamp
	if age < 0 {
		age = -age
	}

	if age > int64(tolerance/time.Second) {
		return &BadTimestampError{Timestamp: timestamp}
	}

	return nil
}

// ComputeSignature returns the hex v1 signature of payload at timestamp.
func ComputeSignature(payload []byte, secret string, timestamp int64) string {
	return hex.EncodeToString(stripewebhook.ComputeSignature(time.Unix(timestamp, 0), payload, secret))
}

// FormatHeader builds a signature header value for payload, as the server
// would send it.
func FormatHeader(payload []byte, secret string, timestamp int64) string {
	return fmt.Sprintf("%s=%d,%s=%s", timestampKey, timestamp, signingScheme, ComputeSignature(payload, secret, timestamp))
}

// headerTimestamp returns the t value of header. A header without one
// cannot carry a valid signature.
func headerTimestamp(header string) (int64, error) {
	for _, pair := range strings.Split(header, ",") {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key != timestampKey {
			continue
		}

		timestamp, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return 0, &BadHeaderError{Err: err}
		}

		return timestamp, nil
	}

	return 0, ErrBadSignature
}

func signatureError(err error) error {
	switch {
	case errors.Is(err, stripewebhook.ErrInvalidHeader):
		return &BadHeaderError{Err: err}
	case errors.Is(err, stripewebhook.ErrNoValidSignature), errors.Is(err, stripewebhook.ErrNotSigned):
		return ErrBadSignature
	default:
		return fmt.Errorf("failed to verify webhook signature: %w", err)
	}
}
