package stripe

import (
	"fmt"
	"math/rand/v2"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/fivetwenty-io/stripe-client/internal/constants"
)

type strategyKind int

const (
	kindOnce strategyKind = iota
	kindIdempotent
	kindRetry
	kindExponentialBackoff
)

// maxBackoffShift bounds the exponent so the doubling never overflows.
const maxBackoffShift = 16

// RequestStrategy decides whether a logical call gets another attempt and
// which idempotency key its attempts carry. The zero value behaves as Once.
type RequestStrategy struct {
	kind      strategyKind
	key       string
	max       uint32
	baseDelay time.Duration
}

// Outcome is the decision returned by RequestStrategy.Test. When Stop is
// false the caller waits Delay (possibly zero) before the next attempt.
type Outcome struct {
	Stop  bool
	Delay time.Duration
}

// Once makes a single attempt without an idempotency key.
func Once() RequestStrategy {
	return RequestStrategy{kind: kindOnce}
}

// Idempotent makes a single attempt carrying the given idempotency key. An
// empty key sends no header, as with Once.
func Idempotent(key string) RequestStrategy {
	return RequestStrategy{kind: kindIdempotent, key: key}
}

// Retry retries server-side failures up to maxAttempts attempts with a fixed
// delay between them.
func Retry(maxAttempts uint32) RequestStrategy {
	return RequestStrategy{kind: kindRetry, max: maxAttempts, baseDelay: constants.DefaultRetryDelay}
}

// ExponentialBackoff is like Retry but doubles the delay after every attempt,
// with jitter, up to a fixed ceiling.
func ExponentialBackoff(maxAttempts uint32) RequestStrategy {
	return RequestStrategy{kind: kindExponentialBackoff, max: maxAttempts, baseDelay: constants.DefaultBackoffBase}
}

// WithBaseDelay returns a copy of the strategy using d as its fixed delay or
// backoff base.
func (s RequestStrategy) WithBaseDelay(d time.Duration) RequestStrategy {
	s.baseDelay = d

	return s
}

// MaxAttempts returns the retry budget, zero for single-attempt strategies.
func (s RequestStrategy) MaxAttempts() uint32 {
	return s.max
}

// IdempotencyKey returns the key attempts of a logical call must carry.
// Retrying strategies mint a fresh key on every call, so callers ask once per
// logical call and reuse the result.
func (s RequestStrategy) IdempotencyKey() (string, bool) {
	switch s.kind {
	case kindIdempotent:
		return s.key, s.key != ""
	case kindRetry, kindExponentialBackoff:
		return uuid.NewString(), true
	default:
		return "", false
	}
}

// Test decides the next step from the last observed status (0 when no
// response was received), the last Stripe-Should-Retry value and the number
// of attempts made so far.
func (s RequestStrategy) Test(lastStatus int, shouldRetry *bool, attempts uint32) Outcome {
	if shouldRetry != nil && !*shouldRetry {
		return Outcome{Stop: true}
	}

	if attempts == 0 {
		return Outcome{}
	}

	switch s.kind {
	case kindRetry:
		if attempts < s.max && retryableStatus(lastStatus) {
			return Outcome{Delay: s.baseDelay}
		}
	case kindExponentialBackoff:
		if attempts < s.max && retryableStatus(lastStatus) {
			return Outcome{Delay: backoffDelay(s.baseDelay, attempts)}
		}
	case kindOnce, kindIdempotent:
	}

	return Outcome{Stop: true}
}

// String implements fmt.Stringer.
func (s RequestStrategy) String() string {
	switch s.kind {
	case kindIdempotent:
		return "Idempotent"
	case kindRetry:
		return fmt.Sprintf("Retry(%d)", s.max)
	case kindExponentialBackoff:
		return fmt.Sprintf("ExponentialBackoff(%d)", s.max)
	default:
		return "Once"
	}
}

// retryableStatus reports whether a status may be retried. Zero stands for
// a connection-level failure.
func retryableStatus(status int) bool {
	switch {
	case status == 0:
		return true
	case status >= http.StatusInternalServerError:
		return true
	case status == http.StatusTooManyRequests, status == http.StatusConflict:
		return true
	default:
		return false
	}
}

func backoffDelay(base time.Duration, attempts uint32) time.Duration {
	shift := attempts - 1
	if shift > maxBackoffShift {
		shift = maxBackoffShift
	}

	delay := base * time.Duration(1<<shift)

	//nolint:gosec // jitter does not need a cryptographic source
	jittered := time.Duration(float64(delay) * (0.5 + rand.Float64()))
	if jittered > constants.MaxBackoffDelay {
		return constants.MaxBackoffDelay
	}

	return jittered
}
