package auth

import (
	"context"
	"errors"
	"strings"
	"sync"
)

// Static errors for err113 compliance.
var (
	ErrNoSecretKey = errors.New("no secret key configured")
)

// Key modes.
const (
	ModeTest    = "test"
	ModeLive    = "live"
	ModeUnknown = "unknown"
)

const bearerPrefix = "Bearer "

// KeyManager supplies the secret key a request is authorized with.
type KeyManager interface {
	GetKey(ctx context.Context) (string, error)
}

// StaticKeyManager holds one secret key. The key can be rotated while
// requests are in flight.
type StaticKeyManager struct {
	mutex sync.RWMutex
	key   string
}

// NewStaticKeyManager creates a key manager for key.
func NewStaticKeyManager(key string) *StaticKeyManager {
	return &StaticKeyManager{key: key}
}

// GetKey returns the current key.
func (m *StaticKeyManager) GetKey(_ context.Context) (string, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	if m.key == "" {
		return "", ErrNoSecretKey
	}

	return m.key, nil
}

// SetKey replaces the key used by subsequent requests.
func (m *StaticKeyManager) SetKey(key string) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.key = key
}

// AuthorizationHeader formats key as a Bearer credential.
func AuthorizationHeader(key string) string {
	return bearerPrefix + key
}

// Mode reports whether key is a test or live mode key.
func Mode(key string) string {
	parts := strings.SplitN(key, "_", 3)
	if len(parts) < 3 {
		return ModeUnknown
	}

	switch parts[1] {
	case ModeTest:
		return ModeTest
	case ModeLive:
		return ModeLive
	default:
		return ModeUnknown
	}
}

// Mask hides all but the prefix and the last four characters of key.
func Mask(key string) string {
	const visible = 4

	prefixEnd := strings.LastIndex(key, "_") + 1
	if prefixEnd == 0 || len(key)-prefixEnd <= visible {
		return strings.Repeat("*", len(key))
	}

	return key[:prefixEnd] + "..." + key[len(key)-visible:]
}
