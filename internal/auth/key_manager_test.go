package auth_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/stripe-client/internal/auth"
)

func TestStaticKeyManager(t *testing.T) {
	t.Parallel()

	manager := auth.NewStaticKeyManager("sk_test_123")

	key, err := manager.GetKey(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "sk_test_123", key)

	manager.SetKey("")

	_, err = manager.GetKey(context.Background())
	require.ErrorIs(t, err, auth.ErrNoSecretKey)
}

func TestStaticKeyManager_ConcurrentRotation(t *testing.T) {
	t.Parallel()

	manager := auth.NewStaticKeyManager("sk_test_a")

	var wg sync.WaitGroup

	for i := range 20 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			if i%2 == 0 {
				manager.SetKey("sk_test_b")

				return
			}

			key, err := manager.GetKey(context.Background())
			assert.NoError(t, err)
			assert.Contains(t, []string{"sk_test_a", "sk_test_b"}, key)
		}()
	}

	wg.Wait()
}

func TestAuthorizationHeader(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Bearer sk_test_123", auth.AuthorizationHeader("sk_test_123"))
}

func TestMode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		key      string
		expected string
	}{
		{"sk_test_abc", auth.ModeTest},
		{"rk_live_abc", auth.ModeLive},
		{"sk_abc", auth.ModeUnknown},
		{"", auth.ModeUnknown},
		{"pk_prod_abc", auth.ModeUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, auth.Mode(tt.key))
		})
	}
}

func TestMask(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "sk_test_...wxyz", auth.Mask("sk_test_abcdefwxyz"))
	assert.Equal(t, "*****", auth.Mask("short"))
	assert.Equal(t, "***********", auth.Mask("sk_test_abc"))
}
