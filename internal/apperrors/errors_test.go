package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNotFound(t *testing.T) {
	err := NotFound("product", "iphone-17-pro")
	require.EqualError(t, err, "product iphone-17-pro not found")
	require.True(t, IsNotFound(err))
	require.False(t, IsConflict(err))

	t.Run("detected through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("loading catalog: %w", err)
		require.True(t, IsNotFound(wrapped))
	})
}

func TestConflict(t *testing.T) {
	err := Conflict("variant", "sku", "IP17P-256-SL")
	require.EqualError(t, err, `variant with sku "IP17P-256-SL" already exists`)
	require.True(t, IsConflict(err))
	require.False(t, IsNotFound(err))
}

func TestUntypedErrors(t *testing.T) {
	err := errors.New("connection reset")
	require.False(t, IsNotFound(err))
	require.False(t, IsConflict(err))
	require.False(t, IsNotFound(nil))
}
