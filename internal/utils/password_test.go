package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const testIterations = 1000 // keep tests fast; production uses a larger count

func TestHashPasswordDeterministic(t *testing.T) {
	a := HashPassword("alice@example.com", "hunter2", testIterations)
	b := HashPassword("alice@example.com", "hunter2", testIterations)
	require.Equal(t, a, b, "same email and password must hash identically")
}

func TestHashPasswordNeverStoresPlaintext(t *testing.T) {
	h := HashPassword("alice@example.com", "hunter2", testIterations)
	require.NotEqual(t, "hunter2", h)
	require.NotContains(t, h, "hunter2")
	require.Len(t, h, passwordKeyLen*2) // hex-encoded
}

func TestHashPasswordSaltedByEmail(t *testing.T) {
	a := HashPassword("alice@example.com", "hunter2", testIterations)
	b := HashPassword("bob@example.com", "hunter2", testIterations)
	require.NotEqual(t, a, b, "same password under different emails must differ")
}

func TestHashPasswordEmailNormalized(t *testing.T) {
	a := HashPassword("alice@example.com", "hunter2", testIterations)
	b := HashPassword("  Alice@Example.COM ", "hunter2", testIterations)
	require.Equal(t, a, b)
}

func TestVerifyPassword(t *testing.T) {
	stored := HashPassword("alice@example.com", "hunter2", testIterations)

	require.True(t, VerifyPassword(stored, "alice@example.com", "hunter2", testIterations))
	require.False(t, VerifyPassword(stored, "alice@example.com", "wrong", testIterations))
	require.False(t, VerifyPassword(stored, "bob@example.com", "hunter2", testIterations))
}
