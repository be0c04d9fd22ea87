package model_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/BradleyLewis08/uniform-store/internal/model"
)

func TestOrderStatus_Next(t *testing.T) {
	next, ok := model.StatusIncomplete.Next()
	require.True(t, ok)
	require.Equal(t, model.StatusPending, next)

	next, ok = model.StatusPending.Next()
	require.True(t, ok)
	require.Equal(t, model.StatusComplete, next)

	_, ok = model.StatusComplete.Next()
	require.False(t, ok, "Complete is terminal")

	_, ok = model.OrderStatus("Cancelled").Next()
	require.False(t, ok)
}

func TestOrderStatus_CanTransition(t *testing.T) {
	cases := []struct {
		name    string
		from    model.OrderStatus
		to      model.OrderStatus
		allowed bool
	}{
		{"incomplete to pending", model.StatusIncomplete, model.StatusPending, true},
		{"pending to complete", model.StatusPending, model.StatusComplete, true},
		{"skip straight to complete", model.StatusIncomplete, model.StatusComplete, false},
		{"re-apply same status", model.StatusPending, model.StatusPending, false},
		{"backwards", model.StatusComplete, model.StatusPending, false},
		{"out of terminal state", model.StatusComplete, model.StatusComplete, false},
		{"unknown source", model.OrderStatus("Draft"), model.StatusPending, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.allowed, tc.from.CanTransition(tc.to))
		})
	}
}

func TestOrderStatus_Valid(t *testing.T) {
	require.True(t, model.StatusIncomplete.Valid())
	require.True(t, model.StatusPending.Valid())
	require.True(t, model.StatusComplete.Valid())
	require.False(t, model.OrderStatus("").Valid())
	require.False(t, model.OrderStatus("incomplete").Valid(), "statuses are case sensitive")
}
