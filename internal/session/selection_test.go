package session_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/BradleyLewis08/uniform-store/internal/session"
)

func TestMemoryStore_PutGetClear(t *testing.T) {
	ctx := context.Background()
	store := session.NewMemoryStore()

	_, err := store.Get(ctx, 7)
	require.ErrorIs(t, err, session.ErrNoSelection)

	sel := session.Selection{
		BaseID:     "300040",
		Name:       "Black Hoodie",
		PriceCents: 5000,
		Sizes:      []string{"S", "M", "L"},
	}
	require.NoError(t, store.Put(ctx, 7, sel))

	got, err := store.Get(ctx, 7)
	require.NoError(t, err)
	require.Equal(t, sel, got)

	require.NoError(t, store.Clear(ctx, 7))
	_, err = store.Get(ctx, 7)
	require.ErrorIs(t, err, session.ErrNoSelection)

	// Clearing an absent selection is not an error.
	require.NoError(t, store.Clear(ctx, 7))
}

func TestMemoryStore_PutOverwrites(t *testing.T) {
	ctx := context.Background()
	store := session.NewMemoryStore()

	first := session.Selection{BaseID: "300040", Name: "Black Hoodie", PriceCents: 5000, Sizes: []string{"L"}}
	second := session.Selection{BaseID: "300051", Name: "PE Shirt", PriceCents: 1500, Sizes: []string{"S", "M"}}

	require.NoError(t, store.Put(ctx, 7, first))
	require.NoError(t, store.Put(ctx, 7, second))

	// Viewing a new item replaces the previous selection outright; the
	// last viewed item wins.
	got, err := store.Get(ctx, 7)
	require.NoError(t, err)
	require.Equal(t, second, got)
}

func TestMemoryStore_IsolatedPerUser(t *testing.T) {
	ctx := context.Background()
	store := session.NewMemoryStore()

	a := session.Selection{BaseID: "300040", Name: "Black Hoodie", PriceCents: 5000}
	b := session.Selection{BaseID: "300051", Name: "PE Shirt", PriceCents: 1500}
	require.NoError(t, store.Put(ctx, 1, a))
	require.NoError(t, store.Put(ctx, 2, b))

	got, err := store.Get(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, a, got)
	got, err = store.Get(ctx, 2)
	require.NoError(t, err)
	require.Equal(t, b, got)
}
