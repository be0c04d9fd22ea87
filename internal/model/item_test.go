package model_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/BradleyLewis08/uniform-store/internal/model"
)

func TestCompositeID(t *testing.T) {
	require.Equal(t, "300040-L", model.CompositeID("300040", "L"))
	require.Equal(t, "300040-XL", model.CompositeID("300040", " xl "))
}

func TestSplitCompositeID(t *testing.T) {
	base, size, ok := model.SplitCompositeID("300040-L")
	require.True(t, ok)
	require.Equal(t, "300040", base)
	require.Equal(t, "L", size)

	// Base identifiers may themselves contain dashes; the size is the
	// suffix after the last one.
	base, size, ok = model.SplitCompositeID("PE-KIT-XL")
	require.True(t, ok)
	require.Equal(t, "PE-KIT", base)
	require.Equal(t, "XL", size)

	_, _, ok = model.SplitCompositeID("300040")
	require.False(t, ok)
	_, _, ok = model.SplitCompositeID("300040-")
	require.False(t, ok)
	_, _, ok = model.SplitCompositeID("-L")
	require.False(t, ok)
}
