package layer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRangeAndOverlap(t *testing.T) {
	a := Range(0, 3)
	b := Range(2, 5)
	require.True(t, a.Overlaps(b))
	require.False(t, a.IsSingleLayer())
	require.True(t, Single(1).IsSingleLayer())
}

func TestUnionAndLayers(t *testing.T) {
	a := Single(0)
	b := Single(2)
	u := a.Union(b)
	require.Equal(t, []ID{0, 2}, u.Layers())
	require.Equal(t, ID(0), u.Start())
	require.Equal(t, ID(2), u.End())
}
