package cell

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRepresentationHash_Empty(t *testing.T) {
	c, err := NewBuilder().IntoCell()
	require.NoError(t, err)

	h := RepresentationHash(c)
	want := sha256Of([]byte{0x00, 0x00})
	require.Equal(t, want, h)
}

func TestRepresentationHash_PackedUint32(t *testing.T) {
	b := NewBuilder()
	require.NoError(t, b.StoreUint(0x0000000F, 32))
	c, err := b.IntoCell()
	require.NoError(t, err)

	h := RepresentationHash(c)
	require.Equal(t, "57b520dbcb9d135863fc33963cde9f6db2ded1430d88056810a2c9434a3860f9", hex.EncodeToString(h[:]))
}

func TestRepresentationHash_TwoRefs(t *testing.T) {
	leaf := NewBuilder()
	require.NoError(t, leaf.StoreUint(0x0000000F, 32))
	leafCell, err := leaf.IntoCell()
	require.NoError(t, err)

	parent := NewBuilder()
	require.NoError(t, parent.StoreUint(0x00000B, 24))
	require.NoError(t, parent.StoreReference(leafCell))
	require.NoError(t, parent.StoreReference(leafCell))
	parentCell, err := parent.IntoCell()
	require.NoError(t, err)

	h := RepresentationHash(parentCell)
	require.Equal(t, "f345277cc6cfa747f001367e1e873dcfa8a936b8492431248b7a3eeafa8030e7", hex.EncodeToString(h[:]))
}

func TestDepth_NoRefsIsZero(t *testing.T) {
	c, err := NewBuilder().IntoCell()
	require.NoError(t, err)
	require.Equal(t, uint16(0), c.Depth(0))
}

func TestDepth_DeepTree(t *testing.T) {
	leaf := func() *Cell {
		c, err := NewBuilder().IntoCell()
		require.NoError(t, err)
		return c
	}()

	ref := func(children ...*Cell) *Cell {
		b := NewBuilder()
		for _, ch := range children {
			require.NoError(t, b.StoreReference(ch))
		}
		c, err := b.IntoCell()
		require.NoError(t, err)
		return c
	}

	// (ref, ref(ref, ref(ref)), ( , )) built inline -> max_depth 4
	innermost := ref(leaf)             // depth 1
	nested := ref(leaf, innermost)     // depth 2
	middle := ref(nested, ref(leaf))   // depth 3
	root := ref(leaf, middle, leaf)    // depth 4
	require.Equal(t, uint16(4), root.Depth(0))
}

func TestEqual(t *testing.T) {
	b1 := NewBuilder()
	require.NoError(t, b1.StoreUint(42, 8))
	c1, err := b1.IntoCell()
	require.NoError(t, err)

	b2 := NewBuilder()
	require.NoError(t, b2.StoreUint(42, 8))
	c2, err := b2.IntoCell()
	require.NoError(t, err)

	require.True(t, c1.Equal(c2))

	b3 := NewBuilder()
	require.NoError(t, b3.StoreUint(43, 8))
	c3, err := b3.IntoCell()
	require.NoError(t, err)
	require.False(t, c1.Equal(c3))
}

func TestCapacityAndRefLimits(t *testing.T) {
	b := NewBuilder()
	require.NoError(t, b.StoreBitsRepeat(true, MaxBitLen))
	err := b.StoreBit(true)
	require.Error(t, err)

	b2 := NewBuilder()
	leaf, err := NewBuilder().IntoCell()
	require.NoError(t, err)
	for i := 0; i < MaxRefs; i++ {
		require.NoError(t, b2.StoreReference(leaf))
	}
	err = b2.StoreReference(leaf)
	require.Error(t, err)
	var tooMany *TooManyReferencesError
	require.ErrorAs(t, err, &tooMany)
}
