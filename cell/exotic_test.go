package cell

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLibraryReference_RoundTrip(t *testing.T) {
	var hash [32]byte
	for i := range hash {
		hash[i] = byte(i)
	}
	c, err := NewLibraryReference(hash)
	require.NoError(t, err)

	view, ok := c.AsLibraryReference()
	require.True(t, ok)
	require.Equal(t, hash, view.Hash())

	require.Equal(t, hash, c.HigherHash(0))
	require.Equal(t, uint16(0), c.Depth(0))
	require.Equal(t, LevelMask(0), c.LevelMask())

	_, ok = c.AsOrdinary()
	require.False(t, ok)
}

func TestPrunedBranch_StoredHashUsedWhenLevelContained(t *testing.T) {
	mask := LevelMask(1) // level 0 only
	var h0 [32]byte
	for i := range h0 {
		h0[i] = byte(i + 1)
	}
	c, err := NewPrunedBranch(mask, [][32]byte{h0}, []uint16{7})
	require.NoError(t, err)

	require.Equal(t, h0, c.HigherHash(0))
	require.Equal(t, uint16(7), c.Depth(0))

	view, ok := c.AsPrunedBranch()
	require.True(t, ok)
	require.Equal(t, mask, view.Mask())
}

func TestPrunedBranch_ComputedHashWhenLevelNotContained(t *testing.T) {
	mask := LevelMask(1)
	var h0 [32]byte
	h0[0] = 0xAA
	c, err := NewPrunedBranch(mask, [][32]byte{h0}, []uint16{1})
	require.NoError(t, err)

	// level 1 is not in the mask: falls back to the generic SHA-256 framing.
	h := c.HigherHash(1)
	want := sha256Of([]byte{RefsDescriptor(0, true, mask), BitsDescriptor(c.BitLen(), true), tagPrunedBranch}, c.Data())
	require.Equal(t, want, h)
	require.Equal(t, uint16(0), c.Depth(1))
}

func TestPrunedBranch_InvalidMask(t *testing.T) {
	_, err := NewPrunedBranch(LevelMask(0), nil, nil)
	require.Error(t, err)
}

func TestMerkleProof_EmbeddedChildInfo(t *testing.T) {
	child, err := NewBuilder().IntoCell()
	require.NoError(t, err)

	childHash := RepresentationHash(child)
	c, err := NewMerkleProof(childHash, child.Depth(0), child)
	require.NoError(t, err)

	view, ok := c.AsMerkleProof()
	require.True(t, ok)
	require.Equal(t, childHash, view.ChildHash())
	require.Equal(t, child.Depth(0), view.ChildDepth())
	require.Same(t, child, view.Child())
}

func TestMerkleUpdate_EmbeddedChildInfo(t *testing.T) {
	before, err := NewBuilder().IntoCell()
	require.NoError(t, err)
	ab := NewBuilder()
	require.NoError(t, ab.StoreBit(true))
	after, err := ab.IntoCell()
	require.NoError(t, err)

	hb, ha := RepresentationHash(before), RepresentationHash(after)
	c, err := NewMerkleUpdate(hb, ha, before.Depth(0), after.Depth(0), before, after)
	require.NoError(t, err)

	view, ok := c.AsMerkleUpdate()
	require.True(t, ok)
	require.Equal(t, hb, view.HashBefore())
	require.Equal(t, ha, view.HashAfter())
	require.Same(t, before, view.Before())
	require.Same(t, after, view.After())
}

func TestWrongCellType(t *testing.T) {
	c, err := NewBuilder().IntoCell()
	require.NoError(t, err)
	_, ok := c.AsLibraryReference()
	require.False(t, ok)
}
