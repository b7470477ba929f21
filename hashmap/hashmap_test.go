package hashmap

import (
	"sort"
	"testing"

	tlb "github.com/akostylev0/toner"
	"github.com/akostylev0/toner/cell"
	"github.com/stretchr/testify/require"
)

func keyBits(v byte, n int) []bool {
	out := make([]bool, n)
	for i := 0; i < n; i++ {
		out[i] = v&(1<<uint(n-1-i)) != 0
	}
	return out
}

func sortEntries(es []Entry[tlb.Uint8]) {
	sort.Slice(es, func(i, j int) bool {
		for k := range es[i].Key {
			if es[i].Key[k] != es[j].Key[k] {
				return !es[i].Key[k]
			}
		}
		return false
	})
}

func TestHashmapE_RoundTrip_InsertionOrderIndependent(t *testing.T) {
	entriesA := []Entry[tlb.Uint8]{
		{Key: keyBits(0x01, 8), Value: 111},
		{Key: keyBits(0xFE, 8), Value: 222},
	}
	entriesB := []Entry[tlb.Uint8]{
		{Key: keyBits(0xFE, 8), Value: 222},
		{Key: keyBits(0x01, 8), Value: 111},
	}

	for _, entries := range [][]Entry[tlb.Uint8]{entriesA, entriesB} {
		root, err := Build(entries, 8)
		require.NoError(t, err)

		b := cell.NewBuilder()
		require.NoError(t, StoreHashmapE[tlb.Uint8, tlb.Same[tlb.Uint8, *tlb.Uint8]](b, HashmapE[tlb.Uint8]{Root: root}, 8))
		c, err := b.IntoCell()
		require.NoError(t, err)

		p := cell.NewParser(c)
		got, err := ParseHashmapE[tlb.Uint8, tlb.Same[tlb.Uint8, *tlb.Uint8]](p, 8)
		require.NoError(t, err)
		require.NoError(t, p.EnsureEmpty())

		gotEntries := Collect(got.Root)
		wantEntries := append([]Entry[tlb.Uint8]{}, entries...)
		sortEntries(gotEntries)
		sortEntries(wantEntries)
		require.Equal(t, wantEntries, gotEntries)
	}
}

func TestHashmapE_Empty(t *testing.T) {
	b := cell.NewBuilder()
	require.NoError(t, StoreHashmapE[tlb.Uint8, tlb.Same[tlb.Uint8, *tlb.Uint8]](b, HashmapE[tlb.Uint8]{}, 8))
	c, err := b.IntoCell()
	require.NoError(t, err)
	require.Equal(t, 1, c.BitLen())

	p := cell.NewParser(c)
	got, err := ParseHashmapE[tlb.Uint8, tlb.Same[tlb.Uint8, *tlb.Uint8]](p, 8)
	require.NoError(t, err)
	require.Nil(t, got.Root)
}

func TestHashmapE_SingleEntry(t *testing.T) {
	entries := []Entry[tlb.Uint8]{{Key: keyBits(0x55, 8), Value: 99}}
	root, err := Build(entries, 8)
	require.NoError(t, err)

	b := cell.NewBuilder()
	require.NoError(t, StoreHashmapE[tlb.Uint8, tlb.Same[tlb.Uint8, *tlb.Uint8]](b, HashmapE[tlb.Uint8]{Root: root}, 8))
	c, err := b.IntoCell()
	require.NoError(t, err)

	p := cell.NewParser(c)
	got, err := ParseHashmapE[tlb.Uint8, tlb.Same[tlb.Uint8, *tlb.Uint8]](p, 8)
	require.NoError(t, err)
	gotEntries := Collect(got.Root)
	require.Equal(t, entries, gotEntries)
}
