package tlb

import (
	"testing"

	"github.com/akostylev0/toner/cell"
	"github.com/stretchr/testify/require"
)

func TestRef_RoundTrip(t *testing.T) {
	b := cell.NewBuilder()
	a := Ref[point, Same[point, *point]]{}
	require.NoError(t, a.StoreTLB(b, point{X: 1, Y: 2}))
	c, err := b.IntoCell()
	require.NoError(t, err)
	require.Equal(t, 1, c.RefsCount())

	p := cell.NewParser(c)
	got, err := a.ParseTLB(p)
	require.NoError(t, err)
	require.Equal(t, point{X: 1, Y: 2}, got)
}

func TestRef_RejectsTrailingDataInChild(t *testing.T) {
	child := cell.NewBuilder()
	require.NoError(t, Store(child, point{X: 1, Y: 2}))
	require.NoError(t, child.StoreBit(true))
	childCell, err := child.IntoCell()
	require.NoError(t, err)

	b := cell.NewBuilder()
	require.NoError(t, b.StoreReference(childCell))
	c, err := b.IntoCell()
	require.NoError(t, err)

	p := cell.NewParser(c)
	_, err = Ref[point, Same[point, *point]]{}.ParseTLB(p)
	require.Error(t, err)
}

func TestRefPartial_IgnoresTrailingData(t *testing.T) {
	child := cell.NewBuilder()
	require.NoError(t, Store(child, point{X: 1, Y: 2}))
	require.NoError(t, child.StoreBit(true))
	childCell, err := child.IntoCell()
	require.NoError(t, err)

	b := cell.NewBuilder()
	require.NoError(t, b.StoreReference(childCell))
	c, err := b.IntoCell()
	require.NoError(t, err)

	p := cell.NewParser(c)
	got, err := RefPartial[point, Same[point, *point]]{}.ParseTLB(p)
	require.NoError(t, err)
	require.Equal(t, point{X: 1, Y: 2}, got)
}

func TestDefaultOnNone_FallsBackToZeroValue(t *testing.T) {
	b := cell.NewBuilder()
	require.NoError(t, b.StoreBit(false))
	c, err := b.IntoCell()
	require.NoError(t, err)

	p := cell.NewParser(c)
	got, err := DefaultOnNone[Uint32, *Uint32]{}.ParseTLB(p)
	require.NoError(t, err)
	require.Equal(t, Uint32(0), got)
}

func TestNoArgsDefaultArgs_RoundTrip(t *testing.T) {
	b := cell.NewBuilder()
	store := NoArgs[Uint8, int, Same[Uint8, *Uint8]]{}
	require.NoError(t, store.StoreTLBArgs(b, Uint8(9), 0))
	c, err := b.IntoCell()
	require.NoError(t, err)

	parse := DefaultArgs[Uint8, int, NoArgs[Uint8, int, Same[Uint8, *Uint8]]]{}
	p := cell.NewParser(c)
	got, err := parse.ParseTLB(p)
	require.NoError(t, err)
	require.Equal(t, Uint8(9), got)
}
