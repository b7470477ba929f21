package tlb

import (
	"testing"

	"github.com/akostylev0/toner/cell"
	"github.com/stretchr/testify/require"
)

func TestMaybe_RoundTrip_None(t *testing.T) {
	b := cell.NewBuilder()
	var m Maybe[Uint8, *Uint8]
	require.NoError(t, m.MarshalTLB(b))
	c, err := b.IntoCell()
	require.NoError(t, err)
	require.Equal(t, 1, c.BitLen())
	require.Equal(t, byte(0x00), c.Data()[0]&0x80)

	p := cell.NewParser(c)
	var got Maybe[Uint8, *Uint8]
	require.NoError(t, got.UnmarshalTLB(p))
	require.False(t, got.Valid)
	require.NoError(t, p.EnsureEmpty())
}

func TestMaybe_RoundTrip_Some(t *testing.T) {
	b := cell.NewBuilder()
	m := Some[Uint8, *Uint8](0xAA)
	require.NoError(t, m.MarshalTLB(b))
	c, err := b.IntoCell()
	require.NoError(t, err)
	require.Equal(t, 9, c.BitLen())

	p := cell.NewParser(c)
	var got Maybe[Uint8, *Uint8]
	require.NoError(t, got.UnmarshalTLB(p))
	require.True(t, got.Valid)
	require.Equal(t, Uint8(0xAA), got.Value)
	require.NoError(t, p.EnsureEmpty())
}

func TestEither_TagBitSelectsArm(t *testing.T) {
	bLeft := cell.NewBuilder()
	left := Either[Uint8, *Uint8, Uint16, *Uint16]{IsRight: false, Left: 7}
	require.NoError(t, left.MarshalTLB(bLeft))
	cLeft, err := bLeft.IntoCell()
	require.NoError(t, err)

	p := cell.NewParser(cLeft)
	var gotLeft Either[Uint8, *Uint8, Uint16, *Uint16]
	require.NoError(t, gotLeft.UnmarshalTLB(p))
	require.False(t, gotLeft.IsRight)
	require.Equal(t, Uint8(7), gotLeft.Left)

	bRight := cell.NewBuilder()
	right := Either[Uint8, *Uint8, Uint16, *Uint16]{IsRight: true, Right: 1000}
	require.NoError(t, right.MarshalTLB(bRight))
	cRight, err := bRight.IntoCell()
	require.NoError(t, err)

	p2 := cell.NewParser(cRight)
	var gotRight Either[Uint8, *Uint8, Uint16, *Uint16]
	require.NoError(t, gotRight.UnmarshalTLB(p2))
	require.True(t, gotRight.IsRight)
	require.Equal(t, Uint16(1000), gotRight.Right)
}

func TestEitherInlineOrRef_DecodeIndependentOfEncoderChoice(t *testing.T) {
	small := Uint8(42)

	bInline := cell.NewBuilder()
	require.NoError(t, EitherInlineOrRef[Uint8, *Uint8]{}.StoreTLB(bInline, small))
	cInline, err := bInline.IntoCell()
	require.NoError(t, err)
	require.Equal(t, 0, cInline.RefsCount())

	bForcedRef := cell.NewBuilder()
	require.NoError(t, bForcedRef.StoreBitsRepeat(true, cell.MaxBitLen-4))
	require.NoError(t, EitherInlineOrRef[Uint8, *Uint8]{}.StoreTLB(bForcedRef, small))
	cForcedRef, err := bForcedRef.IntoCell()
	require.NoError(t, err)
	require.Equal(t, 1, cForcedRef.RefsCount())

	pInline := cell.NewParser(cInline)
	gotInline, err := EitherInlineOrRef[Uint8, *Uint8]{}.ParseTLB(pInline)
	require.NoError(t, err)

	pForcedRef := cell.NewParser(cForcedRef)
	require.NoError(t, pForcedRef.Skip(cell.MaxBitLen-4))
	gotForcedRef, err := EitherInlineOrRef[Uint8, *Uint8]{}.ParseTLB(pForcedRef)
	require.NoError(t, err)

	require.Equal(t, small, gotInline)
	require.Equal(t, small, gotForcedRef)
}
