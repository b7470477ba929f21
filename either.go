package tlb

import "github.com/akostylev0/toner/cell"

// Either stores a tag bit then either the left or right payload inline
// (spec §4.4.1). L and R route through their own Marshaler/Unmarshaler,
// selected by the PL/PR pointer-receiver type parameters.
type Either[L Marshaler, PL interface {
	*L
	Unmarshaler
}, R Marshaler, PR interface {
	*R
	Unmarshaler
}] struct {
	IsRight bool
	Left    L
	Right   R
}

func (e Either[L, PL, R, PR]) MarshalTLB(b *cell.Builder) error {
	if err := b.StoreBit(e.IsRight); err != nil {
		return err
	}
	if e.IsRight {
		return e.Right.MarshalTLB(b)
	}
	return e.Left.MarshalTLB(b)
}

func (e *Either[L, PL, R, PR]) UnmarshalTLB(p *cell.Parser) error {
	bit, err := p.PopBit()
	if err != nil {
		return err
	}
	e.IsRight = bit
	if bit {
		return PR(&e.Right).UnmarshalTLB(p)
	}
	return PL(&e.Left).UnmarshalTLB(p)
}

// Maybe is Either<(), T> specialized away from a unit left arm: a tag bit
// followed by T's encoding only when present (spec §8 "None <-> 0b0,
// Some(0xAA) <-> 0b1 1010_1010").
type Maybe[T Marshaler, PT interface {
	*T
	Unmarshaler
}] struct {
	Valid bool
	Value T
}

func Some[T Marshaler, PT interface {
	*T
	Unmarshaler
}](v T) Maybe[T, PT] {
	return Maybe[T, PT]{Valid: true, Value: v}
}

func (m Maybe[T, PT]) MarshalTLB(b *cell.Builder) error {
	if err := b.StoreBit(m.Valid); err != nil {
		return err
	}
	if !m.Valid {
		return nil
	}
	return m.Value.MarshalTLB(b)
}

func (m *Maybe[T, PT]) UnmarshalTLB(p *cell.Parser) error {
	bit, err := p.PopBit()
	if err != nil {
		return err
	}
	m.Valid = bit
	if !bit {
		var zero T
		m.Value = zero
		return nil
	}
	return PT(&m.Value).UnmarshalTLB(p)
}

// EitherInlineOrRef chooses inline-vs-reference placement based on
// remaining builder capacity at encode time, and decodes either form back
// to the same T regardless of which the encoder picked (spec §4.4.1,
// verified by the decode-independent-of-encoder-choice property in
// either_test.go).
type EitherInlineOrRef[T Marshaler, PT interface {
	*T
	Unmarshaler
}] struct{}

func (EitherInlineOrRef[T, PT]) StoreTLB(b *cell.Builder, v T) error {
	scratch := cell.NewBuilder()
	if err := v.MarshalTLB(scratch); err != nil {
		return err
	}
	fitsInline := scratch.BitsLen() <= b.RemainingBits()-1 && scratch.RefsCount() <= cell.MaxRefs-b.RefsCount()
	if err := b.StoreBit(!fitsInline); err != nil {
		return err
	}
	if fitsInline {
		return v.MarshalTLB(b)
	}
	c, err := scratch.IntoCell()
	if err != nil {
		return err
	}
	return b.StoreReference(c)
}

func (EitherInlineOrRef[T, PT]) ParseTLB(p *cell.Parser) (T, error) {
	var zero T
	isRef, err := p.PopBit()
	if err != nil {
		return zero, err
	}
	if !isRef {
		return Same[T, PT]{}.ParseTLB(p)
	}
	c, err := p.PopReference()
	if err != nil {
		return zero, err
	}
	cp := cell.NewParser(c)
	v, err := Same[T, PT]{}.ParseTLB(cp)
	if err != nil {
		return zero, cell.WithRefHop(err)
	}
	if err := cp.EnsureEmpty(); err != nil {
		return zero, cell.WithRefHop(err)
	}
	return v, nil
}
