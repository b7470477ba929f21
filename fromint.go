package tlb

import "github.com/akostylev0/toner/cell"

// IntoWire is implemented by a user-facing type that has a lossless wire
// representation W (spec §4.4's FromInto/TryFromInto family).
type IntoWire[W any] interface {
	IntoWire() W
}

// FromWireSetter is implemented by *U for infallible wire-to-user
// conversion.
type FromWireSetter[W any] interface {
	FromWire(W)
}

// TryFromWireSetter is implemented by *U for fallible wire-to-user
// conversion, returning ConversionFailedError (or a wrapped cause) on a
// value the user type cannot represent.
type TryFromWireSetter[W any] interface {
	TryFromWire(W) error
}

// FromInto adapts U through an intermediate wire type W, storing/parsing
// W inline and converting losslessly in both directions.
type FromInto[U IntoWire[W], W Marshaler, WP interface {
	*W
	Unmarshaler
}, UP interface {
	*U
	FromWireSetter[W]
}] struct{}

func (FromInto[U, W, WP, UP]) StoreTLB(b *cell.Builder, v U) error {
	w := v.IntoWire()
	return w.MarshalTLB(b)
}

func (FromInto[U, W, WP, UP]) ParseTLB(p *cell.Parser) (U, error) {
	var u U
	var w W
	if err := WP(&w).UnmarshalTLB(p); err != nil {
		return u, err
	}
	UP(&u).FromWire(w)
	return u, nil
}

// FromIntoRef is FromInto, but W is carried in a child reference rather
// than inline.
type FromIntoRef[U IntoWire[W], W Marshaler, WP interface {
	*W
	Unmarshaler
}, UP interface {
	*U
	FromWireSetter[W]
}] struct{}

func (FromIntoRef[U, W, WP, UP]) StoreTLB(b *cell.Builder, v U) error {
	return Ref[W, Same[W, WP]]{}.StoreTLB(b, v.IntoWire())
}

func (FromIntoRef[U, W, WP, UP]) ParseTLB(p *cell.Parser) (U, error) {
	var u U
	w, err := Ref[W, Same[W, WP]]{}.ParseTLB(p)
	if err != nil {
		return u, err
	}
	UP(&u).FromWire(w)
	return u, nil
}

// TryFromInto is FromInto with a conversion step that can fail (e.g. the
// wire value is out of the user type's valid range).
type TryFromInto[U IntoWire[W], W Marshaler, WP interface {
	*W
	Unmarshaler
}, UP interface {
	*U
	TryFromWireSetter[W]
}] struct{}

func (TryFromInto[U, W, WP, UP]) StoreTLB(b *cell.Builder, v U) error {
	w := v.IntoWire()
	return w.MarshalTLB(b)
}

func (TryFromInto[U, W, WP, UP]) ParseTLB(p *cell.Parser) (U, error) {
	var u U
	var w W
	if err := WP(&w).UnmarshalTLB(p); err != nil {
		return u, err
	}
	if err := UP(&u).TryFromWire(w); err != nil {
		return u, err
	}
	return u, nil
}

// TryFromIntoRef is TryFromInto with W carried in a child reference.
type TryFromIntoRef[U IntoWire[W], W Marshaler, WP interface {
	*W
	Unmarshaler
}, UP interface {
	*U
	TryFromWireSetter[W]
}] struct{}

func (TryFromIntoRef[U, W, WP, UP]) StoreTLB(b *cell.Builder, v U) error {
	return Ref[W, Same[W, WP]]{}.StoreTLB(b, v.IntoWire())
}

func (TryFromIntoRef[U, W, WP, UP]) ParseTLB(p *cell.Parser) (U, error) {
	var u U
	w, err := Ref[W, Same[W, WP]]{}.ParseTLB(p)
	if err != nil {
		return u, err
	}
	if err := UP(&u).TryFromWire(w); err != nil {
		return u, err
	}
	return u, nil
}
