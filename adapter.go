package tlb

import "github.com/akostylev0/toner/cell"

// Adapter is the generic codec-selection trait behind spec §4.4's closed
// adapter list: a zero-state strategy for storing/parsing a T that does
// not have to be T's own Marshaler/Unmarshaler implementation. Adapters
// compose by nesting one generic type inside another's type parameter,
// e.g. Ref[MyPayload, Same[MyPayload, *MyPayload]].
type Adapter[T any] interface {
	StoreTLB(b *cell.Builder, v T) error
	ParseTLB(p *cell.Parser) (T, error)
}

// AdapterArgs is the with-args counterpart of Adapter.
type AdapterArgs[T any, Args any] interface {
	StoreTLBArgs(b *cell.Builder, v T, args Args) error
	ParseTLBArgs(p *cell.Parser, args Args) (T, error)
}

// Same routes through T's own Marshaler/Unmarshaler implementation. It is
// the adapter implied when a field is stored with plain Store/Parse, and
// exists as a named type so it can be nested inside other adapters (e.g.
// Ref[T, Same[T, PT]]).
type Same[T Marshaler, PT interface {
	*T
	Unmarshaler
}] struct{}

func (Same[T, PT]) StoreTLB(b *cell.Builder, v T) error { return v.MarshalTLB(b) }

func (Same[T, PT]) ParseTLB(p *cell.Parser) (T, error) {
	var v T
	if err := PT(&v).UnmarshalTLB(p); err != nil {
		return v, err
	}
	return v, nil
}

// Ref stores T in a freshly built ordinary child cell and pushes a
// reference to it, using A to codec the child's contents (spec §4.3
// "reference consumption": the child is parsed to completion and
// EnsureEmpty is enforced unless RefPartial is used instead).
type Ref[T any, A Adapter[T]] struct{}

func (Ref[T, A]) StoreTLB(b *cell.Builder, v T) error {
	var a A
	child := cell.NewBuilder()
	if err := a.StoreTLB(child, v); err != nil {
		return cell.WithRefHop(err)
	}
	c, err := child.IntoCell()
	if err != nil {
		return cell.WithRefHop(err)
	}
	return b.StoreReference(c)
}

func (Ref[T, A]) ParseTLB(p *cell.Parser) (T, error) {
	var zero T
	c, err := p.PopReference()
	if err != nil {
		return zero, err
	}
	cp := cell.NewParser(c)
	var a A
	v, err := a.ParseTLB(cp)
	if err != nil {
		return zero, cell.WithRefHop(err)
	}
	if err := cp.EnsureEmpty(); err != nil {
		return zero, cell.WithRefHop(err)
	}
	return v, nil
}

// RefPartial is Ref without the trailing EnsureEmpty, for references whose
// child is known to carry trailing data consumed by a sibling adapter.
type RefPartial[T any, A Adapter[T]] struct{}

func (RefPartial[T, A]) StoreTLB(b *cell.Builder, v T) error {
	return Ref[T, A]{}.StoreTLB(b, v)
}

func (RefPartial[T, A]) ParseTLB(p *cell.Parser) (T, error) {
	var zero T
	c, err := p.PopReference()
	if err != nil {
		return zero, err
	}
	cp := cell.NewParser(c)
	var a A
	v, err := a.ParseTLB(cp)
	if err != nil {
		return zero, cell.WithRefHop(err)
	}
	return v, nil
}

// ParseFully wraps A and additionally asserts the parser is exhausted
// after A runs, usable either at the top level or nested inside Ref.
type ParseFully[T any, A Adapter[T]] struct{}

func (ParseFully[T, A]) StoreTLB(b *cell.Builder, v T) error {
	var a A
	return a.StoreTLB(b, v)
}

func (ParseFully[T, A]) ParseTLB(p *cell.Parser) (T, error) {
	var a A
	v, err := a.ParseTLB(p)
	if err != nil {
		var zero T
		return zero, err
	}
	if err := p.EnsureEmpty(); err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}

// NoArgs lifts a no-args Adapter[T] into an AdapterArgs[T, Args] that
// ignores whatever Args it is given.
type NoArgs[T any, Args any, A Adapter[T]] struct{}

func (NoArgs[T, Args, A]) StoreTLBArgs(b *cell.Builder, v T, _ Args) error {
	var a A
	return a.StoreTLB(b, v)
}

func (NoArgs[T, Args, A]) ParseTLBArgs(p *cell.Parser, _ Args) (T, error) {
	var a A
	return a.ParseTLB(p)
}

// DefaultArgs lowers a with-args AdapterArgs[T, Args] into a plain
// Adapter[T] by supplying Args's zero value, matching spec §4.4's
// "Args::default()" behavior.
type DefaultArgs[T any, Args any, A AdapterArgs[T, Args]] struct{}

func (DefaultArgs[T, Args, A]) StoreTLB(b *cell.Builder, v T) error {
	var a A
	var args Args
	return a.StoreTLBArgs(b, v, args)
}

func (DefaultArgs[T, Args, A]) ParseTLB(p *cell.Parser) (T, error) {
	var a A
	var args Args
	return a.ParseTLBArgs(p, args)
}
