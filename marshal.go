// Package tlb implements the generic codec traits and adapters that sit
// above the cell data model (spec §4.4): the no-args and with-args
// Marshaler/Unmarshaler trait pairs, the closed set of composable
// adapters, and the TL-B primitives built on top of them (Either, Maybe,
// LibRef; HashmapE/PfxHashmapE live in the sibling hashmap package).
package tlb

import "github.com/akostylev0/toner/cell"

// Marshaler is implemented by values that know how to store themselves
// into a cell builder without any runtime arguments.
type Marshaler interface {
	MarshalTLB(b *cell.Builder) error
}

// Unmarshaler is implemented by values that know how to load themselves
// from a cell parser without any runtime arguments.
type Unmarshaler interface {
	UnmarshalTLB(p *cell.Parser) error
}

// MarshalerArgs is the with-args counterpart of Marshaler: Args carries a
// schema-level decision (e.g. a hashmap key width) that the value alone
// cannot know (spec §4.4, §9 "Arguments").
type MarshalerArgs[Args any] interface {
	MarshalTLBArgs(b *cell.Builder, args Args) error
}

// UnmarshalerArgs is the with-args counterpart of Unmarshaler.
type UnmarshalerArgs[Args any] interface {
	UnmarshalTLBArgs(p *cell.Parser, args Args) error
}

// Store delegates to v's own no-args codec (spec §4.2 "store(value)").
func Store[T Marshaler](b *cell.Builder, v T) error {
	return v.MarshalTLB(b)
}

// StoreWith delegates to v's own with-args codec (spec §4.2
// "store_with(value, args)").
func StoreWith[T MarshalerArgs[Args], Args any](b *cell.Builder, v T, args Args) error {
	return v.MarshalTLBArgs(b, args)
}

// Parse decodes a T using its own no-args codec (spec §4.3 "parse<T>()").
// PT is the pointer-receiver type parameter pattern: *T must implement
// Unmarshaler so Parse can construct a zero T and fill it in place.
func Parse[T any, PT interface {
	*T
	Unmarshaler
}](p *cell.Parser) (T, error) {
	var v T
	if err := PT(&v).UnmarshalTLB(p); err != nil {
		return v, err
	}
	return v, nil
}

// ParseWith is the with-args counterpart of Parse.
func ParseWith[T any, Args any, PT interface {
	*T
	UnmarshalerArgs[Args]
}](p *cell.Parser, args Args) (T, error) {
	var v T
	if err := PT(&v).UnmarshalTLBArgs(p, args); err != nil {
		return v, err
	}
	return v, nil
}

// StoreMany stores each value in order, prefixing any error with its
// 0-based index per spec §4.2 "store_many*".
func StoreMany[T Marshaler](b *cell.Builder, vs []T) error {
	for i, v := range vs {
		if err := Store(b, v); err != nil {
			return cell.WithIndex(i, err)
		}
	}
	return nil
}

// ParseMany decodes exactly n values in order, prefixing any error with
// its 0-based index.
func ParseMany[T any, PT interface {
	*T
	Unmarshaler
}](p *cell.Parser, n int) ([]T, error) {
	out := make([]T, 0, n)
	for i := 0; i < n; i++ {
		v, err := Parse[T, PT](p)
		if err != nil {
			return nil, cell.WithIndex(i, err)
		}
		out = append(out, v)
	}
	return out, nil
}

// ParseFullyCell combines parser()->Parse[T]->EnsureEmpty (spec §6
// "parse_fully").
func ParseFullyCell[T any, PT interface {
	*T
	Unmarshaler
}](c *cell.Cell) (T, error) {
	p := cell.NewParser(c)
	v, err := Parse[T, PT](p)
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

// ParseFullyCellWith combines parser()->ParseWith[T]->EnsureEmpty (spec
// §6 "parse_fully_with").
func ParseFullyCellWith[T any, Args any, PT interface {
	*T
	UnmarshalerArgs[Args]
}](c *cell.Cell, args Args) (T, error) {
	p := cell.NewParser(c)
	v, err := ParseWith[T, Args, PT](p, args)
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
