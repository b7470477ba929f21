package tlb

import "github.com/akostylev0/toner/cell"

// DefaultOnNone parses a Maybe<T>-shaped tag bit but substitutes T's zero
// value when absent instead of surfacing an explicit optional, for fields
// whose absence is conventionally "default" rather than "unknown" (spec
// §4.4). On store, it always marks the value present: a caller that wants
// to store absence should use Maybe directly instead.
type DefaultOnNone[T Marshaler, PT interface {
	*T
	Unmarshaler
}] struct{}

func (DefaultOnNone[T, PT]) StoreTLB(b *cell.Builder, v T) error {
	if err := b.StoreBit(true); err != nil {
		return err
	}
	return v.MarshalTLB(b)
}

func (DefaultOnNone[T, PT]) ParseTLB(p *cell.Parser) (T, error) {
	var zero T
	has, err := p.PopBit()
	if err != nil {
		return zero, err
	}
	if !has {
		return zero, nil
	}
	return Same[T, PT]{}.ParseTLB(p)
}
