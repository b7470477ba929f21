package tlb

import "github.com/akostylev0/toner/cell"

// Uint8, Uint16, Uint32, and Uint64 are the conventional fixed widths
// TON schemas reach for most often; UintN/IntN cover every other runtime
// width. Each is its own Go type so it can stand in directly for the PT
// type parameter in Same[T, PT] without a configured adapter instance.
type (
	Uint8  uint8
	Uint16 uint16
	Uint32 uint32
	Uint64 uint64

	Int8  int8
	Int16 int16
	Int32 int32
	Int64 int64
)

func (v Uint8) MarshalTLB(b *cell.Builder) error  { return b.StoreUint(uint64(v), 8) }
func (v Uint16) MarshalTLB(b *cell.Builder) error { return b.StoreUint(uint64(v), 16) }
func (v Uint32) MarshalTLB(b *cell.Builder) error { return b.StoreUint(uint64(v), 32) }
func (v Uint64) MarshalTLB(b *cell.Builder) error { return b.StoreUint(uint64(v), 64) }

func (v Int8) MarshalTLB(b *cell.Builder) error  { return b.StoreInt(int64(v), 8) }
func (v Int16) MarshalTLB(b *cell.Builder) error { return b.StoreInt(int64(v), 16) }
func (v Int32) MarshalTLB(b *cell.Builder) error { return b.StoreInt(int64(v), 32) }
func (v Int64) MarshalTLB(b *cell.Builder) error { return b.StoreInt(int64(v), 64) }

func (v *Uint8) UnmarshalTLB(p *cell.Parser) error {
	x, err := p.LoadUint(8)
	*v = Uint8(x)
	return err
}

func (v *Uint16) UnmarshalTLB(p *cell.Parser) error {
	x, err := p.LoadUint(16)
	*v = Uint16(x)
	return err
}

func (v *Uint32) UnmarshalTLB(p *cell.Parser) error {
	x, err := p.LoadUint(32)
	*v = Uint32(x)
	return err
}

func (v *Uint64) UnmarshalTLB(p *cell.Parser) error {
	x, err := p.LoadUint(64)
	*v = Uint64(x)
	return err
}

func (v *Int8) UnmarshalTLB(p *cell.Parser) error {
	x, err := p.LoadInt(8)
	*v = Int8(x)
	return err
}

func (v *Int16) UnmarshalTLB(p *cell.Parser) error {
	x, err := p.LoadInt(16)
	*v = Int16(x)
	return err
}

func (v *Int32) UnmarshalTLB(p *cell.Parser) error {
	x, err := p.LoadInt(32)
	*v = Int32(x)
	return err
}

func (v *Int64) UnmarshalTLB(p *cell.Parser) error {
	x, err := p.LoadInt(64)
	*v = Int64(x)
	return err
}
