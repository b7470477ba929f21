package tlb

import "github.com/akostylev0/toner/cell"

// Bytes32 stores a fixed 32-byte blob as 256 raw bits with no framing,
// the "Data" adapter of spec §4.4 specialized to the one fixed width the
// schemas in this package actually need (cell hashes, public keys). Go's
// lack of const generics rules out a general Data[N]; see DESIGN.md.
type Bytes32 [32]byte

func (v Bytes32) MarshalTLB(b *cell.Builder) error { return b.StoreBytes(v[:]) }

func (v *Bytes32) UnmarshalTLB(p *cell.Parser) error {
	bs, err := p.LoadBytes(32)
	if err != nil {
		return err
	}
	copy(v[:], bs)
	return nil
}
