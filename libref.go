package tlb

import "github.com/akostylev0/toner/cell"

// LibRef is Either<Data([u8;32]), Ref<Cell>>: a library either referenced
// by its hash inline or carried as an actual child cell (spec §4.6,
// grounded on the library-reference encoding in original_source's
// tlb-ton library module).
type LibRef struct {
	IsRef bool
	Hash  [32]byte
	Cell  *cell.Cell
}

func LibRefByHash(hash [32]byte) LibRef { return LibRef{Hash: hash} }

func LibRefByCell(c *cell.Cell) LibRef { return LibRef{IsRef: true, Cell: c} }

func (v LibRef) MarshalTLB(b *cell.Builder) error {
	if err := b.StoreBit(v.IsRef); err != nil {
		return err
	}
	if v.IsRef {
		return b.StoreReference(v.Cell)
	}
	return b.StoreBytes(v.Hash[:])
}

func (v *LibRef) UnmarshalTLB(p *cell.Parser) error {
	isRef, err := p.PopBit()
	if err != nil {
		return err
	}
	v.IsRef = isRef
	if isRef {
		c, err := p.PopReference()
		if err != nil {
			return err
		}
		v.Cell = c
		return nil
	}
	bs, err := p.LoadBytes(32)
	if err != nil {
		return err
	}
	copy(v.Hash[:], bs)
	return nil
}
