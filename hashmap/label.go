// Package hashmap implements the label-compressed binary trie codec used
// by TON's HashmapE/PfxHashmapE combinators (spec §4.5), layered on top of
// the generic adapter framework in the root tlb package.
package hashmap

import (
	"math/bits"

	"github.com/akostylev0/toner/cell"
)

// labelWidth returns k = ceil(log2(n+1)), the bit width needed to encode
// any label length in [0, n] (spec §4.5.1).
func labelWidth(n int) int {
	return bits.Len(uint(n))
}

// StoreHmLabel picks the cheapest of the three HmLabel encodings for
// label against a residual budget of n bits and writes it.
func StoreHmLabel(b *cell.Builder, label []bool, n int) error {
	l := len(label)
	if l > n {
		return cell.NewCustomError("hashmap: label longer than residual bit budget")
	}
	k := labelWidth(n)

	same, sameBit := constantRun(label)
	shortCost := 2*l + 2
	longCost := 2 + k + l
	sameCost := k + 3

	bestCost, enc := shortCost, 0
	if longCost < bestCost {
		bestCost, enc = longCost, 1
	}
	if same && sameCost < bestCost {
		enc = 2
	}

	switch enc {
	case 0:
		return storeHmLabelShort(b, label)
	case 1:
		return storeHmLabelLong(b, label, k)
	default:
		return storeHmLabelSame(b, sameBit, l, k)
	}
}

func storeHmLabelShort(b *cell.Builder, label []bool) error {
	if err := b.StoreBit(false); err != nil {
		return err
	}
	for range label {
		if err := b.StoreBit(true); err != nil {
			return err
		}
	}
	if err := b.StoreBit(false); err != nil {
		return err
	}
	for _, bit := range label {
		if err := b.StoreBit(bit); err != nil {
			return err
		}
	}
	return nil
}

func storeHmLabelLong(b *cell.Builder, label []bool, k int) error {
	if err := b.StoreBit(true); err != nil {
		return err
	}
	if err := b.StoreBit(false); err != nil {
		return err
	}
	if err := b.StoreUint(uint64(len(label)), k); err != nil {
		return err
	}
	for _, bit := range label {
		if err := b.StoreBit(bit); err != nil {
			return err
		}
	}
	return nil
}

func storeHmLabelSame(b *cell.Builder, v bool, l, k int) error {
	if err := b.StoreBit(true); err != nil {
		return err
	}
	if err := b.StoreBit(true); err != nil {
		return err
	}
	if err := b.StoreBit(v); err != nil {
		return err
	}
	return b.StoreUint(uint64(l), k)
}

// ParseHmLabel decodes whichever of the three encodings is present,
// accepting all of them interchangeably (spec §8: "label encodings are
// accepted interchangeably on decode").
func ParseHmLabel(p *cell.Parser, n int) ([]bool, error) {
	k := labelWidth(n)

	tag0, err := p.PopBit()
	if err != nil {
		return nil, err
	}
	if !tag0 {
		l := 0
		for {
			bit, err := p.PopBit()
			if err != nil {
				return nil, err
			}
			if !bit {
				break
			}
			l++
		}
		return readLabelBits(p, l)
	}

	tag1, err := p.PopBit()
	if err != nil {
		return nil, err
	}
	if !tag1 {
		lu, err := p.LoadUint(k)
		if err != nil {
			return nil, err
		}
		return readLabelBits(p, int(lu))
	}

	v, err := p.PopBit()
	if err != nil {
		return nil, err
	}
	lu, err := p.LoadUint(k)
	if err != nil {
		return nil, err
	}
	l := int(lu)
	out := make([]bool, l)
	for i := range out {
		out[i] = v
	}
	return out, nil
}

func readLabelBits(p *cell.Parser, l int) ([]bool, error) {
	out := make([]bool, l)
	for i := range out {
		bit, err := p.PopBit()
		if err != nil {
			return nil, err
		}
		out[i] = bit
	}
	return out, nil
}

// constantRun reports whether label is a run of a single repeated bit,
// returning that bit (arbitrarily false for the empty label).
func constantRun(label []bool) (ok bool, bit bool) {
	if len(label) == 0 {
		return true, false
	}
	first := label[0]
	for _, b := range label[1:] {
		if b != first {
			return false, false
		}
	}
	return true, first
}
