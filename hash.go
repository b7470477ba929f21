package tlb

import "github.com/akostylev0/toner/cell"

// Hash builds a fresh ordinary cell from v and returns its representation
// hash: "give me the canonical hash of this value" without making the
// caller thread a Builder by hand.
func Hash[T Marshaler](v T) ([32]byte, error) {
	b := cell.NewBuilder()
	if err := v.MarshalTLB(b); err != nil {
		return [32]byte{}, err
	}
	c, err := b.IntoCell()
	if err != nil {
		return [32]byte{}, err
	}
	return cell.RepresentationHash(c), nil
}
