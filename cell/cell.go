// Package cell implements the TON TL-B cell data model: the five cell
// variants, their descriptors, and the canonical representation-hash
// algorithm (spec §3), plus the builder and parser that assemble and
// consume one cell's bits and references in order (spec §4.2-§4.3).
package cell

import "fmt"

// Kind is the closed set of cell variants (spec §3.1). Hashing dispatches
// on the exact tag, so this is a tagged sum, not an open interface.
type Kind uint8

const (
	Ordinary Kind = iota
	LibraryReference
	PrunedBranch
	MerkleProof
	MerkleUpdate
)

func (k Kind) String() string {
	switch k {
	case Ordinary:
		return "ordinary"
	case LibraryReference:
		return "library-reference"
	case PrunedBranch:
		return "pruned-branch"
	case MerkleProof:
		return "merkle-proof"
	case MerkleUpdate:
		return "merkle-update"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Exotic reports whether a kind is one of the four non-ordinary variants.
func (k Kind) Exotic() bool { return k != Ordinary }

// cell-type tag bytes used only inside hash framing (spec §3.4), never
// stored verbatim in a cell's own data.
const (
	tagPrunedBranch     byte = 1
	tagLibraryReference byte = 2
	tagMerkleProof      byte = 3
	tagMerkleUpdate     byte = 4
)

// MaxBitLen and MaxRefs are the hard capacity limits of every cell
// (spec §3.1 invariant 1).
const (
	MaxBitLen = 1023
	MaxRefs   = 4
)

// Cell is an immutable node of the cell DAG. Cells are constructed via a
// Builder and never mutated afterward (spec §3.1 invariant 2); sharing is
// by the *Cell pointer, which is safe because a frozen cell never
// changes.
type Cell struct {
	kind   Kind
	data   []byte // packed MSB-first payload bytes, len = ceil(bitLen/8)
	bitLen int
	refs   []*Cell
}

// newRaw is the single internal constructor; all typed constructors below
// funnel through it after validating their own invariants.
func newRaw(kind Kind, data []byte, bitLen int, refs []*Cell) (*Cell, error) {
	if bitLen > MaxBitLen {
		return nil, NewCellBitLenError(bitLen)
	}
	if len(refs) > MaxRefs {
		return nil, NewTooManyReferencesError()
	}
	buf := make([]byte, len(data))
	copy(buf, data)
	rs := make([]*Cell, len(refs))
	copy(rs, refs)
	return &Cell{kind: kind, data: buf, bitLen: bitLen, refs: rs}, nil
}

// NewOrdinary constructs an ordinary cell from up to 1023 bits of payload
// and up to 4 child cells.
func NewOrdinary(data []byte, bitLen int, refs []*Cell) (*Cell, error) {
	return newRaw(Ordinary, data, bitLen, refs)
}

// NewLibraryReference constructs a library-reference cell: a fixed
// 256-bit payload that is itself the referenced library cell's hash
// (spec §3.1, §3.4; the "+8" in the "8+256-bit payload" wording of the
// spec is the synthetic exotic-cell tag accounted for in the descriptor
// bytes, not a literal stored byte — see DESIGN.md).
func NewLibraryReference(hash [32]byte) (*Cell, error) {
	return newRaw(LibraryReference, hash[:], 256, nil)
}

// NewPrunedBranch constructs a pruned-branch cell from a level mask and
// one (hash, depth) pair per set level, contiguous from level 0.
func NewPrunedBranch(mask LevelMask, hashes [][32]byte, depths []uint16) (*Cell, error) {
	l := mask.AsLevel()
	if l < 1 || l > 3 {
		return nil, NewCustomError("pruned branch level mask must have 1..=3 bits set")
	}
	if len(hashes) != l || len(depths) != l {
		return nil, NewCustomError("pruned branch needs exactly popcount(mask) hash/depth pairs")
	}
	data := make([]byte, 1+32*l+2*l)
	data[0] = byte(mask)
	for i, h := range hashes {
		copy(data[1+32*i:1+32*(i+1)], h[:])
	}
	depthOff := 1 + 32*l
	for i, d := range depths {
		data[depthOff+2*i] = byte(d >> 8)
		data[depthOff+2*i+1] = byte(d)
	}
	return newRaw(PrunedBranch, data, len(data)*8, nil)
}

// NewMerkleProof constructs a Merkle-proof cell wrapping one ordinary
// child, whose level-0 hash and depth are embedded in the payload.
func NewMerkleProof(childHash [32]byte, childDepth uint16, child *Cell) (*Cell, error) {
	data := make([]byte, 34)
	copy(data[0:32], childHash[:])
	data[32] = byte(childDepth >> 8)
	data[33] = byte(childDepth)
	return newRaw(MerkleProof, data, len(data)*8, []*Cell{child})
}

// NewMerkleUpdate constructs a Merkle-update cell wrapping two children
// (before/after), whose level-0 hashes and depths are embedded in the
// payload.
func NewMerkleUpdate(hashBefore, hashAfter [32]byte, depthBefore, depthAfter uint16, before, after *Cell) (*Cell, error) {
	data := make([]byte, 68)
	copy(data[0:32], hashBefore[:])
	copy(data[32:64], hashAfter[:])
	data[64] = byte(depthBefore >> 8)
	data[65] = byte(depthBefore)
	data[66] = byte(depthAfter >> 8)
	data[67] = byte(depthAfter)
	return newRaw(MerkleUpdate, data, len(data)*8, []*Cell{before, after})
}

// Kind returns the cell's variant tag.
func (c *Cell) Kind() Kind { return c.kind }

// Exotic reports whether the cell is a non-ordinary variant.
func (c *Cell) Exotic() bool { return c.kind.Exotic() }

// BitLen returns the number of payload bits.
func (c *Cell) BitLen() int { return c.bitLen }

// Data returns the raw packed payload bytes (read-only: callers must not
// mutate the returned slice).
func (c *Cell) Data() []byte { return c.data }

// RefsCount returns the number of child references.
func (c *Cell) RefsCount() int { return len(c.refs) }

// Refs returns the child references in order (read-only).
func (c *Cell) Refs() []*Cell { return c.refs }

// Ref returns the i-th child reference.
func (c *Cell) Ref(i int) *Cell { return c.refs[i] }

// LevelMask computes the cell's level mask per spec §3.1 invariant 4.
func (c *Cell) LevelMask() LevelMask {
	switch c.kind {
	case PrunedBranch:
		return LevelMask(c.data[0])
	case LibraryReference:
		return 0
	case MerkleProof, MerkleUpdate:
		var m LevelMask
		for _, r := range c.refs {
			m = m.Or(r.LevelMask())
		}
		return m.Shift()
	default: // Ordinary
		var m LevelMask
		for _, r := range c.refs {
			m = m.Or(r.LevelMask())
		}
		return m
	}
}

// RefsDescriptor implements spec §3.3's refs_descriptor for the given
// applied mask.
func RefsDescriptor(refsCount int, exotic bool, mask LevelMask) byte {
	d := byte(refsCount)
	if exotic {
		d |= 8
	}
	d |= byte(mask) << 5
	return d
}

// BitsDescriptor implements spec §3.3's bits_descriptor, where b already
// includes the synthetic +8 bits for exotic cells.
func BitsDescriptor(bitLen int, exotic bool) byte {
	b := bitLen
	if exotic {
		b += 8
	}
	return byte(b/8) + byte((b+7)/8)
}

// Equal reports structural equality per spec §3.1 invariant 3: equal
// kind, equal payload bytes/length, and recursively equal references.
func (c *Cell) Equal(other *Cell) bool {
	if c == other {
		return true
	}
	if c == nil || other == nil {
		return false
	}
	if c.kind != other.kind || c.bitLen != other.bitLen || len(c.refs) != len(other.refs) {
		return false
	}
	nb := (c.bitLen + 7) / 8
	for i := 0; i < nb; i++ {
		if c.data[i] != other.data[i] {
			return false
		}
	}
	for i := range c.refs {
		if !c.refs[i].Equal(other.refs[i]) {
			return false
		}
	}
	return true
}
