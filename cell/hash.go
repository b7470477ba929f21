package cell

import (
	"crypto/sha256"
	"encoding/binary"

	"github.com/akostylev0/toner/cell/bitio"
)

// sha256Of hashes data followed by each of extras, mirroring the
// single-shot Sha256(data, extras...) helper pattern used alongside a
// SIMD merkle hasher for inputs that don't fit a fixed-pair shape.
func sha256Of(parts ...[]byte) [32]byte {
	h := sha256.New()
	for _, p := range parts {
		h.Write(p)
	}
	var out [32]byte
	h.Sum(out[:0])
	return out
}

func beUint16(v uint16) []byte {
	b := make([]byte, 2)
	binary.BigEndian.PutUint16(b, v)
	return b
}

// HigherHash implements spec §3.4's higher_hash(level) for any cell kind.
func (c *Cell) HigherHash(level int) [32]byte {
	switch c.kind {
	case LibraryReference:
		var out [32]byte
		copy(out[:], c.data[0:32])
		return out
	case PrunedBranch:
		return c.prunedBranchHigherHash(level)
	default: // Ordinary, MerkleProof, MerkleUpdate share the general algorithm
		return c.generalHigherHash(level)
	}
}

// Depth implements spec §3.4's depth(level) for any cell kind.
func (c *Cell) Depth(level int) uint16 {
	switch c.kind {
	case LibraryReference:
		return 0
	case PrunedBranch:
		return c.prunedBranchDepth(level)
	default:
		return c.generalDepth(level)
	}
}

// RepresentationHash is higher_hash(0), the cell's canonical identity.
func RepresentationHash(c *Cell) [32]byte {
	return c.HigherHash(0)
}

func (c *Cell) prunedBranchHigherHash(level int) [32]byte {
	mask := c.LevelMask()
	if mask.Contains(level) {
		var out [32]byte
		copy(out[:], c.data[1+32*level:1+32*(level+1)])
		return out
	}
	return sha256Of(
		[]byte{RefsDescriptor(0, true, mask), BitsDescriptor(c.bitLen, true), tagPrunedBranch},
		c.data,
	)
}

func (c *Cell) prunedBranchDepth(level int) uint16 {
	mask := c.LevelMask()
	if !mask.Contains(level) {
		return 0
	}
	l := mask.AsLevel()
	off := 1 + 32*l + 2*level
	return uint16(c.data[off])<<8 | uint16(c.data[off+1])
}

// levelNext implements the "level' = current_level (+1 for Merkle
// variants)" shift from spec §3.4.
func (c *Cell) levelNext(level int) int {
	if c.kind == MerkleProof || c.kind == MerkleUpdate {
		return level + 1
	}
	return level
}

func (c *Cell) merkleTag() byte {
	if c.kind == MerkleUpdate {
		return tagMerkleUpdate
	}
	return tagMerkleProof
}

func (c *Cell) generalHigherHash(level int) [32]byte {
	mask := c.LevelMask()
	maxLevel := mask.Apply(level).AsLevel()

	var prev [32]byte
	have := false
	for cur := 0; cur <= maxLevel; cur++ {
		appliedMask := mask.Apply(cur)
		refsDesc := RefsDescriptor(len(c.refs), c.Exotic(), appliedMask)
		bitsDesc := BitsDescriptor(c.bitLen, c.Exotic())

		h := sha256.New()
		h.Write([]byte{refsDesc, bitsDesc})
		if !have {
			if c.kind == MerkleProof || c.kind == MerkleUpdate {
				h.Write([]byte{c.merkleTag()})
			}
			h.Write(bitio.PadToBytes(c.data, c.bitLen))
		} else {
			h.Write(prev[:])
		}

		ln := c.levelNext(cur)
		for _, r := range c.refs {
			h.Write(beUint16(r.Depth(ln)))
		}
		for _, r := range c.refs {
			hh := r.HigherHash(ln)
			h.Write(hh[:])
		}

		h.Sum(prev[:0])
		have = true
	}
	return prev
}

func (c *Cell) generalDepth(level int) uint16 {
	if len(c.refs) == 0 {
		return 0
	}
	ln := c.levelNext(level)
	var maxd uint16
	for _, r := range c.refs {
		d := r.Depth(ln)
		if d > maxd {
			maxd = d
		}
	}
	return maxd + 1
}
