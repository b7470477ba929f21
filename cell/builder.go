package cell

import "github.com/akostylev0/toner/cell/bitio"

// Builder incrementally assembles one cell's bits and references
// (spec §4.2). It is single-writer: Open -> (Store*|StoreReference*)* ->
// Frozen via IntoCell (spec §4.7). Using a Builder after it has been
// frozen is a programming error and panics.
type Builder struct {
	kind   Kind
	w      *bitio.Writer
	refs   []*Cell
	frozen bool
}

// NewBuilder returns a fresh ordinary-cell builder (spec §6).
func NewBuilder() *Builder {
	return NewBuilderKind(Ordinary)
}

// NewBuilderKind returns a fresh builder configured to freeze into the
// given cell variant.
func NewBuilderKind(k Kind) *Builder {
	return &Builder{kind: k, w: bitio.NewWriter(MaxBitLen)}
}

func (b *Builder) checkOpen() {
	if b.frozen {
		panic("cell: builder used after IntoCell")
	}
}

// RemainingBits reports the builder's free bit capacity.
func (b *Builder) RemainingBits() int { return b.w.BitsLeft() }

// BitsLen reports how many bits have been written so far.
func (b *Builder) BitsLen() int { return b.w.Len() }

// RefsCount reports how many references have been pushed so far.
func (b *Builder) RefsCount() int { return len(b.refs) }

// Kind returns the variant this builder will freeze into.
func (b *Builder) Kind() Kind { return b.kind }

func (b *Builder) StoreBit(v bool) error {
	b.checkOpen()
	return b.w.WriteBit(v)
}

func (b *Builder) StoreBitsRepeat(v bool, n int) error {
	b.checkOpen()
	return b.w.WriteBitsRepeat(v, n)
}

func (b *Builder) StoreBitSlice(bs []byte, n int) error {
	b.checkOpen()
	return b.w.WriteBitSlice(bs, n)
}

func (b *Builder) StoreBytes(bs []byte) error {
	b.checkOpen()
	return b.w.WriteBytes(bs)
}

func (b *Builder) StoreUint(v uint64, width int) error {
	b.checkOpen()
	return b.w.WriteUint(v, width)
}

func (b *Builder) StoreInt(v int64, width int) error {
	b.checkOpen()
	return b.w.WriteInt(v, width)
}

func (b *Builder) StoreBigUint(limbs [4]uint64, width int) error {
	b.checkOpen()
	return b.w.WriteBigUint(limbs, width)
}

// StoreReference pushes an already-frozen child cell, failing with
// TooManyReferencesError past the 4-reference limit.
func (b *Builder) StoreReference(c *Cell) error {
	b.checkOpen()
	if len(b.refs) >= MaxRefs {
		return NewTooManyReferencesError()
	}
	b.refs = append(b.refs, c)
	return nil
}

// IntoCell freezes the accumulated bits and references into an immutable
// cell of the builder's configured variant.
func (b *Builder) IntoCell() (*Cell, error) {
	b.frozen = true
	return newRaw(b.kind, b.w.Bytes(), b.w.Len(), b.refs)
}
