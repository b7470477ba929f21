package cell

import "github.com/akostylev0/toner/cell/bitio"

// NoMoreReferencesError is returned when a reference is popped past the
// end of a cell's reference list.
type NoMoreReferencesError struct{}

func NewNoMoreReferencesError() *NoMoreReferencesError { return &NoMoreReferencesError{} }

func (e *NoMoreReferencesError) Error() string { return "unexpected end: no references left" }

// Parser exposes a cell's bit view and reference list as linear cursors
// (spec §4.3). It never mutates the cell itself, only its own cursor
// positions. Fresh -> (consume*)* -> Exhausted?, EnsureEmpty only
// succeeds once Exhausted (spec §4.7).
type Parser struct {
	r      *bitio.Reader
	cell   *Cell
	refPos int
}

// NewParser returns a fresh parser over c's bits and references.
func NewParser(c *Cell) *Parser {
	return &Parser{r: bitio.NewReader(c.Data(), c.BitLen()), cell: c}
}

// BitsLeft reports the number of unread bits.
func (p *Parser) BitsLeft() int { return p.r.BitsLeft() }

// RefsLeft reports the number of unconsumed references.
func (p *Parser) RefsLeft() int { return len(p.cell.refs) - p.refPos }

func (p *Parser) PeekBit() (bool, error) { return p.r.PeekBit() }
func (p *Parser) PopBit() (bool, error)  { return p.r.PopBit() }
func (p *Parser) Skip(n int) error       { return p.r.Skip(n) }

func (p *Parser) LoadBitSlice(n int) ([]byte, error) { return p.r.ReadBitSlice(n) }
func (p *Parser) LoadBytes(n int) ([]byte, error)    { return p.r.ReadBytes(n) }
func (p *Parser) LoadUint(width int) (uint64, error) { return p.r.ReadUint(width) }
func (p *Parser) LoadInt(width int) (int64, error)   { return p.r.ReadInt(width) }
func (p *Parser) LoadBigUint(width int) ([4]uint64, error) {
	return p.r.ReadBigUint(width)
}

// PopReference consumes and returns the next child reference.
func (p *Parser) PopReference() (*Cell, error) {
	if p.refPos >= len(p.cell.refs) {
		return nil, NewNoMoreReferencesError()
	}
	c := p.cell.refs[p.refPos]
	p.refPos++
	return c, nil
}

// EnsureEmpty fails with MoreDataLeftError unless both the bit cursor and
// the reference cursor are exhausted.
func (p *Parser) EnsureEmpty() error {
	if p.BitsLeft() != 0 || p.RefsLeft() != 0 {
		return NewMoreDataLeftError(p.BitsLeft(), p.RefsLeft())
	}
	return nil
}
