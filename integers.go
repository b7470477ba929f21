package tlb

import (
	"github.com/akostylev0/toner/cell"
	"github.com/holiman/uint256"
)

// UintN is an unsigned integer of a runtime-chosen bit width in [0,64].
// Width is carried as a value, not a type parameter: Go has no const
// generics, and spec §9's "phantom type parameter" guidance for schema
// widths is implemented here as an ordinary struct field instead.
type UintN struct {
	Width int
	Value uint64
}

func (v UintN) MarshalTLB(b *cell.Builder) error { return b.StoreUint(v.Value, v.Width) }

func (v *UintN) UnmarshalTLB(p *cell.Parser) error {
	x, err := p.LoadUint(v.Width)
	if err != nil {
		return err
	}
	v.Value = x
	return nil
}

// IntN is a signed integer of a runtime-chosen bit width in [1,64].
type IntN struct {
	Width int
	Value int64
}

func (v IntN) MarshalTLB(b *cell.Builder) error { return b.StoreInt(v.Value, v.Width) }

func (v *IntN) UnmarshalTLB(p *cell.Parser) error {
	x, err := p.LoadInt(v.Width)
	if err != nil {
		return err
	}
	v.Value = x
	return nil
}

// Uint256 is a fixed 256-bit unsigned integer, the width TON uses for bare
// hashes and public keys carried as numbers rather than byte arrays.
type Uint256 struct {
	Value *uint256.Int
}

func NewUint256(v *uint256.Int) Uint256 { return Uint256{Value: v} }

func (v Uint256) MarshalTLB(b *cell.Builder) error {
	val := v.Value
	if val == nil {
		val = new(uint256.Int)
	}
	limbs := val.Bytes32()
	return b.StoreBigUint(bytes32ToLimbs(limbs), 256)
}

func (v *Uint256) UnmarshalTLB(p *cell.Parser) error {
	limbs, err := p.LoadBigUint(256)
	if err != nil {
		return err
	}
	arr := limbsToBytes32(limbs)
	v.Value = uint256.NewInt(0)
	v.Value.SetBytes32(arr[:])
	return nil
}

// Int257 is TON's 257-bit signed integer (spec §9's widest schema width:
// the extra bit covers the sign), used for balances, workchain-qualified
// addresses, and signed VarInteger payloads. It is represented here as
// sign-magnitude over a 256-bit uint256.Int plus an explicit sign bit,
// rather than true two's complement, since no corpus dependency supplies
// wide two's complement arithmetic; see DESIGN.md.
type Int257 struct {
	Negative bool
	Abs      *uint256.Int
}

func (v Int257) MarshalTLB(b *cell.Builder) error {
	if err := b.StoreBit(v.Negative); err != nil {
		return err
	}
	abs := v.Abs
	if abs == nil {
		abs = new(uint256.Int)
	}
	limbs := abs.Bytes32()
	return b.StoreBigUint(bytes32ToLimbs(limbs), 256)
}

func (v *Int257) UnmarshalTLB(p *cell.Parser) error {
	neg, err := p.PopBit()
	if err != nil {
		return err
	}
	limbs, err := p.LoadBigUint(256)
	if err != nil {
		return err
	}
	arr := limbsToBytes32(limbs)
	v.Negative = neg
	v.Abs = uint256.NewInt(0)
	v.Abs.SetBytes32(arr[:])
	return nil
}

func bytes32ToLimbs(b [32]byte) [4]uint64 {
	var limbs [4]uint64
	for i := 0; i < 4; i++ {
		var v uint64
		for j := 0; j < 8; j++ {
			v = v<<8 | uint64(b[i*8+j])
		}
		limbs[3-i] = v
	}
	return limbs
}

func limbsToBytes32(limbs [4]uint64) [32]byte {
	var out [32]byte
	for i := 0; i < 4; i++ {
		v := limbs[3-i]
		for j := 0; j < 8; j++ {
			out[i*8+j] = byte(v >> uint(56-8*j))
		}
	}
	return out
}
