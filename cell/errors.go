package cell

import "fmt"

// CellBitLenError is returned when a cell's payload would exceed the
// 1023-bit limit.
type CellBitLenError struct {
	BitLen int
}

func NewCellBitLenError(bitLen int) *CellBitLenError { return &CellBitLenError{BitLen: bitLen} }

func (e *CellBitLenError) Error() string {
	return fmt.Sprintf("cell bit length %d exceeds the 1023-bit limit", e.BitLen)
}

// CustomError carries any schema-specific constraint violation (spec §7
// kind 7, e.g. "key too long", "invalid label encoding").
type CustomError struct {
	Msg string
}

func NewCustomError(msg string) *CustomError { return &CustomError{Msg: msg} }

func (e *CustomError) Error() string { return e.Msg }

// TooManyReferencesError is returned when a builder already holds 4
// references and another push is attempted.
type TooManyReferencesError struct{}

func NewTooManyReferencesError() *TooManyReferencesError { return &TooManyReferencesError{} }

func (e *TooManyReferencesError) Error() string { return "too many references: a cell holds at most 4" }

// WrongCellTypeError is returned by a downcast that asked for an
// incompatible cell variant.
type WrongCellTypeError struct {
	Want Kind
	Got  Kind
}

func NewWrongCellTypeError(want, got Kind) *WrongCellTypeError {
	return &WrongCellTypeError{Want: want, Got: got}
}

func (e *WrongCellTypeError) Error() string {
	return fmt.Sprintf("wrong cell type: want %s, got %s", e.Want, e.Got)
}

// MoreDataLeftError is returned by EnsureEmpty when a parser is not
// exhausted after a top-level parse.
type MoreDataLeftError struct {
	BitsLeft int
	RefsLeft int
}

func NewMoreDataLeftError(bitsLeft, refsLeft int) *MoreDataLeftError {
	return &MoreDataLeftError{BitsLeft: bitsLeft, RefsLeft: refsLeft}
}

func (e *MoreDataLeftError) Error() string {
	return fmt.Sprintf("more data left: %d bits and %d references unread", e.BitsLeft, e.RefsLeft)
}

// PathError wraps an underlying codec error with the contextual path
// described in spec §7: ".field", "[index]", and "^" (reference hop)
// segments appended as the error propagates up through Store/Parse calls.
type PathError struct {
	Path string
	Err  error
}

func NewPathError(path string, err error) *PathError {
	return &PathError{Path: path, Err: err}
}

func (e *PathError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Err)
}

func (e *PathError) Unwrap() error { return e.Err }

// WithField prefixes err's path with ".field", creating a PathError if
// err is not already one, or extending the existing path otherwise.
func WithField(field string, err error) error {
	return prepend("."+field, err)
}

// WithIndex prefixes err's path with "[index]".
func WithIndex(index int, err error) error {
	return prepend(fmt.Sprintf("[%d]", index), err)
}

// WithRefHop prefixes err's path with "^", denoting a reference traversal.
func WithRefHop(err error) error {
	return prepend("^", err)
}

func prepend(seg string, err error) error {
	if err == nil {
		return nil
	}
	var pe *PathError
	if ok := asPathError(err, &pe); ok {
		pe.Path = seg + pe.Path
		return pe
	}
	return &PathError{Path: seg, Err: err}
}

func asPathError(err error, target **PathError) bool {
	pe, ok := err.(*PathError)
	if !ok {
		return false
	}
	*target = pe
	return true
}
