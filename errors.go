package tlb

import "fmt"

// ConversionFailedError is returned by TryFromInto/TryFromIntoRef when a
// decoded wire value cannot be converted into its user-facing type (spec
// §7 kind "ConversionFailed").
type ConversionFailedError struct {
	Reason string
}

func NewConversionFailedError(reason string) *ConversionFailedError {
	return &ConversionFailedError{Reason: reason}
}

func (e *ConversionFailedError) Error() string {
	return fmt.Sprintf("conversion failed: %s", e.Reason)
}

