package frame

import "fmt"

// ConversionError means a payload source could not be turned into a
// byte sequence, or a frame does not fit a target representation.
type ConversionError struct {
	Value  any
	Reason string
}

func (e *ConversionError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("cannot convert %v (%T) : %v", e.Value, e.Value, e.Reason)
	}
	return fmt.Sprintf("cannot convert %v (%T) to a frame payload", e.Value, e.Value)
}

// ValidationError reports which frame invariant was violated.
// Returned only when validation is requested, via NewChecked or
// Validate.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "invalid frame : " + e.Reason
}
