package shamir

import (
	"fmt"
	"math/big"

	"github.com/pkg/errors"
)

// Sentinel errors. The typed errors below match these with errors.Is, and
// carry the details of the failure for errors.As.
var (
	ErrMalformedShare       = errors.New("malformed share")
	ErrInsufficientPoints   = errors.New("insufficient points")
	ErrDuplicateXCoordinate = errors.New("duplicate x coordinate")
	ErrInconsistentShares   = errors.New("inconsistent shares")
	ErrInvalidThreshold     = errors.New("invalid threshold")
	ErrCaseProcessingFailed = errors.New("case processing failed")
)

// maxQuotedValue bounds how much of a share value is echoed in an error.
const maxQuotedValue = 40

// MalformedShareError is returned when a share value cannot be decoded in its
// declared base, or when the share itself is ill-formed.
type MalformedShareError struct {
	Base   int
	Value  string
	Reason string
}

// Error implements the error interface.
func (e *MalformedShareError) Error() string {
	value := e.Value
	if len(value) > maxQuotedValue {
		value = value[:maxQuotedValue] + "..."
	}
	return fmt.Sprintf("%v: value %q in base %v: %v", ErrMalformedShare, value, e.Base, e.Reason)
}

// Is reports whether the target is ErrMalformedShare.
func (e *MalformedShareError) Is(target error) bool {
	return target == ErrMalformedShare
}

// InsufficientPointsError is returned when fewer points than the threshold
// are available.
type InsufficientPointsError struct {
	Required, Actual int
}

// Error implements the error interface.
func (e *InsufficientPointsError) Error() string {
	return fmt.Sprintf("%v: need %v points but got %v", ErrInsufficientPoints, e.Required, e.Actual)
}

// Is reports whether the target is ErrInsufficientPoints.
func (e *InsufficientPointsError) Is(target error) bool {
	return target == ErrInsufficientPoints
}

// DuplicateXCoordinateError is returned when two of the points selected for
// reconstruction have the same x coordinate. First and Second are the
// positions of the offending points in the selection.
type DuplicateXCoordinateError struct {
	X             *big.Int
	First, Second int
}

// Error implements the error interface.
func (e *DuplicateXCoordinateError) Error() string {
	return fmt.Sprintf("%v: x = %v at positions %v and %v", ErrDuplicateXCoordinate, e.X, e.First, e.Second)
}

// Is reports whether the target is ErrDuplicateXCoordinate.
func (e *DuplicateXCoordinateError) Is(target error) bool {
	return target == ErrDuplicateXCoordinate
}

// InconsistentSharesError is returned by a consistency checked reconstruction
// when a point does not lie on the polynomial interpolated from the selected
// points.
type InconsistentSharesError struct {
	X *big.Int
}

// Error implements the error interface.
func (e *InconsistentSharesError) Error() string {
	return fmt.Sprintf("%v: point at x = %v is not on the interpolated polynomial", ErrInconsistentShares, e.X)
}

// Is reports whether the target is ErrInconsistentShares.
func (e *InconsistentSharesError) Is(target error) bool {
	return target == ErrInconsistentShares
}

// CaseError wraps a failure to process a case together with the identifier of
// that case.
type CaseError struct {
	Case string
	Err  error
}

// Error implements the error interface.
func (e *CaseError) Error() string {
	return fmt.Sprintf("processing case %q: %v", e.Case, e.Err)
}

// Unwrap returns the underlying cause.
func (e *CaseError) Unwrap() error {
	return e.Err
}

// Cause implements the causer interface of github.com/pkg/errors.
func (e *CaseError) Cause() error {
	return e.Err
}

// Is reports whether the target is ErrCaseProcessingFailed.
func (e *CaseError) Is(target error) bool {
	return target == ErrCaseProcessingFailed
}
