package banditpam

import (
	"errors"
	"fmt"

	"github.com/banditpam/banditpam/loss"
)

// Sentinel errors a caller can test against with errors.Is. Every
// configuration error (algorithm, loss, shape) this package returns wraps
// exactly one of these; I/O errors from opening the log path or exporting
// a snapshot wrap only the underlying error.
var (
	ErrInvalidAlgorithm = errors.New("banditpam: invalid algorithm")
	ErrInvalidLoss      = errors.New("banditpam: invalid loss")
	ErrInvalidShape     = errors.New("banditpam: invalid shape")
)

// InvalidAlgorithmError names the unrecognized algorithm that was
// requested.
type InvalidAlgorithmError struct {
	Name string
}

func (e *InvalidAlgorithmError) Error() string {
	return fmt.Sprintf("banditpam: invalid algorithm %q (want \"BanditPAM\" or \"naive\")", e.Name)
}

func (e *InvalidAlgorithmError) Unwrap() error { return ErrInvalidAlgorithm }

// InvalidLossError names the unrecognized loss that was requested.
type InvalidLossError struct {
	Name string
}

func (e *InvalidLossError) Error() string {
	return fmt.Sprintf("banditpam: invalid loss %q", e.Name)
}

func (e *InvalidLossError) Unwrap() error { return ErrInvalidLoss }

// InvalidShapeError names the dataset/configuration mismatch that was
// rejected (zero columns, k > n, k < 1, ...).
type InvalidShapeError struct {
	Reason string
}

func (e *InvalidShapeError) Error() string {
	return fmt.Sprintf("banditpam: invalid shape: %s", e.Reason)
}

func (e *InvalidShapeError) Unwrap() error { return ErrInvalidShape }

// translateError normalizes an internal package's error into one of this
// package's typed errors, so callers never need to know that an unknown
// loss name originates from the loss package rather than from banditpam
// itself.
func translateError(err error) error {
	var unknown *loss.ErrUnknownLoss
	if errors.As(err, &unknown) {
		return &InvalidLossError{Name: unknown.Name}
	}
	return err
}
