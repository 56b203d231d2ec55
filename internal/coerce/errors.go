package coerce

import (
	"errors"
	"fmt"

	"github.com/born-ml/born/tensor"
)

// ErrInvalid reports coercion of a zero (invalid) Value.
var ErrInvalid = errors.New("coerce: invalid value")

// UnsupportedTypeError reports a dynamic value that no Value representation
// can hold.
type UnsupportedTypeError struct {
	Value any
}

// Error implements the error interface.
func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("coerce: cannot coerce %T to a tensor value", e.Value)
}

// DeviceError reports a backend whose device does not match the required
// one.
type DeviceError struct {
	Want tensor.Device
	Got  tensor.Device
}

// Error implements the error interface.
func (e *DeviceError) Error() string {
	return fmt.Sprintf("coerce: backend device is %v, need %v", e.Got, e.Want)
}
