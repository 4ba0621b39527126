package group

import (
	"fmt"

	"github.com/go-errors/errors"
)

var (
	// ErrInvalidArgument is returned for nil, empty, out of range or otherwise
	// malformed input.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotMember is returned when a value is not an element of the subgroup of order q.
	ErrNotMember = errors.New("value is not a member of the group")

	// ErrGroupMismatch is returned when values of different groups, or
	// exponents of different orders, are combined in one operation.
	ErrGroupMismatch = errors.New("group mismatch")
)

// InvalidArgument wraps ErrInvalidArgument with a description of the offending input.
func InvalidArgument(format string, a ...interface{}) error {
	return errors.WrapPrefix(ErrInvalidArgument, fmt.Sprintf(format, a...), 1)
}

// Mismatch wraps ErrGroupMismatch with a description of the offending input.
func Mismatch(format string, a ...interface{}) error {
	return errors.WrapPrefix(ErrGroupMismatch, fmt.Sprintf(format, a...), 1)
}
