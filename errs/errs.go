// Package errs defines the error kinds shared by the container packages.
//
// Every container operation that can fail returns an error wrapping one of
// the sentinel values below, so callers can classify failures with errors.Is
// regardless of which container produced them. These are programmer-error
// classes, not transient conditions: a rejected operation leaves the
// container unchanged and there is nothing to retry.
package errs

import "github.com/pkg/errors"

var (
	// ErrInvalidArgument reports a construction argument outside its valid
	// range, such as a negative element count.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrOutOfRange reports an index outside the interval [-n, n) for a
	// container of n elements.
	ErrOutOfRange = errors.New("index out of range")

	// ErrEmptyContainer reports a removal from a container with no elements.
	ErrEmptyContainer = errors.New("container is empty")

	// ErrDereference reports an attempt to read the value at a sentinel
	// (past-the-end) iterator position.
	ErrDereference = errors.New("dereference of sentinel iterator")

	// ErrInvalidIterator reports an iterator that does not designate an
	// element, passed to an operation that requires one.
	ErrInvalidIterator = errors.New("invalid iterator")
)
