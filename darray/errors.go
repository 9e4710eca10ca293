package darray

import "github.com/webbmaffian/go-adt/alloc"

type darrayError string

var _ error = darrayError("")

func (err darrayError) Error() string {
	return string(err)
}

const (
	ErrIndexOutOfRange = darrayError("index out of range")
	ErrEmpty           = darrayError("array is empty")
	ErrNilAllocator    = darrayError("allocator must not be nil")

	// Allocation failures are reported by the allocator.
	ErrOutOfMemory = alloc.ErrOutOfMemory
	ErrInvalidSize = alloc.ErrInvalidSize
)
