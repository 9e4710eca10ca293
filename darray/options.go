package darray

import "github.com/webbmaffian/go-adt/alloc"

// Option configures a DArray at construction.
type Option[T any] func(*DArray[T]) error

// WithAllocator sets where the array's buffer comes from. Arrays use
// alloc.Heap unless told otherwise.
func WithAllocator[T any](a alloc.Allocator[T]) Option[T] {
	return func(arr *DArray[T]) error {
		if a == nil {
			return ErrNilAllocator
		}

		arr.alloc = a
		return nil
	}
}
