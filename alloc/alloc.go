// Package alloc provides the owned buffers that back the containers in this
// module. A Block is a fixed-size run of items handed out by an Allocator;
// containers grow by allocating a larger Block, copying their live items
// across and freeing the old one.
package alloc

// Allocator hands out blocks of exactly n items, all set to the zero value.
type Allocator[T any] interface {
	Alloc(n int) (Block[T], error)
}

// Block is a single allocation. Items always returns the same slice, with
// len and cap equal to the size that was requested. After Free the items
// must not be touched.
type Block[T any] interface {
	Items() []T
	Free() error
}
