// Package darray implements a dynamic array: a contiguous buffer with a
// capacity of at least its logical length, growing by half again whenever an
// append or resize overflows it.
//
// Slots [0, Len()) hold live items, slots [Len(), Cap()) are reserved and
// always hold the zero value. Capacity never shrinks on its own.
//
// A DArray is not safe for concurrent use.
package darray

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/webbmaffian/go-adt/alloc"
)

// DefaultCapacity is the capacity of an empty array, and of any array
// constructed with at most this many items.
const DefaultCapacity = 5

// Initialize an empty array with the default capacity.
func New[T any](opts ...Option[T]) (*DArray[T], error) {
	return newArray(0, opts)
}

// Initialize an array of n zero-valued items.
func NewSized[T any](n int, opts ...Option[T]) (*DArray[T], error) {
	var zero T
	return NewFilled(n, zero, opts...)
}

// Initialize an array of n copies of fill.
func NewFilled[T any](n int, fill T, opts ...Option[T]) (arr *DArray[T], err error) {
	if arr, err = newArray(n, opts); err != nil {
		return
	}

	arr.fill(0, n, fill)
	arr.length = n
	return
}

func newArray[T any](n int, opts []Option[T]) (arr *DArray[T], err error) {
	if n < 0 {
		return nil, errors.Wrapf(ErrInvalidSize, "new array of %d items", n)
	}

	arr = new(DArray[T])

	for _, opt := range opts {
		if err = opt(arr); err != nil {
			return nil, err
		}
	}

	if err = arr.realloc(initialCapacity(n)); err != nil {
		return nil, err
	}

	return
}

// The zero value is an empty array without a buffer, which is allocated
// with alloc.Heap on first growth.
type DArray[T any] struct {
	alloc  alloc.Allocator[T]
	block  alloc.Block[T]
	buf    []T // block.Items(), len(buf) is the capacity
	length int
}

func initialCapacity(n int) int {
	if n <= DefaultCapacity {
		return DefaultCapacity
	}

	return growth(n)
}

// Capacity that fits n items with half of n to spare, rounded up.
func growth(n int) int {
	if c := n + (n+1)/2; c > n {
		return c
	}

	return n
}

func (arr *DArray[T]) allocator() alloc.Allocator[T] {
	if arr.alloc == nil {
		return alloc.Heap[T]{}
	}

	return arr.alloc
}

// Moves the live items into a fresh block of exactly n items. The array is
// only modified once the new block is populated.
func (arr *DArray[T]) realloc(n int) (err error) {
	block, err := arr.allocator().Alloc(n)

	if err != nil {
		return errors.Wrapf(err, "reserve %d items", n)
	}

	items := block.Items()
	copy(items, arr.buf[:arr.length])

	old := arr.block
	arr.block, arr.buf = block, items

	if old != nil {
		if err = old.Free(); err != nil {
			return errors.Wrap(err, "free previous buffer")
		}
	}

	return
}

func (arr *DArray[T]) fill(from, to int, val T) {
	for i := from; i < to; i++ {
		arr.buf[i] = val
	}
}

// Shrinks the logical length to n, resetting the dropped slots from the top.
func (arr *DArray[T]) truncate(n int) {
	var zero T

	for i := arr.length - 1; i >= n; i-- {
		arr.buf[i] = zero
	}

	arr.length = n
}

func (arr *DArray[T]) Len() int {
	return arr.length
}

func (arr *DArray[T]) Cap() int {
	return len(arr.buf)
}

func (arr *DArray[T]) IsEmpty() bool {
	return arr.length == 0
}

// Clear drops all items and keeps the capacity.
func (arr *DArray[T]) Clear() {
	arr.truncate(0)
}

// At returns a pointer to the item at index i. The pointer is valid until
// the array reallocates its buffer.
func (arr *DArray[T]) At(i int) (*T, error) {
	if i < 0 || i >= arr.length {
		return nil, ErrIndexOutOfRange
	}

	return &arr.buf[i], nil
}

func (arr *DArray[T]) Get(i int) (val T, err error) {
	if i < 0 || i >= arr.length {
		return val, ErrIndexOutOfRange
	}

	return arr.buf[i], nil
}

func (arr *DArray[T]) Set(i int, val T) error {
	if i < 0 || i >= arr.length {
		return ErrIndexOutOfRange
	}

	arr.buf[i] = val
	return nil
}

// Resize changes the logical length to n. New slots are set to the optional
// fill value, or the zero value if left out. Growing past the capacity
// reallocates to hold n and half as much again.
func (arr *DArray[T]) Resize(n int, fill ...T) error {
	if n < 0 {
		return errors.Wrapf(ErrInvalidSize, "resize to %d", n)
	}

	if n <= arr.length {
		arr.truncate(n)
		return nil
	}

	if n > len(arr.buf) {
		c := growth(n)

		if arr.block == nil {
			c = initialCapacity(n)
		}

		if err := arr.realloc(c); err != nil {
			return err
		}
	}

	var val T

	if fill != nil {
		val = fill[0]
	}

	arr.fill(arr.length, n, val)
	arr.length = n
	return nil
}

// Reserve makes room for exactly n items without changing the logical
// length. It never shrinks the array.
func (arr *DArray[T]) Reserve(n int) error {
	if n <= len(arr.buf) {
		return nil
	}

	return arr.realloc(n)
}

func (arr *DArray[T]) Append(val T) error {
	return arr.Resize(arr.length+1, val)
}

// InsertAt places val at index i, moving the items from i onwards one slot
// up. Any index in [0, Len()] is valid.
func (arr *DArray[T]) InsertAt(val T, i int) error {
	if i < 0 || i > arr.length {
		return ErrIndexOutOfRange
	}

	if err := arr.Resize(arr.length + 1); err != nil {
		return err
	}

	copy(arr.buf[i+1:arr.length], arr.buf[i:arr.length-1])
	arr.buf[i] = val
	return nil
}

// RemoveAt drops the item at index i, moving the following items one slot
// down.
func (arr *DArray[T]) RemoveAt(i int) error {
	if i < 0 || i >= arr.length {
		return ErrIndexOutOfRange
	}

	copy(arr.buf[i:arr.length-1], arr.buf[i+1:arr.length])
	arr.truncate(arr.length - 1)
	return nil
}

// RemoveLast drops and returns the last item.
func (arr *DArray[T]) RemoveLast() (val T, err error) {
	if arr.length == 0 {
		return val, ErrEmpty
	}

	val = arr.buf[arr.length-1]
	arr.truncate(arr.length - 1)
	return
}

// Last returns the last item without removing it.
func (arr *DArray[T]) Last() (val T, err error) {
	if arr.length == 0 {
		return val, ErrEmpty
	}

	return arr.buf[arr.length-1], nil
}

// Items returns the live items. The slice shares the array's buffer and is
// invalidated by reallocation; its capacity is clipped so that appending to
// it never writes into reserved slots.
func (arr *DArray[T]) Items() []T {
	return arr.buf[:arr.length:arr.length]
}

// Clone returns an independent copy with its own buffer from the same
// allocator.
func (arr *DArray[T]) Clone() (*DArray[T], error) {
	dst := &DArray[T]{alloc: arr.alloc}

	if err := dst.CopyFrom(arr); err != nil {
		return nil, err
	}

	return dst, nil
}

// CopyFrom replaces the contents of the array with a copy of src's. If the
// buffer has to grow and can't, the array is left untouched.
func (arr *DArray[T]) CopyFrom(src *DArray[T]) error {
	if arr == src {
		return nil
	}

	if src.length > len(arr.buf) || arr.block == nil {
		if err := arr.realloc(initialCapacity(src.length)); err != nil {
			return err
		}
	}

	copy(arr.buf, src.buf[:src.length])

	if arr.length > src.length {
		arr.truncate(src.length)
	} else {
		arr.length = src.length
	}

	return nil
}

// Close hands the buffer back to its allocator. The array is empty and
// reusable afterwards.
func (arr *DArray[T]) Close() (err error) {
	if arr.block != nil {
		err = arr.block.Free()
	}

	arr.block, arr.buf, arr.length = nil, nil, 0
	return
}

func (arr *DArray[T]) String() string {
	return fmt.Sprint(arr.Items())
}
