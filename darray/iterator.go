package darray

import (
	"iter"

	"github.com/cockroachdb/errors"
)

// Iterator walks the live items in order. Each call to Iterate starts over.
type Iterator[T any] struct {
	arr *DArray[T]
	idx int
}

func (arr *DArray[T]) Iterate() Iterator[T] {
	return Iterator[T]{
		arr: arr,
		idx: -1,
	}
}

func (it *Iterator[T]) Next() bool {
	if it.idx+1 >= it.arr.length {
		return false
	}

	it.idx++
	return true
}

func (it *Iterator[T]) Index() int {
	return it.idx
}

// Val returns a pointer to the current item, or nil if the array has shrunk
// past it since the last call to Next.
func (it *Iterator[T]) Val() *T {
	if it.idx < 0 || it.idx >= it.arr.length {
		return nil
	}

	return &it.arr.buf[it.idx]
}

// Values yields the live items in order. The sequence can be ranged over
// any number of times.
func (arr *DArray[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < arr.length; i++ {
			if !yield(arr.buf[i]) {
				return
			}
		}
	}
}

// All yields the live items with their indexes.
func (arr *DArray[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < arr.length; i++ {
			if !yield(i, arr.buf[i]) {
				return
			}
		}
	}
}

// FromSeq builds an array holding every value of seq.
func FromSeq[T any](seq iter.Seq[T], opts ...Option[T]) (*DArray[T], error) {
	arr, err := New(opts...)

	if err != nil {
		return nil, err
	}

	for v := range seq {
		if err = arr.Append(v); err != nil {
			return nil, errors.CombineErrors(err, arr.Close())
		}
	}

	return arr, nil
}
