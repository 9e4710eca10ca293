// Package pqueue implements a priority queue as a binary heap stored in a
// darray.DArray. The item for which less holds against every other item is
// on top.
package pqueue

import (
	"fmt"
	"iter"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/webbmaffian/go-adt/darray"
	"golang.org/x/exp/constraints"
)

// Less orders values ascending, making the queue a min-heap.
func Less[T constraints.Ordered](a, b T) bool {
	return a < b
}

type PQueue[T any] struct {
	heap *darray.DArray[T]
	less func(a, b T) bool
}

// New returns an empty queue ordered by less. The options configure the
// backing array.
func New[T any](less func(a, b T) bool, opts ...darray.Option[T]) (*PQueue[T], error) {
	if less == nil {
		return nil, ErrNilLess
	}

	heap, err := darray.New(opts...)

	if err != nil {
		return nil, err
	}

	return &PQueue[T]{
		heap: heap,
		less: less,
	}, nil
}

// NewOrdered returns an empty min-heap of ordered values.
func NewOrdered[T constraints.Ordered](opts ...darray.Option[T]) (*PQueue[T], error) {
	return New(Less[T], opts...)
}

// FromSeq enqueues every value of seq into a new queue ordered by less.
func FromSeq[T any](less func(a, b T) bool, seq iter.Seq[T], opts ...darray.Option[T]) (*PQueue[T], error) {
	pq, err := New(less, opts...)

	if err != nil {
		return nil, err
	}

	for v := range seq {
		if err = pq.Enqueue(v); err != nil {
			return nil, errors.CombineErrors(err, pq.Close())
		}
	}

	return pq, nil
}

func (pq *PQueue[T]) Len() int {
	return pq.heap.Len()
}

func (pq *PQueue[T]) IsEmpty() bool {
	return pq.heap.IsEmpty()
}

func (pq *PQueue[T]) Clear() {
	pq.heap.Clear()
}

// Enqueue adds val and moves it up until its parent is not greater.
func (pq *PQueue[T]) Enqueue(val T) error {
	if err := pq.heap.Append(val); err != nil {
		return err
	}

	h := pq.heap.Items()
	hole := len(h) - 1

	for hole > 0 {
		parent := (hole - 1) / 2

		if !pq.less(val, h[parent]) {
			break
		}

		h[hole] = h[parent]
		hole = parent
	}

	h[hole] = val
	return nil
}

// Dequeue removes and returns the top item.
func (pq *PQueue[T]) Dequeue() (top T, err error) {
	if top, err = pq.Top(); err != nil {
		return
	}

	last, err := pq.heap.RemoveLast()

	if err != nil {
		return
	}

	if !pq.heap.IsEmpty() {
		pq.heap.Items()[0] = last
		pq.shiftDown(0)
	}

	return
}

// Top returns the top item without removing it.
func (pq *PQueue[T]) Top() (top T, err error) {
	if pq.heap.IsEmpty() {
		return top, ErrEmpty
	}

	return pq.heap.Get(0)
}

// Load appends items in the given order without restoring the heap order.
// Call BuildHeap once loading is done. Either all items are loaded or none.
func (pq *PQueue[T]) Load(items ...T) error {
	if err := pq.heap.Reserve(pq.heap.Len() + len(items)); err != nil {
		return err
	}

	for _, v := range items {
		if err := pq.heap.Append(v); err != nil {
			return err
		}
	}

	return nil
}

// BuildHeap restores the heap order bottom-up, in linear time.
func (pq *PQueue[T]) BuildHeap() {
	for i := pq.heap.Len()/2 - 1; i >= 0; i-- {
		pq.shiftDown(i)
	}
}

// Moves the item at hole down until no child is less than it.
func (pq *PQueue[T]) shiftDown(hole int) {
	h := pq.heap.Items()
	tmp := h[hole]
	last := len(h) - 1

	for child := hole*2 + 1; child <= last; child = hole*2 + 1 {
		if child < last && pq.less(h[child+1], h[child]) {
			child++
		}

		if !pq.less(h[child], tmp) {
			break
		}

		h[hole] = h[child]
		hole = child
	}

	h[hole] = tmp
}

// Values yields the items in heap order, which is only sorted at the top.
func (pq *PQueue[T]) Values() iter.Seq[T] {
	return pq.heap.Values()
}

// Close releases the backing array.
func (pq *PQueue[T]) Close() error {
	return pq.heap.Close()
}

// String lists the items in heap order, separated by spaces.
func (pq *PQueue[T]) String() string {
	var b strings.Builder

	for i, v := range pq.heap.All() {
		if i > 0 {
			b.WriteByte(' ')
		}

		fmt.Fprint(&b, v)
	}

	return b.String()
}
