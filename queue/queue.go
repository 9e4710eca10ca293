// Package queue implements a FIFO queue over a singly-linked list of nodes.
package queue

import (
	"iter"

	"github.com/cockroachdb/errors"
)

type node[T any] struct {
	next *node[T]
	val  T
}

// The zero value is an empty, unbounded queue.
type Queue[T any] struct {
	front  *node[T]
	back   *node[T]
	length int
	limit  int
}

// Option configures a Queue at construction.
type Option[T any] func(*Queue[T]) error

// WithLimit bounds the number of items the queue holds. Enqueueing beyond
// it fails with ErrFull.
func WithLimit[T any](n int) Option[T] {
	return func(q *Queue[T]) error {
		if n < 1 {
			return errors.Newf("queue limit must be positive, got %d", n)
		}

		q.limit = n
		return nil
	}
}

func New[T any](opts ...Option[T]) (*Queue[T], error) {
	q := new(Queue[T])

	for _, opt := range opts {
		if err := opt(q); err != nil {
			return nil, err
		}
	}

	return q, nil
}

// FromSeq builds a queue holding every value of seq, with the first value in
// front.
func FromSeq[T any](seq iter.Seq[T], opts ...Option[T]) (*Queue[T], error) {
	q, err := New(opts...)

	if err != nil {
		return nil, err
	}

	for v := range seq {
		if err = q.Enqueue(v); err != nil {
			return nil, err
		}
	}

	return q, nil
}

// Convert builds a queue of T from a queue of Y, mapping every item with fn.
func Convert[T, Y any](src *Queue[Y], fn func(Y) T, opts ...Option[T]) (*Queue[T], error) {
	return FromSeq(func(yield func(T) bool) {
		for v := range src.Values() {
			if !yield(fn(v)) {
				return
			}
		}
	}, opts...)
}

func (q *Queue[T]) Len() int {
	return q.length
}

func (q *Queue[T]) IsEmpty() bool {
	return q.front == nil
}

// Limit returns the bound set with WithLimit, or zero when unbounded.
func (q *Queue[T]) Limit() int {
	return q.limit
}

func (q *Queue[T]) Enqueue(val T) error {
	if q.limit > 0 && q.length >= q.limit {
		return ErrFull
	}

	n := &node[T]{val: val}

	if q.back == nil {
		q.front = n
	} else {
		q.back.next = n
	}

	q.back = n
	q.length++
	return nil
}

func (q *Queue[T]) Dequeue() (val T, err error) {
	if q.front == nil {
		return val, ErrEmpty
	}

	n := q.front
	q.front = n.next

	if q.front == nil {
		q.back = nil
	}

	n.next = nil
	q.length--
	return n.val, nil
}

// First returns a pointer to the item in front without removing it.
func (q *Queue[T]) First() (*T, error) {
	if q.front == nil {
		return nil, ErrEmpty
	}

	return &q.front.val, nil
}

func (q *Queue[T]) Clear() {
	for q.front != nil {
		n := q.front
		q.front = n.next
		n.next = nil
	}

	q.back = nil
	q.length = 0
}

// Clone returns an independent copy with the same limit.
func (q *Queue[T]) Clone() *Queue[T] {
	dst := &Queue[T]{limit: q.limit}
	dst.link(q.Values())
	return dst
}

// CopyFrom replaces the contents of the queue with a copy of src's. If src
// holds more items than the queue's limit, the queue is left untouched.
func (q *Queue[T]) CopyFrom(src *Queue[T]) error {
	if q == src {
		return nil
	}

	if q.limit > 0 && src.length > q.limit {
		return errors.Wrapf(ErrFull, "copy %d items into queue limited to %d", src.length, q.limit)
	}

	q.Clear()
	q.link(src.Values())
	return nil
}

// Appends without checking the limit.
func (q *Queue[T]) link(seq iter.Seq[T]) {
	for v := range seq {
		n := &node[T]{val: v}

		if q.back == nil {
			q.front = n
		} else {
			q.back.next = n
		}

		q.back = n
		q.length++
	}
}

// Values yields the items from front to back without dequeueing them.
func (q *Queue[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := q.front; n != nil; n = n.next {
			if !yield(n.val) {
				return
			}
		}
	}
}
