// Package list implements a circular doubly-linked list. A sentinel node
// closes the circle: it is both the position before the first item and the
// position after the last, which is what End returns.
package list

import "iter"

type node[T any] struct {
	next *node[T]
	prev *node[T]
	val  T
}

// The zero value is an empty list ready to use.
type List[T any] struct {
	head   *node[T] // sentinel
	length int
}

func New[T any]() *List[T] {
	return new(List[T]).init()
}

// FromSeq builds a list holding every value of seq, in order.
func FromSeq[T any](seq iter.Seq[T]) *List[T] {
	l := New[T]()

	for v := range seq {
		l.PushBack(v)
	}

	return l
}

func (l *List[T]) init() *List[T] {
	if l.head == nil {
		l.head = new(node[T])
		l.head.next = l.head
		l.head.prev = l.head
	}

	return l
}

func (l *List[T]) Len() int {
	return l.length
}

func (l *List[T]) IsEmpty() bool {
	return l.length == 0
}

// Clear drops all items. Iterators into the list are invalidated.
func (l *List[T]) Clear() {
	if l.head == nil {
		return
	}

	for n := l.head.next; n != l.head; {
		next := n.next
		n.next, n.prev = nil, nil
		n = next
	}

	l.head.next = l.head
	l.head.prev = l.head
	l.length = 0
}

func (l *List[T]) Front() (*T, error) {
	if l.length == 0 {
		return nil, ErrEmpty
	}

	return &l.head.next.val, nil
}

func (l *List[T]) Back() (*T, error) {
	if l.length == 0 {
		return nil, ErrEmpty
	}

	return &l.head.prev.val, nil
}

func (l *List[T]) PushFront(val T) {
	l.insertBefore(l.init().head.next, val)
}

func (l *List[T]) PushBack(val T) {
	l.insertBefore(l.init().head, val)
}

// PopFront removes and returns the first item. Popping an empty list does
// nothing and reports false.
func (l *List[T]) PopFront() (val T, ok bool) {
	if l.length == 0 {
		return
	}

	n := l.head.next
	l.unlink(n)
	return n.val, true
}

// PopBack removes and returns the last item. Popping an empty list does
// nothing and reports false.
func (l *List[T]) PopBack() (val T, ok bool) {
	if l.length == 0 {
		return
	}

	n := l.head.prev
	l.unlink(n)
	return n.val, true
}

// Begin returns an iterator at the first item, or End if the list is empty.
func (l *List[T]) Begin() Iterator[T] {
	l.init()

	return Iterator[T]{
		node: l.head.next,
		head: l.head,
	}
}

// End returns the iterator one past the last item.
func (l *List[T]) End() Iterator[T] {
	l.init()

	return Iterator[T]{
		node: l.head,
		head: l.head,
	}
}

// Insert places val before the position of it, and returns an iterator to
// the inserted item.
func (l *List[T]) Insert(it Iterator[T], val T) (Iterator[T], error) {
	if err := l.check(it); err != nil {
		return Iterator[T]{}, err
	}

	return Iterator[T]{
		node: l.insertBefore(it.node, val),
		head: l.head,
	}, nil
}

// InsertSeq places every value of seq before the position of it, keeping
// their order.
func (l *List[T]) InsertSeq(it Iterator[T], seq iter.Seq[T]) error {
	if err := l.check(it); err != nil {
		return err
	}

	for v := range seq {
		l.insertBefore(it.node, v)
	}

	return nil
}

// Erase removes the item at it, and returns an iterator to the item that
// followed it.
func (l *List[T]) Erase(it Iterator[T]) (Iterator[T], error) {
	if err := l.check(it); err != nil {
		return Iterator[T]{}, err
	}

	if it.node == l.head {
		return Iterator[T]{}, ErrIteratorOutOfRange
	}

	next := it.node.next
	l.unlink(it.node)

	return Iterator[T]{
		node: next,
		head: l.head,
	}, nil
}

// EraseRange removes the items in [from, to). If to does not follow from,
// every item from from onwards is erased before ErrIteratorOutOfRange is
// returned.
func (l *List[T]) EraseRange(from, to Iterator[T]) (it Iterator[T], err error) {
	if err = l.check(to); err != nil {
		return
	}

	for it = from; !it.Equal(to); {
		if it, err = l.Erase(it); err != nil {
			return
		}
	}

	return
}

// Remove drops every item equal to val and returns how many there were.
func Remove[T comparable](l *List[T], val T) int {
	return l.RemoveFunc(func(v T) bool {
		return v == val
	})
}

// RemoveFunc drops every item matching cond and returns how many there were.
func (l *List[T]) RemoveFunc(cond func(T) bool) (count int) {
	if l.head == nil {
		return
	}

	for n := l.head.next; n != l.head; {
		next := n.next

		if cond(n.val) {
			l.unlink(n)
			count++
		}

		n = next
	}

	return
}

// Swap exchanges the contents of two lists. Iterators follow their items.
func (l *List[T]) Swap(other *List[T]) {
	if l == other {
		return
	}

	l.head, other.head = other.head, l.head
	l.length, other.length = other.length, l.length
}

func (l *List[T]) Clone() *List[T] {
	return FromSeq(l.Values())
}

// CopyFrom replaces the contents of the list with a copy of src's.
func (l *List[T]) CopyFrom(src *List[T]) {
	if l == src {
		return
	}

	l.Clear()

	for v := range src.Values() {
		l.PushBack(v)
	}
}

// Values yields the items from front to back.
func (l *List[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		if l.head == nil {
			return
		}

		for n := l.head.next; n != l.head; n = n.next {
			if !yield(n.val) {
				return
			}
		}
	}
}

// Backward yields the items from back to front.
func (l *List[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		if l.head == nil {
			return
		}

		for n := l.head.prev; n != l.head; n = n.prev {
			if !yield(n.val) {
				return
			}
		}
	}
}

func (l *List[T]) check(it Iterator[T]) error {
	if it.node == nil {
		return ErrIteratorUninitialized
	}

	if it.head != l.init().head {
		return ErrIteratorMismatch
	}

	// erased
	if it.node != l.head && it.node.next == nil {
		return ErrIteratorOutOfRange
	}

	return nil
}

func (l *List[T]) insertBefore(at *node[T], val T) *node[T] {
	n := &node[T]{
		next: at,
		prev: at.prev,
		val:  val,
	}

	at.prev.next = n
	at.prev = n
	l.length++
	return n
}

func (l *List[T]) unlink(n *node[T]) {
	n.prev.next = n.next
	n.next.prev = n.prev
	n.next, n.prev = nil, nil
	l.length--
}
