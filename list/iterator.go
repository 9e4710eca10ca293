package list

// Iterator is a position in a List. The zero value is uninitialized; valid
// iterators come from Begin, End, Insert and Erase. An iterator stays valid
// until the item it points at is erased.
type Iterator[T any] struct {
	node *node[T]
	head *node[T]
}

// Val returns a pointer to the item at the iterator's position.
func (it *Iterator[T]) Val() (*T, error) {
	if it.node == nil {
		return nil, ErrIteratorUninitialized
	}

	if it.node == it.head || it.node.next == nil {
		return nil, ErrIteratorOutOfRange
	}

	return &it.node.val, nil
}

// Next advances to the following item. Advancing past End fails.
func (it *Iterator[T]) Next() error {
	if it.node == nil {
		return ErrIteratorUninitialized
	}

	if it.node == it.head || it.node.next == nil {
		return ErrIteratorOutOfRange
	}

	it.node = it.node.next
	return nil
}

// Prev moves back to the preceding item. Moving back from Begin fails.
func (it *Iterator[T]) Prev() error {
	if it.node == nil {
		return ErrIteratorUninitialized
	}

	if it.node.prev == nil || it.node.prev == it.head {
		return ErrIteratorOutOfRange
	}

	it.node = it.node.prev
	return nil
}

func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.node == other.node
}
