package alloc

import (
	"runtime"

	"github.com/cockroachdb/errors"
)

var _ Allocator[int] = Heap[int]{}

// Heap allocates blocks on the Go heap. It is the default allocator of every
// container in this module.
type Heap[T any] struct {
	// MaxItems bounds a single allocation. Zero means no bound other than what
	// the runtime is able to address.
	MaxItems int
}

func (h Heap[T]) Alloc(n int) (b Block[T], err error) {
	if n < 0 {
		return nil, errors.Wrapf(ErrInvalidSize, "alloc %d items", n)
	}

	if h.MaxItems > 0 && n > h.MaxItems {
		return nil, errors.Wrapf(ErrOutOfMemory, "alloc %d items exceeds limit of %d", n, h.MaxItems)
	}

	// make panics with a runtime error when the size can't be addressed
	defer func() {
		if r := recover(); r != nil {
			rerr, ok := r.(runtime.Error)

			if !ok {
				panic(r)
			}

			b = nil
			err = errors.WithSecondaryError(errors.Wrapf(ErrOutOfMemory, "alloc %d items", n), rerr)
		}
	}()

	return &heapBlock[T]{items: make([]T, n)}, nil
}

type heapBlock[T any] struct {
	items []T
}

func (b *heapBlock[T]) Items() []T {
	return b.items
}

func (b *heapBlock[T]) Free() error {
	clear(b.items)
	b.items = nil
	return nil
}
