package darray

import (
	"slices"

	"github.com/cockroachdb/errors"
)

// Convert builds an array of T from an array of Y, mapping every item with
// fn. If fn fails, the partly converted array is released and the error is
// returned.
func Convert[T, Y any](src *DArray[Y], fn func(Y) (T, error), opts ...Option[T]) (dst *DArray[T], err error) {
	if dst, err = newArray(src.Len(), opts); err != nil {
		return nil, err
	}

	for i, v := range src.Items() {
		if dst.buf[i], err = fn(v); err != nil {
			return nil, errors.CombineErrors(errors.Wrapf(err, "convert item %d", i), dst.Close())
		}
	}

	dst.length = src.Len()
	return
}

// Equal reports whether both arrays hold the same items in the same order.
// Capacity is not compared.
func Equal[T comparable](a, b *DArray[T]) bool {
	return slices.Equal(a.Items(), b.Items())
}

func EqualFunc[T, Y any](a *DArray[T], b *DArray[Y], eq func(T, Y) bool) bool {
	return slices.EqualFunc(a.Items(), b.Items(), eq)
}
