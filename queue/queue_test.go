package queue

import (
	"slices"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func requireItems[T any](t *testing.T, q *Queue[T], expected ...T) {
	t.Helper()
	require.Equal(t, len(expected), q.Len())
	require.Equal(t, len(expected) == 0, q.IsEmpty())

	if len(expected) == 0 {
		require.Nil(t, q.front)
		require.Nil(t, q.back)
		return
	}

	require.Equal(t, expected, slices.Collect(q.Values()))
	require.Nil(t, q.back.next)
}

func TestEnqueueDequeue(t *testing.T) {
	var q Queue[int]
	requireItems(t, &q)

	_, err := q.Dequeue()
	require.ErrorIs(t, err, ErrEmpty)

	_, err = q.First()
	require.ErrorIs(t, err, ErrEmpty)

	for i := 1; i <= 3; i++ {
		require.NoError(t, q.Enqueue(i))
	}

	requireItems(t, &q, 1, 2, 3)

	first, err := q.First()
	require.NoError(t, err)
	require.Equal(t, 1, *first)

	*first = 10
	requireItems(t, &q, 10, 2, 3)

	v, err := q.Dequeue()
	require.NoError(t, err)
	require.Equal(t, 10, v)
	requireItems(t, &q, 2, 3)

	require.NoError(t, q.Enqueue(4))
	requireItems(t, &q, 2, 3, 4)

	for _, expected := range []int{2, 3, 4} {
		v, err = q.Dequeue()
		require.NoError(t, err)
		require.Equal(t, expected, v)
	}

	requireItems(t, &q)

	require.NoError(t, q.Enqueue(5))
	requireItems(t, &q, 5)
}

func TestLimit(t *testing.T) {
	q, err := New(WithLimit[string](2))
	require.NoError(t, err)
	require.Equal(t, 2, q.Limit())

	require.NoError(t, q.Enqueue("a"))
	require.NoError(t, q.Enqueue("b"))
	require.ErrorIs(t, q.Enqueue("c"), ErrFull)
	requireItems(t, q, "a", "b")

	_, err = q.Dequeue()
	require.NoError(t, err)
	require.NoError(t, q.Enqueue("c"))
	requireItems(t, q, "b", "c")

	_, err = New(WithLimit[string](0))
	require.Error(t, err)

	_, err = FromSeq(slices.Values([]string{"x", "y", "z"}), WithLimit[string](2))
	require.ErrorIs(t, err, ErrFull)
}

func TestClear(t *testing.T) {
	q, err := FromSeq(slices.Values([]int{1, 2, 3}))
	require.NoError(t, err)

	q.Clear()
	requireItems(t, q)

	require.NoError(t, q.Enqueue(7))
	requireItems(t, q, 7)
}

func TestCloneCopyFrom(t *testing.T) {
	a, err := FromSeq(slices.Values([]int{1, 2, 3}), WithLimit[int](3))
	require.NoError(t, err)

	b := a.Clone()
	require.Equal(t, 3, b.Limit())
	requireItems(t, b, 1, 2, 3)

	_, err = b.Dequeue()
	require.NoError(t, err)
	requireItems(t, a, 1, 2, 3)
	requireItems(t, b, 2, 3)

	require.NoError(t, a.CopyFrom(b))
	requireItems(t, a, 2, 3)

	require.NoError(t, a.CopyFrom(a))
	requireItems(t, a, 2, 3)

	big, err := FromSeq(slices.Values([]int{1, 2, 3, 4}))
	require.NoError(t, err)
	require.ErrorIs(t, a.CopyFrom(big), ErrFull)
	requireItems(t, a, 2, 3)

	var unbounded Queue[int]
	require.NoError(t, unbounded.CopyFrom(big))
	requireItems(t, &unbounded, 1, 2, 3, 4)
}

func TestConvert(t *testing.T) {
	src, err := FromSeq(slices.Values([]int{1, 2, 3}))
	require.NoError(t, err)

	dst, err := Convert(src, strconv.Itoa)
	require.NoError(t, err)
	requireItems(t, dst, "1", "2", "3")
	requireItems(t, src, 1, 2, 3)

	_, err = Convert(src, strconv.Itoa, WithLimit[string](2))
	require.ErrorIs(t, err, ErrFull)
}

func TestValuesBreak(t *testing.T) {
	q, err := FromSeq(slices.Values([]int{1, 2, 3, 4}))
	require.NoError(t, err)

	var got []int

	for v := range q.Values() {
		if v == 3 {
			break
		}

		got = append(got, v)
	}

	require.Equal(t, []int{1, 2}, got)
	requireItems(t, q, 1, 2, 3, 4)
}

func BenchmarkEnqueueDequeue(b *testing.B) {
	var q Queue[uint64]

	for i := 0; i < b.N; i++ {
		_ = q.Enqueue(uint64(i))
		_, _ = q.Dequeue()
	}
}
