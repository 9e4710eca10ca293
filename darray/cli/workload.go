package main

import (
	"math/rand/v2"

	"github.com/webbmaffian/go-adt/darray"
)

// Random mix of mutations, leaning towards growth so that the array keeps
// reallocating until the allocator refuses.
type workload struct {
	arr *darray.DArray[uint64]
	rnd *rand.Rand

	ops      int
	reallocs int
	errs     int
	lastErr  error
}

func (w *workload) run(n int) {
	for i := 0; i < n; i++ {
		w.step()
	}
}

func (w *workload) step() {
	capBefore := w.arr.Cap()
	err := w.mutate()
	w.ops++

	if err != nil {
		w.errs++
		w.lastErr = err
	}

	if w.arr.Cap() != capBefore {
		w.reallocs++
	}
}

func (w *workload) mutate() error {
	switch op := w.rnd.IntN(10); {
	case op < 5:
		return w.arr.Append(w.rnd.Uint64())

	case op < 7:
		return w.arr.InsertAt(w.rnd.Uint64(), w.rnd.IntN(w.arr.Len()+1))

	case w.arr.IsEmpty():
		return nil

	case op < 9:
		return w.arr.RemoveAt(w.rnd.IntN(w.arr.Len()))

	default:
		_, err := w.arr.RemoveLast()
		return err
	}
}
