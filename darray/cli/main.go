package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"os"
	"os/signal"
	"time"

	"github.com/gosuri/uilive"
	"github.com/mattn/go-isatty"
	"github.com/spf13/pflag"
	"github.com/webbmaffian/go-adt/alloc"
	"github.com/webbmaffian/go-adt/darray"
)

var (
	opsPerTick = pflag.IntP("ops", "n", 1000, "operations per tick")
	interval   = pflag.DurationP("interval", "i", time.Second, "time between ticks")
	useMmap    = pflag.Bool("mmap", false, "back the array with mapped memory instead of the Go heap")
	dir        = pflag.String("dir", "", "directory of the file backing mapped memory (anonymous memory if empty)")
	maxItems   = pflag.Int("max-items", 0, "refuse to grow the buffer past this many items (0 for no limit)")
	seed       = pflag.Uint64("seed", 0, "random seed (0 for a random one)")
)

func main() {
	pflag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, os.Kill)
	defer stop()

	arr, err := darray.New(darray.WithAllocator(allocator()))

	if err != nil {
		log.Println(err)
		return
	}

	defer func() {
		if err := arr.Close(); err != nil {
			log.Println(err)
		}
	}()

	s := *seed

	if s == 0 {
		s = rand.Uint64()
	}

	w := &workload{
		arr: arr,
		rnd: rand.New(rand.NewPCG(s, s)),
	}

	log.Printf("running %d operations every %s (seed %d)\n", *opsPerTick, *interval, s)

	if isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		runLive(ctx, w)
	} else {
		runLog(ctx, w)
	}
}

func allocator() alloc.Allocator[uint64] {
	if *useMmap {
		return alloc.Mmap[uint64]{Dir: *dir, MaxItems: *maxItems}
	}

	return alloc.Heap[uint64]{MaxItems: *maxItems}
}

func runLive(ctx context.Context, w *workload) {
	ticker := time.NewTicker(*interval)
	defer ticker.Stop()

	writer := uilive.New()

	ops := writer.Newline()
	length := writer.Newline()
	capacity := writer.Newline()
	reallocs := writer.Newline()
	errs := writer.Newline()
	lastErr := writer.Newline()

	// start listening for updates and render
	writer.Start()
	defer writer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.run(*opsPerTick)

			fmt.Fprintf(ops, "Operations: %d\n", w.ops)
			fmt.Fprintf(length, "Length: %d\n", w.arr.Len())
			fmt.Fprintf(capacity, "Capacity: %d\n", w.arr.Cap())
			fmt.Fprintf(reallocs, "Reallocations: %d\n", w.reallocs)
			fmt.Fprintf(errs, "Errors: %d\n", w.errs)
			printErr(lastErr, w.lastErr)
		}
	}
}

func runLog(ctx context.Context, w *workload) {
	ticker := time.NewTicker(*interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.run(*opsPerTick)
			log.Printf("ops: %d | len: %d | cap: %d | reallocs: %d | errors: %d | last error: %v\n",
				w.ops, w.arr.Len(), w.arr.Cap(), w.reallocs, w.errs, w.lastErr)
		}
	}
}

func printErr(w io.Writer, err error) {
	if err == nil {
		fmt.Fprintln(w, "Last error: none")
		return
	}

	fmt.Fprintf(w, "Last error: %v\n", err)
}
