package main

import (
	"log"
	"os"

	"github.com/webbmaffian/go-adt/alloc"
	"github.com/webbmaffian/go-adt/darray"
)

type point struct {
	X, Y int32
}

func main() {
	arr, err := darray.NewSized[int](10)

	if err != nil {
		log.Println(err)
		return
	}

	defer arr.Close()

	for i, v := range []int{10, 20, 30} {
		if err := arr.Set(i, v); err != nil {
			log.Println(err)
			return
		}
	}

	stats(arr, "SET")

	if err := arr.Resize(12, 7); err != nil {
		log.Println(err)
		return
	}

	stats(arr, "RESIZE")

	if err := arr.InsertAt(99, 1); err != nil {
		log.Println(err)
		return
	}

	stats(arr, "INSERT")

	if _, err := arr.Get(arr.Len()); err != nil {
		log.Println("expected:", err)
	}

	// Pointer-free items can live in a mapped file instead of the Go heap.
	points, err := darray.New(darray.WithAllocator[point](alloc.Mmap[point]{Dir: os.TempDir()}))

	if err != nil {
		log.Println(err)
		return
	}

	defer points.Close()

	for i := int32(0); i < 8; i++ {
		if err := points.Append(point{X: i, Y: i * i}); err != nil {
			log.Println(err)
			return
		}
	}

	stats(points, "APPEND")
}

func stats[T any](arr *darray.DArray[T], what string) {
	log.Printf("%6s | len %02d | cap %02d | %v\n", what, arr.Len(), arr.Cap(), arr)
}
