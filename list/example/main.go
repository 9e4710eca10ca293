package main

import (
	"log"
	"slices"

	"github.com/webbmaffian/go-adt/list"
)

func main() {
	l := list.New[int]()

	l.PushBack(5)
	it := l.Begin()
	l.PushFront(3)

	if err := it.Prev(); err != nil {
		log.Println(err)
		return
	}

	v, _ := it.Val()
	log.Println("before 5:", *v)

	l.PopBack()
	l.PopFront()
	log.Println("empty after pops:", l.IsEmpty())

	l.PushBack(4)
	l.PushBack(7)
	l.PushFront(3)

	it = l.Begin()

	if err := it.Next(); err != nil {
		log.Println(err)
		return
	}

	if err := l.InsertSeq(it, slices.Values([]int{1, 1})); err != nil {
		log.Println(err)
		return
	}

	log.Println("items:", slices.Collect(l.Values()))
	log.Println("removed:", list.Remove(l, 1))
	log.Println("backward:", slices.Collect(l.Backward()))

	if _, err := l.Erase(l.End()); err != nil {
		log.Println("expected:", err)
	}
}
