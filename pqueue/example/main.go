package main

import (
	"log"
	"slices"

	"github.com/webbmaffian/go-adt/pqueue"
)

type job struct {
	name     string
	priority int
}

func main() {
	pq, err := pqueue.NewOrdered[int]()

	if err != nil {
		log.Println(err)
		return
	}

	defer pq.Close()

	for _, v := range []int{10, 5, 13, 3} {
		if err := pq.Enqueue(v); err != nil {
			log.Println(err)
			return
		}

		top, _ := pq.Top()
		log.Printf("enqueued %2d | top %2d | heap: %s\n", v, top, pq)
	}

	for !pq.IsEmpty() {
		v, err := pq.Dequeue()

		if err != nil {
			log.Println(err)
			return
		}

		log.Printf("dequeued %2d | heap: %s\n", v, pq)
	}

	jobs, err := pqueue.FromSeq(func(a, b job) bool {
		return a.priority > b.priority
	}, slices.Values([]job{
		{"backup", 1},
		{"deploy", 5},
		{"alert", 9},
		{"report", 3},
	}))

	if err != nil {
		log.Println(err)
		return
	}

	defer jobs.Close()

	for !jobs.IsEmpty() {
		j, _ := jobs.Dequeue()
		log.Printf("running %s (priority %d)\n", j.name, j.priority)
	}
}
