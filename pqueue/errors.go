package pqueue

type pqueueError string

var _ error = pqueueError("")

func (err pqueueError) Error() string {
	return string(err)
}

const (
	ErrEmpty   = pqueueError("priority queue is empty")
	ErrNilLess = pqueueError("less function must not be nil")
)
