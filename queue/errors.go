package queue

type queueError string

var _ error = queueError("")

func (err queueError) Error() string {
	return string(err)
}

const (
	ErrEmpty = queueError("queue is empty")
	ErrFull  = queueError("queue is full")
)
