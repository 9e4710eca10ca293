package list

type listError string

var _ error = listError("")

func (err listError) Error() string {
	return string(err)
}

const (
	ErrEmpty                 = listError("list is empty")
	ErrIteratorMismatch      = listError("iterator belongs to another list")
	ErrIteratorUninitialized = listError("iterator is not initialized")
	ErrIteratorOutOfRange    = listError("iterator is out of range")
)
