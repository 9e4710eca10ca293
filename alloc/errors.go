package alloc

type allocError string

var _ error = allocError("")

func (err allocError) Error() string {
	return string(err)
}

const (
	ErrOutOfMemory = allocError("out of memory")
	ErrInvalidSize = allocError("invalid allocation size")
	ErrPointerType = allocError("item must not contain any pointer")
	ErrZeroSize    = allocError("item must be at least 1 byte")
)
