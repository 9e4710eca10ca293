package str

import "github.com/webbmaffian/go-adt/darray"

const (
	ErrIndexOutOfRange = darray.ErrIndexOutOfRange
	ErrOutOfMemory     = darray.ErrOutOfMemory
	ErrInvalidSize     = darray.ErrInvalidSize
)
