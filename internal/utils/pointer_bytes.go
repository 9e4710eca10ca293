package utils

import (
	"reflect"
	"unsafe"
)

// Size of a single T in bytes.
func SizeOf[T any]() int {
	var item T
	return int(unsafe.Sizeof(item))
}

// BytesToSlice views the first n*SizeOf[T]() bytes of b as n items of T.
// The returned slice shares memory with b and must not outlive it.
func BytesToSlice[T any](b []byte, n int) []T {
	if n == 0 || len(b) == 0 {
		return nil
	}

	return unsafe.Slice((*T)(unsafe.Pointer(&b[0])), n)
}

// HasPointers reports whether a value of T holds anything the garbage
// collector has to trace.
func HasPointers[T any]() bool {
	return hasPointers(reflect.TypeFor[T]())
}

func hasPointers(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Pointer, reflect.UnsafePointer, reflect.Map, reflect.Slice,
		reflect.String, reflect.Chan, reflect.Func, reflect.Interface:
		return true

	case reflect.Array:
		return t.Len() > 0 && hasPointers(t.Elem())

	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if hasPointers(t.Field(i).Type) {
				return true
			}
		}
	}

	return false
}
