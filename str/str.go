// Package str implements a mutable byte string on top of darray.DArray. A
// String keeps one spare slot past its length, and grows to hold half as much
// again as it needs.
package str

import (
	"bytes"

	"github.com/cockroachdb/errors"
	"github.com/webbmaffian/go-adt/darray"
)

// DefaultCapacity is the capacity of an empty String.
const DefaultCapacity = 10

// Capacity for n bytes plus the spare slot, with half of that to spare.
func capacityFor(n int) int {
	return (n + 1) * 3 / 2
}

// The zero value is an empty string ready to use.
type String struct {
	buf darray.DArray[byte]
}

func New() (*String, error) {
	s := new(String)

	if err := s.buf.Reserve(DefaultCapacity); err != nil {
		return nil, err
	}

	return s, nil
}

func From(src string) (*String, error) {
	s, err := New()

	if err != nil {
		return nil, err
	}

	if err = s.AppendString(src); err != nil {
		return nil, err
	}

	return s, nil
}

// FromN returns a String of exactly n bytes: src cut short, or padded with
// spaces.
func FromN(src string, n int) (*String, error) {
	if n < 0 {
		return nil, errors.Wrapf(ErrInvalidSize, "string of %d bytes", n)
	}

	s, err := From(src[:min(len(src), n)])

	if err != nil {
		return nil, err
	}

	if err = s.Resize(n); err != nil {
		return nil, err
	}

	return s, nil
}

// Repeat returns a String of n copies of b.
func Repeat(b byte, n int) (*String, error) {
	s, err := New()

	if err != nil {
		return nil, err
	}

	if err = s.Resize(n, b); err != nil {
		return nil, err
	}

	return s, nil
}

// Concat returns a new String holding a followed by b.
func Concat(a, b *String) (*String, error) {
	s, err := New()

	if err != nil {
		return nil, err
	}

	if err = s.grow(a.Len() + b.Len()); err != nil {
		return nil, err
	}

	if err = s.write(a.buf.Items()); err != nil {
		return nil, err
	}

	if err = s.write(b.buf.Items()); err != nil {
		return nil, err
	}

	return s, nil
}

// Makes room for n bytes and the spare slot.
func (s *String) grow(n int) error {
	if n < s.buf.Cap() {
		return nil
	}

	return s.buf.Reserve(capacityFor(n))
}

// Appends b. Callers reserve room first, so that b may alias the buffer.
func (s *String) write(b []byte) error {
	n := s.buf.Len()

	if err := s.buf.Resize(n + len(b)); err != nil {
		return err
	}

	copy(s.buf.Items()[n:], b)
	return nil
}

func (s *String) Len() int {
	return s.buf.Len()
}

func (s *String) Cap() int {
	return s.buf.Cap()
}

func (s *String) IsEmpty() bool {
	return s.buf.IsEmpty()
}

// Clear empties the string and keeps its capacity.
func (s *String) Clear() {
	s.buf.Clear()
}

func (s *String) At(i int) (byte, error) {
	return s.buf.Get(i)
}

func (s *String) Set(i int, b byte) error {
	return s.buf.Set(i, b)
}

// Resize changes the length to n. New bytes are set to filler, or a space if
// left out.
func (s *String) Resize(n int, filler ...byte) error {
	if n < 0 {
		return errors.Wrapf(ErrInvalidSize, "resize string to %d bytes", n)
	}

	if err := s.grow(n); err != nil {
		return err
	}

	fill := byte(' ')

	if filler != nil {
		fill = filler[0]
	}

	return s.buf.Resize(n, fill)
}

// Append adds the contents of other to the end of s. Appending a string to
// itself doubles it.
func (s *String) Append(other *String) error {
	n := other.Len()

	if err := s.grow(s.Len() + n); err != nil {
		return err
	}

	return s.write(other.buf.Items()[:n])
}

func (s *String) AppendString(src string) error {
	if err := s.grow(s.Len() + len(src)); err != nil {
		return err
	}

	n := s.buf.Len()

	if err := s.buf.Resize(n + len(src)); err != nil {
		return err
	}

	copy(s.buf.Items()[n:], src)
	return nil
}

func (s *String) AppendByte(b byte) error {
	if err := s.grow(s.Len() + 1); err != nil {
		return err
	}

	return s.buf.Append(b)
}

// Compare orders a and b byte-wise, returning -1, 0 or +1.
func Compare(a, b *String) int {
	return bytes.Compare(a.buf.Items(), b.buf.Items())
}

func (s *String) Equal(other *String) bool {
	return Compare(s, other) == 0
}

func (s *String) Less(other *String) bool {
	return Compare(s, other) < 0
}

// Bytes returns the contents. The slice shares the String's buffer and is
// invalidated when the String grows.
func (s *String) Bytes() []byte {
	return s.buf.Items()
}

func (s *String) String() string {
	return string(s.buf.Items())
}

// Close releases the buffer. The String is empty and reusable afterwards.
func (s *String) Close() error {
	return s.buf.Close()
}
