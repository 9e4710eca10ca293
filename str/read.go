package str

import (
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
)

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}

	return false
}

// ReadWord replaces the contents of s with the next whitespace-delimited word
// of r. Leading whitespace is skipped, and the whitespace ending the word is
// unread. io.EOF is returned only if r ends before a word starts.
func (s *String) ReadWord(r io.ByteScanner) error {
	s.Clear()

	for {
		b, err := r.ReadByte()

		if err != nil {
			return readErr(err, s.Len())
		}

		if isSpace(b) {
			if s.Len() == 0 {
				continue
			}

			return r.UnreadByte()
		}

		if err = s.AppendByte(b); err != nil {
			return err
		}
	}
}

// ReadLine replaces the contents of s with the bytes of r up to delim. The
// delimiter is consumed but not stored. io.EOF is returned only if r is
// already exhausted.
func (s *String) ReadLine(r io.ByteReader, delim byte) error {
	s.Clear()

	for n := 0; ; n++ {
		b, err := r.ReadByte()

		if err != nil {
			return readErr(err, n)
		}

		if b == delim {
			return nil
		}

		if err = s.AppendByte(b); err != nil {
			return err
		}
	}
}

// End of input after n bytes is only an error when nothing was read.
func readErr(err error, n int) error {
	if err == io.EOF {
		if n == 0 {
			return io.EOF
		}

		return nil
	}

	return errors.Wrap(err, "read string")
}

var _ fmt.Scanner = (*String)(nil)

// Scan reads a whitespace-delimited word, for use with fmt.Fscan and friends.
func (s *String) Scan(state fmt.ScanState, _ rune) error {
	tok, err := state.Token(true, nil)

	if err != nil {
		return err
	}

	s.Clear()

	if len(tok) == 0 {
		return io.EOF
	}

	if err = s.grow(len(tok)); err != nil {
		return err
	}

	return s.write(tok)
}
