package hashid

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput is reported when decoding an empty string.
	ErrEmptyInput = errors.New("empty hashid")
	// ErrOverflow is reported when a decoded value does not fit into int64.
	ErrOverflow = errors.New("hashid value overflows int64")
)

type (
	// InvalidCharacterError is reported when a hashid holds a character outside the alphabet.
	InvalidCharacterError struct {
		Char     byte
		Position int
	}
	// UnknownAlgorithmError is reported by NewCodec for an unsupported algorithm name.
	UnknownAlgorithmError struct {
		Algorithm string
	}
)

func (e *InvalidCharacterError) Error() string {
	return fmt.Sprintf("invalid hashid character %q at position %d", e.Char, e.Position)
}

func (e *UnknownAlgorithmError) Error() string {
	return fmt.Sprintf("unknown hashid algorithm %q", e.Algorithm)
}
