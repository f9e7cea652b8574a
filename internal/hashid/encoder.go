// Package hashid provides reversible, salt-dependent string identifiers for integer keys.
package hashid

import (
	"math"
	"strings"
)

// DefaultAlphabet is used when no alphabet is configured.
const DefaultAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// emptySaltByte stands in for salt[0] when padding with an empty salt.
const emptySaltByte = 'a'

// Check interface implementation explicitly
var (
	_ Codec = (*Encoder)(nil)
)

// Encoder converts non-negative integers to strings over a salt-permuted alphabet and back.
// An Encoder is immutable after construction and safe for concurrent use.
type Encoder struct {
	alphabet  string
	minLength int
	salt      string
}

// NewEncoder initializes an Encoder. An empty alphabet selects DefaultAlphabet and minLength is
// clamped to at least 1. The alphabet is assumed to hold unique single-byte characters.
func NewEncoder(salt string, minLength int, alphabet string) *Encoder {
	if alphabet == "" {
		alphabet = DefaultAlphabet
	}
	if minLength < 1 {
		minLength = 1
	}
	return &Encoder{
		alphabet:  shuffle(alphabet, salt),
		minLength: minLength,
		salt:      salt,
	}
}

// Alphabet returns the permuted alphabet.
func (e *Encoder) Alphabet() string {
	return e.alphabet
}

// MinLength returns the minimum length of encoded values.
func (e *Encoder) MinLength() int {
	return e.minLength
}

// Encode returns the hashid for id, or an empty string for a negative id.
func (e *Encoder) Encode(id int64) string {
	if id < 0 {
		return ""
	}
	digits := e.digits(id)
	if len(digits) >= e.minLength {
		return string(digits)
	}
	// padding is prepended, so collect it in reverse
	hash := make([]byte, e.minLength)
	pos := e.minLength - len(digits)
	copy(hash[pos:], digits)
	for length := len(digits); length < e.minLength; length++ {
		pos--
		hash[pos] = e.padChar(length)
	}
	return string(hash)
}

// Decode returns the id encoded in hash. The second value is false for an empty hash, for a hash
// holding characters outside the alphabet, and for values that do not fit into int64.
func (e *Encoder) Decode(hash string) (int64, bool) {
	id, err := e.DecodeWithError(hash)
	if err != nil {
		return 0, false
	}
	return id, true
}

// DecodeWithError works like Decode but reports why a hash could not be decoded.
func (e *Encoder) DecodeWithError(hash string) (int64, error) {
	if hash == "" {
		return 0, ErrEmptyInput
	}
	body := e.depad(hash)
	if body == "" {
		return 0, nil
	}
	base := int64(len(e.alphabet))
	offset := len(hash) - len(body)
	var id int64
	for i := 0; i < len(body); i++ {
		pos := strings.IndexByte(e.alphabet, body[i])
		if pos < 0 {
			return 0, &InvalidCharacterError{Char: body[i], Position: offset + i}
		}
		if id > (math.MaxInt64-int64(pos))/base {
			return 0, ErrOverflow
		}
		id = id*base + int64(pos)
	}
	return id, nil
}

// digits returns the base-N representation of id, most significant digit first.
func (e *Encoder) digits(id int64) []byte {
	base := int64(len(e.alphabet))
	var reversed []byte
	for {
		reversed = append(reversed, e.alphabet[id%base])
		id /= base
		if id == 0 {
			break
		}
	}
	for i, j := 0, len(reversed)-1; i < j; i, j = i+1, j-1 {
		reversed[i], reversed[j] = reversed[j], reversed[i]
	}
	return reversed
}

// padChar returns the character prepended to a hash that is length characters long.
func (e *Encoder) padChar(length int) byte {
	var saltByte byte = emptySaltByte
	if len(e.salt) > 0 {
		saltByte = e.salt[length%len(e.salt)]
	}
	return e.alphabet[(int(saltByte)+length)%len(e.alphabet)]
}

// depad strips leading characters matching the padding Encode would have added at each length.
// A single remaining character is never stripped.
func (e *Encoder) depad(hash string) string {
	for len(hash) > 1 {
		if hash[0] != e.padChar(len(hash)-1) {
			break
		}
		hash = hash[1:]
	}
	return hash
}

// shuffle permutes alphabet with a salt-driven Fisher-Yates pass. Existing hashids depend on the
// exact arithmetic here.
func shuffle(alphabet string, salt string) string {
	if salt == "" {
		return alphabet
	}
	chars := []byte(alphabet)
	for i, v, p := len(chars)-1, 0, 0; i > 0; i, v = i-1, v+1 {
		v %= len(salt)
		saltVal := int(salt[v])
		p += saltVal
		j := (saltVal + v + p) % i
		chars[i], chars[j] = chars[j], chars[i]
	}
	return string(chars)
}
