package config

import (
	"unicode"

	"github.com/danilovkiri/dk_go_hashids/internal/hashid"
)

// MinAlphabetLength is the least number of unique characters a hashid alphabet may hold.
const MinAlphabetLength = 16

// Bundle holds the parameters hashids of one entity are encoded with.
type Bundle struct {
	// Salt shuffles the alphabet and derives padding.
	// WARNING: changing it invalidates every hashid issued so far.
	Salt      string `yaml:"salt" json:"salt" env:"HASHID_SALT,APP_KEY"`
	Length    int    `yaml:"length" json:"length" env:"HASHID_LENGTH" env-default:"16"`
	Alphabet  string `yaml:"alphabet" json:"alphabet" env:"HASHID_ALPHABET" env-default:"abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"`
	Prefix    string `yaml:"prefix" json:"prefix" env:"HASHID_PREFIX"`
	Suffix    string `yaml:"suffix" json:"suffix" env:"HASHID_SUFFIX"`
	Separator string `yaml:"separator" json:"separator" env:"HASHID_SEPARATOR" env-default:"-"`
	Algorithm string `yaml:"algorithm" json:"algorithm" env:"HASHID_ALGORITHM" env-default:"classic"`
}

// Override holds per-entity values; nil fields fall back to the defaults.
type Override struct {
	Salt      *string `yaml:"salt" json:"salt"`
	Length    *int    `yaml:"length" json:"length"`
	Alphabet  *string `yaml:"alphabet" json:"alphabet"`
	Prefix    *string `yaml:"prefix" json:"prefix"`
	Suffix    *string `yaml:"suffix" json:"suffix"`
	Separator *string `yaml:"separator" json:"separator"`
	Algorithm *string `yaml:"algorithm" json:"algorithm"`
}

// HashidConfig holds the default bundle and per-entity overrides.
type HashidConfig struct {
	Defaults Bundle              `yaml:"defaults" json:"defaults"`
	Entities map[string]Override `yaml:"entities" json:"entities"`
}

// Resolve returns b with every field set in o replaced.
func (b Bundle) Resolve(o *Override) Bundle {
	if o == nil {
		return b
	}
	if o.Salt != nil {
		b.Salt = *o.Salt
	}
	if o.Length != nil {
		b.Length = *o.Length
	}
	if o.Alphabet != nil {
		b.Alphabet = *o.Alphabet
	}
	if o.Prefix != nil {
		b.Prefix = *o.Prefix
	}
	if o.Suffix != nil {
		b.Suffix = *o.Suffix
	}
	if o.Separator != nil {
		b.Separator = *o.Separator
	}
	if o.Algorithm != nil {
		b.Algorithm = *o.Algorithm
	}
	return b
}

// Validate checks the alphabet and the algorithm before an encoder is built from the bundle.
func (b Bundle) Validate() error {
	alphabet := b.Alphabet
	if alphabet == "" {
		alphabet = hashid.DefaultAlphabet
	}
	seen := make(map[byte]bool, len(alphabet))
	for i := 0; i < len(alphabet); i++ {
		c := alphabet[i]
		if c > unicode.MaxASCII {
			return &AlphabetError{Alphabet: alphabet, Reason: "contains non-ASCII characters"}
		}
		if unicode.IsSpace(rune(c)) {
			return &AlphabetError{Alphabet: alphabet, Reason: "contains whitespace"}
		}
		if seen[c] {
			return &AlphabetError{Alphabet: alphabet, Reason: "contains duplicate characters"}
		}
		seen[c] = true
	}
	if len(seen) < MinAlphabetLength {
		return &AlphabetError{Alphabet: alphabet, Reason: "must contain at least 16 unique characters"}
	}
	switch b.Algorithm {
	case "", hashid.AlgorithmClassic, hashid.AlgorithmHashids, hashid.AlgorithmSqids:
		return nil
	default:
		return &AlgorithmError{Algorithm: b.Algorithm}
	}
}

// CodecOptions converts the bundle into hashid codec options.
func (b Bundle) CodecOptions() hashid.Options {
	return hashid.Options{
		Algorithm: b.Algorithm,
		Salt:      b.Salt,
		MinLength: b.Length,
		Alphabet:  b.Alphabet,
	}
}

// For returns the bundle for entity, merging its override over the defaults.
func (h HashidConfig) For(entity string) Bundle {
	o, ok := h.Entities[entity]
	if !ok {
		return h.Defaults
	}
	return h.Defaults.Resolve(&o)
}
