package config

import "fmt"

type (
	// AlphabetError defines an alphabet that cannot be used for encoding.
	AlphabetError struct {
		Alphabet string
		Reason   string
	}
	// AlgorithmError defines an unknown encoding algorithm name.
	AlgorithmError struct {
		Algorithm string
	}
)

func (e *AlphabetError) Error() string {
	return fmt.Sprintf("invalid hashid alphabet %q: %s", e.Alphabet, e.Reason)
}

func (e *AlgorithmError) Error() string {
	return fmt.Sprintf("unsupported hashid algorithm %q", e.Algorithm)
}
