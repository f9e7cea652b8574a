package hashid

import "strings"

// Format decorates hash with an optional prefix and suffix, each joined by separator.
func Format(hash, prefix, suffix, separator string) string {
	result := hash
	if prefix != "" {
		result = prefix + separator + result
	}
	if suffix != "" {
		result = result + separator + suffix
	}
	return result
}

// Unformat removes the decoration added by Format. Only an exact leading prefix+separator and an
// exact trailing separator+suffix are removed, so separators inside the hash are left alone.
func Unformat(s, prefix, suffix, separator string) string {
	result := s
	if prefix != "" {
		result = strings.TrimPrefix(result, prefix+separator)
	}
	if suffix != "" {
		result = strings.TrimSuffix(result, separator+suffix)
	}
	return result
}
