package hashid

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCodec(t *testing.T) {
	for _, algorithm := range []string{"", AlgorithmClassic, AlgorithmHashids, AlgorithmSqids} {
		t.Run("algorithm "+algorithm, func(t *testing.T) {
			codec, err := NewCodec(Options{Algorithm: algorithm, Salt: testSalt, MinLength: 16})
			require.NoError(t, err)
			encoder, isClassic := codec.(*Encoder)
			if isClassic {
				for id := int64(0); id < 1000; id++ {
					if ambiguous(encoder, id) {
						continue
					}
					got, ok := codec.Decode(codec.Encode(id))
					assert.True(t, ok)
					assert.Equal(t, id, got)
				}
				return
			}
			for id := int64(0); id < 1000; id++ {
				hash := codec.Encode(id)
				assert.GreaterOrEqual(t, len(hash), 16)
				got, ok := codec.Decode(hash)
				assert.True(t, ok, "id %d hash %q", id, hash)
				assert.Equal(t, id, got)
			}
			assert.Equal(t, "", codec.Encode(-1))
			_, ok := codec.Decode("")
			assert.False(t, ok)
			_, ok = codec.Decode("!!!!")
			assert.False(t, ok)
		})
	}
}

func TestNewCodec_UnknownAlgorithm(t *testing.T) {
	_, err := NewCodec(Options{Algorithm: "base64"})
	var algErr *UnknownAlgorithmError
	require.True(t, errors.As(err, &algErr))
	assert.Equal(t, "base64", algErr.Algorithm)
}

func TestNewCodec_SaltDependent(t *testing.T) {
	for _, algorithm := range []string{AlgorithmHashids, AlgorithmSqids} {
		a, err := NewCodec(Options{Algorithm: algorithm, Salt: testSalt, MinLength: 8})
		require.NoError(t, err)
		b, err := NewCodec(Options{Algorithm: algorithm, Salt: "another salt", MinLength: 8})
		require.NoError(t, err)
		var encodedA, encodedB []string
		for id := int64(0); id < 50; id++ {
			encodedA = append(encodedA, a.Encode(id))
			encodedB = append(encodedB, b.Encode(id))
		}
		assert.NotEqual(t, encodedA, encodedB, algorithm)
	}
}
