package hashid

import (
	"math"

	"github.com/speps/go-hashids/v2"
	"github.com/sqids/sqids-go"
)

// Algorithm names accepted by NewCodec.
const (
	AlgorithmClassic = "classic"
	AlgorithmHashids = "hashids"
	AlgorithmSqids   = "sqids"
)

// Codec defines a set of methods for types converting integer IDs to hashids and back.
type Codec interface {
	Encode(id int64) string
	Decode(hash string) (int64, bool)
}

// Options holds the parameters a Codec is built from.
type Options struct {
	Algorithm string
	Salt      string
	MinLength int
	Alphabet  string
}

// NewCodec builds the Codec selected by opts.Algorithm. An empty algorithm selects the classic
// Encoder.
func NewCodec(opts Options) (Codec, error) {
	switch opts.Algorithm {
	case "", AlgorithmClassic:
		return NewEncoder(opts.Salt, opts.MinLength, opts.Alphabet), nil
	case AlgorithmHashids:
		return newHashidsCodec(opts)
	case AlgorithmSqids:
		return newSqidsCodec(opts)
	default:
		return nil, &UnknownAlgorithmError{Algorithm: opts.Algorithm}
	}
}

// hashidsCodec encodes single IDs with the hashids.org algorithm.
type hashidsCodec struct {
	hashID *hashids.HashID
}

func newHashidsCodec(opts Options) (*hashidsCodec, error) {
	hd := hashids.NewData()
	hd.Salt = opts.Salt
	hd.MinLength = opts.MinLength
	if opts.Alphabet != "" {
		hd.Alphabet = opts.Alphabet
	}
	hashID, err := hashids.NewWithData(hd)
	if err != nil {
		return nil, err
	}
	return &hashidsCodec{hashID: hashID}, nil
}

func (c *hashidsCodec) Encode(id int64) string {
	if id < 0 {
		return ""
	}
	hash, err := c.hashID.EncodeInt64([]int64{id})
	if err != nil {
		return ""
	}
	return hash
}

func (c *hashidsCodec) Decode(hash string) (int64, bool) {
	if hash == "" {
		return 0, false
	}
	ids, err := c.hashID.DecodeInt64WithError(hash)
	if err != nil || len(ids) != 1 {
		return 0, false
	}
	return ids[0], true
}

// sqidsCodec encodes single IDs with the Sqids algorithm over the salt-permuted alphabet.
type sqidsCodec struct {
	sqids *sqids.Sqids
}

func newSqidsCodec(opts Options) (*sqidsCodec, error) {
	alphabet := opts.Alphabet
	if alphabet == "" {
		alphabet = DefaultAlphabet
	}
	minLength := opts.MinLength
	if minLength > math.MaxUint8 {
		minLength = math.MaxUint8
	}
	if minLength < 0 {
		minLength = 0
	}
	s, err := sqids.New(sqids.Options{
		Alphabet:  shuffle(alphabet, opts.Salt),
		MinLength: uint8(minLength),
	})
	if err != nil {
		return nil, err
	}
	return &sqidsCodec{sqids: s}, nil
}

func (c *sqidsCodec) Encode(id int64) string {
	if id < 0 {
		return ""
	}
	hash, err := c.sqids.Encode([]uint64{uint64(id)})
	if err != nil {
		return ""
	}
	return hash
}

func (c *sqidsCodec) Decode(hash string) (int64, bool) {
	if hash == "" {
		return 0, false
	}
	ids := c.sqids.Decode(hash)
	if len(ids) != 1 || ids[0] > math.MaxInt64 {
		return 0, false
	}
	// several strings decode to the same number, only the canonical one is accepted
	canonical, err := c.sqids.Encode(ids)
	if err != nil || canonical != hash {
		return 0, false
	}
	return int64(ids[0]), true
}
