package hashid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name      string
		hash      string
		prefix    string
		suffix    string
		separator string
		want      string
	}{
		{name: "no decoration", hash: "abc", separator: "-", want: "abc"},
		{name: "prefix only", hash: "abc", prefix: "user", separator: "-", want: "user-abc"},
		{name: "suffix only", hash: "abc", suffix: "v1", separator: "-", want: "abc-v1"},
		{name: "both", hash: "abc", prefix: "custom", suffix: "v1", separator: "_", want: "custom_abc_v1"},
		{name: "empty separator", hash: "abc", prefix: "p", suffix: "s", separator: "", want: "pabcs"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.hash, tt.prefix, tt.suffix, tt.separator))
		})
	}
}

func TestUnformat(t *testing.T) {
	tests := []struct {
		name      string
		s         string
		prefix    string
		suffix    string
		separator string
		want      string
	}{
		{name: "no decoration configured", s: "-abc-", separator: "-", want: "-abc-"},
		{name: "both", s: "custom_abc_v1", prefix: "custom", suffix: "v1", separator: "_", want: "abc"},
		{name: "separator inside hash", s: "custom_ab_cd_v1", prefix: "custom", suffix: "v1", separator: "_", want: "ab_cd"},
		{name: "prefix without separator", s: "customabc", prefix: "custom", separator: "_", want: "customabc"},
		{name: "missing prefix", s: "abc_v1", prefix: "custom", suffix: "v1", separator: "_", want: "abc"},
		{name: "missing suffix", s: "custom_abc", prefix: "custom", suffix: "v1", separator: "_", want: "abc"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Unformat(tt.s, tt.prefix, tt.suffix, tt.separator))
		})
	}
}

func TestFormat_RoundTrip(t *testing.T) {
	hashes := []string{"", "a", "abc", "a-b", "--", "v1", "custom"}
	decorations := []struct{ prefix, suffix, separator string }{
		{"custom", "v1", "_"},
		{"a", "a", "-"},
		{"user", "x", ""},
		{"p-", "-s", "-"},
	}
	for _, h := range hashes {
		for _, d := range decorations {
			formatted := Format(h, d.prefix, d.suffix, d.separator)
			assert.Equal(t, h, Unformat(formatted, d.prefix, d.suffix, d.separator), "formatted %q", formatted)
		}
	}
}

func TestFormat_EncodedEntity(t *testing.T) {
	e := NewEncoder(testSalt, 8, "")
	hashid := Format(e.Encode(5), "custom", "v1", "_")
	assert.True(t, len(hashid) >= len("custom_")+8+len("_v1"))
	assert.Equal(t, "custom_", hashid[:len("custom_")])
	assert.Equal(t, "_v1", hashid[len(hashid)-len("_v1"):])

	id, ok := e.Decode(Unformat(hashid, "custom", "v1", "_"))
	assert.True(t, ok)
	assert.Equal(t, int64(5), id)
}
