package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	root := NewRootCommand()
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func writeConfig(t *testing.T) string {
	path := filepath.Join(t.TempDir(), "hashids.yaml")
	content := `hashids:
  defaults:
    salt: cli-salt
    length: 8
    separator: "-"
  entities:
    invoices:
      prefix: inv
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestEncodeDecode(t *testing.T) {
	os.Clearenv()
	path := writeConfig(t)

	out, err := execute(t, "encode", "-c", path, "1", "2", "3")
	require.NoError(t, err)
	hashes := strings.Fields(out)
	require.Len(t, hashes, 3)
	for _, hash := range hashes {
		assert.Len(t, hash, 8)
	}

	out, err = execute(t, append([]string{"decode", "-c", path}, hashes...)...)
	require.NoError(t, err)
	assert.Equal(t, "1\n2\n3\n", out)
}

func TestEncode_Entity(t *testing.T) {
	os.Clearenv()
	path := writeConfig(t)
	out, err := execute(t, "encode", "-c", path, "--entity", "invoices", "5")
	require.NoError(t, err)
	hash := strings.TrimSpace(out)
	assert.True(t, strings.HasPrefix(hash, "inv-"))

	out, err = execute(t, "decode", "-c", path, "-e", "invoices", hash)
	require.NoError(t, err)
	assert.Equal(t, "5\n", out)
}

func TestEncode_Env(t *testing.T) {
	os.Clearenv()
	_ = os.Setenv("HASHID_SALT", "env-salt")
	_ = os.Setenv("HASHID_LENGTH", "12")
	out, err := execute(t, "encode", "42")
	require.NoError(t, err)
	assert.Len(t, strings.TrimSpace(out), 12)
}

func TestErrors(t *testing.T) {
	os.Clearenv()
	tests := []struct {
		name string
		args []string
	}{
		{name: "non-numeric id", args: []string{"encode", "abc"}},
		{name: "negative id", args: []string{"encode", "-1"}},
		{name: "invalid hashid", args: []string{"decode", "ab!c"}},
		{name: "missing args", args: []string{"encode"}},
		{name: "missing config", args: []string{"encode", "-c", "nonexistent.yaml", "1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			assert.Error(t, err)
		})
	}
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "hashid version dev")
}
