package words

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	in := []string{
		"crane",
		"CRANE",    // duplicate after lowercasing
		"  slimy ", // whitespace
		"Metro",
		"toolong",
		"tiny",
		"cr4ne", // non-alphabetic
		"",
	}
	assert.Equal(t, []string{"crane", "slimy", "metro"}, Normalize(in))
}

func TestNormalizePreservesOrder(t *testing.T) {
	in := []string{"zesty", "abide", "zesty", "crane"}
	assert.Equal(t, []string{"zesty", "abide", "crane"}, Normalize(in))
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corpus.txt")
	body := "crane\nCRANE\nslimy\n# not a word\nmetro\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	list, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"crane", "slimy", "metro"}, list)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}

func TestInitEmbeddedCorpus(t *testing.T) {
	require.NoError(t, Init())
	assert.Greater(t, Stats(), 0)
	assert.True(t, IsWord("crane"))
	assert.True(t, IsWord("CRANE"))
	assert.False(t, IsWord("zzzzz"))
}

func TestCorpusReturnsCopy(t *testing.T) {
	require.NoError(t, Init())
	a := Corpus()
	require.NotEmpty(t, a)
	a[0] = "mutated"
	b := Corpus()
	assert.NotEqual(t, "mutated", b[0])
}
