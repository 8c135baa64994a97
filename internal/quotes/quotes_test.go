package quotes

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger(buf *bytes.Buffer) *log.Logger {
	return log.New(buf)
}

func writeQuotesFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "quotes.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeQuotesFile(t, `{"snark": ["S1", "S2"], "it_crowd": ["I1"]}`)

	var buf bytes.Buffer
	c := Load(path, testLogger(&buf))

	require.Equal(t, []string{"S1", "S2"}, c[CategorySnark])
	require.Equal(t, []string{"I1"}, c[CategoryITCrowd])
	assert.Empty(t, buf.String())
}

func TestLoadMissingFile(t *testing.T) {
	var buf bytes.Buffer
	c := Load(filepath.Join(t.TempDir(), "nope.json"), testLogger(&buf))

	// Degraded catalog still has both categories present, just empty.
	require.Contains(t, c, CategorySnark)
	require.Contains(t, c, CategoryITCrowd)
	assert.Empty(t, c[CategorySnark])
	assert.Empty(t, c[CategoryITCrowd])
	assert.Contains(t, buf.String(), "missing")
}

func TestLoadInvalidJSON(t *testing.T) {
	path := writeQuotesFile(t, "not-json")

	var buf bytes.Buffer
	c := Load(path, testLogger(&buf))

	require.Contains(t, c, CategorySnark)
	require.Contains(t, c, CategoryITCrowd)
	assert.Empty(t, c[CategorySnark])
	assert.Empty(t, c[CategoryITCrowd])
	assert.Contains(t, buf.String(), "invalid JSON")
}

func TestPickSnarkBranch(t *testing.T) {
	c := Catalog{
		CategorySnark:   {"S1", "S2", "S3"},
		CategoryITCrowd: {"I1"},
	}

	for _, roll := range []float64{0, 0.5, 0.7499} {
		got := c.Pick(roll)
		assert.Contains(t, c[CategorySnark], got, "roll %v should draw from snark", roll)
	}
}

func TestPickITCrowdBranch(t *testing.T) {
	c := Catalog{
		CategorySnark:   {"S1"},
		CategoryITCrowd: {"I1", "I2"},
	}

	for _, roll := range []float64{0.75, 0.9, 0.99} {
		got := c.Pick(roll)
		assert.Contains(t, c[CategoryITCrowd], got, "roll %v should draw from it_crowd", roll)
	}
}

func TestPickFallbacks(t *testing.T) {
	// Missing categories entirely.
	c := Catalog{}

	assert.Equal(t, SnarkFallback, c.Pick(0))
	assert.Equal(t, ITCrowdFallback, c.Pick(0.99))

	// Present but empty behaves the same.
	c = Catalog{CategorySnark: {}, CategoryITCrowd: {}}
	assert.Equal(t, SnarkFallback, c.Pick(0))
	assert.Equal(t, ITCrowdFallback, c.Pick(0.99))
}

func TestRandomDrawsFromCatalog(t *testing.T) {
	c := Catalog{
		CategorySnark:   {"S1", "S2"},
		CategoryITCrowd: {"I1", "I2"},
	}

	all := append(append([]string{}, c[CategorySnark]...), c[CategoryITCrowd]...)
	for i := 0; i < 100; i++ {
		assert.Contains(t, all, c.Random())
	}
}
