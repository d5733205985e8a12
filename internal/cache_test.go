package internal

import (
	"go/token"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tt "github.com/sasstools/slin/internal/types"
)

func writeStylesheet(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func sampleIssues(filename string) []tt.Issue {
	return []tt.Issue{
		{
			Rule:     "extend-non-placeholder",
			Filename: filename,
			Message:  "@extend targets non-placeholder selector '.btn'",
			Start:    token.Position{Filename: filename, Line: 2, Column: 3},
			End:      token.Position{Filename: filename, Line: 2, Column: 16},
			Severity: tt.SeverityWarning,
		},
	}
}

func TestCacheSetGet(t *testing.T) {
	dir := t.TempDir()
	path := writeStylesheet(t, dir, "a.scss", ".a { @extend .btn; }")

	cache, err := NewCache(filepath.Join(dir, ".slincache"))
	require.NoError(t, err)

	require.NoError(t, cache.Set(path, sampleIssues(path)))

	issues, ok := cache.Get(path)
	require.True(t, ok)
	require.Len(t, issues, 1)
	assert.Equal(t, "extend-non-placeholder", issues[0].Rule)
}

func TestCacheMissForUnknownFile(t *testing.T) {
	dir := t.TempDir()
	cache, err := NewCache(filepath.Join(dir, ".slincache"))
	require.NoError(t, err)

	_, ok := cache.Get(filepath.Join(dir, "never-set.scss"))
	assert.False(t, ok)
}

func TestCacheInvalidatedByContentChange(t *testing.T) {
	dir := t.TempDir()
	path := writeStylesheet(t, dir, "a.scss", ".a { @extend .btn; }")

	cache, err := NewCache(filepath.Join(dir, ".slincache"))
	require.NoError(t, err)
	require.NoError(t, cache.Set(path, sampleIssues(path)))

	// rewrite with different content
	require.NoError(t, os.WriteFile(path, []byte(".a { @extend %btn; }"), 0o644))

	_, ok := cache.Get(path)
	assert.False(t, ok)
}

func TestCachePersistsAcrossInstances(t *testing.T) {
	dir := t.TempDir()
	cacheDir := filepath.Join(dir, ".slincache")
	path := writeStylesheet(t, dir, "a.scss", ".a { @extend .btn; }")

	cache, err := NewCache(cacheDir)
	require.NoError(t, err)
	require.NoError(t, cache.Set(path, sampleIssues(path)))

	reloaded, err := NewCache(cacheDir)
	require.NoError(t, err)

	issues, ok := reloaded.Get(path)
	require.True(t, ok)
	assert.Len(t, issues, 1)
}

func TestCacheMaxAge(t *testing.T) {
	dir := t.TempDir()
	path := writeStylesheet(t, dir, "a.scss", ".a { @extend .btn; }")

	cache, err := NewCache(filepath.Join(dir, ".slincache"))
	require.NoError(t, err)
	require.NoError(t, cache.Set(path, sampleIssues(path)))

	// entries created in the past expire once maxAge is set
	cache.SetMaxAge(time.Nanosecond)
	time.Sleep(time.Millisecond)

	_, ok := cache.Get(path)
	assert.False(t, ok)

	// a zero maxAge never expires entries by age
	require.NoError(t, cache.Set(path, sampleIssues(path)))
	cache.SetMaxAge(0)
	_, ok = cache.Get(path)
	assert.True(t, ok)
}

func TestCacheInvalidateAll(t *testing.T) {
	dir := t.TempDir()
	path := writeStylesheet(t, dir, "a.scss", ".a { @extend .btn; }")

	cache, err := NewCache(filepath.Join(dir, ".slincache"))
	require.NoError(t, err)
	require.NoError(t, cache.Set(path, sampleIssues(path)))

	cache.InvalidateAll()

	_, ok := cache.Get(path)
	assert.False(t, ok)
}
