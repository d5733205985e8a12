package scanner

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectScanner(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "test")
	require.NoError(t, err)
	defer os.RemoveAll(tempDir)

	files := map[string]string{
		"main.scss":            "%btn { color: red; }",
		"legacy.css":           ".btn { color: red; }",
		"notes.txt":            "not a stylesheet",
		"components/card.scss": ".card { @extend %btn; }",
	}

	for path, content := range files {
		fullPath := filepath.Join(tempDir, path)
		err := os.MkdirAll(filepath.Dir(fullPath), 0o755)
		require.NoError(t, err)
		err = os.WriteFile(fullPath, []byte(content), 0o644)
		require.NoError(t, err)
	}

	scanner := New(tempDir)
	scannedFiles, err := scanner.Scan()
	require.NoError(t, err)

	assert.Equal(t, 3, len(scannedFiles), "Should find 3 stylesheet files")

	foundPaths := make(map[string]bool)
	for _, file := range scannedFiles {
		foundPaths[file.Path] = true
		assert.Greater(t, file.Size, int64(0), "File size should be greater than 0")
	}

	assert.True(t, foundPaths[filepath.Join(tempDir, "main.scss")], "Should find main.scss")
	assert.True(t, foundPaths[filepath.Join(tempDir, "legacy.css")], "Should find legacy.css")
	assert.True(t, foundPaths[filepath.Join(tempDir, "components/card.scss")], "Should find components/card.scss")
	assert.False(t, foundPaths[filepath.Join(tempDir, "notes.txt")], "Should not find notes.txt")
}

func TestProjectScannerExplicitExtensions(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "test")
	require.NoError(t, err)
	defer os.RemoveAll(tempDir)

	for name, content := range map[string]string{
		"a.scss": "%a { color: red; }",
		"b.css":  ".b { color: red; }",
	} {
		err := os.WriteFile(filepath.Join(tempDir, name), []byte(content), 0o644)
		require.NoError(t, err)
	}

	scanner := New(tempDir, ".scss")
	scannedFiles, err := scanner.Scan()
	require.NoError(t, err)

	require.Len(t, scannedFiles, 1)
	assert.Equal(t, filepath.Join(tempDir, "a.scss"), scannedFiles[0].Path)
}
