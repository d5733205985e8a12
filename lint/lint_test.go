package lint

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tt "github.com/sasstools/slin/internal/types"
)

func TestNewWithMissingConfig(t *testing.T) {
	engine, err := New("", filepath.Join(t.TempDir(), "no-such.yaml"))
	require.NoError(t, err)
	require.NotNil(t, engine)
}

func TestNewWithConfig(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, ".slin.yaml")
	cfg := `name: slin
rules:
  extend-non-placeholder:
    severity: off
  extend-high-fanout:
    severity: warning
    threshold: 1
`
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0o644))

	engine, err := New("", cfgPath)
	require.NoError(t, err)

	issues, err := engine.RunSource([]byte(`.btn { color: red; }
nav .btn { margin: 0; }
.alert { @extend .btn; }
`))
	require.NoError(t, err)

	rules := make(map[string]bool)
	for _, issue := range issues {
		rules[issue.Rule] = true
	}
	assert.False(t, rules["extend-non-placeholder"], "disabled by config")
	assert.True(t, rules["extend-high-fanout"], "threshold lowered by config")
}

func TestConfigEntryWithoutSeverityDisablesRule(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, ".slin.yaml")
	// severity omitted: the zero value is "off"
	require.NoError(t, os.WriteFile(cfgPath, []byte(`name: slin
rules:
  extend-non-placeholder:
    threshold: 5
`), 0o644))

	engine, err := New("", cfgPath)
	require.NoError(t, err)

	issues, err := engine.RunSource([]byte(".btn { color: red; }\n.a { @extend .btn; }\n"))
	require.NoError(t, err)
	for _, issue := range issues {
		assert.NotEqual(t, "extend-non-placeholder", issue.Rule)
	}
}

func TestParseConfigurationFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, ".slin.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`name: slin
rules:
  extend-missing-target:
    severity: error
`), 0o644))

	config, err := parseConfigurationFile(cfgPath)
	require.NoError(t, err)
	assert.Equal(t, "slin", config.Name)
	require.Contains(t, config.Rules, "extend-missing-target")
	assert.Equal(t, tt.SeverityError, config.Rules["extend-missing-target"].Severity)
}

func TestParseConfigurationFileBadSeverity(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, ".slin.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`rules:
  extend-missing-target:
    severity: loud
`), 0o644))

	_, err := parseConfigurationFile(cfgPath)
	assert.Error(t, err)
}

func TestProcessSources(t *testing.T) {
	engine, err := New("", "")
	require.NoError(t, err)

	sources := [][]byte{
		[]byte(".btn { color: red; }\n.a { @extend .btn; }"),
		[]byte("%base { color: red; }\n.b { @extend %base; }"),
	}

	issues, err := ProcessSources(context.Background(), nil, engine, sources, ProcessSource)
	require.NoError(t, err)
	require.NotEmpty(t, issues)

	for _, issue := range issues {
		assert.NotEqual(t, "extend-missing-target", issue.Rule)
	}
}

func TestProcessFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.scss")
	require.NoError(t, os.WriteFile(path, []byte(".btn { color: red; }\n.a { @extend .btn; }\n"), 0o644))

	engine, err := New("", "")
	require.NoError(t, err)

	issues, err := ProcessFile(engine, path)
	require.NoError(t, err)
	require.NotEmpty(t, issues)
	assert.Equal(t, path, issues[0].Filename)
}

func TestProcessPathSkipsOtherExtensions(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "readme.txt"), []byte("not scss"), 0o644))
	path := filepath.Join(dir, "readme.txt")

	engine, err := New("", "")
	require.NoError(t, err)

	issues, err := ProcessPath(context.Background(), nil, engine, path, ProcessFile)
	require.NoError(t, err)
	assert.Empty(t, issues)
}

func TestProcessPathKeepsResultsWhenAFileFails(t *testing.T) {
	dir := t.TempDir()
	// sorts (and is usually dispatched) before the good file
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a_broken.scss"), []byte(".broken {"), 0o644))
	goodPath := filepath.Join(dir, "b_good.scss")
	require.NoError(t, os.WriteFile(goodPath, []byte(".btn { color: red; }\n.a { @extend .btn; }\n"), 0o644))

	engine, err := New("", "")
	require.NoError(t, err)

	issues, err := ProcessPath(context.Background(), nil, engine, dir, ProcessFile)
	require.NoError(t, err)

	var fromGoodFile int
	for _, issue := range issues {
		if issue.Filename == goodPath {
			fromGoodFile++
		}
	}
	assert.Greater(t, fromGoodFile, 0, "findings of parseable files survive a neighbor's parse error")
}

func TestProcessFanout(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.scss")
	src := `.btn { color: red; }
a.btn:hover { color: blue; }
nav .btn { margin: 0; }
.sidebar .btn { padding: 4px; }
.alert { @extend .btn; }
`
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))

	issues, err := ProcessFanout(path, 3)
	require.NoError(t, err)
	require.Len(t, issues, 1)
	assert.Equal(t, "extend-high-fanout", issues[0].Rule)

	issues, err = ProcessFanout(path, 10)
	require.NoError(t, err)
	assert.Empty(t, issues)
}

func TestHasDesiredExtension(t *testing.T) {
	assert.True(t, hasDesiredExtension("a.scss"))
	assert.True(t, hasDesiredExtension("a.css"))
	assert.False(t, hasDesiredExtension("a.sass"))
	assert.False(t, hasDesiredExtension("a"))
}
