package lints

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sasstools/slin/internal/sass"
)

// parseSource parses a snippet for the rule tests.
func parseSource(t *testing.T, src string) *sass.File {
	t.Helper()
	f, err := sass.Parse("test.scss", []byte(src))
	require.NoError(t, err)
	return f
}

func TestBuildSelectorIndex(t *testing.T) {
	f := parseSource(t, `
%base { color: red; }
.btn, a.btn:hover { color: blue; }
.card { @extend %base; }`)

	ix := buildSelectorIndex(f)

	require.Len(t, ix.bySimple["%base"], 1)
	require.Len(t, ix.bySimple[".btn"], 2, "one occurrence per selector group")
	require.Len(t, ix.bySimple[".card"], 1)
	require.Len(t, ix.extends, 1)
	require.False(t, ix.interpolated)
}

func TestMatchGroups(t *testing.T) {
	f := parseSource(t, `
.btn { color: red; }
a.btn:hover { color: blue; }
nav .btn { margin: 0; }
.unrelated { color: green; }
.x { @extend .btn; }`)

	ix := buildSelectorIndex(f)
	require.Len(t, ix.extends, 1)

	matched := ix.matchGroups(ix.extends[0].Extend.Target)
	require.Len(t, matched, 3)
}

func TestMatchGroupsUsesRarestSimple(t *testing.T) {
	f := parseSource(t, `
.btn { color: red; }
.btn.primary { color: blue; }
nav .btn { margin: 0; }
.btn.rare.primary { color: green; }
.x { @extend .btn.rare; }`)

	ix := buildSelectorIndex(f)
	require.Greater(t, len(ix.bySimple[".btn"]), len(ix.bySimple[".rare"]))

	matched := ix.matchGroups(ix.extends[0].Extend.Target)
	require.Len(t, matched, 1)
	require.Equal(t, ".btn.rare.primary", matched[0].group.Raw)
}

func TestMatchGroupsCompoundTarget(t *testing.T) {
	f := parseSource(t, `
a.btn { color: red; }
.btn { color: blue; }
.x { @extend a.btn; }`)

	ix := buildSelectorIndex(f)
	matched := ix.matchGroups(ix.extends[0].Extend.Target)

	// only the group whose compound carries both 'a' and '.btn'
	require.Len(t, matched, 1)
	require.Equal(t, "a.btn", matched[0].group.Raw)
}
