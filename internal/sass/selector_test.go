package sass

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// parseSelectors parses the selector of a single 'sel { }' rule.
func parseSelectors(t *testing.T, sel string) SelectorList {
	t.Helper()
	f := mustParse(t, sel+" { }")
	rule, ok := f.Nodes[0].(*Rule)
	require.True(t, ok)
	return rule.Selectors
}

func TestSelectorKeys(t *testing.T) {
	tests := []struct {
		kind SimpleKind
		name string
		key  string
	}{
		{SimpleClass, "btn", ".btn"},
		{SimpleID, "main", "#main"},
		{SimplePlaceholder, "base", "%base"},
		{SimplePseudoClass, "hover", ":hover"},
		{SimplePseudoElement, "before", "::before"},
		{SimpleAttribute, "disabled", "[disabled]"},
		{SimpleUniversal, "*", "*"},
		{SimpleParent, "&", "&"},
		{SimpleType, "a", "a"},
	}

	for _, tt := range tests {
		s := SimpleSelector{Kind: tt.kind, Name: tt.name}
		assert.Equal(t, tt.key, s.Key())
	}
}

func TestParseSelectorList(t *testing.T) {
	list := parseSelectors(t, "a.btn:hover, #main > .item")
	require.Len(t, list.Groups, 2)

	first := list.Groups[0]
	require.Len(t, first.Compounds, 1)
	keys := simpleKeys(first.Compounds[0])
	assert.Equal(t, []string{"a", ".btn", ":hover"}, keys)

	second := list.Groups[1]
	require.Len(t, second.Compounds, 2)
	assert.Equal(t, []string{"#main"}, simpleKeys(second.Compounds[0]))
	assert.Equal(t, []string{".item"}, simpleKeys(second.Compounds[1]))
}

func TestParseSelectorKinds(t *testing.T) {
	tests := []struct {
		name string
		sel  string
		keys []string
	}{
		{"placeholder", "%btn-base", []string{"%btn-base"}},
		{"pseudo element", "a::before", []string{"a", "::before"}},
		{"functional pseudo", ".item:not(.active)", []string{".item", ":not"}},
		{"nth child", "li:nth-child(2n+1)", []string{"li", ":nth-child"}},
		{"attribute", "input[disabled]", []string{"input", "[disabled]"}},
		{"universal", "*", []string{"*"}},
		{"parent with pseudo", "&:focus", []string{"&", ":focus"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list := parseSelectors(t, tt.sel)
			require.Len(t, list.Groups, 1)
			require.Len(t, list.Groups[0].Compounds, 1)
			assert.Equal(t, tt.keys, simpleKeys(list.Groups[0].Compounds[0]))
		})
	}
}

func TestCombinatorsSplitCompounds(t *testing.T) {
	tests := []struct {
		sel   string
		count int
	}{
		{"nav ul li", 3},
		{"nav > ul", 2},
		{".a + .b", 2},
		{".a ~ .b", 2},
		{".a.b", 1},
	}

	for _, tt := range tests {
		list := parseSelectors(t, tt.sel)
		require.Len(t, list.Groups, 1)
		assert.Len(t, list.Groups[0].Compounds, tt.count, tt.sel)
	}
}

func TestCompoundContains(t *testing.T) {
	list := parseSelectors(t, "a.btn:hover")
	comp := list.Groups[0].Compounds[0]

	assert.True(t, comp.Contains(".btn"))
	assert.True(t, comp.Contains("a"))
	assert.True(t, comp.Contains(":hover"))
	assert.False(t, comp.Contains(".other"))
}

func TestComplexHasPseudo(t *testing.T) {
	assert.True(t, parseSelectors(t, ".btn:hover").Groups[0].HasPseudo())
	assert.True(t, parseSelectors(t, ".nav .item::after").Groups[0].HasPseudo())
	assert.False(t, parseSelectors(t, ".nav .item").Groups[0].HasPseudo())
}

func TestInterpolatedSelector(t *testing.T) {
	list := parseSelectors(t, ".icon-#{$name}")
	require.Len(t, list.Groups, 1)
	assert.True(t, list.Groups[0].Compounds[0].Interpolated())
}

func TestSelectorListString(t *testing.T) {
	list := parseSelectors(t, ".a,  .b > .c")
	assert.Equal(t, ".a, .b > .c", list.String())
}

func simpleKeys(comp CompoundSelector) []string {
	keys := make([]string, 0, len(comp.Simples))
	for _, s := range comp.Simples {
		keys = append(keys, s.Key())
	}
	return keys
}
