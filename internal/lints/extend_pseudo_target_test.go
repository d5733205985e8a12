package lints

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tt "github.com/sasstools/slin/internal/types"
)

func TestDetectExtendPseudoTarget(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		expected int
	}{
		{
			name: "target has a hover variant",
			code: `
.btn { color: red; }
.btn:hover { color: blue; }
.alert { @extend .btn; }`,
			expected: 1,
		},
		{
			name: "target has only plain occurrences",
			code: `
.btn { color: red; }
nav .btn { margin: 0; }
.alert { @extend .btn; }`,
			expected: 0,
		},
		{
			name: "pseudo element variant",
			code: `
.icon { width: 1em; }
.icon::before { content: ""; }
.star { @extend .icon; }`,
			expected: 1,
		},
		{
			name: "pseudo in another compound of the group",
			code: `
.list { margin: 0; }
.list li:first-child { font-weight: bold; }
.menu { @extend .list; }`,
			expected: 1,
		},
		{
			name: "interpolated target is skipped",
			code: `
.btn:hover { color: blue; }
.alert { @extend .#{$kind}; }`,
			expected: 0,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			file := parseSource(t, tc.code)
			issues, err := DetectExtendPseudoTarget("test.scss", file, tt.SeverityWarning)
			require.NoError(t, err)
			assert.Len(t, issues, tc.expected)
		})
	}
}

func TestExtendPseudoTargetMessage(t *testing.T) {
	file := parseSource(t, `
.btn:hover { color: blue; }
.alert { @extend .btn; }`)

	issues, err := DetectExtendPseudoTarget("test.scss", file, tt.SeverityWarning)
	require.NoError(t, err)
	require.Len(t, issues, 1)

	issue := issues[0]
	assert.Equal(t, "extend-pseudo-target", issue.Rule)
	assert.Contains(t, issue.Message, "pseudo-selector variants")
	assert.Contains(t, issue.Message, ".btn:hover")
}
