package lints

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tt "github.com/sasstools/slin/internal/types"
)

func TestDetectExtendNonPlaceholder(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		expected int
	}{
		{
			name: "extending a class",
			code: `
.btn { color: red; }
.alert { @extend .btn; }`,
			expected: 1,
		},
		{
			name: "extending a placeholder",
			code: `
%btn { color: red; }
.alert { @extend %btn; }`,
			expected: 0,
		},
		{
			name: "extending a type selector",
			code: `
a { color: red; }
.link { @extend a; }`,
			expected: 1,
		},
		{
			name: "extending an id",
			code: `
#main { color: red; }
.copy { @extend #main; }`,
			expected: 1,
		},
		{
			name: "interpolated target is skipped",
			code: `
.alert { @extend .#{$kind}; }`,
			expected: 0,
		},
		{
			name: "mixed placeholder and class flags each class extend",
			code: `
%base { color: red; }
.btn { color: blue; }
.a { @extend %base; }
.b { @extend .btn; }`,
			expected: 1,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			file := parseSource(t, tc.code)
			issues, err := DetectExtendNonPlaceholder("test.scss", file, tt.SeverityWarning)
			require.NoError(t, err)
			assert.Len(t, issues, tc.expected)

			for _, issue := range issues {
				assert.Equal(t, "extend-non-placeholder", issue.Rule)
				assert.Equal(t, tt.SeverityWarning, issue.Severity)
			}
		})
	}
}

func TestExtendNonPlaceholderSuggestion(t *testing.T) {
	file := parseSource(t, `
.btn { color: red; }
.alert { @extend .btn; }`)

	issues, err := DetectExtendNonPlaceholder("test.scss", file, tt.SeverityWarning)
	require.NoError(t, err)
	require.Len(t, issues, 1)

	assert.Equal(t, "@extend %btn;", issues[0].Suggestion)
	assert.Greater(t, issues[0].Confidence, 0.0)
}

func TestExtendNonPlaceholderCompoundHasNoSuggestion(t *testing.T) {
	file := parseSource(t, `
a.btn { color: red; }
.alert { @extend a.btn; }`)

	issues, err := DetectExtendNonPlaceholder("test.scss", file, tt.SeverityWarning)
	require.NoError(t, err)
	require.Len(t, issues, 1)
	assert.Empty(t, issues[0].Suggestion)
}
