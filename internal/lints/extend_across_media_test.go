package lints

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tt "github.com/sasstools/slin/internal/types"
)

func TestDetectExtendAcrossMedia(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		expected int
	}{
		{
			name: "target outside the media block",
			code: `
%base { color: red; }
@media screen {
  .a { @extend %base; }
}`,
			expected: 1,
		},
		{
			name: "target inside the same media block",
			code: `
@media screen {
  %base { color: red; }
  .a { @extend %base; }
}`,
			expected: 0,
		},
		{
			name: "extend outside any conditional",
			code: `
%base { color: red; }
.a { @extend %base; }`,
			expected: 0,
		},
		{
			name: "missing target is left to the missing-target rule",
			code: `
@media screen {
  .a { @extend %gone; }
}`,
			expected: 0,
		},
		{
			name: "supports blocks scope like media",
			code: `
%base { color: red; }
@supports (display: grid) {
  .a { @extend %base; }
}`,
			expected: 1,
		},
		{
			name: "target in a different media block",
			code: `
@media print {
  %base { color: red; }
}
@media screen {
  .a { @extend %base; }
}`,
			expected: 1,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			file := parseSource(t, tc.code)
			issues, err := DetectExtendAcrossMedia("test.scss", file, tt.SeverityError)
			require.NoError(t, err)
			assert.Len(t, issues, tc.expected)
		})
	}
}

func TestExtendAcrossMediaMessage(t *testing.T) {
	file := parseSource(t, `
%base { color: red; }
@media screen {
  .a { @extend %base; }
}`)

	issues, err := DetectExtendAcrossMedia("test.scss", file, tt.SeverityError)
	require.NoError(t, err)
	require.Len(t, issues, 1)

	issue := issues[0]
	assert.Equal(t, "extend-across-media", issue.Rule)
	assert.Contains(t, issue.Message, "from inside @media")
	assert.Contains(t, issue.Message, "'%base'")
}
