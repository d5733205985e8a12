package lints

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tt "github.com/sasstools/slin/internal/types"
)

func TestDetectDuplicateExtend(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		expected int
	}{
		{
			name: "repeated extend in one block",
			code: `
%base { color: red; }
.a {
  @extend %base;
  @extend %base;
}`,
			expected: 1,
		},
		{
			name: "distinct targets",
			code: `
%base { color: red; }
%wide { width: 100%; }
.a {
  @extend %base;
  @extend %wide;
}`,
			expected: 0,
		},
		{
			name: "same target in different blocks",
			code: `
%base { color: red; }
.a { @extend %base; }
.b { @extend %base; }`,
			expected: 0,
		},
		{
			name: "nested blocks are checked independently",
			code: `
%base { color: red; }
.a {
  @extend %base;
  .inner { @extend %base; }
}`,
			expected: 0,
		},
		{
			name: "triple extend reports each repeat",
			code: `
%base { color: red; }
.a {
  @extend %base;
  @extend %base;
  @extend %base;
}`,
			expected: 2,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			file := parseSource(t, tc.code)
			issues, err := DetectDuplicateExtend("test.scss", file, tt.SeverityInfo)
			require.NoError(t, err)
			assert.Len(t, issues, tc.expected)

			for _, issue := range issues {
				assert.Equal(t, "duplicate-extend", issue.Rule)
				assert.Equal(t, tt.SeverityInfo, issue.Severity)
			}
		})
	}
}
