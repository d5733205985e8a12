package lints

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tt "github.com/sasstools/slin/internal/types"
)

const fanoutFixture = `
.btn { color: red; }
a.btn:hover { color: blue; }
nav .btn { margin: 0; }
.sidebar .btn { padding: 4px; }
.alert { @extend .btn; }`

func TestDetectExtendHighFanout(t *testing.T) {
	tests := []struct {
		name      string
		code      string
		threshold int
		expected  int
	}{
		{
			name:      "above threshold",
			code:      fanoutFixture,
			threshold: 3,
			expected:  1,
		},
		{
			name:      "at threshold is quiet",
			code:      fanoutFixture,
			threshold: 4,
			expected:  0,
		},
		{
			name: "single occurrence",
			code: `
%base { color: red; }
.a { @extend %base; }`,
			threshold: 3,
			expected:  0,
		},
		{
			name: "interpolated target is skipped",
			code: `
.a { @extend .#{$kind}; }`,
			threshold: 1,
			expected:  0,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			file := parseSource(t, tc.code)
			issues, err := DetectExtendHighFanout("test.scss", file, tc.threshold, tt.SeverityWarning)
			require.NoError(t, err)
			assert.Len(t, issues, tc.expected)
		})
	}
}

func TestExtendHighFanoutMessage(t *testing.T) {
	file := parseSource(t, fanoutFixture)
	issues, err := DetectExtendHighFanout("test.scss", file, 3, tt.SeverityWarning)
	require.NoError(t, err)
	require.Len(t, issues, 1)

	issue := issues[0]
	assert.Equal(t, "extend-high-fanout", issue.Rule)
	assert.Contains(t, issue.Message, "'.btn' appears in 4 selector groups")
	assert.Contains(t, issue.Note, "rewritten groups:")
}

func TestExtendHighFanoutDefaultThreshold(t *testing.T) {
	file := parseSource(t, fanoutFixture)

	// threshold <= 0 falls back to the default
	issues, err := DetectExtendHighFanout("test.scss", file, 0, tt.SeverityWarning)
	require.NoError(t, err)
	assert.Len(t, issues, 1)
}
