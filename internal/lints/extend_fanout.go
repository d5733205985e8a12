package lints

import (
	"fmt"

	"github.com/sasstools/slin/internal/sass"
	tt "github.com/sasstools/slin/internal/types"
)

// DefaultFanoutThreshold is the number of selector groups an @extend
// target may appear in before the extend is reported.
const DefaultFanoutThreshold = 3

// DetectExtendHighFanout flags @extend directives whose target occurs in
// many selector groups. Sass copies the extending selector into every
// group that mentions the target, so the emitted selector lists grow with
// the product of extenders and occurrences.
func DetectExtendHighFanout(filename string, file *sass.File, threshold int, severity tt.Severity) ([]tt.Issue, error) {
	if threshold <= 0 {
		threshold = DefaultFanoutThreshold
	}

	ix := buildSelectorIndex(file)

	var issues []tt.Issue
	for _, ec := range ix.extends {
		ext := ec.Extend
		if ext.Interpolated {
			continue
		}

		matched := ix.matchGroups(ext.Target)
		if len(matched) <= threshold {
			continue
		}

		issues = append(issues, tt.Issue{
			Rule:     "extend-high-fanout",
			Category: "performance",
			Filename: filename,
			Message:  fmt.Sprintf("'%s' appears in %d selector groups; @extend rewrites all of them (threshold: %d)", ext.RawTarget, len(matched), threshold),
			Note:     "rewritten groups: " + describeLocations(matched, 3),
			Start:    ext.Pos(),
			End:      ext.End(),
			Severity: severity,
		})
	}
	return issues, nil
}
