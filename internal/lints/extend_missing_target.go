package lints

import (
	"fmt"

	"github.com/sasstools/slin/internal/sass"
	tt "github.com/sasstools/slin/internal/types"
)

// DetectExtendMissingTarget flags @extend directives whose target selector
// is not defined anywhere in the file and is not marked !optional. A real
// Sass compilation aborts on such extends.
func DetectExtendMissingTarget(filename string, file *sass.File, severity tt.Severity) ([]tt.Issue, error) {
	ix := buildSelectorIndex(file)

	var issues []tt.Issue
	for _, ec := range ix.extends {
		ext := ec.Extend
		if ext.Interpolated || ext.Optional {
			continue
		}
		// targets inside a mixin body resolve at the include site,
		// which may live in another file
		if ec.InMixin {
			continue
		}
		if len(ix.matchGroups(ext.Target)) > 0 {
			continue
		}

		issues = append(issues, tt.Issue{
			Rule:       "extend-missing-target",
			Category:   "extend",
			Filename:   filename,
			Message:    fmt.Sprintf("@extend target '%s' is not defined in this file", ext.RawTarget),
			Suggestion: fmt.Sprintf("@extend %s !optional;", ext.RawTarget),
			Note:       "Sass fails the compilation when an @extend target does not exist; define the target or append !optional if its absence is intended",
			Start:      ext.Pos(),
			End:        ext.End(),
			Confidence: 0.4,
			Severity:   severity,
		})
	}
	return issues, nil
}
