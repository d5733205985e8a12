package lints

import (
	"fmt"

	"github.com/sasstools/slin/internal/sass"
	tt "github.com/sasstools/slin/internal/types"
)

// DetectExtendAcrossMedia flags @extend directives inside a @media (or
// @supports) block whose target is only declared outside that block.
// Sass cannot merge selectors across directive boundaries and rejects
// the stylesheet.
func DetectExtendAcrossMedia(filename string, file *sass.File, severity tt.Severity) ([]tt.Issue, error) {
	ix := buildSelectorIndex(file)

	var issues []tt.Issue
	for _, ec := range ix.extends {
		ext := ec.Extend
		if ext.Interpolated || ec.InMixin {
			continue
		}
		inner := ec.Innermost()
		if inner == nil {
			continue
		}

		matched := ix.matchGroups(ext.Target)
		if len(matched) == 0 {
			// reported by extend-missing-target
			continue
		}

		inScope := false
		for _, occ := range matched {
			if occ.rc.Innermost() == inner {
				inScope = true
				break
			}
		}
		if inScope {
			continue
		}

		issues = append(issues, tt.Issue{
			Rule:     "extend-across-media",
			Category: "extend",
			Filename: filename,
			Message:  fmt.Sprintf("cannot @extend '%s' from inside @%s: the target is declared outside this block", ext.RawTarget, inner.Name),
			Note:     "Sass only extends selectors within the same directive block; duplicate the target inside the block or restructure with a mixin",
			Start:    ext.Pos(),
			End:      ext.End(),
			Severity: severity,
		})
	}
	return issues, nil
}
