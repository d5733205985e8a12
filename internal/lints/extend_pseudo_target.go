package lints

import (
	"fmt"

	"github.com/sasstools/slin/internal/sass"
	tt "github.com/sasstools/slin/internal/types"
)

// DetectExtendPseudoTarget flags @extend directives whose target occurs in
// selector groups carrying pseudo-classes or pseudo-elements. The extender
// silently inherits those variants, and combinations like ':not(...)'
// raise the resulting specificity in ways that are hard to trace back.
func DetectExtendPseudoTarget(filename string, file *sass.File, severity tt.Severity) ([]tt.Issue, error) {
	ix := buildSelectorIndex(file)

	var issues []tt.Issue
	for _, ec := range ix.extends {
		ext := ec.Extend
		if ext.Interpolated {
			continue
		}

		var pseudo []occurrence
		for _, occ := range ix.matchGroups(ext.Target) {
			if occ.group.HasPseudo() {
				pseudo = append(pseudo, occ)
			}
		}
		if len(pseudo) == 0 {
			continue
		}

		issues = append(issues, tt.Issue{
			Rule:     "extend-pseudo-target",
			Category: "extend",
			Filename: filename,
			Message:  fmt.Sprintf("@extend of '%s' also rewrites pseudo-selector variants: %s", ext.RawTarget, describeLocations(pseudo, 3)),
			Note:     "every pseudo variant of the target is cloned for the extender and keeps its raised specificity; prefer a mixin when the target has stateful styles",
			Start:    ext.Pos(),
			End:      ext.End(),
			Severity: severity,
		})
	}
	return issues, nil
}
