package lints

import (
	"fmt"

	"github.com/sasstools/slin/internal/sass"
	tt "github.com/sasstools/slin/internal/types"
)

// DetectDuplicateExtend flags a rule block that extends the same target
// more than once. The second extend is a no-op and usually a copy-paste
// leftover.
func DetectDuplicateExtend(filename string, file *sass.File, severity tt.Severity) ([]tt.Issue, error) {
	var issues []tt.Issue

	check := func(body []sass.Node) {
		seen := make(map[string]bool)
		for _, n := range body {
			ext, ok := n.(*sass.ExtendDirective)
			if !ok {
				continue
			}
			key := ext.RawTarget
			if ext.Interpolated {
				continue
			}
			if seen[key] {
				issues = append(issues, tt.Issue{
					Rule:     "duplicate-extend",
					Category: "extend",
					Filename: filename,
					Message:  fmt.Sprintf("'%s' is already extended in this block", key),
					Note:     "the repeated @extend has no effect; remove it",
					Start:    ext.Pos(),
					End:      ext.End(),
					Severity: severity,
				})
				continue
			}
			seen[key] = true
		}
	}

	sass.WalkRules(file, func(rc sass.RuleContext) {
		check(rc.Rule.Body)
	})

	return issues, nil
}
