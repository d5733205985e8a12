package lints

import (
	"fmt"

	"github.com/sasstools/slin/internal/sass"
	tt "github.com/sasstools/slin/internal/types"
)

// DetectExtendNonPlaceholder flags @extend directives whose target is a
// real selector instead of a %placeholder. Extending a class couples the
// extender to every future occurrence of that class and bloats the output;
// a placeholder gives the same sharing without emitting the target itself.
func DetectExtendNonPlaceholder(filename string, file *sass.File, severity tt.Severity) ([]tt.Issue, error) {
	ix := buildSelectorIndex(file)

	var issues []tt.Issue
	for _, ec := range ix.extends {
		ext := ec.Extend
		if ext.Interpolated {
			continue
		}
		if placeholderOnly(ext.Target) {
			continue
		}

		issue := tt.Issue{
			Rule:     "extend-non-placeholder",
			Category: "extend",
			Filename: filename,
			Message:  fmt.Sprintf("@extend targets non-placeholder selector '%s'", ext.RawTarget),
			Note:     "extending a real selector entangles it with every rule that mentions it; define a %placeholder both can extend, include a mixin, or add the class to the markup directly",
			Start:    ext.Pos(),
			End:      ext.End(),
			Severity: severity,
		}

		if name, ok := singleClassName(ext.Target); ok {
			issue.Suggestion = fmt.Sprintf("@extend %%%s;", name)
			issue.Confidence = 0.3
		}

		issues = append(issues, issue)
	}
	return issues, nil
}

// singleClassName returns the class name when the target is exactly one
// class selector.
func singleClassName(comp sass.CompoundSelector) (string, bool) {
	if len(comp.Simples) != 1 || comp.Simples[0].Kind != sass.SimpleClass {
		return "", false
	}
	return comp.Simples[0].Name, true
}
