package lints

import (
	"fmt"

	"github.com/sasstools/slin/internal/sass"
	tt "github.com/sasstools/slin/internal/types"
)

// DetectUnusedPlaceholder flags %placeholder rules that no @extend in the
// file references. A placeholder emits no CSS unless extended, so an
// unreferenced one is dead weight.
func DetectUnusedPlaceholder(filename string, file *sass.File, severity tt.Severity) ([]tt.Issue, error) {
	ix := buildSelectorIndex(file)

	// an interpolated extend could reference any placeholder
	if ix.interpolated {
		return nil, nil
	}

	used := make(map[string]bool)
	for _, ec := range ix.extends {
		for _, s := range ec.Extend.Target.Simples {
			used[s.Key()] = true
		}
	}

	type def struct {
		name   string
		simple sass.SimpleSelector
	}
	var defs []def
	seen := make(map[string]bool)

	sass.WalkRules(file, func(rc sass.RuleContext) {
		for _, group := range rc.Rule.Selectors.Groups {
			for _, comp := range group.Compounds {
				for _, s := range comp.Simples {
					if s.Kind != sass.SimplePlaceholder {
						continue
					}
					if seen[s.Key()] {
						continue
					}
					seen[s.Key()] = true
					defs = append(defs, def{name: s.Key(), simple: s})
				}
			}
		}
	})

	var issues []tt.Issue
	for _, d := range defs {
		if used[d.name] {
			continue
		}
		issues = append(issues, tt.Issue{
			Rule:     "unused-placeholder",
			Category: "dead-code",
			Filename: filename,
			Message:  fmt.Sprintf("placeholder '%s' is never extended", d.name),
			Note:     "a placeholder emits no CSS on its own; extend it or delete it",
			Start:    d.simple.Pos(),
			End:      d.simple.End(),
			Severity: severity,
		})
	}
	return issues, nil
}
