package lints

import (
	"fmt"

	"github.com/sasstools/slin/internal/sass"
)

// occurrence is one selector group that contains a given compound.
type occurrence struct {
	rc       sass.RuleContext
	groupIdx int
	group    sass.ComplexSelector
}

// selectorIndex maps simple selector keys to the selector groups they
// appear in, across the whole file. It is the shared lookup structure
// of the extend rules.
type selectorIndex struct {
	bySimple map[string][]occurrence
	extends  []sass.ExtendContext

	// interpolated reports that at least one @extend target could not
	// be resolved statically; presence-based rules back off then.
	interpolated bool
}

func buildSelectorIndex(f *sass.File) *selectorIndex {
	ix := &selectorIndex{bySimple: make(map[string][]occurrence)}

	sass.WalkRules(f, func(rc sass.RuleContext) {
		for gi, group := range rc.Rule.Selectors.Groups {
			seen := make(map[string]bool)
			for _, comp := range group.Compounds {
				for _, simple := range comp.Simples {
					key := simple.Key()
					if seen[key] {
						continue
					}
					seen[key] = true
					ix.bySimple[key] = append(ix.bySimple[key], occurrence{
						rc:       rc,
						groupIdx: gi,
						group:    group,
					})
				}
			}
		}
	})

	sass.WalkExtends(f, func(ec sass.ExtendContext) {
		ix.extends = append(ix.extends, ec)
		if ec.Extend.Interpolated {
			ix.interpolated = true
		}
	})

	return ix
}

// matchGroups returns the selector groups that an @extend of target
// would rewrite: every group holding a compound that contains all of
// the target's simple selectors.
func (ix *selectorIndex) matchGroups(target sass.CompoundSelector) []occurrence {
	if len(target.Simples) == 0 {
		return nil
	}

	// candidates come from the rarest simple of the target
	candidates := ix.bySimple[target.Simples[0].Key()]
	for _, s := range target.Simples[1:] {
		if c := ix.bySimple[s.Key()]; len(c) < len(candidates) {
			candidates = c
		}
	}
	var matched []occurrence
	for _, occ := range candidates {
		for _, comp := range occ.group.Compounds {
			if compoundContainsAll(comp, target) {
				matched = append(matched, occ)
				break
			}
		}
	}
	return matched
}

func compoundContainsAll(comp, target sass.CompoundSelector) bool {
	for _, s := range target.Simples {
		if !comp.Contains(s.Key()) {
			return false
		}
	}
	return true
}

// placeholderOnly reports whether every member of the compound is a
// placeholder selector.
func placeholderOnly(comp sass.CompoundSelector) bool {
	if len(comp.Simples) == 0 {
		return false
	}
	for _, s := range comp.Simples {
		if s.Kind != sass.SimplePlaceholder {
			return false
		}
	}
	return true
}

// describeLocations renders up to max occurrence positions for notes.
func describeLocations(occs []occurrence, max int) string {
	var out string
	for i, occ := range occs {
		if i >= max {
			out += fmt.Sprintf(" and %d more", len(occs)-max)
			break
		}
		if i > 0 {
			out += ", "
		}
		out += fmt.Sprintf("'%s' (line %d)", occ.group.Raw, occ.group.StartPos.Line)
	}
	return out
}
