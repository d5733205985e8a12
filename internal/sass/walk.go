package sass

import "strings"

// Walk traverses the tree in depth-first order. fn's return value
// controls whether the node's children are visited.
func Walk(f *File, fn func(n Node) bool) {
	walkNodes(f.Nodes, fn)
}

func walkNodes(nodes []Node, fn func(n Node) bool) {
	for _, n := range nodes {
		if !fn(n) {
			continue
		}
		switch v := n.(type) {
		case *Rule:
			walkNodes(v.Body, fn)
		case *AtRule:
			walkNodes(v.Body, fn)
		case *MixinDecl:
			walkNodes(v.Body, fn)
		case *IncludeDirective:
			walkNodes(v.Body, fn)
		}
	}
}

// RuleContext is a style rule together with its enclosing scopes.
type RuleContext struct {
	Rule *Rule
	// Parents are the enclosing style rules, outermost first.
	Parents []*Rule
	// Conditionals are the enclosing @media-like at-rules, outermost first.
	Conditionals []*AtRule
	// InMixin reports whether the rule sits inside a @mixin body.
	InMixin bool
}

// Innermost returns the nearest enclosing conditional at-rule, or nil.
func (rc RuleContext) Innermost() *AtRule {
	if len(rc.Conditionals) == 0 {
		return nil
	}
	return rc.Conditionals[len(rc.Conditionals)-1]
}

// WalkRules visits every style rule in the file with its context.
func WalkRules(f *File, fn func(rc RuleContext)) {
	walkRuleNodes(f.Nodes, RuleContext{}, fn)
}

func walkRuleNodes(nodes []Node, ctx RuleContext, fn func(rc RuleContext)) {
	for _, n := range nodes {
		switch v := n.(type) {
		case *Rule:
			rc := ctx
			rc.Rule = v
			fn(rc)
			inner := rc
			inner.Parents = append(append([]*Rule(nil), ctx.Parents...), v)
			walkRuleNodes(v.Body, inner, fn)
		case *AtRule:
			inner := ctx
			if v.Conditional() {
				inner.Conditionals = append(append([]*AtRule(nil), ctx.Conditionals...), v)
			}
			walkRuleNodes(v.Body, inner, fn)
		case *MixinDecl:
			inner := ctx
			inner.InMixin = true
			walkRuleNodes(v.Body, inner, fn)
		case *IncludeDirective:
			walkRuleNodes(v.Body, ctx, fn)
		}
	}
}

// ExtendContext is an @extend directive together with its enclosing scopes.
type ExtendContext struct {
	Extend *ExtendDirective
	// Rule is the style rule whose block directly or indirectly holds
	// the directive; nil for a stray top-level extend.
	Rule         *Rule
	Parents      []*Rule
	Conditionals []*AtRule
	InMixin      bool
}

// Innermost returns the nearest enclosing conditional at-rule, or nil.
func (ec ExtendContext) Innermost() *AtRule {
	if len(ec.Conditionals) == 0 {
		return nil
	}
	return ec.Conditionals[len(ec.Conditionals)-1]
}

// WalkExtends visits every @extend directive in the file with its context.
func WalkExtends(f *File, fn func(ec ExtendContext)) {
	walkExtendNodes(f.Nodes, ExtendContext{}, fn)
}

func walkExtendNodes(nodes []Node, ctx ExtendContext, fn func(ec ExtendContext)) {
	for _, n := range nodes {
		switch v := n.(type) {
		case *ExtendDirective:
			ec := ctx
			ec.Extend = v
			fn(ec)
		case *Rule:
			inner := ctx
			if ctx.Rule != nil {
				inner.Parents = append(append([]*Rule(nil), ctx.Parents...), ctx.Rule)
			}
			inner.Rule = v
			walkExtendNodes(v.Body, inner, fn)
		case *AtRule:
			inner := ctx
			if v.Conditional() {
				inner.Conditionals = append(append([]*AtRule(nil), ctx.Conditionals...), v)
			}
			walkExtendNodes(v.Body, inner, fn)
		case *MixinDecl:
			inner := ctx
			inner.InMixin = true
			walkExtendNodes(v.Body, inner, fn)
		case *IncludeDirective:
			walkExtendNodes(v.Body, ctx, fn)
		}
	}
}

// ResolveSelectors expands a rule's selector groups against its parent
// chain, substituting '&' where present and prefixing otherwise. The
// result is the cartesian product over all nesting levels, in source form.
func ResolveSelectors(rc RuleContext) []string {
	resolved := []string{""}
	chain := make([]*Rule, 0, len(rc.Parents)+1)
	chain = append(chain, rc.Parents...)
	if rc.Rule != nil {
		chain = append(chain, rc.Rule)
	}

	for _, rule := range chain {
		var next []string
		for _, parent := range resolved {
			for _, group := range rule.Selectors.Groups {
				next = append(next, substituteParent(group.Raw, parent))
			}
		}
		resolved = next
	}
	return resolved
}

func substituteParent(raw, parent string) string {
	if strings.Contains(raw, "&") {
		return strings.ReplaceAll(raw, "&", parent)
	}
	if parent == "" {
		return raw
	}
	return parent + " " + raw
}
