package ignore

import (
	"fmt"
	"go/token"
	"strings"

	"github.com/sasstools/slin/internal/sass"
)

const directivePrefix = "slin:ignore"

// Manager tracks ignore scopes and answers whether a position is muted.
type Manager struct {
	// scopes maps filename to the ignore scopes declared in it.
	scopes map[string][]scope
}

// scope is a range in the stylesheet where an ignore directive applies.
type scope struct {
	rules map[string]struct{}
	start token.Position
	end   token.Position
}

// ParseComments scans the comments of a parsed stylesheet for
// 'slin:ignore' directives and returns a Manager.
//
// Directive forms:
//
//	// slin:ignore                       mute every rule
//	// slin:ignore:rule-a,rule-b         mute the listed rules
//
// A directive above the first statement mutes the whole file. An inline
// directive mutes the node on its line. A directive on its own line mutes
// the node starting on the next line, including the node's whole block.
func ParseComments(f *sass.File) *Manager {
	m := &Manager{scopes: make(map[string][]scope, len(f.Comments))}

	nodeByLine := indexNodesByLine(f)
	firstLine := firstNodeLine(f)

	for _, c := range f.Comments {
		sc, err := parseComment(c, f, nodeByLine, firstLine)
		if err != nil {
			// not a directive, or malformed; skip
			continue
		}
		m.scopes[sc.start.Filename] = append(m.scopes[sc.start.Filename], sc)
	}
	return m
}

func parseComment(c sass.Comment, f *sass.File, nodeByLine map[int]sass.Node, firstLine int) (scope, error) {
	var sc scope

	text := commentBody(c)
	if !strings.HasPrefix(text, directivePrefix) {
		return sc, fmt.Errorf("not an ignore directive")
	}

	rest := text[len(directivePrefix):]
	if len(rest) > 0 && rest[0] != ':' {
		return sc, fmt.Errorf("malformed ignore directive")
	}
	rest = strings.TrimPrefix(rest, ":")
	sc.rules = parseRuleNames(rest)

	pos := c.Pos()

	// directive above the first statement mutes the whole file
	if pos.Line < firstLine {
		sc.start = pos
		sc.end = lastPosition(f)
		return sc, nil
	}

	// inline directive: a node starts on the directive's line
	if node, ok := nodeByLine[pos.Line]; ok && node.Pos().Offset < pos.Offset {
		sc.start = node.Pos()
		sc.end = node.End()
		return sc, nil
	}

	// standalone directive: mute the node starting on the next line
	if node, ok := nodeByLine[pos.Line+1]; ok {
		sc.start = pos
		sc.end = node.End()
		return sc, nil
	}

	// nothing follows; mute the directive's own line
	sc.start = pos
	sc.end = pos
	return sc, nil
}

// IsIgnored checks whether the rule is muted at the given position.
func (m *Manager) IsIgnored(pos token.Position, ruleName string) bool {
	scopes, ok := m.scopes[pos.Filename]
	if !ok {
		return false
	}
	for _, sc := range scopes {
		if pos.Line < sc.start.Line || pos.Line > sc.end.Line {
			continue
		}
		// an empty rule list mutes everything
		if len(sc.rules) == 0 {
			return true
		}
		if _, ok := sc.rules[ruleName]; ok {
			return true
		}
	}
	return false
}

// commentBody strips the comment markers and surrounding space.
func commentBody(c sass.Comment) string {
	text := c.Text
	if c.Line {
		text = strings.TrimPrefix(text, "//")
	} else {
		text = strings.TrimPrefix(text, "/*")
		text = strings.TrimSuffix(text, "*/")
	}
	return strings.TrimSpace(text)
}

func parseRuleNames(text string) map[string]struct{} {
	rules := make(map[string]struct{})
	for _, name := range strings.Split(text, ",") {
		name = strings.TrimSpace(name)
		if name != "" {
			rules[name] = struct{}{}
		}
	}
	return rules
}

// indexNodesByLine maps each starting line to its node. Nested nodes win
// over their enclosing rule so an inline directive attaches to the
// innermost statement on the line.
func indexNodesByLine(f *sass.File) map[int]sass.Node {
	nodes := make(map[int]sass.Node)
	sass.Walk(f, func(n sass.Node) bool {
		line := n.Pos().Line
		if prev, ok := nodes[line]; !ok || n.Pos().Offset >= prev.Pos().Offset {
			nodes[line] = n
		}
		return true
	})
	return nodes
}

func firstNodeLine(f *sass.File) int {
	if len(f.Nodes) == 0 {
		return int(^uint(0) >> 1) // no nodes: every directive is file-level
	}
	return f.Nodes[0].Pos().Line
}

func lastPosition(f *sass.File) token.Position {
	if len(f.Nodes) == 0 {
		return token.Position{}
	}
	return f.Nodes[len(f.Nodes)-1].End()
}
