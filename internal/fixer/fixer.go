package fixer

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/sasstools/slin/internal/sass"
	tt "github.com/sasstools/slin/internal/types"
)

// Fixer rewrites stylesheets by applying issue suggestions in place.
type Fixer struct {
	DryRun        bool
	MinConfidence float64 // threshold for fixing issues
}

func New(dryRun bool, threshold float64) *Fixer {
	return &Fixer{
		DryRun:        dryRun,
		MinConfidence: threshold,
	}
}

// Fix applies the suggestions of the given issues to filename. Issues are
// applied bottom-up so line numbers of earlier issues stay valid. The
// rewritten stylesheet must parse; otherwise the file is left untouched.
func (f *Fixer) Fix(filename string, issues []tt.Issue) error {
	content, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	sort.Slice(issues, func(i, j int) bool {
		return issues[i].End.Offset > issues[j].End.Offset
	})

	lines := strings.Split(string(content), "\n")

	applied := 0
	for _, issue := range issues {
		if issue.Suggestion == "" || issue.Confidence < f.MinConfidence {
			continue
		}

		if f.DryRun {
			fmt.Printf("Would fix issue in %s at line %d: %s\n", filename, issue.Start.Line, issue.Message)
			fmt.Printf("Suggestion:\n%s\n", issue.Suggestion)
			continue
		}

		startLine := issue.Start.Line - 1
		endLine := issue.End.Line - 1
		if startLine < 0 || endLine >= len(lines) || startLine > endLine {
			continue
		}

		indent := f.extractIndent(lines[startLine])
		suggestion := f.applyIndent(issue.Suggestion, indent)

		lines = append(lines[:startLine], append([]string{suggestion}, lines[endLine+1:]...)...)
		applied++
	}

	if f.DryRun || applied == 0 {
		return nil
	}

	newContent := strings.Join(lines, "\n")

	// the rewritten stylesheet must still parse
	if _, err := sass.Parse(filename, []byte(newContent)); err != nil {
		return fmt.Errorf("fix produced unparsable stylesheet, not writing: %w", err)
	}

	if err := os.WriteFile(filename, []byte(newContent), 0o644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	fmt.Printf("Fixed %d issue(s) in %s\n", applied, filename)
	return nil
}

func (f *Fixer) extractIndent(line string) string {
	return line[:len(line)-len(strings.TrimLeft(line, " \t"))]
}

func (f *Fixer) applyIndent(code, indent string) string {
	lines := strings.Split(code, "\n")
	for i, line := range lines {
		lines[i] = indent + line
	}
	return strings.Join(lines, "\n")
}
