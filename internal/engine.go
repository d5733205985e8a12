package internal

import (
	"fmt"
	"go/token"
	"os"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/gobwas/glob"

	"github.com/sasstools/slin/internal/ignore"
	"github.com/sasstools/slin/internal/sass"
	tt "github.com/sasstools/slin/internal/types"
)

// Engine manages the linting process.
type Engine struct {
	ignoredRules map[string]bool
	ignoredPaths []pathMatcher
	rules        map[string]LintRule
	cache        *Cache

	watcher    *fsnotify.Watcher
	watchDirs  []string
	watching   atomic.Bool
	onIssues   func(filename string, issues []tt.Issue)
	debounceMu sync.Mutex
	debounce   map[string]*time.Timer
}

type pathMatcher interface {
	Match(string) bool
}

// NewEngine creates a new lint engine. When rootDir is non-empty, lint
// results are cached under it.
func NewEngine(rootDir string, rules map[string]tt.ConfigRule) (*Engine, error) {
	engine := &Engine{}
	engine.applyRules(rules)

	if rootDir != "" {
		cache, err := NewCache(cacheDir(rootDir))
		if err != nil {
			return nil, fmt.Errorf("error setting up result cache: %w", err)
		}
		engine.cache = cache
	}

	return engine, nil
}

// ruleConstructor builds a rule with its default configuration.
type ruleConstructor func() LintRule

type ruleMap map[string]ruleConstructor

// allRuleConstructors maps rule names to their constructors.
var allRuleConstructors = ruleMap{
	"extend-non-placeholder": NewExtendNonPlaceholderRule,
	"extend-high-fanout":     NewExtendHighFanoutRule,
	"extend-missing-target":  NewExtendMissingTargetRule,
	"extend-across-media":    NewExtendAcrossMediaRule,
	"extend-pseudo-target":   NewExtendPseudoTargetRule,
	"unused-placeholder":     NewUnusedPlaceholderRule,
	"duplicate-extend":       NewDuplicateExtendRule,
}

// RuleNames lists the registered rule names, sorted.
func RuleNames() []string {
	names := make([]string, 0, len(allRuleConstructors))
	for name := range allRuleConstructors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (e *Engine) applyRules(rules map[string]tt.ConfigRule) {
	e.rules = make(map[string]LintRule)
	e.registerDefaultRules()

	for key, cfg := range rules {
		r := e.findRule(key)
		if r == nil {
			newRuleCstr := allRuleConstructors[key]
			if newRuleCstr == nil {
				// unknown rule, continue to the next one
				continue
			}
			r = newRuleCstr()
			e.rules[key] = r
		}
		if cfg.Severity == tt.SeverityOff {
			e.IgnoreRule(key)
		}
		r.SetSeverity(cfg.Severity)
		if cfg.Threshold > 0 {
			if tr, ok := r.(ThresholdRule); ok {
				tr.SetThreshold(cfg.Threshold)
			}
		}
	}
}

func (e *Engine) registerDefaultRules() {
	for key, newRuleCstr := range allRuleConstructors {
		newRule := newRuleCstr()
		if newRule.Severity() != tt.SeverityOff {
			e.rules[key] = newRule
		}
	}
}

func (e *Engine) findRule(name string) LintRule {
	if rule, ok := e.rules[name]; ok {
		return rule
	}
	return nil
}

// Run applies all lint rules to the given file and returns a slice of Issues.
func (e *Engine) Run(filename string) ([]tt.Issue, error) {
	if e.ShouldIgnorePath(filename) {
		return nil, nil
	}

	if e.cache != nil {
		if issues, ok := e.cache.Get(filename); ok {
			return e.filterIgnoredRules(issues), nil
		}
	}

	source, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("error reading file: %w", err)
	}

	issues, err := e.runSource(filename, source)
	if err != nil {
		return nil, err
	}

	if e.cache != nil {
		_ = e.cache.Set(filename, issues)
	}

	return e.filterIgnoredRules(issues), nil
}

// RunSource applies all lint rules to in-memory source.
func (e *Engine) RunSource(source []byte) ([]tt.Issue, error) {
	issues, err := e.runSource("source.scss", source)
	if err != nil {
		return nil, err
	}
	return e.filterIgnoredRules(issues), nil
}

// runSource parses and checks one stylesheet. All registered rules run;
// rules disabled with IgnoreRule are filtered afterwards so cached
// results stay valid across runs with different ignore flags.
func (e *Engine) runSource(filename string, source []byte) ([]tt.Issue, error) {
	file, err := sass.Parse(filename, source)
	if err != nil {
		return nil, fmt.Errorf("error parsing file: %w", err)
	}

	ignoreMgr := ignore.ParseComments(file)

	var wg sync.WaitGroup
	var mu sync.Mutex

	var allIssues []tt.Issue
	var firstErr error
	for _, rule := range e.rules {
		wg.Add(1)
		go func(r LintRule) {
			defer wg.Done()
			issues, err := r.Check(filename, file)
			if err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = fmt.Errorf("rule %s: %w", r.Name(), err)
				}
				mu.Unlock()
				return
			}

			muted := filterIgnoredIssues(ignoreMgr, issues)

			mu.Lock()
			allIssues = append(allIssues, muted...)
			mu.Unlock()
		}(rule)
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}

	sort.Slice(allIssues, func(i, j int) bool {
		if allIssues[i].Start.Line != allIssues[j].Start.Line {
			return allIssues[i].Start.Line < allIssues[j].Start.Line
		}
		return allIssues[i].Rule < allIssues[j].Rule
	})

	return allIssues, nil
}

// IgnoreRule suppresses all issues of the named rule.
func (e *Engine) IgnoreRule(rule string) {
	if e.ignoredRules == nil {
		e.ignoredRules = make(map[string]bool)
	}
	e.ignoredRules[rule] = true
}

// IgnorePath suppresses linting of paths matching the glob pattern.
// Invalid patterns fall back to literal prefix matching.
func (e *Engine) IgnorePath(pattern string) {
	if g, err := glob.Compile(pattern); err == nil {
		e.ignoredPaths = append(e.ignoredPaths, g)
		return
	}
	e.ignoredPaths = append(e.ignoredPaths, literalPrefix(pattern))
}

// ShouldIgnorePath reports whether the path matches an ignored pattern.
func (e *Engine) ShouldIgnorePath(path string) bool {
	for _, g := range e.ignoredPaths {
		if g.Match(path) {
			return true
		}
	}
	return false
}

// filterIgnoredIssues drops issues muted by slin:ignore directives.
func filterIgnoredIssues(mgr *ignore.Manager, issues []tt.Issue) []tt.Issue {
	filtered := make([]tt.Issue, 0, len(issues))
	for _, issue := range issues {
		pos := token.Position{
			Filename: issue.Filename,
			Line:     issue.Start.Line,
		}
		if !mgr.IsIgnored(pos, issue.Rule) {
			filtered = append(filtered, issue)
		}
	}
	return filtered
}

// filterIgnoredRules drops issues of rules disabled with IgnoreRule.
func (e *Engine) filterIgnoredRules(issues []tt.Issue) []tt.Issue {
	if len(e.ignoredRules) == 0 {
		return issues
	}
	filtered := make([]tt.Issue, 0, len(issues))
	for _, issue := range issues {
		if !e.ignoredRules[issue.Rule] {
			filtered = append(filtered, issue)
		}
	}
	return filtered
}

// literalPrefix is the fallback matcher for unparseable glob patterns.
type literalPrefix string

func (p literalPrefix) Match(s string) bool {
	return strings.HasPrefix(s, string(p))
}

// SourceCode stores the content of a source code file.
type SourceCode struct {
	Lines []string
}

// ReadSourceCode reads the content of a file and returns it as a `SourceCode` struct.
func ReadSourceCode(filename string) (*SourceCode, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	lines := strings.Split(string(content), "\n")
	return &SourceCode{Lines: lines}, nil
}
