package internal

import (
	"github.com/sasstools/slin/internal/lints"
	"github.com/sasstools/slin/internal/sass"
	tt "github.com/sasstools/slin/internal/types"
)

/*
* Implement each lint rule as a separate struct
 */

// LintRule defines the interface for all lint rules.
type LintRule interface {
	// Check runs the lint rule on the parsed stylesheet and returns a slice of Issues.
	Check(filename string, file *sass.File) ([]tt.Issue, error)

	// Name returns the name of the lint rule.
	Name() string

	Severity() tt.Severity
	SetSeverity(tt.Severity)
}

// ThresholdRule is a LintRule with a tunable numeric threshold.
type ThresholdRule interface {
	LintRule
	SetThreshold(int)
}

type ExtendNonPlaceholderRule struct {
	severity tt.Severity
}

func NewExtendNonPlaceholderRule() LintRule {
	return &ExtendNonPlaceholderRule{severity: tt.SeverityWarning}
}

func (r *ExtendNonPlaceholderRule) Check(filename string, file *sass.File) ([]tt.Issue, error) {
	return lints.DetectExtendNonPlaceholder(filename, file, r.severity)
}

func (r *ExtendNonPlaceholderRule) Name() string              { return "extend-non-placeholder" }
func (r *ExtendNonPlaceholderRule) Severity() tt.Severity     { return r.severity }
func (r *ExtendNonPlaceholderRule) SetSeverity(s tt.Severity) { r.severity = s }

type ExtendHighFanoutRule struct {
	severity  tt.Severity
	threshold int
}

func NewExtendHighFanoutRule() LintRule {
	return &ExtendHighFanoutRule{
		severity:  tt.SeverityWarning,
		threshold: lints.DefaultFanoutThreshold,
	}
}

func (r *ExtendHighFanoutRule) Check(filename string, file *sass.File) ([]tt.Issue, error) {
	return lints.DetectExtendHighFanout(filename, file, r.threshold, r.severity)
}

func (r *ExtendHighFanoutRule) Name() string              { return "extend-high-fanout" }
func (r *ExtendHighFanoutRule) Severity() tt.Severity     { return r.severity }
func (r *ExtendHighFanoutRule) SetSeverity(s tt.Severity) { r.severity = s }
func (r *ExtendHighFanoutRule) SetThreshold(t int)        { r.threshold = t }

type ExtendMissingTargetRule struct {
	severity tt.Severity
}

func NewExtendMissingTargetRule() LintRule {
	return &ExtendMissingTargetRule{severity: tt.SeverityError}
}

func (r *ExtendMissingTargetRule) Check(filename string, file *sass.File) ([]tt.Issue, error) {
	return lints.DetectExtendMissingTarget(filename, file, r.severity)
}

func (r *ExtendMissingTargetRule) Name() string              { return "extend-missing-target" }
func (r *ExtendMissingTargetRule) Severity() tt.Severity     { return r.severity }
func (r *ExtendMissingTargetRule) SetSeverity(s tt.Severity) { r.severity = s }

type ExtendAcrossMediaRule struct {
	severity tt.Severity
}

func NewExtendAcrossMediaRule() LintRule {
	return &ExtendAcrossMediaRule{severity: tt.SeverityError}
}

func (r *ExtendAcrossMediaRule) Check(filename string, file *sass.File) ([]tt.Issue, error) {
	return lints.DetectExtendAcrossMedia(filename, file, r.severity)
}

func (r *ExtendAcrossMediaRule) Name() string              { return "extend-across-media" }
func (r *ExtendAcrossMediaRule) Severity() tt.Severity     { return r.severity }
func (r *ExtendAcrossMediaRule) SetSeverity(s tt.Severity) { r.severity = s }

type ExtendPseudoTargetRule struct {
	severity tt.Severity
}

func NewExtendPseudoTargetRule() LintRule {
	return &ExtendPseudoTargetRule{severity: tt.SeverityWarning}
}

func (r *ExtendPseudoTargetRule) Check(filename string, file *sass.File) ([]tt.Issue, error) {
	return lints.DetectExtendPseudoTarget(filename, file, r.severity)
}

func (r *ExtendPseudoTargetRule) Name() string              { return "extend-pseudo-target" }
func (r *ExtendPseudoTargetRule) Severity() tt.Severity     { return r.severity }
func (r *ExtendPseudoTargetRule) SetSeverity(s tt.Severity) { r.severity = s }

type UnusedPlaceholderRule struct {
	severity tt.Severity
}

func NewUnusedPlaceholderRule() LintRule {
	return &UnusedPlaceholderRule{severity: tt.SeverityWarning}
}

func (r *UnusedPlaceholderRule) Check(filename string, file *sass.File) ([]tt.Issue, error) {
	return lints.DetectUnusedPlaceholder(filename, file, r.severity)
}

func (r *UnusedPlaceholderRule) Name() string              { return "unused-placeholder" }
func (r *UnusedPlaceholderRule) Severity() tt.Severity     { return r.severity }
func (r *UnusedPlaceholderRule) SetSeverity(s tt.Severity) { r.severity = s }

type DuplicateExtendRule struct {
	severity tt.Severity
}

func NewDuplicateExtendRule() LintRule {
	return &DuplicateExtendRule{severity: tt.SeverityInfo}
}

func (r *DuplicateExtendRule) Check(filename string, file *sass.File) ([]tt.Issue, error) {
	return lints.DetectDuplicateExtend(filename, file, r.severity)
}

func (r *DuplicateExtendRule) Name() string              { return "duplicate-extend" }
func (r *DuplicateExtendRule) Severity() tt.Severity     { return r.severity }
func (r *DuplicateExtendRule) SetSeverity(s tt.Severity) { r.severity = s }
