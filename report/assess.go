package report

import (
	"strings"

	"webcheck/common"
	"webcheck/rules"
)

// Failure is a single failed check.
type Failure struct {
	Rule    common.RuleID `json:"rule" yaml:"rule"`
	File    string        `json:"file,omitempty" yaml:"file,omitempty"`
	Message string        `json:"message" yaml:"message"`
}

// Assessment is the outcome of checking a report.
type Assessment struct {
	Checks   int       `json:"checks" yaml:"checks"`
	Failures []Failure `json:"failures,omitempty" yaml:"failures,omitempty"`
}

// Passed reports whether every check passed.
func (a Assessment) Passed() bool {
	return len(a.Failures) == 0
}

// Assess checks report the same way verification tests always have: message
// pairs must be equal for pair rules, messages must start with "pass:" for
// message rules and breakpoint count must not exceed number of files.
func Assess(rpt *rules.Report) Assessment {
	var a Assessment
	fail := func(rule common.RuleID, file, msg string) {
		a.Failures = append(a.Failures, Failure{Rule: rule, File: file, Message: msg})
	}

	for _, rule := range []common.RuleID{common.RuleIDAppliesCss, common.RuleIDStyleAttribute, common.RuleIDFontFamilies} {
		for _, v := range rpt.Verdicts(rule) {
			a.Checks++
			if pair := v.Pair(); pair[0] != pair[1] {
				fail(rule, v.File, v.Actual)
			}
		}
	}

	for _, rule := range []common.RuleID{common.RuleIDRequiredProperties, common.RuleIDColorContrast} {
		for _, v := range rpt.Verdicts(rule) {
			a.Checks++
			msg := v.Message()
			if !strings.HasPrefix(msg, "pass:") {
				fail(rule, v.File, msg)
			}
		}
	}

	a.Checks++
	if !rpt.Breakpoints.Holds() {
		fail(common.RuleIDBreakpoints, "", rpt.Breakpoints.Verdict.Actual)
	}
	return a
}
