package rules

import (
	"fmt"
	"strconv"

	"webcheck/common"
	"webcheck/project"
)

// AuditInlineStyles counts elements carrying inline style attribute in every
// document. Pair order is (actual, expected).
func AuditInlineStyles(snap *project.Snapshot, attribute string) []Verdict {
	verdicts := make([]Verdict, 0, len(snap.Files))
	for _, f := range snap.Files {
		name := f.Name()
		count := len(f.Doc.WithAttribute(attribute))

		expected := fmt.Sprintf("pass: in %s, there are no tags with a %s attribute.", name, attribute)
		actual := expected
		if count > 0 {
			actual = fmt.Sprintf("fail: in %s, there are %d tags with a %s attribute applied.", name, count, attribute)
		}
		v := newVerdict(common.RuleIDStyleAttribute, name, common.PairOrderActualFirst, actual, expected)
		v.Subject, v.Detail = attribute, strconv.Itoa(count)
		verdicts = append(verdicts, v)
	}
	return verdicts
}

// AuditAppliesCSS checks that every document has at least one stylesheet
// with some text. Historically failing message has no final period,
// failPeriod adds it. Pair order is (actual, expected).
func AuditAppliesCSS(snap *project.Snapshot, failPeriod bool) []Verdict {
	verdicts := make([]Verdict, 0, len(snap.Files))
	for _, f := range snap.Files {
		name := f.Name()

		applies := false
		for _, s := range f.Styles {
			if !s.Empty() {
				applies = true
				break
			}
		}

		expected := fmt.Sprintf("pass: %s applies CSS.", name)
		actual := expected
		if !applies {
			actual = fmt.Sprintf("fail: %s does not apply CSS", name)
			if failPeriod {
				actual += "."
			}
		}
		v := newVerdict(common.RuleIDAppliesCss, name, common.PairOrderActualFirst, actual, expected)
		v.Detail = strconv.Itoa(len(f.Styles))
		verdicts = append(verdicts, v)
	}
	return verdicts
}

// Breakpoints summarizes responsive rules of the project.
type Breakpoints struct {
	Files int `json:"files" yaml:"files"`
	// Documents credited with a breakpoint, at most one per document.
	Breakpoints int `json:"breakpoints" yaml:"breakpoints"`
	// Every matching at-rule.
	MediaRules int `json:"media_rules" yaml:"media_rules"`
	// Documents without a breakpoint, informational.
	Missing []string `json:"missing,omitempty" yaml:"missing,omitempty"`
	Verdict Verdict  `json:"verdict" yaml:"verdict"`
}

// AuditBreakpoints credits one breakpoint to every document having an
// at-rule which contains marker. Checked property is breakpoints <= files.
func AuditBreakpoints(snap *project.Snapshot, marker string) Breakpoints {
	b := Breakpoints{Files: len(snap.Files)}
	for _, f := range snap.Files {
		found := 0
		for _, s := range f.Styles {
			found += len(s.AtRulesContaining(marker))
		}
		b.MediaRules += found
		if found > 0 {
			b.Breakpoints++
		} else {
			b.Missing = append(b.Missing, f.Path)
		}
	}

	expected := fmt.Sprintf("pass: %d of %d files have a breakpoint.", b.Breakpoints, b.Files)
	actual := expected
	if b.Breakpoints > b.Files {
		actual = fmt.Sprintf("fail: %d breakpoints counted for %d files.", b.Breakpoints, b.Files)
	}
	b.Verdict = newVerdict(common.RuleIDBreakpoints, "", common.PairOrderActualFirst, actual, expected)
	b.Verdict.Subject, b.Verdict.Detail = marker, strconv.Itoa(b.MediaRules)
	return b
}

// Holds reports whether breakpoint count does not exceed file count.
func (b Breakpoints) Holds() bool {
	return b.Breakpoints <= b.Files
}
