// Package rules turns a project snapshot into pass/fail verdicts.
package rules

import (
	"strings"

	"webcheck/common"
)

// Verdict is the outcome of one rule instance. Messages are kept in the form
// historical checks compared them: actual equals expected byte for byte when
// compliant.
type Verdict struct {
	Rule     common.RuleID    `json:"rule" yaml:"rule"`
	File     string           `json:"file,omitempty" yaml:"file,omitempty"`
	Subject  string           `json:"subject,omitempty" yaml:"subject,omitempty"` // element or selector the verdict is about
	Detail   string           `json:"detail,omitempty" yaml:"detail,omitempty"`   // property, count or ratio
	Status   common.Status    `json:"status" yaml:"status"`
	Actual   string           `json:"actual" yaml:"actual"`
	Expected string           `json:"expected" yaml:"expected"`
	Order    common.PairOrder `json:"order" yaml:"order"`
}

// newVerdict builds verdict from rendered messages. Status is pass only when
// messages are identical and both read as pass.
func newVerdict(rule common.RuleID, file string, order common.PairOrder, actual, expected string) Verdict {
	status := common.StatusFail
	if actual == expected && strings.HasPrefix(actual, common.StatusPass.Prefix()) {
		status = common.StatusPass
	}
	return Verdict{
		Rule:     rule,
		File:     file,
		Status:   status,
		Actual:   actual,
		Expected: expected,
		Order:    order,
	}
}

// Passed reports whether verdict is compliant.
func (v Verdict) Passed() bool {
	return v.Status.Passed()
}

// Pair returns messages in the order consumers assert them.
func (v Verdict) Pair() [2]string {
	if v.Order == common.PairOrderExpectedFirst {
		return [2]string{v.Expected, v.Actual}
	}
	return [2]string{v.Actual, v.Expected}
}

// Message returns actual message alone, for checks asserting only the prefix.
func (v Verdict) Message() string {
	return v.Actual
}

// passForm turns a message into its compliant form.
func passForm(msg string) string {
	return common.StatusPass.Prefix() + strings.TrimPrefix(msg, common.StatusFail.Prefix())
}
