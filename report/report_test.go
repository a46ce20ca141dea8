package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	yaml "gopkg.in/yaml.v3"

	"webcheck/common"
	"webcheck/rules"
)

func verdict(rule common.RuleID, file, actual, expected string, order common.PairOrder) rules.Verdict {
	status := common.StatusFail
	if actual == expected && strings.HasPrefix(actual, "pass: ") {
		status = common.StatusPass
	}
	return rules.Verdict{Rule: rule, File: file, Status: status, Actual: actual, Expected: expected, Order: order}
}

func sample() *rules.Report {
	return &rules.Report{
		Root:  "site",
		Files: 2,
		AppliesCSS: []rules.Verdict{
			verdict(common.RuleIDAppliesCss, "index.html", "pass: index.html applies CSS.", "pass: index.html applies CSS.", common.PairOrderActualFirst),
			verdict(common.RuleIDAppliesCss, "about.html", "fail: about.html does not apply CSS", "pass: about.html applies CSS.", common.PairOrderActualFirst),
		},
		Fonts: []rules.Verdict{
			verdict(common.RuleIDFontFamilies, "index.html", "pass: index.html has 2 fonts.", "pass: index.html has 2 fonts.", common.PairOrderExpectedFirst),
		},
		RequiredElements: []string{"body", "h1"},
		RequiredProperties: []rules.Verdict{
			verdict(common.RuleIDRequiredProperties, "index.html", "fail: body is missing font-family.", "pass: body is missing font-family.", common.PairOrderActualFirst),
		},
		Contrast: []rules.Verdict{
			verdict(common.RuleIDColorContrast, "index.html", "pass: in index.html, body has a contrast ratio of 21.00 (minimum 4.5).", "pass: in index.html, body has a contrast ratio of 21.00 (minimum 4.5).", common.PairOrderActualFirst),
		},
		Breakpoints: rules.Breakpoints{
			Files:       2,
			Breakpoints: 1,
			MediaRules:  1,
			Verdict:     verdict(common.RuleIDBreakpoints, "", "pass: 1 of 2 files have a breakpoint.", "pass: 1 of 2 files have a breakpoint.", common.PairOrderActualFirst),
		},
	}
}

func TestAssess(t *testing.T) {
	a := Assess(sample())

	if a.Checks != 6 {
		t.Errorf("Checks = %d, want 6", a.Checks)
	}
	if a.Passed() {
		t.Fatal("Passed() = true, want false")
	}

	want := []Failure{
		{Rule: common.RuleIDAppliesCss, File: "about.html", Message: "fail: about.html does not apply CSS"},
		{Rule: common.RuleIDRequiredProperties, File: "index.html", Message: "fail: body is missing font-family."},
	}
	if diff := cmp.Diff(want, a.Failures); diff != "" {
		t.Errorf("Failures mismatch (-want +got):\n%s", diff)
	}
}

func TestAssess_Breakpoints(t *testing.T) {
	rpt := &rules.Report{Files: 1, Breakpoints: rules.Breakpoints{Files: 1, Breakpoints: 2}}
	rpt.Breakpoints.Verdict.Actual = "fail: 2 breakpoints counted for 1 files."

	a := Assess(rpt)
	if a.Checks != 1 || a.Passed() {
		t.Fatalf("Assess() = %+v, want single failure", a)
	}
	if a.Failures[0].Rule != common.RuleIDBreakpoints {
		t.Errorf("Rule = %s, want %s", a.Failures[0].Rule, common.RuleIDBreakpoints)
	}
}

func TestAssess_Empty(t *testing.T) {
	a := Assess(&rules.Report{})
	if !a.Passed() {
		t.Errorf("Passed() = false, failures %v", a.Failures)
	}
}

func TestWrite_Text(t *testing.T) {
	var buf bytes.Buffer
	doc := NewDocument("webcheck", "1.0.0", "run-1", sample())
	if err := Write(&buf, doc, common.OutputFmtText, false); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"webcheck 1.0.0, run run-1\n",
		"project site: 2 documents\n",
		"  FAIL fail: about.html does not apply CSS\n",
		"       expected: pass: about.html applies CSS.\n",
		"  PASS pass: index.html has 2 fonts.\n",
		"elements: [body h1]",
		"\nstyle-attribute\n  nothing to check\n",
		"6 checks, 4 passed, 2 failed: FAIL\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output does not contain %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "\x1b[") {
		t.Error("uncolored output contains escape sequences")
	}
}

func TestWrite_TextColored(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, NewDocument("webcheck", "1.0.0", "run-1", sample()), common.OutputFmtText, true); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if !strings.Contains(buf.String(), "\x1b[") {
		t.Error("colored output has no escape sequences")
	}
}

func TestWrite_JSON(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, NewDocument("webcheck", "1.0.0", "run-1", sample()), common.OutputFmtJson, true); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	var got struct {
		RunID  string `json:"run_id"`
		Report struct {
			Files      int `json:"files"`
			AppliesCSS []struct {
				Status string `json:"status"`
				Order  string `json:"order"`
			} `json:"applies_css"`
		} `json:"report"`
		Summary struct {
			Checks   int `json:"checks"`
			Failures []struct {
				Rule string `json:"rule"`
			} `json:"failures"`
		} `json:"summary"`
	}
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("json output does not decode: %v", err)
	}
	if got.RunID != "run-1" || got.Report.Files != 2 || got.Summary.Checks != 6 {
		t.Errorf("unexpected document %+v", got)
	}
	if len(got.Report.AppliesCSS) != 2 || got.Report.AppliesCSS[1].Status != "fail" || got.Report.AppliesCSS[1].Order != "actualFirst" {
		t.Errorf("applies_css = %+v", got.Report.AppliesCSS)
	}
	if len(got.Summary.Failures) != 2 || got.Summary.Failures[0].Rule != "applies-css" {
		t.Errorf("failures = %+v", got.Summary.Failures)
	}
}

func TestWrite_YAML(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, NewDocument("webcheck", "1.0.0", "run-1", sample()), common.OutputFmtYaml, false); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	var got map[string]any
	if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("yaml output does not decode: %v", err)
	}
	rpt, ok := got["report"].(map[string]any)
	if !ok {
		t.Fatalf("report section missing: %v", got)
	}
	if rpt["root"] != "site" {
		t.Errorf("root = %v, want site", rpt["root"])
	}
	if !strings.Contains(buf.String(), "status: fail") {
		t.Errorf("yaml output has no failing status:\n%s", buf.String())
	}
}

func TestWrite_UnknownFormat(t *testing.T) {
	if err := Write(&bytes.Buffer{}, NewDocument("a", "b", "c", sample()), common.OutputFmt(42), false); err == nil {
		t.Error("Write() error = nil, want error")
	}
}
