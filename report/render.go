// Package report renders rule verdicts for people and machines and checks
// them the way verification tests do.
package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	yaml "gopkg.in/yaml.v3"

	"webcheck/common"
	"webcheck/rules"
)

// Document is what gets written out.
type Document struct {
	App     string        `json:"app" yaml:"app"`
	Version string        `json:"version" yaml:"version"`
	RunID   string        `json:"run_id" yaml:"run_id"`
	Report  *rules.Report `json:"report" yaml:"report"`
	Summary Assessment    `json:"summary" yaml:"summary"`
}

// NewDocument assesses report and wraps it for output.
func NewDocument(app, version, runID string, rpt *rules.Report) *Document {
	return &Document{
		App:     app,
		Version: version,
		RunID:   runID,
		Report:  rpt,
		Summary: Assess(rpt),
	}
}

// Write renders document in requested format. Colors are only used for text
// output.
func Write(w io.Writer, doc *Document, format common.OutputFmt, colored bool) error {
	switch format {
	case common.OutputFmtText:
		return writeText(w, doc, colored)
	case common.OutputFmtJson:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("unable to encode json: %w", err)
		}
		return nil
	case common.OutputFmtYaml:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("unable to encode yaml: %w", err)
		}
		return enc.Close()
	}
	return fmt.Errorf("unsupported output format: %s", format)
}

type painter struct {
	pass, fail, head, dim *color.Color
}

func newPainter(colored bool) *painter {
	p := &painter{
		pass: color.New(color.FgGreen),
		fail: color.New(color.FgRed, color.Bold),
		head: color.New(color.Bold),
		dim:  color.New(color.Faint),
	}
	for _, c := range []*color.Color{p.pass, p.fail, p.head, p.dim} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p *painter) status(passed bool) string {
	if passed {
		return p.pass.Sprint("PASS")
	}
	return p.fail.Sprint("FAIL")
}

func writeText(w io.Writer, doc *Document, colored bool) error {
	p := newPainter(colored)
	rpt := doc.Report

	ew := &errWriter{w: w}
	ew.printf("%s %s, run %s\n", doc.App, doc.Version, doc.RunID)
	ew.printf("project %s: %d documents\n", rpt.Root, rpt.Files)

	for _, name := range common.RuleIDNames() {
		rule := common.RuleID(name)
		verdicts := rpt.Verdicts(rule)

		ew.printf("\n%s\n", p.head.Sprint(rule))
		if rule == common.RuleIDRequiredProperties {
			ew.printf("  %s\n", p.dim.Sprintf("elements: %v", rpt.RequiredElements))
		}
		if len(verdicts) == 0 {
			ew.printf("  %s\n", p.dim.Sprint("nothing to check"))
			continue
		}
		for _, v := range verdicts {
			ew.printf("  %s %s\n", p.status(v.Passed()), v.Actual)
			if !v.Passed() {
				ew.printf("       %s\n", p.dim.Sprint("expected: "+v.Expected))
			}
		}
	}

	s := doc.Summary
	ew.printf("\n%d checks, %d passed, %d failed: %s\n", s.Checks, s.Checks-len(s.Failures), len(s.Failures), p.status(s.Passed()))
	return ew.err
}

// errWriter keeps the first write error.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, a ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, a...)
}
