package rules

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"webcheck/common"
	"webcheck/config"
	"webcheck/contrast"
	"webcheck/project"
)

// Report holds verdicts of all rule categories for one project.
type Report struct {
	Root  string `json:"root" yaml:"root"`
	Files int    `json:"files" yaml:"files"`

	AppliesCSS   []Verdict `json:"applies_css" yaml:"applies_css"`
	InlineStyles []Verdict `json:"inline_styles" yaml:"inline_styles"`
	Fonts        []Verdict `json:"fonts" yaml:"fonts"`
	// Mandated and present elements property requirements were checked for.
	RequiredElements   []string    `json:"required_elements" yaml:"required_elements"`
	RequiredProperties []Verdict   `json:"required_properties" yaml:"required_properties"`
	Contrast           []Verdict   `json:"contrast" yaml:"contrast"`
	Breakpoints        Breakpoints `json:"breakpoints" yaml:"breakpoints"`
}

// Verdicts returns verdicts of a rule category in evaluation order.
func (r *Report) Verdicts(rule common.RuleID) []Verdict {
	switch rule {
	case common.RuleIDAppliesCss:
		return r.AppliesCSS
	case common.RuleIDStyleAttribute:
		return r.InlineStyles
	case common.RuleIDFontFamilies:
		return r.Fonts
	case common.RuleIDRequiredProperties:
		return r.RequiredProperties
	case common.RuleIDColorContrast:
		return r.Contrast
	case common.RuleIDBreakpoints:
		return []Verdict{r.Breakpoints.Verdict}
	}
	return nil
}

// Pairs returns message pairs of a rule category in consumer order.
func (r *Report) Pairs(rule common.RuleID) [][2]string {
	vs := r.Verdicts(rule)
	out := make([][2]string, 0, len(vs))
	for _, v := range vs {
		out = append(out, v.Pair())
	}
	return out
}

// All returns every verdict, categories in fixed order.
func (r *Report) All() []Verdict {
	var out []Verdict
	for _, name := range common.RuleIDNames() {
		out = append(out, r.Verdicts(common.RuleID(name))...)
	}
	return out
}

// Failed returns number of failing verdicts.
func (r *Report) Failed() int {
	n := 0
	for _, v := range r.All() {
		if !v.Passed() {
			n++
		}
	}
	return n
}

// ContrastVerdicts converts contrast results to verdicts. Expected message is
// the compliant form of the actual one.
func ContrastVerdicts(results []contrast.Result) []Verdict {
	verdicts := make([]Verdict, 0, len(results))
	for _, res := range results {
		msg := res.Message()
		v := newVerdict(common.RuleIDColorContrast, res.File, common.PairOrderActualFirst, msg, passForm(msg))
		v.Subject, v.Detail = res.Selector, fmt.Sprintf("%.2f", res.Ratio)
		verdicts = append(verdicts, v)
	}
	return verdicts
}

// Evaluate runs every audit over the snapshot. Audits are independent and run
// concurrently, each filling its own part of the report. Only cancellation
// is reported as an error.
func Evaluate(ctx context.Context, snap *project.Snapshot, cfg *config.RulesConfig, log *zap.Logger) (*Report, error) {
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("rules")

	rpt := &Report{Root: snap.Root, Files: len(snap.Files)}

	g, gctx := errgroup.WithContext(ctx)
	run := func(name string, audit func()) {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			start := time.Now()
			audit()
			log.Debug("Audit done", zap.String("audit", name), zap.Duration("elapsed", time.Since(start)))
			return nil
		})
	}

	run("applies-css", func() {
		rpt.AppliesCSS = AuditAppliesCSS(snap, cfg.AppliesCSS.FailPeriod)
	})
	run("inline-styles", func() {
		rpt.InlineStyles = AuditInlineStyles(snap, cfg.InlineStyle.Attribute)
	})
	run("fonts", func() {
		rpt.Fonts = AuditFonts(snap.FontRules(), &cfg.Fonts)
	})
	run("required-properties", func() {
		rpt.RequiredElements, rpt.RequiredProperties = AuditRequiredProperties(snap, &cfg.Required)
	})
	run("contrast", func() {
		rpt.Contrast = ContrastVerdicts(contrast.Report(snap, cfg.Contrast.Minimum, log))
	})
	run("breakpoints", func() {
		rpt.Breakpoints = AuditBreakpoints(snap, cfg.Breakpoints.Marker)
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	log.Debug("Evaluation done", zap.Int("files", rpt.Files), zap.Int("failed", rpt.Failed()))
	return rpt, nil
}
