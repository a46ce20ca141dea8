package rules

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/maruel/natural"

	"webcheck/common"
	"webcheck/config"
	"webcheck/css"
	"webcheck/project"
)

const alternativeSep = " or "

// RequiredSpec maps element name (or "A or B" alternative group) to
// properties the element must have applied.
type RequiredSpec map[string][]string

// Options returns element names of a key, alternative groups are split.
func Options(key string) []string {
	if !strings.Contains(key, alternativeSep) {
		return []string{strings.TrimSpace(key)}
	}
	var out []string
	for _, opt := range strings.Split(key, alternativeSep) {
		if opt = strings.TrimSpace(opt); opt != "" {
			out = append(out, opt)
		}
	}
	return out
}

func sortedSet(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Sort(natural.StringSlice(out))
	return out
}

// ResolveRequiredAndUsed returns mandated elements having property
// requirements together with every configured element (or alternative)
// present in at least one document.
func ResolveRequiredAndUsed(snap *project.Snapshot, cfg *config.RequiredConfig) []string {
	used := make(map[string]bool)

	for _, el := range cfg.Elements {
		if _, ok := cfg.Properties[el]; ok {
			used[el] = true
		}
	}

	keys := cfg.RequiredKeys()
	for _, f := range snap.Files {
		for _, key := range keys {
			if strings.Contains(key, alternativeSep) {
				for _, opt := range Options(key) {
					if f.Doc.CountTag(opt) > 0 {
						used[opt] = true
					}
				}
			}
			// unsplit key is looked up as well
			if f.Doc.CountTag(key) > 0 {
				used[key] = true
			}
		}
	}
	return sortedSet(used)
}

// ActualElements resolves names to concrete tag names of elements found in
// documents.
func ActualElements(snap *project.Snapshot, names []string) []string {
	actual := make(map[string]bool)
	for _, f := range snap.Files {
		for _, name := range names {
			if els := f.Doc.ElementsByTag(name); len(els) > 0 {
				actual[els[0].Tag] = true
			}
		}
	}
	return sortedSet(actual)
}

// appliesProperty reports whether declared property sets required one
// directly or through a longhand (padding-top for padding).
func appliesProperty(declared, required string) bool {
	return declared == required || strings.HasPrefix(declared, required+"-")
}

// PropertiesApplied reports, for every document, configured element and
// required property, whether any rule targeting the element sets the
// property. Verdicts are ordered by file, element, property.
func PropertiesApplied(snap *project.Snapshot, spec RequiredSpec) []Verdict {
	keys := make([]string, 0, len(spec))
	for k := range spec {
		keys = append(keys, k)
	}
	sort.Sort(natural.StringSlice(keys))

	var verdicts []Verdict
	for _, f := range snap.Files {
		name := f.Name()
		decls := f.Declarations()

		type pair struct{ element, property string }
		seen := make(map[pair]bool)
		for _, key := range keys {
			for _, element := range Options(key) {
				element = strings.ToLower(element)
				for _, property := range spec[key] {
					property = strings.ToLower(strings.TrimSpace(property))
					if seen[pair{element, property}] {
						continue
					}
					seen[pair{element, property}] = true

					applied := slices.ContainsFunc(decls, func(d css.Declaration) bool {
						return appliesProperty(d.Property, property) && css.Targets(d.Selector, element)
					})

					expected := fmt.Sprintf("pass: %s applies %s to %s.", name, property, element)
					actual := expected
					if !applied {
						actual = fmt.Sprintf("fail: %s does not apply %s to %s.", name, property, element)
					}
					v := newVerdict(common.RuleIDRequiredProperties, name, common.PairOrderActualFirst, actual, expected)
					v.Subject, v.Detail = element, property
					verdicts = append(verdicts, v)
				}
			}
		}
	}
	return verdicts
}

// FilterPropertiesReport keeps verdicts about the given elements only,
// duplicate messages are dropped.
func FilterPropertiesReport(report []Verdict, elements []string) []Verdict {
	keep := make(map[string]bool, len(elements))
	for _, el := range elements {
		keep[el] = true
	}
	seen := make(map[string]bool)
	var out []Verdict
	for _, v := range report {
		if !keep[v.Subject] || seen[v.Actual] {
			continue
		}
		seen[v.Actual] = true
		out = append(out, v)
	}
	return out
}

// AuditRequiredProperties combines resolver and filter: property verdicts
// for required elements which are actually used in the project.
func AuditRequiredProperties(snap *project.Snapshot, cfg *config.RequiredConfig) (used []string, verdicts []Verdict) {
	used = ResolveRequiredAndUsed(snap, cfg)
	report := PropertiesApplied(snap, RequiredSpec(cfg.Properties))
	return used, FilterPropertiesReport(report, ActualElements(snap, used))
}
