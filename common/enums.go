// The only reason this package exists is that both configuration and the
// rule engine need the same enums and neither should import the other.
package common

// Rule category verdicts are produced for.
// ENUM(applies-css, style-attribute, font-families, required-properties, color-contrast, breakpoints)
type RuleID string

// Outcome of a single check.
// ENUM(pass, fail)
type Status string

func (s Status) Passed() bool {
	return s == StatusPass
}

// Prefix returns the message prefix for the status, e.g. "pass: ".
func (s Status) Prefix() string {
	return string(s) + ": "
}

// Order in which the consuming assertion expects message pairs.
// ENUM(actualFirst, expectedFirst)
type PairOrder int

// Specification of requested output type.
// ENUM(text, json, yaml)
type OutputFmt int

func (o OutputFmt) Ext() string {
	switch o {
	case OutputFmtText:
		return ".txt"
	case OutputFmtJson:
		return ".json"
	case OutputFmtYaml:
		return ".yaml"
	default:
		// this should never happen
		panic("unsupported format requested")
	}
}
