package ingest

import (
	"regexp"
	"strings"
)

// Name simplification heuristics. UN/LOCODE display names carry sub-locality
// separators, parenthesized remarks, alternate namings and transport-node
// suffixes; Simplify reduces a raw name to a canonical settlement name or
// rejects the record outright.

var (
	remarkPattern = regexp.MustCompile(`\([^)]*\)`)

	// Transport node suffixes. The narrow pattern rejects a name segment on
	// its own; the broad one only applies to the last hyphen segment.
	narrowSuffixPattern = regexp.MustCompile(`(?i) (Pt|Apt|FPSO)$`)
	broadSuffixPattern  = regexp.MustCompile(`(?i) (Port|Airport|Terminal)$`)

	// Whole-word abbreviation expansions, applied last.
	abbreviations = []struct {
		pattern *regexp.Regexp
		repl    string
	}{
		{regexp.MustCompile(`(?i)\bI\.`), "Island"},
		{regexp.MustCompile(`(?i)\bPto\b`), "Puerto"},
		{regexp.MustCompile(`(?i)\bSt\b\.?`), "Saint"},
	}
)

// Simplify reduces a raw location name to its canonical form. An empty
// return means the record should be rejected entirely.
func Simplify(raw string) string {
	// Composite names ("City/Suburb") and the ambiguous "Name -Part"
	// convention are out of scope.
	if strings.Contains(raw, "/") {
		return ""
	}
	if strings.Contains(raw, " -") {
		return ""
	}

	name := collapse(remarkPattern.ReplaceAllString(raw, ""))

	// Alternate namings: "Old = New" keeps the rightmost, most current form.
	if idx := strings.LastIndex(name, "="); idx >= 0 {
		name = collapse(name[idx+1:])
	}

	// Comma-separated name parts are merged.
	name = collapse(strings.ReplaceAll(name, ",", ""))

	if strings.Contains(name, "-") {
		segments := strings.Split(name, "-")
		for _, segment := range segments {
			if narrowSuffixPattern.MatchString(segment) {
				return ""
			}
		}
		if broadSuffixPattern.MatchString(segments[len(segments)-1]) {
			return ""
		}
	} else if narrowSuffixPattern.MatchString(name) {
		return ""
	}

	for _, abbr := range abbreviations {
		name = abbr.pattern.ReplaceAllString(name, abbr.repl)
	}
	return collapse(name)
}

// collapse trims and squeezes internal whitespace to single spaces.
func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
