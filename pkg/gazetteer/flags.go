package gazetteer

import "strings"

// Flags is the raw comma-separated hint-flag field of a city entry.
//
// Only the preserve token has defined semantics; everything else is opaque
// data that must survive a round trip untouched, so the raw string is kept
// verbatim and only inspected on demand.
type Flags string

// Has reports whether the flag set contains token, comparing each
// comma-separated element case-insensitively after trimming.
func (f Flags) Has(token string) bool {
	for _, t := range strings.Split(string(f), ",") {
		if strings.EqualFold(strings.TrimSpace(t), token) {
			return true
		}
	}
	return false
}

// IsZero reports whether no flags are set.
func (f Flags) IsZero() bool {
	return f == ""
}

// String returns the verbatim flag field.
func (f Flags) String() string {
	return string(f)
}
