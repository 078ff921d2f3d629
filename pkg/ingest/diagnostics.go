package ingest

// SkippedRecord is a row that was dropped during ingestion, with the reason.
type SkippedRecord struct {
	Line   int
	Code   string // fully-qualified code, as far as it could be assembled
	Name   string
	Reason string
}

// DuplicateName records a losing candidate of the shorter-name-wins rule.
type DuplicateName struct {
	Code      string
	Kept      string
	Discarded string
}

// RenameCandidate flags a record whose original name contained commas:
// simplification merged the parts, but a human should review the result.
type RenameCandidate struct {
	Code     string
	Original string
	Name     string
}

// Diagnostics collects the informational findings of an ingestion run.
// Nothing in here ever changes program exit status.
type Diagnostics struct {
	Skipped          []SkippedRecord
	Duplicates       []DuplicateName
	Orphans          []string // qualified codes parked under the placeholder region
	RenameCandidates []RenameCandidate
}

// HasFindings reports whether any diagnostic was recorded.
func (d *Diagnostics) HasFindings() bool {
	return len(d.Skipped) > 0 || len(d.Duplicates) > 0 ||
		len(d.Orphans) > 0 || len(d.RenameCandidates) > 0
}
