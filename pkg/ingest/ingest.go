// Package ingest parses tabular UN/LOCODE records into a normalized dataset
// ready for reconciliation: country -> region -> city -> display name.
//
// Ingestion applies country filtering, optional name simplification, and
// duplicate/orphan bookkeeping. Structural problems with a row (wrong field
// count) are fatal for the whole file; everything else is skip-and-continue
// and surfaces through Diagnostics.
package ingest

import (
	"encoding/csv"
	"io"
	"os"
	"strings"

	"github.com/geostation/locmap/pkg/errors"
	"github.com/geostation/locmap/pkg/gazetteer"
	"github.com/geostation/locmap/pkg/logging"
)

// recordFields is the fixed field count of the tabular schema.
const recordFields = 12

// Field indexes of the tabular schema.
const (
	fieldCountry = 1
	fieldCity    = 2
	fieldName    = 3
	fieldAltName = 4
	fieldRegion  = 5
	fieldStatus  = 7
)

// unapprovedStatuses are the approval status codes that mark a record as not
// officially approved; such records are dropped when simplification is on.
var unapprovedStatuses = map[string]bool{
	"xx": true,
	"ur": true,
	"rr": true,
}

// Options control an ingestion run.
type Options struct {
	// Countries, when non-empty, limits ingestion to the listed country
	// codes (upper case).
	Countries map[string]bool

	// Simplify runs the name simplifier over every record and drops records
	// it rejects, along with records whose status is not officially approved.
	Simplify bool

	// UseAltName selects the diacritic-free name field instead of the
	// diacritic-bearing one.
	UseAltName bool
}

// Record is a single normalized location record, transient to ingestion.
type Record struct {
	Country string
	Region  string
	City    string
	Name    string
	Status  string
}

// Ingestor accumulates records from one or more tabular sources into a
// single dataset.
type Ingestor struct {
	opts  Options
	ds    Dataset
	diags Diagnostics
	line  int
}

// NewIngestor returns an ingestor ready to read tabular sources.
func NewIngestor(opts Options) *Ingestor {
	return &Ingestor{opts: opts, ds: Dataset{}}
}

// Dataset returns the accumulated dataset.
func (in *Ingestor) Dataset() Dataset {
	return in.ds
}

// Diagnostics returns the findings accumulated so far.
func (in *Ingestor) Diagnostics() *Diagnostics {
	return &in.diags
}

// ReadFile ingests a single tabular file.
func (in *Ingestor) ReadFile(path string) error {
	logging.Info().Str("file", path).Msg("Loading file")
	f, err := os.Open(path)
	if err != nil {
		return errors.WrapIO("read", path, err)
	}
	defer f.Close() //nolint:errcheck // read-only file

	if err := in.Read(f); err != nil {
		if parseErr, ok := err.(*errors.ParseError); ok {
			parseErr.File = path
		}
		return err
	}
	return nil
}

// Read ingests tabular rows from r. A row with a field count other than the
// fixed schema width is a fatal format error.
func (in *Ingestor) Read(r io.Reader) error {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = recordFields
	reader.LazyQuotes = true

	for {
		in.line++
		row, err := reader.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return errors.NewParseError("csv", "", err.Error(), errors.ErrMalformedRecord)
		}
		in.record(row)
	}
}

// record normalizes one row and inserts it into the dataset.
func (in *Ingestor) record(row []string) {
	rec := Record{
		Country: strings.ToUpper(strings.TrimSpace(row[fieldCountry])),
		City:    strings.ToUpper(strings.TrimSpace(row[fieldCity])),
		Region:  strings.ToUpper(strings.TrimSpace(row[fieldRegion])),
		Status:  strings.ToLower(strings.TrimSpace(row[fieldStatus])),
	}
	nameField := fieldName
	if in.opts.UseAltName {
		nameField = fieldAltName
	}
	rec.Name = strings.TrimSpace(row[nameField])

	if rec.Country == "" || rec.City == "" || rec.Name == "" {
		in.skip(rec, "missing mandatory field")
		return
	}
	if len(in.opts.Countries) > 0 && !in.opts.Countries[rec.Country] {
		return
	}
	if rec.Region == "" {
		rec.Region = gazetteer.UnknownRegionCode
		in.diags.Orphans = append(in.diags.Orphans, rec.qualifiedCode())
	}

	original := rec.Name
	if in.opts.Simplify {
		rec.Name = Simplify(original)
		if rec.Name == "" {
			in.skip(rec, "rejected by simplification")
			return
		}
		if unapprovedStatuses[rec.Status] {
			in.skip(rec, "not officially approved: "+rec.Status)
			return
		}
		if strings.Contains(original, ",") {
			in.diags.RenameCandidates = append(in.diags.RenameCandidates, RenameCandidate{
				Code:     rec.qualifiedCode(),
				Original: original,
				Name:     rec.Name,
			})
		}
	}

	if discarded, dup := in.ds.Add(rec.Country, rec.Region, rec.City, rec.Name); dup {
		kept := in.ds[rec.Country][rec.Region][rec.City]
		in.diags.Duplicates = append(in.diags.Duplicates, DuplicateName{
			Code:      rec.qualifiedCode(),
			Kept:      kept,
			Discarded: discarded,
		})
	}
}

func (in *Ingestor) skip(rec Record, reason string) {
	logging.Debug().
		Int("line", in.line).
		Str("code", rec.qualifiedCode()).
		Str("reason", reason).
		Msg("Skipping record")
	in.diags.Skipped = append(in.diags.Skipped, SkippedRecord{
		Line:   in.line,
		Code:   rec.qualifiedCode(),
		Name:   rec.Name,
		Reason: reason,
	})
}

func (r Record) qualifiedCode() string {
	return gazetteer.QualifiedCode(r.Country, r.Region, r.City)
}

// Ingest is a convenience wrapper that reads a single tabular source.
func Ingest(r io.Reader, opts Options) (Dataset, *Diagnostics, error) {
	in := NewIngestor(opts)
	if err := in.Read(r); err != nil {
		return nil, nil, err
	}
	return in.Dataset(), in.Diagnostics(), nil
}
