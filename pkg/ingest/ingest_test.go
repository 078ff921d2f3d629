package ingest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geostation/locmap/pkg/errors"
)

// row builds one 12-field tabular record. Fields containing commas must be
// passed pre-quoted.
func row(country, city, name, altName, region, status string) string {
	return strings.Join([]string{
		"", country, city, name, altName, region, "", status, "", "", "", "",
	}, ",")
}

func ingestRows(t *testing.T, opts Options, rows ...string) (Dataset, *Diagnostics) {
	t.Helper()
	ds, diags, err := Ingest(strings.NewReader(strings.Join(rows, "\n")), opts)
	require.NoError(t, err)
	return ds, diags
}

func TestIngestBasic(t *testing.T) {
	ds, diags := ingestRows(t, Options{},
		row("RU", "MOW", "Moscow", "Moscow", "MOS", "AA"),
		row("ru", "led", "Saint Petersburg", "Saint Petersburg", "spe", "aa"),
	)

	assert.Equal(t, "Moscow", ds["RU"]["MOS"]["MOW"])
	assert.Equal(t, "Saint Petersburg", ds["RU"]["SPE"]["LED"], "codes are case-normalized")
	assert.False(t, diags.HasFindings())
}

func TestIngestWrongFieldCountIsFatal(t *testing.T) {
	_, _, err := Ingest(strings.NewReader("RU,MOW,Moscow"), Options{})
	require.Error(t, err)
	assert.True(t, errors.IsMalformedRecord(err))
}

func TestIngestSkipsIncompleteRows(t *testing.T) {
	ds, diags := ingestRows(t, Options{},
		row("", "MOW", "Moscow", "", "MOS", "AA"),
		row("RU", "", "Moscow", "", "MOS", "AA"),
		row("RU", "MOW", "", "", "MOS", "AA"),
		row("RU", "MOW", "Moscow", "", "MOS", "AA"),
	)

	assert.Equal(t, 1, ds.Len())
	assert.Len(t, diags.Skipped, 3)
	for _, s := range diags.Skipped {
		assert.Equal(t, "missing mandatory field", s.Reason)
	}
}

func TestIngestCountryFilter(t *testing.T) {
	ds, _ := ingestRows(t, Options{Countries: map[string]bool{"RU": true}},
		row("RU", "MOW", "Moscow", "", "MOS", "AA"),
		row("DE", "HAM", "Hamburg", "", "HH", "AA"),
	)

	assert.True(t, ds.Has("RU", "MOS", "MOW"))
	assert.False(t, ds.Has("DE", "HH", "HAM"))
}

func TestIngestOrphanGetsPlaceholderRegion(t *testing.T) {
	ds, diags := ingestRows(t, Options{},
		row("RU", "MOW", "Moscow", "", "", "AA"),
	)

	assert.True(t, ds.Has("RU", ".NONE", "MOW"))
	require.Len(t, diags.Orphans, 1)
	assert.Equal(t, "RU .NONE MOW", diags.Orphans[0])
}

func TestIngestDuplicateKeepsShorterName(t *testing.T) {
	ds, diags := ingestRows(t, Options{},
		row("RU", "LED", "Saint Petersburg", "", "SPE", "AA"),
		row("RU", "LED", "St Petersburg", "", "SPE", "AA"),
	)

	assert.Equal(t, "St Petersburg", ds["RU"]["SPE"]["LED"])
	require.Len(t, diags.Duplicates, 1)
	assert.Equal(t, "St Petersburg", diags.Duplicates[0].Kept)
	assert.Equal(t, "Saint Petersburg", diags.Duplicates[0].Discarded)
}

func TestIngestDuplicateTieKeepsFirst(t *testing.T) {
	ds, diags := ingestRows(t, Options{},
		row("RU", "LED", "Petrograd", "", "SPE", "AA"),
		row("RU", "LED", "Leningrad", "", "SPE", "AA"),
	)

	assert.Equal(t, "Petrograd", ds["RU"]["SPE"]["LED"])
	require.Len(t, diags.Duplicates, 1)
	assert.Equal(t, "Leningrad", diags.Duplicates[0].Discarded)
}

func TestIngestSimplifyRejections(t *testing.T) {
	ds, diags := ingestRows(t, Options{Simplify: true},
		row("GB", "LHR", "London-Heathrow Apt", "", "", "AA"),
		row("RU", "XYZ", "Somewhere", "", "MOS", "XX"),
		row("RU", "ABC", "Somewhere Else", "", "MOS", "UR"),
		row("RU", "MOW", "Moscow", "", "MOS", "AA"),
	)

	assert.Equal(t, 1, ds.Len())
	assert.True(t, ds.Has("RU", "MOS", "MOW"))
	assert.Len(t, diags.Skipped, 3)
}

func TestIngestSimplifyRecordsRenameCandidates(t *testing.T) {
	ds, diags := ingestRows(t, Options{Simplify: true},
		`,RU,VGR,"Vysokaya Gora, Tatarstan",,TA,,AA,,,,`,
	)

	assert.Equal(t, "Vysokaya Gora Tatarstan", ds["RU"]["TA"]["VGR"])
	require.Len(t, diags.RenameCandidates, 1)
	assert.Equal(t, "RU TA VGR", diags.RenameCandidates[0].Code)
	assert.Equal(t, "Vysokaya Gora, Tatarstan", diags.RenameCandidates[0].Original)
}

func TestIngestAltNameField(t *testing.T) {
	ds, _ := ingestRows(t, Options{UseAltName: true},
		row("DE", "MUC", "München", "Munchen", "BY", "AA"),
	)

	assert.Equal(t, "Munchen", ds["DE"]["BY"]["MUC"])
}

func TestIngestMultipleFilesAccumulate(t *testing.T) {
	in := NewIngestor(Options{})
	require.NoError(t, in.Read(strings.NewReader(row("RU", "MOW", "Moscow", "", "MOS", "AA"))))
	require.NoError(t, in.Read(strings.NewReader(row("DE", "HAM", "Hamburg", "", "HH", "AA"))))

	assert.Equal(t, 2, in.Dataset().Len())
}
