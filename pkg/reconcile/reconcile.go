package reconcile

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/geostation/locmap/pkg/gazetteer"
	"github.com/geostation/locmap/pkg/ingest"
	"github.com/geostation/locmap/pkg/logging"
)

// action is the resolution picked for one incoming city. Exactly one action
// applies per city; decide is a pure function over the pre-merge state so the
// decision can be tested apart from the mutation that applies it.
type action int

const (
	// actionAdd inserts a new in-place-named entry.
	actionAdd action = iota
	// actionFill fills a missing name on an entry already at the same region.
	actionFill
	// actionMove relocates an entry out of the placeholder region.
	actionMove
	// actionSkip leaves a preserved placeholder-region entry untouched.
	actionSkip
	// actionConflict records a region disagreement without mutating anything.
	actionConflict
)

// decide picks the resolution for a city incoming at region, given its
// pre-merge state (nil when the city is not present anywhere under the
// country). Total over all inputs.
func decide(existing *gazetteer.CityProperty, region string) action {
	switch {
	case existing == nil:
		return actionAdd
	case existing.Region == region:
		return actionFill
	case !gazetteer.IsUnknownRegion(existing.Region):
		// Two authoritative sources disagree about the region; never merge
		// silently, even on repeated runs.
		return actionConflict
	case existing.Preserved():
		return actionSkip
	default:
		return actionMove
	}
}

// Reconcile merges the dataset into doc in place and returns the resulting
// stat. When removeObsolete is set, cities absent from the dataset and not
// flagged preserve are deleted from the countries being processed.
func Reconcile(doc *gazetteer.Document, ds ingest.Dataset, removeObsolete bool) *Stat {
	stat := &Stat{}
	for _, countryCode := range sortedKeys(ds) {
		reconcileCountry(doc, countryCode, ds[countryCode], removeObsolete, stat)
	}
	return stat
}

func reconcileCountry(doc *gazetteer.Document, countryCode string, regions map[string]map[string]string, removeObsolete bool, stat *Stat) {
	country := doc.Country(countryCode)

	// The property table must reflect pre-merge state for correct move and
	// conflict detection.
	props := country.CityProperties()

	if country.Name.IsEmpty() {
		country.Name.SetDefault(placeholderName(countryCode))
		stat.Todo = true
	}

	seen := map[string]bool{}
	for _, regionCode := range sortedKeys(regions) {
		region := country.Region(regionCode)
		if region.Name.IsEmpty() {
			if gazetteer.IsUnknownRegion(regionCode) {
				region.Name.SetDefault(gazetteer.UnknownRegionName)
			} else {
				region.Name.SetDefault(placeholderName(regionCode))
			}
			stat.Todo = true
		}

		for _, cityCode := range sortedKeys(regions[regionCode]) {
			name := regions[regionCode][cityCode]
			seen[cityCode] = true

			var existing *gazetteer.CityProperty
			if prop, ok := props[cityCode]; ok {
				existing = &prop
			}
			switch decide(existing, regionCode) {
			case actionAdd:
				region.Put(cityCode, gazetteer.NewCity(name))
				stat.Added = append(stat.Added, Entry{
					Code: gazetteer.QualifiedCode(countryCode, regionCode, cityCode),
					Name: name,
				})

			case actionFill:
				region.Cities[cityCode].FillName(name)

			case actionMove:
				src := country.Regions[existing.Region]
				city, ok := src.Cities[cityCode]
				if !ok {
					// Already relocated by an earlier region of this run.
					continue
				}
				delete(src.Cities, cityCode)
				region.Put(cityCode, city)
				stat.Moved = append(stat.Moved, Move{
					From: gazetteer.QualifiedCode(countryCode, existing.Region, cityCode),
					To:   gazetteer.QualifiedCode(countryCode, regionCode, cityCode),
					Name: resolvedName(existing.Name, name),
				})

			case actionSkip:
				logging.Debug().
					Str("city", gazetteer.QualifiedCode(countryCode, existing.Region, cityCode)).
					Msg("Preserved city left in placeholder region")

			case actionConflict:
				stat.Conflicts = append(stat.Conflicts, Conflict{
					Existing: gazetteer.QualifiedCode(countryCode, existing.Region, cityCode),
					Incoming: gazetteer.QualifiedCode(countryCode, regionCode, cityCode),
					Name:     resolvedName(existing.Name, name),
				})
			}
		}
	}

	if removeObsolete {
		for _, cityCode := range sortedKeys(props) {
			prop := props[cityCode]
			if seen[cityCode] || prop.Preserved() {
				continue
			}
			delete(country.Regions[prop.Region].Cities, cityCode)
			stat.Deleted = append(stat.Deleted, Entry{
				Code: gazetteer.QualifiedCode(countryCode, prop.Region, cityCode),
				Name: prop.Name,
			})
		}
	}
}

// placeholderName synthesizes a name for a country or region that has none:
// the capitalized code plus the TODO marker.
func placeholderName(code string) string {
	capitalized := cases.Title(language.English).String(strings.ToLower(code))
	return capitalized + " " + gazetteer.TodoMarker
}

// resolvedName prefers the name the hierarchy already resolves to, falling
// back to the incoming dataset name.
func resolvedName(existing, incoming string) string {
	if existing != "" {
		return existing
	}
	return incoming
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
