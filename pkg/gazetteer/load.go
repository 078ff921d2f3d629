package gazetteer

import (
	"os"
	"unicode"

	"github.com/goccy/go-yaml"

	"github.com/geostation/locmap/pkg/errors"
	"github.com/geostation/locmap/pkg/logging"
)

// Load reads every hierarchy file in paths and merges the result into a
// single document. When filter is non-empty only the listed country codes
// (upper case) are taken. A file without top-level country data is skipped
// with a warning rather than failing the run.
func Load(paths []string, filter map[string]bool) (*Document, error) {
	doc := NewDocument()
	for _, path := range paths {
		logging.Info().Str("file", path).Msg("Loading hierarchy file")
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.WrapIO("read", path, err)
		}
		var src Document
		if err := yaml.Unmarshal(data, &src); err != nil {
			return nil, errors.WrapParse("yaml", path, err)
		}
		if src.Countries == nil {
			logging.Warn().Str("file", path).Msg("No country data found, skipping file")
			continue
		}
		warnCodeStyle(&src)
		for code, country := range src.Countries {
			if len(filter) > 0 && !filter[code] {
				continue
			}
			mergeCountry(doc.Country(code), country)
		}
	}
	return doc, nil
}

// mergeCountry folds src into dst at the country-key level: a later file
// contributing only a name does not erase an earlier file's region tree.
func mergeCountry(dst, src *Country) {
	if !src.Name.IsEmpty() || src.Name.Translated() {
		dst.Name = src.Name
	}
	if src.Regions != nil {
		dst.Regions = src.Regions
	}
}

// warnCodeStyle flags country, region and city codes that are not plain
// upper case. Unquoted YAML scalars such as NO (Norway) are prone to being
// hand-edited into other spellings that no longer match dataset codes.
func warnCodeStyle(doc *Document) {
	for countryCode, country := range doc.Countries {
		if len(countryCode) != 2 {
			logging.Warn().Str("country", countryCode).Msg("Invalid country code")
			continue
		}
		if !isUpper(countryCode) {
			logging.Warn().Str("country", countryCode).Msg("Country code contains mixed case letters")
		}
		for regionCode, region := range country.Regions {
			if !isUpper(regionCode) {
				logging.Warn().Str("region", regionCode).Msg("Region code contains mixed case letters")
			}
			for cityCode := range region.Cities {
				if !isUpper(cityCode) {
					logging.Warn().Str("city", cityCode).Msg("City code contains mixed case letters")
				}
			}
		}
	}
}

// isUpper reports whether every letter in s is upper case.
func isUpper(s string) bool {
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
	}
	return true
}
