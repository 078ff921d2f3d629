package gazetteer

import (
	"sort"

	"github.com/goccy/go-yaml"
)

// Node ordering of the emitted document: name-like keys first, child maps
// last, the placeholder region after every real one. Everything else is
// alphabetical so diffs between runs stay readable.

// MarshalYAML emits the document with deterministic node ordering.
func (d *Document) MarshalYAML() (any, error) {
	return d.arrange(), nil
}

func (d *Document) arrange() yaml.MapSlice {
	countries := yaml.MapSlice{}
	for _, code := range sortedKeys(d.Countries) {
		countries = append(countries, yaml.MapItem{Key: code, Value: d.Countries[code].arrange()})
	}
	return yaml.MapSlice{{Key: "country", Value: countries}}
}

func (c *Country) arrange() yaml.MapSlice {
	out := yaml.MapSlice{}
	if !c.Name.IsEmpty() || c.Name.Translated() {
		out = append(out, yaml.MapItem{Key: "name", Value: c.Name.arrange()})
	}
	if len(c.Regions) > 0 {
		regions := yaml.MapSlice{}
		codes := sortedKeys(c.Regions)
		// The placeholder bucket sorts before real codes ("." < "A"); it
		// belongs at the end instead.
		for _, code := range codes {
			if !IsUnknownRegion(code) {
				regions = append(regions, yaml.MapItem{Key: code, Value: c.Regions[code].arrange()})
			}
		}
		if r, ok := c.Regions[UnknownRegionCode]; ok {
			regions = append(regions, yaml.MapItem{Key: UnknownRegionCode, Value: r.arrange()})
		}
		out = append(out, yaml.MapItem{Key: "region", Value: regions})
	}
	return out
}

func (r *Region) arrange() yaml.MapSlice {
	out := yaml.MapSlice{}
	if !r.Name.IsEmpty() || r.Name.Translated() {
		out = append(out, yaml.MapItem{Key: "name", Value: r.Name.arrange()})
	}
	if len(r.Cities) > 0 {
		cities := yaml.MapSlice{}
		for _, code := range sortedKeys(r.Cities) {
			cities = append(cities, yaml.MapItem{Key: code, Value: r.Cities[code].arrange()})
		}
		out = append(out, yaml.MapItem{Key: "city", Value: cities})
	}
	return out
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
