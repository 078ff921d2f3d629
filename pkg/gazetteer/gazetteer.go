// Package gazetteer models the hierarchical location document produced and
// consumed by locmap: country -> region -> city, keyed by UN/LOCODE codes.
// It owns the polymorphic YAML shapes of city entries and names, the parser
// hint flags, and the read-only city property projection used during
// reconciliation.
package gazetteer

import "strings"

// UnknownRegionCode is the placeholder region code used when a location has
// no subdivision specified. It must not collide with any ISO 3166-2 code.
const UnknownRegionCode = ".NONE"

// TodoMarker is appended to synthesized placeholder names that a human still
// needs to fill in.
const TodoMarker = "(TODO)"

// UnknownRegionName is the synthesized name for the placeholder region.
const UnknownRegionName = "Unknown"

// FlagPreserve blocks relocation and obsolete-removal of a city entry.
// It is the only flag token with defined semantics; all other tokens are
// carried through verbatim.
const FlagPreserve = "preserve"

// IsUnknownRegion reports whether code is the placeholder region bucket
// rather than a real subdivision.
func IsUnknownRegion(code string) bool {
	return code == UnknownRegionCode
}

// Document is the root of a hierarchy document.
type Document struct {
	Countries map[string]*Country `yaml:"country"`
}

// Country is a single country node.
type Country struct {
	Name    Name               `yaml:"name,omitempty"`
	Regions map[string]*Region `yaml:"region,omitempty"`
}

// Region is a subdivision node holding cities.
type Region struct {
	Name   Name             `yaml:"name,omitempty"`
	Cities map[string]*City `yaml:"city,omitempty"`
}

// NewDocument returns an empty document ready to be populated.
func NewDocument() *Document {
	return &Document{Countries: map[string]*Country{}}
}

// Country returns the node for code, creating it if absent.
func (d *Document) Country(code string) *Country {
	if d.Countries == nil {
		d.Countries = map[string]*Country{}
	}
	c := d.Countries[code]
	if c == nil {
		c = &Country{}
		d.Countries[code] = c
	}
	return c
}

// Region returns the region node for code, creating it if absent.
func (c *Country) Region(code string) *Region {
	if c.Regions == nil {
		c.Regions = map[string]*Region{}
	}
	r := c.Regions[code]
	if r == nil {
		r = &Region{}
		c.Regions[code] = r
	}
	return r
}

// Put stores a city entry under code.
func (r *Region) Put(code string, city *City) {
	if r.Cities == nil {
		r.Cities = map[string]*City{}
	}
	r.Cities[code] = city
}

// CityProperty is the read-only projection of a city entry used by the
// reconciliation engine: its resolved display name, the region it currently
// lives under, and its flags.
type CityProperty struct {
	Name   string
	Region string
	Flags  Flags
}

// CityProperties walks every region and city under the country and returns
// the projection keyed by city code. It never mutates the tree.
func (c *Country) CityProperties() map[string]CityProperty {
	props := map[string]CityProperty{}
	for regionCode, region := range c.Regions {
		for cityCode, city := range region.Cities {
			props[cityCode] = CityProperty{
				Name:   city.DisplayName(),
				Region: regionCode,
				Flags:  city.Flags,
			}
		}
	}
	return props
}

// Preserved reports whether the entry carries the preserve flag.
func (p CityProperty) Preserved() bool {
	return p.Flags.Has(FlagPreserve)
}

// QualifiedCode formats a fully-qualified location code as
// "COUNTRY REGION CITY".
func QualifiedCode(country, region, city string) string {
	return strings.Join([]string{country, region, city}, " ")
}
