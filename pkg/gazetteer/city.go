package gazetteer

import (
	"github.com/goccy/go-yaml"

	"github.com/geostation/locmap/pkg/errors"
)

// FlagsKey is the city entry field carrying parser hint flags.
const FlagsKey = "flags"

// City is a single city entry. On the wire it is either a bare name string
// ("in-place naming") or a mapping with a name field and an optional
// comma-separated flags field.
type City struct {
	// inline marks the bare-string shape so a round trip keeps it.
	inline bool

	Name  Name
	Flags Flags
}

// NewCity returns an in-place-named city entry, the shape used for cities
// added from a fresh dataset.
func NewCity(name string) *City {
	return &City{inline: true, Name: NewName(name)}
}

// Inline reports whether the entry uses the bare-string shape.
func (c *City) Inline() bool {
	return c.inline
}

// DisplayName resolves the effective name of the entry: default translation,
// then bare name field, then in-place string, then empty.
func (c *City) DisplayName() string {
	return c.Name.Default()
}

// FillName sets the entry's name if it is currently empty, keeping whatever
// shape the entry already uses. An existing non-empty name is never
// overwritten.
func (c *City) FillName(name string) {
	if c.Name.IsEmpty() {
		c.Name.SetDefault(name)
	}
}

// cityRecord is the mapping shape of a city entry.
type cityRecord struct {
	Name  Name  `yaml:"name"`
	Flags Flags `yaml:"flags"`
}

// UnmarshalYAML accepts both the bare-string and the mapping shape.
func (c *City) UnmarshalYAML(data []byte) error {
	var s string
	if err := yaml.Unmarshal(data, &s); err == nil {
		*c = City{inline: true, Name: NewName(s)}
		return nil
	}
	var rec cityRecord
	if err := yaml.Unmarshal(data, &rec); err != nil {
		return errors.WrapParse("yaml", "", err)
	}
	*c = City{Name: rec.Name, Flags: rec.Flags}
	return nil
}

// MarshalYAML emits the shape the entry was loaded or created with.
func (c *City) MarshalYAML() (any, error) {
	return c.arrange(), nil
}

// arrange returns the ordered wire representation of the entry. An inline
// entry that has since grown flags is promoted to the mapping shape.
func (c *City) arrange() any {
	if c.inline && c.Flags.IsZero() {
		return c.Name.Default()
	}
	out := yaml.MapSlice{{Key: "name", Value: c.Name.arrange()}}
	if !c.Flags.IsZero() {
		out = append(out, yaml.MapItem{Key: FlagsKey, Value: c.Flags.String()})
	}
	return out
}
