package gazetteer

import (
	"sort"

	"github.com/goccy/go-yaml"

	"github.com/geostation/locmap/pkg/errors"
)

// DefaultNameKey is the mandatory key of a translation mapping.
const DefaultNameKey = "default"

// Name is the polymorphic name field of a country, region or city node.
// On the wire it is either a bare string or a mapping with a mandatory
// "default" key plus optional per-language keys.
type Name struct {
	value        string
	translations map[string]string
}

// NewName returns a bare-string name.
func NewName(s string) Name {
	return Name{value: s}
}

// NewTranslatedName returns a translation-mapping name. The mapping is used
// as-is; callers are expected to include the "default" key.
func NewTranslatedName(m map[string]string) Name {
	return Name{translations: m}
}

// Translated reports whether the name uses the translation-mapping shape.
func (n Name) Translated() bool {
	return n.translations != nil
}

// Default resolves the effective display name: the default translation when
// the mapping shape is used, the bare string otherwise.
func (n Name) Default() string {
	if n.translations != nil {
		return n.translations[DefaultNameKey]
	}
	return n.value
}

// IsEmpty reports whether the resolved name is empty.
func (n Name) IsEmpty() bool {
	return n.Default() == ""
}

// SetDefault fills in the effective name, respecting the existing shape:
// the "default" key of a translation mapping, or the bare string.
func (n *Name) SetDefault(s string) {
	if n.translations != nil {
		n.translations[DefaultNameKey] = s
		return
	}
	n.value = s
}

// UnmarshalYAML accepts both the bare-string and the translation-mapping
// shape.
func (n *Name) UnmarshalYAML(data []byte) error {
	var s string
	if err := yaml.Unmarshal(data, &s); err == nil {
		*n = Name{value: s}
		return nil
	}
	var m map[string]string
	if err := yaml.Unmarshal(data, &m); err != nil {
		return errors.WrapParse("yaml", "", err)
	}
	*n = Name{translations: m}
	return nil
}

// MarshalYAML emits the shape the name was built with. Translation mappings
// list the default key first, the remaining languages sorted.
func (n Name) MarshalYAML() (any, error) {
	return n.arrange(), nil
}

// arrange returns the ordered wire representation of the name.
func (n Name) arrange() any {
	if n.translations == nil {
		return n.value
	}
	out := yaml.MapSlice{}
	if v, ok := n.translations[DefaultNameKey]; ok {
		out = append(out, yaml.MapItem{Key: DefaultNameKey, Value: v})
	}
	langs := make([]string, 0, len(n.translations))
	for lang := range n.translations {
		if lang != DefaultNameKey {
			langs = append(langs, lang)
		}
	}
	sort.Strings(langs)
	for _, lang := range langs {
		out = append(out, yaml.MapItem{Key: lang, Value: n.translations[lang]})
	}
	return out
}
