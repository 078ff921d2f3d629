package ingest

// Dataset is the ingestor output: country -> region -> city -> name.
// At most one name is kept per (country, region, city) triple.
type Dataset map[string]map[string]map[string]string

// Add inserts a name under the (country, region, city) triple. When the
// triple already holds a name the shorter of the two is retained, first one
// winning ties, and the discarded name is returned with dup set.
func (d Dataset) Add(country, region, city, name string) (discarded string, dup bool) {
	regions := d[country]
	if regions == nil {
		regions = map[string]map[string]string{}
		d[country] = regions
	}
	cities := regions[region]
	if cities == nil {
		cities = map[string]string{}
		regions[region] = cities
	}
	existing, ok := cities[city]
	if !ok {
		cities[city] = name
		return "", false
	}
	if len(name) < len(existing) {
		cities[city] = name
		return existing, true
	}
	return name, true
}

// Has reports whether the triple is present.
func (d Dataset) Has(country, region, city string) bool {
	_, ok := d[country][region][city]
	return ok
}

// Len returns the total number of city names in the dataset.
func (d Dataset) Len() int {
	n := 0
	for _, regions := range d {
		for _, cities := range regions {
			n += len(cities)
		}
	}
	return n
}
