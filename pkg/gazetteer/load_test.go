package gazetteer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadMergesFiles(t *testing.T) {
	dir := t.TempDir()
	ru := writeFile(t, dir, "ru.yaml", `
country:
  RU:
    name: Russia
`)
	de := writeFile(t, dir, "de.yaml", `
country:
  DE:
    name: Germany
`)

	doc, err := Load([]string{ru, de}, nil)
	require.NoError(t, err)
	assert.Len(t, doc.Countries, 2)
	assert.Equal(t, "Russia", doc.Countries["RU"].Name.Default())
	assert.Equal(t, "Germany", doc.Countries["DE"].Name.Default())
}

func TestLoadMergesCountryAcrossFiles(t *testing.T) {
	dir := t.TempDir()
	base := writeFile(t, dir, "base.yaml", `
country:
  RU:
    name: Rossiya
    region:
      MOS:
        name: Moscow Region
        city:
          MOW: Moscow
`)
	// A later file contributing only a name must not erase the region tree.
	names := writeFile(t, dir, "names.yaml", `
country:
  RU:
    name: Russia
`)

	doc, err := Load([]string{base, names}, nil)
	require.NoError(t, err)

	ru := doc.Countries["RU"]
	require.NotNil(t, ru)
	assert.Equal(t, "Russia", ru.Name.Default())
	require.Contains(t, ru.Regions, "MOS")
	assert.Equal(t, "Moscow", ru.Regions["MOS"].Cities["MOW"].DisplayName())
}

func TestIsUpper(t *testing.T) {
	tests := []struct {
		code string
		want bool
	}{
		{"MOW", true},
		{"Mow", false},
		{".NONE", true},
		{"MÖW", true},
		{"möw", false},
		{"MÖw", false},
	}
	for _, tt := range tests {
		if got := isUpper(tt.code); got != tt.want {
			t.Errorf("isUpper(%q) = %v, want %v", tt.code, got, tt.want)
		}
	}
}

func TestLoadCountryFilter(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "all.yaml", `
country:
  RU:
    name: Russia
  DE:
    name: Germany
`)

	doc, err := Load([]string{path}, map[string]bool{"DE": true})
	require.NoError(t, err)
	assert.Len(t, doc.Countries, 1)
	assert.Contains(t, doc.Countries, "DE")
}

func TestLoadSkipsFileWithoutCountryData(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "other.yaml", "translations:\n  RU: {}\n")

	doc, err := Load([]string{path}, nil)
	require.NoError(t, err)
	assert.Empty(t, doc.Countries)
}

func TestLoadMalformedYAMLFails(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "bad.yaml", "country: [::\n")

	_, err := Load([]string{path}, nil)
	assert.Error(t, err)
}

func TestSaveWritesDocument(t *testing.T) {
	dir := t.TempDir()
	doc := NewDocument()
	country := doc.Country("RU")
	country.Name = NewName("Russia")
	country.Region("MOS").Put("MOW", NewCity("Moscow"))

	require.NoError(t, doc.Save(dir, "country", "generated for test"))

	data, err := os.ReadFile(filepath.Join(dir, "country.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "# generated for test")
	assert.Contains(t, string(data), "MOW: Moscow")
}
