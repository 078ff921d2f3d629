package gazetteer

import (
	"strings"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDoc = `
country:
  RU:
    name: Russia
    region:
      MOS:
        name:
          default: Moscow Region
          ru: Московская область
        city:
          MOW: Moscow
          ZVG:
            name: Zvenigorod
            flags: preserve, odd
      .NONE:
        name: Unknown
        city:
          VGR:
            name:
              default: Vysokaya Gora
`

func loadSample(t *testing.T) *Document {
	t.Helper()
	var doc Document
	require.NoError(t, yaml.Unmarshal([]byte(sampleDoc), &doc))
	return &doc
}

func TestUnmarshalPolymorphicShapes(t *testing.T) {
	doc := loadSample(t)

	ru := doc.Countries["RU"]
	require.NotNil(t, ru)
	assert.Equal(t, "Russia", ru.Name.Default())
	assert.False(t, ru.Name.Translated())

	mos := ru.Regions["MOS"]
	require.NotNil(t, mos)
	assert.True(t, mos.Name.Translated())
	assert.Equal(t, "Moscow Region", mos.Name.Default())

	mow := mos.Cities["MOW"]
	require.NotNil(t, mow)
	assert.True(t, mow.Inline())
	assert.Equal(t, "Moscow", mow.DisplayName())

	zvg := mos.Cities["ZVG"]
	require.NotNil(t, zvg)
	assert.False(t, zvg.Inline())
	assert.Equal(t, "Zvenigorod", zvg.DisplayName())

	vgr := ru.Regions[UnknownRegionCode].Cities["VGR"]
	require.NotNil(t, vgr)
	assert.Equal(t, "Vysokaya Gora", vgr.DisplayName())
}

func TestFlags(t *testing.T) {
	doc := loadSample(t)
	flags := doc.Countries["RU"].Regions["MOS"].Cities["ZVG"].Flags

	assert.True(t, flags.Has(FlagPreserve))
	assert.True(t, flags.Has("PRESERVE"), "flag matching is case-insensitive")
	assert.True(t, flags.Has("odd"))
	assert.False(t, flags.Has("missing"))
}

func TestFlagsRoundTripVerbatim(t *testing.T) {
	doc := loadSample(t)

	out, err := doc.FormatYAML()
	require.NoError(t, err)
	// Unrecognized tokens and the original spacing survive untouched.
	assert.Contains(t, out, "preserve, odd")
}

func TestCityProperties(t *testing.T) {
	doc := loadSample(t)
	props := doc.Countries["RU"].CityProperties()

	require.Len(t, props, 3)
	assert.Equal(t, CityProperty{Name: "Moscow", Region: "MOS"}, props["MOW"])
	assert.Equal(t, "MOS", props["ZVG"].Region)
	assert.True(t, props["ZVG"].Preserved())
	assert.Equal(t, UnknownRegionCode, props["VGR"].Region)
	assert.Equal(t, "Vysokaya Gora", props["VGR"].Name)
}

func TestNameFillRespectsShape(t *testing.T) {
	bare := NewName("")
	bare.SetDefault("Moscow")
	assert.Equal(t, "Moscow", bare.Default())
	assert.False(t, bare.Translated())

	translated := NewTranslatedName(map[string]string{"ru": "Москва"})
	translated.SetDefault("Moscow")
	assert.Equal(t, "Moscow", translated.Default())
	assert.True(t, translated.Translated())
}

func TestCityFillNameDoesNotOverwrite(t *testing.T) {
	city := NewCity("Moscow")
	city.FillName("Other")
	assert.Equal(t, "Moscow", city.DisplayName())

	empty := &City{}
	empty.FillName("Moscow")
	assert.Equal(t, "Moscow", empty.DisplayName())
}

func TestMarshalOrdering(t *testing.T) {
	doc := loadSample(t)

	out, err := doc.FormatYAML()
	require.NoError(t, err)

	// name precedes region, real regions precede the placeholder bucket,
	// and the default translation comes first.
	nameIdx := strings.Index(out, "name: Russia")
	regionIdx := strings.Index(out, "region:")
	mosIdx := strings.Index(out, "MOS:")
	noneIdx := strings.Index(out, UnknownRegionCode)
	defaultIdx := strings.Index(out, "default: Moscow Region")
	ruIdx := strings.Index(out, "ru: ")

	require.GreaterOrEqual(t, nameIdx, 0)
	assert.Less(t, nameIdx, regionIdx)
	assert.Less(t, mosIdx, noneIdx)
	assert.Less(t, defaultIdx, ruIdx)
}

func TestFormatYAMLHeader(t *testing.T) {
	doc := loadSample(t)

	out, err := doc.FormatYAML("Generated by locmap", "https://example.test")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "# Generated by locmap"))
	assert.Contains(t, out, "# https://example.test")

	// Every header line must survive, in order, ahead of the document body.
	firstIdx := strings.Index(out, "# Generated by locmap")
	secondIdx := strings.Index(out, "# https://example.test")
	bodyIdx := strings.Index(out, "country:")
	require.GreaterOrEqual(t, firstIdx, 0)
	require.GreaterOrEqual(t, secondIdx, 0)
	assert.Less(t, firstIdx, secondIdx)
	assert.Less(t, secondIdx, bodyIdx)
}

func TestMarshalRoundTrip(t *testing.T) {
	doc := loadSample(t)

	out, err := doc.FormatYAML()
	require.NoError(t, err)

	var again Document
	require.NoError(t, yaml.Unmarshal([]byte(out), &again))
	assert.Equal(t, "Moscow", again.Countries["RU"].Regions["MOS"].Cities["MOW"].DisplayName())
	assert.True(t, again.Countries["RU"].Regions["MOS"].Cities["ZVG"].Flags.Has(FlagPreserve))
	assert.Equal(t, "Moscow Region", again.Countries["RU"].Regions["MOS"].Name.Default())
}

func TestQualifiedCode(t *testing.T) {
	assert.Equal(t, "RU MOS MOW", QualifiedCode("RU", "MOS", "MOW"))
	assert.Equal(t, "RU .NONE MOW", QualifiedCode("RU", UnknownRegionCode, "MOW"))
}
