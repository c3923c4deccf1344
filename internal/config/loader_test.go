package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/latticeui/lattice/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
blocks:
  - name: hero
    type: section
    props:
      className: hero
      columns: 2
      fullWidth: true
      theme:
        accent: "#ff0055"
    content: $headline
    children:
      - type: button
        content: $cta
    i18n:
      fr:
        content: null
        props:
          className: hero-fr
pages:
  - path: /
    title: Home
    sections:
      - block: hero
        vars:
          headline: Welcome
          cta: Start
      - type: footer
        content: (c) Lattice
languages:
  default: en
  supported:
    - code: en
    - code: fr
      direction: ltr
  translations:
    fr:
      nav.home: Accueil
`

func TestParseYAML(t *testing.T) {
	site, err := Parse([]byte(sampleYAML), ".yaml")
	require.NoError(t, err)

	require.Len(t, site.Blocks, 1)
	hero := site.Blocks[0]
	assert.Equal(t, "hero", hero.Name)
	assert.Equal(t, "section", hero.Type)
	assert.Equal(t, "$headline", hero.Content)

	// Props land in their tagged-union form with numbers as float64
	assert.Equal(t, domain.KindString, hero.Props["className"].Kind())
	assert.Equal(t, "hero", hero.Props["className"].Str())
	assert.Equal(t, domain.KindNumber, hero.Props["columns"].Kind())
	assert.Equal(t, float64(2), hero.Props["columns"].Num())
	assert.Equal(t, domain.KindBool, hero.Props["fullWidth"].Kind())
	assert.True(t, hero.Props["fullWidth"].Bool())
	assert.Equal(t, domain.KindObject, hero.Props["theme"].Kind())
	assert.Equal(t, "#ff0055", hero.Props["theme"].Object()["accent"])

	require.Len(t, hero.Children, 1)
	assert.Equal(t, "button", hero.Children[0].Type)

	// i18n overrides survive the generic decode
	override, ok := hero.I18n["fr"]
	require.True(t, ok)
	assert.Equal(t, "hero-fr", override.Props["className"].Str())

	// Pages: block reference and inline shorthand
	require.Len(t, site.Pages, 1)
	page := site.Pages[0]
	require.Len(t, page.Sections, 2)
	assert.Equal(t, "hero", page.Sections[0].Block)
	assert.Equal(t, "Welcome", page.Sections[0].Vars["headline"])
	require.NotNil(t, page.Sections[1].Node)
	assert.Equal(t, "footer", page.Sections[1].Node.Type)

	// Languages
	assert.Equal(t, "en", site.Languages.Default)
	require.Len(t, site.Languages.Supported, 2)
	assert.Equal(t, "Accueil", site.Languages.Translations["fr"]["nav.home"])
}

func TestParseJSON(t *testing.T) {
	site, err := Parse([]byte(`{
		"blocks": [
			{"name": "cta", "type": "button", "props": {"variant": "primary", "span": 3}}
		],
		"pages": [
			{"path": "/", "sections": [{"block": "cta"}]}
		],
		"languages": {"default": "en"}
	}`), ".json")
	require.NoError(t, err)

	require.Len(t, site.Blocks, 1)
	cta := site.Blocks[0]
	assert.Equal(t, "primary", cta.Props["variant"].Str())
	assert.Equal(t, float64(3), cta.Props["span"].Num())
	assert.Equal(t, "cta", site.Pages[0].Sections[0].Block)
}

func TestParseInvalid(t *testing.T) {
	_, err := Parse([]byte(`{"blocks": [`), ".json")
	assert.Error(t, err)

	_, err = Parse([]byte("blocks: [\n"), ".yaml")
	assert.Error(t, err)

	// A section with neither a block reference nor a node shape fails
	_, err = Parse([]byte(`{"pages": [{"path": "/", "sections": [{"vars": {}}]}]}`), ".json")
	assert.Error(t, err)
}

func TestLoaderFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0o644))

	loader, err := NewLoader(path)
	require.NoError(t, err)
	site, err := loader.Site()
	require.NoError(t, err)
	assert.Len(t, site.Blocks, 1)
}

func TestLoaderFromDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultFile), []byte(sampleYAML), 0o644))

	loader, err := NewLoader(dir)
	require.NoError(t, err)
	site, err := loader.Site()
	require.NoError(t, err)
	assert.Equal(t, "hero", site.Blocks[0].Name)
}

func TestLoaderMissingPath(t *testing.T) {
	_, err := NewLoader(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
