package memory

import (
	"testing"

	"github.com/latticeui/lattice/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoader(t *testing.T) {
	loader, err := NewLoader(`{
		"blocks": [
			{"name": "hero", "type": "div", "content": "$title"}
		],
		"pages": [
			{"path": "/", "sections": [{"block": "hero", "vars": {"title": "Hi"}}]}
		],
		"languages": {"default": "en"}
	}`)
	require.NoError(t, err)

	site, err := loader.Site()
	require.NoError(t, err)
	require.Len(t, site.Blocks, 1)
	assert.Equal(t, "hero", site.Blocks[0].Name)
	require.Len(t, site.Pages, 1)
	assert.Equal(t, "/", site.Pages[0].Path)
	assert.Equal(t, "en", site.Languages.Default)
}

func TestNewLoaderInvalidJSON(t *testing.T) {
	_, err := NewLoader(`{"blocks": [`)
	assert.Error(t, err)
}

func TestNewFromBlocks(t *testing.T) {
	loader, err := NewFromBlocks(
		domain.Node{Name: "cta", Type: "button", Content: "Go"},
	)
	require.NoError(t, err)

	site, err := loader.Site()
	require.NoError(t, err)
	require.Len(t, site.Blocks, 1)
	assert.Equal(t, "cta", site.Blocks[0].Name)

	// Unnamed blocks are rejected up front
	_, err = NewFromBlocks(domain.Node{Type: "div"})
	assert.Error(t, err)
}
