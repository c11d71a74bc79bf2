package parallax

import (
	"log"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// TextureCache loads images from disk once per path. A path that fails to
// load yields a texture that is never ready, so frames using it draw
// nothing instead of failing.
type TextureCache struct {
	// Root is joined in front of every relative path.
	Root string

	textures map[string]*ImageTexture
}

// NewTextureCache returns a cache resolving paths under root. The zero
// value with Root set is also ready to use.
func NewTextureCache(root string) *TextureCache {
	return &TextureCache{Root: root, textures: make(map[string]*ImageTexture)}
}

// Texture implements TextureSource.
func (c *TextureCache) Texture(path string) Texture {
	if c.textures == nil {
		c.textures = make(map[string]*ImageTexture)
	}
	if t, ok := c.textures[path]; ok {
		return t
	}
	full := path
	if !filepath.IsAbs(full) {
		full = filepath.Join(c.Root, path)
	}
	t := &ImageTexture{}
	img, _, err := ebitenutil.NewImageFromFile(full)
	if err != nil {
		log.Printf("parallax: texture %q not loaded, drawing nothing: %v", full, err)
	} else {
		t.Image = img
	}
	c.textures[path] = t
	return t
}

// Len returns the number of distinct paths requested so far.
func (c *TextureCache) Len() int { return len(c.textures) }
