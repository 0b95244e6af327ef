package quakeglobe

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// TextureHandle is filled in once an image has loaded. A nil image draws as the
// material's base colour.
type TextureHandle struct {
	Path  string
	image *ebiten.Image
}

func NewTextureHandle(path string) *TextureHandle {
	return &TextureHandle{Path: path}
}

func (t *TextureHandle) Set(img *ebiten.Image) {
	t.image = img
}

func (t *TextureHandle) Image() *ebiten.Image {
	if t == nil {
		return nil
	}
	return t.image
}

func (t *TextureHandle) Loaded() bool {
	return t.Image() != nil
}

type Material struct {
	BaseColor color.RGBA
	Texture   *TextureHandle
	// Emissive materials ignore lighting and feed the bloom pass.
	Emissive    bool
	DoubleSided bool
	AlphaBlend  bool
}

func NewColorMaterial(c color.RGBA) *Material {
	return &Material{BaseColor: c}
}

func NewTexturedMaterial(tex *TextureHandle) *Material {
	return &Material{
		BaseColor: color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Texture:   tex,
	}
}
