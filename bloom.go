package quakeglobe

import (
	"github.com/hajimehoshi/ebiten/v2"
)

const (
	DefaultBloomPasses    = 3
	DefaultBloomIntensity = 0.9
)

// Bloom adds a soft halo around emissive faces.
type Bloom struct {
	Intensity float64
	Passes    int

	layer  *ebiten.Image
	levels []*ebiten.Image
}

func NewBloom(intensity float64, passes int) *Bloom {
	if passes < 1 {
		passes = 1
	}
	return &Bloom{Intensity: intensity, Passes: passes}
}

// bloomLevelSizes returns the size of each downsampled level, halving per pass and
// never dropping below one pixel.
func bloomLevelSizes(width, height, passes int) [][2]int {
	sizes := make([][2]int, 0, passes)
	for i := 0; i < passes; i++ {
		width, height = max(width/2, 1), max(height/2, 1)
		sizes = append(sizes, [2]int{width, height})
	}
	return sizes
}

func (b *Bloom) ensure(width, height int) {
	if b.layer != nil {
		lb := b.layer.Bounds()
		if lb.Dx() == width && lb.Dy() == height && len(b.levels) == b.Passes {
			return
		}
		b.layer.Deallocate()
		for _, l := range b.levels {
			l.Deallocate()
		}
	}
	b.layer = ebiten.NewImage(width, height)
	b.levels = b.levels[:0]
	for _, s := range bloomLevelSizes(width, height, b.Passes) {
		b.levels = append(b.levels, ebiten.NewImage(s[0], s[1]))
	}
}

// Draw renders the glow pass of the world's current face list and adds it over screen.
// PaintObjects must have run for this frame.
func (b *Bloom) Draw(screen *ebiten.Image, world *World, batcher *PolygonBatcher) {
	sb := screen.Bounds()
	b.ensure(sb.Dx(), sb.Dy())

	b.layer.Clear()
	batcher.SetTarget(b.layer)
	world.paintFaces(batcher, true)
	batcher.Flush()
	batcher.SetTarget(screen)

	src := b.layer
	for _, level := range b.levels {
		level.Clear()
		op := &ebiten.DrawImageOptions{Filter: ebiten.FilterLinear}
		op.GeoM.Scale(
			float64(level.Bounds().Dx())/float64(src.Bounds().Dx()),
			float64(level.Bounds().Dy())/float64(src.Bounds().Dy()),
		)
		level.DrawImage(src, op)
		src = level
	}

	k := float32(b.Intensity / float64(len(b.levels)))
	for _, level := range b.levels {
		op := &ebiten.DrawImageOptions{Filter: ebiten.FilterLinear, Blend: ebiten.BlendLighter}
		op.GeoM.Scale(
			float64(sb.Dx())/float64(level.Bounds().Dx()),
			float64(sb.Dy())/float64(level.Bounds().Dy()),
		)
		op.ColorScale.Scale(k, k, k, k)
		screen.DrawImage(level, op)
	}
}
