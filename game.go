package quakeglobe

import (
	"fmt"
	"image"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/rs/zerolog"
)

// Clock supplies the wall time used to step the world.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// TextureResult is a decoded image for a handle, delivered from a background loader.
type TextureResult struct {
	Handle *TextureHandle
	Image  image.Image
}

type GameOptions struct {
	Width   int
	Height  int
	ShowHUD bool
	Clock   Clock
	Logger  zerolog.Logger
}

type Game struct {
	scene   *Scene
	batcher *PolygonBatcher
	opts    GameOptions

	textures <-chan TextureResult
	last     time.Time
	started  bool
}

func NewGame(scene *Scene, opts GameOptions) *Game {
	if opts.Clock == nil {
		opts.Clock = systemClock{}
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = 1280, 720
	}
	return &Game{
		scene:   scene,
		batcher: NewPolygonBatcher(nil),
		opts:    opts,
	}
}

// WatchTextures makes Update install images arriving on ch. The channel is never
// waited on.
func (g *Game) WatchTextures(ch <-chan TextureResult) {
	g.textures = ch
}

func (g *Game) Scene() *Scene {
	return g.scene
}

func (g *Game) pollTextures() {
	for g.textures != nil {
		select {
		case r, ok := <-g.textures:
			if !ok {
				g.textures = nil
				return
			}
			if r.Handle == nil || r.Image == nil {
				continue
			}
			b := r.Image.Bounds()
			r.Handle.Set(ebiten.NewImageFromImage(r.Image))
			g.opts.Logger.Info().
				Str("path", r.Handle.Path).
				Int("width", b.Dx()).
				Int("height", b.Dy()).
				Msg("texture installed")
		default:
			return
		}
	}
}

// step advances the world by the time since the previous call. The first call does
// not move anything.
func (g *Game) step() {
	now := g.opts.Clock.Now()
	dt := 0.0
	if g.started {
		dt = now.Sub(g.last).Seconds()
	}
	g.last, g.started = now, true
	g.scene.World.Update(dt)
}

func (g *Game) Update() error {
	g.pollTextures()
	g.step()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	world := g.scene.World
	screen.Fill(world.Background)
	world.PaintObjects(screen, g.batcher, g.opts.Width, g.opts.Height)
	if g.scene.Bloom != nil {
		g.scene.Bloom.Draw(screen, world, g.batcher)
	}
	if g.opts.ShowHUD {
		ebitenutil.DebugPrint(screen, g.hudText(ebiten.ActualFPS()))
	}
}

func (g *Game) hudText(fps float64) string {
	return fmt.Sprintf("FPS: %0.2f\nscene: %s\nevents: %d", fps, g.scene.Config.Name, len(g.scene.Markers))
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.opts.Width, g.opts.Height
}
