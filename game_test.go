package quakeglobe

import (
	"strings"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/smasonuk/quakeglobe/quake"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) advance(seconds float64) {
	c.now = c.now.Add(time.Duration(seconds * float64(time.Second)))
}

func newTestGame(t *testing.T, events []quake.Event) (*Game, *fakeClock) {
	t.Helper()
	clock := &fakeClock{now: time.Unix(1700000000, 0)}
	g := NewGame(Build(mustVariant(t, "quakes"), events), GameOptions{
		Width:  640,
		Height: 480,
		Clock:  clock,
	})
	return g, clock
}

func TestUpdateRotatesByHalfElapsedTime(t *testing.T) {
	g, clock := newTestGame(t, nil)

	// the first frame only starts the clock
	clock.advance(10)
	if err := g.Update(); err != nil {
		t.Fatal(err)
	}
	if g.scene.Globe.Orientation() != mgl64.QuatIdent() {
		t.Fatal("first frame rotated the globe")
	}

	for _, dt := range []float64{0.016, 0.5, 0.25, 1.234} {
		clock.advance(dt)
		if err := g.Update(); err != nil {
			t.Fatal(err)
		}
	}

	total := 0.016 + 0.5 + 0.25 + 1.234
	want := mgl64.QuatRotate(total/2, mgl64.Vec3{0, 1, 0}).Rotate(mgl64.Vec3{0, 0, 1})
	if got := g.scene.Globe.Orientation().Rotate(mgl64.Vec3{0, 0, 1}); !vecAlmostEqual(got, want, 1e-6) {
		t.Errorf("globe forward = %v, want %v", got, want)
	}
}

func TestUpdatePollsTexturesWithoutBlocking(t *testing.T) {
	g, _ := newTestGame(t, nil)

	ch := make(chan TextureResult, 1)
	g.WatchTextures(ch)
	if err := g.Update(); err != nil {
		t.Fatal(err)
	}
	if g.scene.Texture.Loaded() {
		t.Fatal("texture loaded from an empty channel")
	}

	// incomplete results are skipped and a closed channel stops polling
	ch <- TextureResult{Handle: g.scene.Texture}
	close(ch)
	if err := g.Update(); err != nil {
		t.Fatal(err)
	}
	if g.textures != nil {
		t.Error("closed texture channel is still polled")
	}
	if g.scene.Texture.Loaded() {
		t.Error("result without an image installed a texture")
	}
}

func TestLayout(t *testing.T) {
	g, _ := newTestGame(t, nil)
	if w, h := g.Layout(1920, 1080); w != 640 || h != 480 {
		t.Errorf("Layout() = %d, %d, want 640, 480", w, h)
	}

	def := NewGame(g.scene, GameOptions{})
	if w, h := def.Layout(100, 100); w != 1280 || h != 720 {
		t.Errorf("default Layout() = %d, %d, want 1280, 720", w, h)
	}
}

func TestHUDText(t *testing.T) {
	g, _ := newTestGame(t, quake.DefaultCatalog())
	hud := g.hudText(59.94)

	for _, want := range []string{"FPS: 59.94", "scene: quakes", "events: 10"} {
		if !strings.Contains(hud, want) {
			t.Errorf("HUD %q missing %q", hud, want)
		}
	}
}
