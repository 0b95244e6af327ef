package assets

import (
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/rs/zerolog"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
	"golang.org/x/sync/errgroup"

	"github.com/smasonuk/quakeglobe"
)

const defaultWorkers = 2

// Loader decodes textures off the game goroutine.
type Loader struct {
	logger       zerolog.Logger
	workers      int
	fallbackSize int
	seed         int64
}

func NewLoader(logger zerolog.Logger) *Loader {
	return &Loader{
		logger:       logger,
		workers:      defaultWorkers,
		fallbackSize: DefaultFallback,
		seed:         1,
	}
}

// Decode reads an image file in any registered format.
func Decode(ctx context.Context, path string) (image.Image, string, error) {
	if err := ctx.Err(); err != nil {
		return nil, "", err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("could not open texture %s: %w", path, err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, "", fmt.Errorf("error decoding texture %s: %w", path, err)
	}
	return img, format, nil
}

// Start decodes every handle's texture in the background. Each handle gets exactly
// one result unless ctx is cancelled; failures deliver the procedural surface. The
// channel is closed when all work is done.
func (l *Loader) Start(ctx context.Context, handles []*quakeglobe.TextureHandle) <-chan quakeglobe.TextureResult {
	out := make(chan quakeglobe.TextureResult, len(handles))

	go func() {
		defer close(out)

		g, ctx := errgroup.WithContext(ctx)
		g.SetLimit(l.workers)
		for _, h := range handles {
			g.Go(func() error {
				img, format, err := Decode(ctx, h.Path)
				if err != nil {
					if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
						return err
					}
					l.logger.Warn().Err(err).Str("path", h.Path).Msg("texture unavailable, using procedural surface")
					img = Procedural(l.fallbackSize, l.fallbackSize/2, l.seed)
				} else {
					l.logger.Debug().Str("path", h.Path).Str("format", format).Msg("texture decoded")
				}

				select {
				case out <- quakeglobe.TextureResult{Handle: h, Image: img}:
					return nil
				case <-ctx.Done():
					return ctx.Err()
				}
			})
		}
		if err := g.Wait(); err != nil {
			l.logger.Debug().Err(err).Msg("texture loading stopped")
		}
	}()

	return out
}
