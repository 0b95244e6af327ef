package main

import (
	"context"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"

	"github.com/smasonuk/quakeglobe"
	"github.com/smasonuk/quakeglobe/internal/assets"
	"github.com/smasonuk/quakeglobe/internal/config"
	"github.com/smasonuk/quakeglobe/internal/logging"
	"github.com/smasonuk/quakeglobe/quake"
)

func loadEvents(cfg config.SceneConfig, logger zerolog.Logger) ([]quake.Event, error) {
	events := quake.DefaultCatalog()
	if cfg.EventsFile != "" {
		var err error
		events, err = quake.LoadFile(cfg.EventsFile)
		if err != nil {
			return nil, err
		}
		logger.Info().Str("file", cfg.EventsFile).Int("events", len(events)).Msg("events loaded")
	}
	return quake.FilterMinMagnitude(events, cfg.MinMagnitude), nil
}

func run(logger zerolog.Logger) error {
	cfg, err := config.Load(os.Getenv("QUAKEGLOBE_CONFIG"))
	if err != nil {
		return err
	}
	logger = logging.New(cfg.LogLevel, os.Stdout)

	sceneCfg, err := quakeglobe.Variant(cfg.Scene.Variant)
	if err != nil {
		return err
	}
	sceneCfg.TexturePath = cfg.Scene.Texture

	events, err := loadEvents(cfg.Scene, logger)
	if err != nil {
		return err
	}

	logger.Info().Str("variant", sceneCfg.Name).Int("events", len(events)).Msg("building scene")
	scene := quakeglobe.Build(sceneCfg, events, quakeglobe.WithLogger(logger))
	scene.World.Wireframe = cfg.Debug.Wireframe

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	game := quakeglobe.NewGame(scene, quakeglobe.GameOptions{
		Width:   cfg.Window.Width,
		Height:  cfg.Window.Height,
		ShowHUD: cfg.Debug.ShowHUD,
		Logger:  logger,
	})
	game.WatchTextures(assets.NewLoader(logger).Start(ctx, []*quakeglobe.TextureHandle{scene.Texture}))

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	return ebiten.RunGame(game)
}

func main() {
	logger := logging.New("info", os.Stdout)
	if err := run(logger); err != nil {
		logger.Error().Err(err).Msg("quakeglobe stopped")
		os.Exit(1)
	}
}
