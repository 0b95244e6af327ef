package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. QUAKEGLOBE_SCENE_VARIANT.
const EnvPrefix = "QUAKEGLOBE"

// WindowConfig holds the window settings
type WindowConfig struct {
	Width  int    `json:"width" mapstructure:"width"`
	Height int    `json:"height" mapstructure:"height"`
	Title  string `json:"title" mapstructure:"title"`
}

// SceneConfig selects the variant and its inputs
type SceneConfig struct {
	Variant      string  `json:"variant" mapstructure:"variant"`
	Texture      string  `json:"texture" mapstructure:"texture"`
	EventsFile   string  `json:"eventsFile" mapstructure:"eventsFile"`
	MinMagnitude float64 `json:"minMagnitude" mapstructure:"minMagnitude"`
}

type DebugConfig struct {
	ShowHUD   bool `json:"showHUD" mapstructure:"showHUD"`
	Wireframe bool `json:"wireframe" mapstructure:"wireframe"`
}

type Config struct {
	LogLevel string       `json:"logLevel" mapstructure:"logLevel"`
	Window   WindowConfig `json:"window" mapstructure:"window"`
	Scene    SceneConfig  `json:"scene" mapstructure:"scene"`
	Debug    DebugConfig  `json:"debug" mapstructure:"debug"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logLevel", "info")

	v.SetDefault("window.width", 1280)
	v.SetDefault("window.height", 720)
	v.SetDefault("window.title", "quakeglobe")

	v.SetDefault("scene.variant", "glow")
	v.SetDefault("scene.texture", "assets/textures/earth.png")
	v.SetDefault("scene.eventsFile", "")
	v.SetDefault("scene.minMagnitude", 0.0)

	v.SetDefault("debug.showHUD", true)
	v.SetDefault("debug.wireframe", false)
}

// Load resolves the configuration from defaults, an optional file and the environment.
// An empty path looks for quakeglobe.{json,yaml,toml} in the working directory and
// carries on without one; an explicit path must exist.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("quakeglobe")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("error decoding config: %w", err)
	}
	if cfg.Window.Width <= 0 || cfg.Window.Height <= 0 {
		return Config{}, fmt.Errorf("invalid window size %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	return cfg, nil
}
