package cli

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/matzehuels/tableau/pkg/errors"
	"github.com/matzehuels/tableau/pkg/pipeline"
)

// envPrefix prefixes environment overrides, e.g. TABLEAU_CARD_WIDTH.
const envPrefix = "TABLEAU"

// Config holds user settings from the config file and environment.
type Config struct {
	Card   SizeConfig   `mapstructure:"card"`
	Margin XYConfig     `mapstructure:"margin"`
	Offset XYConfig     `mapstructure:"offset"`
	Render RenderConfig `mapstructure:"render"`
	Cache  CacheConfig  `mapstructure:"cache"`

	// File is the config file that was read, if any.
	File string `mapstructure:"-"`

	overrides map[string]any
}

// SizeConfig is a card size in layout units.
type SizeConfig struct {
	Width  int `mapstructure:"width"`
	Height int `mapstructure:"height"`
}

// XYConfig is a horizontal and vertical pair.
type XYConfig struct {
	X int `mapstructure:"x"`
	Y int `mapstructure:"y"`
}

// RenderConfig holds rendering defaults.
type RenderConfig struct {
	Formats []string `mapstructure:"formats"`
	Scale   float64  `mapstructure:"scale"`
}

// CacheConfig holds cache settings.
type CacheConfig struct {
	Dir      string `mapstructure:"dir"`
	Disabled bool   `mapstructure:"disabled"`
}

// paramKeys maps config keys onto layout parameter names.
var paramKeys = map[string]string{
	"card.width":  "card_width",
	"card.height": "card_height",
	"margin.x":    "margin_x",
	"margin.y":    "margin_y",
	"offset.x":    "offset_x",
	"offset.y":    "offset_y",
}

func defaultConfig() *Config {
	return &Config{
		Render: RenderConfig{
			Formats: []string{pipeline.FormatSVG},
			Scale:   pipeline.DefaultScale,
		},
	}
}

// LoadConfig reads configuration from path (or the default config file when
// path is empty) and TABLEAU_* environment variables. A missing default
// file is not an error; a missing explicit file is.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()

	// Card geometry keys have no default: only values the user sets
	// override a preset.
	v.SetDefault("render.formats", []string{pipeline.FormatSVG})
	v.SetDefault("render.scale", pipeline.DefaultScale)
	v.SetDefault("cache.dir", "")
	v.SetDefault("cache.disabled", false)

	v.SetConfigType("toml")
	if path != "" {
		v.SetConfigFile(path)
	} else if dir, err := configDir(); err == nil {
		v.AddConfigPath(dir)
		v.SetConfigName("config")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key := range paramKeys {
		_ = v.BindEnv(key)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !stderrors.As(err, &notFound) {
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config")
		}
	}

	cfg := defaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode config")
	}
	cfg.File = v.ConfigFileUsed()
	if err := pipeline.ValidateFormats(cfg.Render.Formats); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "render.formats")
	}

	cfg.overrides = make(map[string]any)
	for key, param := range paramKeys {
		if v.IsSet(key) {
			cfg.overrides[param] = v.GetInt(key)
		}
	}
	return cfg, nil
}

// Overrides returns the layout parameters the config sets, keyed by
// parameter name.
func (c *Config) Overrides() map[string]any {
	return c.overrides
}

// configDir returns the config directory using XDG standard (~/.config/tableau/).
func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}
