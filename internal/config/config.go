// Package config loads crumbline's YAML configuration: the embedded defaults
// merged with an optional user file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/oakwood-commons/crumbline/pkg/breadcrumb"
	"github.com/oakwood-commons/crumbline/pkg/settings"
)

// File is the merged configuration.
type File struct {
	App     AppConfig         `yaml:"app" json:"app"`
	Segment breadcrumb.Config `yaml:"segment" json:"segment"`
	Render  RenderConfig      `yaml:"render" json:"render"`
}

// AppConfig describes the binary in help output.
type AppConfig struct {
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description" json:"description"`
}

// RenderConfig controls how segments are printed.
type RenderConfig struct {
	Output      string       `yaml:"output" json:"output"`
	SoftDivider string       `yaml:"soft_divider" json:"soft_divider"`
	MaxWidth    int          `yaml:"max_width" json:"max_width"`
	Colors      ColorsConfig `yaml:"colors" json:"colors"`
}

// ColorsConfig holds lipgloss color values (ANSI numbers or hex).
type ColorsConfig struct {
	Contents string `yaml:"contents" json:"contents"`
	Divider  string `yaml:"divider" json:"divider"`
}

// Validate checks values that YAML decoding cannot.
func (f File) Validate() error {
	if err := f.Segment.Validate(); err != nil {
		return fmt.Errorf("segment: %w", err)
	}
	if f.Render.MaxWidth < -1 {
		return fmt.Errorf("render: max_width must be -1 (terminal width) or greater, got %d", f.Render.MaxWidth)
	}
	return nil
}

func (f File) clone() File {
	out := f
	if f.Segment.Ellipsis != nil {
		out.Segment.Ellipsis = breadcrumb.EllipsisText(*f.Segment.Ellipsis)
	}
	return out
}

// fileOverlay mirrors File with every field optional, so a user file only
// replaces the keys it sets.
type fileOverlay struct {
	App struct {
		Name        *string `yaml:"name"`
		Description *string `yaml:"description"`
	} `yaml:"app"`
	Segment struct {
		ShortenHome      *bool   `yaml:"shorten_home"`
		DirShortenLen    *int    `yaml:"dir_shorten_len"`
		DirLimitDepth    *int    `yaml:"dir_limit_depth"`
		UsePathSeparator *bool   `yaml:"use_path_separator"`
		Ellipsis         *string `yaml:"ellipsis"`
	} `yaml:"segment"`
	Render struct {
		Output      *string `yaml:"output"`
		SoftDivider *string `yaml:"soft_divider"`
		MaxWidth    *int    `yaml:"max_width"`
		Colors      struct {
			Contents *string `yaml:"contents"`
			Divider  *string `yaml:"divider"`
		} `yaml:"colors"`
	} `yaml:"render"`
}

func (o fileOverlay) mergeInto(base File) File {
	cfg := base.clone()
	setIf(&cfg.App.Name, o.App.Name)
	setIf(&cfg.App.Description, o.App.Description)

	setIf(&cfg.Segment.ShortenHome, o.Segment.ShortenHome)
	setIf(&cfg.Segment.DirShortenLen, o.Segment.DirShortenLen)
	setIf(&cfg.Segment.DirLimitDepth, o.Segment.DirLimitDepth)
	setIf(&cfg.Segment.UsePathSeparator, o.Segment.UsePathSeparator)
	if o.Segment.Ellipsis != nil {
		cfg.Segment.Ellipsis = breadcrumb.EllipsisText(*o.Segment.Ellipsis)
	}

	setIf(&cfg.Render.Output, o.Render.Output)
	setIf(&cfg.Render.SoftDivider, o.Render.SoftDivider)
	setIf(&cfg.Render.MaxWidth, o.Render.MaxWidth)
	setIf(&cfg.Render.Colors.Contents, o.Render.Colors.Contents)
	setIf(&cfg.Render.Colors.Divider, o.Render.Colors.Divider)
	return cfg
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

// Load returns the embedded defaults merged with the file at path. An empty
// path loads the defaults only. Unknown keys in the user file are rejected.
func Load(path string) (File, error) {
	cfg, err := Default()
	if err != nil {
		return cfg, fmt.Errorf("load default config: %w", err)
	}
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config file: %w", err)
	}
	var overlay fileOverlay
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&overlay); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("decode config file %s: %w", path, err)
	}
	cfg = overlay.mergeInto(cfg)
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config file %s: %w", path, err)
	}
	return cfg, nil
}

// ResolvePath returns explicit if set, otherwise the XDG path
// ($XDG_CONFIG_HOME/crumbline/config.yaml) or ~/.config/crumbline/config.yaml
// when that file exists. It returns "" when there is nothing to load.
func ResolvePath(explicit string) string {
	if explicit != "" {
		return explicit
	}
	candidate := ""
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		candidate = filepath.Join(xdg, settings.CliBinaryName, "config.yaml")
	} else if home, err := os.UserHomeDir(); err == nil {
		candidate = filepath.Join(home, ".config", settings.CliBinaryName, "config.yaml")
	}
	if candidate != "" {
		if st, err := os.Stat(candidate); err == nil && !st.IsDir() {
			return candidate
		}
	}
	return ""
}
