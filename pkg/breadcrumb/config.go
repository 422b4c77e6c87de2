package breadcrumb

import "fmt"

// DefaultEllipsis stands in for directories removed by depth limiting.
const DefaultEllipsis = " … "

// Config controls how a path is turned into segments. The zero value renders
// every ancestor unshortened, with soft dividers and no ellipsis.
type Config struct {
	// ShortenHome replaces a leading home directory with "~".
	ShortenHome bool `yaml:"shorten_home" json:"shorten_home" toml:"shorten_home"`
	// DirShortenLen truncates every ancestor except the last to this many
	// characters. 0 disables truncation.
	DirShortenLen int `yaml:"dir_shorten_len" json:"dir_shorten_len" toml:"dir_shorten_len"`
	// DirLimitDepth keeps only this many trailing ancestors. 0 disables it.
	DirLimitDepth int `yaml:"dir_limit_depth" json:"dir_limit_depth" toml:"dir_limit_depth"`
	// UsePathSeparator draws the path separator instead of a soft divider.
	UsePathSeparator bool `yaml:"use_path_separator" json:"use_path_separator" toml:"use_path_separator"`
	// Ellipsis replaces the dropped ancestors. nil or "" omits it. Powerline's
	// full_path segment instead inserts an empty first segment for "", which its
	// root handling then renders as "/".
	Ellipsis *string `yaml:"ellipsis" json:"ellipsis" toml:"ellipsis,omitempty"`
}

// DefaultConfig mirrors the status-line defaults: home shortening on and the
// standard ellipsis.
func DefaultConfig() Config {
	return Config{
		ShortenHome: true,
		Ellipsis:    EllipsisText(DefaultEllipsis),
	}
}

// EllipsisText returns a pointer suitable for Config.Ellipsis.
func EllipsisText(s string) *string {
	return &s
}

// Validate rejects negative limits.
func (c Config) Validate() error {
	if c.DirShortenLen < 0 {
		return fmt.Errorf("dir_shorten_len must be non-negative, got %d", c.DirShortenLen)
	}
	if c.DirLimitDepth < 0 {
		return fmt.Errorf("dir_limit_depth must be non-negative, got %d", c.DirLimitDepth)
	}
	return nil
}

func (c Config) ellipsis() (string, bool) {
	if c.Ellipsis == nil || *c.Ellipsis == "" {
		return "", false
	}
	return *c.Ellipsis, true
}
