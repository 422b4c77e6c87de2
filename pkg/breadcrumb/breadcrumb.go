// Package breadcrumb renders the ancestors of the working directory as a
// trail of status-line segments, e.g. /home/me/src/app becomes
// "/", "home", "me", "src" with soft dividers between them.
package breadcrumb

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/rivo/uniseg"

	"github.com/oakwood-commons/crumbline/internal/limiter"
	"github.com/oakwood-commons/crumbline/pkg/logger"
	"github.com/oakwood-commons/crumbline/pkg/textdecode"
)

const (
	// DividerHighlightGroup is the highlight group every segment's divider uses.
	DividerHighlightGroup = "cwd:divider"
	// NotFoundText replaces the trail when the working directory was removed.
	NotFoundText = "[not found]"
)

const separator = string(filepath.Separator)

// Segment is one rendered unit of the trail.
type Segment struct {
	Contents              string `json:"contents" yaml:"contents" toml:"contents"`
	DividerHighlightGroup string `json:"divider_highlight_group" yaml:"divider_highlight_group" toml:"divider_highlight_group"`
	DrawInnerDivider      bool   `json:"draw_inner_divider" yaml:"draw_inner_divider" toml:"draw_inner_divider"`
}

// Info is what the host knows about the environment the segment renders in.
type Info struct {
	// Getcwd returns the working directory. A result matching fs.ErrNotExist
	// means the directory was removed after the process entered it.
	Getcwd func() (string, error)
	// Home is the user's home directory; empty disables home shortening.
	Home string
}

// DefaultInfo reads the working directory from the OS and home from $HOME.
func DefaultInfo() Info {
	return Info{Getcwd: os.Getwd, Home: os.Getenv("HOME")}
}

// ShortenedPath returns the working directory as displayed before it is
// split into segments, with the home prefix replaced by "~" when requested.
// A removed directory yields NotFoundText and a warning.
func ShortenedPath(ctx context.Context, info Info, shortenHome bool) (string, error) {
	path, found, err := currentPath(ctx, info, shortenHome)
	if err != nil {
		return "", err
	}
	if !found {
		return NotFoundText, nil
	}
	return path, nil
}

// FullPath returns the breadcrumb segments for the parent directories of the
// working directory. The directory itself is not included.
func FullPath(ctx context.Context, info Info, cfg Config) ([]Segment, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	path, found, err := currentPath(ctx, info, cfg.ShortenHome)
	if err != nil {
		return nil, err
	}
	if !found {
		return []Segment{newSegment(NotFoundText, true)}, nil
	}
	return Segments(path, cfg), nil
}

// Segments splits an already resolved display path into segments. It never
// touches the filesystem.
func Segments(path string, cfg Config) []Segment {
	parts := strings.Split(path, separator)
	// Drop the working directory itself.
	parts = parts[:len(parts)-1]
	if len(parts) == 0 {
		return []Segment{}
	}
	ancestors := len(parts)

	if cfg.DirShortenLen > 0 {
		for i := range parts[:ancestors-1] {
			if parts[i] != "" {
				parts[i] = truncateChars(parts[i], cfg.DirShortenLen)
			}
		}
	}

	if cfg.DirLimitDepth > 0 && ancestors > cfg.DirLimitDepth+1 {
		parts = limiter.Tail(parts, cfg.DirLimitDepth)
		if text, ok := cfg.ellipsis(); ok {
			parts = append([]string{text}, parts...)
		}
	}

	if parts[0] == "" {
		parts[0] = separator
	}

	segments := make([]Segment, 0, len(parts))
	for _, part := range parts {
		if part == "" {
			continue
		}
		if cfg.UsePathSeparator {
			part += separator
		}
		segments = append(segments, newSegment(part, !cfg.UsePathSeparator))
	}

	if cfg.UsePathSeparator && len(segments) > 0 {
		last := &segments[len(segments)-1]
		last.Contents = strings.TrimSuffix(last.Contents, separator)
		if len(segments) > 1 && strings.HasPrefix(segments[0].Contents, separator) {
			segments[0].Contents = segments[0].Contents[len(separator):]
		}
	}
	return segments
}

// currentPath resolves and home-shortens the working directory. found is
// false when the directory no longer exists.
func currentPath(ctx context.Context, info Info, shortenHome bool) (path string, found bool, err error) {
	getcwd := info.Getcwd
	if getcwd == nil {
		getcwd = os.Getwd
	}
	raw, err := getcwd()
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Warn(ctx, "Current directory not found", logger.SegmentKey, "cwd")
			return "", false, nil
		}
		return "", false, fmt.Errorf("get working directory: %w", err)
	}
	path, err = textdecode.Strict(raw)
	if err != nil {
		return "", false, fmt.Errorf("decode working directory: %w", err)
	}

	if shortenHome && info.Home != "" {
		home, err := textdecode.Strict(info.Home)
		if err != nil {
			return "", false, fmt.Errorf("decode home directory: %w", err)
		}
		if strings.HasPrefix(path, home) {
			path = "~" + path[len(home):]
		}
	}
	return path, true, nil
}

// truncateChars keeps the first n user-perceived characters of s.
func truncateChars(s string, n int) string {
	state := -1
	rest := s
	for i := 0; i < n && rest != ""; i++ {
		_, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
	}
	return s[:len(s)-len(rest)]
}

func newSegment(contents string, drawInnerDivider bool) Segment {
	return Segment{
		Contents:              contents,
		DividerHighlightGroup: DividerHighlightGroup,
		DrawInnerDivider:      drawInnerDivider,
	}
}
