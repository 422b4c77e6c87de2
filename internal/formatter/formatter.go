// Package formatter renders breadcrumb segments as a status-line string or as
// structured documents.
package formatter

import (
	"encoding/json"
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"
	runewidth "github.com/mattn/go-runewidth"
	"github.com/pelletier/go-toml/v2"

	"github.com/oakwood-commons/crumbline/pkg/breadcrumb"
)

// Format names an output format accepted by --output.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// Formats lists the supported formats in help order.
var Formats = []Format{FormatText, FormatJSON, FormatYAML, FormatTOML}

// ParseFormat validates an --output value.
func ParseFormat(s string) (Format, error) {
	for _, f := range Formats {
		if Format(strings.ToLower(strings.TrimSpace(s))) == f {
			return f, nil
		}
	}
	return "", fmt.Errorf("invalid output format %q (use text|json|yaml|toml)", s)
}

// truncationTail marks a line cut short by Width.
const truncationTail = "…"

// SegmentColors colors the text output. nil leaves a part unstyled.
type SegmentColors struct {
	Contents color.Color
	Divider  color.Color
}

// TextOptions control text rendering.
type TextOptions struct {
	// SoftDivider is drawn between segments that ask for an inner divider.
	SoftDivider string
	NoColor     bool
	// Width truncates the line to this many terminal columns; 0 is unlimited.
	Width  int
	Colors SegmentColors
}

// Render prints segments in the requested format.
func Render(segments []breadcrumb.Segment, format Format, opts TextOptions) (string, error) {
	if segments == nil {
		segments = []breadcrumb.Segment{}
	}
	switch format {
	case FormatText:
		return FormatSegmentsText(segments, opts) + "\n", nil
	case FormatJSON:
		b, err := json.MarshalIndent(segments, "", "  ")
		if err != nil {
			return "", fmt.Errorf("marshal json: %w", err)
		}
		return string(b) + "\n", nil
	case FormatYAML:
		s, err := FormatYAML(segments, YAMLFormatOptions{LiteralBlockStrings: true})
		if err != nil {
			return "", fmt.Errorf("marshal yaml: %w", err)
		}
		return s, nil
	case FormatTOML:
		// TOML has no top-level arrays.
		doc := struct {
			Segments []breadcrumb.Segment `toml:"segments"`
		}{Segments: segments}
		b, err := toml.Marshal(doc)
		if err != nil {
			return "", fmt.Errorf("marshal toml: %w", err)
		}
		return string(b), nil
	default:
		return "", fmt.Errorf("invalid output format %q (use text|json|yaml|toml)", format)
	}
}

type piece struct {
	text    string
	divider bool
}

// FormatSegmentsText joins segment contents into one line. A soft divider
// follows every segment that sets DrawInnerDivider, except the last.
func FormatSegmentsText(segments []breadcrumb.Segment, opts TextOptions) string {
	pieces := make([]piece, 0, len(segments)*2)
	for i, seg := range segments {
		pieces = append(pieces, piece{text: seg.Contents})
		if seg.DrawInnerDivider && i < len(segments)-1 && opts.SoftDivider != "" {
			pieces = append(pieces, piece{text: opts.SoftDivider, divider: true})
		}
	}
	pieces = truncatePieces(pieces, opts.Width)

	contentsStyle := styleFor(opts.Colors.Contents, opts.NoColor)
	dividerStyle := styleFor(opts.Colors.Divider, opts.NoColor)
	var b strings.Builder
	for _, p := range pieces {
		style := contentsStyle
		if p.divider {
			style = dividerStyle
		}
		if style == nil {
			b.WriteString(p.text)
			continue
		}
		b.WriteString(style.Render(p.text))
	}
	return b.String()
}

// truncatePieces cuts the line to width columns, ending it with the
// truncation tail drawn in the divider style.
func truncatePieces(pieces []piece, width int) []piece {
	if width <= 0 {
		return pieces
	}
	var plain strings.Builder
	for _, p := range pieces {
		plain.WriteString(p.text)
	}
	line := plain.String()
	if runewidth.StringWidth(line) <= width {
		return pieces
	}

	keep := len(runewidth.Truncate(line, width, truncationTail)) - len(truncationTail)
	out := make([]piece, 0, len(pieces)+1)
	for _, p := range pieces {
		if keep <= 0 {
			break
		}
		if len(p.text) > keep {
			p.text = p.text[:keep]
		}
		keep -= len(p.text)
		out = append(out, p)
	}
	return append(out, piece{text: truncationTail, divider: true})
}

func styleFor(c color.Color, noColor bool) *lipgloss.Style {
	if noColor || c == nil {
		return nil
	}
	s := lipgloss.NewStyle().Foreground(c)
	return &s
}

// ParseColor converts a config color ("250", "#ff8800") to a lipgloss color.
// An empty value yields nil.
func ParseColor(s string) color.Color {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return lipgloss.Color(s)
}
