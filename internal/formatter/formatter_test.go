package formatter

import (
	"encoding/json"
	"strings"
	"testing"

	runewidth "github.com/mattn/go-runewidth"
	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/oakwood-commons/crumbline/pkg/breadcrumb"
)

func trail(draw bool, contents ...string) []breadcrumb.Segment {
	out := make([]breadcrumb.Segment, 0, len(contents))
	for _, c := range contents {
		out = append(out, breadcrumb.Segment{
			Contents:              c,
			DividerHighlightGroup: breadcrumb.DividerHighlightGroup,
			DrawInnerDivider:      draw,
		})
	}
	return out
}

func TestParseFormat(t *testing.T) {
	for _, in := range []string{"text", "JSON", " yaml ", "toml"} {
		_, err := ParseFormat(in)
		require.NoError(t, err, in)
	}
	_, err := ParseFormat("csv")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "text|json|yaml|toml")
}

func TestFormatSegmentsTextPlain(t *testing.T) {
	tests := []struct {
		name     string
		segments []breadcrumb.Segment
		opts     TextOptions
		want     string
	}{
		{
			name:     "soft dividers",
			segments: trail(true, "/", "long", "path", "to"),
			opts:     TextOptions{SoftDivider: " > ", NoColor: true},
			want:     "/ > long > path > to",
		},
		{
			name:     "path separator mode",
			segments: trail(false, "/", "a/", "b"),
			opts:     TextOptions{SoftDivider: " > ", NoColor: true},
			want:     "/a/b",
		},
		{
			name:     "empty divider",
			segments: trail(true, "~", "src"),
			opts:     TextOptions{NoColor: true},
			want:     "~src",
		},
		{
			name:     "no segments",
			segments: nil,
			opts:     TextOptions{SoftDivider: " > ", NoColor: true},
			want:     "",
		},
		{
			name:     "truncated to width",
			segments: trail(true, "/", "long", "path", "to"),
			opts:     TextOptions{SoftDivider: " > ", NoColor: true, Width: 10},
			want:     "/ > long …",
		},
		{
			name:     "width not reached",
			segments: trail(true, "/", "a"),
			opts:     TextOptions{SoftDivider: " > ", NoColor: true, Width: 40},
			want:     "/ > a",
		},
		{
			name:     "width counts wide characters",
			segments: trail(true, "日本語", "資料"),
			opts:     TextOptions{SoftDivider: "/", NoColor: true, Width: 5},
			want:     "日本…",
		},
		{
			name:     "width of one keeps only the tail",
			segments: trail(true, "/", "long"),
			opts:     TextOptions{SoftDivider: " > ", NoColor: true, Width: 1},
			want:     "…",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatSegmentsText(tt.segments, tt.opts)
			assert.Equal(t, tt.want, got)
			if tt.opts.Width > 0 {
				assert.LessOrEqual(t, runewidth.StringWidth(got), tt.opts.Width)
			}
		})
	}
}

func TestFormatSegmentsTextColor(t *testing.T) {
	opts := TextOptions{
		SoftDivider: " > ",
		Colors:      SegmentColors{Contents: ParseColor("250"), Divider: ParseColor("240")},
	}
	got := FormatSegmentsText(trail(true, "/", "home"), opts)
	assert.Contains(t, got, "\x1b[")
	assert.Contains(t, got, "home")

	opts.NoColor = true
	assert.Equal(t, "/ > home", FormatSegmentsText(trail(true, "/", "home"), opts))
}

func TestParseColor(t *testing.T) {
	assert.Nil(t, ParseColor(""))
	assert.Nil(t, ParseColor("  "))
	assert.NotNil(t, ParseColor("#ff8800"))
}

func TestRenderStructured(t *testing.T) {
	segments := trail(true, "/", "home")

	t.Run("json", func(t *testing.T) {
		out, err := Render(segments, FormatJSON, TextOptions{})
		require.NoError(t, err)
		var got []map[string]any
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		require.Len(t, got, 2)
		assert.Equal(t, "home", got[1]["contents"])
		assert.Equal(t, "cwd:divider", got[1]["divider_highlight_group"])
		assert.Equal(t, true, got[1]["draw_inner_divider"])
	})

	t.Run("yaml", func(t *testing.T) {
		out, err := Render(segments, FormatYAML, TextOptions{})
		require.NoError(t, err)
		var got []breadcrumb.Segment
		require.NoError(t, yaml.Unmarshal([]byte(out), &got))
		assert.Equal(t, segments, got)
	})

	t.Run("toml", func(t *testing.T) {
		out, err := Render(segments, FormatTOML, TextOptions{})
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(out, "[[segments]]"), out)
		var got struct {
			Segments []breadcrumb.Segment `toml:"segments"`
		}
		require.NoError(t, toml.Unmarshal([]byte(out), &got))
		assert.Equal(t, segments, got.Segments)
	})

	t.Run("text ends with newline", func(t *testing.T) {
		out, err := Render(segments, FormatText, TextOptions{SoftDivider: " > ", NoColor: true})
		require.NoError(t, err)
		assert.Equal(t, "/ > home\n", out)
	})
}

func TestRenderEmptyTrail(t *testing.T) {
	out, err := Render(nil, FormatJSON, TextOptions{})
	require.NoError(t, err)
	assert.Equal(t, "[]\n", out)

	out, err = Render([]breadcrumb.Segment{}, FormatYAML, TextOptions{})
	require.NoError(t, err)
	assert.Equal(t, "[]\n", out)
}

func TestRenderUnknownFormat(t *testing.T) {
	_, err := Render(nil, Format("csv"), TextOptions{})
	require.Error(t, err)
}

func TestFormatYAMLLiteralBlocks(t *testing.T) {
	out, err := FormatYAML(map[string]string{"contents": "odd\nname"}, YAMLFormatOptions{LiteralBlockStrings: true})
	require.NoError(t, err)
	assert.Contains(t, out, "contents: |-")

	out, err = FormatYAML(map[string]string{"contents": "odd\nname"}, YAMLFormatOptions{})
	require.NoError(t, err)
	assert.NotContains(t, out, "|-")
}
