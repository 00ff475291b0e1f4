package align

import (
	"fmt"
	"strconv"
)

var chunkPalette = []string{
	"#8B5CF6", // purple
	"#EC4899", // pink
	"#10B981", // green
	"#F59E0B", // amber
	"#3B82F6", // blue
	"#EF4444", // red
	"#14B8A6", // teal
	"#F97316", // orange
	"#8B5A3C", // brown
	"#6366F1", // indigo
	"#84CC16", // lime
	"#06B6D4", // cyan
	"#A855F7", // violet
	"#F43F5E", // rose
	"#22D3EE", // sky
}

// ChunkColors returns count colors, cycling through the palette.
func ChunkColors(count int) []string {
	colors := make([]string, count)
	for i := range colors {
		colors[i] = ColorFor(i)
	}
	return colors
}

// ColorFor returns the palette colour for index. Negative indexes wrap from
// the end of the palette.
func ColorFor(index int) string {
	n := len(chunkPalette)
	return chunkPalette[(index%n+n)%n]
}

// ColorWithOpacity converts a #RRGGBB color into a CSS rgba() value.
func ColorWithOpacity(hex string, opacity float64) (string, error) {
	if len(hex) != 7 || hex[0] != '#' {
		return "", fmt.Errorf("invalid hex color: %q", hex)
	}
	rgb, err := strconv.ParseUint(hex[1:], 16, 32)
	if err != nil {
		return "", fmt.Errorf("invalid hex color %q: %w", hex, err)
	}
	r, g, b := (rgb>>16)&0xff, (rgb>>8)&0xff, rgb&0xff
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", r, g, b, strconv.FormatFloat(opacity, 'f', -1, 64)), nil
}
