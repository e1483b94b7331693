// pkg/canvas/color.go
package canvas

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// ParseColor resolves a color string to an RGBA value. Accepted forms are
// SVG 1.1 color names ("black", "tomato") and hex notation ("#abc",
// "#aabbcc", "#aabbccdd").
func ParseColor(s string) (color.RGBA, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" {
		return color.RGBA{}, fmt.Errorf("canvas: empty color")
	}
	if strings.HasPrefix(name, "#") {
		return parseHexColor(name[1:])
	}
	if c, ok := colornames.Map[name]; ok {
		return c, nil
	}
	return color.RGBA{}, fmt.Errorf("canvas: unknown color %q", s)
}

func parseHexColor(hex string) (color.RGBA, error) {
	switch len(hex) {
	case 3:
		var b strings.Builder
		for _, r := range hex {
			b.WriteRune(r)
			b.WriteRune(r)
		}
		hex = b.String()
	case 6, 8:
	default:
		return color.RGBA{}, fmt.Errorf("canvas: bad hex color %q", "#"+hex)
	}

	v, err := strconv.ParseUint(hex, 16, 64)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("canvas: bad hex color %q", "#"+hex)
	}
	if len(hex) == 8 {
		return color.RGBA{
			R: uint8(v >> 24),
			G: uint8(v >> 16),
			B: uint8(v >> 8),
			A: uint8(v),
		}, nil
	}
	return color.RGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 255,
	}, nil
}
