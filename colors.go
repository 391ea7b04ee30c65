package charts

import (
	"image/color"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/image/colornames"
)

// ColorTag names a colour: either an SVG colour keyword ("magenta",
// "darkgray") or a hexadecimal notation ("#ff00ff", "#f0f").
type ColorTag string

func (c ColorTag) String() string {
	return string(c)
}

// RGBA resolves the tag to a colour. Unknown names are an error.
func (c ColorTag) RGBA() (color.RGBA, error) {
	str := strings.ToLower(strings.TrimSpace(string(c)))
	if strings.HasPrefix(str, "#") {
		return parseHex(str)
	}
	rgba, ok := colornames.Map[str]
	if !ok {
		return rgba, errors.Errorf("%s: unknown color", c)
	}
	return rgba, nil
}

type Palette []ColorTag

// At returns the colour for the i-th entry, cycling through the palette.
func (p Palette) At(i int) ColorTag {
	if len(p) == 0 {
		return ""
	}
	return p[i%len(p)]
}

var (
	Category10 Palette
	Tableau10  Palette
)

func init() {
	Category10 = splitColorString("1f77b4ff7f0e2ca02cd627289467bd8c564be377c27f7f7fbcbd2217becf")
	Tableau10 = splitColorString("4e79a7f28e2ce1575976b7b259a14fedc949af7aa1ff9da79c755fbab0ab")
}

// GetPalette returns one of the named palettes, Category10 by default.
func GetPalette(name string) Palette {
	switch strings.ToLower(name) {
	case "tableau10", "tableau":
		return Tableau10
	default:
		return Category10
	}
}

func splitColorString(str string) Palette {
	var arr Palette
	for i := 0; i < len(str); i += 6 {
		arr = append(arr, ColorTag("#"+str[i:i+6]))
	}
	return arr
}

func parseHex(str string) (color.RGBA, error) {
	var (
		rgba color.RGBA
		hex  = strings.TrimPrefix(str, "#")
	)
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return rgba, errors.Errorf("%s: invalid hex color", str)
	}
	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return rgba, errors.Wrapf(err, "%s: invalid hex color", str)
	}
	rgba.R = uint8(n >> 24)
	rgba.G = uint8(n >> 16)
	rgba.B = uint8(n >> 8)
	rgba.A = uint8(n)
	return rgba, nil
}
