package charts3d

import (
	"fmt"
	"strconv"
	"strings"
)

type Palette []Color

func (p Palette) At(i int) Color {
	if len(p) == 0 {
		return DefaultColor
	}
	if i < 0 {
		i = -i
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

func splitColorString(str string) Palette {
	var arr Palette
	for i := 0; i < len(str); i += 6 {
		c, _ := ParseColor(str[i : i+6])
		arr = append(arr, c)
	}
	return arr
}

var (
	White       = RGB(255, 255, 255)
	Black       = RGB(0, 0, 0)
	LightGray   = RGB(220, 220, 220)
	DarkGray    = RGB(90, 90, 90)
	Transparent Color

	DefaultColor = RGB(0x1f, 0x77, 0xb4)
)

// Color is a non premultiplied RGBA color. The zero value is fully transparent and
// is treated as unset by the renderers.
type Color struct {
	R uint8
	G uint8
	B uint8
	A uint8
}

func RGB(r, g, b uint8) Color {
	return RGBA(r, g, b, 0xff)
}

func RGBA(r, g, b, a uint8) Color {
	return Color{
		R: r,
		G: g,
		B: b,
		A: a,
	}
}

// ParseColor accepts rrggbb or rrggbbaa with an optional leading #.
func ParseColor(str string) (Color, error) {
	str = strings.TrimPrefix(str, "#")
	if n := len(str); n != 6 && n != 8 {
		return Transparent, fmt.Errorf("%s: invalid color", str)
	}
	var c Color
	for i, p := range []*uint8{&c.R, &c.G, &c.B, &c.A} {
		if i*2 >= len(str) {
			*p = 0xff
			break
		}
		v, err := strconv.ParseUint(str[i*2:i*2+2], 16, 8)
		if err != nil {
			return Transparent, fmt.Errorf("%s: invalid color", str)
		}
		*p = uint8(v)
	}
	return c, nil
}

func (c Color) IsZero() bool {
	return c.A == 0
}

// Or returns c unless it is unset.
func (c Color) Or(other Color) Color {
	if c.IsZero() {
		return other
	}
	return c
}

// WithAlpha multiplies the alpha channel by f.
func (c Color) WithAlpha(f float64) Color {
	c.A = clampByte(float64(c.A) * f)
	return c
}

// Scale multiplies the color channels by f, keeping alpha.
func (c Color) Scale(f float64) Color {
	c.R = clampByte(float64(c.R) * f)
	c.G = clampByte(float64(c.G) * f)
	c.B = clampByte(float64(c.B) * f)
	return c
}

func (c Color) Opacity() float64 {
	return float64(c.A) / 0xff
}

func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	a = uint32(c.A)
	a |= a << 8
	r = uint32(c.R)
	r |= r << 8
	r = r * a / 0xffff
	g = uint32(c.G)
	g |= g << 8
	g = g * a / 0xffff
	b = uint32(c.B)
	b |= b << 8
	b = b * a / 0xffff
	return
}

func clampByte(f float64) uint8 {
	switch {
	case f <= 0:
		return 0
	case f >= 0xff:
		return 0xff
	default:
		return uint8(f + 0.5)
	}
}
