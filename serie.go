package charts3d

import (
	"math"
)

type Point struct {
	X float64
	Y float64
	Z float64
	W float64

	HasW  bool
	Color Color
	Label string
}

func NumberPoint(x, y, z float64) Point {
	return Point{
		X: x,
		Y: y,
		Z: z,
	}
}

func WeightedPoint(x, y, z, w float64) Point {
	p := NumberPoint(x, y, z)
	p.W = w
	p.HasW = true
	return p
}

func (p Point) finite() bool {
	return !isBad(p.X) && !isBad(p.Y) && !isBad(p.Z)
}

type Serie struct {
	Title  string
	Color  Color
	Hidden bool
	Marker Marker

	Points []Point
}

func NewSerie(title string, color Color, points ...Point) Serie {
	return Serie{
		Title:  title,
		Color:  color,
		Points: points,
	}
}

func (s Serie) Visible() bool {
	return !s.Hidden && len(s.Points) > 0
}

// pointColor resolves the point color, then the serie color, then def.
func (s Serie) pointColor(p Point, def Color) Color {
	return p.Color.Or(s.Color).Or(def)
}

func visibleSeries(series []Serie) []Serie {
	var list []Serie
	for _, s := range series {
		if s.Visible() {
			list = append(list, s)
		}
	}
	return list
}

func isBad(f float64) bool {
	return math.IsNaN(f) || math.IsInf(f, 0)
}
