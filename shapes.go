package charts3d

import (
	"fmt"
	"strings"
)

var DefaultSize float64 = 8

type Marker int

const (
	MarkerDefault Marker = iota
	MarkerCircle
	MarkerSquare
	MarkerDiamond
	MarkerTriangle
	MarkerCross
	MarkerX
	MarkerNone
)

var markerNames = map[string]Marker{
	"circle":   MarkerCircle,
	"square":   MarkerSquare,
	"diamond":  MarkerDiamond,
	"triangle": MarkerTriangle,
	"cross":    MarkerCross,
	"x":        MarkerX,
	"none":     MarkerNone,
}

func ParseMarker(str string) (Marker, error) {
	if str == "" {
		return MarkerDefault, nil
	}
	m, ok := markerNames[strings.ToLower(str)]
	if !ok {
		return MarkerDefault, fmt.Errorf("%s: unknown marker", str)
	}
	return m, nil
}

func (m Marker) String() string {
	for n, k := range markerNames {
		if k == m {
			return n
		}
	}
	return "default"
}

// Or resolves MarkerDefault to other.
func (m Marker) Or(other Marker) Marker {
	if m == MarkerDefault {
		return other
	}
	return m
}

// DrawMarker draws a marker of the given size (its diameter) centered on pos.
func DrawMarker(cv Canvas, m Marker, pos Pos, size float64, c Color) {
	if size <= 0 {
		size = DefaultSize
	}
	half := size / 2
	switch m {
	case MarkerNone:
	case MarkerSquare:
		cv.DrawRectangle(NewRect(pos.X-half, pos.Y-half, size, size), c)
	case MarkerDiamond:
		var (
			top    = NewPos(pos.X, pos.Y-half)
			right  = NewPos(pos.X+half, pos.Y)
			bottom = NewPos(pos.X, pos.Y+half)
			left   = NewPos(pos.X-half, pos.Y)
		)
		drawQuad(cv, top, right, bottom, left, c)
	case MarkerTriangle:
		var (
			top   = NewPos(pos.X, pos.Y-half)
			right = NewPos(pos.X+half, pos.Y+half)
			left  = NewPos(pos.X-half, pos.Y+half)
		)
		cv.DrawTriangle(top, right, left, c)
	case MarkerCross:
		width := markerStroke(size)
		cv.DrawLine(NewPos(pos.X-half, pos.Y), NewPos(pos.X+half, pos.Y), width, c)
		cv.DrawLine(NewPos(pos.X, pos.Y-half), NewPos(pos.X, pos.Y+half), width, c)
	case MarkerX:
		width := markerStroke(size)
		cv.DrawLine(NewPos(pos.X-half, pos.Y-half), NewPos(pos.X+half, pos.Y+half), width, c)
		cv.DrawLine(NewPos(pos.X-half, pos.Y+half), NewPos(pos.X+half, pos.Y-half), width, c)
	default:
		cv.DrawCircle(pos, half, c)
	}
}

func markerStroke(size float64) float64 {
	if w := size / 5; w > 1 {
		return w
	}
	return 1
}
