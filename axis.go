package charts3d

import (
	"fmt"
	"strconv"

	"github.com/midbel/slices"
)

type Orientation int

const (
	OrientTop Orientation = 1 << iota
	OrientRight
	OrientBottom
	OrientLeft
)

func (o Orientation) Vertical() bool {
	return o == OrientLeft || o == OrientRight
}

func (o Orientation) Reverse() bool {
	return o == OrientRight || o == OrientTop
}

// Limit is either a fixed bound or auto, in which case the bound is taken from the
// data.
type Limit struct {
	value float64
	fixed bool
}

func Auto() Limit {
	return Limit{}
}

func Fixed(v float64) Limit {
	return Limit{
		value: v,
		fixed: true,
	}
}

func (i Limit) IsAuto() bool {
	return !i.fixed
}

func (i Limit) Value() float64 {
	return i.value
}

func (i Limit) or(v float64) float64 {
	if i.fixed {
		return i.value
	}
	return v
}

type AxisConfig struct {
	Title         string
	Min           Limit
	Max           Limit
	Step          Limit
	Ticks         int
	ShowGrid      bool
	Logarithmic   bool
	LabelFormat   string
	LabelRotation float64
	LineColor     Color
	GridColor     Color
}

func DefaultAxis() AxisConfig {
	return AxisConfig{
		Ticks:     defaultTicks,
		ShowGrid:  true,
		LineColor: DarkGray,
		GridColor: LightGray,
	}
}

func CreateAxis(title string, from, to float64) AxisConfig {
	a := DefaultAxis()
	a.Title = title
	a.Min = Fixed(from)
	a.Max = Fixed(to)
	return a
}

// effective merges the fixed limits with the observed range of the data.
func (a AxisConfig) effective(observed Range) Range {
	return NewRange(a.Min.or(observed.F), a.Max.or(observed.T))
}

func (a AxisConfig) normalize(rg Range, v float64) float64 {
	if a.Logarithmic {
		return rg.normalizeLog(v)
	}
	return rg.Normalize(v)
}

func (a AxisConfig) values(rg Range) []float64 {
	if a.Logarithmic {
		return rg.logValues()
	}
	step := a.Step.or(0)
	return rg.Values(a.Ticks, step)
}

func (a AxisConfig) format(v float64) string {
	if a.LabelFormat != "" {
		return fmt.Sprintf(a.LabelFormat, v)
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}

type axisKind int

const (
	axisX axisKind = iota
	axisY
	axisZ
)

const (
	tickLength  = 0.03
	labelOffset = 0.09
	titleOffset = 0.2
)

// at returns the normalized point at position t of the axis, pushed outward from
// the cube by off.
func (k axisKind) at(t, off float64) (float64, float64, float64) {
	switch k {
	case axisX:
		return t, 0, -off
	case axisY:
		return -off, t, 0
	default:
		return 1 + off, 0, t
	}
}

func (c *Chart) drawAxis(cv Canvas, kind axisKind) {
	var (
		axis  = c.axis(kind)
		rg    = c.rangeOf(kind)
		size  = c.Style.textSize()
		label = c.Style.textColor()
	)
	p1, _ := c.Project(kind.at(0, 0))
	p2, _ := c.Project(kind.at(1, 0))
	cv.DrawLine(p1, p2, 1, axis.LineColor.Or(DarkGray))

	values := axis.values(rg)
	for _, v := range values {
		t := axis.normalize(rg, v)
		if t < 0 || t > 1 {
			continue
		}
		var (
			from, _ = c.Project(kind.at(t, 0))
			to, _   = c.Project(kind.at(t, tickLength))
			pos, _  = c.Project(kind.at(t, labelOffset))
		)
		cv.DrawLine(from, to, 1, axis.LineColor.Or(DarkGray))
		drawText(cv, pos, axis.format(v), size*0.8, axis.LabelRotation, label)
	}
	if axis.Title == "" {
		return
	}
	pos, _ := c.Project(kind.at(0.5, titleOffset))
	if kind == axisY && len(values) > 0 {
		pos, _ = c.Project(kind.at(axis.normalize(rg, slices.Lst(values)), 0))
		pos.Y -= size * 1.5
	}
	drawText(cv, pos, axis.Title, size, 0, label)
}

func (c *Chart) drawGrid(cv Canvas, kind axisKind) {
	axis := c.axis(kind)
	if !axis.ShowGrid {
		return
	}
	var (
		rg    = c.rangeOf(kind)
		color = axis.GridColor.Or(LightGray)
	)
	line := func(x1, y1, z1, x2, y2, z2 float64) {
		p1, _ := c.Project(x1, y1, z1)
		p2, _ := c.Project(x2, y2, z2)
		cv.DrawLine(p1, p2, 1, color)
	}
	for _, v := range axis.values(rg) {
		t := axis.normalize(rg, v)
		if t < 0 || t > 1 {
			continue
		}
		switch kind {
		case axisX:
			line(t, 0, 0, t, 0, 1)
			line(t, 0, 1, t, 1, 1)
		case axisY:
			line(0, t, 1, 1, t, 1)
			line(0, t, 0, 0, t, 1)
		case axisZ:
			line(0, 0, t, 1, 0, t)
			line(0, 0, t, 0, 1, t)
		}
	}
}
