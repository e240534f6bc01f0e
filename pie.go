package charts3d

import (
	"fmt"
	"math"
)

const (
	DefaultRadius    = 0.4
	DefaultThickness = 0.12
	DefaultExplode   = 0.15

	wedgeAngle = 5.0
	minWedges  = 3
)

// SliceKey identifies a slice by the index of its serie in Chart.Series and the
// index of the point in the serie.
type SliceKey struct {
	Serie int
	Point int
}

type Slice struct {
	Key    SliceKey
	Label  string
	Value  float64
	Start  float64
	End    float64
	Center float64
	Color  Color
}

func (s Slice) Span() float64 {
	return s.End - s.Start
}

type pieSlice struct {
	Slice
	offx  float64
	offz  float64
	depth float64
}

func (s pieSlice) sortDepth() float64 {
	return s.depth
}

// PieChart draws an extruded pie in the XZ plane of the unit cube. The Y value of
// every point is the size of its slice; points with a non positive value are
// skipped. Angles are in degrees, clockwise when seen from above.
type PieChart struct {
	Chart

	StartAngle      float64
	Radius          float64
	InnerRadius     float64
	Thickness       float64
	ExplodeDistance float64
	ShowEdges       bool
	EdgeColor       Color

	exploded map[SliceKey]struct{}
	slices   buffer[pieSlice]
}

func NewPieChart(series ...Serie) *PieChart {
	c := PieChart{
		Radius:          DefaultRadius,
		Thickness:       DefaultThickness,
		ExplodeDistance: DefaultExplode,
		exploded:        make(map[SliceKey]struct{}),
	}
	c.Chart = makeChart()
	c.ShowAxes = false
	c.ShowGrid = false
	c.ShowLegend = true
	c.Series = series
	return &c
}

// Draw renders one frame of the chart on cv.
func (c *PieChart) Draw(cv Canvas) {
	c.render(cv, c)
}

func (c *PieChart) Explode(serie, point int) {
	if c.exploded == nil {
		c.exploded = make(map[SliceKey]struct{})
	}
	c.exploded[SliceKey{Serie: serie, Point: point}] = struct{}{}
}

func (c *PieChart) Implode(serie, point int) {
	delete(c.exploded, SliceKey{Serie: serie, Point: point})
}

func (c *PieChart) IsExploded(serie, point int) bool {
	_, ok := c.exploded[SliceKey{Serie: serie, Point: point}]
	return ok
}

// Layout returns the slices in drawing order before depth sorting. The spans are
// contiguous and sum to a full circle.
func (c *PieChart) Layout() []Slice {
	var total float64
	for _, s := range c.Series {
		if !s.Visible() {
			continue
		}
		for _, p := range s.Points {
			if p.Y > 0 && !isBad(p.Y) {
				total += p.Y
			}
		}
	}
	if total <= 0 {
		return nil
	}
	var (
		list  []Slice
		angle = c.StartAngle
	)
	for i, s := range c.Series {
		if !s.Visible() {
			continue
		}
		for j, p := range s.Points {
			if p.Y <= 0 || isBad(p.Y) {
				continue
			}
			span := p.Y / total * fullcircle
			sl := Slice{
				Key:    SliceKey{Serie: i, Point: j},
				Label:  sliceLabel(s, p, j),
				Value:  p.Y,
				Start:  angle,
				End:    angle + span,
				Center: angle + span/2,
				Color:  s.pointColor(p, c.Style.palette().At(len(list))),
			}
			list = append(list, sl)
			angle += span
		}
	}
	return list
}

func sliceLabel(s Serie, p Point, i int) string {
	if p.Label != "" {
		return p.Label
	}
	if len(s.Points) == 1 {
		return s.Title
	}
	if s.Title == "" {
		return fmt.Sprintf("%d", i+1)
	}
	return fmt.Sprintf("%s %d", s.Title, i+1)
}

func (c *PieChart) DrawData(cv Canvas) {
	if !c.collect() {
		return
	}
	c.slices.farFirst(pieSlice.sortDepth)
	for _, s := range c.slices.items {
		c.drawSlice(cv, s)
	}
	if !c.ShowEdges {
		return
	}
	var (
		color = c.EdgeColor.Or(c.Background).Or(White)
		top   = c.top()
	)
	for _, s := range c.slices.items {
		center, _ := c.Project(0.5+s.offx, top, 0.5+s.offz)
		for _, a := range []float64{s.Start, s.End} {
			pos, _ := c.Project(c.at(s, a, c.radius(), top))
			cv.DrawLine(center, pos, 1, color)
		}
	}
}

func (c *PieChart) collect() bool {
	c.slices.reset()
	for _, s := range c.Layout() {
		ps := pieSlice{
			Slice: s,
			depth: math.Cos((s.Center - c.Yaw()) * deg2rad),
		}
		if c.IsExploded(s.Key.Serie, s.Key.Point) {
			var (
				rad  = s.Center * deg2rad
				dist = c.ExplodeDistance * c.radius()
			)
			ps.offx = dist * math.Sin(rad)
			ps.offz = dist * math.Cos(rad)
		}
		c.slices.push(ps)
	}
	return c.slices.Len() > 0
}

func (c *PieChart) drawSlice(cv Canvas, s pieSlice) {
	var (
		outer  = c.radius()
		inner  = c.innerRadius()
		top    = c.top()
		bottom = c.bottom()
		count  = wedges(s.Span())
		step   = s.Span() / float64(count)
	)
	arc := func(radius, y float64) []Pos {
		list := make([]Pos, 0, count+1)
		for i := 0; i <= count; i++ {
			pos, _ := c.Project(c.at(s, s.Start+float64(i)*step, radius, y))
			list = append(list, pos)
		}
		return list
	}
	var (
		outerTop    = arc(outer, top)
		outerBottom = arc(outer, bottom)
		innerTop    []Pos
		innerBottom []Pos
	)
	if inner > 0 {
		innerTop = arc(inner, top)
		innerBottom = arc(inner, bottom)
		for i := 0; i < count; i++ {
			drawQuad(cv, innerTop[i], innerTop[i+1], innerBottom[i+1], innerBottom[i], s.Color.Scale(0.6))
		}
	}
	for i := 0; i < count; i++ {
		drawQuad(cv, outerTop[i], outerTop[i+1], outerBottom[i+1], outerBottom[i], s.Color.Scale(0.7))
	}

	center := func(y float64) Pos {
		pos, _ := c.Project(0.5+s.offx, y, 0.5+s.offz)
		return pos
	}
	for _, i := range []int{0, count} {
		var (
			from1 = center(top)
			from2 = center(bottom)
		)
		if inner > 0 {
			from1, from2 = innerTop[i], innerBottom[i]
		}
		drawQuad(cv, from1, outerTop[i], outerBottom[i], from2, s.Color.Scale(0.8))
	}

	if inner > 0 {
		for i := 0; i < count; i++ {
			drawQuad(cv, innerTop[i], outerTop[i], outerTop[i+1], innerTop[i+1], s.Color)
		}
		return
	}
	mid := center(top)
	for i := 0; i < count; i++ {
		cv.DrawTriangle(mid, outerTop[i], outerTop[i+1], s.Color)
	}
}

// at returns the normalized coordinates of the point at angle degrees and radius
// from the center of the slice.
func (c *PieChart) at(s pieSlice, angle, radius, y float64) (float64, float64, float64) {
	rad := angle * deg2rad
	return 0.5 + s.offx + radius*math.Sin(rad), y, 0.5 + s.offz + radius*math.Cos(rad)
}

func (c *PieChart) radius() float64 {
	if c.Radius <= 0 {
		return DefaultRadius
	}
	return c.Radius
}

func (c *PieChart) innerRadius() float64 {
	if c.InnerRadius <= 0 || c.InnerRadius >= 1 {
		return 0
	}
	return c.InnerRadius * c.radius()
}

func (c *PieChart) top() float64 {
	return 0.5 + c.thickness()/2
}

func (c *PieChart) bottom() float64 {
	return 0.5 - c.thickness()/2
}

func (c *PieChart) thickness() float64 {
	if c.Thickness <= 0 {
		return DefaultThickness
	}
	return c.Thickness
}

func wedges(span float64) int {
	n := int(span / wedgeAngle)
	if n < minWedges {
		n = minWedges
	}
	return n
}

// DrawAxes is a no-op: a pie has no axes.
func (c *PieChart) DrawAxes(_ Canvas) {}

// DrawGrid is a no-op: a pie has no grid.
func (c *PieChart) DrawGrid(_ Canvas) {}

// DrawLegend lists the slices instead of the series.
func (c *PieChart) DrawLegend(cv Canvas) {
	var list []legendEntry
	for _, s := range c.Layout() {
		e := legendEntry{
			Title: s.Label,
			Color: s.Color,
		}
		list = append(list, e)
	}
	c.drawLegend(cv, list)
}
