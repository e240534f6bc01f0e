package charts3d

import (
	"github.com/midbel/slices"
)

type segment struct {
	From  Pos
	To    Pos
	Color Color
	Width float64
	depth float64
}

func (s segment) sortDepth() float64 {
	return s.depth
}

type marker struct {
	Pos   Pos
	Color Color
	Shape Marker
	Size  float64
	depth float64
}

func (m marker) sortDepth() float64 {
	return m.depth
}

// LineChart draws every visible serie as a polyline on its own row along the Z
// axis. The Z value of the points is ignored.
type LineChart struct {
	Chart

	LineWidth   float64
	ShowMarkers bool
	MarkerSize  float64
	DropLines   bool
	FillToFloor bool

	segments buffer[segment]
	markers  buffer[marker]
}

func NewLineChart(series ...Serie) *LineChart {
	c := LineChart{
		MarkerSize: DefaultSize,
	}
	c.Chart = makeChart()
	c.Series = series
	return &c
}

// Draw renders one frame of the chart on cv.
func (c *LineChart) Draw(cv Canvas) {
	c.render(cv, c)
}

func (c *LineChart) DrawData(cv Canvas) {
	if !c.collect(cv) {
		return
	}
	c.segments.farFirst(segment.sortDepth)
	for _, s := range c.segments.items {
		cv.DrawLine(s.From, s.To, s.Width, s.Color)
	}
	c.markers.farFirst(marker.sortDepth)
	for _, m := range c.markers.items {
		DrawMarker(cv, m.Shape, m.Pos, m.Size, m.Color)
	}
}

// DataToScreen projects the point x, y of the serie at index serie of Series on
// the row of that serie. It reports false when the serie is not visible.
func (c *LineChart) DataToScreen(serie int, x, y float64) (Pos, bool) {
	nx, ny, nz, ok := c.normalizeRow(serie, x, y)
	if !ok {
		return Pos{}, false
	}
	pos, _ := c.Project(nx, ny, nz)
	return pos, true
}

// GetDepth returns the sort depth of the point x, y on the row of the serie at
// index serie of Series.
func (c *LineChart) GetDepth(serie int, x, y float64) (float64, bool) {
	nx, ny, nz, ok := c.normalizeRow(serie, x, y)
	if !ok {
		return 0, false
	}
	return c.view().Depth(nx, ny, nz), true
}

func (c *LineChart) normalizeRow(serie int, x, y float64) (float64, float64, float64, bool) {
	z, ok := c.rowOf(serie)
	if !ok {
		return 0, 0, 0, false
	}
	b := c.ranges()
	return c.xaxis.normalize(b.x, x), c.yaxis.normalize(b.y, y), z, true
}

// rowOf returns the Z position of the serie at index serie of Series.
func (c *LineChart) rowOf(serie int) (float64, bool) {
	if serie < 0 || serie >= len(c.Series) || !c.Series[serie].Visible() {
		return 0, false
	}
	var row, count int
	for i, s := range c.Series {
		if !s.Visible() {
			continue
		}
		if i < serie {
			row++
		}
		count++
	}
	return seriesRow(row, count), true
}

// seriesRow places the i-th of n series along the Z axis, front to back.
func seriesRow(i, n int) float64 {
	if n <= 1 {
		return 0
	}
	return float64(i) / float64(n-1)
}

// collect fills the segment and marker buffers. The floor fills are drawn on cv
// right away and do not take part in the depth sort.
func (c *LineChart) collect(cv Canvas) bool {
	c.segments.reset()
	c.markers.reset()

	count := len(visibleSeries(c.Series))
	if count == 0 {
		return false
	}
	var (
		rx    = c.RangeX()
		ry    = c.RangeY()
		width = c.LineWidth
		row   int
	)
	if width <= 0 {
		width = c.Style.lineWidth()
	}
	type vertex struct {
		Pos
		NX    float64
		NZ    float64
		Depth float64
	}
	for j, s := range c.Series {
		if !s.Visible() {
			continue
		}
		var (
			z     = seriesRow(row, count)
			color = s.Color.Or(c.Style.palette().At(j))
			shape = s.Marker.Or(c.Marker)
		)
		row++

		project := func(p Point) vertex {
			var (
				nx = c.xaxis.normalize(rx, p.X)
				ny = c.yaxis.normalize(ry, p.Y)
			)
			pos, depth := c.Project(nx, ny, z)
			if c.DropLines {
				floor, fd := c.Project(nx, 0, z)
				c.segments.push(segment{
					From:  pos,
					To:    floor,
					Color: s.pointColor(p, color).WithAlpha(c.Style.lineOpacity()),
					Width: 1,
					depth: (depth + fd) / 2,
				})
			}
			if c.ShowMarkers {
				c.markers.push(marker{
					Pos:   pos,
					Color: s.pointColor(p, color),
					Shape: shape,
					Size:  c.MarkerSize,
					depth: depth,
				})
			}
			return vertex{
				Pos:   pos,
				NX:    nx,
				NZ:    z,
				Depth: depth,
			}
		}

		prev := project(slices.Fst(s.Points))
		for _, p := range slices.Rest(s.Points) {
			curr := project(p)
			if c.FillToFloor {
				var (
					f1, _ = c.Project(prev.NX, 0, prev.NZ)
					f2, _ = c.Project(curr.NX, 0, curr.NZ)
					fill  = color.WithAlpha(c.Style.fillOpacity())
				)
				cv.DrawTriangle(prev.Pos, curr.Pos, f2, fill)
				cv.DrawTriangle(prev.Pos, f2, f1, fill)
			}
			c.segments.push(segment{
				From:  prev.Pos,
				To:    curr.Pos,
				Color: s.pointColor(p, color),
				Width: width,
				depth: (prev.Depth + curr.Depth) / 2,
			})
			prev = curr
		}
	}
	return true
}

// DrawGrid draws the grid without the Z lines: the rows of a line chart are not
// on a data scale.
func (c *LineChart) DrawGrid(cv Canvas) {
	c.drawGrid(cv, axisX)
	c.drawGrid(cv, axisY)
}

func (c *LineChart) DrawAxes(cv Canvas) {
	c.drawAxis(cv, axisX)
	c.drawAxis(cv, axisY)
	c.drawRows(cv)
}

// drawRows labels each serie row at the end of the Z axis.
func (c *LineChart) drawRows(cv Canvas) {
	var (
		list  = visibleSeries(c.Series)
		size  = c.Style.textSize() * 0.8
		color = c.zaxis.LineColor.Or(DarkGray)
	)
	p1, _ := c.Project(axisZ.at(0, 0))
	p2, _ := c.Project(axisZ.at(1, 0))
	cv.DrawLine(p1, p2, 1, color)
	for i, s := range list {
		pos, _ := c.Project(axisZ.at(seriesRow(i, len(list)), labelOffset))
		drawText(cv, pos, s.Title, size, c.zaxis.LabelRotation, c.Style.textColor())
	}
	if c.zaxis.Title != "" {
		pos, _ := c.Project(axisZ.at(0.5, titleOffset))
		drawText(cv, pos, c.zaxis.Title, c.Style.textSize(), 0, c.Style.textColor())
	}
}
