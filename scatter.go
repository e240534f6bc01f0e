package charts3d

import (
	"github.com/go-gl/mathgl/mgl64"
)

const (
	DefaultMinMarkerSize = 4.0
	DefaultMaxMarkerSize = 30.0

	depthShrink = 0.5
	depthFade   = 0.7
)

type scatterPoint struct {
	Pos   Pos
	Floor Pos
	Color Color
	Drop  Color
	Shape Marker
	Size  float64
	depth float64
}

func (p scatterPoint) sortDepth() float64 {
	return p.depth
}

// ScatterChart draws every visible point as a marker. With SizeByValue, the W of
// the points is mapped linearly between MinMarkerSize and MaxMarkerSize.
type ScatterChart struct {
	Chart

	MarkerSize    float64
	MinMarkerSize float64
	MaxMarkerSize float64
	SizeByValue   bool
	DepthScale    bool
	DepthFade     bool
	DropLines     bool

	points buffer[scatterPoint]
}

func NewScatterChart(series ...Serie) *ScatterChart {
	c := ScatterChart{
		MarkerSize:    DefaultSize,
		MinMarkerSize: DefaultMinMarkerSize,
		MaxMarkerSize: DefaultMaxMarkerSize,
	}
	c.Chart = makeChart()
	c.Series = series
	return &c
}

// Draw renders one frame of the chart on cv.
func (c *ScatterChart) Draw(cv Canvas) {
	c.render(cv, c)
}

func (c *ScatterChart) DrawData(cv Canvas) {
	if !c.collect() {
		return
	}
	c.points.farFirst(scatterPoint.sortDepth)
	for _, p := range c.points.items {
		if c.DropLines {
			cv.DrawLine(p.Pos, p.Floor, 1, p.Drop)
		}
		DrawMarker(cv, p.Shape, p.Pos, p.Size, p.Color)
	}
}

func (c *ScatterChart) collect() bool {
	c.points.reset()
	if len(visibleSeries(c.Series)) == 0 {
		return false
	}
	var (
		rx     = c.RangeX()
		ry     = c.RangeY()
		rz     = c.RangeZ()
		wr     = c.rangeW()
		bounds = c.view().DepthBounds()
	)
	for i, s := range c.Series {
		if !s.Visible() {
			continue
		}
		var (
			color = s.Color.Or(c.Style.palette().At(i))
			shape = s.Marker.Or(c.Marker)
		)
		for _, p := range s.Points {
			if !p.finite() {
				continue
			}
			var (
				nx = c.xaxis.normalize(rx, p.X)
				ny = c.yaxis.normalize(ry, p.Y)
				nz = c.zaxis.normalize(rz, p.Z)
			)
			pos, depth := c.Project(nx, ny, nz)
			sp := scatterPoint{
				Pos:   pos,
				Color: s.pointColor(p, color),
				Shape: shape,
				Size:  c.sizeOf(p, wr),
				depth: depth,
			}
			if c.DepthScale || c.DepthFade {
				t := mgl64.Clamp((depth-bounds.F)/bounds.Len(), 0, 1)
				if c.DepthScale {
					sp.Size *= 1 - depthShrink*t
				}
				if c.DepthFade {
					sp.Color = sp.Color.WithAlpha(1 - depthFade*t)
				}
			}
			if c.DropLines {
				sp.Floor, _ = c.Project(nx, 0, nz)
				sp.Drop = sp.Color.WithAlpha(c.Style.lineOpacity())
			}
			c.points.push(sp)
		}
	}
	return c.points.Len() > 0
}

// sizeOf returns the base size of a marker, before depth scaling. Points without W
// and a degenerate W range get MinMarkerSize.
func (c *ScatterChart) sizeOf(p Point, wr Range) float64 {
	if !c.SizeByValue {
		if c.MarkerSize <= 0 {
			return DefaultSize
		}
		return c.MarkerSize
	}
	// a degenerate W range gives MinMarkerSize instead of mapping w on [0, 1]
	if !p.HasW || isBad(p.W) || wr.Degenerate() {
		return c.MinMarkerSize
	}
	t := mgl64.Clamp((p.W-wr.F)/wr.Len(), 0, 1)
	return c.MinMarkerSize + t*(c.MaxMarkerSize-c.MinMarkerSize)
}

// rangeW returns the extent of W over the visible points, [0, 1] if none has a W.
func (c *ScatterChart) rangeW() Range {
	var ext extent
	for _, s := range c.Series {
		if !s.Visible() {
			continue
		}
		for _, p := range s.Points {
			if p.HasW {
				ext.add(p.W)
			}
		}
	}
	return ext.get()
}
