package charts3d

import (
	"log/slog"
)

type Padding struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

func NewPadding(top, right, bottom, left float64) Padding {
	return Padding{
		Top:    top,
		Right:  right,
		Bottom: bottom,
		Left:   left,
	}
}

func (p Padding) Horizontal() float64 {
	return p.Left + p.Right
}

func (p Padding) Vertical() float64 {
	return p.Top + p.Bottom
}

// Drawer is the sequence of steps of a frame. Concrete charts embed Chart, which
// provides every step except DrawData, and hand themselves to Chart.render from
// their Draw method.
type Drawer interface {
	DrawBackground(Canvas)
	DrawAxes(Canvas)
	DrawGrid(Canvas)
	DrawData(Canvas)
	DrawLegend(Canvas)
}

const (
	DefaultWidth  = 800.0
	DefaultHeight = 600.0
)

// Chart holds the state shared by the 3D charts: size, camera, axes, display flags
// and series.
type Chart struct {
	Title  string
	Width  float64
	Height float64

	Padding

	Background Color
	Style      Style
	Marker     Marker

	ShowAxes   bool
	ShowGrid   bool
	ShowLegend bool
	Legend     struct {
		Title  string
		Orient Orientation
	}

	Series []Serie

	camera Camera
	xaxis  AxisConfig
	yaxis  AxisConfig
	zaxis  AxisConfig

	frame   bounds
	drawing bool
}

func makeChart() Chart {
	c := Chart{
		Width:      DefaultWidth,
		Height:     DefaultHeight,
		Padding:    NewPadding(40, 40, 40, 40),
		Background: White,
		Style:      DefaultStyle(),
		Marker:     MarkerCircle,
		ShowAxes:   true,
		ShowGrid:   true,
		camera:     NewCamera(),
		xaxis:      DefaultAxis(),
		yaxis:      DefaultAxis(),
		zaxis:      DefaultAxis(),
	}
	c.Legend.Orient = OrientRight | OrientTop
	return c
}

func (c *Chart) DrawingWidth() float64 {
	return c.width() - c.Padding.Horizontal()
}

func (c *Chart) DrawingHeight() float64 {
	return c.height() - c.Padding.Vertical()
}

func (c *Chart) width() float64 {
	if c.Width <= 0 {
		return DefaultWidth
	}
	return c.Width
}

func (c *Chart) height() float64 {
	if c.Height <= 0 {
		return DefaultHeight
	}
	return c.Height
}

// render runs the steps of d for one frame. Every projected position is
// recomputed from the current series and camera; the axis ranges are computed
// once for the whole frame.
func (c *Chart) render(cv Canvas, d Drawer) {
	if cv == nil || d == nil {
		return
	}
	c.view()
	c.frame = c.scan()
	c.drawing = true
	defer func() {
		c.drawing = false
	}()

	d.DrawBackground(cv)
	if c.ShowAxes {
		d.DrawAxes(cv)
	}
	if c.ShowGrid {
		d.DrawGrid(cv)
	}
	d.DrawData(cv)
	if c.ShowLegend {
		d.DrawLegend(cv)
	}
}

func (c *Chart) DrawBackground(cv Canvas) {
	if !c.Background.IsZero() {
		cv.DrawRectangle(NewRect(0, 0, c.width(), c.height()), c.Background)
	}
	if c.Title != "" {
		pos := NewPos(c.width()/2, c.Padding.Top/2)
		drawText(cv, pos, c.Title, c.Style.textSize()*1.4, 0, c.Style.textColor())
	}
}

func (c *Chart) DrawAxes(cv Canvas) {
	for _, k := range []axisKind{axisX, axisY, axisZ} {
		c.drawAxis(cv, k)
	}
}

func (c *Chart) DrawGrid(cv Canvas) {
	for _, k := range []axisKind{axisX, axisY, axisZ} {
		c.drawGrid(cv, k)
	}
}

func (c *Chart) DrawLegend(cv Canvas) {
	var list []legendEntry
	for i, s := range c.Series {
		if !s.Visible() {
			continue
		}
		e := legendEntry{
			Title: s.Title,
			Color: s.Color.Or(c.Style.palette().At(i)),
		}
		list = append(list, e)
	}
	c.drawLegend(cv, list)
}

func (c *Chart) RotateView(dyaw, dpitch float64) {
	c.view().Rotate(dyaw, dpitch)
}

func (c *Chart) ZoomView(delta float64) {
	c.view().Zoom(delta)
}

func (c *Chart) SetCameraAngle(yaw, pitch float64) {
	c.view().SetAngle(yaw, pitch)
}

func (c *Chart) Yaw() float64 {
	return c.view().Yaw()
}

func (c *Chart) SetYaw(yaw float64) {
	c.view().SetYaw(yaw)
}

func (c *Chart) Pitch() float64 {
	return c.view().Pitch()
}

func (c *Chart) SetPitch(pitch float64) {
	c.view().SetPitch(pitch)
}

func (c *Chart) Distance() float64 {
	return c.view().Distance()
}

func (c *Chart) SetDistance(dist float64) {
	c.view().SetDistance(dist)
}

func (c *Chart) FieldOfView() float64 {
	return c.view().FieldOfView()
}

func (c *Chart) SetFieldOfView(fov float64) {
	c.view().SetFieldOfView(fov)
}

// Camera returns a copy of the camera, its viewport set on the drawing area.
func (c *Chart) Camera() Camera {
	return *c.view()
}

// view returns the camera with its viewport set on the drawing area. A zero Chart
// gets the default camera.
func (c *Chart) view() *Camera {
	if c.camera.focal == 0 {
		c.camera = NewCamera()
	}
	c.camera.SetViewport(c.area())
	return &c.camera
}

func (c *Chart) XAxis() AxisConfig {
	return c.xaxis
}

func (c *Chart) SetXAxis(a AxisConfig) {
	c.xaxis = a
}

func (c *Chart) YAxis() AxisConfig {
	return c.yaxis
}

func (c *Chart) SetYAxis(a AxisConfig) {
	c.yaxis = a
}

func (c *Chart) ZAxis() AxisConfig {
	return c.zaxis
}

func (c *Chart) SetZAxis(a AxisConfig) {
	c.zaxis = a
}

// Project projects a point already normalized into the unit cube.
func (c *Chart) Project(x, y, z float64) (Pos, float64) {
	return c.view().Project(x, y, z)
}

// DataToScreen projects a point given in data space. The Z value is normalized by
// RangeZ: LineChart, which places its series on rows, has its own version.
func (c *Chart) DataToScreen(x, y, z float64) Pos {
	pos, _ := c.Project(c.normalize(x, y, z))
	return pos
}

// GetDepth returns the sort depth of a point given in data space.
func (c *Chart) GetDepth(x, y, z float64) float64 {
	return c.view().Depth(c.normalize(x, y, z))
}

func (c *Chart) RangeX() Range {
	return c.rangeOf(axisX)
}

func (c *Chart) RangeY() Range {
	return c.rangeOf(axisY)
}

func (c *Chart) RangeZ() Range {
	return c.rangeOf(axisZ)
}

func (c *Chart) normalize(x, y, z float64) (float64, float64, float64) {
	var (
		b  = c.ranges()
		nx = c.xaxis.normalize(b.x, x)
		ny = c.yaxis.normalize(b.y, y)
		nz = c.zaxis.normalize(b.z, z)
	)
	return nx, ny, nz
}

func (c *Chart) axis(kind axisKind) AxisConfig {
	switch kind {
	case axisX:
		return c.xaxis
	case axisY:
		return c.yaxis
	default:
		return c.zaxis
	}
}

// bounds are the effective ranges of the three axes.
type bounds struct {
	x Range
	y Range
	z Range
}

func (b bounds) of(kind axisKind) Range {
	switch kind {
	case axisX:
		return b.x
	case axisY:
		return b.y
	default:
		return b.z
	}
}

// ranges returns the ranges of the frame being drawn, or scans the series when
// called outside of a frame.
func (c *Chart) ranges() bounds {
	if c.drawing {
		return c.frame
	}
	return c.scan()
}

func (c *Chart) rangeOf(kind axisKind) Range {
	return c.ranges().of(kind)
}

// scan computes the effective ranges in one pass over the visible series: the
// fixed limits of the axes or the extent of the data.
func (c *Chart) scan() bounds {
	var ex, ey, ez extent
	for _, s := range c.Series {
		if !s.Visible() {
			continue
		}
		for _, p := range s.Points {
			ex.add(p.X)
			ey.add(p.Y)
			ez.add(p.Z)
		}
	}
	return bounds{
		x: c.effective(axisX, ex.get()),
		y: c.effective(axisY, ey.get()),
		z: c.effective(axisZ, ez.get()),
	}
}

// effective merges the limits of an axis with the observed range. A degenerate
// range is replaced by a unit width range.
func (c *Chart) effective(kind axisKind, observed Range) Range {
	rg := c.axis(kind).effective(observed)
	if rg.Degenerate() {
		slog.Debug("degenerate axis range", "axis", kind.String(), "min", rg.F, "max", rg.T)
		rg = rg.fix()
	}
	return rg
}

func (c *Chart) area() Rect {
	return NewRect(c.Padding.Left, c.Padding.Top, c.DrawingWidth(), c.DrawingHeight())
}

func (k axisKind) String() string {
	switch k {
	case axisX:
		return "x"
	case axisY:
		return "y"
	default:
		return "z"
	}
}

type legendEntry struct {
	Title string
	Color Color
}

func (c *Chart) drawLegend(cv Canvas, list []legendEntry) {
	if len(list) == 0 {
		return
	}
	var (
		size   = c.Style.textSize()
		offset = size * 1.4
		height = float64(len(list)) * offset
		width  float64
	)
	if c.Legend.Title != "" {
		height += offset
	}
	for _, e := range list {
		if n := float64(len(e.Title)); n > width {
			width = n
		}
	}
	width = width*size*0.6 + offset*1.5

	var left, top float64
	switch c.Legend.Orient {
	case OrientRight:
		left = c.width() - c.Padding.Right - width
		top = (c.height() - height) / 2
	case OrientRight | OrientBottom:
		left = c.width() - c.Padding.Right - width
		top = c.height() - c.Padding.Bottom - height
	case OrientBottom:
		left = (c.width() - width) / 2
		top = c.height() - c.Padding.Bottom - height
	case OrientLeft | OrientBottom:
		left = c.Padding.Left
		top = c.height() - c.Padding.Bottom - height
	case OrientLeft:
		left = c.Padding.Left
		top = (c.height() - height) / 2
	case OrientLeft | OrientTop:
		left = c.Padding.Left
		top = c.Padding.Top
	case OrientTop:
		left = (c.width() - width) / 2
		top = c.Padding.Top
	case OrientRight | OrientTop:
		left = c.width() - c.Padding.Right - width
		top = c.Padding.Top
	default:
		return
	}
	if c.Legend.Title != "" {
		pos := NewPos(left+width/2, top+offset/2)
		drawText(cv, pos, c.Legend.Title, size, 0, c.Style.textColor())
		top += offset
	}
	for i, e := range list {
		y := top + float64(i)*offset
		cv.DrawRectangle(NewRect(left, y+offset*0.2, offset*0.6, offset*0.6), e.Color)

		pos := NewPos(left+offset+float64(len(e.Title))*size*0.3, y+offset/2)
		drawText(cv, pos, e.Title, size, 0, c.Style.textColor())
	}
}
