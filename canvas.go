package charts3d

type Pos struct {
	X float64
	Y float64
}

func NewPos(x, y float64) Pos {
	return Pos{
		X: x,
		Y: y,
	}
}

func (p Pos) Add(other Pos) Pos {
	p.X += other.X
	p.Y += other.Y
	return p
}

type Rect struct {
	Pos
	W float64
	H float64
}

func NewRect(x, y, w, h float64) Rect {
	return Rect{
		Pos: NewPos(x, y),
		W:   w,
		H:   h,
	}
}

func (r Rect) Center() Pos {
	return NewPos(r.X+r.W/2, r.Y+r.H/2)
}

// Canvas is the 2D backend the charts draw on. Coordinates are in pixels, already
// projected. Calls are immediate: the order of calls is the compositing order.
type Canvas interface {
	DrawTriangle(p1, p2, p3 Pos, c Color)
	DrawLine(p1, p2 Pos, width float64, c Color)
	DrawCircle(center Pos, radius float64, c Color)
	DrawRectangle(r Rect, c Color)
}

// TextCanvas is implemented by backends able to render labels. The text is centered
// on pos and rotated by angle degrees when the backend supports it. Charts skip titles,
// tick labels and legend text on a canvas that does not implement it.
type TextCanvas interface {
	Canvas
	DrawText(pos Pos, str string, size, angle float64, c Color)
}

func drawText(cv Canvas, pos Pos, str string, size, angle float64, c Color) {
	tc, ok := cv.(TextCanvas)
	if !ok || str == "" {
		return
	}
	tc.DrawText(pos, str, size, angle, c)
}

func drawQuad(cv Canvas, p1, p2, p3, p4 Pos, c Color) {
	cv.DrawTriangle(p1, p2, p3, c)
	cv.DrawTriangle(p1, p3, p4, c)
}
