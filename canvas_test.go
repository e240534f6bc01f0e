package charts3d

type call struct {
	Kind   string
	Points []Pos
	Width  float64
	Radius float64
	Color  Color
	Text   string
}

type recorder struct {
	calls []call
}

func (r *recorder) DrawTriangle(p1, p2, p3 Pos, c Color) {
	r.calls = append(r.calls, call{Kind: "triangle", Points: []Pos{p1, p2, p3}, Color: c})
}

func (r *recorder) DrawLine(p1, p2 Pos, width float64, c Color) {
	r.calls = append(r.calls, call{Kind: "line", Points: []Pos{p1, p2}, Width: width, Color: c})
}

func (r *recorder) DrawCircle(center Pos, radius float64, c Color) {
	r.calls = append(r.calls, call{Kind: "circle", Points: []Pos{center}, Radius: radius, Color: c})
}

func (r *recorder) DrawRectangle(rect Rect, c Color) {
	r.calls = append(r.calls, call{Kind: "rect", Points: []Pos{rect.Pos}, Width: rect.W, Color: c})
}

func (r *recorder) DrawText(pos Pos, str string, size, angle float64, c Color) {
	r.calls = append(r.calls, call{Kind: "text", Points: []Pos{pos}, Text: str, Color: c})
}

func (r *recorder) count(kind string) int {
	var n int
	for _, c := range r.calls {
		if c.Kind == kind {
			n++
		}
	}
	return n
}

func (r *recorder) filter(kind string) []call {
	var list []call
	for _, c := range r.calls {
		if c.Kind == kind {
			list = append(list, c)
		}
	}
	return list
}

// plain forwards the primitives to a recorder but cannot draw text.
type plain struct {
	rec *recorder
}

func (p plain) DrawTriangle(p1, p2, p3 Pos, c Color) {
	p.rec.DrawTriangle(p1, p2, p3, c)
}

func (p plain) DrawLine(p1, p2 Pos, width float64, c Color) {
	p.rec.DrawLine(p1, p2, width, c)
}

func (p plain) DrawCircle(center Pos, radius float64, c Color) {
	p.rec.DrawCircle(center, radius, c)
}

func (p plain) DrawRectangle(rect Rect, c Color) {
	p.rec.DrawRectangle(rect, c)
}
