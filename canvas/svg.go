package canvas

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo/float"
	"github.com/midbel/charts3d"
)

// SVG writes every primitive as an SVG element, in call order.
type SVG struct {
	out    *errWriter
	doc    *svg.SVG
	closed bool
}

func NewSVG(w io.Writer, width, height float64) *SVG {
	out := &errWriter{w: w}
	doc := svg.New(out)
	doc.Start(width, height)
	return &SVG{
		out: out,
		doc: doc,
	}
}

func (s *SVG) DrawTriangle(p1, p2, p3 charts3d.Pos, c charts3d.Color) {
	var (
		xs = []float64{p1.X, p2.X, p3.X}
		ys = []float64{p1.Y, p2.Y, p3.Y}
	)
	s.doc.Polygon(xs, ys, fillStyle(c))
}

func (s *SVG) DrawLine(p1, p2 charts3d.Pos, width float64, c charts3d.Color) {
	s.doc.Line(p1.X, p1.Y, p2.X, p2.Y, strokeStyle(c, width))
}

func (s *SVG) DrawCircle(center charts3d.Pos, radius float64, c charts3d.Color) {
	s.doc.Circle(center.X, center.Y, radius, fillStyle(c))
}

func (s *SVG) DrawRectangle(r charts3d.Rect, c charts3d.Color) {
	s.doc.Rect(r.X, r.Y, r.W, r.H, fillStyle(c))
}

func (s *SVG) DrawText(pos charts3d.Pos, str string, size, angle float64, c charts3d.Color) {
	style := fmt.Sprintf("font-family:sans-serif;font-size:%.1fpx;%s;text-anchor:middle;dominant-baseline:middle", size, fillStyle(c))
	if angle == 0 {
		s.doc.Text(pos.X, pos.Y, str, style)
		return
	}
	s.doc.Gtransform(fmt.Sprintf("rotate(%.2f %.2f %.2f)", angle, pos.X, pos.Y))
	s.doc.Text(pos.X, pos.Y, str, style)
	s.doc.Gend()
}

// Close ends the document and reports the first write error.
func (s *SVG) Close() error {
	if !s.closed {
		s.closed = true
		s.doc.End()
	}
	return s.out.err
}

func fillStyle(c charts3d.Color) string {
	return fmt.Sprintf("fill:%s;fill-opacity:%.3f", c.Hex(), c.Opacity())
}

func strokeStyle(c charts3d.Color, width float64) string {
	return fmt.Sprintf("stroke:%s;stroke-opacity:%.3f;stroke-width:%.2f;stroke-linecap:round", c.Hex(), c.Opacity(), width)
}

type errWriter struct {
	w   io.Writer
	err error
}

func (w *errWriter) Write(b []byte) (int, error) {
	if w.err != nil {
		return 0, w.err
	}
	n, err := w.w.Write(b)
	if err != nil {
		w.err = err
	}
	return n, err
}
