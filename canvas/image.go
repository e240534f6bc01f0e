package canvas

import (
	"image"
	"image/draw"
	"image/png"
	"io"
	"math"

	"github.com/midbel/charts3d"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

const circleSegments = 32

// Image rasterizes the primitives into an RGBA image with anti-aliasing. Text is
// drawn with a fixed 7x13 face: the size and angle of labels are ignored.
type Image struct {
	img *image.RGBA
	ras *vector.Rasterizer
}

func NewImage(width, height int) *Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	return &Image{
		img: img,
		ras: vector.NewRasterizer(width, height),
	}
}

func (i *Image) Image() *image.RGBA {
	return i.img
}

func (i *Image) DrawTriangle(p1, p2, p3 charts3d.Pos, c charts3d.Color) {
	i.fill(c, p1, p2, p3)
}

// DrawLine draws the line as a quad of the given width.
func (i *Image) DrawLine(p1, p2 charts3d.Pos, width float64, c charts3d.Color) {
	var (
		dx   = p2.X - p1.X
		dy   = p2.Y - p1.Y
		dist = math.Hypot(dx, dy)
	)
	if dist == 0 {
		return
	}
	if width < 1 {
		width = 1
	}
	var (
		nx = -dy / dist * width / 2
		ny = dx / dist * width / 2
		a  = charts3d.NewPos(p1.X+nx, p1.Y+ny)
		b  = charts3d.NewPos(p2.X+nx, p2.Y+ny)
		d  = charts3d.NewPos(p2.X-nx, p2.Y-ny)
		e  = charts3d.NewPos(p1.X-nx, p1.Y-ny)
	)
	i.fill(c, a, b, d, e)
}

func (i *Image) DrawCircle(center charts3d.Pos, radius float64, c charts3d.Color) {
	if radius <= 0 {
		return
	}
	list := make([]charts3d.Pos, circleSegments)
	for j := range list {
		angle := 2 * math.Pi * float64(j) / circleSegments
		list[j] = charts3d.NewPos(center.X+radius*math.Cos(angle), center.Y+radius*math.Sin(angle))
	}
	i.fill(c, list...)
}

func (i *Image) DrawRectangle(r charts3d.Rect, c charts3d.Color) {
	var (
		x0 = int(math.Round(r.X))
		y0 = int(math.Round(r.Y))
		x1 = int(math.Round(r.X + r.W))
		y1 = int(math.Round(r.Y + r.H))
	)
	draw.Draw(i.img, image.Rect(x0, y0, x1, y1), image.NewUniform(c), image.Point{}, draw.Over)
}

func (i *Image) DrawText(pos charts3d.Pos, str string, _, _ float64, c charts3d.Color) {
	var (
		face  = basicfont.Face7x13
		width = font.MeasureString(face, str)
		x     = fixed.Int26_6(pos.X*64) - width/2
		y     = fixed.Int26_6(pos.Y*64) + fixed.I(face.Ascent-face.Height/2)
	)
	d := font.Drawer{
		Dst:  i.img,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.Point26_6{X: x, Y: y},
	}
	d.DrawString(str)
}

// Encode writes the image as PNG.
func (i *Image) Encode(w io.Writer) error {
	return png.Encode(w, i.img)
}

func (i *Image) fill(c charts3d.Color, list ...charts3d.Pos) {
	if c.IsZero() || len(list) < 3 {
		return
	}
	size := i.img.Bounds().Size()
	i.ras.Reset(size.X, size.Y)
	i.ras.DrawOp = draw.Over
	i.ras.MoveTo(float32(list[0].X), float32(list[0].Y))
	for _, p := range list[1:] {
		i.ras.LineTo(float32(p.X), float32(p.Y))
	}
	i.ras.ClosePath()
	i.ras.Draw(i.img, i.img.Bounds(), image.NewUniform(c), image.Point{})
}
