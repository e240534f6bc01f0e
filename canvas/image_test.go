package canvas

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/midbel/charts3d"
)

func TestImageTriangle(t *testing.T) {
	var (
		cv  = NewImage(20, 20)
		red = charts3d.RGB(255, 0, 0)
	)
	cv.DrawTriangle(charts3d.NewPos(0, 0), charts3d.NewPos(20, 0), charts3d.NewPos(0, 20), red)

	img := cv.Image()
	if got := img.RGBAAt(2, 2); got.R != 255 || got.A != 255 {
		t.Errorf("pixel inside the triangle should be painted, got %v", got)
	}
	if got := img.RGBAAt(18, 18); got.A != 0 {
		t.Errorf("pixel outside the triangle should be untouched, got %v", got)
	}
}

func TestImageTransparent(t *testing.T) {
	cv := NewImage(10, 10)
	cv.DrawTriangle(charts3d.NewPos(0, 0), charts3d.NewPos(10, 0), charts3d.NewPos(0, 10), charts3d.Transparent)
	cv.DrawLine(charts3d.NewPos(0, 0), charts3d.NewPos(0, 0), 4, charts3d.Black)
	cv.DrawCircle(charts3d.NewPos(5, 5), 0, charts3d.Black)
	for _, b := range cv.Image().Pix {
		if b != 0 {
			t.Fatalf("nothing should be painted")
		}
	}
}

func TestImageShapes(t *testing.T) {
	cv := NewImage(40, 40)
	cv.DrawRectangle(charts3d.NewRect(0, 0, 40, 40), charts3d.White)
	cv.DrawLine(charts3d.NewPos(0, 5), charts3d.NewPos(40, 5), 4, charts3d.Black)
	cv.DrawCircle(charts3d.NewPos(20, 25), 6, charts3d.Black)

	img := cv.Image()
	if got := img.RGBAAt(20, 5); got.R != 0 || got.A != 255 {
		t.Errorf("line should be painted, got %v", got)
	}
	if got := img.RGBAAt(20, 25); got.R != 0 {
		t.Errorf("circle should be painted, got %v", got)
	}
	if got := img.RGBAAt(2, 38); got.R != 255 {
		t.Errorf("background should be white, got %v", got)
	}
}

func TestImageEncode(t *testing.T) {
	ch := charts3d.NewScatterChart(charts3d.NewSerie("points", charts3d.Transparent,
		charts3d.NumberPoint(0, 0, 0),
		charts3d.NumberPoint(1, 2, 3),
	))
	ch.Width, ch.Height = 120, 80
	ch.ShowLegend = true

	var (
		cv  = NewImage(120, 80)
		buf bytes.Buffer
	)
	ch.Draw(cv)
	if err := cv.Encode(&buf); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("invalid png: %s", err)
	}
	if b := img.Bounds(); b.Dx() != 120 || b.Dy() != 80 {
		t.Errorf("image size mismatched: %v", b)
	}
}
