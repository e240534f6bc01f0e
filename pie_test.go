package charts3d

import (
	"math"
	"testing"
)

func testPieChart(values ...float64) *PieChart {
	var s Serie
	for i, v := range values {
		s.Points = append(s.Points, NumberPoint(float64(i), v, 0))
	}
	c := NewPieChart(s)
	c.ShowLegend = false
	c.Background = Transparent
	c.SetCameraAngle(0, 0)
	return c
}

func TestPieChartLayout(t *testing.T) {
	c := testPieChart(10, 10, 10)
	list := c.Layout()
	if len(list) != 3 {
		t.Fatalf("expected 3 slices, got %d", len(list))
	}
	centers := []float64{60, 180, 300}
	for i, s := range list {
		if math.Abs(s.Span()-120) > epsilon {
			t.Errorf("%d: span should be 120, got %f", i, s.Span())
		}
		if math.Abs(s.Center-centers[i]) > epsilon {
			t.Errorf("%d: center should be %f, got %f", i, centers[i], s.Center)
		}
		if s.Color != Category10.At(i) {
			t.Errorf("%d: color should come from the palette, got %v", i, s.Color)
		}
	}
}

func TestPieChartSpans(t *testing.T) {
	c := testPieChart(3, 1, 7, 2.5, 11)
	c.StartAngle = 45
	list := c.Layout()

	var total float64
	for i, s := range list {
		total += s.Span()
		if i > 0 && s.Start != list[i-1].End {
			t.Errorf("%d: slices should be contiguous: %f != %f", i, s.Start, list[i-1].End)
		}
	}
	if math.Abs(total-fullcircle) > epsilon {
		t.Errorf("spans should sum to a full circle, got %f", total)
	}
	if list[0].Start != 45 {
		t.Errorf("first slice should start at the start angle, got %f", list[0].Start)
	}
}

func TestPieChartSkipValues(t *testing.T) {
	c := testPieChart(10, 0, -5, 30, math.NaN())
	list := c.Layout()
	if len(list) != 2 {
		t.Fatalf("expected 2 slices, got %d", len(list))
	}
	if list[0].Key.Point != 0 || list[1].Key.Point != 3 {
		t.Errorf("wrong points kept: %v, %v", list[0].Key, list[1].Key)
	}
	if math.Abs(list[1].Span()-270) > epsilon {
		t.Errorf("span should ignore skipped values: got %f", list[1].Span())
	}
}

func TestPieChartEmpty(t *testing.T) {
	var rec recorder
	for _, c := range []*PieChart{testPieChart(0, 0), testPieChart(-1), testPieChart()} {
		c.ShowLegend = true
		c.Draw(&rec)
	}
	if len(rec.calls) != 0 {
		t.Fatalf("pie without positive values should draw nothing: %d calls", len(rec.calls))
	}
}

func TestPieChartOrder(t *testing.T) {
	c := testPieChart(1, 1, 2)
	var rec recorder
	c.Draw(&rec)

	var got []int
	for _, s := range c.slices.items {
		got = append(got, s.Key.Point)
	}
	// centers at 45, 135 and 270: the second slice faces the camera
	want := []int{0, 2, 1}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("slices not drawn far first: want %v, got %v", want, got)
		}
	}
	last := rec.calls[len(rec.calls)-1]
	if last.Kind != "triangle" || last.Color != Category10.At(1) {
		t.Errorf("top of the nearest slice should be drawn last, got %+v", last)
	}
}

func TestPieChartFaces(t *testing.T) {
	tests := []struct {
		Inner float64
		Want  int
	}{
		{Inner: 0, Want: 3*(18+18+36) + 12},
		{Inner: 0.5, Want: 6*(18+18+36) + 12},
		{Inner: 1, Want: 3*(18+18+36) + 12},
	}
	for _, tt := range tests {
		var (
			c   = testPieChart(1, 1, 2)
			rec recorder
		)
		c.InnerRadius = tt.Inner
		c.Draw(&rec)
		if n := rec.count("triangle"); n != tt.Want {
			t.Errorf("inner radius %f: want %d triangles, got %d", tt.Inner, tt.Want, n)
		}
	}
}

func TestPieChartShading(t *testing.T) {
	var (
		c   = testPieChart(1)
		rec recorder
	)
	c.Draw(&rec)
	var (
		base   = Category10.At(0)
		shades = map[Color]int{}
	)
	for _, r := range rec.filter("triangle") {
		shades[r.Color]++
	}
	count := wedges(fullcircle)
	if shades[base.Scale(0.7)] != 2*count {
		t.Errorf("outer side: want %d triangles, got %d", 2*count, shades[base.Scale(0.7)])
	}
	if shades[base.Scale(0.8)] != 4 {
		t.Errorf("radial sides: want 4 triangles, got %d", shades[base.Scale(0.8)])
	}
	if shades[base] != count {
		t.Errorf("top: want %d triangles, got %d", count, shades[base])
	}
}

func TestPieChartExplode(t *testing.T) {
	c := testPieChart(10, 10, 10)
	c.Explode(0, 1)
	if !c.IsExploded(0, 1) || c.IsExploded(0, 0) {
		t.Fatalf("explode state mismatched")
	}
	var rec recorder
	c.Draw(&rec)

	dist := DefaultExplode * DefaultRadius
	for _, s := range c.slices.items {
		if s.Key.Point != 1 {
			if s.offx != 0 || s.offz != 0 {
				t.Errorf("%d: slice should not be moved", s.Key.Point)
			}
			continue
		}
		// centered at 180: pushed toward -z
		if math.Abs(s.offx) > epsilon || math.Abs(s.offz+dist) > epsilon {
			t.Errorf("exploded offset: want (0, %f), got (%f, %f)", -dist, s.offx, s.offz)
		}
	}
	c.Implode(0, 1)
	if c.IsExploded(0, 1) {
		t.Fatalf("slice should not be exploded anymore")
	}
}

func TestPieChartEdges(t *testing.T) {
	var (
		c   = testPieChart(10, 10, 10)
		rec recorder
	)
	c.ShowEdges = true
	c.Draw(&rec)

	if n := rec.count("line"); n != 6 {
		t.Fatalf("expected 2 edges per slice, got %d", n)
	}
	var seen bool
	for _, r := range rec.calls {
		switch r.Kind {
		case "line":
			seen = true
			if r.Color != White {
				t.Errorf("edge color should default to white, got %v", r.Color)
			}
		case "triangle":
			if seen {
				t.Fatalf("face drawn after an edge")
			}
		}
	}
}

func TestPieChartColors(t *testing.T) {
	var (
		red  = RGB(255, 0, 0)
		blue = RGB(0, 0, 255)
		s1   = NewSerie("s1", red, NumberPoint(0, 1, 0), NumberPoint(0, 1, 0))
		s2   = NewSerie("s2", Transparent, NumberPoint(0, 1, 0), NumberPoint(0, 1, 0))
	)
	s1.Points[1].Color = blue
	c := NewPieChart(s1, s2)
	list := c.Layout()
	want := []Color{red, blue, Category10.At(2), Category10.At(3)}
	for i, s := range list {
		if s.Color != want[i] {
			t.Errorf("%d: want %v, got %v", i, want[i], s.Color)
		}
	}
}

func TestPieChartLegend(t *testing.T) {
	s := NewSerie("fruits", Transparent, NumberPoint(0, 1, 0), NumberPoint(0, 2, 0))
	s.Points[0].Label = "apple"
	c := NewPieChart(s)
	c.Background = Transparent

	var rec recorder
	c.Draw(&rec)
	var labels []string
	for _, r := range rec.filter("text") {
		labels = append(labels, r.Text)
	}
	if len(labels) != 2 || labels[0] != "apple" || labels[1] != "fruits 2" {
		t.Errorf("legend labels mismatched: %v", labels)
	}
}

func TestWedges(t *testing.T) {
	tests := []struct {
		Span float64
		Want int
	}{
		{Span: 0.5, Want: minWedges},
		{Span: 14.9, Want: minWedges},
		{Span: 120, Want: 24},
		{Span: 360, Want: 72},
	}
	for _, tt := range tests {
		if got := wedges(tt.Span); got != tt.Want {
			t.Errorf("span %f: want %d wedges, got %d", tt.Span, tt.Want, got)
		}
	}
}
