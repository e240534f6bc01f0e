package charts3d

const FontSize = 12.0

const (
	defaultLineOpacity = 0.4
	defaultFillOpacity = 0.3
)

type Style struct {
	Line struct {
		Width   float64
		Opacity float64
	}
	Fill struct {
		Opacity float64
		List    Palette
	}
	Text struct {
		Size  float64
		Color Color
	}
}

func DefaultStyle() Style {
	var s Style
	s.Line.Width = 2
	s.Line.Opacity = defaultLineOpacity
	s.Fill.Opacity = defaultFillOpacity
	s.Fill.List = Category10
	s.Text.Size = FontSize
	s.Text.Color = DarkGray
	return s
}

func (s Style) textSize() float64 {
	if s.Text.Size <= 0 {
		return FontSize
	}
	return s.Text.Size
}

func (s Style) lineWidth() float64 {
	if s.Line.Width <= 0 {
		return 1
	}
	return s.Line.Width
}

func (s Style) palette() Palette {
	if len(s.Fill.List) == 0 {
		return Category10
	}
	return s.Fill.List
}

func (s Style) textColor() Color {
	return s.Text.Color.Or(DarkGray)
}

func (s Style) lineOpacity() float64 {
	if s.Line.Opacity <= 0 {
		return defaultLineOpacity
	}
	return s.Line.Opacity
}

func (s Style) fillOpacity() float64 {
	if s.Fill.Opacity <= 0 {
		return defaultFillOpacity
	}
	return s.Fill.Opacity
}
