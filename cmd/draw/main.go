package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/midbel/charts3d"
	"github.com/midbel/charts3d/canvas"
	"github.com/spf13/cobra"
)

const (
	formatSVG = "svg"
	formatPNG = "png"
)

type options struct {
	Title    string
	File     string
	Format   string
	Width    float64
	Height   float64
	Yaw      float64
	Pitch    float64
	Distance float64
	Fov      float64
	Verbose  bool

	Cols      columns
	Delimiter string
	XDom      string
	YDom      string
	ZDom      string
	XLog      bool
	YLog      bool
	ZLog      bool
	NoAxis    bool
	NoGrid    bool
	Legend    bool
	Marker    string

	Markers   bool
	DropLines bool
	Fill      bool

	InnerRadius float64
	StartAngle  float64
	Explode     []string
	Edges       bool

	SizeByValue bool
	DepthScale  bool
	DepthFade   bool
}

func main() {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := newRoot(cfg).Execute(); err != nil {
		os.Exit(2)
	}
}

func newRoot(cfg Config) *cobra.Command {
	var opts options
	root := &cobra.Command{
		Use:   "draw",
		Short: "Draw 3D charts from CSV files",
		Long: `draw renders every CSV file given as a serie of a 3D line, pie or scatter
chart, as SVG or PNG.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogger(cfg, opts.Verbose)
		},
	}
	flags := root.PersistentFlags()
	flags.StringVar(&opts.Title, "title", "", "chart title")
	flags.StringVarP(&opts.File, "file", "o", "", "output file (default: stdout)")
	flags.StringVar(&opts.Format, "format", cfg.Format, "output format: svg, png")
	flags.Float64Var(&opts.Width, "width", cfg.Width, "chart width")
	flags.Float64Var(&opts.Height, "height", cfg.Height, "chart height")
	flags.Float64Var(&opts.Yaw, "yaw", cfg.Yaw, "camera yaw in degrees")
	flags.Float64Var(&opts.Pitch, "pitch", cfg.Pitch, "camera pitch in degrees")
	flags.Float64Var(&opts.Distance, "distance", cfg.Distance, "camera distance")
	flags.Float64Var(&opts.Fov, "fov", cfg.Fov, "camera field of view in degrees")
	flags.BoolVarP(&opts.Verbose, "verbose", "v", false, "log debug messages")
	flags.IntVar(&opts.Cols.X, "xcol", 0, "index of x column")
	flags.IntVar(&opts.Cols.Y, "ycol", 1, "index of y column")
	flags.IntVar(&opts.Cols.Z, "zcol", 2, "index of z column (-1 to disable)")
	flags.IntVar(&opts.Cols.W, "wcol", -1, "index of w column (-1 to disable)")
	flags.IntVar(&opts.Cols.Label, "label-col", -1, "index of label column (-1 to disable)")
	flags.StringVar(&opts.Delimiter, "delimiter", cfg.Delimiter, "field delimiter")
	flags.StringVar(&opts.XDom, "xdom", "", "domain for x values (min:max)")
	flags.StringVar(&opts.YDom, "ydom", "", "domain for y values (min:max)")
	flags.StringVar(&opts.ZDom, "zdom", "", "domain for z values (min:max)")
	flags.BoolVar(&opts.XLog, "xlog", false, "logarithmic x axis")
	flags.BoolVar(&opts.YLog, "ylog", false, "logarithmic y axis")
	flags.BoolVar(&opts.ZLog, "zlog", false, "logarithmic z axis")
	flags.BoolVar(&opts.NoAxis, "no-axis", false, "remove axis")
	flags.BoolVar(&opts.NoGrid, "no-grid", false, "remove grid")
	flags.BoolVar(&opts.Legend, "legend", false, "draw legend")
	flags.StringVar(&opts.Marker, "marker", "circle", "marker: circle, square, diamond, triangle, cross, x, none")

	line := &cobra.Command{
		Use:   "line [file...]",
		Short: "Draw one polyline per file",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("zcol") {
				opts.Cols.Z = -1
			}
			return run(cmd.OutOrStdout(), opts, args, makeLine)
		},
	}
	line.Flags().BoolVar(&opts.Markers, "markers", false, "draw markers")
	line.Flags().BoolVar(&opts.DropLines, "drop-lines", false, "draw lines to the floor")
	line.Flags().BoolVar(&opts.Fill, "fill", false, "fill the area under the lines")

	pie := &cobra.Command{
		Use:   "pie [file...]",
		Short: "Draw one slice per row",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("zcol") {
				opts.Cols.Z = -1
			}
			return run(cmd.OutOrStdout(), opts, args, makePie)
		},
	}
	pie.Flags().Float64Var(&opts.InnerRadius, "inner-radius", 0, "inner radius as a ratio of the radius (donut)")
	pie.Flags().Float64Var(&opts.StartAngle, "start-angle", 0, "angle of the first slice in degrees")
	pie.Flags().StringSliceVar(&opts.Explode, "explode", nil, "slices to explode (serie:point)")
	pie.Flags().BoolVar(&opts.Edges, "edges", false, "outline slices")

	scatter := &cobra.Command{
		Use:   "scatter [file...]",
		Short: "Draw one marker per row",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.OutOrStdout(), opts, args, makeScatter)
		},
	}
	scatter.Flags().BoolVar(&opts.SizeByValue, "size-by-value", false, "size markers by the w column")
	scatter.Flags().BoolVar(&opts.DepthScale, "depth-scale", false, "shrink far markers")
	scatter.Flags().BoolVar(&opts.DepthFade, "depth-fade", false, "fade far markers")
	scatter.Flags().BoolVar(&opts.DropLines, "drop-lines", false, "draw lines to the floor")

	root.AddCommand(line, pie, scatter)
	return root
}

func setupLogger(cfg Config, verbose bool) error {
	lvl, err := cfg.level()
	if err != nil {
		return err
	}
	if verbose {
		lvl = slog.LevelDebug
	}
	opts := slog.HandlerOptions{
		Level: lvl,
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &opts)))
	return nil
}

type chartMaker func(options, []charts3d.Serie) (chart, error)

type chart interface {
	Draw(charts3d.Canvas)
	Base() *charts3d.Chart
}

type lineChart struct {
	*charts3d.LineChart
}

func (c lineChart) Base() *charts3d.Chart {
	return &c.Chart
}

type pieChart struct {
	*charts3d.PieChart
}

func (c pieChart) Base() *charts3d.Chart {
	return &c.Chart
}

type scatterChart struct {
	*charts3d.ScatterChart
}

func (c scatterChart) Base() *charts3d.Chart {
	return &c.Chart
}

func makeLine(opts options, series []charts3d.Serie) (chart, error) {
	ch := charts3d.NewLineChart(series...)
	ch.ShowMarkers = opts.Markers
	ch.DropLines = opts.DropLines
	ch.FillToFloor = opts.Fill
	return lineChart{ch}, nil
}

func makePie(opts options, series []charts3d.Serie) (chart, error) {
	keys, err := getKeys(opts.Explode)
	if err != nil {
		return nil, err
	}
	ch := charts3d.NewPieChart(series...)
	ch.InnerRadius = opts.InnerRadius
	ch.StartAngle = opts.StartAngle
	ch.ShowEdges = opts.Edges
	for _, k := range keys {
		ch.Explode(k.Serie, k.Point)
	}
	return pieChart{ch}, nil
}

func makeScatter(opts options, series []charts3d.Serie) (chart, error) {
	ch := charts3d.NewScatterChart(series...)
	ch.SizeByValue = opts.SizeByValue
	ch.DepthScale = opts.DepthScale
	ch.DepthFade = opts.DepthFade
	ch.DropLines = opts.DropLines
	return scatterChart{ch}, nil
}

func run(w io.Writer, opts options, files []string, makeChart chartMaker) error {
	delim, err := Config{Delimiter: opts.Delimiter}.delimiter()
	if err != nil {
		return err
	}
	var series []charts3d.Serie
	for _, f := range files {
		s, err := readSerie(f, opts.Cols, delim)
		if err != nil {
			return fmt.Errorf("fail creating data from %s: %w", f, err)
		}
		slog.Debug("serie loaded", "file", f, "points", len(s.Points))
		series = append(series, s)
	}
	ch, err := makeChart(opts, series)
	if err != nil {
		return err
	}
	if err := configure(ch.Base(), opts); err != nil {
		return err
	}
	if opts.File == "" {
		err = render(w, ch, opts)
	} else {
		err = renderFile(opts.File, ch, opts)
	}
	if err != nil {
		return err
	}
	slog.Info("chart rendered", "format", opts.Format, "series", len(series), "file", opts.File)
	return nil
}

func configure(ch *charts3d.Chart, opts options) error {
	ch.Title = opts.Title
	ch.Width = opts.Width
	ch.Height = opts.Height
	ch.SetCameraAngle(opts.Yaw, opts.Pitch)
	ch.SetDistance(opts.Distance)
	ch.SetFieldOfView(opts.Fov)
	if opts.NoAxis {
		ch.ShowAxes = false
	}
	if opts.NoGrid {
		ch.ShowGrid = false
	}
	if opts.Legend {
		ch.ShowLegend = true
	}
	marker, err := charts3d.ParseMarker(opts.Marker)
	if err != nil {
		return err
	}
	ch.Marker = marker.Or(charts3d.MarkerCircle)

	xaxis, err := getAxis("x", opts.XDom, opts.XLog)
	if err != nil {
		return err
	}
	yaxis, err := getAxis("y", opts.YDom, opts.YLog)
	if err != nil {
		return err
	}
	zaxis, err := getAxis("z", opts.ZDom, opts.ZLog)
	if err != nil {
		return err
	}
	ch.SetXAxis(xaxis)
	ch.SetYAxis(yaxis)
	ch.SetZAxis(zaxis)
	return nil
}

// renderFile renders the chart into file. The close error of the file is
// reported when rendering succeeded.
func renderFile(file string, ch chart, opts options) error {
	f, err := os.Create(file)
	if err != nil {
		return err
	}
	if err := render(f, ch, opts); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func render(w io.Writer, ch chart, opts options) error {
	switch opts.Format {
	case formatSVG, "":
		cv := canvas.NewSVG(w, opts.Width, opts.Height)
		ch.Draw(cv)
		return cv.Close()
	case formatPNG:
		cv := canvas.NewImage(int(opts.Width), int(opts.Height))
		ch.Draw(cv)
		return cv.Encode(w)
	default:
		return fmt.Errorf("%s: unsupported format", opts.Format)
	}
}
