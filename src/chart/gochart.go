package chart

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"math"
	"os"
	"path/filepath"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/iafilius/MeshIndexChart/src/logging"
)

// ErrNoDisplay is returned by Show when no Display was configured.
var ErrNoDisplay = errors.New("no display configured")

// Display presents a finished chart image. Implementations may block.
type Display interface {
	Display(img image.Image) error
}

// DisplayFunc adapts a function to Display.
type DisplayFunc func(img image.Image) error

func (f DisplayFunc) Display(img image.Image) error { return f(img) }

// PNGFile is a Display that writes the chart to the named file.
type PNGFile string

func (p PNGFile) Display(img image.Image) error {
	path := string(p)
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create out dir: %w", err)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("png encode %s: %w", path, err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	logging.Infof("chart written to %s", path)
	return nil
}

// Matplotlib's first two cycle colors, so the lines look the way the
// measurements were first published.
var palette = []drawing.Color{
	drawing.ColorFromHex("1f77b4"),
	drawing.ColorFromHex("ff7f0e"),
	gochart.ColorGreen,
	gochart.ColorRed,
}

func lineStyle(col drawing.Color) gochart.Style {
	return gochart.Style{
		StrokeColor: col,
		StrokeWidth: 2,
	}
}

// GoChart is a Plotter backed by go-chart. Show renders the accumulated
// chart at Width x Height and passes it to Display.
type GoChart struct {
	Width   int
	Height  int
	Hint    string // drawn along the bottom edge when non-empty
	Display Display

	title  string
	xName  string
	yName  string
	series []gochart.ContinuousSeries
	legend bool
}

// NewGoChart returns an empty chart that shows on d.
func NewGoChart(width, height int, d Display) *GoChart {
	return &GoChart{Width: width, Height: height, Display: d}
}

func (g *GoChart) SetTitle(title string) { g.title = title }

func (g *GoChart) SetAxisLabels(x, y string) {
	g.xName = x
	g.yName = y
}

func (g *GoChart) AddLine(label string, xs, ys []float64) {
	s := gochart.ContinuousSeries{
		Name:    label,
		XValues: append([]float64(nil), xs...),
		YValues: append([]float64(nil), ys...),
		Style:   lineStyle(palette[len(g.series)%len(palette)]),
	}
	g.series = append(g.series, s)
}

func (g *GoChart) Legend() { g.legend = true }

// SeriesNames lists line labels in the order they were added.
func (g *GoChart) SeriesNames() []string {
	out := make([]string, len(g.series))
	for i, s := range g.series {
		out[i] = s.Name
	}
	return out
}

// Show renders the chart and hands it to Display.
func (g *GoChart) Show() error {
	if g.Display == nil {
		return ErrNoDisplay
	}
	img, err := g.Image(g.Width, g.Height)
	if err != nil {
		return err
	}
	return g.Display.Display(img)
}

// Image renders the accumulated chart at the given size.
func (g *GoChart) Image(width, height int) (image.Image, error) {
	if len(g.series) == 0 {
		return nil, errors.New("chart has no series")
	}
	ch := g.build(width, height)
	var buf bytes.Buffer
	if err := ch.Render(gochart.PNG, &buf); err != nil {
		logging.Warnf("chart render error: %v", err)
		return nil, fmt.Errorf("render chart: %w", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return nil, fmt.Errorf("decode chart: %w", err)
	}
	if g.Hint != "" {
		img = DrawHint(img, g.Hint, hintStrip)
	}
	return img, nil
}

func (g *GoChart) build(width, height int) *gochart.Chart {
	minX, maxX := math.MaxFloat64, -math.MaxFloat64
	maxY := 0.0
	series := make([]gochart.Series, 0, len(g.series))
	for _, s := range g.series {
		for _, x := range s.XValues {
			minX = math.Min(minX, x)
			maxX = math.Max(maxX, x)
		}
		for _, y := range s.YValues {
			maxY = math.Max(maxY, y)
		}
		series = append(series, s)
	}
	if minX > maxX { // only reachable through AddLine with empty slices
		minX, maxX = 0, 1
	}
	xTicks := isolevelTicks(minX, maxX)
	yTicks := countTicks(maxY)

	padBottom := 28
	if g.Hint != "" {
		padBottom += hintStrip
	}
	ch := &gochart.Chart{
		Title:      g.title,
		Width:      width,
		Height:     height,
		Background: gochart.Style{Padding: gochart.Box{Top: 20, Left: 16, Right: 16, Bottom: padBottom}},
		XAxis: gochart.XAxis{
			Name:  g.xName,
			Range: &gochart.ContinuousRange{Min: xTicks[0].Value, Max: xTicks[len(xTicks)-1].Value},
			Ticks: xTicks,
		},
		YAxis: gochart.YAxis{
			Name:  g.yName,
			Range: &gochart.ContinuousRange{Min: yTicks[0].Value, Max: yTicks[len(yTicks)-1].Value},
			Ticks: yTicks,
		},
		Series: series,
	}
	if g.legend {
		ch.Elements = []gochart.Renderable{gochart.Legend(ch)}
	}
	return ch
}
