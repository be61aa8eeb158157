package chart

import (
	"errors"
	"image"
	_ "image/png" // register PNG decoder
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gochart "github.com/wcharczuk/go-chart/v2"

	"github.com/iafilius/MeshIndexChart/src/dataset"
)

type line struct {
	label  string
	xs, ys []float64
}

// recorder is a Plotter that remembers every call in order.
type recorder struct {
	calls   []string
	title   string
	xLabel  string
	yLabel  string
	lines   []line
	showErr error
}

func (r *recorder) SetTitle(title string) {
	r.calls = append(r.calls, "title")
	r.title = title
}

func (r *recorder) SetAxisLabels(x, y string) {
	r.calls = append(r.calls, "labels")
	r.xLabel, r.yLabel = x, y
}

func (r *recorder) AddLine(label string, xs, ys []float64) {
	r.calls = append(r.calls, "line")
	r.lines = append(r.lines, line{label, xs, ys})
}

func (r *recorder) Legend() { r.calls = append(r.calls, "legend") }

func (r *recorder) Show() error {
	r.calls = append(r.calls, "show")
	return r.showErr
}

func TestDrawCallSequence(t *testing.T) {
	r := &recorder{}
	require.NoError(t, Draw(r, dataset.WithIndices(), dataset.WithoutIndices()))

	assert.Equal(t, []string{"title", "labels", "line", "line", "legend", "show"}, r.calls)
	assert.Equal(t, "Effect of using mesh indices on vertex count, calculated using an eighth of a sphere", r.title)
	assert.Equal(t, "Isolevel", r.xLabel)
	assert.Equal(t, "Vertex count", r.yLabel)

	require.Len(t, r.lines, 2)
	assert.Equal(t, "without indices", r.lines[0].label)
	assert.Equal(t, "with indices", r.lines[1].label)
	assert.Equal(t, dataset.WithoutIndices().Isolevels(), r.lines[0].xs)
	assert.Equal(t, dataset.WithIndices().Counts(), r.lines[1].ys)
	assert.Equal(t, 893.0, r.lines[1].ys[len(r.lines[1].ys)-1])
	assert.Equal(t, 3369.0, r.lines[0].ys[len(r.lines[0].ys)-1])
}

func TestDatasetLabelsMatchSeriesLabels(t *testing.T) {
	assert.Equal(t, LabelWith, dataset.WithIndices().Label)
	assert.Equal(t, LabelWithout, dataset.WithoutIndices().Label)
}

func TestDrawRejectsMismatchedDatasets(t *testing.T) {
	r := &recorder{}
	bad := dataset.Dataset{Name: "bad", Points: []dataset.Point{{Isolevel: 1, Vertices: 1}}}
	err := Draw(r, bad, dataset.WithoutIndices())
	require.Error(t, err)
	assert.ErrorIs(t, err, dataset.ErrKeyMismatch)
	assert.Empty(t, r.calls, "nothing should be plotted for inconsistent data")
}

func TestDrawWrapsShowError(t *testing.T) {
	boom := errors.New("no display surface")
	r := &recorder{showErr: boom}
	err := Draw(r, dataset.WithIndices(), dataset.WithoutIndices())
	assert.ErrorIs(t, err, boom)
}

func TestGoChartRendersToDisplay(t *testing.T) {
	var shown image.Image
	g := NewGoChart(900, 360, DisplayFunc(func(img image.Image) error {
		shown = img
		return nil
	}))
	require.NoError(t, Draw(g, dataset.WithIndices(), dataset.WithoutIndices()))
	require.NotNil(t, shown)
	assert.Equal(t, 900, shown.Bounds().Dx())
	assert.Equal(t, 360, shown.Bounds().Dy())
	assert.Equal(t, []string{LabelWithout, LabelWith}, g.SeriesNames())
}

func TestGoChartWithoutDisplay(t *testing.T) {
	g := NewGoChart(800, 300, nil)
	g.AddLine("x", []float64{1, 2}, []float64{1, 2})
	assert.ErrorIs(t, g.Show(), ErrNoDisplay)

	_, err := NewGoChart(800, 300, nil).Image(800, 300)
	assert.Error(t, err, "empty chart should not render")
}

func TestPNGFileDisplay(t *testing.T) {
	out := filepath.Join(t.TempDir(), "nested", "chart.png")
	g := NewGoChart(1000, 400, PNGFile(out))
	g.Hint = HintText(mustCompare(t))
	require.NoError(t, Draw(g, dataset.WithIndices(), dataset.WithoutIndices()))

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	cfg, format, err := image.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, "png", format)
	assert.Equal(t, 1000, cfg.Width)
	assert.Equal(t, 400, cfg.Height)
}

func TestHintText(t *testing.T) {
	assert.Equal(t, "Hint: at isolevel 15 indices cut vertices from 3369 to 893 (73.5% fewer).", HintText(mustCompare(t)))
	assert.Empty(t, HintText(nil))
}

func TestDrawHintFillsBottomStrip(t *testing.T) {
	base := Blank(400, 120)
	out := DrawHint(base, "hello", hintStrip)
	assert.Equal(t, base.Bounds(), out.Bounds())

	// the band spans the full width of the reserved strip and nothing above it
	for _, x := range []int{0, 200, 399} {
		assert.NotEqual(t, base.At(x, 119), out.At(x, 119), "x=%d inside strip", x)
		assert.NotEqual(t, base.At(x, 120-hintStrip), out.At(x, 120-hintStrip), "x=%d strip top row", x)
		assert.Equal(t, base.At(x, 120-hintStrip-1), out.At(x, 120-hintStrip-1), "x=%d above strip", x)
	}
	assert.Same(t, base, DrawHint(base, "   ", hintStrip))
}

func TestDrawHintStripAtLeastOneLine(t *testing.T) {
	base := Blank(200, 60)
	out := DrawHint(base, "x", 2)
	// a strip thinner than a text line grows to the 13px face height
	assert.NotEqual(t, base.At(199, 60-13), out.At(199, 60-13))
	assert.Equal(t, base.At(199, 60-14), out.At(199, 60-14))
}

func tickValues(ticks []gochart.Tick) []float64 {
	out := make([]float64, len(ticks))
	for i, tk := range ticks {
		out[i] = tk.Value
	}
	return out
}

func TestCountTicks(t *testing.T) {
	yt := countTicks(3369)
	assert.Equal(t, []float64{0, 500, 1000, 1500, 2000, 2500, 3000, 3500}, tickValues(yt))
	assert.Equal(t, "2500", yt[5].Label)

	assert.Equal(t, []float64{0, 200, 400, 600, 800, 1000}, tickValues(countTicks(893)))
	assert.Equal(t, []float64{0, 1}, tickValues(countTicks(0)))
	// small counts never step by fractions
	assert.Equal(t, []float64{0, 1, 2, 3}, tickValues(countTicks(3)))
}

func TestIsolevelTicks(t *testing.T) {
	xt := isolevelTicks(0.5, 15)
	assert.Equal(t, []float64{0, 2, 4, 6, 8, 10, 12, 14, 16}, tickValues(xt))
	assert.Equal(t, "2", xt[1].Label)

	assert.Equal(t, []float64{1, 2, 3, 4}, tickValues(isolevelTicks(1.5, 3.9)))
	assert.Equal(t, []float64{3, 4}, tickValues(isolevelTicks(3, 3)))
}

func mustCompare(t *testing.T) []dataset.Saving {
	t.Helper()
	s, err := dataset.Compare(dataset.WithIndices(), dataset.WithoutIndices())
	require.NoError(t, err)
	return s
}
