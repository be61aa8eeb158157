// Package uihelpers holds the viewer's chart sizing rules.
package uihelpers

const (
	minChartWidth  = 800
	minChartHeight = 280
	maxChartHeight = 520
	heightPerWidth = 0.33

	// share of the canvas width given to the chart, and pixels kept back for the scrollbar
	canvasSharePct = 95
	scrollMargin   = 12
)

// ComputeChartDimensions returns the chart size for a desired width: at least
// minChartWidth wide, about a third as tall, height clamped to a readable band.
func ComputeChartDimensions(width int) (int, int) {
	w := max(width, minChartWidth)
	h := min(max(int(float64(w)*heightPerWidth), minChartHeight), maxChartHeight)
	return w, h
}

// ChartWidthForCanvas is the chart width that fits a canvas of the given width
// next to a vertical scrollbar.
func ChartWidthForCanvas(canvasWidth float32) int {
	return int(canvasWidth)*canvasSharePct/100 - scrollMargin
}
