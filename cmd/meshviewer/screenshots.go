package main

import (
	"fmt"

	"github.com/iafilius/MeshIndexChart/cmd/meshviewer/uihelpers"
	"github.com/iafilius/MeshIndexChart/src/chart"
	"github.com/iafilius/MeshIndexChart/src/dataset"
)

// RunScreenshotsMode renders the comparison chart headlessly and writes it as a PNG to outPath.
// A width of 0 uses the default chart size; a height of 0 is derived from the width.
func RunScreenshotsMode(outPath string, width, height int, showHints bool, indexed, plain dataset.Dataset) error {
	if outPath == "" {
		return fmt.Errorf("no output path")
	}
	w, h := chartSize(nil)
	if width > 0 {
		// an explicit width is honoured as-is, only the derived height is clamped
		_, h = uihelpers.ComputeChartDimensions(width)
		w = width
	}
	if height > 0 {
		h = height
	}
	g := chart.NewGoChart(w, h, chart.PNGFile(outPath))
	if showHints {
		savings, err := dataset.Compare(indexed, plain)
		if err != nil {
			return err
		}
		g.Hint = chart.HintText(savings)
	}
	return chart.Draw(g, indexed, plain)
}
