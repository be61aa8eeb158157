// Package chart draws the mesh index comparison: vertex count against
// isolevel, one line for each dataset.
package chart

import (
	"fmt"

	"github.com/iafilius/MeshIndexChart/src/dataset"
)

const (
	Title        = "Effect of using mesh indices on vertex count, calculated using an eighth of a sphere"
	XAxisLabel   = "Isolevel"
	YAxisLabel   = "Vertex count"
	LabelWithout = "without indices"
	LabelWith    = "with indices"
)

// Plotter is the surface a comparison chart is drawn on. Show blocks until
// the chart has been presented.
type Plotter interface {
	SetTitle(title string)
	SetAxisLabels(x, y string)
	AddLine(label string, xs, ys []float64)
	Legend()
	Show() error
}

// Draw checks the two datasets against each other and plots them on p:
// title, axis labels, the non-indexed line, the indexed line, legend, show.
func Draw(p Plotter, indexed, plain dataset.Dataset) error {
	if err := dataset.CheckPair(indexed, plain); err != nil {
		return fmt.Errorf("check datasets: %w", err)
	}
	p.SetTitle(Title)
	p.SetAxisLabels(XAxisLabel, YAxisLabel)
	p.AddLine(LabelWithout, plain.Isolevels(), plain.Counts())
	p.AddLine(LabelWith, indexed.Isolevels(), indexed.Counts())
	p.Legend()
	if err := p.Show(); err != nil {
		return fmt.Errorf("show chart: %w", err)
	}
	return nil
}

// HintText summarizes the saving at the highest sampled isolevel.
func HintText(savings []dataset.Saving) string {
	if len(savings) == 0 {
		return ""
	}
	s := savings[len(savings)-1]
	return fmt.Sprintf("Hint: at isolevel %g indices cut vertices from %d to %d (%.1f%% fewer).",
		s.Isolevel, s.Plain, s.Indexed, s.ReductionPct)
}
