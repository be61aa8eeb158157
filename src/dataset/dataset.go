// Package dataset holds the measured vertex counts of an eighth-of-a-sphere
// isosurface, extracted once with mesh indices and once without, keyed by
// isolevel.
//
// The numbers are measurement results pasted in as literals; nothing here
// generates meshes.
package dataset

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrEmpty               = errors.New("dataset has no points")
	ErrInvalidPoint        = errors.New("invalid point")
	ErrUnordered           = errors.New("isolevels not strictly increasing")
	ErrKeyMismatch         = errors.New("datasets have different isolevels")
	ErrIndexedExceedsPlain = errors.New("indexed vertex count exceeds non-indexed count")
)

// Point is a single measurement: the vertex count produced at an isolevel.
type Point struct {
	Isolevel float64
	Vertices int
}

// Dataset is an ordered isolevel -> vertex count table.
type Dataset struct {
	Name   string // stable identifier, e.g. "with-indices"
	Label  string // series label shown in the chart legend
	Points []Point
}

var withIndices = []Point{
	{0.5, 3},
	{0.7, 9},
	{1, 6},
	{1.1, 14},
	{1.5, 14},
	{1.6, 18},
	{1.8, 28},
	{2, 20},
	{2.2, 30},
	{2.4, 31},
	{2.6, 35},
	{2.8, 47},
	{3, 45},
	{3.3, 53},
	{3.6, 61},
	{3.9, 80},
	{4, 74},
	{4.5, 86},
	{5, 104},
	{6, 150},
	{7, 191},
	{8, 257},
	{9, 306},
	{10, 383},
	{11, 477},
	{12, 589},
	{13, 662},
	{14, 765},
	{15, 893},
}

var withoutIndices = []Point{
	{0.5, 3},
	{0.7, 21},
	{1, 21},
	{1.1, 39},
	{1.5, 39},
	{1.6, 57},
	{1.8, 93},
	{2, 93},
	{2.2, 93},
	{2.4, 111},
	{2.6, 129},
	{2.8, 165},
	{3, 165},
	{3.3, 201},
	{3.6, 219},
	{3.9, 273},
	{4, 273},
	{4.5, 309},
	{5, 435},
	{6, 615},
	{7, 795},
	{8, 993},
	{9, 1281},
	{10, 1569},
	{11, 1893},
	{12, 2199},
	{13, 2595},
	{14, 2991},
	{15, 3369},
}

// WithIndices returns the vertex counts measured with mesh indices enabled.
func WithIndices() Dataset {
	return Dataset{Name: "with-indices", Label: "with indices", Points: clonePoints(withIndices)}
}

// WithoutIndices returns the vertex counts measured with one vertex per face corner.
func WithoutIndices() Dataset {
	return Dataset{Name: "without-indices", Label: "without indices", Points: clonePoints(withoutIndices)}
}

func clonePoints(in []Point) []Point {
	out := make([]Point, len(in))
	copy(out, in)
	return out
}

func (d Dataset) Len() int { return len(d.Points) }

// Isolevels returns the keys in table order.
func (d Dataset) Isolevels() []float64 {
	out := make([]float64, len(d.Points))
	for i, p := range d.Points {
		out[i] = p.Isolevel
	}
	return out
}

// Counts returns the vertex counts in table order as float64, ready for plotting.
func (d Dataset) Counts() []float64 {
	out := make([]float64, len(d.Points))
	for i, p := range d.Points {
		out[i] = float64(p.Vertices)
	}
	return out
}

// Lookup returns the vertex count recorded at iso.
func (d Dataset) Lookup(iso float64) (int, bool) {
	for _, p := range d.Points {
		if p.Isolevel == iso {
			return p.Vertices, true
		}
	}
	return 0, false
}

// Validate checks that every isolevel is a positive finite number, every
// count is non-negative and isolevels appear in strictly increasing order.
func Validate(d Dataset) error {
	if len(d.Points) == 0 {
		return fmt.Errorf("%s: %w", d.Name, ErrEmpty)
	}
	prev := math.Inf(-1)
	for i, p := range d.Points {
		if math.IsNaN(p.Isolevel) || math.IsInf(p.Isolevel, 0) || p.Isolevel <= 0 {
			return fmt.Errorf("%s: point %d isolevel %v: %w", d.Name, i, p.Isolevel, ErrInvalidPoint)
		}
		if p.Vertices < 0 {
			return fmt.Errorf("%s: point %d vertices %d: %w", d.Name, i, p.Vertices, ErrInvalidPoint)
		}
		if p.Isolevel <= prev {
			return fmt.Errorf("%s: isolevel %v after %v: %w", d.Name, p.Isolevel, prev, ErrUnordered)
		}
		prev = p.Isolevel
	}
	return nil
}

// CheckPair validates both tables and verifies they were sampled at the same
// isolevels and that indexing never increased the vertex count.
func CheckPair(indexed, plain Dataset) error {
	if err := Validate(indexed); err != nil {
		return err
	}
	if err := Validate(plain); err != nil {
		return err
	}
	if len(indexed.Points) != len(plain.Points) {
		return fmt.Errorf("%s has %d points, %s has %d: %w", indexed.Name, len(indexed.Points), plain.Name, len(plain.Points), ErrKeyMismatch)
	}
	// both are strictly ordered, so equal key sets means equal position by position
	for i := range indexed.Points {
		a, b := indexed.Points[i], plain.Points[i]
		if a.Isolevel != b.Isolevel {
			return fmt.Errorf("isolevel %v in %s, %v in %s: %w", a.Isolevel, indexed.Name, b.Isolevel, plain.Name, ErrKeyMismatch)
		}
		if a.Vertices > b.Vertices {
			return fmt.Errorf("isolevel %v: %d > %d: %w", a.Isolevel, a.Vertices, b.Vertices, ErrIndexedExceedsPlain)
		}
	}
	return nil
}

// Saving describes the effect of indexing at one isolevel.
type Saving struct {
	Isolevel     float64
	Indexed      int
	Plain        int
	Saved        int
	ReductionPct float64
}

// Compare returns per-isolevel savings. The pair must pass CheckPair.
func Compare(indexed, plain Dataset) ([]Saving, error) {
	if err := CheckPair(indexed, plain); err != nil {
		return nil, err
	}
	out := make([]Saving, len(indexed.Points))
	for i := range indexed.Points {
		a, b := indexed.Points[i], plain.Points[i]
		s := Saving{Isolevel: a.Isolevel, Indexed: a.Vertices, Plain: b.Vertices, Saved: b.Vertices - a.Vertices}
		if b.Vertices > 0 {
			s.ReductionPct = float64(s.Saved) / float64(b.Vertices) * 100
		}
		out[i] = s
	}
	return out, nil
}
