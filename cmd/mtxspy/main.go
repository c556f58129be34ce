package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"mtx"
)

var output = flag.String("o", "spy.png", "output image path")

func main() {
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [-o out.png] <matrix market file>\n", os.Args[0])
		os.Exit(1)
	}
	path := flag.Arg(0)

	m, err := mtx.DecodeCSR[int64, float64](path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// One point per stored entry, rows growing downward.
	pts := make(plotter.XYs, 0, m.NumNonzeros)
	for i := int64(0); i < m.NumRows; i++ {
		for k := m.RowOffsets[i]; k < m.RowOffsets[i+1]; k++ {
			pts = append(pts, plotter.XY{
				X: float64(m.ColIndices[k]),
				Y: float64(m.NumRows - 1 - i),
			})
		}
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s  (%d x %d, %d nonzeros)",
		filepath.Base(path), m.NumRows, m.NumCols, m.NumNonzeros)
	p.X.Label.Text = "column"
	p.Y.Label.Text = "row"

	s, err := plotter.NewScatter(pts)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	s.GlyphStyle.Radius = vg.Points(1.5)
	p.Add(s)

	if err := p.Save(6*vg.Inch, 6*vg.Inch, *output); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
