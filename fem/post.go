package fem

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/MaxenceRichardCS/gbstower/load"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// ResultsProvider reads a history output from a finished job. The set
// name is one of the model's named sets, typically the tip monitor.
type ResultsProvider interface {
	History(ctx context.Context, set, variable string) ([]load.Sample, error)
}

// WriteCSV writes a time history as two columns.
func WriteCSV(w io.Writer, header string, hist []load.Sample) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"time", header}); err != nil {
		return err
	}
	for _, s := range hist {
		rec := []string{
			strconv.FormatFloat(s.T, 'g', -1, 64),
			strconv.FormatFloat(s.V, 'g', -1, 64),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// PlotHistory renders a time history to a PNG file.
func PlotHistory(path, title, ylabel string, hist []load.Sample) error {
	if len(hist) == 0 {
		return fmt.Errorf("plot %q: empty history", title)
	}
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "time [s]"
	p.Y.Label.Text = ylabel
	pts := make(plotter.XYs, len(hist))
	for i, s := range hist {
		pts[i].X = s.T
		pts[i].Y = s.V
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	p.Add(line, plotter.NewGrid())
	return p.Save(6*vg.Inch, 4*vg.Inch, path)
}
