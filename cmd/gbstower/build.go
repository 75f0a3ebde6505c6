package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/MaxenceRichardCS/gbstower/build"
	"github.com/MaxenceRichardCS/gbstower/config"
	"github.com/MaxenceRichardCS/gbstower/fem"
	"github.com/MaxenceRichardCS/gbstower/load"
	"github.com/MaxenceRichardCS/gbstower/model"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/spatial/r3"
)

var buildTol float64

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the full model and report its contents",
	Long: `Run the whole geometry pipeline: profiles, revolved bodies, the
fused foundation, assembly placement, partitioning at the load cutoff
and every named surface and set. Then plan mesh controls, assign
material sections and set up the load scenarios, and print a summary
of the resulting model.

Examples:
  gbstower build
  gbstower build --config mysite.ini --tol 0.005`,
	RunE: runBuild,
}

func init() {
	rootCmd.AddCommand(buildCmd)
	buildCmd.Flags().Float64Var(&buildTol, "tol", model.DefaultTol, "geometric probe tolerance")
}

func runBuild(cmd *cobra.Command, args []string) error {
	p, err := loadParams()
	if err != nil {
		return err
	}
	names := config.DefaultNames()
	c := model.NewContext(buildTol)

	res, err := build.Build(c, &p, names)
	if err != nil {
		return err
	}

	// Downstream setup over the named regions the build produced.
	steel := fem.Steel(&p)
	concrete := fem.Concrete(&p)
	var assigns []fem.Assignment
	if p.Tower == config.TowerBeam {
		a, err := fem.AssignBeam(c, res.Tower, steel, names)
		if err != nil {
			return err
		}
		assigns = append(assigns, a)
	} else {
		a, err := fem.AssignSolid(c, res.Tower, steel)
		if err != nil {
			return err
		}
		assigns = append(assigns, a)
	}
	a, err := fem.AssignSolid(c, res.GBS, concrete)
	if err != nil {
		return err
	}
	assigns = append(assigns, a)

	bc, err := fem.Encastre(c, names)
	if err != nil {
		return err
	}
	tie, err := fem.TowerTie(c, names)
	if err != nil {
		return err
	}

	wind := load.Wind("Wind_X", load.SinSeries(p.TimePeriod, 101), r3.Vec{X: 1}, p.Cutoff, p.MaskWidth)
	wind.Magnitude = p.WindPressure
	current := load.Current("Current_X", load.SinSqSeries(p.TimePeriod, 101), r3.Vec{X: 1}, p.Cutoff, p.MaskWidth)
	current.Magnitude = p.CurrentPressure
	for _, s := range []*load.Scenario{wind, current} {
		if err := s.Validate(0, p.TotalHeight()); err != nil {
			return err
		}
		if err := s.Normalize(); err != nil {
			return err
		}
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "body\tclass\telements\tmesh")
	for _, b := range c.Bodies() {
		seed := p.MeshSizeGBS
		if b.ID() == res.Tower {
			seed = p.MeshSizeTower
		}
		spec := fem.PlanFor(b, seed)
		fmt.Fprintf(w, "%s\t%s\t%d\t%s/%s seed %g\n",
			b.Name(), b.Class(), len(c.AllElems(b.ID())), spec.Shape, spec.Code, spec.Seed)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "region\tkind\tsize")
	for _, name := range c.Regions() {
		r, _ := c.Region(name)
		fmt.Fprintf(w, "%s\t%s\t%d\n", name, r.Kind, r.Len())
	}
	fmt.Fprintln(w)
	for _, as := range assigns {
		fmt.Fprintf(w, "section\t%s -> %s\n", as.Section, as.Set)
	}
	fmt.Fprintf(w, "boundary\t%s on %s\n", bc.Name, bc.Set)
	fmt.Fprintf(w, "tie\t%s: %s <- %s\n", tie.Name, tie.Main, tie.Secondary)
	fmt.Fprintf(w, "load\t%s peak %g on %s\n", wind.Name, wind.Magnitude, names.LoadSurface)
	fmt.Fprintf(w, "load\t%s peak %g (below cutoff)\n", current.Name, current.Magnitude)
	if !res.MonitorOK {
		fmt.Fprintln(w, "warning\ttip monitor set not resolved")
	}
	return w.Flush()
}
