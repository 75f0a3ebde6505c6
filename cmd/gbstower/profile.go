package main

import (
	"fmt"
	"image/color"

	"github.com/MaxenceRichardCS/gbstower/config"
	"github.com/MaxenceRichardCS/gbstower/profile"
	"github.com/spf13/cobra"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

var profileOut string

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Render the meridian cross-section to an image",
	Long: `Draw the half-plane profiles every body is revolved from: the
foundation plateau, cone shell and top cylinder, plus the tower shell.
Radius runs along X and elevation along Y, so the drawing is the
structure cut through its revolution axis.

Examples:
  gbstower profile
  gbstower profile --config mysite.ini -o mysite.png`,
	RunE: runProfile,
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.Flags().StringVarP(&profileOut, "out", "o", "profile.png", "output image path")
}

func runProfile(cmd *cobra.Command, args []string) error {
	p, err := loadParams()
	if err != nil {
		return err
	}
	if err := config.Validate(&p); err != nil {
		return err
	}

	plt := plot.New()
	plt.Title.Text = "Support structure meridian section"
	plt.X.Label.Text = "radius [m]"
	plt.Y.Label.Text = "elevation [m]"
	plt.Add(plotter.NewGrid())

	concrete := color.RGBA{R: 120, G: 120, B: 120, A: 255}
	steel := color.RGBA{R: 30, G: 80, B: 200, A: 255}

	plateau, err := profile.Rect(p.PlateauRadius, p.PlateauHeight)
	if err != nil {
		return err
	}
	cone, err := profile.Ring(p.ConeBottomOuterRadius, p.ConeTopOuterRadius, p.ConeThickness, p.ConeHeight)
	if err != nil {
		return err
	}
	cyl, err := profile.RectRing(p.ConeTopOuterRadius, p.ConeThickness, p.CylHeight)
	if err != nil {
		return err
	}
	y1 := p.PlateauHeight
	y2 := y1 + p.ConeHeight
	gbsTop := p.GBSTopHeight()
	for _, s := range []struct {
		poly *profile.P
		dz   float64
	}{{plateau, 0}, {cone, y1}, {cyl, y2}} {
		if err := addOutline(plt, s.poly, s.dz, concrete); err != nil {
			return err
		}
	}

	outer, inner, hollow, err := profile.ShellPair(p.RDownTower, p.RUpTower, p.HTower, p.ThicknessTower)
	if err != nil {
		return err
	}
	if err := addOutline(plt, outer, gbsTop, steel); err != nil {
		return err
	}
	if hollow {
		if err := addOutline(plt, inner, gbsTop, steel); err != nil {
			return err
		}
	}

	if err := plt.Save(5*vg.Inch, 8*vg.Inch, profileOut); err != nil {
		return err
	}
	fmt.Println("wrote", profileOut)
	return nil
}

// addOutline draws a closed polygon raised by dz.
func addOutline(plt *plot.Plot, poly *profile.P, dz float64, col color.Color) error {
	vs := poly.Vertices()
	pts := make(plotter.XYs, len(vs)+1)
	for i, v := range vs {
		pts[i].X = v.X
		pts[i].Y = v.Y + dz
	}
	pts[len(vs)] = pts[0]
	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	line.Color = col
	plt.Add(line)
	return nil
}
