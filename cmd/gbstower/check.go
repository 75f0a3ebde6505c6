package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/MaxenceRichardCS/gbstower/config"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate a parameter set without building",
	Long: `Load the parameter set, run every geometric consistency rule and
report the derived dimensions. Exits non-zero on the first violation.

Examples:
  gbstower check
  gbstower check --config mysite.ini`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	p, err := loadParams()
	if err != nil {
		return err
	}
	if err := config.Validate(&p); err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "parameter\tvalue")
	fmt.Fprintf(w, "tower kind\t%s\n", p.Tower)
	fmt.Fprintf(w, "tower height\t%g\n", p.HTower)
	fmt.Fprintf(w, "tower radius (base/top)\t%g / %g\n", p.RDownTower, p.RUpTower)
	fmt.Fprintf(w, "GBS top height\t%g\n", p.GBSTopHeight())
	fmt.Fprintf(w, "GBS top hole radius\t%g\n", p.GBSHoleRadius())
	fmt.Fprintf(w, "total height\t%g\n", p.TotalHeight())
	fmt.Fprintf(w, "load cutoff\t%g\n", p.Cutoff)
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Println("\nparameters OK")
	return nil
}
