package main

import (
	"fmt"
	"os"

	"github.com/MaxenceRichardCS/gbstower/config"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	cfgPath string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "gbstower",
	Short: "Parametric wind turbine support structure modeler",
	Long: `gbstower builds the geometry of an offshore wind turbine support
structure from a handful of parameters: a tapered tower seated on a
gravity based foundation (plateau, cone shell and top cylinder).

The model carries named surfaces and sets for tie constraints,
environmental loads and boundary conditions, so the same geometry can
feed any downstream analysis pipeline.

Parameters come from an INI file (see 'gbstower check --help'); keys
left out fall back to the reference design.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
		if verbose {
			log.SetLevel(log.DebugLevel)
		} else {
			log.SetLevel(log.WarnLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "parameter INI file (defaults to the reference design)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// loadParams resolves the parameter set from the --config flag.
func loadParams() (config.Params, error) {
	if cfgPath == "" {
		return config.Default(), nil
	}
	return config.LoadFile(cfgPath)
}

// Execute runs the root command and its children.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
