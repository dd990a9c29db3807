package cmd

import (
	"github.com/spf13/cobra"

	"github.com/tmeridew/edofunc/harmony"
	"github.com/tmeridew/edofunc/registry"
	"github.com/tmeridew/edofunc/systems"
)

var rootCmd = &cobra.Command{
	Use:   "edofunc",
	Short: "Functional harmony classifier for EDO tuning systems",
	Long: `Classifies sonorities against per-EDO configuration tables: chord
templates, interval qualities, tendency-tone targets and note names.`,
}

var analyzer *harmony.Analyzer

// LoadSystems registers every built-in tuning system and builds the shared
// analyzer. Called once before any subcommand runs; also used by the e2e
// suite to set up handlers without going through cobra.
func LoadSystems() {
	reg := registry.New()
	for _, bundle := range systems.All() {
		if _, err := reg.Register(bundle); err != nil {
			panic("Could not register built-in system: " + err.Error())
		}
	}
	analyzer = harmony.New(reg)
}

func Execute() {
	LoadSystems()
	cobra.CheckErr(rootCmd.Execute())
}
