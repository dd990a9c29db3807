package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tmeridew/edofunc/constants"
	"github.com/tmeridew/edofunc/harmony"
	"github.com/tmeridew/edofunc/model"
)

var (
	tableSystem int
	tableStyle  string
)

func init() {
	tableCmd.Flags().IntVarP(&tableSystem, "system", "s", 12, "EDO system")
	tableCmd.Flags().StringVar(&tableStyle, "style", constants.DefaultNotationStyle, "chord notation style for headers")
	rootCmd.AddCommand(tableCmd)
}

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Prints the chord function table",
	Long:  `Prints every chord template on every root with its harmonic function.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return printTable(tableSystem)
	},
}

func printTable(id model.SystemID) error {
	sys, err := analyzer.Registry().Get(id)
	if err != nil {
		return err
	}
	t := harmony.FunctionTable(sys, tableStyle)

	rootWidth := len("Root")
	for _, label := range t.RootLabels {
		if len(label) > rootWidth {
			rootWidth = len(label)
		}
	}
	colWidth := 4
	for _, name := range t.TemplateNames {
		if len(name) > colWidth {
			colWidth = len(name)
		}
	}

	fmt.Printf("%d-EDO CHORD FUNCTION TABLE\n", t.Steps)
	fmt.Println("T=Tonic, P=Predominant, D=Dominant, M=Mediant")
	fmt.Println()

	header := fmt.Sprintf("%-*s |", rootWidth, "Root")
	for _, name := range t.TemplateNames {
		header += fmt.Sprintf(" %-*s |", colWidth, name)
	}
	fmt.Println(header)
	fmt.Println(strings.Repeat("-", len(header)))

	for ri, label := range t.RootLabels {
		row := fmt.Sprintf("%-*s |", rootWidth, label)
		for _, fn := range t.Cells[ri] {
			row += fmt.Sprintf(" %-*s |", colWidth, fn.Abbrev())
		}
		fmt.Println(row)
	}

	fmt.Println("\nCOUNTS:")
	for _, fn := range []model.Function{
		model.FunctionTonic, model.FunctionPredominant,
		model.FunctionDominant, model.FunctionMediant,
	} {
		fmt.Printf("  %s: %d\n", fn, t.Counts[fn])
	}
	return nil
}
