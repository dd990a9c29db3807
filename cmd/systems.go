package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tmeridew/edofunc/util"
)

func init() {
	rootCmd.AddCommand(systemsCmd)
}

var systemsCmd = &cobra.Command{
	Use:   "systems",
	Short: "Lists registered tuning systems",
	Long:  `Lists registered tuning systems`,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, id := range analyzer.Registry().Systems() {
			sys, err := analyzer.Registry().Get(id)
			if err != nil {
				return err
			}
			styles := make(map[string]bool)
			for _, t := range sys.Templates {
				for style := range t.Names {
					styles[style] = true
				}
			}
			fmt.Printf("%d-EDO: %d templates, styles [%s], schemes [%s], fifth=%d\n",
				sys.Steps, len(sys.Templates),
				strings.Join(util.SortedKeys(styles), " "),
				strings.Join(util.SortedKeys(sys.NoteNames), " "),
				sys.PerfectFifth)
		}
		return nil
	},
}
