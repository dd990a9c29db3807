package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/tmeridew/edofunc/constants"
)

var (
	analyzeSystem int
	analyzeRoot   int
	analyzeStyle  string
	analyzeScheme string
)

func init() {
	analyzeCmd.Flags().IntVarP(&analyzeSystem, "system", "s", 12, "EDO system to analyze against")
	analyzeCmd.Flags().IntVarP(&analyzeRoot, "root", "r", 0, "assumed chord root (pitch class)")
	analyzeCmd.Flags().StringVar(&analyzeStyle, "style", constants.DefaultNotationStyle, "chord notation style")
	analyzeCmd.Flags().StringVar(&analyzeScheme, "scheme", "", "note-naming scheme (default: system's current)")
	rootCmd.AddCommand(analyzeCmd)
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze [pitch classes...]",
	Short: "Analyzes one sonority",
	Long:  `Analyzes one sonority, e.g.: edofunc analyze -s 12 -r 0 0 4 7`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pcs := make([]int, len(args))
		for i, arg := range args {
			pc, err := strconv.Atoi(arg)
			if err != nil {
				return errors.Newf("pitch class %q is not an integer", arg)
			}
			pcs[i] = pc
		}
		return analyze(pcs)
	},
}

func analyze(pcs []int) error {
	res, err := analyzer.Analyze(analyzeSystem, analyzeRoot, pcs, analyzeStyle, analyzeScheme)
	if err != nil {
		return err
	}

	fmt.Printf("system:    %d-EDO\n", res.System)
	fmt.Printf("root:      %s (%d)\n", res.RootName, res.Root)
	fmt.Printf("members:   %s\n", strings.Join(res.MemberNames, " "))
	if res.Chord.Matched {
		name, _ := res.Chord.Name(analyzeStyle)
		fmt.Printf("chord:     %s %v\n", name, res.Chord.Intervals)
	} else {
		fmt.Printf("chord:     unrecognized %v\n", res.Chord.Intervals)
	}
	for _, t := range res.Tendencies {
		marker := ""
		if t.Dominant {
			marker = " (dominant)"
		}
		fmt.Printf("tendency:  %d -> %d%s\n", t.Interval, t.Target, marker)
	}
	fmt.Printf("dominant:  %v\n", res.IsDominant)
	fmt.Printf("function:  %s\n", res.Function)
	return nil
}
