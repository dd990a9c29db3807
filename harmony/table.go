package harmony

import (
	"fmt"

	"github.com/tmeridew/edofunc/interval"
	"github.com/tmeridew/edofunc/model"
	"github.com/tmeridew/edofunc/notename"
)

// Table is every registered chord template classified on every root of a
// system: Cells[root][template].
type Table struct {
	Steps         int
	RootLabels    []string
	TemplateNames []string
	Cells         [][]model.Function
	Counts        map[model.Function]int
}

// RootLabel renders a root for table output: its current-scheme name plus
// its size in cents.
func RootLabel(sys *model.TuningSystem, root int) string {
	cents := float64(root) * 1200.0 / float64(sys.Steps)
	name, err := notename.Name(sys, root, "")
	if err != nil {
		name = fmt.Sprintf("%d", root)
	}
	return fmt.Sprintf("%s (%.0f¢)", name, cents)
}

// FunctionTable classifies every template transposed onto every root. The
// style picks the template column headers; an empty style falls back to the
// first name each template happens to carry.
func FunctionTable(sys *model.TuningSystem, style string) Table {
	t := Table{
		Steps:  sys.Steps,
		Counts: make(map[model.Function]int),
	}
	for _, tmpl := range sys.Templates {
		name := ""
		if style != "" {
			name = tmpl.Names[style]
		}
		if name == "" {
			for _, v := range tmpl.Names {
				name = v
				break
			}
		}
		t.TemplateNames = append(t.TemplateNames, name)
	}
	for root := 0; root < sys.Steps; root++ {
		t.RootLabels = append(t.RootLabels, RootLabel(sys, root))
		row := make([]model.Function, len(sys.Templates))
		for ti, tmpl := range sys.Templates {
			pcs := make([]int, len(tmpl.Intervals))
			for i, iv := range tmpl.Intervals {
				pcs[i] = interval.Reduce(sys.Steps, root+iv)
			}
			fn := Classify(sys, pcs)
			row[ti] = fn
			t.Counts[fn]++
		}
		t.Cells = append(t.Cells, row)
	}
	return t
}
