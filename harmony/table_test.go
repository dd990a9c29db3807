package harmony_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tmeridew/edofunc/harmony"
	"github.com/tmeridew/edofunc/interval"
	"github.com/tmeridew/edofunc/model"
	"github.com/tmeridew/edofunc/systems"
)

func TestFunctionTableShape(t *testing.T) {
	sys := getSystem(t, systems.Twelve())
	table := harmony.FunctionTable(sys, "standard")

	assert := assert.New(t)
	assert.Equal(12, table.Steps)
	assert.Len(table.RootLabels, 12)
	assert.Len(table.Cells, 12)
	assert.Len(table.TemplateNames, len(sys.Templates))
	assert.Equal("maj", table.TemplateNames[0])

	total := 0
	for _, count := range table.Counts {
		total += count
	}
	assert.Equal(12*len(sys.Templates), total)

	// Major on the tonic root is the tonic chord.
	assert.Equal(model.FunctionTonic, table.Cells[0][0])
	// Major on the fifth is the dominant.
	assert.Equal(model.FunctionDominant, table.Cells[7][0])
}

func TestRootLabelUsesCurrentSchemeAndCents(t *testing.T) {
	sys := getSystem(t, systems.Twelve())
	assert.Equal(t, "C (0¢)", harmony.RootLabel(sys, 0))
	assert.Equal(t, "G (700¢)", harmony.RootLabel(sys, 7))
}

func TestGenerateTriadsTwentySeven(t *testing.T) {
	qualities := interval.GenerateQualities(27)
	triads := harmony.GenerateTriads(27, qualities)

	assert := assert.New(t)
	assert.Len(triads, 25)
	assert.Equal([]int{0, 6, 12}, triads[0])
	assert.Equal([]int{0, 10, 20}, triads[len(triads)-1])

	// Ordered by fifth, then third.
	for i := 1; i < len(triads); i++ {
		prev, cur := triads[i-1], triads[i]
		assert.True(prev[2] < cur[2] || (prev[2] == cur[2] && prev[1] < cur[1]))
	}
}

func TestGenerateTriadsSeventeen(t *testing.T) {
	triads := harmony.GenerateTriads(17, interval.GenerateQualities(17))
	assert.Len(t, triads, 9)
	assert.Equal(t, []int{0, 4, 8}, triads[0])
}
