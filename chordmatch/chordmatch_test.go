package chordmatch_test

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"

	"github.com/tmeridew/edofunc/chordmatch"
	"github.com/tmeridew/edofunc/interval"
	"github.com/tmeridew/edofunc/model"
	"github.com/tmeridew/edofunc/registry"
	"github.com/tmeridew/edofunc/systems"
)

func getSystem(t *testing.T, b model.Bundle) *model.TuningSystem {
	r := registry.New()
	id, err := r.Register(b)
	assert.NoError(t, err)
	sys, err := r.Get(id)
	assert.NoError(t, err)
	return sys
}

func TestKey(t *testing.T) {
	assert.Equal(t, "0-4-7", chordmatch.Key([]int{0, 4, 7}))
	assert.Equal(t, "0", chordmatch.Key([]int{0}))
}

func TestMatchesMajorTriad(t *testing.T) {
	sys := getSystem(t, systems.Twelve())
	match, err := chordmatch.Match(sys, 0, []int{0, 4, 7})

	assert := assert.New(t)
	assert.NoError(err)
	assert.True(match.Matched)
	assert.Equal([]int{0, 4, 7}, match.Intervals)

	full, err := match.Name("full")
	assert.NoError(err)
	assert.Equal("Major", full)
	standard, err := match.Name("standard")
	assert.NoError(err)
	assert.Equal("maj", standard)
	symbol, err := match.Name("symbols")
	assert.NoError(err)
	assert.Equal("M", symbol)
}

func TestMatchIsOrderIndependent(t *testing.T) {
	sys := getSystem(t, systems.Twelve())

	a, err := chordmatch.Match(sys, 7, []int{7, 11, 2})
	assert.NoError(t, err)
	b, err := chordmatch.Match(sys, 7, []int{2, 7, 11})
	assert.NoError(t, err)

	assert.Equal(t, a, b)
	assert.True(t, a.Matched)
}

func TestMatchRoundTripsEveryTemplateOnEveryRoot(t *testing.T) {
	for _, bundle := range systems.All() {
		sys := getSystem(t, bundle)
		for root := 0; root < sys.Steps; root++ {
			for _, tmpl := range sys.Templates {
				pcs := make([]int, len(tmpl.Intervals))
				for i, iv := range tmpl.Intervals {
					pcs[i] = interval.Reduce(sys.Steps, root+iv)
				}
				match, err := chordmatch.Match(sys, root, pcs)
				assert.NoError(t, err)
				assert.True(t, match.Matched, "%d-EDO root %d %v", sys.Steps, root, tmpl.Intervals)
				assert.Equal(t, tmpl.Names, match.Names)
			}
		}
	}
}

func TestUnvoicedRootIsImplied(t *testing.T) {
	sys := getSystem(t, systems.Twelve())
	match, err := chordmatch.Match(sys, 0, []int{4, 7})

	assert := assert.New(t)
	assert.NoError(err)
	assert.True(match.Matched)
	assert.Equal([]int{0, 4, 7}, match.Intervals)
}

func TestDuplicatePitchesCollapse(t *testing.T) {
	sys := getSystem(t, systems.Twelve())
	match, err := chordmatch.Match(sys, 0, []int{0, 4, 4, 7, 0})

	assert.NoError(t, err)
	assert.True(t, match.Matched)
}

func TestNoMatchIsNotAnError(t *testing.T) {
	sys := getSystem(t, systems.Twelve())
	match, err := chordmatch.Match(sys, 0, []int{0, 1, 2})

	assert := assert.New(t)
	assert.NoError(err)
	assert.False(match.Matched)
	assert.Equal([]int{0, 1, 2}, match.Intervals)
	assert.Nil(match.Names)
}

func TestArityMismatchIsUnrecognized(t *testing.T) {
	// {0,4} is a prefix of the major template but a dyad matches no triad.
	sys := getSystem(t, systems.Twelve())
	match, err := chordmatch.Match(sys, 0, []int{0, 4})

	assert.NoError(t, err)
	assert.False(t, match.Matched)
}

func TestMatchRejectsOutOfRangeInput(t *testing.T) {
	sys := getSystem(t, systems.Twelve())

	_, err := chordmatch.Match(sys, 12, []int{0, 4, 7})
	assert.True(t, errors.Is(err, model.ErrInvalidPitchClass))

	_, err = chordmatch.Match(sys, 0, []int{0, 4, 19})
	assert.True(t, errors.Is(err, model.ErrInvalidPitchClass))
}

func TestSeventeenMinorDim(t *testing.T) {
	sys := getSystem(t, systems.Seventeen())
	match, err := chordmatch.Match(sys, 0, []int{0, 4, 8})

	assert := assert.New(t)
	assert.NoError(err)
	assert.True(match.Matched)

	full, err := match.Name("full")
	assert.NoError(err)
	assert.Equal("minor dim", full)
	standard, err := match.Name("standard")
	assert.NoError(err)
	assert.Equal("mdim", standard)
}

func TestMissingStyleFailsOnlyAtRender(t *testing.T) {
	// 17-EDO defines no "abbreviated" style; the match itself succeeds.
	sys := getSystem(t, systems.Seventeen())
	match, err := chordmatch.Match(sys, 0, []int{0, 4, 8})
	assert := assert.New(t)
	assert.NoError(err)
	assert.True(match.Matched)

	_, err = match.Name("abbreviated")
	assert.True(errors.Is(err, model.ErrNamingSchemeNotFound))

	full, err := match.Name("full")
	assert.NoError(err)
	assert.Equal("minor dim", full)
}
