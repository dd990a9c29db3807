package notename_test

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"

	"github.com/tmeridew/edofunc/model"
	"github.com/tmeridew/edofunc/notename"
	"github.com/tmeridew/edofunc/registry"
	"github.com/tmeridew/edofunc/systems"
)

func twelve(t *testing.T) *model.TuningSystem {
	r := registry.New()
	id, err := r.Register(systems.Twelve())
	assert.NoError(t, err)
	sys, err := r.Get(id)
	assert.NoError(t, err)
	return sys
}

func TestEmptySchemeUsesCurrent(t *testing.T) {
	sys := twelve(t)

	name, err := notename.Name(sys, 1, "")
	assert.NoError(t, err)
	assert.Equal(t, "C#", name)
}

func TestExplicitSchemes(t *testing.T) {
	sys := twelve(t)

	assert := assert.New(t)
	name, err := notename.Name(sys, 1, "flats")
	assert.NoError(err)
	assert.Equal("Db", name)

	name, err = notename.Name(sys, 10, "numbers")
	assert.NoError(err)
	assert.Equal("10", name)

	name, err = notename.Name(sys, 6, "roman")
	assert.NoError(err)
	assert.Equal("#IV", name)
}

func TestUnknownSchemeFails(t *testing.T) {
	sys := twelve(t)
	_, err := notename.Name(sys, 0, "solfege")
	assert.True(t, errors.Is(err, model.ErrNamingSchemeNotFound))
}

func TestOutOfRangePitchFails(t *testing.T) {
	sys := twelve(t)

	_, err := notename.Name(sys, 12, "")
	assert.True(t, errors.Is(err, model.ErrInvalidPitchClass))

	_, err = notename.Name(sys, -1, "")
	assert.True(t, errors.Is(err, model.ErrInvalidPitchClass))
}

func TestNamesRendersCollection(t *testing.T) {
	sys := twelve(t)
	names, err := notename.Names(sys, []int{0, 4, 7}, "")
	assert.NoError(t, err)
	assert.Equal(t, []string{"C", "E", "G"}, names)
}
