package interval_test

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"

	"github.com/tmeridew/edofunc/interval"
	"github.com/tmeridew/edofunc/model"
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

func TestReduceWrapsIntoRange(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(0, interval.Reduce(12, 0))
	assert.Equal(5, interval.Reduce(12, 17))
	assert.Equal(11, interval.Reduce(12, -1))
	assert.Equal(3, interval.Reduce(12, -9))
	assert.Equal(0, interval.Reduce(12, -24))
}

func TestQualityUsesSignedDifference(t *testing.T) {
	sys := twelve(t)

	assert := assert.New(t)
	q, err := interval.Quality(sys, 0, 4)
	assert.NoError(err)
	assert.Equal(model.QualityModal, q)

	// 2 - 11 = -9, reduced to 3.
	q, err = interval.Quality(sys, 11, 2)
	assert.NoError(err)
	assert.Equal(model.QualityModal, q)

	q, err = interval.Quality(sys, 4, 4)
	assert.NoError(err)
	assert.Equal(model.QualityStable, q)
}

func TestQualityRejectsOutOfRangePitches(t *testing.T) {
	sys := twelve(t)

	_, err := interval.Quality(sys, 12, 0)
	assert.True(t, errors.Is(err, model.ErrInvalidPitchClass))

	_, err = interval.Quality(sys, 0, -1)
	assert.True(t, errors.Is(err, model.ErrInvalidPitchClass))
}

func TestGenerateQualitiesTwelve(t *testing.T) {
	want := []model.QualityCode{
		"s", "o", "u", "m", "m", "u", "o", "s", "l", "h", "h", "l",
	}
	assert.Equal(t, want, interval.GenerateQualities(12))
}

func TestGenerateQualitiesTwentySevenThirds(t *testing.T) {
	// 27-EDO has modal thirds at 6..10 (266.7¢ through 444.4¢).
	qualities := interval.GenerateQualities(27)
	for iv := 6; iv <= 10; iv++ {
		assert.Equal(t, model.QualityModal, qualities[iv], "interval %d", iv)
	}
	assert.Equal(t, model.QualityUnstable, qualities[5])
	assert.Equal(t, model.QualityUnstable, qualities[11])
	assert.Equal(t, model.QualityStable, qualities[16])
}
