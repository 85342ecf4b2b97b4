package geo

import (
	"errors"
	"testing"

	"github.com/shenikar/nightlife_presence/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pin struct {
	name string
	loc  *models.Location
}

func locatePin(p pin) (models.Location, bool) {
	if p.loc == nil {
		return models.Location{}, false
	}
	return *p.loc, true
}

func names(hits []Hit[pin]) []string {
	out := make([]string, 0, len(hits))
	for _, h := range hits {
		out = append(out, h.Entity.name)
	}
	return out
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		loc     models.Location
		wantErr bool
	}{
		{name: "valid", loc: models.Location{Latitude: 40.7128, Longitude: -74.0060}},
		{name: "poles and antimeridian", loc: models.Location{Latitude: -90, Longitude: 180}},
		{name: "latitude too large", loc: models.Location{Latitude: 90.0001, Longitude: 0}, wantErr: true},
		{name: "longitude too small", loc: models.Location{Latitude: 0, Longitude: -180.5}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.loc)
			if tt.wantErr {
				assert.True(t, errors.Is(err, models.ErrInvalidLocation))
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestDistance_KnownPoints(t *testing.T) {
	a := models.Location{Latitude: 40.7128, Longitude: -74.0060}
	b := models.Location{Latitude: 40.7130, Longitude: -74.0062}

	d := Distance(a, b)

	assert.InDelta(t, 27.9, d, 1.0)
	assert.Equal(t, d, Distance(b, a))
	assert.Zero(t, Distance(a, a))
}

func TestQuery_SortedAndSkipsMissingLocations(t *testing.T) {
	center := models.Location{Latitude: 51.5007, Longitude: -0.1246}
	near := models.Location{Latitude: 51.5010, Longitude: -0.1246}
	farther := models.Location{Latitude: 51.5050, Longitude: -0.1246}
	outside := models.Location{Latitude: 51.6000, Longitude: -0.1246}

	hits, err := Query(center, 1000, []pin{
		{name: "farther", loc: &farther},
		{name: "hidden"},
		{name: "outside", loc: &outside},
		{name: "near", loc: &near},
	}, locatePin)

	require.NoError(t, err)
	assert.Equal(t, []string{"near", "farther"}, names(hits))
	assert.Less(t, hits[0].DistanceMeters, hits[1].DistanceMeters)
}

func TestQuery_InclusiveBoundary(t *testing.T) {
	center := models.Location{Latitude: 40.7128, Longitude: -74.0060}
	friend := models.Location{Latitude: 40.7200, Longitude: -74.0060}
	exact := Distance(center, friend)
	candidates := []pin{{name: "friend", loc: &friend}}

	included, err := Query(center, exact, candidates, locatePin)
	require.NoError(t, err)
	assert.Len(t, included, 1)

	excluded, err := Query(center, exact-1, candidates, locatePin)
	require.NoError(t, err)
	assert.Empty(t, excluded)
}

func TestQuery_ZeroRadiusMatchesOnlyCoincidentPoints(t *testing.T) {
	center := models.Location{Latitude: 10, Longitude: 10}
	same := center
	other := models.Location{Latitude: 10.00001, Longitude: 10}

	hits, err := Query(center, 0, []pin{{name: "same", loc: &same}, {name: "other", loc: &other}}, locatePin)

	require.NoError(t, err)
	assert.Equal(t, []string{"same"}, names(hits))
}

func TestQuery_InvalidInput(t *testing.T) {
	_, err := Query(models.Location{Latitude: 91}, 100, []pin{}, locatePin)
	assert.ErrorIs(t, err, models.ErrInvalidLocation)

	_, err = Query(models.Location{}, -1, []pin{}, locatePin)
	assert.ErrorIs(t, err, models.ErrInvalidInput)
}
