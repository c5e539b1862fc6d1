package kernel_test

import (
	"math"
	"testing"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLocation(t *testing.T) {
	tests := []struct {
		name      string
		latitude  kernel.Degrees
		longitude kernel.Degrees
		wantErr   bool
	}{
		{name: "sao paulo", latitude: -23.5505, longitude: -46.6333},
		{name: "min bounds", latitude: kernel.LatitudeMin, longitude: kernel.LongitudeMin},
		{name: "max bounds", latitude: kernel.LatitudeMax, longitude: kernel.LongitudeMax},
		{name: "latitude too small", latitude: kernel.LatitudeMin - 0.0001, longitude: 0, wantErr: true},
		{name: "latitude too large", latitude: kernel.LatitudeMax + 0.0001, longitude: 0, wantErr: true},
		{name: "longitude too small", latitude: 0, longitude: kernel.LongitudeMin - 1, wantErr: true},
		{name: "longitude too large", latitude: 0, longitude: kernel.LongitudeMax + 1, wantErr: true},
		{name: "latitude is NaN", latitude: kernel.Degrees(math.NaN()), longitude: 0, wantErr: true},
		{name: "longitude is infinite", latitude: 0, longitude: kernel.Degrees(math.Inf(1)), wantErr: true},
		{name: "both invalid", latitude: 91, longitude: 181, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc, err := kernel.NewLocation(tt.latitude, tt.longitude)

			if tt.wantErr {
				require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
				assert.Zero(t, loc)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.latitude, loc.Latitude())
			assert.Equal(t, tt.longitude, loc.Longitude())
			assert.NoError(t, loc.Validate())
		})
	}
}

func TestLocation_Validate(t *testing.T) {
	t.Run("zero value location", func(t *testing.T) {
		var loc kernel.Location
		assert.Equal(t, kernel.ErrLocationIsNotConstructed, loc.Validate())
	})
}

func TestLocation_String(t *testing.T) {
	loc := mustNewLocation(t, -23.5505, -46.6333)

	assert.Equal(t, "Location(-23.550500,-46.633300)", loc.String())
}

func TestLocation_IsEqual(t *testing.T) {
	tests := []struct {
		name    string
		loc1    kernel.Location
		loc2    kernel.Location
		want    bool
		wantErr bool
	}{
		{name: "equal locations", loc1: mustNewLocation(t, 1.5, 2.5), loc2: mustNewLocation(t, 1.5, 2.5), want: true},
		{name: "different latitude", loc1: mustNewLocation(t, 1.5, 2.5), loc2: mustNewLocation(t, 1.6, 2.5)},
		{name: "different longitude", loc1: mustNewLocation(t, 1.5, 2.5), loc2: mustNewLocation(t, 1.5, 2.6)},
		{name: "first location invalid", loc1: kernel.Location{}, loc2: mustNewLocation(t, 1, 1), wantErr: true},
		{name: "second location invalid", loc1: mustNewLocation(t, 1, 1), loc2: kernel.Location{}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.loc1.IsEqual(tt.loc2)

			if tt.wantErr {
				assert.Error(t, err)
				assert.False(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func FuzzNewLocation(f *testing.F) {
	f.Add(0.0, 0.0)
	f.Add(-90.0, 180.0)
	f.Add(90.0001, -180.0001)

	f.Fuzz(func(t *testing.T, latitude, longitude float64) {
		loc, err := kernel.NewLocation(kernel.Degrees(latitude), kernel.Degrees(longitude))

		valid := latitude >= -90 && latitude <= 90 && longitude >= -180 && longitude <= 180
		if valid {
			require.NoError(t, err)
			assert.NoError(t, loc.Validate())
			return
		}
		assert.Error(t, err)
		assert.Zero(t, loc)
	})
}

func mustNewLocation(t *testing.T, latitude, longitude kernel.Degrees) kernel.Location {
	t.Helper()
	loc, err := kernel.NewLocation(latitude, longitude)
	require.NoError(t, err)
	return loc
}
