package appointment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/car-service-agent/internal/httperr"
	"github.com/BruksfildServices01/car-service-agent/internal/models"
)

func TestVisibilityInMemory(t *testing.T) {
	assert.True(t, UserVisible("active"))
	assert.False(t, UserVisible("deleted"))

	assert.True(t, CarVisible("active", "active"))
	assert.False(t, CarVisible("deleted", "active"))
	assert.False(t, CarVisible("active", "deleted"))

	assert.True(t, AppointmentVisible("scheduled", "active", "active"))
	for _, s := range []string{"completed", "canceled", "deleted"} {
		assert.False(t, AppointmentVisible(s, "active", "active"), s)
	}
	assert.False(t, AppointmentVisible("scheduled", "deleted", "active"))
	assert.False(t, AppointmentVisible("scheduled", "active", "deleted"))
}

func TestInitialStatusIsVisible(t *testing.T) {
	assert.True(t, AppointmentVisible(string(InitialStatus()), string(CarActive), string(UserActive)))
}

func TestResolveCar(t *testing.T) {
	spec := CarSpec{LicensePlate: "ABC123", Manufacturer: "Toyota", Model: "Corolla", Year: 2015}

	reuse, err := ResolveCar(nil, spec)
	require.NoError(t, err)
	assert.False(t, reuse)

	existing := &models.Car{LicensePlate: "ABC123", Manufacturer: "Toyota", Model: "Corolla", Year: 2015}
	reuse, err = ResolveCar(existing, spec)
	require.NoError(t, err)
	assert.True(t, reuse)

	for _, other := range []CarSpec{
		{LicensePlate: "ABC123", Manufacturer: "Honda", Model: "Corolla", Year: 2015},
		{LicensePlate: "ABC123", Manufacturer: "Toyota", Model: "Camry", Year: 2015},
		{LicensePlate: "ABC123", Manufacturer: "Toyota", Model: "Corolla", Year: 2016},
	} {
		_, err := ResolveCar(existing, other)
		assert.True(t, httperr.IsBusiness(err, CodePlateConflict), "%+v", other)
	}
}

func TestSameDayConflictNamesDate(t *testing.T) {
	err := SameDayConflict("2026-03-17")
	assert.True(t, httperr.IsBusiness(err, CodeSameDayConflict))
	assert.Contains(t, err.Error(), "(2026-03-17)")
}
