package appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/car-service-agent/internal/domain/appointment"
	"github.com/BruksfildServices01/car-service-agent/internal/httperr"
	"github.com/BruksfildServices01/car-service-agent/internal/validators"
)

func updateInput(userID string) UpdateUserDataInput {
	fields := bookingFields("2026-03-18")
	fields.Name = "Johnny"
	fields.Email = "johnny@example.com"
	fields.PhoneNumber = "+1 415-555-7777"
	fields.Time = "11:30"
	fields.Problem = "Oil change"
	fields.LicensePlate = "XYZ789"
	fields.Model = "Camry"

	return UpdateUserDataInput{
		UserID:               userID,
		BookingFields:        fields,
		PreviousPhoneNumber:  "+1 (415) 555-1234",
		PreviousDate:         "2026-03-17",
		PreviousLicensePlate: "abc123",
	}
}

func TestUpdateUserData_RewritesAllThreeRows(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ap, err := f.schedule.Execute(ctx, scheduleInput("U1", "2026-03-17"))
	require.NoError(t, err)

	require.NoError(t, f.update.Execute(ctx, updateInput("U1")))

	data := f.userData(t, "U1")
	require.NotNil(t, data.User)
	assert.Equal(t, "Johnny", data.User.Name)
	assert.Equal(t, "johnny@example.com", data.User.Email)
	assert.Equal(t, "+14155557777", data.User.PhoneNumber)
	require.NotNil(t, data.User.DateUpdated)

	require.Len(t, data.Appointments, 1)
	assert.Equal(t, ap.ID, data.Appointments[0].ID)
	assert.Equal(t, "2026-03-18T11:30", data.Appointments[0].DateTime())
	assert.Equal(t, "Oil change", data.Appointments[0].Problem)
	require.NotNil(t, data.Appointments[0].DateUpdated)

	require.Len(t, data.Cars, 1)
	assert.Equal(t, ap.CarID, data.Cars[0].ID)
	assert.Equal(t, "XYZ789", data.Cars[0].LicensePlate)
	assert.Equal(t, "Camry", data.Cars[0].Model)
	require.NotNil(t, data.Cars[0].DateUpdated)
}

func TestUpdateUserData_KeepingTheSameValuesIsAllowed(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.schedule.Execute(ctx, scheduleInput("U1", "2026-03-17"))
	require.NoError(t, err)

	in := UpdateUserDataInput{
		UserID:               "U1",
		BookingFields:        bookingFields("2026-03-17"),
		PreviousPhoneNumber:  "+14155551234",
		PreviousDate:         "2026-03-17",
		PreviousLicensePlate: "ABC123",
	}
	assert.NoError(t, f.update.Execute(ctx, in))
}

func TestUpdateUserData_UnknownPreviousKeys(t *testing.T) {
	cases := map[string]func(in *UpdateUserDataInput){
		"date":  func(in *UpdateUserDataInput) { in.PreviousDate = "2026-03-19" },
		"plate": func(in *UpdateUserDataInput) { in.PreviousLicensePlate = "NOPE1" },
		"user":  func(in *UpdateUserDataInput) { in.UserID = "U2" },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			f := newFixture(t)
			ctx := context.Background()
			_, err := f.schedule.Execute(ctx, scheduleInput("U1", "2026-03-17"))
			require.NoError(t, err)

			in := updateInput("U1")
			mutate(&in)
			err = f.update.Execute(ctx, in)
			require.Error(t, err)
			assert.True(t, httperr.IsBusiness(err, domain.CodeUserNotFound))
			assert.Equal(t, "No user found.", err.Error())

			assert.Equal(t, "John", f.userData(t, "U1").User.Name)
		})
	}
}

func TestUpdateUserData_PreviousPhoneMustMatch(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.schedule.Execute(ctx, scheduleInput("U1", "2026-03-17"))
	require.NoError(t, err)

	in := updateInput("U1")
	in.PreviousPhoneNumber = "+1 415-555-0000"
	err = f.update.Execute(ctx, in)
	assert.ErrorIs(t, err, domain.ErrPhoneMismatch)
}

func TestUpdateUserData_NewDateTakenRollsBack(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.schedule.Execute(ctx, scheduleInput("U1", "2026-03-17"))
	require.NoError(t, err)
	_, err = f.schedule.Execute(ctx, scheduleInput("U1", "2026-03-18"))
	require.NoError(t, err)

	err = f.update.Execute(ctx, updateInput("U1"))
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, domain.CodeSameDayConflict))

	data := f.userData(t, "U1")
	assert.Equal(t, "John", data.User.Name)
	assert.Equal(t, "ABC123", data.Cars[0].LicensePlate)
	assert.Nil(t, data.User.DateUpdated)
}

func TestUpdateUserData_NewPlateTaken(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.schedule.Execute(ctx, scheduleInput("U1", "2026-03-17"))
	require.NoError(t, err)

	other := scheduleInput("U1", "2026-03-19")
	other.LicensePlate = "XYZ789"
	_, err = f.schedule.Execute(ctx, other)
	require.NoError(t, err)

	err = f.update.Execute(ctx, updateInput("U1"))
	assert.True(t, httperr.IsBusiness(err, domain.CodePlateConflict))
}

func TestUpdateUserData_ContactTaken(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.schedule.Execute(ctx, scheduleInput("U1", "2026-03-17"))
	require.NoError(t, err)

	jane := scheduleInput("U2", "2026-03-17")
	jane.Email = "johnny@example.com"
	jane.PhoneNumber = "+1 415-555-9999"
	_, err = f.schedule.Execute(ctx, jane)
	require.NoError(t, err)

	err = f.update.Execute(ctx, updateInput("U1"))
	assert.True(t, httperr.IsBusiness(err, domain.CodeContactConflict))
}

func TestUpdateUserData_Validation(t *testing.T) {
	f := newFixture(t)

	in := updateInput("U1")
	in.PreviousDate = ""
	err := f.update.Execute(context.Background(), in)
	require.Error(t, err)
	assert.True(t, validators.IsValidation(err))
	assert.Contains(t, err.Error(), "previous appointment date")

	in = updateInput("U1")
	in.Time = "10:15"
	err = f.update.Execute(context.Background(), in)
	assert.True(t, validators.IsValidation(err))
}
