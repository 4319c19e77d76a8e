package agent

import (
	"context"

	"github.com/BruksfildServices01/car-service-agent/internal/summary"
	ucAppointment "github.com/BruksfildServices01/car-service-agent/internal/usecase/appointment"
)

const (
	ToolScheduleAppointment       = "ScheduleAppointment"
	ToolUpdateUserData            = "UpdateUserData"
	ToolCheckDatetimeAvailability = "CheckDatetimeAvailability"
	ToolCancelAppointment         = "CancelAppointment"
	ToolCheckUserAppointmentData  = "CheckUserAppointmentData"
	ToolDeleteUser                = "DeleteUser"
	ToolGetServiceInfo            = "GetServiceInfo"
)

const (
	MsgScheduled = "Appointment scheduled successfully."
	MsgUpdated   = "User data updated successfully."
	MsgCanceled  = "Appointment cancelled successfully."
	MsgDeleted   = "User removed successfully."
)

var bookingArgNames = []string{
	"user_id",
	"user_name", "user_surname", "user_email", "user_phone_number",
	"appointment_date", "appointment_time", "appointment_problem",
	"car_license_plate", "car_manufacturer", "car_model", "car_year",
}

func (r *Registry) registerBuiltins() {
	r.Register(&Tool{
		Name:        ToolScheduleAppointment,
		Description: "Schedule an appointment. Registers the user and the car on first use.",
		Arguments:   bookingArgNames,
		Action:      "scheduling appointments",
		Handler:     r.schedule,
	})

	r.Register(&Tool{
		Name: ToolUpdateUserData,
		Description: "Update the user's personal info, appointment details and car info. " +
			"The previous phone number, appointment date and license plate locate the records to change.",
		Arguments: append(append([]string{}, bookingArgNames...),
			"previous_user_phone_number", "previous_appointment_date", "previous_car_license_plate"),
		Action:  "updating user data",
		Handler: r.update,
	})

	r.Register(&Tool{
		Name:        ToolCheckDatetimeAvailability,
		Description: "Check if a date and time are available for scheduling an appointment.",
		Arguments:   []string{"date", "time"},
		Action:      "checking the date and time",
		Handler:     r.checkAvailability,
	})

	r.Register(&Tool{
		Name:        ToolCancelAppointment,
		Description: "Cancel the appointment scheduled on the given date.",
		Arguments:   []string{"user_id", "appointment_date"},
		Action:      "cancelling appointment",
		Handler:     r.cancel,
	})

	r.Register(&Tool{
		Name:        ToolCheckUserAppointmentData,
		Description: "Check the user's profile, scheduled appointments and registered cars.",
		Arguments:   []string{"user_id"},
		Action:      "checking user data",
		Handler:     r.checkUser,
	})

	r.Register(&Tool{
		Name: ToolDeleteUser,
		Description: "Delete a user together with all their cars and appointments. " +
			"This cannot be undone and cannot delete only part of the data.",
		Arguments: []string{"user_id"},
		Action:    "deleting user data",
		Handler:   r.deleteUser,
	})

	r.Register(&Tool{
		Name:        ToolGetServiceInfo,
		Description: "Get data about the service (working hours, location).",
		Action:      "getting service data",
		Handler:     r.serviceInfo,
	})
}

func (a scheduleArgs) fields() ucAppointment.BookingFields {
	return ucAppointment.BookingFields{
		Name:         a.Name,
		Surname:      a.Surname,
		Email:        a.Email,
		PhoneNumber:  a.PhoneNumber,
		Date:         a.Date,
		Time:         a.Time,
		Problem:      a.Problem,
		LicensePlate: a.LicensePlate,
		Manufacturer: a.Manufacturer,
		Model:        a.Model,
		Year:         a.Year,
	}
}

func (r *Registry) schedule(ctx context.Context, args Args) (string, error) {
	var a scheduleArgs
	if err := r.bind(args, &a); err != nil {
		return "", err
	}

	if _, err := r.uc.Schedule.Execute(ctx, ucAppointment.ScheduleAppointmentInput{
		UserID:        a.UserID,
		BookingFields: a.fields(),
	}); err != nil {
		return "", err
	}
	return MsgScheduled, nil
}

func (r *Registry) update(ctx context.Context, args Args) (string, error) {
	var a updateArgs
	if err := r.bind(args, &a); err != nil {
		return "", err
	}

	if err := r.uc.Update.Execute(ctx, ucAppointment.UpdateUserDataInput{
		UserID:               a.UserID,
		BookingFields:        a.fields(),
		PreviousPhoneNumber:  a.PreviousPhoneNumber,
		PreviousDate:         a.PreviousDate,
		PreviousLicensePlate: a.PreviousLicensePlate,
	}); err != nil {
		return "", err
	}
	return MsgUpdated, nil
}

func (r *Registry) checkAvailability(ctx context.Context, args Args) (string, error) {
	var a availabilityArgs
	if err := r.bind(args, &a); err != nil {
		return "", err
	}

	res, err := r.uc.Availability.Execute(ctx, ucAppointment.CheckAvailabilityInput{
		Date: a.Date,
		Time: a.Time,
	})
	if err != nil {
		return "", err
	}
	return summary.Availability(res), nil
}

func (r *Registry) cancel(ctx context.Context, args Args) (string, error) {
	var a cancelArgs
	if err := r.bind(args, &a); err != nil {
		return "", err
	}

	if err := r.uc.Cancel.Execute(ctx, ucAppointment.CancelAppointmentInput{
		UserID: a.UserID,
		Date:   a.Date,
	}); err != nil {
		return "", err
	}
	return MsgCanceled, nil
}

func (r *Registry) checkUser(ctx context.Context, args Args) (string, error) {
	var a userArgs
	if err := r.bind(args, &a); err != nil {
		return "", err
	}

	data, err := r.uc.CheckUser.Execute(ctx, ucAppointment.CheckUserDataInput{UserID: a.UserID})
	if err != nil {
		return "", err
	}
	return summary.UserData(data, r.cfg.Booking.MaxListItems), nil
}

func (r *Registry) deleteUser(ctx context.Context, args Args) (string, error) {
	var a userArgs
	if err := r.bind(args, &a); err != nil {
		return "", err
	}

	if _, err := r.uc.DeleteUser.Execute(ctx, ucAppointment.DeleteUserInput{UserID: a.UserID}); err != nil {
		return "", err
	}
	return MsgDeleted, nil
}

func (r *Registry) serviceInfo(_ context.Context, _ Args) (string, error) {
	return summary.ServiceInfo(r.cfg), nil
}
