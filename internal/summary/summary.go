// Package summary renders use-case results as the short sentences the agent
// relays to the end user.
package summary

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/BruksfildServices01/car-service-agent/internal/config"
	"github.com/BruksfildServices01/car-service-agent/internal/models"
	ucAppointment "github.com/BruksfildServices01/car-service-agent/internal/usecase/appointment"
)

const (
	NotRegistered  = "User is not registered."
	NoAppointments = " No appointments scheduled."
	NoCars         = " No cars registered."
	ValidDate      = "Valid date."

	nowLayout = "2006-01-02 15:04"
)

// UserData renders a profile followed by its appointments and cars. At most
// maxItems of each are listed; appointments are numbered and every car
// names the numbers that reference it.
func UserData(data *ucAppointment.UserData, maxItems int) string {
	if data == nil || data.User == nil {
		return NotRegistered
	}
	if maxItems <= 0 {
		maxItems = 3
	}

	u := data.User
	var b strings.Builder
	fmt.Fprintf(&b, "Name:%s, surname:%s, email:%s, phone number:%s.",
		u.Name, u.Surname, u.Email, u.PhoneNumber)

	if len(data.Appointments) == 0 {
		b.WriteString(NoAppointments)
		return b.String()
	}

	numbers := writeAppointments(&b, data.Appointments, maxItems)

	if len(data.Cars) == 0 {
		b.WriteString(NoCars)
		return b.String()
	}
	writeCars(&b, data.Cars, numbers, maxItems)

	return b.String()
}

// writeAppointments returns car id -> numbers of the listed appointments.
func writeAppointments(b *strings.Builder, apps []models.Appointment, maxItems int) map[string][]int {
	numbers := make(map[string][]int)

	if len(apps) == 1 {
		ap := apps[0]
		fmt.Fprintf(b, " Appointment: date:%s, time:%s, problem:%s.", ap.Date, ap.Time, ap.Problem)
		numbers[ap.CarID] = append(numbers[ap.CarID], 1)
		return numbers
	}

	fmt.Fprintf(b, "\nUser has %d appointments scheduled.", len(apps))
	if len(apps) > maxItems {
		fmt.Fprintf(b, "\n(Displaying only the first %d)", maxItems)
		apps = apps[:maxItems]
	}
	for i, ap := range apps {
		n := i + 1
		fmt.Fprintf(b, "\n%d. date:%s, time:%s, problem:%s.", n, ap.Date, ap.Time, ap.Problem)
		numbers[ap.CarID] = append(numbers[ap.CarID], n)
	}
	return numbers
}

func writeCars(b *strings.Builder, cars []models.Car, numbers map[string][]int, maxItems int) {
	if len(cars) == 1 {
		c := cars[0]
		fmt.Fprintf(b, " Car: license plate:%s, manufacturer:%s, model:%s, year:%d, scheduled for appointments: %s.",
			c.LicensePlate, c.Manufacturer, c.Model, c.Year, joinNumbers(numbers[c.ID]))
		return
	}

	fmt.Fprintf(b, "\nUser has %d cars registered.", len(cars))
	if len(cars) > maxItems {
		fmt.Fprintf(b, "\n(Displaying only the first %d)", maxItems)
		cars = cars[:maxItems]
	}
	for i, c := range cars {
		fmt.Fprintf(b, "\n%d. license plate:%s, manufacturer:%s, model:%s, year:%d, scheduled for appointments: %s.",
			i+1, c.LicensePlate, c.Manufacturer, c.Model, c.Year, joinNumbers(numbers[c.ID]))
	}
}

func joinNumbers(ns []int) string {
	if len(ns) == 0 {
		return "None"
	}
	parts := make([]string, len(ns))
	for i, n := range ns {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ", ")
}

// ======================================================
// Datetime availability
// ======================================================

func Availability(a *ucAppointment.Availability) string {
	if a.Valid {
		return ValidDate
	}
	return fmt.Sprintf("Invalid date and time. %s. Today date: %s", a.Reason, a.Now.Format(nowLayout))
}

// ======================================================
// Service info
// ======================================================

func ServiceInfo(cfg *config.Config) string {
	return fmt.Sprintf(
		"Working hours: monday to friday %s-%s, the last appointment of the day starts at %s; "+
			"appointments can be booked from %s to %d days in advance; Location: %s; Coordinates: %s",
		cfg.Booking.OpenTime,
		cfg.Booking.CloseTime,
		cfg.Booking.LastStart,
		cfg.Booking.LeadText(),
		cfg.Booking.WindowDays,
		cfg.Service.Location,
		cfg.Service.Coordinates,
	)
}
