package agent

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/BruksfildServices01/car-service-agent/internal/validators"
)

// Args is the flat argument record of one tool call.
type Args map[string]string

// The length limits follow the column widths. Presence of the values is
// checked by the use cases so that the user gets a field-specific message.

type scheduleArgs struct {
	UserID       string `json:"user_id" validate:"required,max=64"`
	Name         string `json:"user_name" validate:"max=100"`
	Surname      string `json:"user_surname" validate:"max=100"`
	Email        string `json:"user_email" validate:"max=320"`
	PhoneNumber  string `json:"user_phone_number" validate:"max=32"`
	Date         string `json:"appointment_date" validate:"max=10"`
	Time         string `json:"appointment_time" validate:"max=5"`
	Problem      string `json:"appointment_problem" validate:"max=2000"`
	LicensePlate string `json:"car_license_plate" validate:"max=12"`
	Manufacturer string `json:"car_manufacturer" validate:"max=100"`
	Model        string `json:"car_model" validate:"max=100"`
	Year         string `json:"car_year" validate:"max=4"`
}

type updateArgs struct {
	scheduleArgs
	PreviousPhoneNumber  string `json:"previous_user_phone_number" validate:"max=32"`
	PreviousDate         string `json:"previous_appointment_date" validate:"max=10"`
	PreviousLicensePlate string `json:"previous_car_license_plate" validate:"max=12"`
}

type availabilityArgs struct {
	Date string `json:"date" validate:"max=10"`
	Time string `json:"time" validate:"max=5"`
}

type cancelArgs struct {
	UserID string `json:"user_id" validate:"required,max=64"`
	Date   string `json:"appointment_date" validate:"max=10"`
}

type userArgs struct {
	UserID string `json:"user_id" validate:"required,max=64"`
}

// bind copies args into dst and runs its validate tags. A tag failure comes
// back as a *validators.ValidationError.
func (r *Registry) bind(args Args, dst any) error {
	b, err := json.Marshal(args)
	if err != nil {
		return fmt.Errorf("encode args: %w", err)
	}
	if err := json.Unmarshal(b, dst); err != nil {
		return fmt.Errorf("decode args: %w", err)
	}

	if err := r.validate.Struct(dst); err != nil {
		fieldErrs, ok := err.(validator.ValidationErrors)
		if !ok || len(fieldErrs) == 0 {
			return fmt.Errorf("validate args: %w", err)
		}
		return &validators.ValidationError{Message: formatFieldError(fieldErrs[0])}
	}
	return nil
}

func formatFieldError(fe validator.FieldError) string {
	name := prettify(fe.Field())
	switch fe.Tag() {
	case "required":
		return name + " is required"
	case "max":
		return name + " must be at most " + fe.Param() + " characters long"
	default:
		return name + " is invalid"
	}
}

// prettify turns a json key such as "car_license_plate" into "Car License Plate".
func prettify(field string) string {
	return cases.Title(language.Und, cases.NoLower).String(strings.ReplaceAll(field, "_", " "))
}

func newValidate() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}
