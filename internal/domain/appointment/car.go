package appointment

import "github.com/BruksfildServices01/car-service-agent/internal/models"

// ResolveCar decides what a schedule call does with the plate it was given.
// existing is the owner's visible car with that plate, or nil.
// It returns true when existing must be reused, false when a new car has
// to be minted, and a plate_conflict error when the plate is already
// registered with different specs.
func ResolveCar(existing *models.Car, spec CarSpec) (bool, error) {
	if existing == nil {
		return false, nil
	}
	if !existing.SameSpecs(spec.Manufacturer, spec.Model, spec.Year) {
		return false, ErrPlateConflict
	}
	return true, nil
}
