package appointment

// ===============================
// Statuses
// ===============================

type UserStatus string

const (
	UserActive  UserStatus = "active"
	UserDeleted UserStatus = "deleted"
)

type CarStatus string

const (
	CarActive  CarStatus = "active"
	CarDeleted CarStatus = "deleted"
)

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusCompleted Status = "completed"
	StatusCanceled  Status = "canceled"
	StatusDeleted   Status = "deleted"
)

// ===============================
// Invalid sets
// ===============================

// A row counts only while its own status is outside its invalid set and
// every parent row is visible too.

func InvalidUserStatuses() []string {
	return []string{string(UserDeleted)}
}

func InvalidCarStatuses() []string {
	return []string{string(CarDeleted)}
}

func InvalidAppointmentStatuses() []string {
	return []string{
		string(StatusCompleted),
		string(StatusCanceled),
		string(StatusDeleted),
	}
}

func InitialStatus() Status {
	return StatusScheduled
}

func contains(set []string, s string) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}

// UserVisible, CarVisible and AppointmentVisible evaluate the same rule as
// the query scopes for rows already loaded in memory.
func UserVisible(userStatus string) bool {
	return !contains(InvalidUserStatuses(), userStatus)
}

func CarVisible(carStatus, ownerStatus string) bool {
	return !contains(InvalidCarStatuses(), carStatus) && UserVisible(ownerStatus)
}

func AppointmentVisible(status, carStatus, ownerStatus string) bool {
	return !contains(InvalidAppointmentStatuses(), status) && CarVisible(carStatus, ownerStatus)
}
