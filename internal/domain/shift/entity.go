package shift

import "time"

type ShiftType string

const (
	ShiftTypeEarly    ShiftType = "early"
	ShiftTypeLate     ShiftType = "late"
	ShiftTypeDayOff   ShiftType = "dayoff"
	ShiftTypeSeminar  ShiftType = "seminar" // seminar / annual-leave block in the shift table
	ShiftTypeOvertime ShiftType = "overtime"
)

var ShiftTypeValues = []string{
	string(ShiftTypeEarly),
	string(ShiftTypeLate),
	string(ShiftTypeDayOff),
	string(ShiftTypeSeminar),
	string(ShiftTypeOvertime),
}

// NonWorking reports whether the shift type mandates absence. In the daily
// classifier these take precedence over everything else on the date.
func (t ShiftType) NonWorking() bool {
	return t == ShiftTypeDayOff || t == ShiftTypeSeminar
}

// DefaultWindow returns the default start and end of day for a working shift
// type. ok is false for non-working types, which carry no window.
func (t ShiftType) DefaultWindow() (start, end string, ok bool) {
	switch t {
	case ShiftTypeEarly:
		return "07:00", "16:00", true
	case ShiftTypeLate:
		return "11:00", "20:00", true
	case ShiftTypeOvertime:
		return "09:00", "21:00", true
	default:
		return "", "", false
	}
}

type ShiftStatus string

const (
	ShiftStatusPending  ShiftStatus = "pending"
	ShiftStatusApproved ShiftStatus = "approved"
	ShiftStatusRejected ShiftStatus = "rejected"
)

// ShiftAssignment is the planned day type for one employee on one date,
// independent of actual attendance. At most one assignment exists per
// (user, date); writing to an occupied cell replaces it.
type ShiftAssignment struct {
	ID        string
	UserID    string
	Date      string
	Type      ShiftType
	StartTime *string
	EndTime   *string
	Status    ShiftStatus
	CreatedAt time.Time
	UpdatedAt time.Time

	// DTO / Join
	UserName *string
}
