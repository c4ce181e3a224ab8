package timeclock

import (
	"fmt"
	"time"
)

// RecordStatus is the stored classification of one attendance record,
// used by the monthly aggregation.
type RecordStatus string

const (
	RecordStatusPresent RecordStatus = "present"
	RecordStatusLate    RecordStatus = "late"
	RecordStatusAbsent  RecordStatus = "absent"
	RecordStatusLeave   RecordStatus = "leave"
	RecordStatusHoliday RecordStatus = "holiday"
)

var RecordStatusValues = []string{
	string(RecordStatusPresent),
	string(RecordStatusLate),
	string(RecordStatusAbsent),
	string(RecordStatusLeave),
	string(RecordStatusHoliday),
}

// DayStatus is the single user-facing label for one employee on one date.
// It is a separate vocabulary from RecordStatus and the two must not be mixed.
type DayStatus string

const (
	DayStatusUnregistered DayStatus = "unregistered"
	DayStatusWorking      DayStatus = "working"
	DayStatusClockedOut   DayStatus = "clocked_out"
	DayStatusDayOff       DayStatus = "day_off"
	DayStatusOnLeave      DayStatus = "on_leave"
)

// DefaultWorkdayStart is the nominal start of day used for lateness.
const DefaultWorkdayStart = "09:00"

// ParseClock parses a 24-hour "HH:MM" time of day into minutes since midnight.
func ParseClock(s string) (int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("invalid clock value %q: %w", s, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// IsValidClock reports whether s is a well-formed "HH:MM" time of day.
func IsValidClock(s string) bool {
	_, err := ParseClock(s)
	return err == nil
}

// BreakMinutes sums the durations of all closed break pairs. An open break
// (a start with no matching end) contributes nothing.
func BreakMinutes(breakStart, breakEnd []string) int {
	total := 0
	for i := range breakEnd {
		if i >= len(breakStart) {
			break
		}
		start, err := ParseClock(breakStart[i])
		if err != nil {
			continue
		}
		end, err := ParseClock(breakEnd[i])
		if err != nil {
			continue
		}
		total += end - start
	}
	return total
}

// WorkMinutes computes worked minutes for a single day. A day without both
// clock values reports 0: in-progress days stay at zero until clock-out.
// The result is floored at 0 to guard against malformed input.
func WorkMinutes(clockIn, clockOut *string, breakStart, breakEnd []string) int {
	if clockIn == nil || clockOut == nil {
		return 0
	}
	in, err := ParseClock(*clockIn)
	if err != nil {
		return 0
	}
	out, err := ParseClock(*clockOut)
	if err != nil {
		return 0
	}
	worked := out - in - BreakMinutes(breakStart, breakEnd)
	if worked < 0 {
		return 0
	}
	return worked
}

// FormatWorkTime renders minutes as "{hours}h {minutes}m". Negative input
// renders as "0h 0m".
func FormatWorkTime(minutes int) string {
	if minutes < 0 {
		minutes = 0
	}
	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
}

// DeriveRecordStatus recomputes an attendance record's status from its clock
// fields. leave and holiday are never derived here; they are set only by an
// administrative override.
func DeriveRecordStatus(clockIn, clockOut *string, workdayStart string) RecordStatus {
	if clockIn == nil && clockOut == nil {
		return RecordStatusAbsent
	}
	if clockIn == nil {
		return RecordStatusAbsent
	}
	in, err := ParseClock(*clockIn)
	if err != nil {
		return RecordStatusAbsent
	}
	threshold, err := ParseClock(workdayStart)
	if err != nil {
		threshold, _ = ParseClock(DefaultWorkdayStart)
	}
	if in > threshold {
		return RecordStatusLate
	}
	return RecordStatusPresent
}

// DaySignals carries the three independent inputs the daily classifier
// resolves for one employee on one calendar date.
type DaySignals struct {
	// DayOffShift is true when a shift assignment of a non-working type
	// (day off, seminar) exists for the date.
	DayOffShift bool
	// OnLeave is true when an approved leave range covers the date.
	OnLeave bool
	// HasRecord is true when an attendance record exists for the date.
	HasRecord bool
	ClockIn   *string
	ClockOut  *string
}

// ClassifyDay resolves the display status for one date by strict precedence:
// a non-working shift wins over everything, then approved leave, then the
// attendance record itself. A day-off shift therefore overrides a day the
// employee actually worked; that follows the shift table by decision.
func ClassifyDay(sig DaySignals) DayStatus {
	if sig.DayOffShift {
		return DayStatusDayOff
	}
	if sig.OnLeave {
		return DayStatusOnLeave
	}
	if !sig.HasRecord || sig.ClockIn == nil {
		return DayStatusUnregistered
	}
	if sig.ClockOut == nil {
		return DayStatusWorking
	}
	return DayStatusClockedOut
}

// Covers reports whether the inclusive [startDate, endDate] range contains
// date. All three are ISO "YYYY-MM-DD" strings, which order lexicographically.
func Covers(startDate, endDate, date string) bool {
	return startDate <= date && date <= endDate
}

// MonthDays lists the calendar days of month ("YYYY-MM") as ISO dates. For
// the month containing now, the list stops at today: future days carry no
// meaningful status yet.
func MonthDays(month string, now time.Time) ([]string, error) {
	first, err := time.Parse("2006-01", month)
	if err != nil {
		return nil, fmt.Errorf("invalid month %q: %w", month, err)
	}
	today := now.Format("2006-01-02")
	var days []string
	for d := first; d.Month() == first.Month(); d = d.AddDate(0, 0, 1) {
		iso := d.Format("2006-01-02")
		if month == now.Format("2006-01") && iso > today {
			break
		}
		days = append(days, iso)
	}
	return days, nil
}

// DayRecord is the slice of an attendance record the monthly aggregation
// needs.
type DayRecord struct {
	Date        string
	Status      RecordStatus
	WorkMinutes int
}

// MonthlySummary aggregates one employee's month.
type MonthlySummary struct {
	WorkDays         int `json:"work_days"`
	LateDays         int `json:"late_days"`
	AbsentDays       int `json:"absent_days"`
	LeaveDays        int `json:"leave_days"`
	TotalWorkMinutes int `json:"total_work_minutes"`
	AvgWorkMinutes   int `json:"avg_work_minutes"`
}

// Summarize rolls daily records up into monthly statistics. leaveDays is the
// count of calendar days the daily classifier labels on_leave; it is counted
// per covered day, not per leave request. An empty month yields all zeros.
func Summarize(records []DayRecord, leaveDays int) MonthlySummary {
	s := MonthlySummary{LeaveDays: leaveDays}
	for _, rec := range records {
		s.TotalWorkMinutes += rec.WorkMinutes
		switch rec.Status {
		case RecordStatusPresent:
			s.WorkDays++
		case RecordStatusLate:
			s.WorkDays++
			s.LateDays++
		case RecordStatusAbsent:
			s.AbsentDays++
		}
	}
	if s.WorkDays > 0 {
		s.AvgWorkMinutes = s.TotalWorkMinutes / s.WorkDays
	}
	return s
}
