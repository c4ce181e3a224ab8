package attendance

import (
	"time"

	"github.com/shiftwise/attendance-backend-go/internal/pkg/timeclock"
)

// AttendanceRecord is one employee's attendance for one calendar date.
// Date is an ISO "YYYY-MM-DD" string; all clock values are wall-clock "HH:MM".
// BreakStart and BreakEnd are parallel: BreakEnd[i] closes BreakStart[i], and
// at most one break is open at a time.
type AttendanceRecord struct {
	ID          string
	UserID      string
	Date        string
	ClockIn     *string
	ClockOut    *string
	BreakStart  []string
	BreakEnd    []string
	WorkMinutes int
	Status      timeclock.RecordStatus
	Revision    int
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// DTO / Join
	UserName *string
}

// StartBreak opens a break at the given wall-clock time.
func (r *AttendanceRecord) StartBreak(at string) error {
	if r.ClockIn == nil {
		return ErrNotClockedIn
	}
	if r.ClockOut != nil {
		return ErrAlreadyClockedOut
	}
	if len(r.BreakStart) > len(r.BreakEnd) {
		return ErrAlreadyOnBreak
	}
	r.BreakStart = append(r.BreakStart, at)
	return nil
}

// EndBreak closes the open break at the given wall-clock time.
func (r *AttendanceRecord) EndBreak(at string) error {
	if len(r.BreakStart) <= len(r.BreakEnd) {
		return ErrNotOnBreak
	}
	r.BreakEnd = append(r.BreakEnd, at)
	return nil
}

// ApplyClockOut ends the work day. All breaks must be closed first.
func (r *AttendanceRecord) ApplyClockOut(at string, workdayStart string) error {
	if r.ClockIn == nil {
		return ErrNotClockedIn
	}
	if r.ClockOut != nil {
		return ErrAlreadyClockedOut
	}
	if len(r.BreakStart) > len(r.BreakEnd) {
		return ErrBreakStillOpen
	}
	r.ClockOut = &at
	r.Recalculate(workdayStart)
	return nil
}

// Recalculate recomputes the derived fields from the clock and break values.
// WorkMinutes is never authoritative on its own. A leave or holiday status is
// an administrative override and survives recalculation.
func (r *AttendanceRecord) Recalculate(workdayStart string) {
	r.WorkMinutes = timeclock.WorkMinutes(r.ClockIn, r.ClockOut, r.BreakStart, r.BreakEnd)
	if r.Status == timeclock.RecordStatusLeave || r.Status == timeclock.RecordStatusHoliday {
		return
	}
	r.Status = timeclock.DeriveRecordStatus(r.ClockIn, r.ClockOut, workdayStart)
}
