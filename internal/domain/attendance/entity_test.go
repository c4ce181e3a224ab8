package attendance

import (
	"errors"
	"testing"

	"github.com/shiftwise/attendance-backend-go/internal/pkg/timeclock"
)

func strPtr(s string) *string { return &s }

func workedRecord(clockIn string) AttendanceRecord {
	return AttendanceRecord{
		ID:      "att-1",
		UserID:  "user-1",
		Date:    "2025-06-02",
		ClockIn: strPtr(clockIn),
	}
}

func TestStartBreak_NotClockedIn(t *testing.T) {
	rec := AttendanceRecord{Date: "2025-06-02"}
	err := rec.StartBreak("12:00")
	if !errors.Is(err, ErrNotClockedIn) {
		t.Errorf("StartBreak on empty record = %v, want ErrNotClockedIn", err)
	}
	if len(rec.BreakStart) != 0 {
		t.Error("rejected break start must not mutate the record")
	}
}

func TestStartBreak_AfterClockOut(t *testing.T) {
	rec := workedRecord("09:00")
	rec.ClockOut = strPtr("18:00")
	if err := rec.StartBreak("18:30"); !errors.Is(err, ErrAlreadyClockedOut) {
		t.Errorf("StartBreak after clock-out = %v, want ErrAlreadyClockedOut", err)
	}
}

func TestStartBreak_SecondOpenBreak(t *testing.T) {
	rec := workedRecord("09:00")
	if err := rec.StartBreak("12:00"); err != nil {
		t.Fatalf("first StartBreak: %v", err)
	}
	if err := rec.StartBreak("12:30"); !errors.Is(err, ErrAlreadyOnBreak) {
		t.Errorf("second open break = %v, want ErrAlreadyOnBreak", err)
	}
}

func TestEndBreak_NoneOpen(t *testing.T) {
	rec := workedRecord("09:00")
	err := rec.EndBreak("13:00")
	if !errors.Is(err, ErrNotOnBreak) {
		t.Errorf("EndBreak with no open break = %v, want ErrNotOnBreak", err)
	}
	if len(rec.BreakEnd) != 0 {
		t.Error("rejected break end must not mutate the record")
	}

	// Closed pair, still nothing open.
	rec.BreakStart = []string{"12:00"}
	rec.BreakEnd = []string{"12:45"}
	if err := rec.EndBreak("13:00"); !errors.Is(err, ErrNotOnBreak) {
		t.Errorf("EndBreak with closed pair = %v, want ErrNotOnBreak", err)
	}
}

func TestApplyClockOut_OpenBreak(t *testing.T) {
	rec := workedRecord("09:00")
	if err := rec.StartBreak("12:00"); err != nil {
		t.Fatalf("StartBreak: %v", err)
	}
	if err := rec.ApplyClockOut("18:00", timeclock.DefaultWorkdayStart); !errors.Is(err, ErrBreakStillOpen) {
		t.Errorf("clock-out with open break = %v, want ErrBreakStillOpen", err)
	}
	if rec.ClockOut != nil {
		t.Error("rejected clock-out must not mutate the record")
	}
}

func TestApplyClockOut_Twice(t *testing.T) {
	rec := workedRecord("09:00")
	if err := rec.ApplyClockOut("18:00", timeclock.DefaultWorkdayStart); err != nil {
		t.Fatalf("first clock-out: %v", err)
	}
	if err := rec.ApplyClockOut("19:00", timeclock.DefaultWorkdayStart); !errors.Is(err, ErrAlreadyClockedOut) {
		t.Errorf("second clock-out = %v, want ErrAlreadyClockedOut", err)
	}
}

func TestFullDay_LateWithBreak(t *testing.T) {
	rec := workedRecord("09:15")
	rec.Recalculate(timeclock.DefaultWorkdayStart)
	if rec.Status != timeclock.RecordStatusLate {
		t.Errorf("status after 09:15 clock-in = %q, want late", rec.Status)
	}
	if rec.WorkMinutes != 0 {
		t.Errorf("in-progress work minutes = %d, want 0", rec.WorkMinutes)
	}

	if err := rec.StartBreak("12:00"); err != nil {
		t.Fatalf("StartBreak: %v", err)
	}
	if err := rec.EndBreak("13:00"); err != nil {
		t.Fatalf("EndBreak: %v", err)
	}
	if err := rec.ApplyClockOut("18:00", timeclock.DefaultWorkdayStart); err != nil {
		t.Fatalf("ApplyClockOut: %v", err)
	}

	if rec.WorkMinutes != 465 {
		t.Errorf("work minutes = %d, want 465", rec.WorkMinutes)
	}
	if rec.Status != timeclock.RecordStatusLate {
		t.Errorf("status = %q, want late", rec.Status)
	}
}

func TestFullDay_OnTime(t *testing.T) {
	rec := workedRecord("08:55")
	rec.Recalculate(timeclock.DefaultWorkdayStart)
	if rec.Status != timeclock.RecordStatusPresent {
		t.Errorf("status = %q, want present", rec.Status)
	}
}

func TestRecalculate_PreservesAdminOverride(t *testing.T) {
	rec := workedRecord("09:00")
	rec.Status = timeclock.RecordStatusHoliday
	rec.Recalculate(timeclock.DefaultWorkdayStart)
	if rec.Status != timeclock.RecordStatusHoliday {
		t.Errorf("status = %q, want holiday preserved through recalculation", rec.Status)
	}
}
