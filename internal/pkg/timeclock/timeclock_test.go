package timeclock

import (
	"testing"
	"time"
)

func strPtr(s string) *string { return &s }

func TestParseClock(t *testing.T) {
	cases := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"09:00", 540, false},
		{"18:30", 1110, false},
		{"23:59", 1439, false},
		{"24:00", 0, true},
		{"12:60", 0, true},
		{"noon", 0, true},
		{"", 0, true},
	}
	for _, c := range cases {
		got, err := ParseClock(c.input)
		if c.wantErr {
			if err == nil {
				t.Errorf("ParseClock(%q) expected error, got %d", c.input, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseClock(%q) unexpected error: %v", c.input, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseClock(%q) = %d, want %d", c.input, got, c.want)
		}
	}
}

func TestWorkMinutes_NoBreaks(t *testing.T) {
	got := WorkMinutes(strPtr("09:00"), strPtr("17:30"), nil, nil)
	if got != 510 {
		t.Errorf("WorkMinutes(09:00, 17:30) = %d, want 510", got)
	}
}

func TestWorkMinutes_ClosedBreaksSubtracted(t *testing.T) {
	got := WorkMinutes(strPtr("09:15"), strPtr("18:00"),
		[]string{"12:00"}, []string{"13:00"})
	if got != 465 {
		t.Errorf("worked = %d, want 465", got)
	}
}

func TestWorkMinutes_OpenBreakIgnored(t *testing.T) {
	got := WorkMinutes(strPtr("09:00"), strPtr("18:00"),
		[]string{"12:00", "15:00"}, []string{"12:45"})
	if got != 495 {
		t.Errorf("worked = %d, want 495 (open break must not count)", got)
	}
}

func TestWorkMinutes_InProgressDayIsZero(t *testing.T) {
	if got := WorkMinutes(strPtr("08:55"), nil, nil, nil); got != 0 {
		t.Errorf("in-progress day worked = %d, want 0", got)
	}
	if got := WorkMinutes(nil, strPtr("18:00"), nil, nil); got != 0 {
		t.Errorf("clock-out only worked = %d, want 0", got)
	}
}

func TestWorkMinutes_FlooredAtZero(t *testing.T) {
	if got := WorkMinutes(strPtr("18:00"), strPtr("09:00"), nil, nil); got != 0 {
		t.Errorf("clock-out before clock-in worked = %d, want 0", got)
	}
	if got := WorkMinutes(strPtr("09:00"), strPtr("10:00"),
		[]string{"09:00"}, []string{"11:00"}); got != 0 {
		t.Errorf("break longer than day worked = %d, want 0", got)
	}
}

func TestFormatWorkTime(t *testing.T) {
	cases := []struct {
		minutes int
		want    string
	}{
		{0, "0h 0m"},
		{495, "8h 15m"},
		{60, "1h 0m"},
		{59, "0h 59m"},
		{-30, "0h 0m"},
	}
	for _, c := range cases {
		if got := FormatWorkTime(c.minutes); got != c.want {
			t.Errorf("FormatWorkTime(%d) = %q, want %q", c.minutes, got, c.want)
		}
	}
}

func TestDeriveRecordStatus(t *testing.T) {
	cases := []struct {
		name     string
		clockIn  *string
		clockOut *string
		want     RecordStatus
	}{
		{"no clocks", nil, nil, RecordStatusAbsent},
		{"on time", strPtr("08:55"), nil, RecordStatusPresent},
		{"exactly nominal start", strPtr("09:00"), strPtr("18:00"), RecordStatusPresent},
		{"strictly after nominal start", strPtr("09:15"), strPtr("18:00"), RecordStatusLate},
		{"late without clock-out", strPtr("09:01"), nil, RecordStatusLate},
	}
	for _, c := range cases {
		got := DeriveRecordStatus(c.clockIn, c.clockOut, DefaultWorkdayStart)
		if got != c.want {
			t.Errorf("%s: DeriveRecordStatus = %q, want %q", c.name, got, c.want)
		}
	}
}

func TestClassifyDay_Precedence(t *testing.T) {
	// Approved leave with no day-off shift.
	got := ClassifyDay(DaySignals{OnLeave: true})
	if got != DayStatusOnLeave {
		t.Errorf("leave day = %q, want %q", got, DayStatusOnLeave)
	}

	// A day-off shift wins even over approved leave on the same date.
	got = ClassifyDay(DaySignals{DayOffShift: true, OnLeave: true})
	if got != DayStatusDayOff {
		t.Errorf("day-off + leave = %q, want %q", got, DayStatusDayOff)
	}

	// A day-off shift also wins over a worked record.
	got = ClassifyDay(DaySignals{
		DayOffShift: true,
		HasRecord:   true,
		ClockIn:     strPtr("09:00"),
		ClockOut:    strPtr("18:00"),
	})
	if got != DayStatusDayOff {
		t.Errorf("day-off + worked record = %q, want %q", got, DayStatusDayOff)
	}
}

func TestClassifyDay_FromRecord(t *testing.T) {
	cases := []struct {
		name string
		sig  DaySignals
		want DayStatus
	}{
		{"no record", DaySignals{}, DayStatusUnregistered},
		{"empty record", DaySignals{HasRecord: true}, DayStatusUnregistered},
		{"working", DaySignals{HasRecord: true, ClockIn: strPtr("08:55")}, DayStatusWorking},
		{"clocked out", DaySignals{HasRecord: true, ClockIn: strPtr("09:00"), ClockOut: strPtr("18:00")}, DayStatusClockedOut},
	}
	for _, c := range cases {
		if got := ClassifyDay(c.sig); got != c.want {
			t.Errorf("%s: ClassifyDay = %q, want %q", c.name, got, c.want)
		}
	}
}

func TestCovers(t *testing.T) {
	cases := []struct {
		start, end, date string
		want             bool
	}{
		{"2025-03-10", "2025-03-12", "2025-03-10", true},
		{"2025-03-10", "2025-03-12", "2025-03-12", true},
		{"2025-03-10", "2025-03-12", "2025-03-13", false},
		{"2025-03-10", "2025-03-12", "2025-03-09", false},
		{"2025-03-10", "2025-03-10", "2025-03-10", true},
	}
	for _, c := range cases {
		if got := Covers(c.start, c.end, c.date); got != c.want {
			t.Errorf("Covers(%s, %s, %s) = %v, want %v", c.start, c.end, c.date, got, c.want)
		}
	}
}

func TestMonthDays(t *testing.T) {
	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

	past, err := MonthDays("2025-04", now)
	if err != nil {
		t.Fatalf("MonthDays: %v", err)
	}
	if len(past) != 30 {
		t.Errorf("April has %d days, want 30", len(past))
	}
	if past[0] != "2025-04-01" || past[29] != "2025-04-30" {
		t.Errorf("April bounds = %s..%s", past[0], past[29])
	}

	current, err := MonthDays("2025-06", now)
	if err != nil {
		t.Fatalf("MonthDays: %v", err)
	}
	if len(current) != 15 {
		t.Errorf("current month capped at today: %d days, want 15", len(current))
	}

	if _, err := MonthDays("2025-13", now); err == nil {
		t.Error("MonthDays(2025-13) expected error")
	}
}

func TestSummarize_EmptyMonth(t *testing.T) {
	s := Summarize(nil, 0)
	if s != (MonthlySummary{}) {
		t.Errorf("empty month summary = %+v, want all zeros", s)
	}
}

func TestSummarize(t *testing.T) {
	records := []DayRecord{
		{Date: "2025-06-02", Status: RecordStatusPresent, WorkMinutes: 480},
		{Date: "2025-06-03", Status: RecordStatusLate, WorkMinutes: 455},
		{Date: "2025-06-04", Status: RecordStatusAbsent, WorkMinutes: 0},
		{Date: "2025-06-05", Status: RecordStatusPresent, WorkMinutes: 505},
		{Date: "2025-06-06", Status: RecordStatusHoliday, WorkMinutes: 0},
	}
	s := Summarize(records, 3)

	if s.WorkDays != 3 {
		t.Errorf("WorkDays = %d, want 3", s.WorkDays)
	}
	if s.LateDays != 1 {
		t.Errorf("LateDays = %d, want 1", s.LateDays)
	}
	if s.AbsentDays != 1 {
		t.Errorf("AbsentDays = %d, want 1", s.AbsentDays)
	}
	if s.LeaveDays != 3 {
		t.Errorf("LeaveDays = %d, want 3", s.LeaveDays)
	}
	if s.TotalWorkMinutes != 1440 {
		t.Errorf("TotalWorkMinutes = %d, want 1440", s.TotalWorkMinutes)
	}
	if s.AvgWorkMinutes != 480 {
		t.Errorf("AvgWorkMinutes = %d, want 480", s.AvgWorkMinutes)
	}
}
