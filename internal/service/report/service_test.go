package report

import (
	"context"
	"testing"
	"time"

	"github.com/shiftwise/attendance-backend-go/internal/domain/attendance"
	"github.com/shiftwise/attendance-backend-go/internal/domain/leave"
	"github.com/shiftwise/attendance-backend-go/internal/domain/report"
	"github.com/shiftwise/attendance-backend-go/internal/domain/shift"
	"github.com/shiftwise/attendance-backend-go/internal/domain/user"
	"github.com/shiftwise/attendance-backend-go/internal/pkg/timeclock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAttendanceRepo struct {
	attendance.AttendanceRepository
	records []attendance.AttendanceRecord
}

func (f *fakeAttendanceRepo) ListByUserAndRange(_ context.Context, userID string, startDate, endDate string) ([]attendance.AttendanceRecord, error) {
	var out []attendance.AttendanceRecord
	for _, rec := range f.records {
		if rec.UserID == userID && timeclock.Covers(startDate, endDate, rec.Date) {
			out = append(out, rec)
		}
	}
	return out, nil
}

type fakeShiftRepo struct {
	shift.ShiftRepository
	assignments []shift.ShiftAssignment
}

func (f *fakeShiftRepo) List(_ context.Context, filter shift.ShiftFilter) ([]shift.ShiftAssignment, error) {
	var out []shift.ShiftAssignment
	for _, sa := range f.assignments {
		if filter.UserID != nil && sa.UserID != *filter.UserID {
			continue
		}
		if filter.StartDate != nil && filter.EndDate != nil && !timeclock.Covers(*filter.StartDate, *filter.EndDate, sa.Date) {
			continue
		}
		out = append(out, sa)
	}
	return out, nil
}

type fakeLeaveRepo struct {
	leave.LeaveRequestRepository
	requests []leave.LeaveRequest
}

func (f *fakeLeaveRepo) ListApprovedInRange(_ context.Context, userID string, startDate, endDate string) ([]leave.LeaveRequest, error) {
	var out []leave.LeaveRequest
	for _, lr := range f.requests {
		if lr.UserID != userID || lr.Status != leave.LeaveRequestStatusApproved {
			continue
		}
		if lr.EndDate < startDate || lr.StartDate > endDate {
			continue
		}
		out = append(out, lr)
	}
	return out, nil
}

type fakeUserRepo struct {
	user.UserRepository
	users map[string]user.User
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func ptr(s string) *string { return &s }

func newTestService(att *fakeAttendanceRepo, sh *fakeShiftRepo, lv *fakeLeaveRepo) report.ReportService {
	users := &fakeUserRepo{users: map[string]user.User{
		"user-1": {ID: "user-1", Name: "Hana Sato", Email: "hana@example.com", Role: user.RoleEmployee},
	}}
	return NewReportService(nil, att, sh, lv, users, time.UTC)
}

func TestMonthlyEmptyMonth(t *testing.T) {
	svc := newTestService(&fakeAttendanceRepo{}, &fakeShiftRepo{}, &fakeLeaveRepo{})

	rep, err := svc.Monthly(context.Background(), report.MonthlyReportFilter{
		UserID: "user-1",
		Month:  "2026-04",
	})
	require.NoError(t, err)

	assert.Equal(t, "Hana Sato", rep.UserName)
	assert.Equal(t, timeclock.MonthlySummary{}, rep.Summary)
	assert.Equal(t, "0h 0m", rep.TotalTime)
	assert.Equal(t, "0h 0m", rep.AverageTime)
	require.Len(t, rep.Days, 30)
	for _, day := range rep.Days {
		assert.Equal(t, string(timeclock.DayStatusUnregistered), day.DayStatus)
		assert.Nil(t, day.Status)
	}
}

func TestMonthlyAggregation(t *testing.T) {
	att := &fakeAttendanceRepo{records: []attendance.AttendanceRecord{
		{
			UserID: "user-1", Date: "2026-04-01",
			ClockIn: ptr("09:00"), ClockOut: ptr("18:00"),
			BreakStart: []string{"12:00"}, BreakEnd: []string{"13:00"},
			WorkMinutes: 480, Status: timeclock.RecordStatusPresent,
		},
		{
			UserID: "user-1", Date: "2026-04-02",
			ClockIn: ptr("09:15"), ClockOut: ptr("18:00"),
			BreakStart: []string{"12:00"}, BreakEnd: []string{"13:00"},
			WorkMinutes: 465, Status: timeclock.RecordStatusLate,
		},
		// worked day that the shift table marks as a day off
		{
			UserID: "user-1", Date: "2026-04-03",
			ClockIn: ptr("09:00"), ClockOut: ptr("18:00"),
			WorkMinutes: 540, Status: timeclock.RecordStatusPresent,
		},
	}}
	sh := &fakeShiftRepo{assignments: []shift.ShiftAssignment{
		{UserID: "user-1", Date: "2026-04-03", Type: shift.ShiftTypeDayOff, Status: shift.ShiftStatusApproved},
	}}
	lv := &fakeLeaveRepo{requests: []leave.LeaveRequest{
		{
			UserID: "user-1", Type: leave.LeaveTypePaid,
			StartDate: "2026-04-06", EndDate: "2026-04-08",
			Status: leave.LeaveRequestStatusApproved,
		},
	}}

	svc := newTestService(att, sh, lv)

	rep, err := svc.Monthly(context.Background(), report.MonthlyReportFilter{
		UserID: "user-1",
		Month:  "2026-04",
	})
	require.NoError(t, err)

	assert.Equal(t, 2, rep.Summary.WorkDays)
	assert.Equal(t, 1, rep.Summary.LateDays)
	assert.Equal(t, 0, rep.Summary.AbsentDays)
	// each covered calendar day counts, not each request
	assert.Equal(t, 3, rep.Summary.LeaveDays)
	assert.Equal(t, 945, rep.Summary.TotalWorkMinutes)
	assert.Equal(t, 472, rep.Summary.AvgWorkMinutes)
	assert.Equal(t, "15h 45m", rep.TotalTime)

	byDate := make(map[string]report.DailyReportRow)
	for _, day := range rep.Days {
		byDate[day.Date] = day
	}

	assert.Equal(t, string(timeclock.DayStatusClockedOut), byDate["2026-04-01"].DayStatus)
	assert.Equal(t, string(timeclock.DayStatusClockedOut), byDate["2026-04-02"].DayStatus)
	// the day off overrides the worked record and its minutes
	assert.Equal(t, string(timeclock.DayStatusDayOff), byDate["2026-04-03"].DayStatus)
	assert.Equal(t, "0h 0m", byDate["2026-04-03"].WorkTime)
	assert.Equal(t, string(timeclock.DayStatusOnLeave), byDate["2026-04-07"].DayStatus)
	assert.Equal(t, string(timeclock.DayStatusUnregistered), byDate["2026-04-10"].DayStatus)
}

func TestMonthlyUnknownUser(t *testing.T) {
	svc := newTestService(&fakeAttendanceRepo{}, &fakeShiftRepo{}, &fakeLeaveRepo{})

	_, err := svc.Monthly(context.Background(), report.MonthlyReportFilter{
		UserID: "missing",
		Month:  "2026-04",
	})
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestMonthlyInvalidFilter(t *testing.T) {
	svc := newTestService(&fakeAttendanceRepo{}, &fakeShiftRepo{}, &fakeLeaveRepo{})

	_, err := svc.Monthly(context.Background(), report.MonthlyReportFilter{
		UserID: "user-1",
		Month:  "April 2026",
	})
	assert.Error(t, err)
}

func TestMonthlyPDFAndXLSX(t *testing.T) {
	svc := newTestService(&fakeAttendanceRepo{}, &fakeShiftRepo{}, &fakeLeaveRepo{})
	filter := report.MonthlyReportFilter{UserID: "user-1", Month: "2026-04"}

	pdfBytes, err := svc.MonthlyPDF(context.Background(), filter)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(pdfBytes[:4]))

	xlsxBytes, err := svc.MonthlyXLSX(context.Background(), filter)
	require.NoError(t, err)
	assert.NotEmpty(t, xlsxBytes)
}
