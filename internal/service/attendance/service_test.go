package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/shiftwise/attendance-backend-go/internal/domain/attendance"
	"github.com/shiftwise/attendance-backend-go/internal/domain/leave"
	"github.com/shiftwise/attendance-backend-go/internal/domain/shift"
	"github.com/shiftwise/attendance-backend-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memAttendanceRepo struct {
	attendance.AttendanceRepository
	byID map[string]attendance.AttendanceRecord
}

func newMemAttendanceRepo() *memAttendanceRepo {
	return &memAttendanceRepo{byID: make(map[string]attendance.AttendanceRecord)}
}

func (m *memAttendanceRepo) Create(_ context.Context, record attendance.AttendanceRecord) (attendance.AttendanceRecord, error) {
	record.CreatedAt = time.Now()
	record.UpdatedAt = record.CreatedAt
	m.byID[record.ID] = record
	return record, nil
}

func (m *memAttendanceRepo) GetByID(_ context.Context, id string) (attendance.AttendanceRecord, error) {
	rec, ok := m.byID[id]
	if !ok {
		return attendance.AttendanceRecord{}, attendance.ErrRecordNotFound
	}
	return rec, nil
}

func (m *memAttendanceRepo) GetByUserAndDate(_ context.Context, userID string, date string) (*attendance.AttendanceRecord, error) {
	for _, rec := range m.byID {
		if rec.UserID == userID && rec.Date == date {
			out := rec
			return &out, nil
		}
	}
	return nil, nil
}

func (m *memAttendanceRepo) Update(_ context.Context, record attendance.AttendanceRecord) error {
	stored, ok := m.byID[record.ID]
	if !ok {
		return attendance.ErrRecordNotFound
	}
	if stored.Revision != record.Revision {
		return attendance.ErrRevisionConflict
	}
	record.Revision++
	record.UpdatedAt = time.Now()
	m.byID[record.ID] = record
	return nil
}

func (m *memAttendanceRepo) Delete(_ context.Context, id string) error {
	if _, ok := m.byID[id]; !ok {
		return attendance.ErrRecordNotFound
	}
	delete(m.byID, id)
	return nil
}

type memShiftRepo struct {
	shift.ShiftRepository
	byUserDate map[string]shift.ShiftAssignment
}

func shiftKey(userID, date string) string { return userID + "|" + date }

func (m *memShiftRepo) GetByUserAndDate(_ context.Context, userID string, date string) (*shift.ShiftAssignment, error) {
	if sa, ok := m.byUserDate[shiftKey(userID, date)]; ok {
		out := sa
		return &out, nil
	}
	return nil, nil
}

type memLeaveRepo struct {
	leave.LeaveRequestRepository
	requests []leave.LeaveRequest
}

func (m *memLeaveRepo) ListApprovedInRange(_ context.Context, userID string, startDate, endDate string) ([]leave.LeaveRequest, error) {
	var out []leave.LeaveRequest
	for _, lr := range m.requests {
		if lr.UserID == userID && lr.Status == leave.LeaveRequestStatusApproved &&
			lr.StartDate <= endDate && lr.EndDate >= startDate {
			out = append(out, lr)
		}
	}
	return out, nil
}

var testTokenAuth = jwtauth.New("HS256", []byte("attendance-service-test"), nil)

func authedContext(t *testing.T, userID string, role user.Role) context.Context {
	t.Helper()
	token, _, err := testTokenAuth.Encode(map[string]interface{}{
		"user_id": userID,
		"role":    string(role),
		"type":    "access",
	})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func newTestService(att *memAttendanceRepo, sh *memShiftRepo, lv *memLeaveRepo) attendance.AttendanceService {
	if sh == nil {
		sh = &memShiftRepo{byUserDate: make(map[string]shift.ShiftAssignment)}
	}
	if lv == nil {
		lv = &memLeaveRepo{}
	}
	// a threshold at end of day keeps derived statuses stable regardless
	// of when the test actually runs
	return NewAttendanceService(nil, att, sh, lv, "23:59", time.UTC)
}

func TestClockInCreatesTodayRecord(t *testing.T) {
	repo := newMemAttendanceRepo()
	svc := newTestService(repo, nil, nil)
	ctx := authedContext(t, "user-1", user.RoleEmployee)

	resp, err := svc.ClockIn(ctx)
	require.NoError(t, err)

	assert.Equal(t, "user-1", resp.UserID)
	assert.Equal(t, time.Now().UTC().Format("2006-01-02"), resp.Date)
	require.NotNil(t, resp.ClockIn)
	assert.Nil(t, resp.ClockOut)
	assert.Equal(t, 0, resp.WorkMinutes)
	assert.Equal(t, 0, resp.Revision)
}

func TestClockInTwiceFails(t *testing.T) {
	repo := newMemAttendanceRepo()
	svc := newTestService(repo, nil, nil)
	ctx := authedContext(t, "user-1", user.RoleEmployee)

	_, err := svc.ClockIn(ctx)
	require.NoError(t, err)

	_, err = svc.ClockIn(ctx)
	assert.ErrorIs(t, err, attendance.ErrAlreadyClockedIn)
}

func TestClockOutWithoutClockIn(t *testing.T) {
	svc := newTestService(newMemAttendanceRepo(), nil, nil)
	ctx := authedContext(t, "user-1", user.RoleEmployee)

	_, err := svc.ClockOut(ctx)
	assert.ErrorIs(t, err, attendance.ErrNotClockedIn)
}

func TestBreakLifecycle(t *testing.T) {
	repo := newMemAttendanceRepo()
	svc := newTestService(repo, nil, nil)
	ctx := authedContext(t, "user-1", user.RoleEmployee)

	_, err := svc.ClockIn(ctx)
	require.NoError(t, err)

	_, err = svc.EndBreak(ctx)
	assert.ErrorIs(t, err, attendance.ErrNotOnBreak)

	resp, err := svc.StartBreak(ctx)
	require.NoError(t, err)
	assert.Len(t, resp.BreakStart, 1)
	assert.Equal(t, 1, resp.Revision)

	_, err = svc.StartBreak(ctx)
	assert.ErrorIs(t, err, attendance.ErrAlreadyOnBreak)

	// an open break blocks clock-out
	_, err = svc.ClockOut(ctx)
	assert.ErrorIs(t, err, attendance.ErrBreakStillOpen)

	resp, err = svc.EndBreak(ctx)
	require.NoError(t, err)
	assert.Len(t, resp.BreakEnd, 1)

	resp, err = svc.ClockOut(ctx)
	require.NoError(t, err)
	require.NotNil(t, resp.ClockOut)

	_, err = svc.ClockOut(ctx)
	assert.ErrorIs(t, err, attendance.ErrAlreadyClockedOut)
}

func TestDayStatusEmployeeScope(t *testing.T) {
	svc := newTestService(newMemAttendanceRepo(), nil, nil)

	filter := attendance.DayStatusFilter{UserID: "someone-else", Date: "2026-04-01"}

	_, err := svc.DayStatus(authedContext(t, "user-1", user.RoleEmployee), filter)
	assert.ErrorIs(t, err, user.ErrManagerAccessRequired)

	resp, err := svc.DayStatus(authedContext(t, "user-1", user.RoleManager), filter)
	require.NoError(t, err)
	assert.Equal(t, "unregistered", resp.DayStatus)
}

func TestDayStatusPrecedence(t *testing.T) {
	repo := newMemAttendanceRepo()
	clockIn := "09:00"
	repo.byID["rec-1"] = attendance.AttendanceRecord{
		ID: "rec-1", UserID: "user-1", Date: "2026-04-03", ClockIn: &clockIn,
	}
	sh := &memShiftRepo{byUserDate: map[string]shift.ShiftAssignment{
		shiftKey("user-1", "2026-04-03"): {
			UserID: "user-1", Date: "2026-04-03",
			Type: shift.ShiftTypeDayOff, Status: shift.ShiftStatusApproved,
		},
	}}
	lv := &memLeaveRepo{requests: []leave.LeaveRequest{
		{
			UserID: "user-1", StartDate: "2026-04-01", EndDate: "2026-04-05",
			Status: leave.LeaveRequestStatusApproved,
		},
	}}
	svc := newTestService(repo, sh, lv)
	ctx := authedContext(t, "user-1", user.RoleEmployee)

	// day off beats both the approved leave and the worked record
	resp, err := svc.DayStatus(ctx, attendance.DayStatusFilter{UserID: "user-1", Date: "2026-04-03"})
	require.NoError(t, err)
	assert.Equal(t, "day_off", resp.DayStatus)

	// without a shift, leave wins over the record
	resp, err = svc.DayStatus(ctx, attendance.DayStatusFilter{UserID: "user-1", Date: "2026-04-04"})
	require.NoError(t, err)
	assert.Equal(t, "on_leave", resp.DayStatus)
}

func TestUpdateAttendanceRevisionConflict(t *testing.T) {
	repo := newMemAttendanceRepo()
	clockIn, clockOut := "09:00", "18:00"
	repo.byID["rec-1"] = attendance.AttendanceRecord{
		ID: "rec-1", UserID: "user-1", Date: "2026-04-01",
		ClockIn: &clockIn, ClockOut: &clockOut, Revision: 3,
	}
	svc := newTestService(repo, nil, nil)
	ctx := authedContext(t, "admin-1", user.RoleAdmin)

	stale := "08:30"
	_, err := svc.UpdateAttendance(ctx, attendance.UpdateAttendanceRequest{
		ID: "rec-1", ClockIn: &stale, Revision: 2,
	})
	assert.ErrorIs(t, err, attendance.ErrRevisionConflict)

	resp, err := svc.UpdateAttendance(ctx, attendance.UpdateAttendanceRequest{
		ID: "rec-1", ClockIn: &stale, Revision: 3,
	})
	require.NoError(t, err)
	assert.Equal(t, &stale, resp.ClockIn)
	assert.Equal(t, 570, resp.WorkMinutes)
}
