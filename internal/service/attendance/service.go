package attendance

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/shiftwise/attendance-backend-go/internal/domain/attendance"
	"github.com/shiftwise/attendance-backend-go/internal/domain/leave"
	"github.com/shiftwise/attendance-backend-go/internal/domain/shift"
	"github.com/shiftwise/attendance-backend-go/internal/domain/user"
	"github.com/shiftwise/attendance-backend-go/internal/pkg/database"
	"github.com/shiftwise/attendance-backend-go/internal/pkg/timeclock"
)

type AttendanceServiceImpl struct {
	db *database.DB
	attendance.AttendanceRepository
	shift.ShiftRepository
	leave.LeaveRequestRepository
	workdayStart string
	location     *time.Location
}

func NewAttendanceService(
	db *database.DB,
	attendanceRepo attendance.AttendanceRepository,
	shiftRepo shift.ShiftRepository,
	leaveRepo leave.LeaveRequestRepository,
	workdayStart string,
	location *time.Location,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		db:                     db,
		AttendanceRepository:   attendanceRepo,
		ShiftRepository:        shiftRepo,
		LeaveRequestRepository: leaveRepo,
		workdayStart:           workdayStart,
		location:               location,
	}
}

// identity extracts the authenticated user and role from the request claims.
func identity(ctx context.Context) (userID string, role user.Role, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", "", fmt.Errorf("user_id claim is missing or invalid")
	}

	roleStr, ok := claims["role"].(string)
	if !ok || roleStr == "" {
		return "", "", fmt.Errorf("role claim is missing or invalid")
	}

	return userID, user.Role(roleStr), nil
}

// mapRecordToResponse converts an AttendanceRecord entity to AttendanceResponse
func mapRecordToResponse(rec attendance.AttendanceRecord) attendance.AttendanceResponse {
	var userName string
	if rec.UserName != nil {
		userName = *rec.UserName
	}

	return attendance.AttendanceResponse{
		ID:          rec.ID,
		UserID:      rec.UserID,
		UserName:    userName,
		Date:        rec.Date,
		ClockIn:     rec.ClockIn,
		ClockOut:    rec.ClockOut,
		BreakStart:  rec.BreakStart,
		BreakEnd:    rec.BreakEnd,
		WorkMinutes: rec.WorkMinutes,
		WorkTime:    timeclock.FormatWorkTime(rec.WorkMinutes),
		Status:      string(rec.Status),
		Revision:    rec.Revision,
		CreatedAt:   rec.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:   rec.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}

func (a *AttendanceServiceImpl) nowLocal() (date string, clock string) {
	now := time.Now().In(a.location)
	return now.Format("2006-01-02"), now.Format("15:04")
}

// ClockIn implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ClockIn(ctx context.Context) (attendance.AttendanceResponse, error) {
	userID, _, err := identity(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	date, clock := a.nowLocal()

	existing, err := a.AttendanceRepository.GetByUserAndDate(ctx, userID, date)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to check today's record: %w", err)
	}
	if existing != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyClockedIn
	}

	rec := attendance.AttendanceRecord{
		ID:      uuid.NewString(),
		UserID:  userID,
		Date:    date,
		ClockIn: &clock,
	}
	rec.Recalculate(a.workdayStart)

	created, err := a.AttendanceRepository.Create(ctx, rec)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return mapRecordToResponse(created), nil
}

// todayRecord loads today's record for the state-machine mutations.
func (a *AttendanceServiceImpl) todayRecord(ctx context.Context, userID string) (*attendance.AttendanceRecord, error) {
	date, _ := a.nowLocal()
	rec, err := a.AttendanceRepository.GetByUserAndDate(ctx, userID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to get today's record: %w", err)
	}
	if rec == nil {
		return nil, attendance.ErrNotClockedIn
	}
	return rec, nil
}

// ClockOut implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ClockOut(ctx context.Context) (attendance.AttendanceResponse, error) {
	userID, _, err := identity(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	rec, err := a.todayRecord(ctx, userID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	_, clock := a.nowLocal()
	if err := rec.ApplyClockOut(clock, a.workdayStart); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if err := a.AttendanceRepository.Update(ctx, *rec); err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to update attendance record: %w", err)
	}

	rec.Revision++
	return mapRecordToResponse(*rec), nil
}

// StartBreak implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) StartBreak(ctx context.Context) (attendance.AttendanceResponse, error) {
	userID, _, err := identity(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	rec, err := a.todayRecord(ctx, userID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	_, clock := a.nowLocal()
	if err := rec.StartBreak(clock); err != nil {
		return attendance.AttendanceResponse{}, err
	}
	rec.Recalculate(a.workdayStart)

	if err := a.AttendanceRepository.Update(ctx, *rec); err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to update attendance record: %w", err)
	}

	rec.Revision++
	return mapRecordToResponse(*rec), nil
}

// EndBreak implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) EndBreak(ctx context.Context) (attendance.AttendanceResponse, error) {
	userID, _, err := identity(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	rec, err := a.todayRecord(ctx, userID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	_, clock := a.nowLocal()
	if err := rec.EndBreak(clock); err != nil {
		return attendance.AttendanceResponse{}, err
	}
	rec.Recalculate(a.workdayStart)

	if err := a.AttendanceRepository.Update(ctx, *rec); err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to update attendance record: %w", err)
	}

	rec.Revision++
	return mapRecordToResponse(*rec), nil
}

// daySignals assembles the classifier inputs for one user on one date.
func (a *AttendanceServiceImpl) daySignals(ctx context.Context, userID string, date string) (timeclock.DaySignals, error) {
	var sig timeclock.DaySignals

	assignment, err := a.ShiftRepository.GetByUserAndDate(ctx, userID, date)
	if err != nil {
		return sig, fmt.Errorf("failed to get shift assignment: %w", err)
	}
	if assignment != nil && assignment.Status == shift.ShiftStatusApproved && assignment.Type.NonWorking() {
		sig.DayOffShift = true
	}

	approved, err := a.LeaveRequestRepository.ListApprovedInRange(ctx, userID, date, date)
	if err != nil {
		return sig, fmt.Errorf("failed to list approved leave: %w", err)
	}
	for _, req := range approved {
		if timeclock.Covers(req.StartDate, req.EndDate, date) {
			sig.OnLeave = true
			break
		}
	}

	rec, err := a.AttendanceRepository.GetByUserAndDate(ctx, userID, date)
	if err != nil {
		return sig, fmt.Errorf("failed to get attendance record: %w", err)
	}
	if rec != nil {
		sig.HasRecord = true
		sig.ClockIn = rec.ClockIn
		sig.ClockOut = rec.ClockOut
	}

	return sig, nil
}

// GetToday implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetToday(ctx context.Context) (attendance.TodayResponse, error) {
	userID, _, err := identity(ctx)
	if err != nil {
		return attendance.TodayResponse{}, err
	}

	date, _ := a.nowLocal()

	sig, err := a.daySignals(ctx, userID, date)
	if err != nil {
		return attendance.TodayResponse{}, err
	}

	resp := attendance.TodayResponse{
		Date:      date,
		DayStatus: string(timeclock.ClassifyDay(sig)),
	}

	if sig.HasRecord {
		rec, err := a.AttendanceRepository.GetByUserAndDate(ctx, userID, date)
		if err != nil {
			return attendance.TodayResponse{}, fmt.Errorf("failed to get today's record: %w", err)
		}
		if rec != nil {
			mapped := mapRecordToResponse(*rec)
			resp.Record = &mapped
		}
	}

	return resp, nil
}

// DayStatus implements attendance.AttendanceService. Employees may only ask
// about themselves; managers and admins may ask about anyone.
func (a *AttendanceServiceImpl) DayStatus(ctx context.Context, filter attendance.DayStatusFilter) (attendance.DayStatusResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.DayStatusResponse{}, err
	}

	userID, role, err := identity(ctx)
	if err != nil {
		return attendance.DayStatusResponse{}, err
	}
	if role == user.RoleEmployee && filter.UserID != userID {
		return attendance.DayStatusResponse{}, user.ErrManagerAccessRequired
	}

	sig, err := a.daySignals(ctx, filter.UserID, filter.Date)
	if err != nil {
		return attendance.DayStatusResponse{}, err
	}

	return attendance.DayStatusResponse{
		UserID:    filter.UserID,
		Date:      filter.Date,
		DayStatus: string(timeclock.ClassifyDay(sig)),
	}, nil
}

// GetMyAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetMyAttendance(ctx context.Context, filter attendance.MyAttendanceFilter) (attendance.ListAttendanceResponse, error) {
	userID, _, err := identity(ctx)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	records, total, err := a.AttendanceRepository.GetMyAttendance(ctx, userID, filter)
	if err != nil {
		return attendance.ListAttendanceResponse{}, fmt.Errorf("failed to get my attendance: %w", err)
	}

	return buildListResponse(records, total, filter.Page, filter.Limit), nil
}

// ListAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ListAttendance(ctx context.Context, filter attendance.AttendanceFilter) (attendance.ListAttendanceResponse, error) {
	records, total, err := a.AttendanceRepository.List(ctx, filter)
	if err != nil {
		return attendance.ListAttendanceResponse{}, fmt.Errorf("failed to list attendance: %w", err)
	}

	return buildListResponse(records, total, filter.Page, filter.Limit), nil
}

func buildListResponse(records []attendance.AttendanceRecord, total int64, page, limit int) attendance.ListAttendanceResponse {
	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, mapRecordToResponse(rec))
	}

	if limit == 0 {
		limit = 20
	}
	totalPages := int(math.Ceil(float64(total) / float64(limit)))
	showing := fmt.Sprintf("%d-%d of %d", (page-1)*limit+1, min(page*limit, int(total)), total)
	if total == 0 {
		showing = "0 of 0"
	}

	return attendance.ListAttendanceResponse{
		TotalCount: total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
		Showing:    showing,
		Records:    responses,
	}
}

// GetAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetAttendance(ctx context.Context, id string) (attendance.AttendanceResponse, error) {
	rec, err := a.AttendanceRepository.GetByID(ctx, id)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return mapRecordToResponse(rec), nil
}

// UpdateAttendance implements attendance.AttendanceService. This is the
// administrative fix-up: clock values, break pairs, and the explicit status
// override (the only path to the leave and holiday statuses).
func (a *AttendanceServiceImpl) UpdateAttendance(ctx context.Context, req attendance.UpdateAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	rec, err := a.AttendanceRepository.GetByID(ctx, req.ID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if req.ClockIn != nil {
		rec.ClockIn = req.ClockIn
	}
	if req.ClockOut != nil {
		rec.ClockOut = req.ClockOut
	}
	if req.BreakStart != nil {
		rec.BreakStart = *req.BreakStart
	}
	if req.BreakEnd != nil {
		rec.BreakEnd = *req.BreakEnd
	}

	if req.Status != nil {
		rec.Status = timeclock.RecordStatus(*req.Status)
		rec.WorkMinutes = timeclock.WorkMinutes(rec.ClockIn, rec.ClockOut, rec.BreakStart, rec.BreakEnd)
	} else {
		rec.Recalculate(a.workdayStart)
	}

	rec.Revision = req.Revision
	if err := a.AttendanceRepository.Update(ctx, rec); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	updated, err := a.AttendanceRepository.GetByID(ctx, req.ID)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get updated record: %w", err)
	}

	return mapRecordToResponse(updated), nil
}

// DeleteAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) DeleteAttendance(ctx context.Context, id string) error {
	if err := a.AttendanceRepository.Delete(ctx, id); err != nil {
		return err
	}
	return nil
}
