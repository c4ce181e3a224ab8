package report

import (
	"context"
	"fmt"
	"time"

	"github.com/shiftwise/attendance-backend-go/internal/domain/attendance"
	"github.com/shiftwise/attendance-backend-go/internal/domain/leave"
	"github.com/shiftwise/attendance-backend-go/internal/domain/report"
	"github.com/shiftwise/attendance-backend-go/internal/domain/shift"
	"github.com/shiftwise/attendance-backend-go/internal/domain/user"
	"github.com/shiftwise/attendance-backend-go/internal/pkg/database"
	"github.com/shiftwise/attendance-backend-go/internal/pkg/timeclock"
)

type ReportServiceImpl struct {
	db *database.DB
	attendance.AttendanceRepository
	shift.ShiftRepository
	leave.LeaveRequestRepository
	user.UserRepository
	location *time.Location
}

func NewReportService(
	db *database.DB,
	attendanceRepo attendance.AttendanceRepository,
	shiftRepo shift.ShiftRepository,
	leaveRepo leave.LeaveRequestRepository,
	userRepo user.UserRepository,
	location *time.Location,
) report.ReportService {
	return &ReportServiceImpl{
		db:                     db,
		AttendanceRepository:   attendanceRepo,
		ShiftRepository:        shiftRepo,
		LeaveRequestRepository: leaveRepo,
		UserRepository:         userRepo,
		location:               location,
	}
}

// Monthly implements report.ReportService.
func (s *ReportServiceImpl) Monthly(ctx context.Context, filter report.MonthlyReportFilter) (report.MonthlyReportResponse, error) {
	if err := filter.Validate(); err != nil {
		return report.MonthlyReportResponse{}, err
	}

	u, err := s.UserRepository.GetByID(ctx, filter.UserID)
	if err != nil {
		return report.MonthlyReportResponse{}, err
	}

	days, err := timeclock.MonthDays(filter.Month, time.Now().In(s.location))
	if err != nil {
		return report.MonthlyReportResponse{}, fmt.Errorf("failed to expand month: %w", err)
	}
	if len(days) == 0 {
		return report.MonthlyReportResponse{
			UserID:      u.ID,
			UserName:    u.Name,
			Month:       filter.Month,
			TotalTime:   timeclock.FormatWorkTime(0),
			AverageTime: timeclock.FormatWorkTime(0),
			Days:        []report.DailyReportRow{},
		}, nil
	}
	startDate, endDate := days[0], days[len(days)-1]

	records, err := s.AttendanceRepository.ListByUserAndRange(ctx, filter.UserID, startDate, endDate)
	if err != nil {
		return report.MonthlyReportResponse{}, fmt.Errorf("failed to list attendance records: %w", err)
	}
	recordByDate := make(map[string]attendance.AttendanceRecord, len(records))
	for _, rec := range records {
		recordByDate[rec.Date] = rec
	}

	shifts, err := s.ShiftRepository.List(ctx, shift.ShiftFilter{
		UserID:    &filter.UserID,
		StartDate: &startDate,
		EndDate:   &endDate,
	})
	if err != nil {
		return report.MonthlyReportResponse{}, fmt.Errorf("failed to list shift assignments: %w", err)
	}
	dayOffByDate := make(map[string]bool)
	for _, sa := range shifts {
		if sa.Status == shift.ShiftStatusApproved && sa.Type.NonWorking() {
			dayOffByDate[sa.Date] = true
		}
	}

	leaves, err := s.LeaveRequestRepository.ListApprovedInRange(ctx, filter.UserID, startDate, endDate)
	if err != nil {
		return report.MonthlyReportResponse{}, fmt.Errorf("failed to list leave requests: %w", err)
	}

	var (
		rows       []report.DailyReportRow
		dayRecords []timeclock.DayRecord
		leaveDays  int
	)
	for _, date := range days {
		rec, hasRecord := recordByDate[date]
		onLeave := false
		for _, lr := range leaves {
			if timeclock.Covers(lr.StartDate, lr.EndDate, date) {
				onLeave = true
				break
			}
		}

		sig := timeclock.DaySignals{
			DayOffShift: dayOffByDate[date],
			OnLeave:     onLeave,
			HasRecord:   hasRecord,
		}
		if hasRecord {
			sig.ClockIn = rec.ClockIn
			sig.ClockOut = rec.ClockOut
		}
		dayStatus := timeclock.ClassifyDay(sig)

		row := report.DailyReportRow{
			Date:      date,
			DayStatus: string(dayStatus),
			WorkTime:  timeclock.FormatWorkTime(0),
		}
		switch dayStatus {
		case timeclock.DayStatusOnLeave:
			leaveDays++
		case timeclock.DayStatusDayOff:
			// the shift table overrides the record, even a worked one
		default:
			if hasRecord {
				status := string(rec.Status)
				row.Status = &status
				row.ClockIn = rec.ClockIn
				row.ClockOut = rec.ClockOut
				row.WorkTime = timeclock.FormatWorkTime(rec.WorkMinutes)
				dayRecords = append(dayRecords, timeclock.DayRecord{
					Date:        date,
					Status:      rec.Status,
					WorkMinutes: rec.WorkMinutes,
				})
			}
		}
		rows = append(rows, row)
	}

	summary := timeclock.Summarize(dayRecords, leaveDays)

	return report.MonthlyReportResponse{
		UserID:      u.ID,
		UserName:    u.Name,
		Month:       filter.Month,
		Summary:     summary,
		TotalTime:   timeclock.FormatWorkTime(summary.TotalWorkMinutes),
		AverageTime: timeclock.FormatWorkTime(summary.AvgWorkMinutes),
		Days:        rows,
	}, nil
}
