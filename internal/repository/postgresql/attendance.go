package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/shiftwise/attendance-backend-go/internal/domain/attendance"
	"github.com/shiftwise/attendance-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

const attendanceColumns = `
	a.id, a.user_id, a.date,
	a.clock_in, a.clock_out, a.break_start, a.break_end,
	a.work_minutes, a.status, a.revision,
	a.created_at, a.updated_at
`

func scanAttendance(row pgx.Row, rec *attendance.AttendanceRecord, withUserName bool) error {
	dest := []any{
		&rec.ID, &rec.UserID, &rec.Date,
		&rec.ClockIn, &rec.ClockOut, &rec.BreakStart, &rec.BreakEnd,
		&rec.WorkMinutes, &rec.Status, &rec.Revision,
		&rec.CreatedAt, &rec.UpdatedAt,
	}
	if withUserName {
		dest = append(dest, &rec.UserName)
	}
	return row.Scan(dest...)
}

// Create implements attendance.AttendanceRepository.
func (a *attendanceRepository) Create(ctx context.Context, record attendance.AttendanceRecord) (attendance.AttendanceRecord, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendance_records (
			id, user_id, date, clock_in, clock_out,
			break_start, break_end, work_minutes, status, revision
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		record.ID,
		record.UserID,
		record.Date,
		record.ClockIn,
		record.ClockOut,
		record.BreakStart,
		record.BreakEnd,
		record.WorkMinutes,
		record.Status,
		record.Revision,
	).Scan(&record.CreatedAt, &record.UpdatedAt)
	if err != nil {
		return attendance.AttendanceRecord{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return record, nil
}

// GetByID implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByID(ctx context.Context, id string) (attendance.AttendanceRecord, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `, u.name AS user_name
		FROM attendance_records a
		LEFT JOIN users u ON u.id = a.user_id
		WHERE a.id = $1
	`

	var rec attendance.AttendanceRecord
	err := scanAttendance(q.QueryRow(ctx, query, id), &rec, true)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.AttendanceRecord{}, attendance.ErrRecordNotFound
		}
		return attendance.AttendanceRecord{}, fmt.Errorf("failed to get attendance record: %w", err)
	}

	return rec, nil
}

// GetByUserAndDate implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByUserAndDate(ctx context.Context, userID string, date string) (*attendance.AttendanceRecord, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records a
		WHERE a.user_id = $1
		  AND a.date = $2
		LIMIT 1
	`

	var rec attendance.AttendanceRecord
	err := scanAttendance(q.QueryRow(ctx, query, userID, date), &rec, false)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attendance record by date: %w", err)
	}

	return &rec, nil
}

// Update implements attendance.AttendanceRepository. The UPDATE matches on
// both id and revision; a row that exists but no longer carries the caller's
// revision was changed concurrently and fails with ErrRevisionConflict.
func (a *attendanceRepository) Update(ctx context.Context, record attendance.AttendanceRecord) error {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendance_records
		SET clock_in = $1,
			clock_out = $2,
			break_start = $3,
			break_end = $4,
			work_minutes = $5,
			status = $6,
			revision = revision + 1,
			updated_at = NOW()
		WHERE id = $7
		  AND revision = $8
	`

	tag, err := q.Exec(ctx, query,
		record.ClockIn,
		record.ClockOut,
		record.BreakStart,
		record.BreakEnd,
		record.WorkMinutes,
		record.Status,
		record.ID,
		record.Revision,
	)
	if err != nil {
		return fmt.Errorf("failed to update attendance record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		var exists bool
		checkQuery := `SELECT EXISTS (SELECT 1 FROM attendance_records WHERE id = $1)`
		if err := q.QueryRow(ctx, checkQuery, record.ID).Scan(&exists); err != nil {
			return fmt.Errorf("failed to check attendance record: %w", err)
		}
		if exists {
			return attendance.ErrRevisionConflict
		}
		return attendance.ErrRecordNotFound
	}

	return nil
}

func buildAttendanceWhere(filter attendance.AttendanceFilter) (string, []any) {
	where := "1=1"
	var args []any
	argIdx := 1

	if filter.UserID != nil && *filter.UserID != "" {
		where += fmt.Sprintf(" AND a.user_id = $%d", argIdx)
		args = append(args, *filter.UserID)
		argIdx++
	}
	if filter.UserName != nil && *filter.UserName != "" {
		where += fmt.Sprintf(" AND u.name ILIKE $%d", argIdx)
		args = append(args, "%"+*filter.UserName+"%")
		argIdx++
	}
	if filter.Date != nil && *filter.Date != "" {
		where += fmt.Sprintf(" AND a.date = $%d", argIdx)
		args = append(args, *filter.Date)
		argIdx++
	}
	if filter.StartDate != nil && *filter.StartDate != "" {
		where += fmt.Sprintf(" AND a.date >= $%d", argIdx)
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		where += fmt.Sprintf(" AND a.date <= $%d", argIdx)
		args = append(args, *filter.EndDate)
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		where += fmt.Sprintf(" AND a.status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}

	return where, args
}

// List implements attendance.AttendanceRepository.
func (a *attendanceRepository) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.AttendanceRecord, int64, error) {
	q := GetQuerier(ctx, a.db)

	where, args := buildAttendanceWhere(filter)

	countQuery := `
		SELECT COUNT(*)
		FROM attendance_records a
		LEFT JOIN users u ON u.id = a.user_id
		WHERE ` + where
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendance records: %w", err)
	}

	orderByField := "a.date"
	switch filter.SortBy {
	case "clock_in":
		orderByField = "a.clock_in"
	case "clock_out":
		orderByField = "a.clock_out"
	case "status":
		orderByField = "a.status"
	case "user_name":
		orderByField = "u.name"
	}
	sortOrder := "DESC"
	if strings.ToLower(filter.SortOrder) == "asc" {
		sortOrder = "ASC"
	}

	limit := filter.Limit
	if limit == 0 {
		limit = 20
	}
	offset := (filter.Page - 1) * limit

	selectQuery := fmt.Sprintf(`
		SELECT `+attendanceColumns+`, u.name AS user_name
		FROM attendance_records a
		LEFT JOIN users u ON u.id = a.user_id
		WHERE %s
		ORDER BY %s %s, a.user_id ASC
		LIMIT $%d OFFSET $%d
	`, where, orderByField, sortOrder, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.AttendanceRecord
	for rows.Next() {
		var rec attendance.AttendanceRecord
		if err := scanAttendance(rows, &rec, true); err != nil {
			return nil, 0, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}

	return records, total, nil
}

// GetMyAttendance implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetMyAttendance(ctx context.Context, userID string, filter attendance.MyAttendanceFilter) ([]attendance.AttendanceRecord, int64, error) {
	return a.List(ctx, attendance.AttendanceFilter{
		UserID:    &userID,
		Date:      filter.Date,
		StartDate: filter.StartDate,
		EndDate:   filter.EndDate,
		Status:    filter.Status,
		Page:      filter.Page,
		Limit:     filter.Limit,
		SortOrder: filter.SortOrder,
	})
}

// ListByUserAndRange implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListByUserAndRange(ctx context.Context, userID string, startDate, endDate string) ([]attendance.AttendanceRecord, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records a
		WHERE a.user_id = $1
		  AND a.date >= $2
		  AND a.date <= $3
		ORDER BY a.date ASC
	`

	rows, err := q.Query(ctx, query, userID, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance range: %w", err)
	}
	defer rows.Close()

	var records []attendance.AttendanceRecord
	for rows.Next() {
		var rec attendance.AttendanceRecord
		if err := scanAttendance(rows, &rec, false); err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}

	return records, nil
}

// Delete implements attendance.AttendanceRepository.
func (a *attendanceRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, a.db)

	tag, err := q.Exec(ctx, `DELETE FROM attendance_records WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete attendance record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrRecordNotFound
	}

	return nil
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}
