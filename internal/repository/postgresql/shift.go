package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shiftwise/attendance-backend-go/internal/domain/shift"
	"github.com/shiftwise/attendance-backend-go/internal/pkg/database"
)

type shiftRepository struct {
	db *database.DB
}

// Upsert implements shift.ShiftRepository. The shift table holds at most one
// assignment per (user, date); writing to an occupied cell replaces it.
func (s *shiftRepository) Upsert(ctx context.Context, assignment shift.ShiftAssignment) (shift.ShiftAssignment, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		INSERT INTO shift_assignments (
			id, user_id, date, type, start_time, end_time, status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7
		)
		ON CONFLICT (user_id, date) DO UPDATE
		SET type = EXCLUDED.type,
			start_time = EXCLUDED.start_time,
			end_time = EXCLUDED.end_time,
			status = EXCLUDED.status,
			updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		assignment.ID,
		assignment.UserID,
		assignment.Date,
		assignment.Type,
		assignment.StartTime,
		assignment.EndTime,
		assignment.Status,
	).Scan(&assignment.ID, &assignment.CreatedAt, &assignment.UpdatedAt)
	if err != nil {
		return shift.ShiftAssignment{}, fmt.Errorf("failed to upsert shift assignment: %w", err)
	}

	return assignment, nil
}

// GetByUserAndDate implements shift.ShiftRepository.
func (s *shiftRepository) GetByUserAndDate(ctx context.Context, userID string, date string) (*shift.ShiftAssignment, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT id, user_id, date, type, start_time, end_time, status, created_at, updated_at
		FROM shift_assignments
		WHERE user_id = $1
		  AND date = $2
		LIMIT 1
	`

	var sa shift.ShiftAssignment
	err := q.QueryRow(ctx, query, userID, date).Scan(
		&sa.ID, &sa.UserID, &sa.Date, &sa.Type, &sa.StartTime, &sa.EndTime, &sa.Status,
		&sa.CreatedAt, &sa.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get shift assignment: %w", err)
	}

	return &sa, nil
}

// List implements shift.ShiftRepository.
func (s *shiftRepository) List(ctx context.Context, filter shift.ShiftFilter) ([]shift.ShiftAssignment, error) {
	q := GetQuerier(ctx, s.db)

	where := "1=1"
	var args []any
	argIdx := 1

	if filter.UserID != nil && *filter.UserID != "" {
		where += fmt.Sprintf(" AND s.user_id = $%d", argIdx)
		args = append(args, *filter.UserID)
		argIdx++
	}
	if filter.StartDate != nil && *filter.StartDate != "" {
		where += fmt.Sprintf(" AND s.date >= $%d", argIdx)
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		where += fmt.Sprintf(" AND s.date <= $%d", argIdx)
		args = append(args, *filter.EndDate)
		argIdx++
	}

	query := fmt.Sprintf(`
		SELECT s.id, s.user_id, s.date, s.type, s.start_time, s.end_time, s.status,
			   s.created_at, s.updated_at,
			   u.name AS user_name
		FROM shift_assignments s
		LEFT JOIN users u ON u.id = s.user_id
		WHERE %s
		ORDER BY s.date ASC, u.name ASC
	`, where)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query shift assignments: %w", err)
	}
	defer rows.Close()

	var assignments []shift.ShiftAssignment
	for rows.Next() {
		var sa shift.ShiftAssignment
		err := rows.Scan(
			&sa.ID, &sa.UserID, &sa.Date, &sa.Type, &sa.StartTime, &sa.EndTime, &sa.Status,
			&sa.CreatedAt, &sa.UpdatedAt,
			&sa.UserName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan shift assignment: %w", err)
		}
		assignments = append(assignments, sa)
	}

	return assignments, nil
}

// Delete implements shift.ShiftRepository.
func (s *shiftRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, s.db)

	tag, err := q.Exec(ctx, `DELETE FROM shift_assignments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete shift assignment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shift.ErrShiftNotFound
	}

	return nil
}

func NewShiftRepository(db *database.DB) shift.ShiftRepository {
	return &shiftRepository{db: db}
}
