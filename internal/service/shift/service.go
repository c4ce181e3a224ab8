package shift

import (
	"context"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/shiftwise/attendance-backend-go/internal/domain/shift"
	"github.com/shiftwise/attendance-backend-go/internal/domain/user"
	"github.com/shiftwise/attendance-backend-go/internal/pkg/database"
)

type ShiftServiceImpl struct {
	db *database.DB
	shift.ShiftRepository
}

func NewShiftService(db *database.DB, shiftRepo shift.ShiftRepository) shift.ShiftService {
	return &ShiftServiceImpl{
		db:              db,
		ShiftRepository: shiftRepo,
	}
}

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

func mapShiftToResponse(s shift.ShiftAssignment) shift.ShiftResponse {
	var userName string
	if s.UserName != nil {
		userName = *s.UserName
	}

	return shift.ShiftResponse{
		ID:        s.ID,
		UserID:    s.UserID,
		UserName:  userName,
		Date:      s.Date,
		Type:      string(s.Type),
		StartTime: s.StartTime,
		EndTime:   s.EndTime,
		Status:    string(s.Status),
	}
}

// UpsertShift implements shift.ShiftService. The cell's previous content, if
// any, is replaced; admin-created assignments are approved immediately.
func (s *ShiftServiceImpl) UpsertShift(ctx context.Context, req shift.UpsertShiftRequest) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}

	assignment := shift.ShiftAssignment{
		ID:        uuid.NewString(),
		UserID:    req.UserID,
		Date:      req.Date,
		Type:      shift.ShiftType(req.Type),
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Status:    shift.ShiftStatusApproved,
	}

	// Working shift types fall back to their default window.
	if assignment.StartTime == nil || assignment.EndTime == nil {
		if start, end, ok := assignment.Type.DefaultWindow(); ok {
			if assignment.StartTime == nil {
				assignment.StartTime = &start
			}
			if assignment.EndTime == nil {
				assignment.EndTime = &end
			}
		}
	}

	saved, err := s.ShiftRepository.Upsert(ctx, assignment)
	if err != nil {
		return shift.ShiftResponse{}, fmt.Errorf("failed to upsert shift assignment: %w", err)
	}

	return mapShiftToResponse(saved), nil
}

// ListShifts implements shift.ShiftService. Employees are scoped to their own
// row regardless of the requested filter.
func (s *ShiftServiceImpl) ListShifts(ctx context.Context, filter shift.ShiftFilter) (shift.ListShiftsResponse, error) {
	if err := filter.Validate(); err != nil {
		return shift.ListShiftsResponse{}, err
	}

	userID, role, err := identity(ctx)
	if err != nil {
		return shift.ListShiftsResponse{}, err
	}
	if role == user.RoleEmployee {
		filter.UserID = &userID
	}

	assignments, err := s.ShiftRepository.List(ctx, filter)
	if err != nil {
		return shift.ListShiftsResponse{}, fmt.Errorf("failed to list shift assignments: %w", err)
	}

	responses := make([]shift.ShiftResponse, 0, len(assignments))
	for _, a := range assignments {
		responses = append(responses, mapShiftToResponse(a))
	}

	return shift.ListShiftsResponse{Shifts: responses}, nil
}

// DeleteShift implements shift.ShiftService.
func (s *ShiftServiceImpl) DeleteShift(ctx context.Context, id string) error {
	if err := s.ShiftRepository.Delete(ctx, id); err != nil {
		return err
	}
	return nil
}
