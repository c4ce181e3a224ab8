package attendance

import "errors"

// Attendance domain errors
var (
	// Clock state machine errors
	ErrAlreadyClockedIn  = errors.New("today's record already exists")
	ErrNotClockedIn      = errors.New("not clocked in")
	ErrAlreadyClockedOut = errors.New("already clocked out")
	ErrNotOnBreak        = errors.New("not on break")
	ErrAlreadyOnBreak    = errors.New("already on break")
	ErrBreakStillOpen    = errors.New("finish your break first")

	// General errors
	ErrRecordNotFound   = errors.New("attendance record not found")
	ErrRevisionConflict = errors.New("attendance record was modified by someone else")
)
