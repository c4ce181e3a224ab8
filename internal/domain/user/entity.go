package user

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"    // Full access, approves leave, edits shift table
	RoleManager  Role = "manager"  // Can view all attendance and reports
	RoleEmployee Role = "employee" // Regular employee
)

var RoleValues = []string{
	string(RoleAdmin),
	string(RoleManager),
	string(RoleEmployee),
}

type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin checks if user is an administrator
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsManager checks if user is manager or admin
func (u *User) IsManager() bool {
	return u.Role == RoleManager || u.Role == RoleAdmin
}

// CanDecideLeave checks if user can approve or reject leave requests
func (u *User) CanDecideLeave() bool {
	return u.IsAdmin()
}
