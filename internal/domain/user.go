package domain

import "time"

// MaxUsernameLength is the longest username the role and audit tables hold.
const MaxUsernameLength = 50

// UserRoleAssignment maps a username (without domain prefix) to a role.
// Rows are provisioned out-of-band and never written by the catalog.
type UserRoleAssignment struct {
	Username     string
	Role         Role
	DisplayName  *string
	Email        *string
	CreatedAt    time.Time
	LastModified *time.Time
}

// UserDisplayInfo is what the UI shows about the signed-in user.
type UserDisplayInfo struct {
	Username    string
	DisplayName string
	Email       string
	Role        Role
	CanView     bool
	CanEdit     bool
	CanDelete   bool
}
