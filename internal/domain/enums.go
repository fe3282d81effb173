package domain

import "strings"

// AuditAction represents the kind of event recorded in the audit log.
type AuditAction string

const (
	AuditActionCreate AuditAction = "CREATE"
	AuditActionUpdate AuditAction = "UPDATE"
	AuditActionDelete AuditAction = "DELETE"
	AuditActionView   AuditAction = "VIEW"
)

func (a AuditAction) String() string { return string(a) }

func (a AuditAction) IsValid() bool {
	switch a {
	case AuditActionCreate, AuditActionUpdate, AuditActionDelete, AuditActionView:
		return true
	}
	return false
}

// Role is the authorization level of a user. Roles are totally ordered:
// RoleNone < RoleViewer < RoleEditor < RoleAdmin.
type Role int

const (
	RoleNone Role = iota
	RoleViewer
	RoleEditor
	RoleAdmin
)

var roleNames = [...]string{
	RoleNone:   "None",
	RoleViewer: "Viewer",
	RoleEditor: "Editor",
	RoleAdmin:  "Admin",
}

func (r Role) String() string {
	if !r.IsValid() {
		return roleNames[RoleNone]
	}
	return roleNames[r]
}

func (r Role) IsValid() bool {
	return r >= RoleNone && r <= RoleAdmin
}

// AtLeast reports whether r grants everything min grants.
func (r Role) AtLeast(min Role) bool {
	return r.IsValid() && r >= min
}

// ParseRole converts a stored role name into a Role. Matching is
// case-insensitive; anything unrecognised is RoleNone.
func ParseRole(s string) Role {
	s = strings.TrimSpace(s)
	for i, name := range roleNames {
		if strings.EqualFold(name, s) {
			return Role(i)
		}
	}
	return RoleNone
}

// Capability is an operation class gated by role.
type Capability string

const (
	CapabilityView   Capability = "view"
	CapabilityEdit   Capability = "edit"
	CapabilityDelete Capability = "delete"
	CapabilityVerify Capability = "verify"
)

func (c Capability) String() string { return string(c) }

// MinRole returns the lowest role holding the capability. Unknown
// capabilities require a role above Admin and are therefore never granted.
func (c Capability) MinRole() Role {
	switch c {
	case CapabilityView:
		return RoleViewer
	case CapabilityEdit:
		return RoleEditor
	case CapabilityDelete, CapabilityVerify:
		return RoleAdmin
	}
	return RoleAdmin + 1
}

// Allows reports whether role r holds capability c.
func (r Role) Allows(c Capability) bool {
	return r.AtLeast(c.MinRole())
}
