// Package access resolves users to roles and answers capability questions.
package access

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/Yamaha-Motor-Manufacturing-Corp/ymmcContainerTrackerApi/internal/domain"
)

// roleStore defines the role lookup needed by the access service.
type roleStore interface {
	GetByUsername(ctx context.Context, username string) (*domain.UserRoleAssignment, error)
}

// Service is the single place where permission decisions are made.
type Service struct {
	log         *slog.Logger
	roles       roleStore
	authEnabled bool
}

// NewService creates a new access service. When authEnabled is false every
// capability check passes regardless of role.
func NewService(logger *slog.Logger, roles roleStore, authEnabled bool) *Service {
	return &Service{
		log:         logger.With("service", "access"),
		roles:       roles,
		authEnabled: authEnabled,
	}
}

// RoleOf returns the role assigned to username. A blank username, a missing
// row or a failing store all yield RoleNone; it never returns an error.
func (s *Service) RoleOf(ctx context.Context, username string) domain.Role {
	a, ok := s.lookup(ctx, username)
	if !ok {
		return domain.RoleNone
	}
	return a.Role
}

func (s *Service) lookup(ctx context.Context, username string) (*domain.UserRoleAssignment, bool) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, false
	}

	a, err := s.roles.GetByUsername(ctx, username)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.log.WarnContext(ctx, "role lookup failed",
				slog.String("username", username),
				slog.String("error", err.Error()),
			)
		}
		return nil, false
	}
	return a, true
}

// CanView reports whether role may read the catalog and audit log.
func (s *Service) CanView(role domain.Role) bool {
	return s.Can(role, domain.CapabilityView)
}

// CanEdit reports whether role may create and update containers.
func (s *Service) CanEdit(role domain.Role) bool {
	return s.Can(role, domain.CapabilityEdit)
}

// CanDelete reports whether role may delete containers.
func (s *Service) CanDelete(role domain.Role) bool {
	return s.Can(role, domain.CapabilityDelete)
}

// Can reports whether role grants c.
func (s *Service) Can(role domain.Role, c domain.Capability) bool {
	if !s.authEnabled {
		return true
	}
	return role.Allows(c)
}

// Authorize resolves the role of username once and checks it against c.
// The resolved role is returned even on denial so callers can log it.
func (s *Service) Authorize(ctx context.Context, username string, c domain.Capability) (domain.Role, error) {
	role := s.RoleOf(ctx, username)
	if !s.Can(role, c) {
		s.log.InfoContext(ctx, "permission denied",
			slog.String("username", username),
			slog.String("role", role.String()),
			slog.String("capability", c.String()),
		)
		return role, domain.ErrForbidden
	}
	return role, nil
}

// UserInfo returns display data and capability flags for username.
// Display name falls back to the username.
func (s *Service) UserInfo(ctx context.Context, username string) domain.UserDisplayInfo {
	info := domain.UserDisplayInfo{
		Username:    strings.TrimSpace(username),
		DisplayName: strings.TrimSpace(username),
	}

	if a, ok := s.lookup(ctx, username); ok {
		info.Role = a.Role
		if a.DisplayName != nil && strings.TrimSpace(*a.DisplayName) != "" {
			info.DisplayName = *a.DisplayName
		}
		if a.Email != nil {
			info.Email = *a.Email
		}
	}

	info.CanView = s.CanView(info.Role)
	info.CanEdit = s.CanEdit(info.Role)
	info.CanDelete = s.CanDelete(info.Role)
	return info
}
