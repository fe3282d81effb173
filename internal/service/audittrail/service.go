// Package audittrail builds audit entries for catalog mutations and serves
// audit log queries. Entries are only ever appended.
package audittrail

import (
	"context"
	"log/slog"
	"time"

	"github.com/Yamaha-Motor-Manufacturing-Corp/ymmcContainerTrackerApi/internal/domain"
)

// auditStore is the append-only store behind the audit trail.
type auditStore interface {
	Append(ctx context.Context, e domain.AuditEntry) (*domain.AuditEntry, error)
	Query(ctx context.Context, f domain.AuditFilter) ([]domain.AuditEntry, error)
	History(ctx context.Context, itemCode string) ([]domain.AuditEntry, error)
	Recent(ctx context.Context, limit int) ([]domain.AuditEntry, error)
	Verify(ctx context.Context) (domain.ChainReport, error)
}

// Limits bounds audit log reads.
type Limits struct {
	DefaultPageSize int
	MaxPageSize     int
	RecentCount     int
}

// DefaultLimits are used when a Limits field is zero.
var DefaultLimits = Limits{
	DefaultPageSize: 100,
	MaxPageSize:     1000,
	RecentCount:     50,
}

// Service records and reads audit entries.
type Service struct {
	log    *slog.Logger
	store  auditStore
	limits Limits
	now    func() time.Time
}

// NewService creates a new audit trail service.
func NewService(logger *slog.Logger, store auditStore, limits Limits) *Service {
	if limits.DefaultPageSize <= 0 {
		limits.DefaultPageSize = DefaultLimits.DefaultPageSize
	}
	if limits.MaxPageSize <= 0 {
		limits.MaxPageSize = DefaultLimits.MaxPageSize
	}
	if limits.RecentCount <= 0 {
		limits.RecentCount = DefaultLimits.RecentCount
	}
	return &Service{
		log:    logger.With("service", "audittrail"),
		store:  store,
		limits: limits,
		now:    time.Now,
	}
}

// clampLimit applies the default when n is not positive and caps it at the
// configured maximum.
func (s *Service) clampLimit(n, def int) int {
	if n <= 0 {
		n = def
	}
	if n > s.limits.MaxPageSize {
		n = s.limits.MaxPageSize
	}
	return n
}
