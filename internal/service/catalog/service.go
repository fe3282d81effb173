// Package catalog coordinates catalog reads and writes. Every accepted write
// applies the mutation and appends its audit entry in one transaction.
package catalog

import (
	"context"
	"log/slog"
	"time"

	"github.com/Yamaha-Motor-Manufacturing-Corp/ymmcContainerTrackerApi/internal/domain"
	"github.com/Yamaha-Motor-Manufacturing-Corp/ymmcContainerTrackerApi/pkg/ctxutil"
)

type containerRepo interface {
	Exists(ctx context.Context, itemCode string) (bool, error)
	GetByKey(ctx context.Context, itemCode string) (*domain.Container, error)
	GetForUpdate(ctx context.Context, itemCode string) (*domain.Container, error)
	List(ctx context.Context) ([]domain.Container, error)
	Create(ctx context.Context, c domain.Container) (*domain.Container, error)
	Update(ctx context.Context, itemCode string, c domain.Container, expectedVersion int) (*domain.Container, error)
	Rekey(ctx context.Context, oldItemCode string, c domain.Container) (*domain.Container, error)
	Delete(ctx context.Context, itemCode string) error
}

type auditTrail interface {
	RecordCreate(ctx context.Context, after *domain.Container, actor domain.Actor) (*domain.AuditEntry, error)
	RecordUpdate(ctx context.Context, before, after *domain.Container, actor domain.Actor, notes string) (*domain.AuditEntry, error)
	RecordDelete(ctx context.Context, before *domain.Container, actor domain.Actor) (*domain.AuditEntry, error)
	RecordView(ctx context.Context, itemCode string, actor domain.Actor) (*domain.AuditEntry, error)
	HistoryOf(ctx context.Context, itemCode string) ([]domain.AuditEntry, error)
	Query(ctx context.Context, f domain.AuditFilter) ([]domain.AuditEntry, error)
	Recent(ctx context.Context, count int) ([]domain.AuditEntry, error)
	VerifyChain(ctx context.Context) (domain.ChainReport, error)
}

type accessControl interface {
	Authorize(ctx context.Context, username string, c domain.Capability) (domain.Role, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type mutationObserver interface {
	ObserveMutation(action domain.AuditAction, err error, elapsed time.Duration)
}

// Options tune optional behaviour of the coordinator.
type Options struct {
	// RecordViews makes ViewContainer append a VIEW audit entry.
	RecordViews bool
}

// Service is the transaction coordinator for the container catalog.
type Service struct {
	log        *slog.Logger
	containers containerRepo
	audit      auditTrail
	access     accessControl
	tx         txManager
	metrics    mutationObserver
	opts       Options
}

// NewService creates a new catalog service. metrics may be nil.
func NewService(
	logger *slog.Logger,
	containers containerRepo,
	audit auditTrail,
	access accessControl,
	tx txManager,
	metrics mutationObserver,
	opts Options,
) *Service {
	if metrics == nil {
		metrics = noopObserver{}
	}
	return &Service{
		log:        logger.With("service", "catalog"),
		containers: containers,
		audit:      audit,
		access:     access,
		tx:         tx,
		metrics:    metrics,
		opts:       opts,
	}
}

type noopObserver struct{}

func (noopObserver) ObserveMutation(domain.AuditAction, error, time.Duration) {}

// authorize resolves the acting user from ctx and checks c. The returned
// actor carries the role and client metadata for auditing.
func (s *Service) authorize(ctx context.Context, c domain.Capability) (domain.Actor, error) {
	username, ok := ctxutil.UsernameFromCtx(ctx)
	if !ok {
		return domain.Actor{}, domain.ErrUnauthorized
	}

	role, err := s.access.Authorize(ctx, username, c)
	if err != nil {
		return domain.Actor{}, err
	}

	meta := ctxutil.ClientMetaFromCtx(ctx)
	return domain.Actor{
		Username:    username,
		Role:        role,
		ClientIP:    meta.IP,
		ClientAgent: meta.UserAgent,
	}, nil
}

// observe records the outcome of a mutation started at start.
func (s *Service) observe(action domain.AuditAction, start time.Time, err error) {
	s.metrics.ObserveMutation(action, err, time.Since(start))
}
