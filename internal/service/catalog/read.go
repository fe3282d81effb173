package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/Yamaha-Motor-Manufacturing-Corp/ymmcContainerTrackerApi/internal/domain"
)

// GetContainer returns the container at key, ignoring case.
// Returns domain.ErrNotFound if there is none.
func (s *Service) GetContainer(ctx context.Context, key string) (*domain.Container, error) {
	if _, err := s.authorize(ctx, domain.CapabilityView); err != nil {
		return nil, err
	}
	return s.get(ctx, key)
}

func (s *Service) get(ctx context.Context, key string) (*domain.Container, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, fmt.Errorf("container: %w", domain.ErrNotFound)
	}
	c, err := s.containers.GetByKey(ctx, key)
	if err != nil {
		return nil, classifyReadError("get container", err)
	}
	return c, nil
}

// ViewContainer is GetContainer for a detail page: when view recording is
// enabled it also appends a VIEW audit entry.
func (s *Service) ViewContainer(ctx context.Context, key string) (*domain.Container, error) {
	actor, err := s.authorize(ctx, domain.CapabilityView)
	if err != nil {
		return nil, err
	}

	c, err := s.get(ctx, key)
	if err != nil {
		return nil, err
	}
	if !s.opts.RecordViews {
		return c, nil
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, auditErr := s.audit.RecordView(txCtx, c.ItemCode, actor); auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}
		return nil
	})
	if err != nil {
		return nil, classifyTxError("view container", err)
	}
	return c, nil
}

// ListContainers returns every catalog entry ordered by item code.
func (s *Service) ListContainers(ctx context.Context) ([]domain.Container, error) {
	if _, err := s.authorize(ctx, domain.CapabilityView); err != nil {
		return nil, err
	}
	list, err := s.containers.List(ctx)
	if err != nil {
		return nil, classifyReadError("list containers", err)
	}
	return list, nil
}

// GetHistory returns audit entries whose item code contains key.
func (s *Service) GetHistory(ctx context.Context, key string) ([]domain.AuditEntry, error) {
	if _, err := s.authorize(ctx, domain.CapabilityView); err != nil {
		return nil, err
	}
	entries, err := s.audit.HistoryOf(ctx, key)
	if err != nil {
		return nil, classifyReadError("container history", err)
	}
	return entries, nil
}

// QueryAuditLogs returns audit entries matching f, newest first.
func (s *Service) QueryAuditLogs(ctx context.Context, f domain.AuditFilter) ([]domain.AuditEntry, error) {
	if _, err := s.authorize(ctx, domain.CapabilityView); err != nil {
		return nil, err
	}
	entries, err := s.audit.Query(ctx, f)
	if err != nil {
		return nil, classifyReadError("query audit log", err)
	}
	return entries, nil
}

// RecentActivity returns the newest count audit entries.
func (s *Service) RecentActivity(ctx context.Context, count int) ([]domain.AuditEntry, error) {
	if _, err := s.authorize(ctx, domain.CapabilityView); err != nil {
		return nil, err
	}
	entries, err := s.audit.Recent(ctx, count)
	if err != nil {
		return nil, classifyReadError("recent activity", err)
	}
	return entries, nil
}

// VerifyAuditChain recomputes the audit hash chain. Admin only.
func (s *Service) VerifyAuditChain(ctx context.Context) (domain.ChainReport, error) {
	if _, err := s.authorize(ctx, domain.CapabilityVerify); err != nil {
		return domain.ChainReport{}, err
	}
	report, err := s.audit.VerifyChain(ctx)
	if err != nil {
		return domain.ChainReport{}, classifyReadError("verify audit chain", err)
	}
	return report, nil
}
