package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Yamaha-Motor-Manufacturing-Corp/ymmcContainerTrackerApi/internal/domain"
)

// DeleteContainer removes the container at key and appends its DELETE audit
// entry atomically.
func (s *Service) DeleteContainer(ctx context.Context, key string) (err error) {
	start := time.Now()
	defer func() { s.observe(domain.AuditActionDelete, start, err) }()

	actor, err := s.authorize(ctx, domain.CapabilityDelete)
	if err != nil {
		return err
	}

	key = strings.TrimSpace(key)
	if key == "" {
		return domain.NewValidationError("itemCode", "required")
	}

	if _, err := s.containers.GetByKey(ctx, key); err != nil {
		return classifyReadError("get container", err)
	}

	var before *domain.Container
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var txErr error
		before, txErr = s.containers.GetForUpdate(txCtx, key)
		if txErr != nil {
			return fmt.Errorf("reload container: %w", txErr)
		}

		if deleteErr := s.containers.Delete(txCtx, before.ItemCode); deleteErr != nil {
			return fmt.Errorf("delete container: %w", deleteErr)
		}

		if _, auditErr := s.audit.RecordDelete(txCtx, before, actor); auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}
		return nil
	})
	if err != nil {
		return classifyTxError("delete container", err)
	}

	s.log.InfoContext(ctx, "container deleted",
		slog.String("item_code", before.ItemCode),
		slog.String("username", actor.Username),
	)

	return nil
}
