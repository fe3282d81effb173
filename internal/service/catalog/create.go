package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Yamaha-Motor-Manufacturing-Corp/ymmcContainerTrackerApi/internal/domain"
)

// CreateContainer normalizes and validates input, then inserts the container
// and its CREATE audit entry atomically.
func (s *Service) CreateContainer(ctx context.Context, input domain.ContainerInput) (_ *domain.Container, err error) {
	start := time.Now()
	defer func() { s.observe(domain.AuditActionCreate, start, err) }()

	actor, err := s.authorize(ctx, domain.CapabilityEdit)
	if err != nil {
		return nil, err
	}

	in := input.Normalize()
	if err := in.Validate(); err != nil {
		return nil, err
	}

	exists, err := s.containers.Exists(ctx, in.ItemCode)
	if err != nil {
		return nil, classifyReadError("check item code", err)
	}
	if exists {
		return nil, fmt.Errorf("container %s: %w", in.ItemCode, domain.ErrAlreadyExists)
	}

	var created *domain.Container
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		created, createErr = s.containers.Create(txCtx, in.ToContainer())
		if createErr != nil {
			return fmt.Errorf("create container: %w", createErr)
		}

		if _, auditErr := s.audit.RecordCreate(txCtx, created, actor); auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}
		return nil
	})
	if err != nil {
		return nil, classifyTxError("create container", err)
	}

	s.log.InfoContext(ctx, "container created",
		slog.String("item_code", created.ItemCode),
		slog.String("username", actor.Username),
	)

	return created, nil
}
