package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Yamaha-Motor-Manufacturing-Corp/ymmcContainerTrackerApi/internal/domain"
)

// UpdateContainer applies input to the container stored at originalKey.
// input.Version must be the version the caller loaded. When the normalized
// item code differs from originalKey (ignoring case) the row is moved to the
// new key; either way exactly one UPDATE audit entry is appended.
func (s *Service) UpdateContainer(ctx context.Context, originalKey string, input domain.ContainerInput) (_ *domain.Container, err error) {
	start := time.Now()
	defer func() { s.observe(domain.AuditActionUpdate, start, err) }()

	actor, err := s.authorize(ctx, domain.CapabilityEdit)
	if err != nil {
		return nil, err
	}

	originalKey = strings.TrimSpace(originalKey)
	in := input.Normalize()
	if err := validateUpdate(originalKey, in); err != nil {
		return nil, err
	}

	if _, err := s.containers.GetByKey(ctx, originalKey); err != nil {
		return nil, classifyReadError("get container", err)
	}

	rename := !domain.SameItemCode(originalKey, in.ItemCode)
	if rename {
		exists, err := s.containers.Exists(ctx, in.ItemCode)
		if err != nil {
			return nil, classifyReadError("check item code", err)
		}
		if exists {
			return nil, fmt.Errorf("container %s: %w", in.ItemCode, domain.ErrAlreadyExists)
		}
	}

	var before, updated *domain.Container
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var txErr error
		before, txErr = s.containers.GetForUpdate(txCtx, originalKey)
		if txErr != nil {
			return fmt.Errorf("reload container: %w", txErr)
		}
		if before.Version != in.Version {
			return fmt.Errorf("container %s loaded at version %d, now %d: %w",
				before.ItemCode, in.Version, before.Version, errVersionMismatch)
		}

		next := in.ToContainer()
		notes := ""
		if rename {
			next.Version = before.Version + 1
			updated, txErr = s.containers.Rekey(txCtx, before.ItemCode, next)
			if txErr != nil {
				return fmt.Errorf("rekey container: %w", txErr)
			}
			notes = fmt.Sprintf("item code changed from %s to %s", before.ItemCode, updated.ItemCode)
		} else {
			next.ItemCode = before.ItemCode
			updated, txErr = s.containers.Update(txCtx, before.ItemCode, next, before.Version)
			if txErr != nil {
				return fmt.Errorf("update container: %w", txErr)
			}
		}

		if _, auditErr := s.audit.RecordUpdate(txCtx, before, updated, actor, notes); auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}
		return nil
	})
	if err != nil {
		return nil, classifyTxError("update container", err)
	}

	s.log.InfoContext(ctx, "container updated",
		slog.String("item_code", updated.ItemCode),
		slog.String("previous_item_code", before.ItemCode),
		slog.Int("version", updated.Version),
		slog.String("username", actor.Username),
	)

	return updated, nil
}

func validateUpdate(originalKey string, in domain.ContainerInput) error {
	var errs []domain.FieldError
	if originalKey == "" {
		errs = append(errs, domain.FieldError{Field: "originalItemCode", Message: "required"})
	}
	if in.Version < 1 {
		errs = append(errs, domain.FieldError{Field: "version", Message: "required"})
	}
	if err := in.Validate(); err != nil {
		var ve *domain.ValidationError
		if !errors.As(err, &ve) {
			return err
		}
		errs = append(errs, ve.Errors...)
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
