package audittrail

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Yamaha-Motor-Manufacturing-Corp/ymmcContainerTrackerApi/internal/domain"
)

// HistoryOf returns every entry whose item code contains itemCode, ignoring
// case, newest first. Substring matching keeps renamed items that share a
// root in one history.
func (s *Service) HistoryOf(ctx context.Context, itemCode string) ([]domain.AuditEntry, error) {
	entries, err := s.store.History(ctx, strings.TrimSpace(itemCode))
	if err != nil {
		return nil, fmt.Errorf("audit history: %w", err)
	}
	return entries, nil
}

// Query returns entries matching f, newest first. Limit defaults to the
// configured page size and is capped at the configured maximum.
func (s *Service) Query(ctx context.Context, f domain.AuditFilter) ([]domain.AuditEntry, error) {
	var errs []domain.FieldError
	if f.Action != nil && !f.Action.IsValid() {
		errs = append(errs, domain.FieldError{Field: "action", Message: "must be one of CREATE, UPDATE, DELETE, VIEW"})
	}
	if f.Start != nil && f.End != nil && f.Start.After(*f.End) {
		errs = append(errs, domain.FieldError{Field: "startDate", Message: "must not be after end date"})
	}
	if len(errs) > 0 {
		return nil, domain.NewValidationErrors(errs)
	}

	f.Username = strings.TrimSpace(f.Username)
	f.ItemCode = strings.TrimSpace(f.ItemCode)
	f.Limit = s.clampLimit(f.Limit, s.limits.DefaultPageSize)

	entries, err := s.store.Query(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("audit query: %w", err)
	}
	return entries, nil
}

// Recent returns the newest count entries. A non-positive count uses the
// configured default.
func (s *Service) Recent(ctx context.Context, count int) ([]domain.AuditEntry, error) {
	entries, err := s.store.Recent(ctx, s.clampLimit(count, s.limits.RecentCount))
	if err != nil {
		return nil, fmt.Errorf("audit recent: %w", err)
	}
	return entries, nil
}

// VerifyChain recomputes the hash chain over the whole log.
func (s *Service) VerifyChain(ctx context.Context) (domain.ChainReport, error) {
	report, err := s.store.Verify(ctx)
	if err != nil {
		return domain.ChainReport{}, fmt.Errorf("audit verify: %w", err)
	}

	if report.Valid {
		s.log.InfoContext(ctx, "audit chain verified", slog.Int("checked", report.Checked))
		return report, nil
	}

	attrs := []any{slog.Int("checked", report.Checked)}
	if report.BrokenAt != nil {
		attrs = append(attrs, slog.Int64("broken_at", *report.BrokenAt))
	}
	s.log.WarnContext(ctx, "audit chain broken", attrs...)
	return report, nil
}
