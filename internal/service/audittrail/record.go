package audittrail

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/Yamaha-Motor-Manufacturing-Corp/ymmcContainerTrackerApi/internal/domain"
)

// RecordCreate appends a CREATE entry for after. It must be called inside
// the transaction that inserted the row.
func (s *Service) RecordCreate(ctx context.Context, after *domain.Container, actor domain.Actor) (*domain.AuditEntry, error) {
	if after == nil {
		return nil, fmt.Errorf("record create: nil container")
	}
	e := s.newEntry(domain.AuditActionCreate, after.ItemCode, actor)
	e.NewValues = after.Snapshot()
	return s.store.Append(ctx, e)
}

// RecordUpdate appends an UPDATE entry describing the change from before to
// after. When the item code changed the entry is keyed by the new code and
// notes carry the rename.
func (s *Service) RecordUpdate(ctx context.Context, before, after *domain.Container, actor domain.Actor, notes string) (*domain.AuditEntry, error) {
	if before == nil || after == nil {
		return nil, fmt.Errorf("record update: nil container")
	}
	e := s.newEntry(domain.AuditActionUpdate, after.ItemCode, actor)
	e.OldValues = before.Snapshot()
	e.NewValues = after.Snapshot()
	e.ChangedFields = ChangedFields(before, after)
	e.Notes = optional(clip(notes, domain.MaxNotesLength))
	return s.store.Append(ctx, e)
}

// RecordDelete appends a DELETE entry carrying the last state of the row.
func (s *Service) RecordDelete(ctx context.Context, before *domain.Container, actor domain.Actor) (*domain.AuditEntry, error) {
	if before == nil {
		return nil, fmt.Errorf("record delete: nil container")
	}
	e := s.newEntry(domain.AuditActionDelete, before.ItemCode, actor)
	e.OldValues = before.Snapshot()
	return s.store.Append(ctx, e)
}

// RecordView appends a VIEW entry. VIEW entries carry no snapshots.
func (s *Service) RecordView(ctx context.Context, itemCode string, actor domain.Actor) (*domain.AuditEntry, error) {
	return s.store.Append(ctx, s.newEntry(domain.AuditActionView, itemCode, actor))
}

func (s *Service) newEntry(action domain.AuditAction, itemCode string, actor domain.Actor) domain.AuditEntry {
	return domain.AuditEntry{
		ItemCode:      itemCode,
		Action:        action,
		Username:      actor.Username,
		UserRole:      actor.Role,
		Timestamp:     s.now().UTC(),
		ChangedFields: []string{},
		ClientIP:      optional(clip(actor.ClientIP, domain.MaxClientIPLength)),
		ClientAgent:   optional(clip(actor.ClientAgent, domain.MaxClientAgentLength)),
	}
}

// clip trims s and cuts it to at most n runes.
func clip(s string, n int) string {
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
