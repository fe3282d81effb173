// Package audit implements the append-only audit log store using PostgreSQL.
// Entries form a SHA-256 hash chain; appends are serialized with a
// transaction-scoped advisory lock so the chain never forks.
package audit

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/Yamaha-Motor-Manufacturing-Corp/ymmcContainerTrackerApi/internal/adapter/postgres"
	"github.com/Yamaha-Motor-Manufacturing-Corp/ymmcContainerTrackerApi/internal/domain"
)

// chainLockKey is the pg_advisory_xact_lock key guarding the hash chain.
const chainLockKey int64 = 0x61756469745f6c67

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var selectColumns = []string{
	"id", "item_code", "action", "username", "user_role", "ts",
	"old_values", "new_values", "changed_fields",
	"client_ip", "client_agent", "notes", "prev_hash", "hash",
}

// Repo provides audit log persistence backed by PostgreSQL.
// It has no update or delete operations; the table rejects both.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new audit repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

const lockSQL = `SELECT pg_advisory_xact_lock($1)`

const lastHashSQL = `SELECT hash FROM audit_log ORDER BY id DESC LIMIT 1`

const insertSQL = `
INSERT INTO audit_log (
    item_code, action, username, user_role, ts,
    old_values, new_values, changed_fields,
    client_ip, client_agent, notes, prev_hash, hash
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
RETURNING id`

// Append links e to the end of the hash chain and inserts it. It must run
// inside TxManager.RunInTx so that the entry commits or rolls back together
// with the mutation it describes. The returned entry carries ID, PrevHash,
// Hash and the stored timestamp.
func (r *Repo) Append(ctx context.Context, e domain.AuditEntry) (*domain.AuditEntry, error) {
	if !postgres.InTx(ctx) {
		return nil, fmt.Errorf("audit_log %s: append outside transaction", e.ItemCode)
	}
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := q.Exec(ctx, lockSQL, chainLockKey); err != nil {
		return nil, postgres.MapError(err, "audit_log", "lock")
	}

	prev := GenesisHash
	if err := q.QueryRow(ctx, lastHashSQL).Scan(&prev); err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, postgres.MapError(err, "audit_log", "last hash")
	}

	e.Timestamp = e.Timestamp.UTC().Truncate(time.Microsecond)
	if e.ChangedFields == nil {
		e.ChangedFields = []string{}
	}
	hash, err := ComputeHash(prev, e)
	if err != nil {
		return nil, err
	}
	e.PrevHash = prev
	e.Hash = hash

	oldJSON, err := marshalSnapshot(e.OldValues)
	if err != nil {
		return nil, fmt.Errorf("audit_log %s marshal old values: %w", e.ItemCode, err)
	}
	newJSON, err := marshalSnapshot(e.NewValues)
	if err != nil {
		return nil, fmt.Errorf("audit_log %s marshal new values: %w", e.ItemCode, err)
	}

	err = q.QueryRow(ctx, insertSQL,
		e.ItemCode,
		string(e.Action),
		e.Username,
		e.UserRole.String(),
		e.Timestamp,
		oldJSON,
		newJSON,
		e.ChangedFields,
		e.ClientIP,
		e.ClientAgent,
		e.Notes,
		e.PrevHash,
		e.Hash,
	).Scan(&e.ID)
	if err != nil {
		return nil, postgres.MapError(err, "audit_log", e.ItemCode)
	}

	return &e, nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// Query returns entries matching f, newest first. A non-positive Limit
// means no limit.
func (r *Repo) Query(ctx context.Context, f domain.AuditFilter) ([]domain.AuditEntry, error) {
	qb := psql.Select(selectColumns...).From("audit_log")

	if f.Username != "" {
		qb = qb.Where(sq.ILike{"username": containsPattern(f.Username)})
	}
	if f.ItemCode != "" {
		qb = qb.Where(sq.ILike{"item_code": containsPattern(f.ItemCode)})
	}
	if f.Action != nil {
		qb = qb.Where(sq.Eq{"action": string(*f.Action)})
	}
	if f.Start != nil {
		qb = qb.Where(sq.GtOrEq{"ts": f.Start.UTC()})
	}
	if f.End != nil {
		qb = qb.Where(sq.LtOrEq{"ts": f.End.UTC()})
	}

	qb = qb.OrderBy("ts DESC", "id DESC")
	if f.Limit > 0 {
		qb = qb.Limit(uint64(f.Limit))
	}

	sql, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build audit query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query audit_log: %w", err)
	}
	defer rows.Close()

	result := []domain.AuditEntry{}
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("query audit_log: %w", err)
		}
		result = append(result, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query audit_log: %w", err)
	}

	return result, nil
}

// History returns every entry whose item code contains itemCode,
// ignoring case, newest first.
func (r *Repo) History(ctx context.Context, itemCode string) ([]domain.AuditEntry, error) {
	itemCode = strings.TrimSpace(itemCode)
	if itemCode == "" {
		return []domain.AuditEntry{}, nil
	}
	return r.Query(ctx, domain.AuditFilter{ItemCode: itemCode})
}

// Recent returns the newest limit entries.
func (r *Repo) Recent(ctx context.Context, limit int) ([]domain.AuditEntry, error) {
	return r.Query(ctx, domain.AuditFilter{Limit: limit})
}

// Verify walks the whole log in id order and recomputes every hash.
// It stops at the first entry whose PrevHash or Hash does not match.
func (r *Repo) Verify(ctx context.Context) (domain.ChainReport, error) {
	sql, args, err := psql.Select(selectColumns...).From("audit_log").OrderBy("id ASC").ToSql()
	if err != nil {
		return domain.ChainReport{}, fmt.Errorf("build verify query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return domain.ChainReport{}, fmt.Errorf("verify audit_log: %w", err)
	}
	defer rows.Close()

	report := domain.ChainReport{Valid: true}
	prev := GenesisHash
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return domain.ChainReport{}, fmt.Errorf("verify audit_log: %w", err)
		}
		report.Checked++

		want, err := ComputeHash(prev, e)
		if err != nil {
			return domain.ChainReport{}, err
		}
		if e.PrevHash != prev || e.Hash != want {
			id := e.ID
			report.Valid = false
			report.BrokenAt = &id
			return report, nil
		}
		prev = e.Hash
	}
	if err := rows.Err(); err != nil {
		return domain.ChainReport{}, fmt.Errorf("verify audit_log: %w", err)
	}

	return report, nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

func scanEntry(row pgx.Row) (domain.AuditEntry, error) {
	var (
		e        domain.AuditEntry
		action   string
		role     *string
		ts       time.Time
		oldJSON  []byte
		newJSON  []byte
		prevHash string
		hash     string
	)

	err := row.Scan(
		&e.ID, &e.ItemCode, &action, &e.Username, &role, &ts,
		&oldJSON, &newJSON, &e.ChangedFields,
		&e.ClientIP, &e.ClientAgent, &e.Notes, &prevHash, &hash,
	)
	if err != nil {
		return domain.AuditEntry{}, err
	}

	e.Action = domain.AuditAction(action)
	if role != nil {
		e.UserRole = domain.ParseRole(*role)
	}
	e.Timestamp = ts.UTC()
	e.PrevHash = strings.TrimSpace(prevHash)
	e.Hash = strings.TrimSpace(hash)
	if e.ChangedFields == nil {
		e.ChangedFields = []string{}
	}

	if e.OldValues, err = unmarshalSnapshot(oldJSON); err != nil {
		return domain.AuditEntry{}, fmt.Errorf("audit_log %d old values: %w", e.ID, err)
	}
	if e.NewValues, err = unmarshalSnapshot(newJSON); err != nil {
		return domain.AuditEntry{}, fmt.Errorf("audit_log %d new values: %w", e.ID, err)
	}

	return e, nil
}

func marshalSnapshot(s *domain.ContainerSnapshot) ([]byte, error) {
	if s == nil {
		return nil, nil
	}
	return json.Marshal(s)
}

func unmarshalSnapshot(b []byte) (*domain.ContainerSnapshot, error) {
	if len(b) == 0 {
		return nil, nil
	}
	var s domain.ContainerSnapshot
	if err := json.Unmarshal(b, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// containsPattern builds an ILIKE pattern matching s anywhere, with LIKE
// metacharacters in s escaped.
func containsPattern(s string) string {
	s = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(strings.TrimSpace(s))
	return "%" + s + "%"
}
