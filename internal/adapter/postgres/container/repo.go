// Package container implements the container catalog repository using
// PostgreSQL. Item codes are matched case-insensitively everywhere; the
// unique index on upper(item_code) is the final guard against duplicates.
package container

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	postgres "github.com/Yamaha-Motor-Manufacturing-Corp/ymmcContainerTrackerApi/internal/adapter/postgres"
	"github.com/Yamaha-Motor-Manufacturing-Corp/ymmcContainerTrackerApi/internal/domain"
)

const entityName = "container"

// Repo provides container persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new container repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL
// ---------------------------------------------------------------------------

const columns = `item_code, packing_code, prefix_code, container_number, alternate_id,
    outside_length, outside_width, outside_height, collapsed_height, weight,
    pack_quantity, version, updated_at`

const insertSQL = `
INSERT INTO containers (
    item_code, packing_code, prefix_code, container_number, alternate_id,
    outside_length, outside_width, outside_height, collapsed_height, weight,
    pack_quantity, version, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, now())
RETURNING ` + columns

const existsSQL = `SELECT EXISTS(SELECT 1 FROM containers WHERE upper(item_code) = upper($1))`

const getSQL = `SELECT ` + columns + `
FROM containers
WHERE upper(item_code) = upper($1)`

const getForUpdateSQL = getSQL + `
FOR UPDATE`

const updateSQL = `
UPDATE containers SET
    packing_code     = $2,
    prefix_code      = $3,
    container_number = $4,
    alternate_id     = $5,
    outside_length   = $6,
    outside_width    = $7,
    outside_height   = $8,
    collapsed_height = $9,
    weight           = $10,
    pack_quantity    = $11,
    version          = version + 1,
    updated_at       = now()
WHERE upper(item_code) = upper($1) AND version = $12
RETURNING ` + columns

const deleteSQL = `DELETE FROM containers WHERE upper(item_code) = upper($1)`

const listSQL = `SELECT ` + columns + `
FROM containers
WHERE item_code IS NOT NULL AND btrim(item_code) <> ''
ORDER BY item_code`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// Exists reports whether a container with the given item code exists,
// ignoring case.
func (r *Repo) Exists(ctx context.Context, itemCode string) (bool, error) {
	var exists bool
	err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, existsSQL, itemCode).Scan(&exists)
	if err != nil {
		return false, postgres.MapError(err, entityName, itemCode)
	}
	return exists, nil
}

// GetByKey returns the container stored under itemCode (case-insensitive).
// Returns domain.ErrNotFound if it does not exist.
func (r *Repo) GetByKey(ctx context.Context, itemCode string) (*domain.Container, error) {
	return r.get(ctx, getSQL, itemCode)
}

// GetForUpdate is GetByKey with a row lock held until the surrounding
// transaction ends. It must be called inside TxManager.RunInTx.
func (r *Repo) GetForUpdate(ctx context.Context, itemCode string) (*domain.Container, error) {
	if !postgres.InTx(ctx) {
		return nil, fmt.Errorf("%s %s: get for update outside transaction", entityName, itemCode)
	}
	return r.get(ctx, getForUpdateSQL, itemCode)
}

func (r *Repo) get(ctx context.Context, sql, itemCode string) (*domain.Container, error) {
	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, itemCode)
	c, err := scanContainer(row)
	if err != nil {
		return nil, postgres.MapError(err, entityName, itemCode)
	}
	return &c, nil
}

// List returns every container with a usable item code, ordered by item code.
// Returns an empty slice (not nil) when the catalog is empty.
func (r *Repo) List(ctx context.Context) ([]domain.Container, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, listSQL)
	if err != nil {
		return nil, fmt.Errorf("list containers: %w", err)
	}
	defer rows.Close()

	result := []domain.Container{}
	for rows.Next() {
		c, err := scanContainer(rows)
		if err != nil {
			return nil, fmt.Errorf("list containers: %w", err)
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list containers: %w", err)
	}

	return result, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new container at version 1.
// Returns domain.ErrAlreadyExists if the item code is taken in any casing.
func (r *Repo) Create(ctx context.Context, c domain.Container) (*domain.Container, error) {
	c.Version = 1
	return r.insert(ctx, c)
}

// Update overwrites the non-key attributes of the container at itemCode and
// bumps its version. The write only applies if the stored version still
// equals expectedVersion; otherwise domain.ErrConflict is returned.
func (r *Repo) Update(ctx context.Context, itemCode string, c domain.Container, expectedVersion int) (*domain.Container, error) {
	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, updateSQL,
		itemCode,
		c.PackingCode,
		c.PrefixCode,
		c.ContainerNumber,
		c.AlternateID,
		nullDecimal(c.OutsideLength),
		nullDecimal(c.OutsideWidth),
		nullDecimal(c.OutsideHeight),
		nullDecimal(c.CollapsedHeight),
		nullDecimal(c.Weight),
		c.PackQuantity,
		expectedVersion,
	)

	updated, err := scanContainer(row)
	if err != nil {
		err = postgres.MapError(err, entityName, itemCode)
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("%s %s: version %d: %w", entityName, itemCode, expectedVersion, domain.ErrConflict)
		}
		return nil, err
	}
	return &updated, nil
}

// Rekey moves a container to a new item code: the row at oldItemCode is
// deleted and c is inserted with c.Version. Both statements run on the
// caller's transaction.
// Returns domain.ErrNotFound if oldItemCode does not exist and
// domain.ErrAlreadyExists if c.ItemCode is taken.
func (r *Repo) Rekey(ctx context.Context, oldItemCode string, c domain.Container) (*domain.Container, error) {
	if !postgres.InTx(ctx) {
		return nil, fmt.Errorf("%s %s: rekey outside transaction", entityName, oldItemCode)
	}
	if err := r.Delete(ctx, oldItemCode); err != nil {
		return nil, err
	}
	if c.Version < 1 {
		c.Version = 1
	}
	return r.insert(ctx, c)
}

// Delete removes the container at itemCode.
// Returns domain.ErrNotFound if no row was removed.
func (r *Repo) Delete(ctx context.Context, itemCode string) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, deleteSQL, itemCode)
	if err != nil {
		return postgres.MapError(err, entityName, itemCode)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s %s: %w", entityName, itemCode, domain.ErrNotFound)
	}
	return nil
}

func (r *Repo) insert(ctx context.Context, c domain.Container) (*domain.Container, error) {
	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, insertSQL,
		c.ItemCode,
		c.PackingCode,
		c.PrefixCode,
		c.ContainerNumber,
		c.AlternateID,
		nullDecimal(c.OutsideLength),
		nullDecimal(c.OutsideWidth),
		nullDecimal(c.OutsideHeight),
		nullDecimal(c.CollapsedHeight),
		nullDecimal(c.Weight),
		c.PackQuantity,
		c.Version,
	)

	created, err := scanContainer(row)
	if err != nil {
		return nil, postgres.MapError(err, entityName, c.ItemCode)
	}
	return &created, nil
}

// ---------------------------------------------------------------------------
// Scanning helpers
// ---------------------------------------------------------------------------

// scanContainer scans a single row (pgx.Row or pgx.Rows) selected with columns.
func scanContainer(row pgx.Row) (domain.Container, error) {
	var (
		c            domain.Container
		itemCode     *string
		length       decimal.NullDecimal
		width        decimal.NullDecimal
		height       decimal.NullDecimal
		collapsed    decimal.NullDecimal
		weight       decimal.NullDecimal
		packQuantity *int32
		updatedAt    time.Time
	)

	err := row.Scan(
		&itemCode,
		&c.PackingCode,
		&c.PrefixCode,
		&c.ContainerNumber,
		&c.AlternateID,
		&length,
		&width,
		&height,
		&collapsed,
		&weight,
		&packQuantity,
		&c.Version,
		&updatedAt,
	)
	if err != nil {
		return domain.Container{}, err
	}

	if itemCode != nil {
		c.ItemCode = *itemCode
	}
	c.OutsideLength = decimalPtr(length)
	c.OutsideWidth = decimalPtr(width)
	c.OutsideHeight = decimalPtr(height)
	c.CollapsedHeight = decimalPtr(collapsed)
	c.Weight = decimalPtr(weight)
	if packQuantity != nil {
		q := int(*packQuantity)
		c.PackQuantity = &q
	}
	c.UpdatedAt = updatedAt.UTC()

	return c, nil
}

func decimalPtr(d decimal.NullDecimal) *decimal.Decimal {
	if !d.Valid {
		return nil
	}
	v := d.Decimal
	return &v
}

func nullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: *d, Valid: true}
}
