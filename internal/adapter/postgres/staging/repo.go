// Package staging reads the containers_stage import table.
package staging

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/Yamaha-Motor-Manufacturing-Corp/ymmcContainerTrackerApi/internal/adapter/postgres"
	"github.com/Yamaha-Motor-Manufacturing-Corp/ymmcContainerTrackerApi/internal/domain"
)

// Repo provides read access to staged container rows.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new staging repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const listSQL = `
SELECT item_code, packing_code, prefix_code, container_number,
       outside_length, outside_width, outside_height, collapsed_height,
       weight, pack_quantity, alternate_id
FROM containers_stage
ORDER BY item_code NULLS LAST`

// List returns every staged row ordered by item code.
func (r *Repo) List(ctx context.Context) ([]domain.StagedContainer, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, listSQL)
	if err != nil {
		return nil, postgres.MapError(err, "containers_stage", "list")
	}
	defer rows.Close()

	result := []domain.StagedContainer{}
	for rows.Next() {
		s, err := scanStaged(rows)
		if err != nil {
			return nil, postgres.MapError(err, "containers_stage", "list")
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "containers_stage", "list")
	}
	return result, nil
}

func scanStaged(row pgx.Row) (domain.StagedContainer, error) {
	var s domain.StagedContainer
	err := row.Scan(
		&s.ItemCode, &s.PackingCode, &s.PrefixCode, &s.ContainerNumber,
		&s.OutsideLength, &s.OutsideWidth, &s.OutsideHeight, &s.CollapsedHeight,
		&s.Weight, &s.PackQuantity, &s.AlternateID,
	)
	return s, err
}
