package testhelper

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/Yamaha-Motor-Manufacturing-Corp/ymmcContainerTrackerApi/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// UniqueItemCode returns a valid item code that no other test uses.
// The suffix keeps mixed case so case-preservation is exercised.
func UniqueItemCode(prefix string) string {
	return strings.ToUpper(prefix) + "-" + uniqueSuffix()
}

// UniqueUsername returns a username that no other test uses.
func UniqueUsername() string {
	return "user" + uniqueSuffix()
}

// SeedContainer inserts a container with the given item code and returns it
// as stored (version 1).
func SeedContainer(t *testing.T, pool *pgxpool.Pool, itemCode string) domain.Container {
	t.Helper()
	ctx := context.Background()

	length := decimal.RequireFromString("48.5")
	weight := decimal.RequireFromString("120.25")
	qty := 12
	c := domain.Container{
		ItemCode:      itemCode,
		PackingCode:   "BOX-" + strings.ToUpper(uniqueSuffix()[:4]),
		PrefixCode:    "YP",
		OutsideLength: &length,
		Weight:        &weight,
		PackQuantity:  &qty,
		Version:       1,
		UpdatedAt:     time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO containers (item_code, packing_code, prefix_code, outside_length, weight, pack_quantity, version, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		c.ItemCode, c.PackingCode, c.PrefixCode, c.OutsideLength, c.Weight, c.PackQuantity, c.Version, c.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedContainer insert: %v", err)
	}

	return c
}

// SeedUserRole provisions a user_roles row and returns the username.
func SeedUserRole(t *testing.T, pool *pgxpool.Pool, role domain.Role) string {
	t.Helper()
	ctx := context.Background()

	username := UniqueUsername()
	_, err := pool.Exec(ctx,
		`INSERT INTO user_roles (username, role, display_name, email, created_at)
		 VALUES ($1, $2, $3, $4, now())`,
		username, role.String(), "Test "+username, username+"@example.com",
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUserRole insert: %v", err)
	}

	return username
}

// CountAuditEntries returns how many audit entries reference itemCode exactly
// (case-insensitively).
func CountAuditEntries(t *testing.T, pool *pgxpool.Pool, itemCode string) int {
	t.Helper()

	var n int
	err := pool.QueryRow(context.Background(),
		`SELECT count(*) FROM audit_log WHERE upper(item_code) = upper($1)`, itemCode,
	).Scan(&n)
	if err != nil {
		t.Fatalf("testhelper: CountAuditEntries: %v", err)
	}
	return n
}

// ContainerExists reports whether a catalog row matches itemCode case-insensitively.
func ContainerExists(t *testing.T, pool *pgxpool.Pool, itemCode string) bool {
	t.Helper()

	var exists bool
	err := pool.QueryRow(context.Background(),
		`SELECT EXISTS(SELECT 1 FROM containers WHERE upper(item_code) = upper($1))`, itemCode,
	).Scan(&exists)
	if err != nil {
		t.Fatalf("testhelper: ContainerExists: %v", err)
	}
	return exists
}
