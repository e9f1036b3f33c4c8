package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// HealthCheck implements ports.HealthChecker for PostgreSQL. Besides
// connectivity it reports a schema left dirty by a failed migration.
type HealthCheck struct {
	pool Pool
}

func NewHealthCheck(pool Pool) *HealthCheck {
	return &HealthCheck{pool: pool}
}

const selectMigrationState = `SELECT version, dirty FROM schema_migrations LIMIT 1`

// Ping checks connectivity and the migration state.
func (h *HealthCheck) Ping(ctx context.Context) error {
	var version int64
	var dirty bool
	err := h.pool.QueryRow(ctx, selectMigrationState).Scan(&version, &dirty)
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		return nil
	case err != nil:
		return err
	case dirty:
		return fmt.Errorf("schema migration %d is dirty", version)
	}
	return nil
}

// Name returns the dependency name.
func (h *HealthCheck) Name() string {
	return "postgresql"
}
