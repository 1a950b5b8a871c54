package postgres

import (
	"context"
	"errors"
)

// HealthCheck reports the database healthy once the splitter schema is in
// place. A reachable database without the events table cannot serve writes.
type HealthCheck struct {
	pool Pool
}

func NewHealthCheck(pool Pool) *HealthCheck {
	return &HealthCheck{pool: pool}
}

func (h *HealthCheck) Ping(ctx context.Context) error {
	var migrated bool
	if err := h.pool.QueryRow(ctx, `SELECT to_regclass('events') IS NOT NULL`).Scan(&migrated); err != nil {
		return err
	}
	if !migrated {
		return errors.New("splitter schema not applied")
	}
	return nil
}

func (h *HealthCheck) Name() string {
	return "postgresql"
}
