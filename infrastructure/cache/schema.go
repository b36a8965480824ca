package cache

import (
	"context"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-reports-api/infrastructure/database/postgres"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS report_cache (
		cache_key  VARCHAR(128) PRIMARY KEY,
		value      BYTEA NOT NULL,
		expires_at TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS idx_report_cache_expires_at ON report_cache (expires_at)`,
}

// Migrate cria a tabela usada pelo PostgresStore. Pode ser executado mais de uma vez.
func Migrate(ctx context.Context, conn postgres.Queryer) error {
	for _, stmt := range schemaStatements {
		if _, err := conn.ExecContext(ctx, stmt); err != nil {
			return errors.Wrap(err, "erro ao criar tabela report_cache")
		}
	}
	return nil
}
