package cache

import (
	"context"
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/sales-reports-api/infrastructure/database/postgres"
)

const (
	reportCacheTable = "report_cache"
)

// PostgresStore guarda os relatórios na tabela report_cache (ver cmd/migrate)
type PostgresStore struct {
	conn postgres.Queryer
	ttl  time.Duration
	now  func() time.Time
}

func NewPostgresStore(conn postgres.Queryer, ttl time.Duration) *PostgresStore {
	return &PostgresStore{
		conn: conn,
		ttl:  ttl,
		now:  time.Now,
	}
}

func (s *PostgresStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	query, args, err := squirrel.
		Select("value").
		From(reportCacheTable).
		Where(squirrel.Eq{"cache_key": key}).
		Where(squirrel.Or{
			squirrel.Eq{"expires_at": nil},
			squirrel.Gt{"expires_at": s.now()},
		}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, false, errors.Wrap(err, "erro ao construir a query")
	}

	var value []byte
	err = s.conn.QueryRowContext(ctx, query, args...).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, errors.Wrapf(err, "erro ao ler cache %s", key)
	}

	return value, true, nil
}

func (s *PostgresStore) Set(ctx context.Context, key string, value []byte) error {
	var expires interface{}
	if at := expiresAt(s.now(), s.ttl); !at.IsZero() {
		expires = at
	}

	query, args, err := squirrel.
		Insert(reportCacheTable).
		Columns("cache_key", "value", "expires_at").
		Values(key, value, expires).
		Suffix(`
			ON CONFLICT (cache_key) DO UPDATE SET
				value = EXCLUDED.value,
				expires_at = EXCLUDED.expires_at,
				updated_at = CURRENT_TIMESTAMP
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir query de inserção")
	}

	if _, err := s.conn.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrapf(err, "erro ao gravar cache %s", key)
	}

	return nil
}

func (s *PostgresStore) PurgeExpired(ctx context.Context) (int64, error) {
	query, args, err := squirrel.
		Delete(reportCacheTable).
		Where(squirrel.NotEq{"expires_at": nil}).
		Where(squirrel.LtOrEq{"expires_at": s.now()}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, errors.Wrap(err, "erro ao construir query de limpeza")
	}

	result, err := s.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, errors.Wrap(err, "erro ao remover cache expirado")
	}

	return result.RowsAffected()
}
