package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lddanielsoares2-wq/dashboard-wehub/infrastructure/database/postgres"
	"github.com/lib/pq"
)

const (
	reportCacheTable = "report_cache rc"
)

// CacheEntryRepository é a camada durável do cache de relatórios; o payload
// é o JSON do relatório, opaco para o banco
type CacheEntryRepository interface {
	Get(key string) ([]byte, error)
	Set(key string, userID int, payload []byte, expiresAt *time.Time) error
	Delete(key string) error
	DeleteByUser(userID int) (int64, error)
	DeleteExpired() (int64, error)
}

type cacheEntryRepository struct {
	conn postgres.Queryer
}

func NewCacheEntryRepository(conn postgres.Queryer) CacheEntryRepository {
	return &cacheEntryRepository{
		conn: conn,
	}
}

// Get retorna o payload da chave, ou nil quando não existe ou já expirou
func (r *cacheEntryRepository) Get(key string) ([]byte, error) {
	query, args, err := squirrel.
		Select("rc.payload").
		From(reportCacheTable).
		Where(squirrel.Eq{"rc.key": key}).
		Where(squirrel.Or{
			squirrel.Eq{"rc.expires_at": nil},
			squirrel.Gt{"rc.expires_at": time.Now()},
		}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var payload []byte
	err = r.conn.QueryRow(query, args...).Scan(&payload)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear entrada de cache: %w", err)
	}

	return payload, nil
}

func (r *cacheEntryRepository) Set(key string, userID int, payload []byte, expiresAt *time.Time) error {
	query := squirrel.StatementBuilder.
		Insert("report_cache").
		Columns("key", "user_id", "payload", "expires_at").
		Values(
			key,
			userID,
			payload,
			expiresAt,
		).
		Suffix(`
			ON CONFLICT (key) DO UPDATE SET
				payload = EXCLUDED.payload,
				expires_at = EXCLUDED.expires_at,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *cacheEntryRepository) Delete(key string) error {
	query, args, err := squirrel.
		Delete("report_cache").
		Where(squirrel.Eq{"key": key}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *cacheEntryRepository) DeleteByUser(userID int) (int64, error) {
	query, args, err := squirrel.
		Delete("report_cache").
		Where(squirrel.Eq{"user_id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected, nil
}

// DeleteExpired remove entradas vencidas; chamado pelo worker de sincronização
func (r *cacheEntryRepository) DeleteExpired() (int64, error) {
	query, args, err := squirrel.
		Delete("report_cache").
		Where(squirrel.Lt{"expires_at": time.Now()}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected, nil
}
