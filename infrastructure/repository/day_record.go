package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lddanielsoares2-wq/dashboard-wehub/infrastructure/database/postgres"
	"github.com/lddanielsoares2-wq/dashboard-wehub/internal/domain"
	"github.com/lib/pq"
)

const (
	dayRecordsTable = "day_records dr"
)

type DayRecordRepository interface {
	GetByDate(userID int, date time.Time, dimension domain.ReportDimension) (*domain.DayRecord, error)
	GetByDateRange(userID int, dimension domain.ReportDimension, startDate, endDate time.Time) ([]*domain.DayRecord, error)
	SaveOrUpdate(record *domain.DayRecord) error
	DeleteOlderThan(days int) (int64, error)
}

type dayRecordRepository struct {
	conn postgres.Queryer
}

func NewDayRecordRepository(conn postgres.Queryer) DayRecordRepository {
	return &dayRecordRepository{
		conn: conn,
	}
}

func (r *dayRecordRepository) GetByDate(userID int, date time.Time, dimension domain.ReportDimension) (*domain.DayRecord, error) {
	query, args, err := squirrel.
		Select("dr.id, dr.user_id, dr.date, dr.dimension, dr.rows, dr.totals, dr.account_count, dr.complete, dr.partial, dr.fetched_at, dr.created_at, dr.updated_at").
		From(dayRecordsTable).
		Where(squirrel.Eq{"dr.user_id": userID, "dr.date": date.Format("2006-01-02"), "dr.dimension": dimension}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	record, err := r.scanRecord(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear registro diário: %w", err)
	}

	return record, nil
}

func (r *dayRecordRepository) GetByDateRange(userID int, dimension domain.ReportDimension, startDate, endDate time.Time) ([]*domain.DayRecord, error) {
	query, args, err := squirrel.
		Select("dr.id, dr.user_id, dr.date, dr.dimension, dr.rows, dr.totals, dr.account_count, dr.complete, dr.partial, dr.fetched_at, dr.created_at, dr.updated_at").
		From(dayRecordsTable).
		Where(squirrel.Eq{"dr.user_id": userID, "dr.dimension": dimension}).
		Where(squirrel.GtOrEq{"dr.date": startDate.Format("2006-01-02")}).
		Where(squirrel.LtOrEq{"dr.date": endDate.Format("2006-01-02")}).
		OrderBy("dr.date ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	records := make([]*domain.DayRecord, 0)
	for rows.Next() {
		record, err := r.scanRecordRows(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear registros diários: %w", err)
		}
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return records, nil
}

func (r *dayRecordRepository) SaveOrUpdate(record *domain.DayRecord) error {
	rowsJSON, err := json.Marshal(record.Rows)
	if err != nil {
		return fmt.Errorf("erro ao serializar linhas para JSON: %w", err)
	}

	var totalsJSON []byte
	if record.Totals != nil {
		totalsJSON, err = json.Marshal(record.Totals)
		if err != nil {
			return fmt.Errorf("erro ao serializar totais para JSON: %w", err)
		}
	}

	// Um dia já consolidado nunca é rebaixado por uma busca incompleta
	query := squirrel.StatementBuilder.
		Insert("day_records").
		Columns("id", "user_id", "date", "dimension", "rows", "totals", "account_count", "complete", "partial", "fetched_at").
		Values(
			record.ID,
			record.UserID,
			record.Date.Format("2006-01-02"),
			record.Dimension,
			rowsJSON,
			totalsJSON,
			record.AccountCount,
			record.Complete,
			record.Partial,
			record.FetchedAt,
		).
		Suffix(`
			ON CONFLICT (user_id, date, dimension) DO UPDATE SET
				rows = EXCLUDED.rows,
				totals = EXCLUDED.totals,
				account_count = EXCLUDED.account_count,
				complete = day_records.complete OR EXCLUDED.complete,
				partial = EXCLUDED.partial,
				fetched_at = EXCLUDED.fetched_at,
				updated_at = NOW()
			WHERE day_records.complete = false OR EXCLUDED.complete = true
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

func (r *dayRecordRepository) DeleteOlderThan(days int) (int64, error) {
	cutoffDate := time.Now().AddDate(0, 0, -days).Format("2006-01-02")

	query, args, err := squirrel.
		Delete("day_records").
		Where(squirrel.Lt{"date": cutoffDate}).
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

func (r *dayRecordRepository) scanRecord(row *sql.Row) (*domain.DayRecord, error) {
	record := &domain.DayRecord{}
	var rowsJSON, totalsJSON []byte

	err := row.Scan(
		&record.ID,
		&record.UserID,
		&record.Date,
		&record.Dimension,
		&rowsJSON,
		&totalsJSON,
		&record.AccountCount,
		&record.Complete,
		&record.Partial,
		&record.FetchedAt,
		&record.CreatedAt,
		&record.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := r.decodePayload(record, rowsJSON, totalsJSON); err != nil {
		return nil, err
	}

	return record, nil
}

func (r *dayRecordRepository) scanRecordRows(rows *sql.Rows) (*domain.DayRecord, error) {
	record := &domain.DayRecord{}
	var rowsJSON, totalsJSON []byte

	err := rows.Scan(
		&record.ID,
		&record.UserID,
		&record.Date,
		&record.Dimension,
		&rowsJSON,
		&totalsJSON,
		&record.AccountCount,
		&record.Complete,
		&record.Partial,
		&record.FetchedAt,
		&record.CreatedAt,
		&record.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := r.decodePayload(record, rowsJSON, totalsJSON); err != nil {
		return nil, err
	}

	return record, nil
}

func (r *dayRecordRepository) decodePayload(record *domain.DayRecord, rowsJSON, totalsJSON []byte) error {
	if rowsJSON != nil {
		reportRows := make([]*domain.ReportRow, 0)
		if err := json.Unmarshal(rowsJSON, &reportRows); err != nil {
			return fmt.Errorf("erro ao deserializar JSON de rows: %w", err)
		}
		record.Rows = reportRows
	}

	if totalsJSON != nil {
		totals := &domain.ReportTotals{}
		if err := json.Unmarshal(totalsJSON, totals); err != nil {
			return fmt.Errorf("erro ao deserializar JSON de totals: %w", err)
		}
		record.Totals = totals
	}

	return nil
}
