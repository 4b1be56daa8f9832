package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lddanielsoares2-wq/dashboard-wehub/infrastructure/database/postgres"
	"github.com/lddanielsoares2-wq/dashboard-wehub/internal/domain"
	"github.com/lib/pq"
	_ "github.com/lib/pq"
)

const (
	networkAccountsTable = "network_accounts na"
)

type AccountRepository interface {
	GetAccountByID(accountID string) (*domain.NetworkAccount, error)
	GetAccountByNetworkCode(userID int, networkCode string) (*domain.NetworkAccount, error)
	ListAccountsByUser(userID int, availableStatus []domain.NetworkAccountStatus) ([]*domain.NetworkAccount, error)
	UpdateAccount(account *domain.UpdateNetworkAccountRequest) error
	UpdateTokens(accountID, accessToken, refreshToken string, expiry time.Time) error
}

type accountRepository struct {
	conn postgres.Queryer
}

func NewAccountRepository(conn postgres.Queryer) AccountRepository {
	return &accountRepository{
		conn: conn,
	}
}

func (a *accountRepository) GetAccountByID(accountID string) (*domain.NetworkAccount, error) {
	return a.GetAccount(squirrel.Eq{"na.id": accountID})
}

func (a *accountRepository) GetAccountByNetworkCode(userID int, networkCode string) (*domain.NetworkAccount, error) {
	return a.GetAccount(squirrel.Eq{"na.user_id": userID, "na.network_code": networkCode})
}

func (a *accountRepository) GetAccount(whereClause map[string]interface{}) (*domain.NetworkAccount, error) {
	accountsSQL, accountsArgs, err := squirrel.
		Select("na.id, na.user_id, na.network_code, na.name, na.nickname, na.currency_code, na.time_zone, na.refresh_token, na.access_token, na.token_expiry, na.status, na.created_at, na.updated_at").
		From(networkAccountsTable).
		Where(whereClause).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	row := a.conn.QueryRow(accountsSQL, accountsArgs...)

	acc, err := a.deserializeAccount(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return acc, err
}

func (a *accountRepository) deserializeAccount(row *sql.Row) (*domain.NetworkAccount, error) {
	acc := &domain.NetworkAccount{}

	if err := row.Scan(
		&acc.ID,
		&acc.UserID,
		&acc.NetworkCode,
		&acc.Name,
		&acc.Nickname,
		&acc.CurrencyCode,
		&acc.TimeZone,
		&acc.RefreshToken,
		&acc.AccessToken,
		&acc.TokenExpiry,
		&acc.Status,
		&acc.CreatedAt,
		&acc.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return acc, nil
}

func (a *accountRepository) ListAccountsByUser(userID int, availableStatus []domain.NetworkAccountStatus) ([]*domain.NetworkAccount, error) {
	queryBuilder := squirrel.
		Select("na.id, na.user_id, na.network_code, na.name, na.nickname, na.currency_code, na.time_zone, na.refresh_token, na.access_token, na.token_expiry, na.status, na.created_at, na.updated_at").
		From(networkAccountsTable).
		Where(squirrel.Eq{"na.user_id": userID}).
		OrderBy("na.nickname ASC, na.name ASC").
		PlaceholderFormat(squirrel.Dollar)

	if len(availableStatus) > 0 {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"na.status": availableStatus})
	}

	accountsSQL, accountsArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := a.conn.Query(accountsSQL, accountsArgs...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, err
	}
	defer rows.Close()

	accounts := make([]*domain.NetworkAccount, 0)

	for rows.Next() {
		acc := &domain.NetworkAccount{}
		if err := rows.Scan(
			&acc.ID,
			&acc.UserID,
			&acc.NetworkCode,
			&acc.Name,
			&acc.Nickname,
			&acc.CurrencyCode,
			&acc.TimeZone,
			&acc.RefreshToken,
			&acc.AccessToken,
			&acc.TokenExpiry,
			&acc.Status,
			&acc.CreatedAt,
			&acc.UpdatedAt,
		); err != nil {
			return nil, err
		}

		accounts = append(accounts, acc)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return accounts, nil
}

func (a *accountRepository) UpdateAccount(account *domain.UpdateNetworkAccountRequest) error {
	if account.ID == "" {
		return errors.New("ID is required")
	}

	// Constrói a query de atualização
	queryBuilder := squirrel.
		Update("network_accounts").
		Where(squirrel.Eq{"id": account.ID}).
		PlaceholderFormat(squirrel.Dollar)

	// Adiciona os campos que foram fornecidos para atualização
	if account.Nickname != nil {
		queryBuilder = queryBuilder.Set("nickname", *account.Nickname)
	}

	if account.Status != nil {
		queryBuilder = queryBuilder.Set("status", *account.Status)
	}

	queryBuilder = queryBuilder.Set("updated_at", time.Now())

	// Converte a query para SQL
	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	// Executa a query
	result, err := a.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("failed to execute query: %w", err)
	}

	// Verifica se algum registro foi afetado
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return errors.New("account not found")
	}

	return nil
}

// UpdateTokens persiste os tokens rotacionados após uma renovação OAuth
func (a *accountRepository) UpdateTokens(accountID, accessToken, refreshToken string, expiry time.Time) error {
	queryBuilder := squirrel.
		Update("network_accounts").
		Set("access_token", accessToken).
		Set("token_expiry", expiry).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": accountID}).
		PlaceholderFormat(squirrel.Dollar)

	// O refresh token só muda quando o provedor emite um novo
	if refreshToken != "" {
		queryBuilder = queryBuilder.Set("refresh_token", refreshToken)
	}

	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = a.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}
