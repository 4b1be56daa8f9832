package repository

import (
	"database/sql"
	"errors"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lddanielsoares2-wq/dashboard-wehub/infrastructure/database/postgres"
	"github.com/lddanielsoares2-wq/dashboard-wehub/internal/domain"
	_ "github.com/lib/pq"
)

const (
	usersTable = "users"
)

const userColumns = "id, name, lastname, email, password_hash, active, role_id, avatar_url, created_at, updated_at"

type UserRepository interface {
	GetUserByEmail(email string) (*domain.User, error)
	GetUserByID(userID int) (*domain.User, error)
	UpdateUser(user *domain.User) error
}

type userRepository struct {
	conn postgres.Queryer
}

func NewUserRepository(conn postgres.Queryer) UserRepository {
	return &userRepository{
		conn: conn,
	}
}

// GetUserByEmail busca um usuário não deletado pelo email.
// Retorna nil quando não existe
func (r *userRepository) GetUserByEmail(email string) (*domain.User, error) {
	return r.getUser(squirrel.Eq{"email": email})
}

// GetUserByID busca um usuário não deletado pelo ID.
// Retorna nil quando não existe
func (r *userRepository) GetUserByID(userID int) (*domain.User, error) {
	return r.getUser(squirrel.Eq{"id": userID})
}

func (r *userRepository) getUser(filter squirrel.Eq) (*domain.User, error) {
	query, args, err := squirrel.
		Select(userColumns).
		From(usersTable).
		Where(squirrel.Eq{"deleted": false}).
		Where(filter).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	var user domain.User
	err = r.conn.QueryRow(query, args...).Scan(
		&user.ID,
		&user.Name,
		&user.Lastname,
		&user.Email,
		&user.PasswordHash,
		&user.Active,
		&user.RoleID,
		&user.AvatarURL,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// UpdateUser grava apenas os campos preenchidos, preservando os demais
func (r *userRepository) UpdateUser(user *domain.User) error {
	queryBuilder := squirrel.
		Update(usersTable).
		Set("active", user.Active).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": user.ID})

	if user.Name != "" {
		queryBuilder = queryBuilder.Set("name", user.Name)
	}

	if user.Lastname != "" {
		queryBuilder = queryBuilder.Set("lastname", user.Lastname)
	}

	if user.Email != "" {
		queryBuilder = queryBuilder.Set("email", user.Email)
	}

	if user.PasswordHash != "" {
		queryBuilder = queryBuilder.Set("password_hash", user.PasswordHash)
	}

	if user.AvatarURL != nil && *user.AvatarURL != "" {
		queryBuilder = queryBuilder.Set("avatar_url", user.AvatarURL)
	}

	query, args, err := queryBuilder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(query, args...)

	return err
}
