package user

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/wpangestu/contacts-api/model"
)

type SQL struct {
	conn *sqlx.DB
}

type UserRepository interface {
	Create(ctx context.Context, data *model.UserEntity) error
	Get(ctx context.Context, filter *model.UserFilter) (*model.UserEntity, error)
	UpdateProfile(ctx context.Context, data *model.UserEntity) error
	UpdateToken(ctx context.Context, username string, token *string) error
}

func NewUserRepository(conn *sqlx.DB) UserRepository {
	return &SQL{conn: conn}
}

const (
	insertUserQuery  = `INSERT INTO user (username, password_hash, name) VALUES (?, ?, ?)`
	getUserBase      = `SELECT username, password_hash, name, token FROM user WHERE true`
	updateProfileSQL = `UPDATE user SET name = ?, password_hash = ? WHERE username = ?`
	updateTokenSQL   = `UPDATE user SET token = ? WHERE username = ?`
)

func (s *SQL) Create(ctx context.Context, data *model.UserEntity) error {
	_, err := s.conn.ExecContext(ctx, insertUserQuery, data.Username, data.PasswordHash, data.Name)
	return err
}

func (s *SQL) Get(ctx context.Context, filter *model.UserFilter) (*model.UserEntity, error) {
	query := getUserBase
	args := make([]any, 0, 2)

	if filter.Username != "" {
		query += " AND username = ?"
		args = append(args, filter.Username)
	}
	if filter.Token != "" {
		query += " AND token = ?"
		args = append(args, filter.Token)
	}

	var entity model.UserEntity
	if err := s.conn.QueryRowxContext(ctx, query, args...).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) UpdateProfile(ctx context.Context, data *model.UserEntity) error {
	_, err := s.conn.ExecContext(ctx, updateProfileSQL, data.Name, data.PasswordHash, data.Username)
	return err
}

func (s *SQL) UpdateToken(ctx context.Context, username string, token *string) error {
	_, err := s.conn.ExecContext(ctx, updateTokenSQL, token, username)
	return err
}
