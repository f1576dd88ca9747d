package contact

import (
	"context"
	"database/sql"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/wpangestu/contacts-api/model"
)

type SQL struct {
	conn *sqlx.DB
}

type ContactRepository interface {
	Create(ctx context.Context, data *model.ContactEntity) (*model.ContactEntity, error)
	Get(ctx context.Context, username string, id uint64) (*model.ContactEntity, error)
	Count(ctx context.Context, username string, id uint64) (int64, error)
	Update(ctx context.Context, data *model.ContactEntity) error
	DeleteTx(ctx context.Context, tx *sqlx.Tx, id uint64) error
	Search(ctx context.Context, filter *model.ContactSearchFilter, limit, offset int) ([]model.ContactEntity, int64, error)
}

func NewContactRepository(conn *sqlx.DB) ContactRepository {
	return &SQL{conn: conn}
}

const (
	insertContactQuery = `INSERT INTO contact (username, first_name, last_name, email, phone) VALUES (?, ?, ?, ?, ?)`
	getContactQuery    = `SELECT id, username, first_name, last_name, email, phone FROM contact WHERE username = ? AND id = ?`
	countContactQuery  = `SELECT COUNT(*) FROM contact WHERE username = ? AND id = ?`
	updateContactQuery = `UPDATE contact SET first_name = ?, last_name = ?, email = ?, phone = ? WHERE id = ?`
	deleteContactQuery = `DELETE FROM contact WHERE id = ?`

	searchContactBase = `SELECT id, username, first_name, last_name, email, phone FROM contact WHERE username = ?`
	searchCountBase   = `SELECT COUNT(*) FROM contact WHERE username = ?`
)

func (s *SQL) Create(ctx context.Context, data *model.ContactEntity) (*model.ContactEntity, error) {
	result, err := s.conn.ExecContext(ctx, insertContactQuery, data.Username, data.FirstName, data.LastName, data.Email, data.Phone)
	if err != nil {
		return nil, err
	}

	lastID, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	data.ID = uint64(lastID)
	return data, nil
}

func (s *SQL) Get(ctx context.Context, username string, id uint64) (*model.ContactEntity, error) {
	var entity model.ContactEntity
	if err := s.conn.QueryRowxContext(ctx, getContactQuery, username, id).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) Count(ctx context.Context, username string, id uint64) (int64, error) {
	var count int64
	if err := s.conn.GetContext(ctx, &count, countContactQuery, username, id); err != nil {
		return 0, err
	}
	return count, nil
}

func (s *SQL) Update(ctx context.Context, data *model.ContactEntity) error {
	_, err := s.conn.ExecContext(ctx, updateContactQuery, data.FirstName, data.LastName, data.Email, data.Phone, data.ID)
	return err
}

// DeleteTx removes the contact inside the caller's transaction so the
// address cascade and the contact delete commit atomically.
func (s *SQL) DeleteTx(ctx context.Context, tx *sqlx.Tx, id uint64) error {
	_, err := tx.ExecContext(ctx, deleteContactQuery, id)
	return err
}

// buildSearchWhere appends the optional filter clauses shared by the page
// query and the count query.
func buildSearchWhere(filter *model.ContactSearchFilter) (string, []any) {
	var sb strings.Builder
	args := []any{filter.Username}

	if filter.Name != "" {
		sb.WriteString(" AND (LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ?)")
		pattern := "%" + strings.ToLower(filter.Name) + "%"
		args = append(args, pattern, pattern)
	}
	if filter.Email != "" {
		sb.WriteString(" AND LOWER(email) LIKE ?")
		args = append(args, "%"+strings.ToLower(filter.Email)+"%")
	}
	if filter.Phone != "" {
		sb.WriteString(" AND phone LIKE ?")
		args = append(args, "%"+filter.Phone+"%")
	}

	return sb.String(), args
}

func (s *SQL) Search(ctx context.Context, filter *model.ContactSearchFilter, limit, offset int) ([]model.ContactEntity, int64, error) {
	where, args := buildSearchWhere(filter)

	query := searchContactBase + where + " ORDER BY id ASC LIMIT ? OFFSET ?"
	rows, err := s.conn.QueryxContext(ctx, query, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	items := make([]model.ContactEntity, 0)
	for rows.Next() {
		var it model.ContactEntity
		if err := rows.StructScan(&it); err != nil {
			return nil, 0, err
		}
		items = append(items, it)
	}

	var total int64
	if err := s.conn.GetContext(ctx, &total, searchCountBase+where, args...); err != nil {
		return nil, 0, err
	}

	return items, total, nil
}
