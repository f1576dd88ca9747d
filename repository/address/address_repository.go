package address

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/wpangestu/contacts-api/model"
)

type SQL struct {
	conn *sqlx.DB
}

type AddressRepository interface {
	Create(ctx context.Context, data *model.AddressEntity) (*model.AddressEntity, error)
	Get(ctx context.Context, contactID, id uint64) (*model.AddressEntity, error)
	Count(ctx context.Context, contactID, id uint64) (int64, error)
	Update(ctx context.Context, data *model.AddressEntity) error
	Delete(ctx context.Context, id uint64) error
	List(ctx context.Context, contactID uint64) ([]model.AddressEntity, error)
	DeleteByContactTx(ctx context.Context, tx *sqlx.Tx, contactID uint64) error
}

func NewAddressRepository(conn *sqlx.DB) AddressRepository {
	return &SQL{conn: conn}
}

const (
	insertAddressQuery = `INSERT INTO address (contact_id, street, city, province, country, postal_code) VALUES (?, ?, ?, ?, ?, ?)`
	getAddressQuery    = `SELECT id, contact_id, street, city, province, country, postal_code FROM address WHERE contact_id = ? AND id = ?`
	countAddressQuery  = `SELECT COUNT(*) FROM address WHERE contact_id = ? AND id = ?`
	updateAddressQuery = `UPDATE address SET street = ?, city = ?, province = ?, country = ?, postal_code = ? WHERE id = ?`
	deleteAddressQuery = `DELETE FROM address WHERE id = ?`
	listAddressQuery   = `SELECT id, contact_id, street, city, province, country, postal_code FROM address WHERE contact_id = ? ORDER BY id ASC`
	deleteByContactSQL = `DELETE FROM address WHERE contact_id = ?`
)

func (s *SQL) Create(ctx context.Context, data *model.AddressEntity) (*model.AddressEntity, error) {
	result, err := s.conn.ExecContext(ctx, insertAddressQuery, data.ContactID, data.Street, data.City, data.Province, data.Country, data.PostalCode)
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

func (s *SQL) Get(ctx context.Context, contactID, id uint64) (*model.AddressEntity, error) {
	var entity model.AddressEntity
	if err := s.conn.QueryRowxContext(ctx, getAddressQuery, contactID, id).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) Count(ctx context.Context, contactID, id uint64) (int64, error) {
	var count int64
	if err := s.conn.GetContext(ctx, &count, countAddressQuery, contactID, id); err != nil {
		return 0, err
	}
	return count, nil
}

func (s *SQL) Update(ctx context.Context, data *model.AddressEntity) error {
	_, err := s.conn.ExecContext(ctx, updateAddressQuery, data.Street, data.City, data.Province, data.Country, data.PostalCode, data.ID)
	return err
}

func (s *SQL) Delete(ctx context.Context, id uint64) error {
	_, err := s.conn.ExecContext(ctx, deleteAddressQuery, id)
	return err
}

func (s *SQL) List(ctx context.Context, contactID uint64) ([]model.AddressEntity, error) {
	rows, err := s.conn.QueryxContext(ctx, listAddressQuery, contactID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.AddressEntity, 0)
	for rows.Next() {
		var it model.AddressEntity
		if err := rows.StructScan(&it); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, nil
}

// DeleteByContactTx removes every address of a contact inside the caller's
// transaction; used by the contact delete cascade.
func (s *SQL) DeleteByContactTx(ctx context.Context, tx *sqlx.Tx, contactID uint64) error {
	_, err := tx.ExecContext(ctx, deleteByContactSQL, contactID)
	return err
}
