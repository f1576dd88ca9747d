package model

// AddressEntity represents the address table entity. Optional columns are
// nullable and surface as JSON null when unset.
type AddressEntity struct {
	ID         uint64  `db:"id" json:"id"`
	ContactID  uint64  `db:"contact_id" json:"-"`
	Street     *string `db:"street" json:"street"`
	City       *string `db:"city" json:"city"`
	Province   *string `db:"province" json:"province"`
	Country    string  `db:"country" json:"country"`
	PostalCode *string `db:"postal_code" json:"postal_code"`
}

// CreateAddressRequest for creating an address under a contact. A contact_id
// in the body is ignored; the path parameter is authoritative.
type CreateAddressRequest struct {
	Street     *string `json:"street" validate:"omitempty,max=255"`
	City       *string `json:"city" validate:"omitempty,max=100"`
	Province   *string `json:"province" validate:"omitempty,max=100"`
	Country    string  `json:"country" validate:"required,max=100"`
	PostalCode *string `json:"postal_code" validate:"omitempty,max=10"`
}

// UpdateAddressRequest for updating an address; ID comes from the path
type UpdateAddressRequest struct {
	ID         uint64  `json:"-" validate:"gt=0"`
	Street     *string `json:"street" validate:"omitempty,max=255"`
	City       *string `json:"city" validate:"omitempty,max=100"`
	Province   *string `json:"province" validate:"omitempty,max=100"`
	Country    string  `json:"country" validate:"required,max=100"`
	PostalCode string  `json:"postal_code" validate:"required,max=10"`
}

// AddressResponse is the projection returned to clients
type AddressResponse struct {
	ID         uint64  `json:"id"`
	Street     *string `json:"street"`
	City       *string `json:"city"`
	Province   *string `json:"province"`
	Country    string  `json:"country"`
	PostalCode *string `json:"postal_code"`
}
