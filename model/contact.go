package model

// ContactEntity represents the contact table entity. Username is the owning
// user and never changes after creation.
type ContactEntity struct {
	ID        uint64 `db:"id" json:"id"`
	Username  string `db:"username" json:"-"`
	FirstName string `db:"first_name" json:"first_name"`
	LastName  string `db:"last_name" json:"last_name"`
	Email     string `db:"email" json:"email"`
	Phone     string `db:"phone" json:"phone"`
}

// ContactSearchFilter narrows a contact search. Username is always set;
// the rest apply as case-insensitive substring matches when non-empty.
type ContactSearchFilter struct {
	Username string
	Name     string
	Email    string
	Phone    string
}

// CreateContactRequest for creating a contact
type CreateContactRequest struct {
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name" validate:"required,max=100"`
	Email     string `json:"email" validate:"required,email,max=200"`
	Phone     string `json:"phone" validate:"required,max=20"`
}

// UpdateContactRequest for updating a contact; ID comes from the path
type UpdateContactRequest struct {
	ID        uint64 `json:"-" validate:"gt=0"`
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name" validate:"required,max=100"`
	Email     string `json:"email" validate:"required,email,max=200"`
	Phone     string `json:"phone" validate:"required,max=20"`
}

// SearchContactRequest for the paginated contact search
type SearchContactRequest struct {
	Page  int    `json:"page" validate:"gte=1"`
	Size  int    `json:"size" validate:"gte=1,lte=100"`
	Name  string `json:"name" validate:"omitempty,max=100"`
	Email string `json:"email" validate:"omitempty,max=200"`
	Phone string `json:"phone" validate:"omitempty,max=20"`
}

// ContactResponse is the projection returned to clients
type ContactResponse struct {
	ID        uint64 `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// PageMetadata describes the paging block of a search response
type PageMetadata struct {
	Page      int   `json:"page"`
	TotalItem int64 `json:"total_item"`
	TotalPage int64 `json:"total_page"`
}

// SearchContactResponse is written to the wire as-is: the rows under
// "data" and the paging block beside them.
type SearchContactResponse struct {
	Data   []ContactResponse `json:"data"`
	Paging PageMetadata      `json:"paging"`
}
