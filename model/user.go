package model

// UserEntity represents the user table entity. Username is the primary key.
type UserEntity struct {
	Username     string  `db:"username" json:"username"`
	Name         string  `db:"name" json:"name"`
	PasswordHash string  `db:"password_hash" json:"-"`
	Token        *string `db:"token" json:"-"`
}

// UserFilter for querying users
type UserFilter struct {
	Username string
	Token    string
}

// RegisterUserRequest for user registration
type RegisterUserRequest struct {
	Username string `json:"username" validate:"required,max=100"`
	Password string `json:"password" validate:"required,max=100"`
	Name     string `json:"name" validate:"required,max=100"`
}

// LoginUserRequest for user login
type LoginUserRequest struct {
	Username string `json:"username" validate:"required,max=100"`
	Password string `json:"password" validate:"required,max=100"`
}

// UpdateUserRequest patches the profile; at least one field must be present
type UpdateUserRequest struct {
	Name     *string `json:"name" validate:"omitempty,max=100"`
	Password *string `json:"password" validate:"omitempty,max=100"`
}

// UserResponse is the projection returned to clients (never the password hash or token)
type UserResponse struct {
	Username string `json:"username"`
	Name     string `json:"name"`
}

// TokenResponse carries the session token issued on login
type TokenResponse struct {
	Token string `json:"token"`
}
