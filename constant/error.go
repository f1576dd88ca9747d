package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrValidation
	ErrUnauthorize
	ErrWrongCredentials
	ErrUsernameExists
	ErrContactNotFound
	ErrAddressNotFound
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:          "success",
	ErrInternal:         "Internal Server Error",
	ErrValidation:       "invalid request",
	ErrUnauthorize:      "Unauthorized",
	ErrWrongCredentials: "Username or password wrong",
	ErrUsernameExists:   "Username already exists",
	ErrContactNotFound:  "Contact is not found",
	ErrAddressNotFound:  "Address is not found",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:          http.StatusOK,
	ErrInternal:         http.StatusInternalServerError,
	ErrValidation:       http.StatusBadRequest,
	ErrUnauthorize:      http.StatusUnauthorized,
	ErrWrongCredentials: http.StatusUnauthorized,
	// duplicate registration stays 400 for compatibility with existing clients
	ErrUsernameExists:  http.StatusBadRequest,
	ErrContactNotFound: http.StatusNotFound,
	ErrAddressNotFound: http.StatusNotFound,
}
