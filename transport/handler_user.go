package transport

import (
	"net/http"

	"github.com/wpangestu/contacts-api/constant"
	"github.com/wpangestu/contacts-api/model"
	utilsContext "github.com/wpangestu/contacts-api/utils/context"
	"github.com/wpangestu/contacts-api/utils/errors"
	validatorx "github.com/wpangestu/contacts-api/utils/validator"
)

// Register handler
// @Summary Register user
// @Description Register a new user account
// @Tags User
// @Accept json
// @Produce json
// @Param request body model.RegisterUserRequest true "Register Request"
// @Success 200 {object} model.UserResponse
// @Failure 400 {object} errors.CustomError
// @Router /api/users [post]
func (s *RestHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.RegisterUserRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.UserApp.Register(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// Login handler
// @Summary Login user
// @Description Login with username and password and receive a session token
// @Tags User
// @Accept json
// @Produce json
// @Param request body model.LoginUserRequest true "Login Request"
// @Success 200 {object} model.TokenResponse
// @Failure 401 {object} errors.CustomError
// @Router /api/users/login [post]
func (s *RestHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.LoginUserRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.UserApp.Login(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// CurrentUser handler
// @Summary Get current user
// @Tags User
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.UserResponse
// @Failure 401 {object} errors.CustomError
// @Router /api/users/current [get]
func (s *RestHandler) CurrentUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	authUser, ok := utilsContext.GetUser(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	res, err := s.UserApp.Current(ctx, authUser)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// UpdateUser handler
// @Summary Update current user profile
// @Description Patch the profile name and/or password
// @Tags User
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.UpdateUserRequest true "Update Request"
// @Success 200 {object} model.UserResponse
// @Failure 400 {object} errors.CustomError
// @Router /api/users/current [patch]
func (s *RestHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	authUser, ok := utilsContext.GetUser(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	var req model.UpdateUserRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.UserApp.Update(ctx, authUser, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// Logout handler
// @Summary Logout
// @Description Invalidate the current session token
// @Tags User
// @Produce json
// @Security BearerAuth
// @Success 200 {object} string
// @Failure 401 {object} errors.CustomError
// @Router /api/users/logout [delete]
func (s *RestHandler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	authUser, ok := utilsContext.GetUser(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	if err := s.UserApp.Logout(ctx, authUser); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, "OK")
}
