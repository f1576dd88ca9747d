package transport

import (
	"net/http"
	"strconv"

	"github.com/wpangestu/contacts-api/constant"
	"github.com/wpangestu/contacts-api/model"
	utilsContext "github.com/wpangestu/contacts-api/utils/context"
	"github.com/wpangestu/contacts-api/utils/errors"
	validatorx "github.com/wpangestu/contacts-api/utils/validator"
)

// CreateContact handler
// @Summary Create contact
// @Tags Contact
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.CreateContactRequest true "Contact"
// @Success 200 {object} model.ContactResponse
// @Failure 400 {object} errors.CustomError
// @Router /api/contacts [post]
func (s *RestHandler) CreateContact(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	authUser, ok := utilsContext.GetUser(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	var req model.CreateContactRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.ContactApp.Create(ctx, authUser, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// GetContact handler
// @Summary Get contact by id
// @Tags Contact
// @Produce json
// @Security BearerAuth
// @Param contactId path int true "Contact ID"
// @Success 200 {object} model.ContactResponse
// @Failure 404 {object} errors.CustomError
// @Router /api/contacts/{contactId} [get]
func (s *RestHandler) GetContact(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	authUser, ok := utilsContext.GetUser(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	contactID, err := parsePathID(r, "contactId")
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.ContactApp.Get(ctx, authUser, contactID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// UpdateContact handler
// @Summary Update contact
// @Tags Contact
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param contactId path int true "Contact ID"
// @Param request body model.CreateContactRequest true "Contact"
// @Success 200 {object} model.ContactResponse
// @Failure 404 {object} errors.CustomError
// @Router /api/contacts/{contactId} [put]
func (s *RestHandler) UpdateContact(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	authUser, ok := utilsContext.GetUser(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	contactID, err := parsePathID(r, "contactId")
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.UpdateContactRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	// the path parameter wins over any id in the body
	req.ID = contactID

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.ContactApp.Update(ctx, authUser, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// DeleteContact handler
// @Summary Delete contact and its addresses
// @Tags Contact
// @Produce json
// @Security BearerAuth
// @Param contactId path int true "Contact ID"
// @Success 200 {object} string
// @Failure 404 {object} errors.CustomError
// @Router /api/contacts/{contactId} [delete]
func (s *RestHandler) DeleteContact(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	authUser, ok := utilsContext.GetUser(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	contactID, err := parsePathID(r, "contactId")
	if err != nil {
		writeError(w, err)
		return
	}

	if err := s.ContactApp.Delete(ctx, authUser, contactID); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, "OK")
}

// SearchContact handler
// @Summary Search contacts
// @Description Paginated search over the caller's contacts
// @Tags Contact
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page, starts at 1"
// @Param size query int false "Page size, max 100"
// @Param name query string false "Matches first or last name"
// @Param email query string false "Matches email"
// @Param phone query string false "Matches phone"
// @Success 200 {object} model.SearchContactResponse
// @Failure 400 {object} errors.CustomError
// @Router /api/contacts [get]
func (s *RestHandler) SearchContact(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	authUser, ok := utilsContext.GetUser(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	req, err := parseSearchQuery(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := validatorx.ValidateStruct(req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.ContactApp.Search(ctx, authUser, req)
	if err != nil {
		writeError(w, err)
		return
	}

	// the search result carries its own paging block beside the data
	writeJSON(w, http.StatusOK, res)
}

func parseSearchQuery(r *http.Request) (*model.SearchContactRequest, error) {
	q := r.URL.Query()

	req := &model.SearchContactRequest{
		Page:  1,
		Size:  10,
		Name:  q.Get("name"),
		Email: q.Get("email"),
		Phone: q.Get("phone"),
	}

	if raw := q.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			return nil, errors.SetCustomErrorMessage(constant.ErrValidation, "page must be a positive number")
		}
		req.Page = page
	}
	if raw := q.Get("size"); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil {
			return nil, errors.SetCustomErrorMessage(constant.ErrValidation, "size must be a positive number")
		}
		req.Size = size
	}

	return req, nil
}
