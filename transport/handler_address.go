package transport

import (
	"net/http"

	"github.com/wpangestu/contacts-api/constant"
	"github.com/wpangestu/contacts-api/model"
	utilsContext "github.com/wpangestu/contacts-api/utils/context"
	"github.com/wpangestu/contacts-api/utils/errors"
	validatorx "github.com/wpangestu/contacts-api/utils/validator"
)

// CreateAddress handler
// @Summary Create address under a contact
// @Tags Address
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param contactId path int true "Contact ID"
// @Param request body model.CreateAddressRequest true "Address"
// @Success 200 {object} model.AddressResponse
// @Failure 404 {object} errors.CustomError
// @Router /api/contacts/{contactId}/address [post]
func (s *RestHandler) CreateAddress(w http.ResponseWriter, r *http.Request) {
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

	var req model.CreateAddressRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.AddressApp.Create(ctx, authUser, contactID, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// GetAddress handler
// @Summary Get address by id
// @Tags Address
// @Produce json
// @Security BearerAuth
// @Param contactId path int true "Contact ID"
// @Param addressId path int true "Address ID"
// @Success 200 {object} model.AddressResponse
// @Failure 404 {object} errors.CustomError
// @Router /api/contacts/{contactId}/address/{addressId} [get]
func (s *RestHandler) GetAddress(w http.ResponseWriter, r *http.Request) {
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
	addressID, err := parsePathID(r, "addressId")
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.AddressApp.Get(ctx, authUser, contactID, addressID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// UpdateAddress handler
// @Summary Update address
// @Tags Address
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param contactId path int true "Contact ID"
// @Param addressId path int true "Address ID"
// @Param request body model.UpdateAddressRequest true "Address"
// @Success 200 {object} model.AddressResponse
// @Failure 404 {object} errors.CustomError
// @Router /api/contacts/{contactId}/address/{addressId} [put]
func (s *RestHandler) UpdateAddress(w http.ResponseWriter, r *http.Request) {
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
	addressID, err := parsePathID(r, "addressId")
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.UpdateAddressRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	// the path parameter wins over any id in the body
	req.ID = addressID

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.AddressApp.Update(ctx, authUser, contactID, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// DeleteAddress handler
// @Summary Delete address
// @Tags Address
// @Produce json
// @Security BearerAuth
// @Param contactId path int true "Contact ID"
// @Param addressId path int true "Address ID"
// @Success 200 {object} string
// @Failure 404 {object} errors.CustomError
// @Router /api/contacts/{contactId}/address/{addressId} [delete]
func (s *RestHandler) DeleteAddress(w http.ResponseWriter, r *http.Request) {
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
	addressID, err := parsePathID(r, "addressId")
	if err != nil {
		writeError(w, err)
		return
	}

	if err := s.AddressApp.Delete(ctx, authUser, contactID, addressID); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, "OK")
}

// ListAddress handler
// @Summary List addresses of a contact
// @Tags Address
// @Produce json
// @Security BearerAuth
// @Param contactId path int true "Contact ID"
// @Success 200 {array} model.AddressResponse
// @Failure 404 {object} errors.CustomError
// @Router /api/contacts/{contactId}/address [get]
func (s *RestHandler) ListAddress(w http.ResponseWriter, r *http.Request) {
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

	res, err := s.AddressApp.List(ctx, authUser, contactID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}
