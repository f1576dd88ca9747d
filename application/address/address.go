package address

import (
	"context"

	"github.com/wpangestu/contacts-api/constant"
	"github.com/wpangestu/contacts-api/model"
	addressrepo "github.com/wpangestu/contacts-api/repository/address"
	contactrepo "github.com/wpangestu/contacts-api/repository/contact"
	"github.com/wpangestu/contacts-api/utils/errors"
	"github.com/wpangestu/contacts-api/utils/logger"
	"go.uber.org/zap"
)

type AddressApp interface {
	Create(ctx context.Context, user *model.UserEntity, contactID uint64, req *model.CreateAddressRequest) (*model.AddressResponse, error)
	Get(ctx context.Context, user *model.UserEntity, contactID, addressID uint64) (*model.AddressResponse, error)
	Update(ctx context.Context, user *model.UserEntity, contactID uint64, req *model.UpdateAddressRequest) (*model.AddressResponse, error)
	Delete(ctx context.Context, user *model.UserEntity, contactID, addressID uint64) error
	List(ctx context.Context, user *model.UserEntity, contactID uint64) ([]model.AddressResponse, error)
}

type AddressAppImpl struct {
	contactRepo contactrepo.ContactRepository
	addressRepo addressrepo.AddressRepository
}

func NewAddressApp(contactRepo contactrepo.ContactRepository, addressRepo addressrepo.AddressRepository) AddressApp {
	return &AddressAppImpl{
		contactRepo: contactRepo,
		addressRepo: addressRepo,
	}
}

// checkContact enforces the first hop of the ownership chain: the contact
// must exist and belong to the requesting user before any address operation.
func (s *AddressAppImpl) checkContact(ctx context.Context, user *model.UserEntity, contactID uint64) error {
	count, err := s.contactRepo.Count(ctx, user.Username, contactID)
	if err != nil {
		logger.Error("[checkContact] err contactRepo.Count", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if count != 1 {
		return errors.SetCustomError(constant.ErrContactNotFound)
	}
	return nil
}

func toAddressResponse(entity *model.AddressEntity) *model.AddressResponse {
	return &model.AddressResponse{
		ID:         entity.ID,
		Street:     entity.Street,
		City:       entity.City,
		Province:   entity.Province,
		Country:    entity.Country,
		PostalCode: entity.PostalCode,
	}
}

func (s *AddressAppImpl) Create(ctx context.Context, user *model.UserEntity, contactID uint64, req *model.CreateAddressRequest) (*model.AddressResponse, error) {
	if err := s.checkContact(ctx, user, contactID); err != nil {
		return nil, err
	}

	entity := &model.AddressEntity{
		ContactID:  contactID,
		Street:     req.Street,
		City:       req.City,
		Province:   req.Province,
		Country:    req.Country,
		PostalCode: req.PostalCode,
	}

	entity, err := s.addressRepo.Create(ctx, entity)
	if err != nil {
		logger.Error("[Create] err addressRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return toAddressResponse(entity), nil
}

func (s *AddressAppImpl) Get(ctx context.Context, user *model.UserEntity, contactID, addressID uint64) (*model.AddressResponse, error) {
	if err := s.checkContact(ctx, user, contactID); err != nil {
		return nil, err
	}

	entity, err := s.addressRepo.Get(ctx, contactID, addressID)
	if err != nil {
		logger.Error("[Get] err addressRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if entity == nil {
		return nil, errors.SetCustomError(constant.ErrAddressNotFound)
	}

	return toAddressResponse(entity), nil
}

func (s *AddressAppImpl) Update(ctx context.Context, user *model.UserEntity, contactID uint64, req *model.UpdateAddressRequest) (*model.AddressResponse, error) {
	if err := s.checkContact(ctx, user, contactID); err != nil {
		return nil, err
	}

	count, err := s.addressRepo.Count(ctx, contactID, req.ID)
	if err != nil {
		logger.Error("[Update] err addressRepo.Count", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if count != 1 {
		return nil, errors.SetCustomError(constant.ErrAddressNotFound)
	}

	entity := &model.AddressEntity{
		ID:         req.ID,
		ContactID:  contactID,
		Street:     req.Street,
		City:       req.City,
		Province:   req.Province,
		Country:    req.Country,
		PostalCode: &req.PostalCode,
	}

	if err := s.addressRepo.Update(ctx, entity); err != nil {
		logger.Error("[Update] err addressRepo.Update", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return toAddressResponse(entity), nil
}

func (s *AddressAppImpl) Delete(ctx context.Context, user *model.UserEntity, contactID, addressID uint64) error {
	if err := s.checkContact(ctx, user, contactID); err != nil {
		return err
	}

	count, err := s.addressRepo.Count(ctx, contactID, addressID)
	if err != nil {
		logger.Error("[Delete] err addressRepo.Count", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if count != 1 {
		return errors.SetCustomError(constant.ErrAddressNotFound)
	}

	if err := s.addressRepo.Delete(ctx, addressID); err != nil {
		logger.Error("[Delete] err addressRepo.Delete", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	return nil
}

func (s *AddressAppImpl) List(ctx context.Context, user *model.UserEntity, contactID uint64) ([]model.AddressResponse, error) {
	if err := s.checkContact(ctx, user, contactID); err != nil {
		return nil, err
	}

	entities, err := s.addressRepo.List(ctx, contactID)
	if err != nil {
		logger.Error("[List] err addressRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	data := make([]model.AddressResponse, 0, len(entities))
	for i := range entities {
		data = append(data, *toAddressResponse(&entities[i]))
	}
	return data, nil
}
