package contact

import (
	"context"

	"github.com/wpangestu/contacts-api/constant"
	"github.com/wpangestu/contacts-api/model"
	addressrepo "github.com/wpangestu/contacts-api/repository/address"
	contactrepo "github.com/wpangestu/contacts-api/repository/contact"
	txrepo "github.com/wpangestu/contacts-api/repository/tx"
	"github.com/wpangestu/contacts-api/utils/errors"
	"github.com/wpangestu/contacts-api/utils/logger"
	"go.uber.org/zap"
)

type ContactApp interface {
	Create(ctx context.Context, user *model.UserEntity, req *model.CreateContactRequest) (*model.ContactResponse, error)
	Get(ctx context.Context, user *model.UserEntity, contactID uint64) (*model.ContactResponse, error)
	Update(ctx context.Context, user *model.UserEntity, req *model.UpdateContactRequest) (*model.ContactResponse, error)
	Delete(ctx context.Context, user *model.UserEntity, contactID uint64) error
	Search(ctx context.Context, user *model.UserEntity, req *model.SearchContactRequest) (*model.SearchContactResponse, error)
}

type ContactAppImpl struct {
	txRepo      txrepo.TxRepository
	contactRepo contactrepo.ContactRepository
	addressRepo addressrepo.AddressRepository
}

func NewContactApp(txRepo txrepo.TxRepository, contactRepo contactrepo.ContactRepository, addressRepo addressrepo.AddressRepository) ContactApp {
	return &ContactAppImpl{
		txRepo:      txRepo,
		contactRepo: contactRepo,
		addressRepo: addressRepo,
	}
}

func toContactResponse(entity *model.ContactEntity) *model.ContactResponse {
	return &model.ContactResponse{
		ID:        entity.ID,
		FirstName: entity.FirstName,
		LastName:  entity.LastName,
		Email:     entity.Email,
		Phone:     entity.Phone,
	}
}

func (s *ContactAppImpl) Create(ctx context.Context, user *model.UserEntity, req *model.CreateContactRequest) (*model.ContactResponse, error) {
	entity := &model.ContactEntity{
		Username:  user.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
	}

	entity, err := s.contactRepo.Create(ctx, entity)
	if err != nil {
		logger.Error("[Create] err contactRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return toContactResponse(entity), nil
}

func (s *ContactAppImpl) Get(ctx context.Context, user *model.UserEntity, contactID uint64) (*model.ContactResponse, error) {
	entity, err := s.contactRepo.Get(ctx, user.Username, contactID)
	if err != nil {
		logger.Error("[Get] err contactRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if entity == nil {
		return nil, errors.SetCustomError(constant.ErrContactNotFound)
	}

	return toContactResponse(entity), nil
}

func (s *ContactAppImpl) Update(ctx context.Context, user *model.UserEntity, req *model.UpdateContactRequest) (*model.ContactResponse, error) {
	count, err := s.contactRepo.Count(ctx, user.Username, req.ID)
	if err != nil {
		logger.Error("[Update] err contactRepo.Count", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if count != 1 {
		return nil, errors.SetCustomError(constant.ErrContactNotFound)
	}

	entity := &model.ContactEntity{
		ID:        req.ID,
		Username:  user.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
	}

	if err := s.contactRepo.Update(ctx, entity); err != nil {
		logger.Error("[Update] err contactRepo.Update", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return toContactResponse(entity), nil
}

// Delete removes the contact and all of its addresses in one transaction so
// no address can outlive its contact.
func (s *ContactAppImpl) Delete(ctx context.Context, user *model.UserEntity, contactID uint64) error {
	count, err := s.contactRepo.Count(ctx, user.Username, contactID)
	if err != nil {
		logger.Error("[Delete] err contactRepo.Count", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if count != 1 {
		return errors.SetCustomError(constant.ErrContactNotFound)
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[Delete] begin tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	if err := s.addressRepo.DeleteByContactTx(ctx, tx, contactID); err != nil {
		logger.Error("[Delete] err addressRepo.DeleteByContactTx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if err := s.contactRepo.DeleteTx(ctx, tx, contactID); err != nil {
		logger.Error("[Delete] err contactRepo.DeleteTx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[Delete] commit tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	return nil
}

func (s *ContactAppImpl) Search(ctx context.Context, user *model.UserEntity, req *model.SearchContactRequest) (*model.SearchContactResponse, error) {
	filter := &model.ContactSearchFilter{
		Username: user.Username,
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
	}

	offset := (req.Page - 1) * req.Size
	entities, total, err := s.contactRepo.Search(ctx, filter, req.Size, offset)
	if err != nil {
		logger.Error("[Search] err contactRepo.Search", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	data := make([]model.ContactResponse, 0, len(entities))
	for i := range entities {
		data = append(data, *toContactResponse(&entities[i]))
	}

	size := int64(req.Size)
	return &model.SearchContactResponse{
		Data: data,
		Paging: model.PageMetadata{
			Page:      req.Page,
			TotalItem: total,
			TotalPage: (total + size - 1) / size,
		},
	}, nil
}
