package user

import (
	"context"

	"github.com/google/uuid"
	"github.com/wpangestu/contacts-api/cmd/config"
	"github.com/wpangestu/contacts-api/constant"
	"github.com/wpangestu/contacts-api/model"
	sessionrepo "github.com/wpangestu/contacts-api/repository/session"
	userrepo "github.com/wpangestu/contacts-api/repository/user"
	"github.com/wpangestu/contacts-api/utils/errors"
	"github.com/wpangestu/contacts-api/utils/logger"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type UserApp interface {
	Register(ctx context.Context, req *model.RegisterUserRequest) (*model.UserResponse, error)
	Login(ctx context.Context, req *model.LoginUserRequest) (*model.TokenResponse, error)
	Current(ctx context.Context, user *model.UserEntity) (*model.UserResponse, error)
	Update(ctx context.Context, user *model.UserEntity, req *model.UpdateUserRequest) (*model.UserResponse, error)
	Logout(ctx context.Context, user *model.UserEntity) error
	Authenticate(ctx context.Context, token string) (*model.UserEntity, error)
}

type UserAppImpl struct {
	config      *config.Config
	userRepo    userrepo.UserRepository
	sessionRepo sessionrepo.SessionRepository
}

func NewUserApp(config *config.Config, userRepo userrepo.UserRepository, sessionRepo sessionrepo.SessionRepository) UserApp {
	return &UserAppImpl{
		config:      config,
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
	}
}

// hashPassword truncates to 72 bytes before hashing: bcrypt keys on at most
// 72 bytes and GenerateFromPassword rejects anything longer, while
// CompareHashAndPassword silently ignores the excess. Truncating keeps the
// full schema range of passwords working through both paths.
func hashPassword(password string) ([]byte, error) {
	b := []byte(password)
	if len(b) > 72 {
		b = b[:72]
	}
	return bcrypt.GenerateFromPassword(b, bcrypt.DefaultCost)
}

func (s *UserAppImpl) Register(ctx context.Context, req *model.RegisterUserRequest) (*model.UserResponse, error) {
	existingUser, err := s.userRepo.Get(ctx, &model.UserFilter{Username: req.Username})
	if err != nil {
		logger.Error("[Register] err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if existingUser != nil {
		return nil, errors.SetCustomError(constant.ErrUsernameExists)
	}

	hashedPassword, err := hashPassword(req.Password)
	if err != nil {
		logger.Error("[Register] err hashPassword", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	userEntity := &model.UserEntity{
		Username:     req.Username,
		Name:         req.Name,
		PasswordHash: string(hashedPassword),
	}

	if err := s.userRepo.Create(ctx, userEntity); err != nil {
		logger.Error("[Register] err userRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.UserResponse{
		Username: userEntity.Username,
		Name:     userEntity.Name,
	}, nil
}

func (s *UserAppImpl) Login(ctx context.Context, req *model.LoginUserRequest) (*model.TokenResponse, error) {
	user, err := s.userRepo.Get(ctx, &model.UserFilter{Username: req.Username})
	if err != nil {
		logger.Error("[Login] err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		return nil, errors.SetCustomError(constant.ErrWrongCredentials)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, errors.SetCustomError(constant.ErrWrongCredentials)
	}

	// a fresh login always replaces the previous token
	token := uuid.NewString()
	if err := s.userRepo.UpdateToken(ctx, user.Username, &token); err != nil {
		logger.Error("[Login] err userRepo.UpdateToken", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if user.Token != nil {
		if err := s.sessionRepo.DeleteSession(ctx, *user.Token); err != nil {
			logger.Warn("[Login] err sessionRepo.DeleteSession", zap.String("error", err.Error()))
		}
	}
	if err := s.sessionRepo.SetSession(ctx, token, user.Username, s.config.Auth.SessionExpTime); err != nil {
		// cache only; the token column stays authoritative
		logger.Warn("[Login] err sessionRepo.SetSession", zap.String("error", err.Error()))
	}

	return &model.TokenResponse{Token: token}, nil
}

func (s *UserAppImpl) Current(ctx context.Context, user *model.UserEntity) (*model.UserResponse, error) {
	return &model.UserResponse{
		Username: user.Username,
		Name:     user.Name,
	}, nil
}

func (s *UserAppImpl) Update(ctx context.Context, user *model.UserEntity, req *model.UpdateUserRequest) (*model.UserResponse, error) {
	if req.Name == nil && req.Password == nil {
		return nil, errors.SetCustomErrorMessage(constant.ErrValidation, "at least one of name or password must be provided")
	}

	// a present-but-empty field is a client mistake, not an omission
	if req.Name != nil {
		if *req.Name == "" {
			return nil, errors.SetCustomErrorMessage(constant.ErrValidation, "name must not be empty")
		}
		user.Name = *req.Name
	}
	if req.Password != nil {
		if *req.Password == "" {
			return nil, errors.SetCustomErrorMessage(constant.ErrValidation, "password must not be empty")
		}
		hashedPassword, err := hashPassword(*req.Password)
		if err != nil {
			logger.Error("[Update] err hashPassword", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		user.PasswordHash = string(hashedPassword)
	}

	if err := s.userRepo.UpdateProfile(ctx, user); err != nil {
		logger.Error("[Update] err userRepo.UpdateProfile", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.UserResponse{
		Username: user.Username,
		Name:     user.Name,
	}, nil
}

func (s *UserAppImpl) Logout(ctx context.Context, user *model.UserEntity) error {
	if err := s.userRepo.UpdateToken(ctx, user.Username, nil); err != nil {
		logger.Error("[Logout] err userRepo.UpdateToken", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	if user.Token != nil {
		if err := s.sessionRepo.DeleteSession(ctx, *user.Token); err != nil {
			logger.Warn("[Logout] err sessionRepo.DeleteSession", zap.String("error", err.Error()))
		}
	}
	return nil
}

// Authenticate resolves an opaque token to its user. The session cache is
// consulted first; any hit is still verified against the token column so a
// rotated or cleared token can never authenticate through a stale entry.
func (s *UserAppImpl) Authenticate(ctx context.Context, token string) (*model.UserEntity, error) {
	if token == "" {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}

	if username, err := s.sessionRepo.GetSession(ctx, token); err == nil && username != "" {
		user, err := s.userRepo.Get(ctx, &model.UserFilter{Username: username})
		if err != nil {
			logger.Error("[Authenticate] err userRepo.Get", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		if user != nil && user.Token != nil && *user.Token == token {
			return user, nil
		}
		if err := s.sessionRepo.DeleteSession(ctx, token); err != nil {
			logger.Warn("[Authenticate] err sessionRepo.DeleteSession", zap.String("error", err.Error()))
		}
	}

	user, err := s.userRepo.Get(ctx, &model.UserFilter{Token: token})
	if err != nil {
		logger.Error("[Authenticate] err userRepo.Get token", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}

	if err := s.sessionRepo.SetSession(ctx, token, user.Username, s.config.Auth.SessionExpTime); err != nil {
		logger.Warn("[Authenticate] err sessionRepo.SetSession", zap.String("error", err.Error()))
	}
	return user, nil
}
