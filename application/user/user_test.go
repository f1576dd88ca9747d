package user_test

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	appuser "github.com/wpangestu/contacts-api/application/user"
	"github.com/wpangestu/contacts-api/cmd/config"
	"github.com/wpangestu/contacts-api/constant"
	sessionmocks "github.com/wpangestu/contacts-api/mocks/repository/session"
	usermocks "github.com/wpangestu/contacts-api/mocks/repository/user"
	"github.com/wpangestu/contacts-api/model"
	cerr "github.com/wpangestu/contacts-api/utils/errors"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func testConfig() *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			SessionExpTime: time.Hour,
		},
	}
}

func assertErrType(t *testing.T, err error, errType constant.ErrorType) {
	t.Helper()
	var ce cerr.CustomError
	if !errors.As(err, &ce) {
		t.Fatalf("error type = %T, want CustomError", err)
	}
	if ce.Error() != constant.ErrorTypeMessage[errType] {
		t.Fatalf("error message = %q, want %q", ce.Error(), constant.ErrorTypeMessage[errType])
	}
	if ce.ErrorHTTPCode() != constant.ErrorTypeHTTPCode[errType] {
		t.Fatalf("error http code = %d, want %d", ce.ErrorHTTPCode(), constant.ErrorTypeHTTPCode[errType])
	}
}

func TestUserApp_Register(t *testing.T) {
	type fields struct {
		userRepo    *usermocks.UserRepository
		sessionRepo *sessionmocks.SessionRepository
	}
	type args struct {
		ctx context.Context
		req *model.RegisterUserRequest
	}
	tests := []struct {
		name     string
		fields   fields
		args     args
		mockCall func(f fields)
		want     *model.UserResponse
		wantErr  bool
		errType  constant.ErrorType
	}{
		{
			name: "success: register new user",
			fields: fields{
				userRepo:    usermocks.NewUserRepository(t),
				sessionRepo: sessionmocks.NewSessionRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.RegisterUserRequest{
					Username: "wpangestu",
					Password: "rahasia",
					Name:     "Wahyu Pangestu",
				},
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Username: "wpangestu"}).
					Return(nil, nil).
					Once()

				f.userRepo.
					On("Create", mock.Anything, mock.MatchedBy(func(ent *model.UserEntity) bool {
						if ent.Username != "wpangestu" || ent.Name != "Wahyu Pangestu" {
							return false
						}
						// the stored hash must verify against the plain password
						return bcrypt.CompareHashAndPassword([]byte(ent.PasswordHash), []byte("rahasia")) == nil
					})).
					Return(nil).
					Once()
			},
			want: &model.UserResponse{
				Username: "wpangestu",
				Name:     "Wahyu Pangestu",
			},
			wantErr: false,
		},
		{
			// bcrypt only keys on 72 bytes; longer passwords still register
			name: "success: password longer than the bcrypt key limit",
			fields: fields{
				userRepo:    usermocks.NewUserRepository(t),
				sessionRepo: sessionmocks.NewSessionRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.RegisterUserRequest{
					Username: "wpangestu",
					Password: strings.Repeat("p", 80),
					Name:     "Wahyu Pangestu",
				},
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Username: "wpangestu"}).
					Return(nil, nil).
					Once()
				f.userRepo.
					On("Create", mock.Anything, mock.MatchedBy(func(ent *model.UserEntity) bool {
						long := strings.Repeat("p", 80)
						return bcrypt.CompareHashAndPassword([]byte(ent.PasswordHash), []byte(long)) == nil
					})).
					Return(nil).
					Once()
			},
			want: &model.UserResponse{
				Username: "wpangestu",
				Name:     "Wahyu Pangestu",
			},
			wantErr: false,
		},
		{
			name: "error: username already exists",
			fields: fields{
				userRepo:    usermocks.NewUserRepository(t),
				sessionRepo: sessionmocks.NewSessionRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.RegisterUserRequest{
					Username: "wpangestu",
					Password: "rahasia",
					Name:     "Wahyu Pangestu",
				},
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Username: "wpangestu"}).
					Return(&model.UserEntity{Username: "wpangestu", Name: "Wahyu Pangestu"}, nil).
					Once()
			},
			want:    nil,
			wantErr: true,
			errType: constant.ErrUsernameExists,
		},
		{
			name: "error: repository lookup fails",
			fields: fields{
				userRepo:    usermocks.NewUserRepository(t),
				sessionRepo: sessionmocks.NewSessionRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.RegisterUserRequest{
					Username: "wpangestu",
					Password: "rahasia",
					Name:     "Wahyu Pangestu",
				},
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Username: "wpangestu"}).
					Return(nil, errors.New("connection refused")).
					Once()
			},
			want:    nil,
			wantErr: true,
			errType: constant.ErrInternal,
		},
		{
			name: "error: create fails",
			fields: fields{
				userRepo:    usermocks.NewUserRepository(t),
				sessionRepo: sessionmocks.NewSessionRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.RegisterUserRequest{
					Username: "wpangestu",
					Password: "rahasia",
					Name:     "Wahyu Pangestu",
				},
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Username: "wpangestu"}).
					Return(nil, nil).
					Once()
				f.userRepo.
					On("Create", mock.Anything, mock.AnythingOfType("*model.UserEntity")).
					Return(errors.New("create failed")).
					Once()
			},
			want:    nil,
			wantErr: true,
			errType: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appuser.NewUserApp(testConfig(), tt.fields.userRepo, tt.fields.sessionRepo)

			got, err := app.Register(tt.args.ctx, tt.args.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Register() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				assertErrType(t, err, tt.errType)
				return
			}

			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Register() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestUserApp_Login(t *testing.T) {
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("rahasia"), bcrypt.DefaultCost)
	oldToken := "old-token"

	type fields struct {
		userRepo    *usermocks.UserRepository
		sessionRepo *sessionmocks.SessionRepository
	}
	type args struct {
		ctx context.Context
		req *model.LoginUserRequest
	}
	tests := []struct {
		name     string
		fields   fields
		args     args
		mockCall func(f fields)
		wantErr  bool
		errType  constant.ErrorType
	}{
		{
			name: "success: first login issues a token",
			fields: fields{
				userRepo:    usermocks.NewUserRepository(t),
				sessionRepo: sessionmocks.NewSessionRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.LoginUserRequest{Username: "wpangestu", Password: "rahasia"},
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Username: "wpangestu"}).
					Return(&model.UserEntity{
						Username:     "wpangestu",
						Name:         "Wahyu Pangestu",
						PasswordHash: string(hashedPassword),
					}, nil).
					Once()
				f.userRepo.
					On("UpdateToken", mock.Anything, "wpangestu", mock.AnythingOfType("*string")).
					Return(nil).
					Once()
				f.sessionRepo.
					On("SetSession", mock.Anything, mock.AnythingOfType("string"), "wpangestu", time.Hour).
					Return(nil).
					Once()
			},
			wantErr: false,
		},
		{
			name: "success: relogin evicts the previous token from the cache",
			fields: fields{
				userRepo:    usermocks.NewUserRepository(t),
				sessionRepo: sessionmocks.NewSessionRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.LoginUserRequest{Username: "wpangestu", Password: "rahasia"},
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Username: "wpangestu"}).
					Return(&model.UserEntity{
						Username:     "wpangestu",
						Name:         "Wahyu Pangestu",
						PasswordHash: string(hashedPassword),
						Token:        &oldToken,
					}, nil).
					Once()
				f.userRepo.
					On("UpdateToken", mock.Anything, "wpangestu", mock.AnythingOfType("*string")).
					Return(nil).
					Once()
				f.sessionRepo.
					On("DeleteSession", mock.Anything, oldToken).
					Return(nil).
					Once()
				f.sessionRepo.
					On("SetSession", mock.Anything, mock.AnythingOfType("string"), "wpangestu", time.Hour).
					Return(nil).
					Once()
			},
			wantErr: false,
		},
		{
			name: "error: unknown username",
			fields: fields{
				userRepo:    usermocks.NewUserRepository(t),
				sessionRepo: sessionmocks.NewSessionRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.LoginUserRequest{Username: "nobody", Password: "rahasia"},
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Username: "nobody"}).
					Return(nil, nil).
					Once()
			},
			wantErr: true,
			errType: constant.ErrWrongCredentials,
		},
		{
			name: "error: wrong password",
			fields: fields{
				userRepo:    usermocks.NewUserRepository(t),
				sessionRepo: sessionmocks.NewSessionRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.LoginUserRequest{Username: "wpangestu", Password: "salah"},
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Username: "wpangestu"}).
					Return(&model.UserEntity{
						Username:     "wpangestu",
						Name:         "Wahyu Pangestu",
						PasswordHash: string(hashedPassword),
					}, nil).
					Once()
			},
			wantErr: true,
			errType: constant.ErrWrongCredentials,
		},
		{
			name: "error: token write fails",
			fields: fields{
				userRepo:    usermocks.NewUserRepository(t),
				sessionRepo: sessionmocks.NewSessionRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.LoginUserRequest{Username: "wpangestu", Password: "rahasia"},
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Username: "wpangestu"}).
					Return(&model.UserEntity{
						Username:     "wpangestu",
						Name:         "Wahyu Pangestu",
						PasswordHash: string(hashedPassword),
					}, nil).
					Once()
				f.userRepo.
					On("UpdateToken", mock.Anything, "wpangestu", mock.AnythingOfType("*string")).
					Return(errors.New("write failed")).
					Once()
			},
			wantErr: true,
			errType: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appuser.NewUserApp(testConfig(), tt.fields.userRepo, tt.fields.sessionRepo)

			got, err := app.Login(tt.args.ctx, tt.args.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Login() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				assertErrType(t, err, tt.errType)
				return
			}

			if got.Token == "" {
				t.Fatalf("Login() returned an empty token")
			}
		})
	}
}

func TestUserApp_Update(t *testing.T) {
	name := "Wahyu P"
	password := "rahasia-baru"
	longPassword := strings.Repeat("p", 80)
	empty := ""

	type fields struct {
		userRepo    *usermocks.UserRepository
		sessionRepo *sessionmocks.SessionRepository
	}
	tests := []struct {
		name     string
		fields   fields
		user     *model.UserEntity
		req      *model.UpdateUserRequest
		mockCall func(f fields)
		want     *model.UserResponse
		wantErr  bool
		wantMsg  string
	}{
		{
			name: "success: update name only",
			fields: fields{
				userRepo:    usermocks.NewUserRepository(t),
				sessionRepo: sessionmocks.NewSessionRepository(t),
			},
			user: &model.UserEntity{Username: "wpangestu", Name: "Wahyu Pangestu", PasswordHash: "hash"},
			req:  &model.UpdateUserRequest{Name: &name},
			mockCall: func(f fields) {
				f.userRepo.
					On("UpdateProfile", mock.Anything, mock.MatchedBy(func(ent *model.UserEntity) bool {
						return ent.Name == "Wahyu P" && ent.PasswordHash == "hash"
					})).
					Return(nil).
					Once()
			},
			want: &model.UserResponse{Username: "wpangestu", Name: "Wahyu P"},
		},
		{
			name: "success: update password only rehashes",
			fields: fields{
				userRepo:    usermocks.NewUserRepository(t),
				sessionRepo: sessionmocks.NewSessionRepository(t),
			},
			user: &model.UserEntity{Username: "wpangestu", Name: "Wahyu Pangestu", PasswordHash: "hash"},
			req:  &model.UpdateUserRequest{Password: &password},
			mockCall: func(f fields) {
				f.userRepo.
					On("UpdateProfile", mock.Anything, mock.MatchedBy(func(ent *model.UserEntity) bool {
						return ent.Name == "Wahyu Pangestu" &&
							bcrypt.CompareHashAndPassword([]byte(ent.PasswordHash), []byte("rahasia-baru")) == nil
					})).
					Return(nil).
					Once()
			},
			want: &model.UserResponse{Username: "wpangestu", Name: "Wahyu Pangestu"},
		},
		{
			name: "success: long password still rehashes",
			fields: fields{
				userRepo:    usermocks.NewUserRepository(t),
				sessionRepo: sessionmocks.NewSessionRepository(t),
			},
			user: &model.UserEntity{Username: "wpangestu", Name: "Wahyu Pangestu", PasswordHash: "hash"},
			req:  &model.UpdateUserRequest{Password: &longPassword},
			mockCall: func(f fields) {
				f.userRepo.
					On("UpdateProfile", mock.Anything, mock.MatchedBy(func(ent *model.UserEntity) bool {
						return bcrypt.CompareHashAndPassword([]byte(ent.PasswordHash), []byte(longPassword)) == nil
					})).
					Return(nil).
					Once()
			},
			want: &model.UserResponse{Username: "wpangestu", Name: "Wahyu Pangestu"},
		},
		{
			name:    "error: no field provided",
			fields:  fields{userRepo: usermocks.NewUserRepository(t), sessionRepo: sessionmocks.NewSessionRepository(t)},
			user:    &model.UserEntity{Username: "wpangestu", Name: "Wahyu Pangestu"},
			req:     &model.UpdateUserRequest{},
			wantErr: true,
			wantMsg: "at least one of name or password must be provided",
		},
		{
			name:    "error: explicit empty name",
			fields:  fields{userRepo: usermocks.NewUserRepository(t), sessionRepo: sessionmocks.NewSessionRepository(t)},
			user:    &model.UserEntity{Username: "wpangestu", Name: "Wahyu Pangestu"},
			req:     &model.UpdateUserRequest{Name: &empty},
			wantErr: true,
			wantMsg: "name must not be empty",
		},
		{
			name:    "error: explicit empty password",
			fields:  fields{userRepo: usermocks.NewUserRepository(t), sessionRepo: sessionmocks.NewSessionRepository(t)},
			user:    &model.UserEntity{Username: "wpangestu", Name: "Wahyu Pangestu"},
			req:     &model.UpdateUserRequest{Password: &empty},
			wantErr: true,
			wantMsg: "password must not be empty",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appuser.NewUserApp(testConfig(), tt.fields.userRepo, tt.fields.sessionRepo)

			got, err := app.Update(context.Background(), tt.user, tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Update() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorHTTPCode() != 400 {
					t.Fatalf("error http code = %d, want 400", ce.ErrorHTTPCode())
				}
				if tt.wantMsg != "" && ce.Error() != tt.wantMsg {
					t.Fatalf("error message = %q, want %q", ce.Error(), tt.wantMsg)
				}
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Update() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestUserApp_Logout(t *testing.T) {
	token := "active-token"

	userRepo := usermocks.NewUserRepository(t)
	sessionRepo := sessionmocks.NewSessionRepository(t)

	userRepo.
		On("UpdateToken", mock.Anything, "wpangestu", (*string)(nil)).
		Return(nil).
		Once()
	sessionRepo.
		On("DeleteSession", mock.Anything, token).
		Return(nil).
		Once()

	app := appuser.NewUserApp(testConfig(), userRepo, sessionRepo)
	err := app.Logout(context.Background(), &model.UserEntity{Username: "wpangestu", Token: &token})
	if err != nil {
		t.Fatalf("Logout() error = %v", err)
	}
}

func TestUserApp_Authenticate(t *testing.T) {
	token := "session-token"
	otherToken := "rotated-token"

	type fields struct {
		userRepo    *usermocks.UserRepository
		sessionRepo *sessionmocks.SessionRepository
	}
	tests := []struct {
		name         string
		fields       fields
		token        string
		mockCall     func(f fields)
		wantUsername string
		wantErr      bool
		errType      constant.ErrorType
	}{
		{
			name: "success: cache hit verified against the token column",
			fields: fields{
				userRepo:    usermocks.NewUserRepository(t),
				sessionRepo: sessionmocks.NewSessionRepository(t),
			},
			token: token,
			mockCall: func(f fields) {
				f.sessionRepo.
					On("GetSession", mock.Anything, token).
					Return("wpangestu", nil).
					Once()
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Username: "wpangestu"}).
					Return(&model.UserEntity{Username: "wpangestu", Name: "Wahyu Pangestu", Token: &token}, nil).
					Once()
			},
			wantUsername: "wpangestu",
		},
		{
			name: "success: cache miss falls back to the database and repopulates",
			fields: fields{
				userRepo:    usermocks.NewUserRepository(t),
				sessionRepo: sessionmocks.NewSessionRepository(t),
			},
			token: token,
			mockCall: func(f fields) {
				f.sessionRepo.
					On("GetSession", mock.Anything, token).
					Return("", errors.New("redis: nil")).
					Once()
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Token: token}).
					Return(&model.UserEntity{Username: "wpangestu", Name: "Wahyu Pangestu", Token: &token}, nil).
					Once()
				f.sessionRepo.
					On("SetSession", mock.Anything, token, "wpangestu", time.Hour).
					Return(nil).
					Once()
			},
			wantUsername: "wpangestu",
		},
		{
			name: "error: stale cache entry after token rotation",
			fields: fields{
				userRepo:    usermocks.NewUserRepository(t),
				sessionRepo: sessionmocks.NewSessionRepository(t),
			},
			token: token,
			mockCall: func(f fields) {
				f.sessionRepo.
					On("GetSession", mock.Anything, token).
					Return("wpangestu", nil).
					Once()
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Username: "wpangestu"}).
					Return(&model.UserEntity{Username: "wpangestu", Name: "Wahyu Pangestu", Token: &otherToken}, nil).
					Once()
				f.sessionRepo.
					On("DeleteSession", mock.Anything, token).
					Return(nil).
					Once()
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Token: token}).
					Return(nil, nil).
					Once()
			},
			wantErr: true,
			errType: constant.ErrUnauthorize,
		},
		{
			name: "error: empty token",
			fields: fields{
				userRepo:    usermocks.NewUserRepository(t),
				sessionRepo: sessionmocks.NewSessionRepository(t),
			},
			token:   "",
			wantErr: true,
			errType: constant.ErrUnauthorize,
		},
		{
			name: "error: no user matches the token",
			fields: fields{
				userRepo:    usermocks.NewUserRepository(t),
				sessionRepo: sessionmocks.NewSessionRepository(t),
			},
			token: token,
			mockCall: func(f fields) {
				f.sessionRepo.
					On("GetSession", mock.Anything, token).
					Return("", errors.New("redis: nil")).
					Once()
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Token: token}).
					Return(nil, nil).
					Once()
			},
			wantErr: true,
			errType: constant.ErrUnauthorize,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appuser.NewUserApp(testConfig(), tt.fields.userRepo, tt.fields.sessionRepo)

			got, err := app.Authenticate(context.Background(), tt.token)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Authenticate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrType(t, err, tt.errType)
				return
			}
			if got.Username != tt.wantUsername {
				t.Fatalf("Authenticate() username = %s, want %s", got.Username, tt.wantUsername)
			}
		})
	}
}
