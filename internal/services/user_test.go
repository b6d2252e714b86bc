package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-identity/internal/models"
	"github.com/sbilibin2017/gw-identity/internal/repositories"
	"github.com/sbilibin2017/gw-identity/internal/services"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func newService(ctrl *gomock.Controller) (*services.UserService, *services.MockUserReader, *services.MockUserWriter, *services.MockTokenGenerator, *services.MockKafkaWriter) {
	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockJWT := services.NewMockTokenGenerator(ctrl)
	mockKafka := services.NewMockKafkaWriter(ctrl)
	svc := services.NewUserService(mockReader, mockWriter, mockJWT, mockKafka)
	return svc, mockReader, mockWriter, mockJWT, mockKafka
}

func TestUserService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name      string
		username  string
		email     string
		writerErr error
		wantErr   error
	}{
		{
			name:     "successful registration",
			username: "alice",
			email:    "alice@example.com",
		},
		{
			name:      "username conflict",
			username:  "bob",
			email:     "bob@example.com",
			writerErr: repositories.ErrUsernameExists,
			wantErr:   services.ErrUsernameExists,
		},
		{
			name:      "email conflict",
			username:  "carol",
			email:     "carol@example.com",
			writerErr: repositories.ErrEmailExists,
			wantErr:   services.ErrEmailExists,
		},
		{
			name:      "writer error",
			username:  "eve",
			email:     "eve@example.com",
			writerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, mockWriter, _, mockKafka := newService(ctrl)

			created := &models.UserDB{ID: 1, Username: tt.username, Email: tt.email, PasswordHash: "hash"}

			if tt.writerErr != nil {
				mockWriter.EXPECT().
					Create(gomock.Any(), tt.username, tt.email, gomock.Any()).
					Return(nil, tt.writerErr)
			} else {
				mockWriter.EXPECT().
					Create(gomock.Any(), tt.username, tt.email, gomock.Any()).
					Return(created, nil)
				mockKafka.EXPECT().
					WriteMessages(gomock.Any(), gomock.Any()).
					Return(nil)
			}

			public, err := svc.Register(context.Background(), tt.username, tt.email, "secret123")
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, public)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, &models.UserPublic{ID: 1, Username: tt.username, Email: tt.email}, public)
			}
		})
	}
}

func TestUserService_Register_HashIsNotPlaintext(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockWriter, _, mockKafka := newService(ctrl)

	mockWriter.EXPECT().
		Create(gomock.Any(), "alice", "alice@example.com", gomock.Not("secret123")).
		DoAndReturn(func(_ context.Context, username, email, passwordHash string) (*models.UserDB, error) {
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte("secret123")))
			return &models.UserDB{ID: 1, Username: username, Email: email, PasswordHash: passwordHash}, nil
		})
	mockKafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)

	_, err := svc.Register(context.Background(), "alice", "alice@example.com", "secret123")
	assert.NoError(t, err)
}

func TestUserService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	hashed, _ := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.DefaultCost)
	user := &models.UserDB{ID: 1, Username: "alice", Email: "alice@example.com", PasswordHash: string(hashed)}

	tests := []struct {
		name      string
		email     string
		pass      string
		user      *models.UserDB
		readerErr error
		jwtToken  string
		jwtErr    error
		wantToken string
		wantErr   error
	}{
		{
			name:      "successful login",
			email:     "alice@example.com",
			pass:      "secret",
			user:      user,
			jwtToken:  "token123",
			wantToken: "token123",
		},
		{
			name:    "unknown email",
			email:   "ghost@example.com",
			pass:    "secret",
			user:    nil,
			wantErr: services.ErrInvalidCredentials,
		},
		{
			name:    "wrong password",
			email:   "alice@example.com",
			pass:    "not-the-password",
			user:    user,
			wantErr: services.ErrInvalidCredentials,
		},
		{
			name:      "reader error",
			email:     "alice@example.com",
			pass:      "secret",
			readerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
		{
			name:    "token error",
			email:   "alice@example.com",
			pass:    "secret",
			user:    user,
			jwtErr:  errors.New("sign error"),
			wantErr: errors.New("sign error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockReader, _, mockJWT, _ := newService(ctrl)

			mockReader.EXPECT().
				GetByEmail(gomock.Any(), tt.email).
				Return(tt.user, tt.readerErr)

			if tt.readerErr == nil && tt.user != nil && tt.pass == "secret" {
				mockJWT.EXPECT().
					Generate(gomock.Any(), tt.user.Email).
					Return(tt.jwtToken, tt.jwtErr)
			}

			token, err := svc.Login(context.Background(), tt.email, tt.pass)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantToken, token)
			}
		})
	}
}

func TestUserService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockReader, _, _, _ := newService(ctrl)

	mockReader.EXPECT().
		List(gomock.Any(), 0, 100).
		Return([]models.UserDB{
			{ID: 1, Username: "alice", Email: "alice@example.com", PasswordHash: "hash"},
			{ID: 2, Username: "bob", Email: "bob@example.com", PasswordHash: "hash"},
		}, nil)

	users, err := svc.List(context.Background(), 0, 100)
	assert.NoError(t, err)
	assert.Equal(t, []models.UserPublic{
		{ID: 1, Username: "alice", Email: "alice@example.com"},
		{ID: 2, Username: "bob", Email: "bob@example.com"},
	}, users)
}

func TestUserService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("found", func(t *testing.T) {
		svc, mockReader, _, _, _ := newService(ctrl)
		mockReader.EXPECT().
			GetByID(gomock.Any(), int64(1)).
			Return(&models.UserDB{ID: 1, Username: "alice", Email: "alice@example.com", PasswordHash: "hash"}, nil)

		user, err := svc.Get(context.Background(), 1)
		assert.NoError(t, err)
		assert.Equal(t, &models.UserPublic{ID: 1, Username: "alice", Email: "alice@example.com"}, user)
	})

	t.Run("not found", func(t *testing.T) {
		svc, mockReader, _, _, _ := newService(ctrl)
		mockReader.EXPECT().
			GetByID(gomock.Any(), int64(99)).
			Return(nil, nil)

		user, err := svc.Get(context.Background(), 99)
		assert.ErrorIs(t, err, services.ErrUserNotFound)
		assert.Nil(t, user)
	})
}

func TestUserService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	current := &models.UserDB{ID: 1, Username: "barry", Email: "barry@example.com"}

	t.Run("owner updates self", func(t *testing.T) {
		svc, _, mockWriter, _, mockKafka := newService(ctrl)
		mockWriter.EXPECT().
			Update(gomock.Any(), int64(1), "barry", "barrywhite@example.com", gomock.Any()).
			Return(&models.UserDB{ID: 1, Username: "barry", Email: "barrywhite@example.com", PasswordHash: "newhash"}, nil)
		mockKafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)

		user, err := svc.Update(context.Background(), current, 1, "barry", "barrywhite@example.com", "123456")
		assert.NoError(t, err)
		assert.Equal(t, &models.UserPublic{ID: 1, Username: "barry", Email: "barrywhite@example.com"}, user)
	})

	t.Run("non-owner is denied even for nonexistent target", func(t *testing.T) {
		svc, _, _, _, _ := newService(ctrl)

		user, err := svc.Update(context.Background(), current, 9999, "x", "x@example.com", "pw")
		assert.ErrorIs(t, err, services.ErrNotEnoughPermission)
		assert.Nil(t, user)
	})

	t.Run("username conflict", func(t *testing.T) {
		svc, _, mockWriter, _, _ := newService(ctrl)
		mockWriter.EXPECT().
			Update(gomock.Any(), int64(1), "taken", "barry@example.com", gomock.Any()).
			Return(nil, repositories.ErrUsernameExists)

		_, err := svc.Update(context.Background(), current, 1, "taken", "barry@example.com", "pw")
		assert.ErrorIs(t, err, services.ErrUsernameExists)
	})
}

func TestUserService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	current := &models.UserDB{ID: 1, Username: "barry", Email: "barry@example.com"}

	t.Run("owner deletes self", func(t *testing.T) {
		svc, _, mockWriter, _, mockKafka := newService(ctrl)
		mockWriter.EXPECT().Delete(gomock.Any(), int64(1)).Return(nil)
		mockKafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)

		err := svc.Delete(context.Background(), current, 1)
		assert.NoError(t, err)
	})

	t.Run("non-owner is denied even for nonexistent target", func(t *testing.T) {
		svc, _, _, _, _ := newService(ctrl)

		err := svc.Delete(context.Background(), current, 2)
		assert.ErrorIs(t, err, services.ErrNotEnoughPermission)
	})

	t.Run("not found", func(t *testing.T) {
		svc, _, mockWriter, _, _ := newService(ctrl)
		mockWriter.EXPECT().Delete(gomock.Any(), int64(1)).Return(repositories.ErrUserNotFound)

		err := svc.Delete(context.Background(), current, 1)
		assert.ErrorIs(t, err, services.ErrUserNotFound)
	})
}

func TestUserService_KafkaFailureDoesNotFailRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockWriter, _, mockKafka := newService(ctrl)

	mockWriter.EXPECT().
		Create(gomock.Any(), "alice", "alice@example.com", gomock.Any()).
		Return(&models.UserDB{ID: 1, Username: "alice", Email: "alice@example.com"}, nil)
	mockKafka.EXPECT().
		WriteMessages(gomock.Any(), gomock.Any()).
		Return(errors.New("broker unreachable"))

	user, err := svc.Register(context.Background(), "alice", "alice@example.com", "pw")
	assert.NoError(t, err)
	assert.NotNil(t, user)
}

func TestUserService_NilKafkaWriter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockJWT := services.NewMockTokenGenerator(ctrl)
	svc := services.NewUserService(mockReader, mockWriter, mockJWT, nil)

	mockWriter.EXPECT().
		Create(gomock.Any(), "alice", "alice@example.com", gomock.Any()).
		Return(&models.UserDB{ID: 1, Username: "alice", Email: "alice@example.com"}, nil)

	user, err := svc.Register(context.Background(), "alice", "alice@example.com", "pw")
	assert.NoError(t, err)
	assert.NotNil(t, user)
}
