package services

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-identity/internal/logger"
	"github.com/sbilibin2017/gw-identity/internal/models"
	"github.com/sbilibin2017/gw-identity/internal/password"
	"github.com/sbilibin2017/gw-identity/internal/repositories"
	"github.com/segmentio/kafka-go"
)

// Error variables
var (
	ErrUsernameExists      = errors.New("username already exists")
	ErrEmailExists         = errors.New("e-mail already exists")
	ErrUserNotFound        = errors.New("user not found")
	ErrInvalidCredentials  = errors.New("incorrect username or password")
	ErrNotEnoughPermission = errors.New("not enough permission")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByID(ctx context.Context, id int64) (*models.UserDB, error)
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
	List(ctx context.Context, offset, limit int) ([]models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Create(ctx context.Context, username, email, passwordHash string) (*models.UserDB, error)
	Update(ctx context.Context, id int64, username, email, passwordHash string) (*models.UserDB, error)
	Delete(ctx context.Context, id int64) error
}

// TokenGenerator defines an interface for issuing access tokens.
type TokenGenerator interface {
	Generate(ctx context.Context, subject string) (string, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// UserService orchestrates registration, login and owner-gated user CRUD.
type UserService struct {
	reader      UserReader
	writer      UserWriter
	jwt         TokenGenerator
	kafkaWriter KafkaWriter
}

// NewUserService creates a new UserService instance.
func NewUserService(reader UserReader, writer UserWriter, jwt TokenGenerator, kafkaWriter KafkaWriter) *UserService {
	return &UserService{
		reader:      reader,
		writer:      writer,
		jwt:         jwt,
		kafkaWriter: kafkaWriter,
	}
}

// Register creates a new user and returns its public projection.
func (svc *UserService) Register(ctx context.Context, username, email, plaintext string) (*models.UserPublic, error) {
	hash, err := password.Hash(plaintext)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, err
	}

	user, err := svc.writer.Create(ctx, username, email, hash)
	if err != nil {
		logger.Log.Errorw("failed to create user", "username", username, "err", err)
		return nil, mapRepositoryError(err)
	}

	svc.publishUserEvent(ctx, models.UserRegistered, user)

	public := user.Public()
	return &public, nil
}

// Login verifies the e-mail/password pair and issues an access token.
// A missing user and a wrong password collapse to the same error.
func (svc *UserService) Login(ctx context.Context, email, plaintext string) (string, error) {
	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", err
	}
	if user == nil {
		logger.Log.Errorw("login failed: user does not exist", "email", email)
		return "", ErrInvalidCredentials
	}

	ok, err := password.Compare(user.PasswordHash, plaintext)
	if err != nil {
		logger.Log.Errorw("stored credential is corrupt", "user_id", user.ID, "err", err)
		return "", err
	}
	if !ok {
		logger.Log.Errorw("login failed: password mismatch", "email", email)
		return "", ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, user.Email)
	if err != nil {
		logger.Log.Errorw("failed to generate token", "err", err)
		return "", err
	}

	return token, nil
}

// List returns a page of public user projections ordered by id.
func (svc *UserService) List(ctx context.Context, offset, limit int) ([]models.UserPublic, error) {
	users, err := svc.reader.List(ctx, offset, limit)
	if err != nil {
		logger.Log.Errorw("failed to list users", "err", err)
		return nil, err
	}

	public := make([]models.UserPublic, 0, len(users))
	for i := range users {
		public = append(public, users[i].Public())
	}
	return public, nil
}

// Get returns the public projection of the user with the given id.
func (svc *UserService) Get(ctx context.Context, id int64) (*models.UserPublic, error) {
	user, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get user", "id", id, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	public := user.Public()
	return &public, nil
}

// Update mutates the target user. Only the owner may update: a token for a
// different user yields ErrNotEnoughPermission before the target is even
// looked at, so a non-owner cannot probe which ids exist.
func (svc *UserService) Update(ctx context.Context, current *models.UserDB, id int64, username, email, plaintext string) (*models.UserPublic, error) {
	if current.ID != id {
		logger.Log.Errorw("update denied", "current_id", current.ID, "target_id", id)
		return nil, ErrNotEnoughPermission
	}

	hash, err := password.Hash(plaintext)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, err
	}

	user, err := svc.writer.Update(ctx, id, username, email, hash)
	if err != nil {
		logger.Log.Errorw("failed to update user", "id", id, "err", err)
		return nil, mapRepositoryError(err)
	}

	svc.publishUserEvent(ctx, models.UserUpdated, user)

	public := user.Public()
	return &public, nil
}

// Delete removes the target user. Same ownership rule as Update.
func (svc *UserService) Delete(ctx context.Context, current *models.UserDB, id int64) error {
	if current.ID != id {
		logger.Log.Errorw("delete denied", "current_id", current.ID, "target_id", id)
		return ErrNotEnoughPermission
	}

	if err := svc.writer.Delete(ctx, id); err != nil {
		logger.Log.Errorw("failed to delete user", "id", id, "err", err)
		return mapRepositoryError(err)
	}

	svc.publishUserEvent(ctx, models.UserDeleted, current)

	return nil
}

// publishUserEvent publishes a user lifecycle event to Kafka.
// Failures are logged, never surfaced to the caller.
func (svc *UserService) publishUserEvent(ctx context.Context, eventType string, user *models.UserDB) {
	if svc.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "type", eventType, "user_id", user.ID)
		return
	}

	event := models.UserEvent{
		EventID:   uuid.NewString(),
		Type:      eventType,
		UserID:    user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Timestamp: time.Now().Unix(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal user event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(event.UserID, 10)),
		Value: data,
	}

	if err := svc.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish user event to Kafka", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("user event published to Kafka", "event_id", event.EventID, "type", eventType, "user_id", event.UserID)
	}
}

// mapRepositoryError translates storage conflict/absence errors into the
// service-level taxonomy.
func mapRepositoryError(err error) error {
	switch {
	case errors.Is(err, repositories.ErrUsernameExists):
		return ErrUsernameExists
	case errors.Is(err, repositories.ErrEmailExists):
		return ErrEmailExists
	case errors.Is(err, repositories.ErrUserNotFound):
		return ErrUserNotFound
	default:
		return err
	}
}
