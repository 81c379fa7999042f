package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"npo-hub-be/internal/dto"
	"npo-hub-be/internal/model"
	"npo-hub-be/internal/repository/contract"
	"npo-hub-be/internal/repository/implementation"
	"npo-hub-be/pkg/database"
)

// nopLogger satisfies logger.ILogger for tests.
type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.NewGormDBFromDSN(":memory:")
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.User{}))
	return db
}

func newTestUserService(t *testing.T) (IUserService, contract.UserRepository, *gochannel.GoChannel) {
	t.Helper()
	repo := implementation.NewUserRepository(newTestDB(t))
	pubsub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	svc := NewUserService(repo, pubsub, "user.registered", "test-secret", 30, nopLogger{})
	return svc, repo, pubsub
}

func TestRegister(t *testing.T) {
	svc, _, _ := newTestUserService(t)

	res, err := svc.Register(context.Background(), &dto.CreateUserRequest{
		Email:     "chair@npo.example",
		FirstName: "Amina",
		LastName:  "Haddad",
		Metadata:  map[string]interface{}{"org": "relief"},
	})
	require.NoError(t, err)

	assert.Equal(t, "chair@npo.example", res.Email)
	assert.Equal(t, "Amina", res.FirstName)
	assert.NotZero(t, res.Id)
	assert.NotEmpty(t, res.AccessToken)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _, _ := newTestUserService(t)

	req := &dto.CreateUserRequest{Email: "chair@npo.example"}
	_, err := svc.Register(context.Background(), req)
	require.NoError(t, err)

	// Second registration with the same email, different casing of the
	// other fields, is rejected.
	_, err = svc.Register(context.Background(), &dto.CreateUserRequest{
		Email:     "chair@npo.example",
		FirstName: "Someone",
	})
	assert.ErrorIs(t, err, ErrEmailAlreadyRegistered)
}

func TestRegisterPublishesEvent(t *testing.T) {
	svc, _, pubsub := newTestUserService(t)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	messages, err := pubsub.Subscribe(ctx, "user.registered")
	require.NoError(t, err)

	res, err := svc.Register(ctx, &dto.CreateUserRequest{Email: "board@npo.example"})
	require.NoError(t, err)

	select {
	case msg := <-messages:
		var payload dto.UserRegisteredMessage
		require.NoError(t, json.Unmarshal(msg.Payload, &payload))
		assert.Equal(t, res.Id, payload.UserId)
		assert.Equal(t, "board@npo.example", payload.Email)
		msg.Ack()
	case <-ctx.Done():
		t.Fatal("no user-registered event published")
	}
}

func TestGetUser(t *testing.T) {
	svc, _, _ := newTestUserService(t)

	res, err := svc.Register(context.Background(), &dto.CreateUserRequest{Email: "member@npo.example"})
	require.NoError(t, err)

	got, err := svc.GetUser(context.Background(), res.Id)
	require.NoError(t, err)
	assert.Equal(t, "member@npo.example", got.Email)
}

func TestGetUserNotFound(t *testing.T) {
	svc, _, _ := newTestUserService(t)

	_, err := svc.GetUser(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrUserNotFound)
}
