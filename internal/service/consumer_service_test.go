package service

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"npo-hub-be/internal/dto"
	"npo-hub-be/pkg/memoryservice"
)

// fakeMemory records calls and signals on done once a session is opened.
type fakeMemory struct {
	mu           sync.Mutex
	createdUsers []memoryservice.CreateUserRequest
	sessionsFor  []string
	failCreate   error
	done         chan struct{}
}

func newFakeMemory() *fakeMemory {
	return &fakeMemory{done: make(chan struct{}, 8)}
}

func (f *fakeMemory) CreateUser(ctx context.Context, req memoryservice.CreateUserRequest) (*memoryservice.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failCreate != nil {
		f.done <- struct{}{}
		return nil, f.failCreate
	}
	f.createdUsers = append(f.createdUsers, req)
	return &memoryservice.User{UserID: req.UserID, Email: req.Email}, nil
}

func (f *fakeMemory) AddSession(ctx context.Context, userID string, metadata map[string]interface{}) (*memoryservice.Session, error) {
	f.mu.Lock()
	f.sessionsFor = append(f.sessionsFor, userID)
	f.mu.Unlock()
	f.done <- struct{}{}
	return &memoryservice.Session{SessionID: "abc123", UserID: userID}, nil
}

func publishRegisteredEvent(t *testing.T, pub message.Publisher, payload dto.UserRegisteredMessage) {
	t.Helper()
	raw, err := json.Marshal(payload)
	require.NoError(t, err)
	require.NoError(t, pub.Publish("user.registered", message.NewMessage(watermill.NewUUID(), raw)))
}

func TestConsumeSyncsUserAndOpensSession(t *testing.T) {
	pubsub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	memory := newFakeMemory()
	consumer := NewConsumerService(pubsub, "user.registered", memory, nopLogger{})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, consumer.Consume(ctx))

	userID := uuid.New()
	publishRegisteredEvent(t, pubsub, dto.UserRegisteredMessage{
		UserId: userID,
		Email:  "chair@npo.example",
	})

	select {
	case <-memory.done:
	case <-ctx.Done():
		t.Fatal("event was not processed")
	}

	memory.mu.Lock()
	defer memory.mu.Unlock()
	require.Len(t, memory.createdUsers, 1)
	assert.Equal(t, userID.String(), memory.createdUsers[0].UserID)
	assert.Equal(t, "chair@npo.example", memory.createdUsers[0].Email)
	require.Len(t, memory.sessionsFor, 1)
	assert.Equal(t, userID.String(), memory.sessionsFor[0])
}

func TestConsumeDropsEventOnSyncFailure(t *testing.T) {
	pubsub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	memory := newFakeMemory()
	memory.failCreate = errors.New("memory service down")
	consumer := NewConsumerService(pubsub, "user.registered", memory, nopLogger{})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, consumer.Consume(ctx))

	publishRegisteredEvent(t, pubsub, dto.UserRegisteredMessage{
		UserId: uuid.New(),
		Email:  "chair@npo.example",
	})

	select {
	case <-memory.done:
	case <-ctx.Done():
		t.Fatal("event was not processed")
	}

	// No session is opened when the user sync fails; the failure is logged
	// and the event dropped.
	memory.mu.Lock()
	defer memory.mu.Unlock()
	assert.Empty(t, memory.sessionsFor)
}
