package service

import (
	"context"
	"encoding/json"

	"npo-hub-be/internal/dto"
	"npo-hub-be/internal/pkg/logger"
	"npo-hub-be/pkg/memoryservice"

	"github.com/ThreeDotsLabs/watermill/message"
)

// MemoryGateway is the slice of the memory-service client the consumer
// needs.
type MemoryGateway interface {
	CreateUser(ctx context.Context, req memoryservice.CreateUserRequest) (*memoryservice.User, error)
	AddSession(ctx context.Context, userID string, metadata map[string]interface{}) (*memoryservice.Session, error)
}

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService mirrors registered hub users into the remote memory
// service and opens their first session. The mirror is best-effort: a
// failed sync is logged and the event dropped, the relational store stays
// authoritative.
type consumerService struct {
	subscriber message.Subscriber
	topic      string
	memory     MemoryGateway
	logger     logger.ILogger
}

func NewConsumerService(
	subscriber message.Subscriber,
	topic string,
	memory MemoryGateway,
	sysLogger logger.ILogger,
) IConsumerService {
	return &consumerService{
		subscriber: subscriber,
		topic:      topic,
		memory:     memory,
		logger:     sysLogger,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.subscriber.Subscribe(ctx, cs.topic)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	// The bus is in-process with no redelivery, so every path acks.
	defer msg.Ack()

	var payload dto.UserRegisteredMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error("consumer_service", "unmarshal user-registered event", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}

	userID := payload.UserId.String()

	if _, err := cs.memory.CreateUser(ctx, memoryservice.CreateUserRequest{
		UserID:    userID,
		Email:     payload.Email,
		FirstName: payload.FirstName,
		LastName:  payload.LastName,
		Metadata:  payload.Metadata,
	}); err != nil {
		cs.logger.Error("consumer_service", "sync user to memory service", map[string]interface{}{
			"user_id": userID,
			"error":   err.Error(),
		})
		return
	}

	session, err := cs.memory.AddSession(ctx, userID, map[string]interface{}{
		"source": "hub-registration",
	})
	if err != nil {
		cs.logger.Error("consumer_service", "open initial session", map[string]interface{}{
			"user_id": userID,
			"error":   err.Error(),
		})
		return
	}

	cs.logger.Info("consumer_service", "user synced to memory service", map[string]interface{}{
		"user_id":    userID,
		"session_id": session.SessionID,
	})
}
