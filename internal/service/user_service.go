package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"npo-hub-be/internal/dto"
	"npo-hub-be/internal/entity"
	"npo-hub-be/internal/pkg/logger"
	"npo-hub-be/internal/pkg/serverutils"
	"npo-hub-be/internal/repository/contract"
	"npo-hub-be/internal/repository/implementation"
	"npo-hub-be/internal/repository/specification"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
)

var (
	// ErrEmailAlreadyRegistered is the registration Conflict: surfaced to
	// the HTTP caller as 400 "Email already registered".
	ErrEmailAlreadyRegistered = errors.New("email already registered")

	ErrUserNotFound = errors.New("user not found")
)

type IUserService interface {
	Register(ctx context.Context, req *dto.CreateUserRequest) (*dto.RegisterUserResponse, error)
	GetUser(ctx context.Context, id uuid.UUID) (*dto.UserResponse, error)
}

type userService struct {
	repo            contract.UserRepository
	publisher       message.Publisher
	topic           string
	secretKey       string
	tokenExpireMins int
	logger          logger.ILogger
}

func NewUserService(
	repo contract.UserRepository,
	publisher message.Publisher,
	topic string,
	secretKey string,
	tokenExpireMins int,
	sysLogger logger.ILogger,
) IUserService {
	return &userService{
		repo:            repo,
		publisher:       publisher,
		topic:           topic,
		secretKey:       secretKey,
		tokenExpireMins: tokenExpireMins,
		logger:          sysLogger,
	}
}

// Register creates a user keyed by email. The lookup is the fast path for
// the common duplicate; the unique index on email is the real guarantee,
// so a concurrent insert racing past the lookup still resolves to the
// same Conflict instead of a second record.
func (s *userService) Register(ctx context.Context, req *dto.CreateUserRequest) (*dto.RegisterUserResponse, error) {
	existing, err := s.repo.FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, fmt.Errorf("lookup user by email: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailAlreadyRegistered
	}

	user := &entity.User{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Metadata:  req.Metadata,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, implementation.ErrDuplicateKey) {
			return nil, ErrEmailAlreadyRegistered
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	token, err := serverutils.CreateAccessToken(s.secretKey, s.tokenExpireMins, user.Id.String())
	if err != nil {
		return nil, fmt.Errorf("create access token: %w", err)
	}

	s.publishRegistered(user)

	s.logger.Info("user_service", "user registered", map[string]interface{}{
		"user_id": user.Id.String(),
		"email":   user.Email,
	})

	return &dto.RegisterUserResponse{
		UserResponse: toUserResponse(user),
		AccessToken:  token,
	}, nil
}

func (s *userService) GetUser(ctx context.Context, id uuid.UUID) (*dto.UserResponse, error) {
	user, err := s.repo.FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	res := toUserResponse(user)
	return &res, nil
}

// publishRegistered emits the user-registered event consumed by the
// memory-service sync. Registration never fails on a publish error; the
// relational store is authoritative.
func (s *userService) publishRegistered(user *entity.User) {
	payload, err := json.Marshal(dto.UserRegisteredMessage{
		UserId:    user.Id,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Metadata:  user.Metadata,
	})
	if err != nil {
		s.logger.Error("user_service", "marshal user-registered event", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	if err := s.publisher.Publish(s.topic, msg); err != nil {
		s.logger.Error("user_service", "publish user-registered event", map[string]interface{}{
			"error": err.Error(),
		})
	}
}

func toUserResponse(user *entity.User) dto.UserResponse {
	return dto.UserResponse{
		Id:        user.Id,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Metadata:  user.Metadata,
		CreatedAt: user.CreatedAt,
	}
}
