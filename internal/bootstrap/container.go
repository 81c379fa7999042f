package bootstrap

import (
	"npo-hub-be/internal/config"
	"npo-hub-be/internal/controller"
	"npo-hub-be/internal/pkg/logger"
	"npo-hub-be/internal/repository/implementation"
	"npo-hub-be/internal/service"
	"npo-hub-be/pkg/memoryservice"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	UserController controller.IUserController

	// Background services (exposed for main.go to run)
	ConsumerService service.IConsumerService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// In-process event bus: registration events feed the memory-service
	// sync consumer.
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	memoryClient := memoryservice.NewCachedClient(
		memoryservice.NewClient(cfg.Memory.BaseURL),
	)

	userRepo := implementation.NewUserRepository(db)
	userService := service.NewUserService(
		userRepo,
		pubSub,
		cfg.App.UserRegisteredTopic,
		cfg.Auth.SecretKey,
		cfg.Auth.AccessTokenExpireMinutes,
		sysLogger,
	)

	consumerService := service.NewConsumerService(
		pubSub,
		cfg.App.UserRegisteredTopic,
		memoryClient,
		sysLogger,
	)

	userController := controller.NewUserController(userService, cfg.Auth.SecretKey)

	return &Container{
		UserController:  userController,
		ConsumerService: consumerService,
		Logger:          sysLogger,
	}
}
