package di

import (
	"sync"

	authUseCase "go-scheduler-api/src/application/usecases/auth"
	messageUseCase "go-scheduler-api/src/application/usecases/message"
	templateUseCase "go-scheduler-api/src/application/usecases/template"
	"go-scheduler-api/src/domain/common"
	"go-scheduler-api/src/infrastructure/helper"
	logger "go-scheduler-api/src/infrastructure/logger"
	"go-scheduler-api/src/infrastructure/relay"
	"go-scheduler-api/src/infrastructure/repository/memory"
	authController "go-scheduler-api/src/infrastructure/rest/controllers/auth"
	messageController "go-scheduler-api/src/infrastructure/rest/controllers/message"
	scheduleController "go-scheduler-api/src/infrastructure/rest/controllers/schedule"
	"go-scheduler-api/src/infrastructure/security"
	"go-scheduler-api/src/infrastructure/utils"

	"go.uber.org/zap"
)

// ApplicationContext holds all application dependencies and services
type ApplicationContext struct {
	Logger             *logger.Logger
	MessageController  messageController.IMessageController
	ScheduleController scheduleController.IScheduleController
	AuthController     authController.IAuthController
	JWTService         security.IJWTService
	CommonService      common.CommonService
	MessageRepository  memory.MessageRepositoryInterface
	TemplateRepository memory.TemplateRepositoryInterface
	UserRepository     memory.UserRepositoryInterface
	MessageUseCase     messageUseCase.IMessageUseCase
	TemplateUseCase    templateUseCase.ITemplateUseCase
	AuthUseCase        authUseCase.IAuthUseCase
	RelayDispatcher    *relay.Dispatcher
}

// Config is everything SetupDependencies reads from the environment.
type Config struct {
	SeedFile       string
	Telegram       relay.TelegramConfig
	RelayWorkers   int
	RelayQueueSize int
}

func LoadConfig() Config {
	return Config{
		SeedFile: utils.GetEnv("SEED_FILE", ""),
		Telegram: relay.TelegramConfig{
			APIURL:   utils.GetEnv("TELEGRAM_API_URL", relay.DefaultTelegramAPIURL),
			BotToken: utils.GetEnv("TELEGRAM_BOT_TOKEN", ""),
			ChatID:   utils.GetEnv("TELEGRAM_CHAT_ID", ""),
			Timeout:  utils.GetEnvDuration("RELAY_TIMEOUT", relay.DefaultTimeout),
		},
		RelayWorkers:   utils.GetEnvInt("RELAY_WORKERS", relay.DefaultWorkers),
		RelayQueueSize: utils.GetEnvInt("RELAY_QUEUE_SIZE", relay.DefaultQueueSize),
	}
}

var (
	loggerInstance *logger.Logger
	loggerOnce     sync.Once
)

func GetLogger() *logger.Logger {
	loggerOnce.Do(func() {
		loggerInstance, _ = logger.NewLogger()
	})
	return loggerInstance
}

// SetupDependencies creates a new application context from the environment
func SetupDependencies(loggerInstance *logger.Logger) (*ApplicationContext, error) {
	cfg := LoadConfig()

	var outbound relay.Relay = relay.NoopRelay{}
	if cfg.Telegram.Enabled() {
		outbound = relay.NewTelegramRelay(cfg.Telegram)
		loggerInstance.Info("Telegram relay enabled", zap.Duration("timeout", cfg.Telegram.Timeout))
	} else {
		loggerInstance.Info("Telegram relay disabled")
	}

	return NewApplicationContext(cfg, outbound, security.NewJWTService(), loggerInstance)
}

// NewApplicationContext wires every layer around the given relay and JWT service.
func NewApplicationContext(
	cfg Config,
	outbound relay.Relay,
	jwtService security.IJWTService,
	loggerInstance *logger.Logger,
) (*ApplicationContext, error) {
	seed, err := memory.LoadSeed(cfg.SeedFile)
	if err != nil {
		loggerInstance.Error("Error loading seed", zap.Error(err), zap.String("seedFile", cfg.SeedFile))
		return nil, err
	}

	validator := helper.NewValidator(loggerInstance)
	commonService := common.NewCommonService(validator)

	// Initialize repositories with logger
	messageRepo := memory.NewMessageRepository(loggerInstance)
	templateRepo := memory.NewTemplateRepository(seed.Templates, loggerInstance)
	userRepo, err := memory.NewUserRepository(seed.Users, loggerInstance)
	if err != nil {
		return nil, err
	}

	dispatcher := relay.NewDispatcher(outbound, loggerInstance, cfg.RelayWorkers, cfg.RelayQueueSize)

	// Initialize use cases with logger
	messageUC := messageUseCase.NewMessageUseCase(messageRepo, dispatcher, loggerInstance)
	templateUC := templateUseCase.NewTemplateUseCase(templateRepo, loggerInstance)
	authUC := authUseCase.NewAuthUseCase(userRepo, jwtService, loggerInstance)

	return &ApplicationContext{
		Logger:             loggerInstance,
		MessageController:  messageController.NewMessageController(commonService, messageUC, loggerInstance),
		ScheduleController: scheduleController.NewScheduleController(commonService, messageUC, templateUC, loggerInstance),
		AuthController:     authController.NewAuthController(commonService, authUC, loggerInstance),
		JWTService:         jwtService,
		CommonService:      commonService,
		MessageRepository:  messageRepo,
		TemplateRepository: templateRepo,
		UserRepository:     userRepo,
		MessageUseCase:     messageUC,
		TemplateUseCase:    templateUC,
		AuthUseCase:        authUC,
		RelayDispatcher:    dispatcher,
	}, nil
}

// NewTestApplicationContext builds a context on the default seed with a fixed JWT secret.
func NewTestApplicationContext(outbound relay.Relay, loggerInstance *logger.Logger) (*ApplicationContext, error) {
	jwtService := security.NewJWTServiceWithConfig(security.JWTConfig{AccessSecret: "test-secret", AccessTime: 60})
	return NewApplicationContext(Config{RelayWorkers: 1, RelayQueueSize: 16}, outbound, jwtService, loggerInstance)
}

// Shutdown stops background workers. It is safe to call more than once.
func (a *ApplicationContext) Shutdown() {
	if a.RelayDispatcher != nil {
		a.RelayDispatcher.Shutdown()
	}
}
