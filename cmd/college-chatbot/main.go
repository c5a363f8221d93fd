package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/akashadhithyan11707-web/collage-chatbot/internal/api"
	"github.com/akashadhithyan11707-web/collage-chatbot/internal/api/handlers"
	"github.com/akashadhithyan11707-web/collage-chatbot/internal/repository"
	"github.com/akashadhithyan11707-web/collage-chatbot/internal/repository/inmem"
	"github.com/akashadhithyan11707-web/collage-chatbot/internal/service"
	"github.com/akashadhithyan11707-web/collage-chatbot/pkg/auth"
	"github.com/akashadhithyan11707-web/collage-chatbot/pkg/config"
	"github.com/akashadhithyan11707-web/collage-chatbot/pkg/logger"
	"github.com/akashadhithyan11707-web/collage-chatbot/pkg/postgres"
	"github.com/akashadhithyan11707-web/collage-chatbot/pkg/validation"

	"go.uber.org/zap"
)

//go:generate swag init -d ../.. -g cmd/college-chatbot/main.go -o ../../docs --outputTypes go

// @title College Chatbot API
// @version 1.0
// @description College portal with a public information chatbot and a personal chatbot for students

// @contact.name College Office
// @contact.email akashadhithyan11707@gmail.com

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:5000
// @BasePath /

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logger.Level, cfg.Logger.Format); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting college chatbot service", zap.String("db_driver", cfg.Database.Driver))

	ctx := context.Background()
	users, closeStore, err := openStore(ctx, cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to open user store", zap.Error(err))
	}
	defer closeStore()

	jwtManager := auth.NewJWTManager(cfg.JWT.SecretKey, cfg.JWT.Expiration, cfg.JWT.RefreshExp)
	validator := validation.New()
	photos := service.NewPhotoStorage(cfg.Upload.Dir, logger.Component("photos"))

	authService := service.NewAuthService(users, photos, jwtManager, validator, logger.Component("auth"))
	chatService := service.NewChatService(users, logger.Component("chat"))
	studentService := service.NewStudentService(users, photos, validator, logger.Component("students"))
	profileService := service.NewProfileService(users, logger.Component("profile"))

	app := api.SetupRouter(api.Handlers{
		Auth:    handlers.NewAuthHandler(authService, appLogger),
		Chat:    handlers.NewChatHandler(chatService, appLogger),
		Profile: handlers.NewProfileHandler(profileService, appLogger),
		Student: handlers.NewStudentHandler(studentService, appLogger),
	}, jwtManager, api.Options{
		UploadDir:    cfg.Upload.Dir,
		BodyLimit:    cfg.Server.BodyLimit,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		AccessLog:    true,
	}, appLogger)

	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}

// openStore returns the user store selected by DB_DRIVER.
func openStore(ctx context.Context, cfg *config.Config, appLogger *zap.Logger) (service.UserStore, func(), error) {
	switch cfg.Database.Driver {
	case config.DriverMemory:
		appLogger.Warn("Using in-memory user store; data is lost on restart")
		return inmem.NewUserRepository(), func() {}, nil
	case config.DriverPostgres:
		if cfg.Database.Migrate {
			if err := postgres.Migrate(&cfg.Database, appLogger); err != nil {
				return nil, nil, err
			}
		}
		db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
		if err != nil {
			return nil, nil, err
		}
		return repository.NewUserRepository(db, logger.Component("repository")), db.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown DB_DRIVER %q", cfg.Database.Driver)
	}
}
