// Command seed creates the first teacher account, which can then add
// students from the teacher dashboard.
package main

import (
	"context"
	"errors"
	"log"

	"github.com/akashadhithyan11707-web/collage-chatbot/internal/dto"
	"github.com/akashadhithyan11707-web/collage-chatbot/internal/repository"
	"github.com/akashadhithyan11707-web/collage-chatbot/internal/service"
	"github.com/akashadhithyan11707-web/collage-chatbot/pkg/auth"
	"github.com/akashadhithyan11707-web/collage-chatbot/pkg/config"
	"github.com/akashadhithyan11707-web/collage-chatbot/pkg/logger"
	"github.com/akashadhithyan11707-web/collage-chatbot/pkg/postgres"
	"github.com/akashadhithyan11707-web/collage-chatbot/pkg/validation"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Logger.Level, cfg.Logger.Format); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	appLogger := logger.Get()

	if cfg.Seed.TeacherIdentity == "" || cfg.Seed.TeacherPassword == "" {
		appLogger.Fatal("SEED_TEACHER_IDENTITY and SEED_TEACHER_PASSWORD must be set")
	}

	if err := postgres.Migrate(&cfg.Database, appLogger); err != nil {
		appLogger.Fatal("Failed to run migrations", zap.Error(err))
	}

	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	users := repository.NewUserRepository(db, appLogger)
	jwtManager := auth.NewJWTManager(cfg.JWT.SecretKey, cfg.JWT.Expiration, cfg.JWT.RefreshExp)
	photos := service.NewPhotoStorage(cfg.Upload.Dir, appLogger)
	authService := service.NewAuthService(users, photos, jwtManager, validation.New(), appLogger)

	appLogger.Info("Seeding teacher account", zap.String("email_phone", cfg.Seed.TeacherIdentity))

	_, err = authService.Register(ctx, &dto.RegisterRequest{
		Role:       "teacher",
		EmailPhone: cfg.Seed.TeacherIdentity,
		Password:   cfg.Seed.TeacherPassword,
		Name:       cfg.Seed.TeacherName,
	}, nil)
	switch {
	case errors.Is(err, service.ErrUserExists):
		appLogger.Info("Teacher account already exists, nothing to do")
	case err != nil:
		appLogger.Fatal("Failed to seed teacher", zap.Error(err))
	default:
		appLogger.Info("Database seeding completed successfully!")
	}
}
