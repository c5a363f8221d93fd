package api

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/akashadhithyan11707-web/collage-chatbot/docs"
	"github.com/akashadhithyan11707-web/collage-chatbot/internal/api/handlers"
	"github.com/akashadhithyan11707-web/collage-chatbot/internal/dto"
	"github.com/akashadhithyan11707-web/collage-chatbot/internal/models"
	"github.com/akashadhithyan11707-web/collage-chatbot/pkg/auth"
	"github.com/akashadhithyan11707-web/collage-chatbot/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

type Handlers struct {
	Auth    *handlers.AuthHandler
	Chat    *handlers.ChatHandler
	Profile *handlers.ProfileHandler
	Student *handlers.StudentHandler
}

type Options struct {
	UploadDir    string
	BodyLimit    int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	// AccessLog enables fiber's request logger.
	AccessLog bool
}

func SetupRouter(h Handlers, jwtManager *auth.JWTManager, opts Options, appLogger *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		BodyLimit:    opts.BodyLimit,
		ReadTimeout:  opts.ReadTimeout,
		WriteTimeout: opts.WriteTimeout,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
			}
			if code >= fiber.StatusInternalServerError {
				appLogger.Error("Request failed", zap.String("path", c.Path()), zap.Error(err))
			}
			return c.Status(code).JSON(dto.ErrorResponse{Error: err.Error()})
		},
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))
	if opts.AccessLog {
		app.Use(logger.New())
	}

	_ = docs.SwaggerInfo
	app.Get("/swagger/*", swagger.HandlerDefault)

	if webStaticPath := findWebStaticPath(appLogger); webStaticPath != "" {
		appLogger.Info("Serving static files", zap.String("path", webStaticPath))
		app.Static("/static", webStaticPath)
		app.Get("/", func(c *fiber.Ctx) error {
			return c.SendFile(filepath.Join(webStaticPath, "index.html"))
		})
	}
	if opts.UploadDir != "" {
		// stored photo paths look like images/<file>
		app.Static("/images", opts.UploadDir)
		app.Static("/uploads", opts.UploadDir)
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Public routes
	authGroup := app.Group("/auth")
	authGroup.Post("/register", h.Auth.Register)
	authGroup.Post("/login", h.Auth.Login)
	authGroup.Post("/refresh", h.Auth.RefreshToken)

	app.Post("/chatbot/message", h.Chat.PublicMessage)

	// Protected routes
	protected := app.Group("/api/v1", middleware.AuthMiddleware(jwtManager, appLogger))
	protected.Get("/profile", h.Profile.Profile)

	student := protected.Group("/student", middleware.RequireRole(string(models.RoleStudent), appLogger))
	student.Get("/dashboard", h.Profile.StudentDashboard)
	student.Post("/chatbot/message", h.Chat.StudentMessage)

	teacher := protected.Group("/teacher", middleware.RequireRole(string(models.RoleTeacher), appLogger))
	teacher.Get("/dashboard", h.Profile.TeacherDashboard)
	teacher.Put("/profile", h.Profile.UpdateTeacherProfile)

	students := teacher.Group("/students")
	students.Post("", h.Student.AddStudent)
	students.Put("/:id", h.Student.EditStudent)
	students.Delete("/:id", h.Student.DeleteStudent)
	students.Post("/:id/password", h.Student.ResetPassword)
	students.Post("/:id/marks", h.Student.UpdateMarks)
	students.Post("/:id/arrears", h.Student.UpdateArrear)
	students.Put("/:id/notes-link", h.Student.UpdateNotesLink)
	students.Post("/:id/subject-notes", h.Student.UpdateSubjectNotes)
	students.Put("/:id/chatbot-questions", h.Student.SetChatbotQuestions)
	students.Get("/:id/chatbot-questions", h.Student.GetChatbotQuestions)

	return app
}

// findWebStaticPath looks for web/static/index.html relative to the
// working directory.
func findWebStaticPath(logger *zap.Logger) string {
	paths := []string{
		"./web/static",
		"../web/static",
		"../../web/static",
	}

	for _, path := range paths {
		if fileExists(filepath.Join(path, "index.html")) {
			return path
		}
		logger.Debug("Tried path", zap.String("path", path))
	}

	return ""
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
