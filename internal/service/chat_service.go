package service

import (
	"context"
	"errors"

	"github.com/akashadhithyan11707-web/collage-chatbot/internal/chatbot"
	"github.com/akashadhithyan11707-web/collage-chatbot/internal/models"
	"github.com/akashadhithyan11707-web/collage-chatbot/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ChatService struct {
	users   UserStore
	public  *chatbot.PublicRouter
	student *chatbot.StudentRouter
	logger  *zap.Logger
}

func NewChatService(users UserStore, logger *zap.Logger) *ChatService {
	return &ChatService{
		users:   users,
		public:  chatbot.NewPublicRouter(),
		student: chatbot.NewStudentRouter(),
		logger:  logger,
	}
}

func (s *ChatService) PublicAnswer(message string) string {
	return s.public.Answer(message)
}

// StudentAnswer answers a student from their stored record. Columns that
// fail to decode are logged and treated as empty.
func (s *ChatService) StudentAnswer(ctx context.Context, userID uuid.UUID, message string) (string, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrUserNotFound
		}
		return "", err
	}
	if user.Role != models.RoleStudent {
		return "", ErrAccessDenied
	}

	rec, err := models.DecodeStudentRecord(user)
	if err != nil {
		s.logger.Warn("Student record partially decoded",
			zap.String("user_id", userID.String()),
			zap.Error(err),
		)
	}

	return s.student.Answer(rec, message), nil
}
