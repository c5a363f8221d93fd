package service

import (
	"context"
	"errors"

	"github.com/akashadhithyan11707-web/collage-chatbot/internal/models"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("user already exists")
	ErrAccessDenied       = errors.New("access denied")
	ErrStudentNotFound    = errors.New("student not found")
	ErrInvalidPhoto       = errors.New("invalid file type, please upload PNG, JPG, JPEG or GIF")
	ErrInvalidQuestions   = errors.New("invalid chatbot questions")
)

// UserStore is implemented by repository.UserRepository (postgres) and
// inmem.UserRepository.
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByIdentity(ctx context.Context, emailPhone string) (*models.User, error)
	ListByRole(ctx context.Context, role models.Role) ([]*models.User, error)
	UpdateStudentDetails(ctx context.Context, id uuid.UUID, d models.StudentDetails) error
	UpdateTeacherProfile(ctx context.Context, id uuid.UUID, p models.TeacherProfile) error
	UpdatePassword(ctx context.Context, id uuid.UUID, role models.Role, hash string) error
	SetRecordField(ctx context.Context, id uuid.UUID, field models.RecordField, value *string) error
	ModifyRecordField(ctx context.Context, id uuid.UUID, field models.RecordField, fn func(current *string) (*string, error)) error
	Delete(ctx context.Context, id uuid.UUID, role models.Role) error
}
