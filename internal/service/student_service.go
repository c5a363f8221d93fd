package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/akashadhithyan11707-web/collage-chatbot/internal/dto"
	"github.com/akashadhithyan11707-web/collage-chatbot/internal/models"
	"github.com/akashadhithyan11707-web/collage-chatbot/internal/repository"
	"github.com/akashadhithyan11707-web/collage-chatbot/pkg/auth"
	"github.com/akashadhithyan11707-web/collage-chatbot/pkg/jsonx"
	"github.com/akashadhithyan11707-web/collage-chatbot/pkg/validation"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

// StudentService holds the record operations a teacher performs on
// student accounts.
type StudentService struct {
	users     UserStore
	photos    *PhotoStorage
	validator *validation.Validator
	logger    *zap.Logger
}

func NewStudentService(users UserStore, photos *PhotoStorage, validator *validation.Validator, logger *zap.Logger) *StudentService {
	return &StudentService{
		users:     users,
		photos:    photos,
		validator: validator,
		logger:    logger,
	}
}

func studentErr(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return ErrStudentNotFound
	}
	return err
}

// AddStudent creates a student account. Unlike self registration, a photo
// of the wrong type is dropped and the account is still created.
func (s *StudentService) AddStudent(ctx context.Context, req *dto.AddStudentRequest, photo *PhotoUpload) (*dto.UserResponse, error) {
	req.EmailPhone = sanitizeUTF8(req.EmailPhone)
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	if existing, _ := s.users.GetByIdentity(ctx, req.EmailPhone); existing != nil {
		return nil, ErrUserExists
	}

	var photoPath *string
	if photo != nil && photo.Filename != "" {
		path, err := s.photos.Save(photo)
		switch {
		case err == nil:
			photoPath = &path
		case errors.Is(err, ErrInvalidPhoto):
			s.logger.Warn("Ignoring student photo", zap.String("filename", photo.Filename))
		default:
			return nil, err
		}
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &models.User{
		ID:         uuid.New(),
		EmailPhone: req.EmailPhone,
		Password:   hashedPassword,
		Role:       models.RoleStudent,
		Name:       optional(sanitizeUTF8(req.Name)),
		RollNumber: optional(sanitizeUTF8(req.RollNumber)),
		Department: optional(sanitizeUTF8(req.Department)),
		PhotoPath:  photoPath,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if photoPath != nil {
			_ = s.photos.Remove(*photoPath)
		}
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrUserExists
		}
		return nil, fmt.Errorf("failed to create student: %w", err)
	}

	s.logger.Info("Student added", zap.String("student_id", user.ID.String()))
	resp := toUserResponse(user)
	return &resp, nil
}

func (s *StudentService) EditStudent(ctx context.Context, id uuid.UUID, req *dto.EditStudentRequest) error {
	parent := models.ParentDetails{
		Name:         sanitizeUTF8(req.ParentName),
		Phone:        sanitizeUTF8(req.ParentPhone),
		Email:        sanitizeUTF8(req.ParentEmail),
		Relationship: sanitizeUTF8(req.ParentRelationship),
	}
	parentJSON, err := jsonx.Encode(parent, parent.IsEmpty())
	if err != nil {
		return err
	}

	subjects := splitSubjects(req.Subjects)
	subjectsJSON, err := jsonx.Encode(subjects, len(subjects) == 0)
	if err != nil {
		return err
	}

	err = s.users.UpdateStudentDetails(ctx, id, models.StudentDetails{
		Name:          sanitizeUTF8(req.Name),
		RollNumber:    sanitizeUTF8(req.RollNumber),
		Department:    sanitizeUTF8(req.Department),
		Age:           parseAge(req.Age),
		BloodGroup:    sanitizeUTF8(req.BloodGroup),
		ParentDetails: parentJSON,
		Subjects:      subjectsJSON,
	})
	return studentErr(err)
}

func (s *StudentService) ResetPassword(ctx context.Context, id uuid.UUID, req *dto.ResetPasswordRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return err
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return err
	}
	return studentErr(s.users.UpdatePassword(ctx, id, models.RoleStudent, hashedPassword))
}

// DeleteStudent removes the student's photo file, then the account.
func (s *StudentService) DeleteStudent(ctx context.Context, id uuid.UUID) error {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return studentErr(err)
	}
	if user.Role != models.RoleStudent {
		return ErrStudentNotFound
	}

	if user.PhotoPath != nil {
		if err := s.photos.Remove(*user.PhotoPath); err != nil {
			s.logger.Warn("Failed to remove student photo", zap.String("path", *user.PhotoPath), zap.Error(err))
		}
	}

	if err := s.users.Delete(ctx, id, models.RoleStudent); err != nil {
		return studentErr(err)
	}
	s.logger.Info("Student deleted", zap.String("student_id", id.String()))
	return nil
}

// warnDecode logs a stored column that could not be parsed. The update
// continues from the empty value.
func (s *StudentService) warnDecode(id uuid.UUID, field models.RecordField, err error) {
	if err != nil {
		s.logger.Warn("Replacing unreadable column",
			zap.String("student_id", id.String()),
			zap.String("column", string(field)),
			zap.Error(err),
		)
	}
}

// UpdateMarks sets marks[semester][subject].
func (s *StudentService) UpdateMarks(ctx context.Context, id uuid.UUID, req *dto.UpdateMarksRequest) error {
	req.Semester = sanitizeUTF8(req.Semester)
	req.Subject = sanitizeUTF8(req.Subject)
	req.Marks = sanitizeUTF8(req.Marks)
	if err := s.validator.Struct(req); err != nil {
		return err
	}

	err := s.users.ModifyRecordField(ctx, id, models.FieldSemesterMarks, func(current *string) (*string, error) {
		decoded := jsonx.DecodeOptional(current, models.SemesterMarks{})
		s.warnDecode(id, models.FieldSemesterMarks, decoded.Err)

		marks := decoded.Get()
		marks.Set(req.Semester, req.Subject, models.NewMark(req.Marks))
		return jsonx.Encode(marks, false)
	})
	return studentErr(err)
}

// UpdateArrear replaces the entry for req.Subject with the new status,
// appending it at the end of the list.
func (s *StudentService) UpdateArrear(ctx context.Context, id uuid.UUID, req *dto.UpdateArrearRequest) error {
	req.Subject = sanitizeUTF8(req.Subject)
	req.Status = sanitizeUTF8(req.Status)
	if err := s.validator.Struct(req); err != nil {
		return err
	}

	err := s.users.ModifyRecordField(ctx, id, models.FieldArrears, func(current *string) (*string, error) {
		decoded := jsonx.DecodeOptional(current, models.Arrears{})
		s.warnDecode(id, models.FieldArrears, decoded.Err)

		arrears := lo.Reject(decoded.Get(), func(a models.Arrear, _ int) bool {
			return a.SubjectOr("") == req.Subject
		})
		arrears = append(arrears, models.NewArrear(req.Subject, req.Status))
		return jsonx.Encode(arrears, false)
	})
	return studentErr(err)
}

// UpdateNotesLink stores the general notes link. A blank link is kept as
// an empty string.
func (s *StudentService) UpdateNotesLink(ctx context.Context, id uuid.UUID, req *dto.UpdateNotesLinkRequest) error {
	link := sanitizeUTF8(req.NotesLink)
	return studentErr(s.users.SetRecordField(ctx, id, models.FieldNotesLink, &link))
}

func (s *StudentService) UpdateSubjectNotes(ctx context.Context, id uuid.UUID, req *dto.UpdateSubjectNotesRequest) error {
	req.Subject = sanitizeUTF8(req.Subject)
	req.NotesLink = sanitizeUTF8(req.NotesLink)
	if err := s.validator.Struct(req); err != nil {
		return err
	}

	err := s.users.ModifyRecordField(ctx, id, models.FieldSubjectNotes, func(current *string) (*string, error) {
		decoded := jsonx.DecodeOptional(current, models.NewSubjectNotes())
		s.warnDecode(id, models.FieldSubjectNotes, decoded.Err)

		notes := decoded.Get()
		notes.Set(req.Subject, req.NotesLink)
		return jsonx.Encode(notes, false)
	})
	return studentErr(err)
}

// ParseChatbotQuestions checks that raw is a JSON array of objects each
// holding a non-null question and answer. Non-string values are accepted
// and read back as text.
func ParseChatbotQuestions(raw string) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return questionsError("questions data is required")
	}

	var parsed interface{}
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return questionsError("invalid JSON format")
	}

	items, ok := parsed.([]interface{})
	if !ok {
		return questionsError("questions must be an array")
	}
	for _, item := range items {
		qa, ok := item.(map[string]interface{})
		if !ok || qa["question"] == nil || qa["answer"] == nil {
			return questionsError(`each question must have "question" and "answer" fields`)
		}
	}
	return nil
}

func questionsError(msg string) error {
	return validation.NewError(ErrInvalidQuestions, validation.FieldError{Field: "questions", Error: msg})
}

// SetChatbotQuestions replaces the student's custom questions with raw,
// stored as submitted once it passes ParseChatbotQuestions.
func (s *StudentService) SetChatbotQuestions(ctx context.Context, id uuid.UUID, raw string) error {
	if err := ParseChatbotQuestions(raw); err != nil {
		return err
	}
	raw = strings.TrimSpace(raw)
	return studentErr(s.users.SetRecordField(ctx, id, models.FieldChatbotQuestions, &raw))
}

// GetChatbotQuestions returns the stored questions, or an empty list when
// none are stored or they cannot be read.
func (s *StudentService) GetChatbotQuestions(ctx context.Context, id uuid.UUID) (models.QAPairs, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, studentErr(err)
	}
	if user.Role != models.RoleStudent {
		return nil, ErrStudentNotFound
	}

	decoded := user.DecodedQuestions()
	s.warnDecode(id, models.FieldChatbotQuestions, decoded.Err)
	return decoded.Get(), nil
}
