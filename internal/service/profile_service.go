package service

import (
	"context"
	"errors"

	"github.com/akashadhithyan11707-web/collage-chatbot/internal/dto"
	"github.com/akashadhithyan11707-web/collage-chatbot/internal/models"
	"github.com/akashadhithyan11707-web/collage-chatbot/internal/repository"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

type ProfileService struct {
	users  UserStore
	logger *zap.Logger
}

func NewProfileService(users UserStore, logger *zap.Logger) *ProfileService {
	return &ProfileService{
		users:  users,
		logger: logger,
	}
}

func (s *ProfileService) get(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *ProfileService) warn(user *models.User, column string, err error) {
	if err != nil {
		s.logger.Warn("Failed to decode column",
			zap.String("user_id", user.ID.String()),
			zap.String("column", column),
			zap.Error(err),
		)
	}
}

func (s *ProfileService) subjects(user *models.User) []string {
	decoded := user.DecodedSubjects()
	s.warn(user, "subjects", decoded.Err)
	return decoded.Get()
}

func (s *ProfileService) parentDetails(user *models.User) *models.ParentDetails {
	decoded := user.DecodedParentDetails()
	s.warn(user, "parent_details", decoded.Err)
	if !decoded.Present {
		return nil
	}
	parent := decoded.Get()
	return &parent
}

// Profile returns the caller's account, whatever the role.
func (s *ProfileService) Profile(ctx context.Context, userID uuid.UUID) (*dto.ProfileResponse, error) {
	user, err := s.get(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &dto.ProfileResponse{
		User:          toUserResponse(user),
		Subjects:      s.subjects(user),
		ParentDetails: s.parentDetails(user),
	}, nil
}

func (s *ProfileService) StudentDashboard(ctx context.Context, userID uuid.UUID) (*dto.StudentDashboardResponse, error) {
	user, err := s.get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.Role != models.RoleStudent {
		return nil, ErrAccessDenied
	}

	notes := user.DecodedSubjectNotes()
	s.warn(user, "subject_notes", notes.Err)
	marks := user.DecodedMarks()
	s.warn(user, "semester_marks", marks.Err)
	arrears := user.DecodedArrears()
	s.warn(user, "arrears", arrears.Err)

	return &dto.StudentDashboardResponse{
		User:          toUserResponse(user),
		NotesLink:     deref(user.NotesLink),
		SubjectNotes:  notes.Get(),
		Subjects:      s.subjects(user),
		ParentDetails: s.parentDetails(user),
		SemesterMarks: marks.Get(),
		Arrears:       arrears.Get(),
	}, nil
}

// TeacherDashboard lists every student, newest first.
func (s *ProfileService) TeacherDashboard(ctx context.Context) (*dto.TeacherDashboardResponse, error) {
	students, err := s.users.ListByRole(ctx, models.RoleStudent)
	if err != nil {
		return nil, err
	}

	summaries := lo.Map(students, func(u *models.User, _ int) dto.StudentSummary {
		return dto.StudentSummary{
			UserResponse:  toUserResponse(u),
			Subjects:      s.subjects(u),
			ParentDetails: s.parentDetails(u),
			NotesLink:     deref(u.NotesLink),
		}
	})

	return &dto.TeacherDashboardResponse{
		Students: summaries,
		Total:    len(summaries),
	}, nil
}

func (s *ProfileService) UpdateTeacherProfile(ctx context.Context, userID uuid.UUID, req *dto.TeacherProfileRequest) (*dto.UserResponse, error) {
	err := s.users.UpdateTeacherProfile(ctx, userID, models.TeacherProfile{
		Name:       sanitizeUTF8(req.Name),
		Department: sanitizeUTF8(req.Department),
		Age:        parseAge(req.Age),
		BloodGroup: sanitizeUTF8(req.BloodGroup),
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrAccessDenied
		}
		return nil, err
	}

	user, err := s.get(ctx, userID)
	if err != nil {
		return nil, err
	}
	resp := toUserResponse(user)
	return &resp, nil
}
