package service

import (
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/akashadhithyan11707-web/collage-chatbot/internal/dto"
	"github.com/akashadhithyan11707-web/collage-chatbot/internal/models"

	"github.com/samber/lo"
)

// sanitizeUTF8 trims s and drops invalid UTF-8 sequences, which PostgreSQL
// refuses to store in text columns.
func sanitizeUTF8(s string) string {
	s = strings.TrimSpace(s)
	if utf8.ValidString(s) {
		return s
	}

	var result strings.Builder
	result.Grow(len(s))

	for len(s) > 0 {
		r, size := utf8.DecodeRuneInString(s)
		if r == utf8.RuneError && size == 1 {
			s = s[1:]
			continue
		}
		result.WriteRune(r)
		s = s[size:]
	}

	return result.String()
}

// parseAge returns nil for blank or non-integer input.
func parseAge(s string) *int {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	age, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &age
}

// splitSubjects parses a comma-separated subject list, dropping blanks.
func splitSubjects(s string) []string {
	return lo.FilterMap(strings.Split(s, ","), func(item string, _ int) (string, bool) {
		item = sanitizeUTF8(item)
		return item, item != ""
	})
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func redirectFor(role models.Role) string {
	if role == models.RoleTeacher {
		return "/teacher/dashboard"
	}
	return "/student/dashboard"
}

func toUserResponse(u *models.User) dto.UserResponse {
	return dto.UserResponse{
		ID:         u.ID.String(),
		EmailPhone: u.EmailPhone,
		Role:       string(u.Role),
		Name:       deref(u.Name),
		RollNumber: deref(u.RollNumber),
		Department: deref(u.Department),
		PhotoPath:  deref(u.PhotoPath),
		Age:        u.Age,
		BloodGroup: deref(u.BloodGroup),
		CreatedAt:  u.CreatedAt.Format(time.RFC3339),
	}
}
