package service

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/akashadhithyan11707-web/collage-chatbot/internal/models"
	"github.com/akashadhithyan11707-web/collage-chatbot/internal/repository/inmem"
	"github.com/akashadhithyan11707-web/collage-chatbot/pkg/auth"
	"github.com/akashadhithyan11707-web/collage-chatbot/pkg/validation"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00\x1f\x15\xc4\x89")

type fixture struct {
	users    *inmem.UserRepository
	photos   *PhotoStorage
	jwt      *auth.JWTManager
	auth     *AuthService
	students *StudentService
	profiles *ProfileService
	chat     *ChatService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	logger := zap.NewNop()
	users := inmem.NewUserRepository()
	photos := NewPhotoStorage(t.TempDir(), logger)
	jwt := auth.NewJWTManager("test-secret", time.Hour, 24*time.Hour)
	v := validation.New()

	return &fixture{
		users:    users,
		photos:   photos,
		jwt:      jwt,
		auth:     NewAuthService(users, photos, jwt, v, logger),
		students: NewStudentService(users, photos, v, logger),
		profiles: NewProfileService(users, logger),
		chat:     NewChatService(users, logger),
	}
}

func strPtr(s string) *string { return &s }

// seedUser stores a user directly, bypassing registration.
func (f *fixture) seedUser(t *testing.T, role models.Role, identity string, mutate func(u *models.User)) *models.User {
	t.Helper()
	hash, err := auth.HashPassword("secret")
	require.NoError(t, err)

	now := time.Now()
	u := &models.User{
		ID:         uuid.New(),
		EmailPhone: identity,
		Password:   hash,
		Role:       role,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if mutate != nil {
		mutate(u)
	}
	require.NoError(t, f.users.Create(context.Background(), u))
	return u
}

func (f *fixture) reload(t *testing.T, id uuid.UUID) *models.User {
	t.Helper()
	u, err := f.users.GetByID(context.Background(), id)
	require.NoError(t, err)
	return u
}

func pngUpload(name string) *PhotoUpload {
	return &PhotoUpload{Filename: name, Content: bytes.NewReader(pngHeader)}
}
