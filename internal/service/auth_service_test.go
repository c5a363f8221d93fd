package service

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashadhithyan11707-web/collage-chatbot/internal/dto"
	"github.com/akashadhithyan11707-web/collage-chatbot/pkg/auth"
	"github.com/akashadhithyan11707-web/collage-chatbot/pkg/validation"
)

func TestAuthService_RegisterAndLogin(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	resp, err := f.auth.Register(ctx, &dto.RegisterRequest{
		Role:       "student",
		EmailPhone: " 9876543210 ",
		Password:   "pw",
		Name:       "Asha",
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.Equal(t, "/student/dashboard", resp.Redirect)
	assert.Equal(t, "9876543210", resp.User.EmailPhone)
	assert.Equal(t, "student", resp.User.Role)

	login, err := f.auth.Login(ctx, &dto.LoginRequest{EmailPhone: "9876543210", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, login.User.ID)

	claims, err := f.jwt.ValidateAccessToken(login.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "student", claims.Role)
	assert.Equal(t, "9876543210", claims.Identity)
}

func TestAuthService_RegisterTeacherRedirect(t *testing.T) {
	f := newFixture(t)

	resp, err := f.auth.Register(context.Background(), &dto.RegisterRequest{
		Role: "teacher", EmailPhone: "t@college.edu", Password: "pw",
	}, pngUpload("me.png"))
	require.NoError(t, err)
	assert.Equal(t, "/teacher/dashboard", resp.Redirect)
	assert.Empty(t, resp.User.PhotoPath, "teacher photos are not stored")
}

func TestAuthService_RegisterValidation(t *testing.T) {
	tests := []struct {
		name  string
		req   dto.RegisterRequest
		field string
	}{
		{"missing role", dto.RegisterRequest{EmailPhone: "a@b.co", Password: "pw"}, "role"},
		{"bad role", dto.RegisterRequest{Role: "admin", EmailPhone: "a@b.co", Password: "pw"}, "role"},
		{"bad identity", dto.RegisterRequest{Role: "student", EmailPhone: "12345", Password: "pw"}, "email_phone"},
		{"missing password", dto.RegisterRequest{Role: "student", EmailPhone: "a@b.co"}, "password"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			_, err := f.auth.Register(context.Background(), &tt.req, nil)

			var verr *validation.Error
			require.True(t, errors.As(err, &verr), "got %v", err)
			assert.Contains(t, verr.FieldMap(), tt.field)
		})
	}
}

func TestAuthService_RegisterDuplicate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	req := dto.RegisterRequest{Role: "student", EmailPhone: "a@b.co", Password: "pw"}

	_, err := f.auth.Register(ctx, &req, nil)
	require.NoError(t, err)

	again := req
	_, err = f.auth.Register(ctx, &again, nil)
	assert.ErrorIs(t, err, ErrUserExists)
}

func TestAuthService_RegisterStudentPhoto(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	resp, err := f.auth.Register(ctx, &dto.RegisterRequest{
		Role: "student", EmailPhone: "a@b.co", Password: "pw",
	}, pngUpload("me.PNG"))
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(resp.User.PhotoPath, "images/"))
	assert.True(t, strings.HasSuffix(resp.User.PhotoPath, ".png"))

	_, err = os.Stat(filepath.Join(f.photos.Dir(), filepath.Base(resp.User.PhotoPath)))
	assert.NoError(t, err)

	_, err = f.auth.Register(ctx, &dto.RegisterRequest{
		Role: "student", EmailPhone: "b@b.co", Password: "pw",
	}, &PhotoUpload{Filename: "notes.pdf", Content: bytes.NewReader([]byte("%PDF-1.4"))})
	assert.ErrorIs(t, err, ErrInvalidPhoto)

	_, err = f.users.GetByIdentity(ctx, "b@b.co")
	assert.Error(t, err, "account must not be created")
}

func TestAuthService_LoginInvalid(t *testing.T) {
	f := newFixture(t)
	f.seedUser(t, "student", "a@b.co", nil)
	ctx := context.Background()

	_, err := f.auth.Login(ctx, &dto.LoginRequest{EmailPhone: "a@b.co", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = f.auth.Login(ctx, &dto.LoginRequest{EmailPhone: "nobody@b.co", Password: "secret"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = f.auth.Login(ctx, &dto.LoginRequest{EmailPhone: "a@b.co"})
	assert.ErrorIs(t, err, validation.ErrValidation)
}

func TestAuthService_RefreshToken(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	resp, err := f.auth.Register(ctx, &dto.RegisterRequest{Role: "teacher", EmailPhone: "t@b.co", Password: "pw"}, nil)
	require.NoError(t, err)

	refreshed, err := f.auth.RefreshToken(ctx, resp.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, refreshed.User.ID)

	_, err = f.auth.RefreshToken(ctx, resp.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidCredentials, "access tokens cannot refresh")

	stranger, err := auth.NewJWTManager("test-secret", time.Hour, time.Hour).GenerateRefreshToken("6f1c3c1e-6a4e-4a76-9f61-2a55b8f0c0de")
	require.NoError(t, err)
	_, err = f.auth.RefreshToken(ctx, stranger)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
