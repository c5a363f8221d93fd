package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashadhithyan11707-web/collage-chatbot/internal/models"
)

func TestChatService_PublicAnswer(t *testing.T) {
	f := newFixture(t)
	assert.Contains(t, f.chat.PublicAnswer("What is the FEE?"), "₹12,000")
}

func TestChatService_StudentAnswer(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	s := f.seedUser(t, models.RoleStudent, "s@b.co", func(u *models.User) {
		u.Name = strPtr("Meena")
		u.Subjects = strPtr(`["Maths","Physics"]`)
		u.Arrears = strPtr(`broken`)
	})

	answer, err := f.chat.StudentAnswer(ctx, s.ID, "my subjects")
	require.NoError(t, err)
	assert.Equal(t, "Your subjects are:\n\n1. Maths\n2. Physics\n", answer)

	answer, err = f.chat.StudentAnswer(ctx, s.ID, "any backlog?")
	require.NoError(t, err)
	assert.Equal(t, "✅ Great news! You have no arrears.", answer)

	answer, err = f.chat.StudentAnswer(ctx, s.ID, "hi")
	require.NoError(t, err)
	assert.Contains(t, answer, "Hello Meena!")
}

func TestChatService_StudentAnswerRejects(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	teacher := f.seedUser(t, models.RoleTeacher, "t@b.co", nil)

	_, err := f.chat.StudentAnswer(ctx, teacher.ID, "marks")
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = f.chat.StudentAnswer(ctx, uuid.New(), "marks")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
