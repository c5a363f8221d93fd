package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashadhithyan11707-web/collage-chatbot/internal/dto"
	"github.com/akashadhithyan11707-web/collage-chatbot/internal/models"
)

func TestProfileService_StudentDashboard(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	s := f.seedUser(t, models.RoleStudent, "s@b.co", func(u *models.User) {
		u.NotesLink = strPtr("https://notes")
		u.SubjectNotes = strPtr(`{"Maths":"m"}`)
		u.ParentDetails = strPtr(`{"name":"Kumar","phone":"9876543210","email":"","relationship":"Father"}`)
		u.SemesterMarks = strPtr(`{"1":{"Maths":"90"}}`)
		u.Subjects = strPtr(`not json`)
	})

	dash, err := f.profiles.StudentDashboard(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, "https://notes", dash.NotesLink)
	link, ok := dash.SubjectNotes.Get("Maths")
	assert.True(t, ok)
	assert.Equal(t, "m", link)
	require.NotNil(t, dash.ParentDetails)
	assert.Equal(t, "Father", dash.ParentDetails.Relationship)
	assert.Equal(t, []string{}, dash.Subjects)
	assert.Contains(t, dash.SemesterMarks, "1")
	assert.Empty(t, dash.Arrears)

	teacher := f.seedUser(t, models.RoleTeacher, "t@b.co", nil)
	_, err = f.profiles.StudentDashboard(ctx, teacher.ID)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestProfileService_TeacherDashboard(t *testing.T) {
	f := newFixture(t)
	base := time.Now()
	f.seedUser(t, models.RoleStudent, "old@b.co", func(u *models.User) { u.CreatedAt = base.Add(-time.Hour) })
	f.seedUser(t, models.RoleStudent, "new@b.co", func(u *models.User) {
		u.CreatedAt = base
		u.Subjects = strPtr(`["Maths"]`)
	})
	f.seedUser(t, models.RoleTeacher, "t@b.co", nil)

	dash, err := f.profiles.TeacherDashboard(context.Background())
	require.NoError(t, err)
	require.Equal(t, 2, dash.Total)
	assert.Equal(t, "new@b.co", dash.Students[0].EmailPhone)
	assert.Equal(t, []string{"Maths"}, dash.Students[0].Subjects)
	assert.Equal(t, "old@b.co", dash.Students[1].EmailPhone)
	assert.Nil(t, dash.Students[1].ParentDetails)
}

func TestProfileService_ProfileAndTeacherUpdate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	teacher := f.seedUser(t, models.RoleTeacher, "t@b.co", nil)

	updated, err := f.profiles.UpdateTeacherProfile(ctx, teacher.ID, &dto.TeacherProfileRequest{
		Name: "Dr. Priya", Department: "Physics", Age: "41", BloodGroup: "B+",
	})
	require.NoError(t, err)
	assert.Equal(t, "Dr. Priya", updated.Name)
	require.NotNil(t, updated.Age)
	assert.Equal(t, 41, *updated.Age)

	profile, err := f.profiles.Profile(ctx, teacher.ID)
	require.NoError(t, err)
	assert.Equal(t, "teacher", profile.User.Role)
	assert.Equal(t, "Physics", profile.User.Department)

	student := f.seedUser(t, models.RoleStudent, "s@b.co", nil)
	_, err = f.profiles.UpdateTeacherProfile(ctx, student.ID, &dto.TeacherProfileRequest{Name: "x"})
	assert.ErrorIs(t, err, ErrAccessDenied)
}
