package api

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/akashadhithyan11707-web/collage-chatbot/internal/api/handlers"
	"github.com/akashadhithyan11707-web/collage-chatbot/internal/dto"
	"github.com/akashadhithyan11707-web/collage-chatbot/internal/repository/inmem"
	"github.com/akashadhithyan11707-web/collage-chatbot/internal/service"
	"github.com/akashadhithyan11707-web/collage-chatbot/pkg/auth"
	"github.com/akashadhithyan11707-web/collage-chatbot/pkg/validation"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	logger := zap.NewNop()
	users := inmem.NewUserRepository()
	uploadDir := t.TempDir()
	photos := service.NewPhotoStorage(uploadDir, logger)
	jwtManager := auth.NewJWTManager("test-secret", time.Hour, 24*time.Hour)
	v := validation.New()

	return SetupRouter(Handlers{
		Auth:    handlers.NewAuthHandler(service.NewAuthService(users, photos, jwtManager, v, logger), logger),
		Chat:    handlers.NewChatHandler(service.NewChatService(users, logger), logger),
		Profile: handlers.NewProfileHandler(service.NewProfileService(users, logger), logger),
		Student: handlers.NewStudentHandler(service.NewStudentService(users, photos, v, logger), logger),
	}, jwtManager, Options{UploadDir: uploadDir, BodyLimit: 16 * 1024 * 1024}, logger)
}

func call(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (int, []byte) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}
	return do(t, app, req)
}

func do(t *testing.T, app *fiber.App, req *http.Request) (int, []byte) {
	t.Helper()
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, data
}

func register(t *testing.T, app *fiber.App, role, identity string) dto.AuthResponse {
	t.Helper()
	status, body := call(t, app, fiber.MethodPost, "/auth/register", "", dto.RegisterRequest{
		Role: role, EmailPhone: identity, Password: "pw", Name: "Test " + role,
	})
	require.Equal(t, fiber.StatusCreated, status, string(body))

	var resp dto.AuthResponse
	require.NoError(t, json.Unmarshal(body, &resp))
	return resp
}

func decode[T any](t *testing.T, body []byte) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(body, &v), string(body))
	return v
}

func TestHealth(t *testing.T) {
	status, body := call(t, newTestApp(t), fiber.MethodGet, "/health", "", nil)
	assert.Equal(t, fiber.StatusOK, status)
	assert.JSONEq(t, `{"status":"ok"}`, string(body))
}

func TestPublicChatbot(t *testing.T) {
	app := newTestApp(t)

	status, body := call(t, app, fiber.MethodPost, "/chatbot/message", "", dto.ChatRequest{Message: "  ADMISSION please"})
	require.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, decode[dto.ChatResponse](t, body).Response, "Admissions are open!")

	req := httptest.NewRequest(fiber.MethodPost, "/chatbot/message", bytes.NewBufferString("{"))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	status, _ = do(t, app, req)
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestAuthFlow(t *testing.T) {
	app := newTestApp(t)
	reg := register(t, app, "student", "s@college.edu")
	assert.Equal(t, "/student/dashboard", reg.Redirect)

	status, body := call(t, app, fiber.MethodPost, "/auth/register", "", dto.RegisterRequest{
		Role: "student", EmailPhone: "s@college.edu", Password: "pw",
	})
	assert.Equal(t, fiber.StatusConflict, status, string(body))

	status, body = call(t, app, fiber.MethodPost, "/auth/register", "", dto.RegisterRequest{
		Role: "principal", EmailPhone: "x", Password: "pw",
	})
	require.Equal(t, fiber.StatusBadRequest, status)
	errResp := decode[dto.ErrorResponse](t, body)
	assert.Contains(t, errResp.Fields, "role")
	assert.Contains(t, errResp.Fields, "email_phone")

	status, body = call(t, app, fiber.MethodPost, "/auth/login", "", dto.LoginRequest{EmailPhone: "s@college.edu", Password: "pw"})
	require.Equal(t, fiber.StatusOK, status)
	login := decode[dto.AuthResponse](t, body)

	status, _ = call(t, app, fiber.MethodPost, "/auth/login", "", dto.LoginRequest{EmailPhone: "s@college.edu", Password: "nope"})
	assert.Equal(t, fiber.StatusUnauthorized, status)

	status, body = call(t, app, fiber.MethodPost, "/auth/refresh", "", dto.RefreshTokenRequest{RefreshToken: login.RefreshToken})
	require.Equal(t, fiber.StatusOK, status)
	assert.NotEmpty(t, decode[dto.AuthResponse](t, body).AccessToken)

	status, _ = call(t, app, fiber.MethodPost, "/auth/refresh", "", dto.RefreshTokenRequest{RefreshToken: login.AccessToken})
	assert.Equal(t, fiber.StatusUnauthorized, status)

	status, body = call(t, app, fiber.MethodGet, "/api/v1/profile", login.AccessToken, nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "s@college.edu", decode[dto.ProfileResponse](t, body).User.EmailPhone)
}

func TestRegisterMultipartPhoto(t *testing.T) {
	app := newTestApp(t)

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range map[string]string{"role": "student", "email_phone": "9876543210", "password": "pw"} {
		require.NoError(t, w.WriteField(k, v))
	}
	part, err := w.CreateFormFile("photo", "me.png")
	require.NoError(t, err)
	_, err = part.Write([]byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00\x1f\x15\xc4\x89"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(fiber.MethodPost, "/auth/register", &buf)
	req.Header.Set(fiber.HeaderContentType, w.FormDataContentType())
	status, body := do(t, app, req)
	require.Equal(t, fiber.StatusCreated, status, string(body))

	photo := decode[dto.AuthResponse](t, body).User.PhotoPath
	require.NotEmpty(t, photo)

	status, _ = call(t, app, fiber.MethodGet, "/"+photo, "", nil)
	assert.Equal(t, fiber.StatusOK, status)
}

func TestRoleGuards(t *testing.T) {
	app := newTestApp(t)
	student := register(t, app, "student", "s@b.co")
	teacher := register(t, app, "teacher", "t@b.co")

	status, _ := call(t, app, fiber.MethodGet, "/api/v1/teacher/dashboard", student.AccessToken, nil)
	assert.Equal(t, fiber.StatusForbidden, status)

	status, _ = call(t, app, fiber.MethodPost, "/api/v1/student/chatbot/message", teacher.AccessToken, dto.ChatRequest{Message: "marks"})
	assert.Equal(t, fiber.StatusForbidden, status)

	status, _ = call(t, app, fiber.MethodGet, "/api/v1/student/dashboard", "", nil)
	assert.Equal(t, fiber.StatusUnauthorized, status)

	status, _ = call(t, app, fiber.MethodGet, "/api/v1/student/dashboard", student.AccessToken, nil)
	assert.Equal(t, fiber.StatusOK, status)
}

func TestTeacherManagesStudent(t *testing.T) {
	app := newTestApp(t)
	teacher := register(t, app, "teacher", "t@b.co").AccessToken

	status, body := call(t, app, fiber.MethodPost, "/api/v1/teacher/students", teacher, dto.AddStudentRequest{
		EmailPhone: "9876543210", Password: "pw", Name: "Kavya",
	})
	require.Equal(t, fiber.StatusCreated, status, string(body))
	id := decode[dto.UserResponse](t, body).ID
	base := "/api/v1/teacher/students/" + id

	steps := []struct {
		method string
		path   string
		body   interface{}
	}{
		{fiber.MethodPut, base, dto.EditStudentRequest{Name: "Kavya", Subjects: "Maths, Physics"}},
		{fiber.MethodPost, base + "/marks", dto.UpdateMarksRequest{Semester: "1", Subject: "Maths", Marks: "91"}},
		{fiber.MethodPost, base + "/marks", dto.UpdateMarksRequest{Semester: "1", Subject: "Physics", Marks: "78"}},
		{fiber.MethodPost, base + "/arrears", dto.UpdateArrearRequest{Subject: "Chemistry", Status: "Pending"}},
		{fiber.MethodPut, base + "/notes-link", dto.UpdateNotesLinkRequest{NotesLink: "https://notes"}},
		{fiber.MethodPost, base + "/subject-notes", dto.UpdateSubjectNotesRequest{Subject: "Maths", NotesLink: "https://maths"}},
		{fiber.MethodPut, base + "/chatbot-questions", map[string]interface{}{
			"questions": []map[string]string{{"question": "When is the lab exam?", "answer": "Next Friday"}},
		}},
	}
	for _, s := range steps {
		status, body := call(t, app, s.method, s.path, teacher, s.body)
		require.Equal(t, fiber.StatusOK, status, "%s %s: %s", s.method, s.path, body)
		assert.True(t, decode[dto.MessageResponse](t, body).Success)
	}

	status, body = call(t, app, fiber.MethodGet, base+"/chatbot-questions", teacher, nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Len(t, decode[dto.ChatbotQuestionsResponse](t, body).Questions, 1)

	status, body = call(t, app, fiber.MethodGet, "/api/v1/teacher/dashboard", teacher, nil)
	require.Equal(t, fiber.StatusOK, status)
	dash := decode[dto.TeacherDashboardResponse](t, body)
	require.Equal(t, 1, dash.Total)
	assert.Equal(t, []string{"Maths", "Physics"}, dash.Students[0].Subjects)

	status, body = call(t, app, fiber.MethodPost, "/auth/login", "", dto.LoginRequest{EmailPhone: "9876543210", Password: "pw"})
	require.Equal(t, fiber.StatusOK, status)
	student := decode[dto.AuthResponse](t, body).AccessToken

	ask := func(message string) string {
		status, body := call(t, app, fiber.MethodPost, "/api/v1/student/chatbot/message", student, dto.ChatRequest{Message: message})
		require.Equal(t, fiber.StatusOK, status)
		return decode[dto.ChatResponse](t, body).Response
	}
	assert.Equal(t, "Here are your semester marks:\n\n📚 Semester 1:\n  • Maths: 91\n  • Physics: 78\n\n", ask("show my marks"))
	assert.Equal(t, "Here is your arrears status:\n\nChemistry: Pending\n", ask("arrears?"))
	assert.Equal(t, "Next Friday", ask("when is the lab exam?"))

	status, body = call(t, app, fiber.MethodGet, "/api/v1/student/dashboard", student, nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "https://notes", decode[dto.StudentDashboardResponse](t, body).NotesLink)

	status, _ = call(t, app, fiber.MethodDelete, base, teacher, nil)
	require.Equal(t, fiber.StatusOK, status)
	status, _ = call(t, app, fiber.MethodPost, base+"/marks", teacher, dto.UpdateMarksRequest{Semester: "1", Subject: "Maths", Marks: "1"})
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestTeacherStudentErrors(t *testing.T) {
	app := newTestApp(t)
	teacher := register(t, app, "teacher", "t@b.co")
	student := register(t, app, "student", "s@b.co")
	base := "/api/v1/teacher/students/" + student.User.ID

	status, _ := call(t, app, fiber.MethodPost, "/api/v1/teacher/students/not-a-uuid/marks", teacher.AccessToken,
		dto.UpdateMarksRequest{Semester: "1", Subject: "Maths", Marks: "1"})
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, body := call(t, app, fiber.MethodPost, base+"/marks", teacher.AccessToken, dto.UpdateMarksRequest{Semester: "1"})
	require.Equal(t, fiber.StatusBadRequest, status)
	assert.Contains(t, decode[dto.ErrorResponse](t, body).Fields, "marks")

	status, body = call(t, app, fiber.MethodPut, base+"/chatbot-questions", teacher.AccessToken, map[string]string{
		"questions": `[{"question":"only a question"}]`,
	})
	require.Equal(t, fiber.StatusBadRequest, status)
	assert.Contains(t, decode[dto.ErrorResponse](t, body).Fields["questions"], "answer")

	// a teacher account is not a student
	status, _ = call(t, app, fiber.MethodDelete, "/api/v1/teacher/students/"+teacher.User.ID, teacher.AccessToken, nil)
	assert.Equal(t, fiber.StatusNotFound, status)

	status, _ = call(t, app, fiber.MethodPost, "/api/v1/teacher/students", teacher.AccessToken, dto.AddStudentRequest{
		EmailPhone: "s@b.co", Password: "pw",
	})
	assert.Equal(t, fiber.StatusConflict, status)
}

func TestTeacherProfileUpdate(t *testing.T) {
	app := newTestApp(t)
	teacher := register(t, app, "teacher", "t@b.co")

	status, body := call(t, app, fiber.MethodPut, "/api/v1/teacher/profile", teacher.AccessToken, dto.TeacherProfileRequest{
		Name: "Dr. Rao", Department: "Maths", Age: "abc", BloodGroup: "A+",
	})
	require.Equal(t, fiber.StatusOK, status, string(body))
	resp := decode[dto.UserResponse](t, body)
	assert.Equal(t, "Dr. Rao", resp.Name)
	assert.Nil(t, resp.Age)
}
