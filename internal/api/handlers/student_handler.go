package handlers

import (
	"encoding/json"

	"github.com/akashadhithyan11707-web/collage-chatbot/internal/dto"
	"github.com/akashadhithyan11707-web/collage-chatbot/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// StudentHandler serves the teacher's student management endpoints.
type StudentHandler struct {
	studentService *service.StudentService
	logger         *zap.Logger
}

func NewStudentHandler(studentService *service.StudentService, logger *zap.Logger) *StudentHandler {
	return &StudentHandler{
		studentService: studentService,
		logger:         logger,
	}
}

func success(c *fiber.Ctx, message string) error {
	return c.JSON(dto.MessageResponse{Success: true, Message: message})
}

// handleStudent parses the :id parameter and body into a T, runs fn and
// reports message on success.
func handleStudent[T any](c *fiber.Ctx, h *StudentHandler, action, message string, fn func(id uuid.UUID, req *T) error) error {
	id, valid := studentID(c)
	if !valid {
		return badRequest(c, "Invalid student ID")
	}

	var req T
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	if err := fn(id, &req); err != nil {
		return writeError(c, h.logger, err, action)
	}
	return success(c, message)
}

// AddStudent godoc
// @Summary Add a student
// @Description Create a student account. An optional multipart "photo" is stored when it is an image.
// @Tags teacher
// @Accept json,mpfd
// @Produce json
// @Security Bearer
// @Param request body dto.AddStudentRequest true "Student"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /api/v1/teacher/students [post]
func (h *StudentHandler) AddStudent(c *fiber.Ctx) error {
	var req dto.AddStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	photo, closePhoto, err := photoUpload(c)
	if err != nil {
		return badRequest(c, "Invalid photo upload")
	}
	defer closePhoto()

	resp, err := h.studentService.AddStudent(c.UserContext(), &req, photo)
	if err != nil {
		return writeError(c, h.logger, err, "Adding student")
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// EditStudent godoc
// @Summary Edit student details
// @Tags teacher
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "Student ID"
// @Param request body dto.EditStudentRequest true "Details"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/teacher/students/{id} [put]
func (h *StudentHandler) EditStudent(c *fiber.Ctx) error {
	return handleStudent(c, h, "Updating student", "Student updated successfully",
		func(id uuid.UUID, req *dto.EditStudentRequest) error {
			return h.studentService.EditStudent(c.UserContext(), id, req)
		})
}

// ResetPassword godoc
// @Summary Reset a student's password
// @Tags teacher
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "Student ID"
// @Param request body dto.ResetPasswordRequest true "New password"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/teacher/students/{id}/password [post]
func (h *StudentHandler) ResetPassword(c *fiber.Ctx) error {
	return handleStudent(c, h, "Password reset", "Password reset successfully",
		func(id uuid.UUID, req *dto.ResetPasswordRequest) error {
			return h.studentService.ResetPassword(c.UserContext(), id, req)
		})
}

// DeleteStudent godoc
// @Summary Delete a student
// @Tags teacher
// @Produce json
// @Security Bearer
// @Param id path string true "Student ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/teacher/students/{id} [delete]
func (h *StudentHandler) DeleteStudent(c *fiber.Ctx) error {
	id, valid := studentID(c)
	if !valid {
		return badRequest(c, "Invalid student ID")
	}

	if err := h.studentService.DeleteStudent(c.UserContext(), id); err != nil {
		return writeError(c, h.logger, err, "Deleting student")
	}
	return success(c, "Student deleted successfully")
}

// UpdateMarks godoc
// @Summary Set a subject mark
// @Tags teacher
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "Student ID"
// @Param request body dto.UpdateMarksRequest true "Mark"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/teacher/students/{id}/marks [post]
func (h *StudentHandler) UpdateMarks(c *fiber.Ctx) error {
	return handleStudent(c, h, "Updating marks", "Marks updated successfully",
		func(id uuid.UUID, req *dto.UpdateMarksRequest) error {
			return h.studentService.UpdateMarks(c.UserContext(), id, req)
		})
}

// UpdateArrear godoc
// @Summary Set the arrear status of a subject
// @Tags teacher
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "Student ID"
// @Param request body dto.UpdateArrearRequest true "Arrear"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/teacher/students/{id}/arrears [post]
func (h *StudentHandler) UpdateArrear(c *fiber.Ctx) error {
	return handleStudent(c, h, "Updating arrears", "Arrears updated successfully",
		func(id uuid.UUID, req *dto.UpdateArrearRequest) error {
			return h.studentService.UpdateArrear(c.UserContext(), id, req)
		})
}

// UpdateNotesLink godoc
// @Summary Set the general notes link
// @Tags teacher
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "Student ID"
// @Param request body dto.UpdateNotesLinkRequest true "Link"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/teacher/students/{id}/notes-link [put]
func (h *StudentHandler) UpdateNotesLink(c *fiber.Ctx) error {
	return handleStudent(c, h, "Updating notes link", "Notes link updated successfully",
		func(id uuid.UUID, req *dto.UpdateNotesLinkRequest) error {
			return h.studentService.UpdateNotesLink(c.UserContext(), id, req)
		})
}

// UpdateSubjectNotes godoc
// @Summary Set the notes link of a subject
// @Tags teacher
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "Student ID"
// @Param request body dto.UpdateSubjectNotesRequest true "Subject notes"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/teacher/students/{id}/subject-notes [post]
func (h *StudentHandler) UpdateSubjectNotes(c *fiber.Ctx) error {
	return handleStudent(c, h, "Updating subject notes", "Subject notes updated successfully",
		func(id uuid.UUID, req *dto.UpdateSubjectNotesRequest) error {
			return h.studentService.UpdateSubjectNotes(c.UserContext(), id, req)
		})
}

// SetChatbotQuestions godoc
// @Summary Replace a student's custom chatbot questions
// @Description JSON bodies carry "questions" as an array or as a string holding one; forms send the string field "questions".
// @Tags teacher
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Security Bearer
// @Param id path string true "Student ID"
// @Param request body dto.ChatbotQuestionsRequest true "Questions"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/teacher/students/{id}/chatbot-questions [put]
func (h *StudentHandler) SetChatbotQuestions(c *fiber.Ctx) error {
	id, valid := studentID(c)
	if !valid {
		return badRequest(c, "Invalid student ID")
	}

	raw := c.FormValue("questions")
	if c.Is("json") {
		var req dto.ChatbotQuestionsRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
		raw = string(req.Questions)
		var s string
		if err := json.Unmarshal(req.Questions, &s); err == nil {
			raw = s
		}
	}

	if err := h.studentService.SetChatbotQuestions(c.UserContext(), id, raw); err != nil {
		return writeError(c, h.logger, err, "Updating chatbot questions")
	}
	return success(c, "Chatbot questions updated successfully")
}

// GetChatbotQuestions godoc
// @Summary A student's custom chatbot questions
// @Tags teacher
// @Produce json
// @Security Bearer
// @Param id path string true "Student ID"
// @Success 200 {object} dto.ChatbotQuestionsResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/teacher/students/{id}/chatbot-questions [get]
func (h *StudentHandler) GetChatbotQuestions(c *fiber.Ctx) error {
	id, valid := studentID(c)
	if !valid {
		return badRequest(c, "Invalid student ID")
	}

	questions, err := h.studentService.GetChatbotQuestions(c.UserContext(), id)
	if err != nil {
		return writeError(c, h.logger, err, "Loading chatbot questions")
	}
	return c.JSON(dto.ChatbotQuestionsResponse{Success: true, Questions: questions})
}
