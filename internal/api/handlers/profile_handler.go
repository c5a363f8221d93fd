package handlers

import (
	"github.com/akashadhithyan11707-web/collage-chatbot/internal/dto"
	"github.com/akashadhithyan11707-web/collage-chatbot/internal/service"
	"github.com/akashadhithyan11707-web/collage-chatbot/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type ProfileHandler struct {
	profileService *service.ProfileService
	logger         *zap.Logger
}

func NewProfileHandler(profileService *service.ProfileService, logger *zap.Logger) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
		logger:         logger,
	}
}

// Profile godoc
// @Summary Current user's profile
// @Tags profile
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.ProfileResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/profile [get]
func (h *ProfileHandler) Profile(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return unauthorized(c)
	}

	resp, err := h.profileService.Profile(c.UserContext(), userID)
	if err != nil {
		return writeError(c, h.logger, err, "Loading profile")
	}
	return c.JSON(resp)
}

// StudentDashboard godoc
// @Summary Student dashboard
// @Description Profile, notes, subjects, parent details, marks and arrears of the logged-in student
// @Tags student
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.StudentDashboardResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /api/v1/student/dashboard [get]
func (h *ProfileHandler) StudentDashboard(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return unauthorized(c)
	}

	resp, err := h.profileService.StudentDashboard(c.UserContext(), userID)
	if err != nil {
		return writeError(c, h.logger, err, "Loading dashboard")
	}
	return c.JSON(resp)
}

// TeacherDashboard godoc
// @Summary Teacher dashboard
// @Description All students, newest first
// @Tags teacher
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.TeacherDashboardResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /api/v1/teacher/dashboard [get]
func (h *ProfileHandler) TeacherDashboard(c *fiber.Ctx) error {
	resp, err := h.profileService.TeacherDashboard(c.UserContext())
	if err != nil {
		return writeError(c, h.logger, err, "Loading dashboard")
	}
	return c.JSON(resp)
}

// UpdateTeacherProfile godoc
// @Summary Edit own teacher profile
// @Tags teacher
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body dto.TeacherProfileRequest true "Profile"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /api/v1/teacher/profile [put]
func (h *ProfileHandler) UpdateTeacherProfile(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return unauthorized(c)
	}

	var req dto.TeacherProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	resp, err := h.profileService.UpdateTeacherProfile(c.UserContext(), userID, &req)
	if err != nil {
		return writeError(c, h.logger, err, "Profile update")
	}
	return c.JSON(resp)
}
