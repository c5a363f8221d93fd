package handlers

import (
	"github.com/akashadhithyan11707-web/collage-chatbot/internal/dto"
	"github.com/akashadhithyan11707-web/collage-chatbot/internal/service"
	"github.com/akashadhithyan11707-web/collage-chatbot/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type ChatHandler struct {
	chatService *service.ChatService
	logger      *zap.Logger
}

func NewChatHandler(chatService *service.ChatService, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
		logger:      logger,
	}
}

// PublicMessage godoc
// @Summary Ask the public college chatbot
// @Description Answers questions about courses, fees, admissions, timings and contacts
// @Tags chatbot
// @Accept json
// @Produce json
// @Param request body dto.ChatRequest true "Message"
// @Success 200 {object} dto.ChatResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /chatbot/message [post]
func (h *ChatHandler) PublicMessage(c *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	return c.JSON(dto.ChatResponse{Response: h.chatService.PublicAnswer(req.Message)})
}

// StudentMessage godoc
// @Summary Ask the personal chatbot
// @Description Answers a logged-in student about their marks, arrears, subjects and custom questions
// @Tags chatbot
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body dto.ChatRequest true "Message"
// @Success 200 {object} dto.ChatResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /api/v1/student/chatbot/message [post]
func (h *ChatHandler) StudentMessage(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return unauthorized(c)
	}

	var req dto.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	answer, err := h.chatService.StudentAnswer(c.UserContext(), userID, req.Message)
	if err != nil {
		return writeError(c, h.logger, err, "Chatbot")
	}

	return c.JSON(dto.ChatResponse{Response: answer})
}
