package handlers

import (
	"errors"

	"github.com/akashadhithyan11707-web/collage-chatbot/internal/dto"
	"github.com/akashadhithyan11707-web/collage-chatbot/internal/service"
	"github.com/akashadhithyan11707-web/collage-chatbot/pkg/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var errorStatus = []struct {
	err     error
	status  int
	message string
}{
	{service.ErrInvalidPhoto, fiber.StatusBadRequest, "Invalid file type. Please upload PNG, JPG, JPEG or GIF"},
	{service.ErrInvalidCredentials, fiber.StatusUnauthorized, "Invalid email/phone or password"},
	{service.ErrAccessDenied, fiber.StatusForbidden, "Access denied"},
	{service.ErrStudentNotFound, fiber.StatusNotFound, "Student not found"},
	{service.ErrUserNotFound, fiber.StatusNotFound, "User not found"},
	{service.ErrUserExists, fiber.StatusConflict, "Email/Phone already registered"},
}

// writeError maps service errors to a JSON response. Anything unknown is
// logged and reported as "<action> failed".
func writeError(c *fiber.Ctx, logger *zap.Logger, err error, action string) error {
	var verr *validation.Error
	if errors.As(err, &verr) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error:  verr.Error(),
			Fields: verr.FieldMap(),
		})
	}

	for _, e := range errorStatus {
		if errors.Is(err, e.err) {
			return c.Status(e.status).JSON(dto.ErrorResponse{Error: e.message})
		}
	}

	logger.Error(action+" failed", zap.Error(err), zap.String("path", c.Path()))
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Error: action + " failed",
	})
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: message})
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "Invalid or expired token"})
}

func studentID(c *fiber.Ctx) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Params("id"))
	return id, err == nil
}

// photoUpload returns the optional "photo" file of a multipart form.
// The returned close func is never nil.
func photoUpload(c *fiber.Ctx) (*service.PhotoUpload, func(), error) {
	fh, err := c.FormFile("photo")
	if err != nil || fh == nil || fh.Filename == "" {
		return nil, func() {}, nil
	}
	f, err := fh.Open()
	if err != nil {
		return nil, func() {}, err
	}
	return &service.PhotoUpload{Filename: fh.Filename, Content: f}, func() { f.Close() }, nil
}
