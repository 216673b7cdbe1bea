package web

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// Response is the envelope every endpoint returns.
type Response struct {
	Success bool       `json:"success"`
	Data    any        `json:"data,omitempty"`
	Error   *ErrorBody `json:"error,omitempty"`
}

type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func SendSuccess(c *fiber.Ctx, data any) error {
	return c.Status(http.StatusOK).JSON(Response{Success: true, Data: data})
}

func SendError(c *fiber.Ctx, statusCode int, code, message string) error {
	return c.Status(statusCode).JSON(Response{
		Success: false,
		Error:   &ErrorBody{Code: code, Message: message},
	})
}

func SendBadRequest(c *fiber.Ctx, message string) error {
	return SendError(c, http.StatusBadRequest, "BAD_REQUEST", message)
}

func SendUnauthorized(c *fiber.Ctx, message string) error {
	return SendError(c, http.StatusUnauthorized, "UNAUTHORIZED", message)
}

func SendForbidden(c *fiber.Ctx, message string) error {
	return SendError(c, http.StatusForbidden, "FORBIDDEN", message)
}

func SendNotFound(c *fiber.Ctx, message string) error {
	return SendError(c, http.StatusNotFound, "NOT_FOUND", message)
}

// SendStorageError hides storage detail from callers; the full error is
// logged server-side before this is called.
func SendStorageError(c *fiber.Ctx) error {
	return SendError(c, http.StatusInternalServerError, "STORAGE_ERROR", "storage operation failed")
}
