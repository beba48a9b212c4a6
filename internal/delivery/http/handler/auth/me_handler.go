package auth

import "github.com/gofiber/fiber/v2"

type MeHandler struct{}

func NewMeHandler() *MeHandler {
	return &MeHandler{}
}

func (h *MeHandler) Handle(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"id":    c.Locals("user_id"),
		"email": c.Locals("user_email"),
	})
}
