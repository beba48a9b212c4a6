package auth

import (
	"github.com/gofiber/fiber/v2"

	authuc "github.com/suyeon1218/invoice-dashboard-backend/internal/usecase/auth"
)

type LoginHandler struct {
	uc *authuc.LoginUsecase
}

func NewLoginHandler(uc *authuc.LoginUsecase) *LoginHandler {
	return &LoginHandler{uc: uc}
}

type loginRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

func (h *LoginHandler) Handle(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}
	if req.Email == "" || req.Password == "" {
		return fiber.NewError(fiber.StatusBadRequest, "email and password are required")
	}

	res, err := h.uc.Execute(c.Context(), req.Email, req.Password)
	if err == authuc.ErrInvalidCredentials {
		return fiber.NewError(fiber.StatusUnauthorized, "invalid credentials")
	}
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "internal error")
	}

	return c.JSON(res)
}
