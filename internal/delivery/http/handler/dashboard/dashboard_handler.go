package dashboard

import (
	"github.com/gofiber/fiber/v2"

	dashuc "github.com/suyeon1218/invoice-dashboard-backend/internal/usecase/dashboard"
)

type Handler struct {
	uc *dashuc.Usecase
}

func New(uc *dashuc.Usecase) *Handler {
	return &Handler{uc: uc}
}

func (h *Handler) Cards(c *fiber.Ctx) error {
	out, err := h.uc.CardData(c.Context())
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "internal error")
	}
	return c.JSON(out)
}

func (h *Handler) LatestInvoices(c *fiber.Ctx) error {
	out, err := h.uc.LatestInvoices(c.Context())
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "internal error")
	}
	return c.JSON(fiber.Map{"items": out})
}

func (h *Handler) Revenue(c *fiber.Ctx) error {
	out, err := h.uc.Revenue(c.Context())
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "internal error")
	}
	return c.JSON(fiber.Map{"items": out})
}
