package customer

import (
	"github.com/gofiber/fiber/v2"

	customeruc "github.com/suyeon1218/invoice-dashboard-backend/internal/usecase/customer"
)

type Handler struct {
	uc *customeruc.Usecase
}

func New(uc *customeruc.Usecase) *Handler {
	return &Handler{uc: uc}
}

// ListNames backs the customer dropdown on the invoice form.
func (h *Handler) ListNames(c *fiber.Ctx) error {
	out, err := h.uc.ListNames(c.Context())
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "internal error")
	}
	return c.JSON(fiber.Map{"items": out})
}

func (h *Handler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListFiltered(c.Context(), c.Query("query"))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "internal error")
	}
	return c.JSON(fiber.Map{"items": out})
}
