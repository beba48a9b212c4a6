package invoice

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gofiber/fiber/v2"

	invuc "github.com/suyeon1218/invoice-dashboard-backend/internal/usecase/invoice"
)

// PageCache serves pre-rendered listing pages; mutations invalidate it
// through the usecase.
type PageCache interface {
	Get(ctx context.Context, path, key string) ([]byte, bool)
	Set(ctx context.Context, path, key string, body []byte)
}

type Handler struct {
	uc    *invuc.Usecase
	pages PageCache
}

func New(uc *invuc.Usecase, pages PageCache) *Handler {
	return &Handler{uc: uc, pages: pages}
}

// Create accepts the invoice form (customerId, amount, status). On success it
// redirects back to the listing; validation failures come back as a field
// error map for inline rendering.
func (h *Handler) Create(c *fiber.Ctx) error {
	out, err := h.uc.Create(c.Context(), formValues(c))
	return writeOutcome(c, out, err)
}

func (h *Handler) Update(c *fiber.Ctx) error {
	id := c.Params("id")

	out, err := h.uc.Update(c.Context(), id, formValues(c))
	return writeOutcome(c, out, err)
}

func (h *Handler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")

	out, err := h.uc.Delete(c.Context(), id)
	return writeOutcome(c, out, err)
}

func (h *Handler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")

	out, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return mapErr(err)
	}
	return c.JSON(out)
}

func (h *Handler) List(c *fiber.Ctx) error {
	query := c.Query("query")
	page := c.QueryInt("page", 1)

	key := fmt.Sprintf("q=%s&page=%d", query, page)
	if body, ok := h.pages.Get(c.Context(), invuc.ListingPath, key); ok {
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.Send(body)
	}

	out, err := h.uc.List(c.Context(), query, page)
	if err != nil {
		return mapErr(err)
	}

	body, err := json.Marshal(out)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "internal error")
	}
	h.pages.Set(c.Context(), invuc.ListingPath, key, body)

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(body)
}

func formValues(c *fiber.Ctx) invuc.FormValues {
	return invuc.FormValues{
		"customerId": c.FormValue("customerId"),
		"amount":     c.FormValue("amount"),
		"status":     c.FormValue("status"),
	}
}

func writeOutcome(c *fiber.Ctx, out *invuc.Outcome, err error) error {
	if err != nil {
		return mapErr(err)
	}
	switch out.Kind {
	case invuc.OutcomeValidationFailed:
		return c.Status(fiber.StatusUnprocessableEntity).JSON(out.Validation)
	case invuc.OutcomePersistenceFailed:
		return fiber.NewError(fiber.StatusInternalServerError, out.Message)
	default:
		return c.Redirect(out.RedirectTo, fiber.StatusSeeOther)
	}
}

func mapErr(err error) error {
	switch err {
	case invuc.ErrInvalidInput:
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	case invuc.ErrNotFound:
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	default:
		return fiber.NewError(fiber.StatusInternalServerError, "internal error")
	}
}
