package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/cantina-api/internal/application/dto"
	"github.com/jhoicas/cantina-api/internal/application/usecase"
)

// WasteHandler maneja los registros de merma y consumibles.
type WasteHandler struct {
	uc *usecase.WasteUseCase
}

// NewWasteHandler construye el handler.
func NewWasteHandler(uc *usecase.WasteUseCase) *WasteHandler {
	return &WasteHandler{uc: uc}
}

// Create registra una merma debitando stock.
func (h *WasteHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateWasteRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update edita cantidad, motivo o fecha de una merma.
func (h *WasteHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}
	var in dto.UpdateWasteRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.Context(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete elimina la merma acreditando el stock de vuelta.
func (h *WasteHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}
	out, err := h.uc.Delete(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List lista las mermas registradas.
func (h *WasteHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.uc.List())
}
