package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/cantina-api/internal/application/dto"
	"github.com/jhoicas/cantina-api/internal/application/usecase"
)

// FoodHandler maneja las peticiones HTTP del catálogo de platos.
type FoodHandler struct {
	uc *usecase.FoodUseCase
}

// NewFoodHandler construye el handler.
func NewFoodHandler(uc *usecase.FoodUseCase) *FoodHandler {
	return &FoodHandler{uc: uc}
}

// Create da de alta un plato con su receta.
func (h *FoodHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateFoodRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID retorna un plato con su disponibilidad calculada.
func (h *FoodHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}
	out, err := h.uc.Get(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List lista el catálogo con disponibilidades.
func (h *FoodHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.uc.List())
}

// Update edición parcial de un plato.
func (h *FoodHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}
	var in dto.UpdateFoodRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.Context(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete elimina un plato.
func (h *FoodHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
