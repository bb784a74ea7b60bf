package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/cantina-api/internal/application/dto"
	"github.com/jhoicas/cantina-api/internal/application/usecase"
)

// OrderHandler maneja la caja: consulta de reserva y checkout.
type OrderHandler struct {
	uc *usecase.OrderUseCase
}

// NewOrderHandler construye el handler.
func NewOrderHandler(uc *usecase.OrderUseCase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// CanAdd responde si cabe una unidad más del item dado el carrito
// pendiente. Respuesta: {"can_add": bool}.
func (h *OrderHandler) CanAdd(c *fiber.Ctx) error {
	var in dto.CanAddRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	ok, err := h.uc.CanAddOne(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"can_add": ok})
}

// Checkout confirma la venta del carrito completo, todo o nada.
func (h *OrderHandler) Checkout(c *fiber.Ctx) error {
	var in dto.CheckoutRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Checkout(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List lista las órdenes archivadas.
func (h *OrderHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.uc.List())
}
