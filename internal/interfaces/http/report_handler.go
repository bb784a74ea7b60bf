package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/cantina-api/internal/application/dto"
	"github.com/jhoicas/cantina-api/internal/application/usecase"
)

// ReportHandler expone los reportes de solo lectura.
type ReportHandler struct {
	uc *usecase.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// parseRange lee from/to (RFC 3339 o fecha simple) con valores por
// defecto: últimos 30 días hasta ahora.
func parseRange(c *fiber.Ctx) (time.Time, time.Time, error) {
	now := time.Now()
	from := now.AddDate(0, 0, -30)
	to := now

	parse := func(s string) (time.Time, error) {
		if t, err := time.Parse(time.RFC3339, s); err == nil {
			return t, nil
		}
		return time.Parse("2006-01-02", s)
	}
	if s := c.Query("from"); s != "" {
		t, err := parse(s)
		if err != nil {
			return from, to, err
		}
		from = t
	}
	if s := c.Query("to"); s != "" {
		t, err := parse(s)
		if err != nil {
			return from, to, err
		}
		to = t
	}
	return from, to, nil
}

// Sales resumen de ventas del rango.
func (h *ReportHandler) Sales(c *fiber.Ctx) error {
	from, to, err := parseRange(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fecha inválida, use RFC3339 o YYYY-MM-DD"})
	}
	out, err := h.uc.SalesSummary(from, to)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Waste resumen de mermas del rango.
func (h *ReportHandler) Waste(c *fiber.Ctx) error {
	from, to, err := parseRange(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fecha inválida, use RFC3339 o YYYY-MM-DD"})
	}
	out, err := h.uc.WasteSummary(from, to)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Valuation valor en libros del inventario.
func (h *ReportHandler) Valuation(c *fiber.Ctx) error {
	return c.JSON(h.uc.Valuation())
}

// ValuationPDF descarga la valorización como PDF.
func (h *ReportHandler) ValuationPDF(c *fiber.Ctx) error {
	doc, err := h.uc.ValuationPDF(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="valorizacion.pdf"`)
	return c.Send(doc)
}

// LowStock items en o por debajo de su mínimo.
func (h *ReportHandler) LowStock(c *fiber.Ctx) error {
	return c.JSON(h.uc.LowStock())
}
