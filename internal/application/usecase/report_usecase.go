package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/cantina-api/internal/application/dto"
	"github.com/jhoicas/cantina-api/internal/application/store"
	"github.com/jhoicas/cantina-api/internal/domain"
	"github.com/jhoicas/cantina-api/internal/domain/entity"
)

// ValuationPDFGenerator puerto de generación del PDF de valorización.
// La implementación vive en infraestructura.
type ValuationPDFGenerator interface {
	GenerateValuation(ctx context.Context, report *dto.ValuationReport) ([]byte, error)
}

// ReportUseCase reportes de solo lectura derivados del estado: ventas,
// mermas, valorización y stock bajo.
type ReportUseCase struct {
	store *store.Store
	pdf   ValuationPDFGenerator
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(s *store.Store, pdf ValuationPDFGenerator) *ReportUseCase {
	return &ReportUseCase{store: s, pdf: pdf}
}

// SalesSummary resume las órdenes del rango [from, to].
func (uc *ReportUseCase) SalesSummary(from, to time.Time) (*dto.SalesReport, error) {
	if to.Before(from) {
		return nil, fmt.Errorf("rango de fechas invertido: %w", domain.ErrInvalidInput)
	}
	st := uc.store.GetSnapshot()
	rep := &dto.SalesReport{
		From:        from,
		To:          to,
		Revenue:     decimal.Zero,
		CreditSales: decimal.Zero,
	}
	for i := range st.Orders {
		o := &st.Orders[i]
		if o.CreatedAt.Before(from) || o.CreatedAt.After(to) {
			continue
		}
		rep.OrderCount++
		rep.Revenue = rep.Revenue.Add(o.Total)
		if o.Payment == entity.PaymentCredit {
			rep.CreditSales = rep.CreditSales.Add(o.Total)
		}
		for _, l := range o.Lines {
			rep.UnitsSold += l.Quantity
		}
	}
	return rep, nil
}

// WasteSummary resume las mermas del rango [from, to] con su costo
// fotografiado.
func (uc *ReportUseCase) WasteSummary(from, to time.Time) (*dto.WasteReport, error) {
	if to.Before(from) {
		return nil, fmt.Errorf("rango de fechas invertido: %w", domain.ErrInvalidInput)
	}
	st := uc.store.GetSnapshot()
	rep := &dto.WasteReport{From: from, To: to, TotalCost: decimal.Zero}
	for i := range st.Wastes {
		w := &st.Wastes[i]
		if w.Date.Before(from) || w.Date.After(to) {
			continue
		}
		rep.RecordCount++
		rep.TotalCost = rep.TotalCost.Add(w.Cost)
	}
	return rep, nil
}

// Valuation valor en libros del inventario: Σ stock × costo promedio
// por item, productos e ingredientes.
func (uc *ReportUseCase) Valuation() *dto.ValuationReport {
	st := uc.store.GetSnapshot()
	rep := &dto.ValuationReport{
		GeneratedAt: time.Now(),
		Total:       decimal.Zero,
	}
	for i := range st.Products {
		p := &st.Products[i]
		value := p.Stock.Mul(p.AvgBuyPrice)
		rep.Items = append(rep.Items, dto.ValuationItem{
			Kind:     string(entity.ItemProduct),
			ID:       p.ID,
			Name:     p.Name,
			Stock:    p.Stock,
			Unit:     entity.UnitCount,
			UnitCost: p.AvgBuyPrice,
			Value:    value,
		})
		rep.Total = rep.Total.Add(value)
	}
	for i := range st.Ingredients {
		ing := &st.Ingredients[i]
		value := ing.Stock.Mul(ing.AvgBuyPrice)
		rep.Items = append(rep.Items, dto.ValuationItem{
			Kind:     string(entity.ItemIngredient),
			ID:       ing.ID,
			Name:     ing.Name,
			Stock:    ing.Stock,
			Unit:     ing.Unit,
			UnitCost: ing.AvgBuyPrice,
			Value:    value,
		})
		rep.Total = rep.Total.Add(value)
	}
	return rep
}

// ValuationPDF genera la valorización como PDF descargable.
func (uc *ReportUseCase) ValuationPDF(ctx context.Context) ([]byte, error) {
	if uc.pdf == nil {
		return nil, fmt.Errorf("generador de PDF no configurado: %w", domain.ErrConflict)
	}
	return uc.pdf.GenerateValuation(ctx, uc.Valuation())
}

// LowStock lista los items con stock en o por debajo de su mínimo.
// Items con mínimo cero no se reportan.
func (uc *ReportUseCase) LowStock() []dto.LowStockItem {
	st := uc.store.GetSnapshot()
	var out []dto.LowStockItem
	for i := range st.Products {
		p := &st.Products[i]
		if p.MinStock.IsPositive() && p.Stock.LessThanOrEqual(p.MinStock) {
			out = append(out, dto.LowStockItem{
				Kind:     string(entity.ItemProduct),
				ID:       p.ID,
				Name:     p.Name,
				Stock:    p.Stock,
				MinStock: p.MinStock,
			})
		}
	}
	for i := range st.Ingredients {
		ing := &st.Ingredients[i]
		if ing.MinStock.IsPositive() && ing.Stock.LessThanOrEqual(ing.MinStock) {
			out = append(out, dto.LowStockItem{
				Kind:     string(entity.ItemIngredient),
				ID:       ing.ID,
				Name:     ing.Name,
				Stock:    ing.Stock,
				MinStock: ing.MinStock,
			})
		}
	}
	return out
}
