package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalesReport resumen de ventas en un rango de fechas.
type SalesReport struct {
	From        time.Time       `json:"from"`
	To          time.Time       `json:"to"`
	OrderCount  int             `json:"order_count"`
	Revenue     decimal.Decimal `json:"revenue"`
	CreditSales decimal.Decimal `json:"credit_sales"`
	UnitsSold   int64           `json:"units_sold"`
}

// WasteReport resumen de mermas en un rango de fechas.
type WasteReport struct {
	From        time.Time       `json:"from"`
	To          time.Time       `json:"to"`
	RecordCount int             `json:"record_count"`
	TotalCost   decimal.Decimal `json:"total_cost"`
}

// ValuationItem valor en libros de un item del inventario.
type ValuationItem struct {
	Kind     string          `json:"kind"`
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Stock    decimal.Decimal `json:"stock"`
	Unit     string          `json:"unit,omitempty"`
	UnitCost decimal.Decimal `json:"unit_cost"`
	Value    decimal.Decimal `json:"value"`
}

// ValuationReport valorización del inventario (Σ stock × costo promedio).
type ValuationReport struct {
	GeneratedAt time.Time       `json:"generated_at"`
	Items       []ValuationItem `json:"items"`
	Total       decimal.Decimal `json:"total"`
}

// LowStockItem item por debajo de su umbral mínimo.
type LowStockItem struct {
	Kind     string          `json:"kind"`
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Stock    decimal.Decimal `json:"stock"`
	MinStock decimal.Decimal `json:"min_stock"`
}
