package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto de reventa de la cantina (bebidas,
// suplementos, snacks). Stock es la unidad atómica; AvgBuyPrice es el
// costo promedio ponderado que recalcula el módulo de compras.
type Product struct {
	ID          string
	Name        string
	Stock       decimal.Decimal // nunca negativo
	AvgBuyPrice decimal.Decimal // costo promedio ponderado por unidad
	SellPrice   decimal.Decimal
	MinStock    decimal.Decimal // umbral para la lista de stock bajo
	ImageID     string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
