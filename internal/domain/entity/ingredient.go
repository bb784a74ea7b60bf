package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Unidades de medida de ingredientes.
const (
	UnitGram  = "g"
	UnitMilli = "ml"
	UnitCount = "unidad"
)

// Ingredient representa una materia prima usada por las recetas.
// Stock se denomina en su propia unidad (masa/volumen/conteo) y
// AvgBuyPrice es el costo promedio por unidad base.
type Ingredient struct {
	ID          string
	Name        string
	VariantName string // opcional: marca o presentación
	Unit        string // g, ml, unidad
	Stock       decimal.Decimal
	AvgBuyPrice decimal.Decimal
	MinStock    decimal.Decimal
	ImageID     string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
