package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecipeLine define cuánto de un ingrediente consume una unidad del plato.
type RecipeLine struct {
	IngredientID string
	Quantity     decimal.Decimal // estrictamente positiva, en la unidad del ingrediente
}

// Food representa un plato preparado (item compuesto). No tiene stock
// propio: su disponibilidad se deriva del stock de los ingredientes de
// la receta. Una receta vacía se trata como disponibilidad ilimitada.
type Food struct {
	ID        string
	Name      string
	Recipe    []RecipeLine
	SellPrice decimal.Decimal
	ImageID   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
