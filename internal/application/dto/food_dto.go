package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecipeLineDTO línea de receta: cuánto ingrediente consume una unidad
// del plato.
type RecipeLineDTO struct {
	IngredientID string          `json:"ingredient_id"`
	Quantity     decimal.Decimal `json:"quantity"`
}

// CreateFoodRequest alta de plato con su receta. Las cantidades deben
// ser estrictamente positivas; un ingrediente aún inexistente se acepta
// (el plato simplemente queda con disponibilidad cero).
type CreateFoodRequest struct {
	Name      string          `json:"name"`
	Recipe    []RecipeLineDTO `json:"recipe"`
	SellPrice decimal.Decimal `json:"sell_price"`
	ImageID   string          `json:"image_id,omitempty"`
}

// UpdateFoodRequest edición parcial de plato.
type UpdateFoodRequest struct {
	Name      *string          `json:"name,omitempty"`
	Recipe    []RecipeLineDTO  `json:"recipe,omitempty"`
	SellPrice *decimal.Decimal `json:"sell_price,omitempty"`
	ImageID   *string          `json:"image_id,omitempty"`
}

// FoodResponse plato con su disponibilidad derivada del stock de
// ingredientes. Available = -1 significa ilimitado (receta vacía).
type FoodResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Recipe    []RecipeLineDTO `json:"recipe"`
	SellPrice decimal.Decimal `json:"sell_price"`
	Available int64           `json:"available"`
	ImageID   string          `json:"image_id,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
