package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateIngredientRequest alta de ingrediente. Unit es la unidad base
// en la que se denomina el stock (g, ml, unidad).
type CreateIngredientRequest struct {
	Name        string          `json:"name"`
	VariantName string          `json:"variant_name,omitempty"`
	Unit        string          `json:"unit"`
	MinStock    decimal.Decimal `json:"min_stock"`
	ImageID     string          `json:"image_id,omitempty"`
}

// UpdateIngredientRequest edición parcial (sin Stock ni AvgBuyPrice).
type UpdateIngredientRequest struct {
	Name        *string          `json:"name,omitempty"`
	VariantName *string          `json:"variant_name,omitempty"`
	Unit        *string          `json:"unit,omitempty"`
	MinStock    *decimal.Decimal `json:"min_stock,omitempty"`
	ImageID     *string          `json:"image_id,omitempty"`
}

// IngredientResponse ingrediente para la capa de presentación.
type IngredientResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	VariantName string          `json:"variant_name,omitempty"`
	Unit        string          `json:"unit"`
	Stock       decimal.Decimal `json:"stock"`
	AvgBuyPrice decimal.Decimal `json:"avg_buy_price"`
	MinStock    decimal.Decimal `json:"min_stock"`
	ImageID     string          `json:"image_id,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
