package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest alta de producto. Stock y costo promedio nacen
// en 0 y se mueven solo vía compras/ventas/mermas.
type CreateProductRequest struct {
	Name      string          `json:"name"`
	SellPrice decimal.Decimal `json:"sell_price"`
	MinStock  decimal.Decimal `json:"min_stock"`
	ImageID   string          `json:"image_id,omitempty"`
}

// UpdateProductRequest edición parcial. No permite tocar Stock ni
// AvgBuyPrice directamente.
type UpdateProductRequest struct {
	Name      *string          `json:"name,omitempty"`
	SellPrice *decimal.Decimal `json:"sell_price,omitempty"`
	MinStock  *decimal.Decimal `json:"min_stock,omitempty"`
	ImageID   *string          `json:"image_id,omitempty"`
}

// ProductResponse producto para la capa de presentación.
type ProductResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Stock       decimal.Decimal `json:"stock"`
	AvgBuyPrice decimal.Decimal `json:"avg_buy_price"`
	SellPrice   decimal.Decimal `json:"sell_price"`
	MinStock    decimal.Decimal `json:"min_stock"`
	ImageID     string          `json:"image_id,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
