package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CheckoutLine línea del carrito al confirmar: kind es "producto" o
// "plato".
type CheckoutLine struct {
	Kind     string `json:"kind"`
	ItemID   string `json:"item_id"`
	Quantity int64  `json:"quantity"`
}

// CheckoutRequest confirmación de una venta en caja. Payment "credito"
// exige customer_id y carga el total a la cuenta del cliente.
type CheckoutRequest struct {
	Lines      []CheckoutLine `json:"lines"`
	CustomerID string         `json:"customer_id,omitempty"`
	Payment    string         `json:"payment"`
}

// CanAddRequest consulta de reserva: ¿cabe una unidad más de item dado
// el carrito pendiente? Bajar o quitar líneas nunca necesita consulta.
type CanAddRequest struct {
	Item CheckoutLine   `json:"item"`
	Cart []CheckoutLine `json:"cart"`
}

// OrderLineResponse línea desnormalizada de una orden confirmada.
type OrderLineResponse struct {
	Kind      string          `json:"kind"`
	ItemID    string          `json:"item_id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int64           `json:"quantity"`
}

// OrderResponse orden confirmada.
type OrderResponse struct {
	ID         string              `json:"id"`
	Lines      []OrderLineResponse `json:"lines"`
	Total      decimal.Decimal     `json:"total"`
	CustomerID string              `json:"customer_id,omitempty"`
	Payment    string              `json:"payment"`
	Status     string              `json:"status"`
	CreatedAt  time.Time           `json:"created_at"`
}
