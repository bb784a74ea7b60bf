package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Motivos típicos de baja de stock fuera de venta.
const (
	WasteReasonExpired  = "vencido"
	WasteReasonDamaged  = "dañado"
	WasteReasonConsumed = "consumo interno"
)

// WasteRecord registro de merma o consumible: débito de stock contra un
// producto o ingrediente, reversible al borrarlo (crédito). Cost es una
// foto de quantity × costo promedio al momento del registro y no se
// recalcula si el promedio cambia después.
type WasteRecord struct {
	ID       string
	Kind     ItemKind // ItemProduct o ItemIngredient
	ItemID   string
	ItemName string
	Quantity decimal.Decimal
	Unit     string
	Cost     decimal.Decimal
	Reason   string
	Date     time.Time
}
