package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseLine línea de una factura de compra. LineTotal es el total
// pagado por la línea (no el precio unitario); FinalUnitCost se calcula
// al registrar la compra, con el flete ya distribuido.
type PurchaseLine struct {
	Kind          ItemKind // ItemProduct o ItemIngredient
	ItemID        string
	Quantity      decimal.Decimal
	LineTotal     decimal.Decimal
	FinalUnitCost decimal.Decimal
}

// Purchase factura de compra recibida. Aumenta stock y recalcula el
// costo promedio ponderado; TransportCost se reparte proporcional al
// total de cada línea. Los montos de una compra archivada no se editan.
type Purchase struct {
	ID            string
	Supplier      string
	Lines         []PurchaseLine
	TransportCost decimal.Decimal
	Date          time.Time
	CreatedAt     time.Time
}
