package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ItemKind discrimina el tipo de item referido por una línea de orden,
// compra o merma. Variante etiquetada en lugar de duck-typing
// estructural: el switch sobre Kind es exhaustivo en compilación.
type ItemKind string

const (
	ItemProduct    ItemKind = "producto"
	ItemIngredient ItemKind = "ingrediente"
	ItemFood       ItemKind = "plato"
)

// Métodos de pago aceptados en caja.
const (
	PaymentCash   = "efectivo"
	PaymentCredit = "credito" // se carga a la cuenta del cliente
)

// OrderLine línea de una orden ya confirmada. Se guarda desnormalizada
// (nombre y precio al momento de la venta) porque la orden es inmutable.
type OrderLine struct {
	Kind      ItemKind // ItemProduct o ItemFood
	ItemID    string
	Name      string
	UnitPrice decimal.Decimal
	Quantity  int64
}

// Order orden confirmada en caja. Inmutable después del checkout.
type Order struct {
	ID         string
	Lines      []OrderLine
	Total      decimal.Decimal
	CustomerID string // vacío = venta de mostrador
	Payment    string
	Status     string
	CreatedAt  time.Time
}
