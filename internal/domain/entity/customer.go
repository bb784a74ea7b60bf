package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Customer cliente con cuenta de crédito ("fiado"). Balance es la deuda
// pendiente: sube con órdenes a crédito y baja con abonos.
type Customer struct {
	ID        string
	Name      string
	Phone     string
	Balance   decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}
