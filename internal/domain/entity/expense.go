package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense gasto operativo de la cantina (servicios, arriendo, nómina).
// No toca inventario; solo alimenta los reportes.
type Expense struct {
	ID          string
	Category    string
	Description string
	Amount      decimal.Decimal
	Date        time.Time
	CreatedAt   time.Time
}
