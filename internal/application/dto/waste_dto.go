package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateWasteRequest registro de merma/consumible contra un producto o
// ingrediente. Kind es "producto" o "ingrediente".
type CreateWasteRequest struct {
	Kind     string          `json:"kind"`
	ItemID   string          `json:"item_id"`
	Quantity decimal.Decimal `json:"quantity"`
	Reason   string          `json:"reason"`
	Date     *time.Time      `json:"date,omitempty"`
}

// UpdateWasteRequest edición de merma: solo cantidad, motivo y fecha.
// Si kind/item_id vienen y difieren del registro, la edición se rechaza.
type UpdateWasteRequest struct {
	Kind     *string          `json:"kind,omitempty"`
	ItemID   *string          `json:"item_id,omitempty"`
	Quantity *decimal.Decimal `json:"quantity,omitempty"`
	Reason   *string          `json:"reason,omitempty"`
	Date     *time.Time       `json:"date,omitempty"`
}

// WasteResponse registro de merma con su costo fotografiado.
type WasteResponse struct {
	ID       string          `json:"id"`
	Kind     string          `json:"kind"`
	ItemID   string          `json:"item_id"`
	ItemName string          `json:"item_name"`
	Quantity decimal.Decimal `json:"quantity"`
	Unit     string          `json:"unit"`
	Cost     decimal.Decimal `json:"cost"`
	Reason   string          `json:"reason"`
	Date     time.Time       `json:"date"`
}

// DeleteWasteResponse resultado de borrar una merma; la advertencia
// indica que el stock no pudo acreditarse (item ya inexistente).
type DeleteWasteResponse struct {
	Warning *WarningDTO `json:"warning,omitempty"`
}
