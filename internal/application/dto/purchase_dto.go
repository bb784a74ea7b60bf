package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseLineRequest línea de factura de compra: line_total es el
// total pagado por la línea, no el precio unitario. Kind es "producto"
// o "ingrediente".
type PurchaseLineRequest struct {
	Kind      string          `json:"kind"`
	ItemID    string          `json:"item_id"`
	Quantity  decimal.Decimal `json:"quantity"`
	LineTotal decimal.Decimal `json:"line_total"`
}

// RecordPurchaseRequest registro de una factura de compra recibida.
type RecordPurchaseRequest struct {
	Supplier      string                `json:"supplier,omitempty"`
	TransportCost decimal.Decimal       `json:"transport_cost"`
	Date          *time.Time            `json:"date,omitempty"`
	Lines         []PurchaseLineRequest `json:"lines"`
}

// UpdatePurchaseRequest edición de una compra archivada: solo
// proveedor y fecha. Tocar montos o líneas de una compra ya aplicada
// está prohibido.
type UpdatePurchaseRequest struct {
	Supplier      *string               `json:"supplier,omitempty"`
	Date          *time.Time            `json:"date,omitempty"`
	TransportCost *decimal.Decimal      `json:"transport_cost,omitempty"`
	Lines         []PurchaseLineRequest `json:"lines,omitempty"`
}

// PurchaseLineResponse línea efectiva con el costo unitario final
// (flete ya distribuido).
type PurchaseLineResponse struct {
	Kind          string          `json:"kind"`
	ItemID        string          `json:"item_id"`
	Quantity      decimal.Decimal `json:"quantity"`
	LineTotal     decimal.Decimal `json:"line_total"`
	FinalUnitCost decimal.Decimal `json:"final_unit_cost"`
}

// PurchaseResponse compra archivada.
type PurchaseResponse struct {
	ID            string                 `json:"id"`
	Supplier      string                 `json:"supplier,omitempty"`
	Lines         []PurchaseLineResponse `json:"lines"`
	TransportCost decimal.Decimal        `json:"transport_cost"`
	Date          time.Time              `json:"date"`
	CreatedAt     time.Time              `json:"created_at"`
}

// DeletePurchaseResponse resultado de revertir una compra: las
// advertencias no impiden la operación.
type DeletePurchaseResponse struct {
	Warnings []WarningDTO `json:"warnings,omitempty"`
}
