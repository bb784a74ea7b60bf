package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/cantina-api/internal/application/dto"
	"github.com/jhoicas/cantina-api/internal/application/store"
	"github.com/jhoicas/cantina-api/internal/domain"
	"github.com/jhoicas/cantina-api/internal/domain/entity"
	"github.com/jhoicas/cantina-api/internal/domain/inventory"
)

// PurchaseUseCase registro, edición limitada y reversa de facturas de
// compra. Los montos de una compra archivada son intocables.
type PurchaseUseCase struct {
	store *store.Store
}

// NewPurchaseUseCase construye el caso de uso.
func NewPurchaseUseCase(s *store.Store) *PurchaseUseCase {
	return &PurchaseUseCase{store: s}
}

// Record aplica la factura al inventario y la archiva con sus líneas
// efectivas (las inválidas quedan excluidas del registro).
func (uc *PurchaseUseCase) Record(ctx context.Context, in dto.RecordPurchaseRequest) (*dto.PurchaseResponse, error) {
	if len(in.Lines) == 0 {
		return nil, fmt.Errorf("compra sin líneas: %w", domain.ErrInvalidInput)
	}
	if in.TransportCost.IsNegative() {
		return nil, fmt.Errorf("flete negativo: %w", domain.ErrInvalidInput)
	}

	now := time.Now()
	purchase := entity.Purchase{
		ID:            uuid.New().String(),
		Supplier:      in.Supplier,
		TransportCost: in.TransportCost,
		Date:          now,
		CreatedAt:     now,
	}
	if in.Date != nil {
		purchase.Date = *in.Date
	}
	for _, l := range in.Lines {
		kind, err := parseStockKind(l.Kind)
		if err != nil {
			return nil, err
		}
		purchase.Lines = append(purchase.Lines, entity.PurchaseLine{
			Kind:      kind,
			ItemID:    l.ItemID,
			Quantity:  l.Quantity,
			LineTotal: l.LineTotal,
		})
	}

	var resp *dto.PurchaseResponse
	err := uc.store.Commit(ctx, func(st *store.State) error {
		newSnap, effective, err := inventory.ApplyPurchase(purchase, st.Inventory())
		if err != nil {
			return err
		}
		if len(effective) < len(purchase.Lines) {
			log.Warn().
				Str("purchase_id", purchase.ID).
				Int("excluded", len(purchase.Lines)-len(effective)).
				Msg("compra registrada con líneas inválidas excluidas")
		}
		st.ApplyInventory(newSnap)
		purchase.Lines = effective
		st.Purchases = append(st.Purchases, purchase)
		resp = toPurchaseResponse(purchase)
		return nil
	}, store.ColProducts, store.ColIngredients, store.ColPurchases)
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// Update edita una compra archivada: solo proveedor y fecha. Cualquier
// intento de tocar flete o líneas se rechaza como edición ilegal.
func (uc *PurchaseUseCase) Update(ctx context.Context, id string, in dto.UpdatePurchaseRequest) (*dto.PurchaseResponse, error) {
	if in.TransportCost != nil || in.Lines != nil {
		return nil, fmt.Errorf("los montos de una compra archivada: %w", domain.ErrIllegalEdit)
	}

	var resp *dto.PurchaseResponse
	err := uc.store.Commit(ctx, func(st *store.State) error {
		for i := range st.Purchases {
			if st.Purchases[i].ID != id {
				continue
			}
			if in.Supplier != nil {
				st.Purchases[i].Supplier = *in.Supplier
			}
			if in.Date != nil {
				st.Purchases[i].Date = *in.Date
			}
			resp = toPurchaseResponse(st.Purchases[i])
			return nil
		}
		return fmt.Errorf("compra %s: %w", id, domain.ErrNotFound)
	}, store.ColPurchases)
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// Delete revierte la compra (stock con piso en cero, promedio intacto)
// y la elimina del archivo. Los items ya inexistentes generan
// advertencias que no impiden la operación.
func (uc *PurchaseUseCase) Delete(ctx context.Context, id string) (*dto.DeletePurchaseResponse, error) {
	resp := &dto.DeletePurchaseResponse{}
	err := uc.store.Commit(ctx, func(st *store.State) error {
		for i := range st.Purchases {
			if st.Purchases[i].ID != id {
				continue
			}
			newSnap, warnings := inventory.ReversePurchase(st.Purchases[i], st.Inventory())
			st.ApplyInventory(newSnap)
			st.Purchases = append(st.Purchases[:i], st.Purchases[i+1:]...)
			for _, w := range warnings {
				log.Warn().Str("purchase_id", id).Str("item_id", w.ItemID).Msg(w.Detail)
				resp.Warnings = append(resp.Warnings, dto.WarningDTO{
					Code: w.Code, ItemID: w.ItemID, Message: w.Detail,
				})
			}
			return nil
		}
		return fmt.Errorf("compra %s: %w", id, domain.ErrNotFound)
	}, store.ColProducts, store.ColIngredients, store.ColPurchases)
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// List lista las compras archivadas, más reciente primero.
func (uc *PurchaseUseCase) List() []dto.PurchaseResponse {
	st := uc.store.GetSnapshot()
	out := make([]dto.PurchaseResponse, 0, len(st.Purchases))
	for i := len(st.Purchases) - 1; i >= 0; i-- {
		out = append(out, *toPurchaseResponse(st.Purchases[i]))
	}
	return out
}

func toPurchaseResponse(p entity.Purchase) *dto.PurchaseResponse {
	resp := &dto.PurchaseResponse{
		ID:            p.ID,
		Supplier:      p.Supplier,
		TransportCost: p.TransportCost,
		Date:          p.Date,
		CreatedAt:     p.CreatedAt,
	}
	for _, l := range p.Lines {
		resp.Lines = append(resp.Lines, dto.PurchaseLineResponse{
			Kind:          string(l.Kind),
			ItemID:        l.ItemID,
			Quantity:      l.Quantity,
			LineTotal:     l.LineTotal,
			FinalUnitCost: l.FinalUnitCost,
		})
	}
	return resp
}
