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

// WasteUseCase registro de mermas y consumibles: débito de stock al
// crear, crédito al borrar, ajuste por delta al editar.
type WasteUseCase struct {
	store *store.Store
}

// NewWasteUseCase construye el caso de uso.
func NewWasteUseCase(s *store.Store) *WasteUseCase {
	return &WasteUseCase{store: s}
}

// Create registra la merma debitando stock y fotografiando su costo.
func (uc *WasteUseCase) Create(ctx context.Context, in dto.CreateWasteRequest) (*dto.WasteResponse, error) {
	kind, err := parseStockKind(in.Kind)
	if err != nil {
		return nil, err
	}
	if in.Reason == "" {
		return nil, fmt.Errorf("merma sin motivo: %w", domain.ErrInvalidInput)
	}

	rec := entity.WasteRecord{
		ID:       uuid.New().String(),
		Kind:     kind,
		ItemID:   in.ItemID,
		Quantity: in.Quantity,
		Reason:   in.Reason,
		Date:     time.Now(),
	}
	if in.Date != nil {
		rec.Date = *in.Date
	}

	var resp *dto.WasteResponse
	err = uc.store.Commit(ctx, func(st *store.State) error {
		newSnap, completed, err := inventory.RecordWaste(rec, st.Inventory())
		if err != nil {
			return err
		}
		st.ApplyInventory(newSnap)
		st.Wastes = append(st.Wastes, completed)
		resp = toWasteResponse(completed)
		return nil
	}, store.ColProducts, store.ColIngredients, store.ColWastes)
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// Update edita una merma existente. El item referido no se puede
// cambiar; cantidad, motivo y fecha sí.
func (uc *WasteUseCase) Update(ctx context.Context, id string, in dto.UpdateWasteRequest) (*dto.WasteResponse, error) {
	var resp *dto.WasteResponse
	err := uc.store.Commit(ctx, func(st *store.State) error {
		for i := range st.Wastes {
			if st.Wastes[i].ID != id {
				continue
			}
			existing := st.Wastes[i]

			upd := existing
			if in.Kind != nil {
				upd.Kind = entity.ItemKind(*in.Kind)
			}
			if in.ItemID != nil {
				upd.ItemID = *in.ItemID
			}
			if in.Quantity != nil {
				upd.Quantity = *in.Quantity
			}
			if in.Reason != nil {
				upd.Reason = *in.Reason
			}
			if in.Date != nil {
				upd.Date = *in.Date
			}

			newSnap, out, err := inventory.EditWaste(existing, upd, st.Inventory())
			if err != nil {
				return err
			}
			st.ApplyInventory(newSnap)
			st.Wastes[i] = out
			resp = toWasteResponse(out)
			return nil
		}
		return fmt.Errorf("merma %s: %w", id, domain.ErrNotFound)
	}, store.ColProducts, store.ColIngredients, store.ColWastes)
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// Delete elimina la merma acreditando el stock de vuelta. Si el item ya
// no existe, el registro se borra igual y se reporta la advertencia.
func (uc *WasteUseCase) Delete(ctx context.Context, id string) (*dto.DeleteWasteResponse, error) {
	resp := &dto.DeleteWasteResponse{}
	err := uc.store.Commit(ctx, func(st *store.State) error {
		for i := range st.Wastes {
			if st.Wastes[i].ID != id {
				continue
			}
			newSnap, warning := inventory.DeleteWaste(st.Wastes[i], st.Inventory())
			st.ApplyInventory(newSnap)
			st.Wastes = append(st.Wastes[:i], st.Wastes[i+1:]...)
			if warning != nil {
				log.Warn().Str("waste_id", id).Str("item_id", warning.ItemID).Msg(warning.Detail)
				resp.Warning = &dto.WarningDTO{
					Code: warning.Code, ItemID: warning.ItemID, Message: warning.Detail,
				}
			}
			return nil
		}
		return fmt.Errorf("merma %s: %w", id, domain.ErrNotFound)
	}, store.ColProducts, store.ColIngredients, store.ColWastes)
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// List lista las mermas registradas, más reciente primero.
func (uc *WasteUseCase) List() []dto.WasteResponse {
	st := uc.store.GetSnapshot()
	out := make([]dto.WasteResponse, 0, len(st.Wastes))
	for i := len(st.Wastes) - 1; i >= 0; i-- {
		out = append(out, *toWasteResponse(st.Wastes[i]))
	}
	return out
}

func toWasteResponse(w entity.WasteRecord) *dto.WasteResponse {
	return &dto.WasteResponse{
		ID:       w.ID,
		Kind:     string(w.Kind),
		ItemID:   w.ItemID,
		ItemName: w.ItemName,
		Quantity: w.Quantity,
		Unit:     w.Unit,
		Cost:     w.Cost,
		Reason:   w.Reason,
		Date:     w.Date,
	}
}
