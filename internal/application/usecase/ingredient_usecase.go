package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/cantina-api/internal/application/dto"
	"github.com/jhoicas/cantina-api/internal/application/store"
	"github.com/jhoicas/cantina-api/internal/domain"
	"github.com/jhoicas/cantina-api/internal/domain/entity"
)

// IngredientUseCase catálogo de materias primas. Igual que con
// productos, el stock solo lo mueven compras, ventas y mermas.
type IngredientUseCase struct {
	store *store.Store
}

// NewIngredientUseCase construye el caso de uso.
func NewIngredientUseCase(s *store.Store) *IngredientUseCase {
	return &IngredientUseCase{store: s}
}

func validUnit(u string) bool {
	switch u {
	case entity.UnitGram, entity.UnitMilli, entity.UnitCount:
		return true
	}
	return false
}

// Create da de alta un ingrediente con stock en cero.
func (uc *IngredientUseCase) Create(ctx context.Context, in dto.CreateIngredientRequest) (*dto.IngredientResponse, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("ingrediente sin nombre: %w", domain.ErrInvalidInput)
	}
	if !validUnit(in.Unit) {
		return nil, fmt.Errorf("unidad %q: %w", in.Unit, domain.ErrInvalidInput)
	}
	if in.MinStock.IsNegative() {
		return nil, fmt.Errorf("mínimo negativo: %w", domain.ErrInvalidInput)
	}

	now := time.Now()
	ing := entity.Ingredient{
		ID:          uuid.New().String(),
		Name:        in.Name,
		VariantName: in.VariantName,
		Unit:        in.Unit,
		Stock:       decimal.Zero,
		AvgBuyPrice: decimal.Zero,
		MinStock:    in.MinStock,
		ImageID:     in.ImageID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err := uc.store.Commit(ctx, func(st *store.State) error {
		for i := range st.Ingredients {
			if st.Ingredients[i].Name == in.Name && st.Ingredients[i].VariantName == in.VariantName {
				return fmt.Errorf("ingrediente %q: %w", in.Name, domain.ErrDuplicate)
			}
		}
		st.Ingredients = append(st.Ingredients, ing)
		return nil
	}, store.ColIngredients)
	if err != nil {
		return nil, err
	}
	return toIngredientResponse(ing), nil
}

// Update edición parcial de los campos de catálogo.
func (uc *IngredientUseCase) Update(ctx context.Context, id string, in dto.UpdateIngredientRequest) (*dto.IngredientResponse, error) {
	var resp *dto.IngredientResponse
	err := uc.store.Commit(ctx, func(st *store.State) error {
		for i := range st.Ingredients {
			if st.Ingredients[i].ID != id {
				continue
			}
			ing := &st.Ingredients[i]
			if in.Name != nil {
				if *in.Name == "" {
					return fmt.Errorf("ingrediente sin nombre: %w", domain.ErrInvalidInput)
				}
				ing.Name = *in.Name
			}
			if in.VariantName != nil {
				ing.VariantName = *in.VariantName
			}
			if in.Unit != nil {
				if !validUnit(*in.Unit) {
					return fmt.Errorf("unidad %q: %w", *in.Unit, domain.ErrInvalidInput)
				}
				ing.Unit = *in.Unit
			}
			if in.MinStock != nil {
				if in.MinStock.IsNegative() {
					return fmt.Errorf("mínimo negativo: %w", domain.ErrInvalidInput)
				}
				ing.MinStock = *in.MinStock
			}
			if in.ImageID != nil {
				ing.ImageID = *in.ImageID
			}
			ing.UpdatedAt = time.Now()
			resp = toIngredientResponse(*ing)
			return nil
		}
		return fmt.Errorf("ingrediente %s: %w", id, domain.ErrNotFound)
	}, store.ColIngredients)
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// Delete elimina un ingrediente. Las recetas que lo refieren no se
// tocan: el plato queda con disponibilidad cero hasta corregir la
// receta, y las reversas que lo mencionen reportarán advertencia.
func (uc *IngredientUseCase) Delete(ctx context.Context, id string) error {
	return uc.store.Commit(ctx, func(st *store.State) error {
		for i := range st.Ingredients {
			if st.Ingredients[i].ID == id {
				st.Ingredients = append(st.Ingredients[:i], st.Ingredients[i+1:]...)
				return nil
			}
		}
		return fmt.Errorf("ingrediente %s: %w", id, domain.ErrNotFound)
	}, store.ColIngredients)
}

// Get busca un ingrediente por ID.
func (uc *IngredientUseCase) Get(id string) (*dto.IngredientResponse, error) {
	st := uc.store.GetSnapshot()
	for i := range st.Ingredients {
		if st.Ingredients[i].ID == id {
			return toIngredientResponse(st.Ingredients[i]), nil
		}
	}
	return nil, fmt.Errorf("ingrediente %s: %w", id, domain.ErrNotFound)
}

// List lista el catálogo completo.
func (uc *IngredientUseCase) List() []dto.IngredientResponse {
	st := uc.store.GetSnapshot()
	out := make([]dto.IngredientResponse, 0, len(st.Ingredients))
	for i := range st.Ingredients {
		out = append(out, *toIngredientResponse(st.Ingredients[i]))
	}
	return out
}

func toIngredientResponse(ing entity.Ingredient) *dto.IngredientResponse {
	return &dto.IngredientResponse{
		ID:          ing.ID,
		Name:        ing.Name,
		VariantName: ing.VariantName,
		Unit:        ing.Unit,
		Stock:       ing.Stock,
		AvgBuyPrice: ing.AvgBuyPrice,
		MinStock:    ing.MinStock,
		ImageID:     ing.ImageID,
		CreatedAt:   ing.CreatedAt,
		UpdatedAt:   ing.UpdatedAt,
	}
}
