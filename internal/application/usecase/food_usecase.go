package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/cantina-api/internal/application/dto"
	"github.com/jhoicas/cantina-api/internal/application/store"
	"github.com/jhoicas/cantina-api/internal/domain"
	"github.com/jhoicas/cantina-api/internal/domain/entity"
	"github.com/jhoicas/cantina-api/internal/domain/inventory"
)

// FoodUseCase catálogo de platos preparados. La disponibilidad nunca se
// guarda: se deriva del stock de ingredientes en cada lectura.
type FoodUseCase struct {
	store *store.Store
}

// NewFoodUseCase construye el caso de uso.
func NewFoodUseCase(s *store.Store) *FoodUseCase {
	return &FoodUseCase{store: s}
}

// buildRecipe valida y convierte la receta. Cantidades no positivas se
// rechazan; un ingrediente aún inexistente se acepta (el plato queda con
// disponibilidad cero hasta que exista).
func buildRecipe(lines []dto.RecipeLineDTO) ([]entity.RecipeLine, error) {
	recipe := make([]entity.RecipeLine, 0, len(lines))
	for _, l := range lines {
		if l.IngredientID == "" {
			return nil, fmt.Errorf("línea de receta sin ingrediente: %w", domain.ErrInvalidInput)
		}
		if !l.Quantity.IsPositive() {
			return nil, fmt.Errorf("cantidad de receta para %s: %w", l.IngredientID, domain.ErrInvalidInput)
		}
		recipe = append(recipe, entity.RecipeLine{IngredientID: l.IngredientID, Quantity: l.Quantity})
	}
	return recipe, nil
}

// Create da de alta un plato con su receta.
func (uc *FoodUseCase) Create(ctx context.Context, in dto.CreateFoodRequest) (*dto.FoodResponse, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("plato sin nombre: %w", domain.ErrInvalidInput)
	}
	if in.SellPrice.IsNegative() {
		return nil, fmt.Errorf("precio negativo: %w", domain.ErrInvalidInput)
	}
	recipe, err := buildRecipe(in.Recipe)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	f := entity.Food{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Recipe:    recipe,
		SellPrice: in.SellPrice,
		ImageID:   in.ImageID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	var resp *dto.FoodResponse
	err = uc.store.Commit(ctx, func(st *store.State) error {
		for i := range st.Foods {
			if st.Foods[i].Name == in.Name {
				return fmt.Errorf("plato %q: %w", in.Name, domain.ErrDuplicate)
			}
		}
		st.Foods = append(st.Foods, f)
		resp = toFoodResponse(f, st.Inventory())
		return nil
	}, store.ColFoods)
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// Update edición parcial; una receta nueva reemplaza la anterior
// completa.
func (uc *FoodUseCase) Update(ctx context.Context, id string, in dto.UpdateFoodRequest) (*dto.FoodResponse, error) {
	var newRecipe []entity.RecipeLine
	if in.Recipe != nil {
		r, err := buildRecipe(in.Recipe)
		if err != nil {
			return nil, err
		}
		newRecipe = r
	}

	var resp *dto.FoodResponse
	err := uc.store.Commit(ctx, func(st *store.State) error {
		for i := range st.Foods {
			if st.Foods[i].ID != id {
				continue
			}
			f := &st.Foods[i]
			if in.Name != nil {
				if *in.Name == "" {
					return fmt.Errorf("plato sin nombre: %w", domain.ErrInvalidInput)
				}
				f.Name = *in.Name
			}
			if in.Recipe != nil {
				f.Recipe = newRecipe
			}
			if in.SellPrice != nil {
				if in.SellPrice.IsNegative() {
					return fmt.Errorf("precio negativo: %w", domain.ErrInvalidInput)
				}
				f.SellPrice = *in.SellPrice
			}
			if in.ImageID != nil {
				f.ImageID = *in.ImageID
			}
			f.UpdatedAt = time.Now()
			resp = toFoodResponse(*f, st.Inventory())
			return nil
		}
		return fmt.Errorf("plato %s: %w", id, domain.ErrNotFound)
	}, store.ColFoods)
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// Delete elimina un plato del catálogo.
func (uc *FoodUseCase) Delete(ctx context.Context, id string) error {
	return uc.store.Commit(ctx, func(st *store.State) error {
		for i := range st.Foods {
			if st.Foods[i].ID == id {
				st.Foods = append(st.Foods[:i], st.Foods[i+1:]...)
				return nil
			}
		}
		return fmt.Errorf("plato %s: %w", id, domain.ErrNotFound)
	}, store.ColFoods)
}

// Get busca un plato por ID, con su disponibilidad calculada.
func (uc *FoodUseCase) Get(id string) (*dto.FoodResponse, error) {
	st := uc.store.GetSnapshot()
	f := st.Food(id)
	if f == nil {
		return nil, fmt.Errorf("plato %s: %w", id, domain.ErrNotFound)
	}
	return toFoodResponse(*f, st.Inventory()), nil
}

// List lista el catálogo con la disponibilidad de cada plato.
func (uc *FoodUseCase) List() []dto.FoodResponse {
	st := uc.store.GetSnapshot()
	snap := st.Inventory()
	out := make([]dto.FoodResponse, 0, len(st.Foods))
	for i := range st.Foods {
		out = append(out, *toFoodResponse(st.Foods[i], snap))
	}
	return out
}

func toFoodResponse(f entity.Food, snap inventory.Snapshot) *dto.FoodResponse {
	available := inventory.MaxServings(&f, snap)
	dtoAvail := available
	if available == inventory.Unlimited {
		dtoAvail = -1
	}
	resp := &dto.FoodResponse{
		ID:        f.ID,
		Name:      f.Name,
		SellPrice: f.SellPrice,
		Available: dtoAvail,
		ImageID:   f.ImageID,
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}
	for _, l := range f.Recipe {
		resp.Recipe = append(resp.Recipe, dto.RecipeLineDTO{IngredientID: l.IngredientID, Quantity: l.Quantity})
	}
	return resp
}
