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

// ProductUseCase catálogo de productos de reventa. Stock y costo
// promedio no se editan por acá: solo los mueven compras, ventas y
// mermas.
type ProductUseCase struct {
	store *store.Store
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(s *store.Store) *ProductUseCase {
	return &ProductUseCase{store: s}
}

// Create da de alta un producto con stock y costo promedio en cero.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("producto sin nombre: %w", domain.ErrInvalidInput)
	}
	if in.SellPrice.IsNegative() || in.MinStock.IsNegative() {
		return nil, fmt.Errorf("precio o mínimo negativo: %w", domain.ErrInvalidInput)
	}

	now := time.Now()
	p := entity.Product{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Stock:       decimal.Zero,
		AvgBuyPrice: decimal.Zero,
		SellPrice:   in.SellPrice,
		MinStock:    in.MinStock,
		ImageID:     in.ImageID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err := uc.store.Commit(ctx, func(st *store.State) error {
		for i := range st.Products {
			if st.Products[i].Name == in.Name {
				return fmt.Errorf("producto %q: %w", in.Name, domain.ErrDuplicate)
			}
		}
		st.Products = append(st.Products, p)
		return nil
	}, store.ColProducts)
	if err != nil {
		return nil, err
	}
	return toProductResponse(p), nil
}

// Update edición parcial de los campos de catálogo.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	var resp *dto.ProductResponse
	err := uc.store.Commit(ctx, func(st *store.State) error {
		for i := range st.Products {
			if st.Products[i].ID != id {
				continue
			}
			p := &st.Products[i]
			if in.Name != nil {
				if *in.Name == "" {
					return fmt.Errorf("producto sin nombre: %w", domain.ErrInvalidInput)
				}
				p.Name = *in.Name
			}
			if in.SellPrice != nil {
				if in.SellPrice.IsNegative() {
					return fmt.Errorf("precio negativo: %w", domain.ErrInvalidInput)
				}
				p.SellPrice = *in.SellPrice
			}
			if in.MinStock != nil {
				if in.MinStock.IsNegative() {
					return fmt.Errorf("mínimo negativo: %w", domain.ErrInvalidInput)
				}
				p.MinStock = *in.MinStock
			}
			if in.ImageID != nil {
				p.ImageID = *in.ImageID
			}
			p.UpdatedAt = time.Now()
			resp = toProductResponse(*p)
			return nil
		}
		return fmt.Errorf("producto %s: %w", id, domain.ErrNotFound)
	}, store.ColProducts)
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// Delete elimina un producto del catálogo. Las órdenes y compras
// archivadas que lo refieren quedan como huecos referenciales, que las
// reversas reportan como advertencia.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	return uc.store.Commit(ctx, func(st *store.State) error {
		for i := range st.Products {
			if st.Products[i].ID == id {
				st.Products = append(st.Products[:i], st.Products[i+1:]...)
				return nil
			}
		}
		return fmt.Errorf("producto %s: %w", id, domain.ErrNotFound)
	}, store.ColProducts)
}

// Get busca un producto por ID.
func (uc *ProductUseCase) Get(id string) (*dto.ProductResponse, error) {
	st := uc.store.GetSnapshot()
	for i := range st.Products {
		if st.Products[i].ID == id {
			return toProductResponse(st.Products[i]), nil
		}
	}
	return nil, fmt.Errorf("producto %s: %w", id, domain.ErrNotFound)
}

// List lista el catálogo completo.
func (uc *ProductUseCase) List() []dto.ProductResponse {
	st := uc.store.GetSnapshot()
	out := make([]dto.ProductResponse, 0, len(st.Products))
	for i := range st.Products {
		out = append(out, *toProductResponse(st.Products[i]))
	}
	return out
}

func toProductResponse(p entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Stock:       p.Stock,
		AvgBuyPrice: p.AvgBuyPrice,
		SellPrice:   p.SellPrice,
		MinStock:    p.MinStock,
		ImageID:     p.ImageID,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
