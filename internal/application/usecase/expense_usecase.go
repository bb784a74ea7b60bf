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
)

// ExpenseUseCase gastos operativos. No tocan inventario; alimentan los
// reportes.
type ExpenseUseCase struct {
	store *store.Store
}

// NewExpenseUseCase construye el caso de uso.
func NewExpenseUseCase(s *store.Store) *ExpenseUseCase {
	return &ExpenseUseCase{store: s}
}

// Create registra un gasto.
func (uc *ExpenseUseCase) Create(ctx context.Context, in dto.CreateExpenseRequest) (*dto.ExpenseResponse, error) {
	if in.Category == "" {
		return nil, fmt.Errorf("gasto sin categoría: %w", domain.ErrInvalidInput)
	}
	if !in.Amount.IsPositive() {
		return nil, fmt.Errorf("monto de gasto no positivo: %w", domain.ErrInvalidInput)
	}

	now := time.Now()
	e := entity.Expense{
		ID:          uuid.New().String(),
		Category:    in.Category,
		Description: in.Description,
		Amount:      in.Amount,
		Date:        now,
		CreatedAt:   now,
	}
	if in.Date != nil {
		e.Date = *in.Date
	}
	err := uc.store.Commit(ctx, func(st *store.State) error {
		st.Expenses = append(st.Expenses, e)
		return nil
	}, store.ColExpenses)
	if err != nil {
		return nil, err
	}
	return toExpenseResponse(e), nil
}

// Delete elimina un gasto registrado.
func (uc *ExpenseUseCase) Delete(ctx context.Context, id string) error {
	return uc.store.Commit(ctx, func(st *store.State) error {
		for i := range st.Expenses {
			if st.Expenses[i].ID == id {
				st.Expenses = append(st.Expenses[:i], st.Expenses[i+1:]...)
				return nil
			}
		}
		return fmt.Errorf("gasto %s: %w", id, domain.ErrNotFound)
	}, store.ColExpenses)
}

// List lista los gastos, más reciente primero.
func (uc *ExpenseUseCase) List() []dto.ExpenseResponse {
	st := uc.store.GetSnapshot()
	out := make([]dto.ExpenseResponse, 0, len(st.Expenses))
	for i := len(st.Expenses) - 1; i >= 0; i-- {
		out = append(out, *toExpenseResponse(st.Expenses[i]))
	}
	return out
}

func toExpenseResponse(e entity.Expense) *dto.ExpenseResponse {
	return &dto.ExpenseResponse{
		ID:          e.ID,
		Category:    e.Category,
		Description: e.Description,
		Amount:      e.Amount,
		Date:        e.Date,
		CreatedAt:   e.CreatedAt,
	}
}
