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

// CustomerUseCase cuentas de crédito ("fiado"): alta de clientes y
// abonos contra la deuda.
type CustomerUseCase struct {
	store *store.Store
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(s *store.Store) *CustomerUseCase {
	return &CustomerUseCase{store: s}
}

// Create da de alta un cliente sin deuda.
func (uc *CustomerUseCase) Create(ctx context.Context, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("cliente sin nombre: %w", domain.ErrInvalidInput)
	}

	now := time.Now()
	c := entity.Customer{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Phone:     in.Phone,
		Balance:   decimal.Zero,
		CreatedAt: now,
		UpdatedAt: now,
	}
	err := uc.store.Commit(ctx, func(st *store.State) error {
		st.Customers = append(st.Customers, c)
		return nil
	}, store.ColCustomers)
	if err != nil {
		return nil, err
	}
	return toCustomerResponse(c), nil
}

// RegisterPayment abona a la deuda del cliente. El abono debe ser
// positivo; puede dejar el balance en negativo (saldo a favor).
func (uc *CustomerUseCase) RegisterPayment(ctx context.Context, id string, in dto.PaymentRequest) (*dto.CustomerResponse, error) {
	if !in.Amount.IsPositive() {
		return nil, fmt.Errorf("abono no positivo: %w", domain.ErrInvalidInput)
	}

	var resp *dto.CustomerResponse
	err := uc.store.Commit(ctx, func(st *store.State) error {
		c := st.Customer(id)
		if c == nil {
			return fmt.Errorf("cliente %s: %w", id, domain.ErrNotFound)
		}
		c.Balance = c.Balance.Sub(in.Amount)
		c.UpdatedAt = time.Now()
		resp = toCustomerResponse(*c)
		return nil
	}, store.ColCustomers)
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// Get busca un cliente por ID.
func (uc *CustomerUseCase) Get(id string) (*dto.CustomerResponse, error) {
	st := uc.store.GetSnapshot()
	c := st.Customer(id)
	if c == nil {
		return nil, fmt.Errorf("cliente %s: %w", id, domain.ErrNotFound)
	}
	return toCustomerResponse(*c), nil
}

// List lista los clientes registrados.
func (uc *CustomerUseCase) List() []dto.CustomerResponse {
	st := uc.store.GetSnapshot()
	out := make([]dto.CustomerResponse, 0, len(st.Customers))
	for i := range st.Customers {
		out = append(out, *toCustomerResponse(st.Customers[i]))
	}
	return out
}

func toCustomerResponse(c entity.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:        c.ID,
		Name:      c.Name,
		Phone:     c.Phone,
		Balance:   c.Balance,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
