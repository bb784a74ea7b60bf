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
	"github.com/jhoicas/cantina-api/internal/domain/inventory"
)

// OrderUseCase caso de uso de caja: chequeo de reserva del carrito y
// confirmación (checkout) atómica contra el libro de stock.
type OrderUseCase struct {
	store *store.Store
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(s *store.Store) *OrderUseCase {
	return &OrderUseCase{store: s}
}

// buildCart resuelve las líneas de la petición contra el estado y arma
// el carrito tipado que consume el libro.
func buildCart(lines []dto.CheckoutLine, st *store.State) ([]inventory.OrderItem, error) {
	snap := st.Inventory()
	cart := make([]inventory.OrderItem, 0, len(lines))
	for _, l := range lines {
		if l.Quantity <= 0 {
			return nil, fmt.Errorf("cantidad de %s: %w", l.ItemID, domain.ErrInvalidInput)
		}
		kind, err := parseSaleKind(l.Kind)
		if err != nil {
			return nil, err
		}
		switch kind {
		case entity.ItemProduct:
			p := snap.Product(l.ItemID)
			if p == nil {
				return nil, fmt.Errorf("producto %s: %w", l.ItemID, domain.ErrNotFound)
			}
			cart = append(cart, inventory.NewProductItem(p, l.Quantity))
		case entity.ItemFood:
			f := st.Food(l.ItemID)
			if f == nil {
				return nil, fmt.Errorf("plato %s: %w", l.ItemID, domain.ErrNotFound)
			}
			cart = append(cart, inventory.NewFoodItem(f, l.Quantity))
		}
	}
	return cart, nil
}

// CanAddOne responde si cabe una unidad más del item dado el carrito
// pendiente, con la misma regla de expansión que usará el checkout.
func (uc *OrderUseCase) CanAddOne(in dto.CanAddRequest) (bool, error) {
	st := uc.store.GetSnapshot()
	cart, err := buildCart(in.Cart, st)
	if err != nil {
		return false, err
	}
	in.Item.Quantity = 1
	item, err := buildCart([]dto.CheckoutLine{in.Item}, st)
	if err != nil {
		return false, err
	}
	return inventory.CanAddOne(item[0], st.Inventory(), cart), nil
}

// Checkout confirma la venta: despacha el carrito (todo o nada),
// archiva la orden y, si el pago es a crédito, carga el total a la
// cuenta del cliente dentro del mismo commit.
func (uc *OrderUseCase) Checkout(ctx context.Context, in dto.CheckoutRequest) (*dto.OrderResponse, error) {
	if len(in.Lines) == 0 {
		return nil, fmt.Errorf("carrito vacío: %w", domain.ErrInvalidInput)
	}
	if in.Payment == "" {
		in.Payment = entity.PaymentCash
	}
	if in.Payment != entity.PaymentCash && in.Payment != entity.PaymentCredit {
		return nil, fmt.Errorf("método de pago %q: %w", in.Payment, domain.ErrInvalidInput)
	}
	if in.Payment == entity.PaymentCredit && in.CustomerID == "" {
		return nil, fmt.Errorf("venta a crédito sin cliente: %w", domain.ErrInvalidInput)
	}

	var resp *dto.OrderResponse
	err := uc.store.Commit(ctx, func(st *store.State) error {
		cart, err := buildCart(in.Lines, st)
		if err != nil {
			return err
		}
		newSnap, err := inventory.Fulfill(cart, st.Inventory())
		if err != nil {
			return err
		}
		st.ApplyInventory(newSnap)

		now := time.Now()
		order := entity.Order{
			ID:         uuid.New().String(),
			Total:      decimal.Zero,
			CustomerID: in.CustomerID,
			Payment:    in.Payment,
			Status:     "completada",
			CreatedAt:  now,
		}
		for _, item := range cart {
			line := entity.OrderLine{
				Kind:      item.Kind,
				ItemID:    item.ItemID(),
				Name:      item.Name(),
				UnitPrice: item.UnitPrice(),
				Quantity:  item.Quantity,
			}
			order.Lines = append(order.Lines, line)
			order.Total = order.Total.Add(line.UnitPrice.Mul(decimal.NewFromInt(line.Quantity)))
		}
		st.Orders = append(st.Orders, order)

		if in.Payment == entity.PaymentCredit {
			c := st.Customer(in.CustomerID)
			if c == nil {
				return fmt.Errorf("cliente %s: %w", in.CustomerID, domain.ErrNotFound)
			}
			c.Balance = c.Balance.Add(order.Total)
			c.UpdatedAt = now
		}

		resp = toOrderResponse(order)
		return nil
	}, store.ColProducts, store.ColIngredients, store.ColOrders, store.ColCustomers)
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// List lista las órdenes archivadas, más reciente primero.
func (uc *OrderUseCase) List() []dto.OrderResponse {
	st := uc.store.GetSnapshot()
	out := make([]dto.OrderResponse, 0, len(st.Orders))
	for i := len(st.Orders) - 1; i >= 0; i-- {
		out = append(out, *toOrderResponse(st.Orders[i]))
	}
	return out
}

func toOrderResponse(o entity.Order) *dto.OrderResponse {
	resp := &dto.OrderResponse{
		ID:         o.ID,
		Total:      o.Total,
		CustomerID: o.CustomerID,
		Payment:    o.Payment,
		Status:     o.Status,
		CreatedAt:  o.CreatedAt,
	}
	for _, l := range o.Lines {
		resp.Lines = append(resp.Lines, dto.OrderLineResponse{
			Kind:      string(l.Kind),
			ItemID:    l.ItemID,
			Name:      l.Name,
			UnitPrice: l.UnitPrice,
			Quantity:  l.Quantity,
		})
	}
	return resp
}
