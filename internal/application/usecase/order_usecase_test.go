package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/cantina-api/internal/application/dto"
	"github.com/jhoicas/cantina-api/internal/application/store"
	"github.com/jhoicas/cantina-api/internal/application/usecase"
	"github.com/jhoicas/cantina-api/internal/domain"
	"github.com/jhoicas/cantina-api/internal/domain/entity"
)

// memPersister persistidor en memoria para los tests de casos de uso.
type memPersister struct {
	saved *store.State
}

func (m *memPersister) Load(_ context.Context) (*store.State, error) {
	return m.saved, nil
}

func (m *memPersister) Replace(_ context.Context, st *store.State, _ ...store.Collection) error {
	m.saved = st.Clone()
	return nil
}

func dec(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

// newSeededStore arma un almacén con el catálogo mínimo de los tests:
// un producto con stock, dos ingredientes, un plato con receta y un
// cliente de crédito sin deuda.
func newSeededStore(t *testing.T) *store.Store {
	t.Helper()
	s := store.New(&memPersister{})
	require.NoError(t, s.Load(context.Background()))
	require.NoError(t, s.Commit(context.Background(), func(st *store.State) error {
		st.Products = append(st.Products, entity.Product{
			ID: "p-gatorade", Name: "Gatorade", Stock: dec(10),
			AvgBuyPrice: dec(3000), SellPrice: dec(6000),
		})
		st.Ingredients = append(st.Ingredients,
			entity.Ingredient{ID: "i-pollo", Name: "Pollo", Unit: entity.UnitGram, Stock: dec(5), AvgBuyPrice: dec(18)},
			entity.Ingredient{ID: "i-arroz", Name: "Arroz", Unit: entity.UnitGram, Stock: dec(10), AvgBuyPrice: dec(5)},
		)
		st.Foods = append(st.Foods, entity.Food{
			ID: "f-bowl", Name: "Bowl de pollo", SellPrice: dec(18000),
			Recipe: []entity.RecipeLine{
				{IngredientID: "i-pollo", Quantity: dec(2)},
				{IngredientID: "i-arroz", Quantity: dec(1)},
			},
		})
		st.Customers = append(st.Customers, entity.Customer{
			ID: "c-carlos", Name: "Carlos", Balance: decimal.Zero,
		})
		return nil
	}, store.Collections...))
	return s
}

// ──────────────────────────────────────────────────────────────────────────────
// Checkout
// ──────────────────────────────────────────────────────────────────────────────

func TestCheckout_DescuentaYArchivaLaOrden(t *testing.T) {
	s := newSeededStore(t)
	uc := usecase.NewOrderUseCase(s)

	out, err := uc.Checkout(context.Background(), dto.CheckoutRequest{
		Lines:   []dto.CheckoutLine{{Kind: "producto", ItemID: "p-gatorade", Quantity: 2}},
		Payment: entity.PaymentCash,
	})
	require.NoError(t, err)
	assert.True(t, out.Total.Equal(dec(12000)), "total = 2 × 6000")
	assert.Equal(t, "completada", out.Status)

	st := s.GetSnapshot()
	assert.True(t, st.Products[0].Stock.Equal(dec(8)))
	require.Len(t, st.Orders, 1)
	assert.Equal(t, "Gatorade", st.Orders[0].Lines[0].Name, "la línea queda desnormalizada")
}

func TestCheckout_PlatoExpandeLaReceta(t *testing.T) {
	s := newSeededStore(t)
	uc := usecase.NewOrderUseCase(s)

	_, err := uc.Checkout(context.Background(), dto.CheckoutRequest{
		Lines:   []dto.CheckoutLine{{Kind: "plato", ItemID: "f-bowl", Quantity: 1}},
		Payment: entity.PaymentCash,
	})
	require.NoError(t, err)

	st := s.GetSnapshot()
	assert.True(t, st.Ingredients[0].Stock.Equal(dec(3)), "pollo 5−2")
	assert.True(t, st.Ingredients[1].Stock.Equal(dec(9)), "arroz 10−1")
	assert.True(t, st.Products[0].Stock.Equal(dec(10)), "el producto no se toca")
}

func TestCheckout_CreditoCargaAlCliente(t *testing.T) {
	s := newSeededStore(t)
	uc := usecase.NewOrderUseCase(s)

	out, err := uc.Checkout(context.Background(), dto.CheckoutRequest{
		Lines:      []dto.CheckoutLine{{Kind: "plato", ItemID: "f-bowl", Quantity: 1}},
		CustomerID: "c-carlos",
		Payment:    entity.PaymentCredit,
	})
	require.NoError(t, err)

	st := s.GetSnapshot()
	assert.True(t, st.Customers[0].Balance.Equal(out.Total),
		"la deuda sube por el total de la orden en el mismo commit")
}

func TestCheckout_CreditoSinClienteSeRechaza(t *testing.T) {
	s := newSeededStore(t)
	uc := usecase.NewOrderUseCase(s)

	_, err := uc.Checkout(context.Background(), dto.CheckoutRequest{
		Lines:   []dto.CheckoutLine{{Kind: "producto", ItemID: "p-gatorade", Quantity: 1}},
		Payment: entity.PaymentCredit,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCheckout_InsuficienteNoMutaNada(t *testing.T) {
	s := newSeededStore(t)
	uc := usecase.NewOrderUseCase(s)

	_, err := uc.Checkout(context.Background(), dto.CheckoutRequest{
		Lines:   []dto.CheckoutLine{{Kind: "producto", ItemID: "p-gatorade", Quantity: 11}},
		Payment: entity.PaymentCash,
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	st := s.GetSnapshot()
	assert.True(t, st.Products[0].Stock.Equal(dec(10)), "todo o nada: el stock queda intacto")
	assert.Empty(t, st.Orders)
}

func TestCheckout_ItemInexistente(t *testing.T) {
	s := newSeededStore(t)
	uc := usecase.NewOrderUseCase(s)

	_, err := uc.Checkout(context.Background(), dto.CheckoutRequest{
		Lines:   []dto.CheckoutLine{{Kind: "producto", ItemID: "no-existe", Quantity: 1}},
		Payment: entity.PaymentCash,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// CanAddOne
// ──────────────────────────────────────────────────────────────────────────────

func TestCanAddOne_RespetaElCarritoPendiente(t *testing.T) {
	s := newSeededStore(t)
	uc := usecase.NewOrderUseCase(s)

	// Sin carrito cabe una unidad más.
	ok, err := uc.CanAddOne(dto.CanAddRequest{
		Item: dto.CheckoutLine{Kind: "producto", ItemID: "p-gatorade"},
	})
	require.NoError(t, err)
	assert.True(t, ok)

	// Con el stock completo ya reservado en el carrito, no.
	ok, err = uc.CanAddOne(dto.CanAddRequest{
		Item: dto.CheckoutLine{Kind: "producto", ItemID: "p-gatorade"},
		Cart: []dto.CheckoutLine{{Kind: "producto", ItemID: "p-gatorade", Quantity: 10}},
	})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCanAddOne_PlatoCompiteConIngredientes(t *testing.T) {
	s := newSeededStore(t)
	uc := usecase.NewOrderUseCase(s)

	// Pollo alcanza para 2 bowls (stock 5, receta 2 por unidad).
	ok, err := uc.CanAddOne(dto.CanAddRequest{
		Item: dto.CheckoutLine{Kind: "plato", ItemID: "f-bowl"},
		Cart: []dto.CheckoutLine{{Kind: "plato", ItemID: "f-bowl", Quantity: 2}},
	})
	require.NoError(t, err)
	assert.False(t, ok, "el tercer bowl no cabe")
}
