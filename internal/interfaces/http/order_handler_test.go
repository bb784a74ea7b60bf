package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/cantina-api/internal/application/store"
	"github.com/jhoicas/cantina-api/internal/application/usecase"
	"github.com/jhoicas/cantina-api/internal/domain/entity"
	apphttp "github.com/jhoicas/cantina-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// memPersister persistidor en memoria para montar la API completa.
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

// buildTestApp monta la aplicación Fiber con el router real y un
// almacén en memoria sembrado con un producto con stock 10.
func buildTestApp(t *testing.T) (*fiber.App, *store.Store) {
	t.Helper()
	s := store.New(&memPersister{})
	require.NoError(t, s.Load(context.Background()))
	require.NoError(t, s.Commit(context.Background(), func(st *store.State) error {
		st.Products = append(st.Products, entity.Product{
			ID: "p-agua", Name: "Agua", Stock: decimal.NewFromInt(10),
			AvgBuyPrice: decimal.NewFromInt(1000), SellPrice: decimal.NewFromInt(3000),
		})
		return nil
	}, store.ColProducts))

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		ProductUC:    usecase.NewProductUseCase(s),
		IngredientUC: usecase.NewIngredientUseCase(s),
		FoodUC:       usecase.NewFoodUseCase(s),
		OrderUC:      usecase.NewOrderUseCase(s),
		PurchaseUC:   usecase.NewPurchaseUseCase(s),
		WasteUC:      usecase.NewWasteUseCase(s),
		CustomerUC:   usecase.NewCustomerUseCase(s),
		ExpenseUC:    usecase.NewExpenseUseCase(s),
		ReportUC:     usecase.NewReportUseCase(s, nil),
	})
	return app, s
}

func postJSON(t *testing.T, app *fiber.App, path string, body any) *http.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Checkout
// ──────────────────────────────────────────────────────────────────────────────

func TestCheckoutEndpoint_VentaExitosa(t *testing.T) {
	app, s := buildTestApp(t)

	resp := postJSON(t, app, "/api/orders/checkout", fiber.Map{
		"payment": "efectivo",
		"lines": []fiber.Map{
			{"kind": "producto", "item_id": "p-agua", "quantity": 2},
		},
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "completada", body["status"])
	assert.Equal(t, "6000", body["total"], "total = 2 × 3000")

	st := s.GetSnapshot()
	assert.True(t, st.Products[0].Stock.Equal(decimal.NewFromInt(8)))
}

func TestCheckoutEndpoint_StockInsuficienteDa409(t *testing.T) {
	app, s := buildTestApp(t)

	resp := postJSON(t, app, "/api/orders/checkout", fiber.Map{
		"payment": "efectivo",
		"lines": []fiber.Map{
			{"kind": "producto", "item_id": "p-agua", "quantity": 11},
		},
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "INSUFFICIENT_STOCK", body["code"])

	st := s.GetSnapshot()
	assert.True(t, st.Products[0].Stock.Equal(decimal.NewFromInt(10)), "nada se descontó")
	assert.Empty(t, st.Orders)
}

func TestCanAddEndpoint_RespondeBooleano(t *testing.T) {
	app, _ := buildTestApp(t)

	resp := postJSON(t, app, "/api/orders/can-add", fiber.Map{
		"item": fiber.Map{"kind": "producto", "item_id": "p-agua"},
		"cart": []fiber.Map{
			{"kind": "producto", "item_id": "p-agua", "quantity": 10},
		},
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, false, body["can_add"])
}
