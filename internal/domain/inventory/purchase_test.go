package inventory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/cantina-api/internal/domain"
	"github.com/jhoicas/cantina-api/internal/domain/entity"
	"github.com/jhoicas/cantina-api/internal/domain/inventory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Costo promedio ponderado
// ──────────────────────────────────────────────────────────────────────────────

// Vector de referencia del libro de costos: stock 10 a promedio 100,
// entran 10 unidades por 1200 sin flete ⇒ costo unitario 120 y nuevo
// promedio (10×100 + 10×120) / 20 = 110.
func TestApplyPurchase_VectorPromedioPonderado(t *testing.T) {
	snap := inventory.Snapshot{Products: []entity.Product{
		{ID: "prote", Name: "Proteína", Stock: dec(10), AvgBuyPrice: dec(100)},
	}}
	compra := entity.Purchase{
		ID: "c1",
		Lines: []entity.PurchaseLine{
			{Kind: entity.ItemProduct, ItemID: "prote", Quantity: dec(10), LineTotal: dec(1200)},
		},
	}

	got, lines, err := inventory.ApplyPurchase(compra, snap)
	require.NoError(t, err)
	require.Len(t, lines, 1)

	assert.True(t, lines[0].FinalUnitCost.Equal(dec(120)), "1200 / 10 = 120")
	assert.True(t, got.Product("prote").Stock.Equal(dec(20)))
	assert.True(t, got.Product("prote").AvgBuyPrice.Equal(dec(110)),
		"(10×100 + 10×120)/20 = 110")

	// Entrada intacta.
	assert.True(t, snap.Product("prote").Stock.Equal(dec(10)))
	assert.True(t, snap.Product("prote").AvgBuyPrice.Equal(dec(100)))
}

// Reparto proporcional del flete: líneas de 300 y 700 (suma 1000) con
// flete 100 ⇒ cuotas 30 y 70; cada costo unitario final lleva su cuota.
func TestApplyPurchase_FleteProporcional(t *testing.T) {
	snap := inventory.Snapshot{Ingredients: []entity.Ingredient{
		{ID: "pollo", Name: "Pollo", Unit: entity.UnitGram, Stock: decimal.Zero},
		{ID: "arroz", Name: "Arroz", Unit: entity.UnitGram, Stock: decimal.Zero},
	}}
	compra := entity.Purchase{
		ID:            "c2",
		TransportCost: dec(100),
		Lines: []entity.PurchaseLine{
			{Kind: entity.ItemIngredient, ItemID: "pollo", Quantity: dec(10), LineTotal: dec(300)},
			{Kind: entity.ItemIngredient, ItemID: "arroz", Quantity: dec(7), LineTotal: dec(700)},
		},
	}

	_, lines, err := inventory.ApplyPurchase(compra, snap)
	require.NoError(t, err)
	require.Len(t, lines, 2)

	assert.True(t, lines[0].FinalUnitCost.Equal(dec(33)), "(300+30)/10 = 33")
	assert.True(t, lines[1].FinalUnitCost.Equal(dec(110)), "(700+70)/7 = 110")
}

// Con stock previo cero, el promedio queda en el costo unitario final.
func TestApplyPurchase_StockCeroTomaCostoDeEntrada(t *testing.T) {
	snap := inventory.Snapshot{Ingredients: []entity.Ingredient{
		{ID: "avena", Name: "Avena", Unit: entity.UnitGram, Stock: decimal.Zero, AvgBuyPrice: decimal.Zero},
	}}
	compra := entity.Purchase{
		Lines: []entity.PurchaseLine{
			{Kind: entity.ItemIngredient, ItemID: "avena", Quantity: dec(4), LineTotal: dec(20)},
		},
	}

	got, _, err := inventory.ApplyPurchase(compra, snap)
	require.NoError(t, err)
	assert.True(t, got.Ingredient("avena").AvgBuyPrice.Equal(dec(5)))
	assert.True(t, got.Ingredient("avena").Stock.Equal(dec(4)))
}

// Las líneas inválidas se excluyen en silencio del conjunto efectivo;
// el flete se reparte solo entre las válidas.
func TestApplyPurchase_LineasInvalidasSeExcluyen(t *testing.T) {
	snap := buildSnapshot()
	compra := entity.Purchase{
		Lines: []entity.PurchaseLine{
			{Kind: entity.ItemProduct, ItemID: "gatorade", Quantity: dec(5), LineTotal: dec(15)},
			{Kind: entity.ItemProduct, ItemID: "no-existe", Quantity: dec(5), LineTotal: dec(15)}, // referencia irresoluble
			{Kind: entity.ItemProduct, ItemID: "gatorade", Quantity: decimal.Zero, LineTotal: dec(15)}, // cantidad no positiva
			{Kind: entity.ItemProduct, ItemID: "gatorade", Quantity: dec(5), LineTotal: decimal.Zero},  // costo no positivo
		},
	}

	got, lines, err := inventory.ApplyPurchase(compra, snap)
	require.NoError(t, err)
	assert.Len(t, lines, 1, "solo la primera línea es válida")
	assert.True(t, got.Product("gatorade").Stock.Equal(dec(15)), "10 + 5")
}

func TestApplyPurchase_SinLineasValidasRechazaTodo(t *testing.T) {
	snap := buildSnapshot()
	compra := entity.Purchase{
		Lines: []entity.PurchaseLine{
			{Kind: entity.ItemProduct, ItemID: "no-existe", Quantity: dec(1), LineTotal: dec(1)},
		},
	}

	got, _, err := inventory.ApplyPurchase(compra, snap)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, snap, got, "compra rechazada no muta nada")
}

// ──────────────────────────────────────────────────────────────────────────────
// Reversión
// ──────────────────────────────────────────────────────────────────────────────

func TestReversePurchase_DescuentaConPisoEnCero(t *testing.T) {
	snap := buildSnapshot() // gatorade stock 10
	compra := entity.Purchase{
		Lines: []entity.PurchaseLine{
			{Kind: entity.ItemProduct, ItemID: "gatorade", Quantity: dec(25), LineTotal: dec(75)},
		},
	}

	got, warnings := inventory.ReversePurchase(compra, snap)
	assert.Empty(t, warnings)
	assert.True(t, got.Product("gatorade").Stock.Equal(decimal.Zero),
		"max(0, 10 − 25) = 0: el stock nunca queda negativo")
	// Limitación documentada: el promedio NO se recalcula hacia atrás.
	assert.True(t, got.Product("gatorade").AvgBuyPrice.Equal(dec(3)))
}

func TestReversePurchase_ItemInexistenteGeneraAdvertencia(t *testing.T) {
	snap := buildSnapshot()
	compra := entity.Purchase{
		Lines: []entity.PurchaseLine{
			{Kind: entity.ItemIngredient, ItemID: "ya-borrado", Quantity: dec(3), LineTotal: dec(9)},
			{Kind: entity.ItemIngredient, ItemID: "B", Quantity: dec(4), LineTotal: dec(4)},
		},
	}

	got, warnings := inventory.ReversePurchase(compra, snap)
	require.Len(t, warnings, 1)
	assert.Equal(t, inventory.WarnMissingItem, warnings[0].Code)
	assert.Equal(t, "ya-borrado", warnings[0].ItemID)
	assert.True(t, got.Ingredient("B").Stock.Equal(dec(6)), "la línea resoluble sí se revierte")
}

// ──────────────────────────────────────────────────────────────────────────────
// WeightedAverageCost / TransportShare
// ──────────────────────────────────────────────────────────────────────────────

func TestWeightedAverageCost_DenominadorCero(t *testing.T) {
	got := inventory.WeightedAverageCost(decimal.Zero, dec(100), decimal.Zero, dec(40))
	assert.True(t, got.Equal(dec(40)), "sin stock total, el promedio es el costo de entrada")
}

func TestTransportShare_SumaCeroReparteNada(t *testing.T) {
	got := inventory.TransportShare(dec(300), decimal.Zero, dec(100))
	assert.True(t, got.Equal(decimal.Zero))
}
