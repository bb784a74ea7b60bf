package inventory_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/cantina-api/internal/domain"
	"github.com/jhoicas/cantina-api/internal/domain/entity"
	"github.com/jhoicas/cantina-api/internal/domain/inventory"
)

func TestRecordWaste_DebitaYFotografiaCosto(t *testing.T) {
	snap := buildSnapshot() // gatorade: stock 10, promedio 3
	rec := entity.WasteRecord{
		ID: "w1", Kind: entity.ItemProduct, ItemID: "gatorade",
		Quantity: dec(3), Reason: entity.WasteReasonExpired, Date: time.Now(),
	}

	got, filled, err := inventory.RecordWaste(rec, snap)
	require.NoError(t, err)

	assert.True(t, got.Product("gatorade").Stock.Equal(dec(7)), "10 − 3 = 7")
	assert.True(t, filled.Cost.Equal(dec(9)), "costo foto = 3 × promedio 3")
	assert.Equal(t, "Gatorade", filled.ItemName)
	assert.Equal(t, entity.UnitCount, filled.Unit)
	// Entrada intacta.
	assert.True(t, snap.Product("gatorade").Stock.Equal(dec(10)))
}

func TestRecordWaste_StockInsuficiente(t *testing.T) {
	snap := buildSnapshot()
	rec := entity.WasteRecord{Kind: entity.ItemIngredient, ItemID: "A", Quantity: dec(6)}

	got, _, err := inventory.RecordWaste(rec, snap)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, snap, got)
}

func TestRecordWaste_CantidadNoPositiva(t *testing.T) {
	snap := buildSnapshot()
	rec := entity.WasteRecord{Kind: entity.ItemProduct, ItemID: "gatorade", Quantity: decimal.Zero}

	_, _, err := inventory.RecordWaste(rec, snap)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRecordWaste_ItemIrresoluble(t *testing.T) {
	snap := buildSnapshot()
	rec := entity.WasteRecord{Kind: entity.ItemIngredient, ItemID: "no-existe", Quantity: dec(1)}

	_, _, err := inventory.RecordWaste(rec, snap)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// EditWaste
// ──────────────────────────────────────────────────────────────────────────────

func TestEditWaste_AplicaDelta(t *testing.T) {
	snap := buildSnapshot()
	// Merma existente de 3 unidades (el stock 10 ya la tiene descontada
	// en la historia del caso; aquí editamos sobre el snapshot actual).
	existing := entity.WasteRecord{
		ID: "w1", Kind: entity.ItemProduct, ItemID: "gatorade",
		Quantity: dec(3), Cost: dec(9),
	}
	upd := existing
	upd.Quantity = dec(5) // delta +2

	got, out, err := inventory.EditWaste(existing, upd, snap)
	require.NoError(t, err)
	assert.True(t, got.Product("gatorade").Stock.Equal(dec(8)), "10 − delta 2 = 8")
	assert.True(t, out.Cost.Equal(dec(15)), "5 × costo unitario original 3")
}

func TestEditWaste_DeltaNegativoSiempreAbsorbe(t *testing.T) {
	snap := buildSnapshot()
	existing := entity.WasteRecord{Kind: entity.ItemIngredient, ItemID: "A", Quantity: dec(3), Cost: dec(6)}
	upd := existing
	upd.Quantity = dec(1) // delta −2: libera stock

	got, _, err := inventory.EditWaste(existing, upd, snap)
	require.NoError(t, err)
	assert.True(t, got.Ingredient("A").Stock.Equal(dec(7)), "5 − (−2) = 7")
}

func TestEditWaste_AumentoSinStockFalla(t *testing.T) {
	snap := buildSnapshot() // A: stock 5
	existing := entity.WasteRecord{Kind: entity.ItemIngredient, ItemID: "A", Quantity: dec(2), Cost: dec(4)}
	upd := existing
	upd.Quantity = dec(10) // delta +8 > stock 5

	got, _, err := inventory.EditWaste(existing, upd, snap)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, snap, got)
}

func TestEditWaste_CambiarItemEsIlegal(t *testing.T) {
	snap := buildSnapshot()
	existing := entity.WasteRecord{Kind: entity.ItemIngredient, ItemID: "A", Quantity: dec(1), Cost: dec(2)}
	upd := existing
	upd.ItemID = "B"

	_, _, err := inventory.EditWaste(existing, upd, snap)
	assert.ErrorIs(t, err, domain.ErrIllegalEdit,
		"una merma solo ajusta cantidad/fecha/motivo, nunca el item referido")
}

// ──────────────────────────────────────────────────────────────────────────────
// DeleteWaste
// ──────────────────────────────────────────────────────────────────────────────

// Registrar merma de 3 sobre stock 10 (⇒ 7) y borrar el registro
// restaura exactamente 10.
func TestDeleteWaste_ReversaExacta(t *testing.T) {
	snap := buildSnapshot()
	rec := entity.WasteRecord{
		ID: "w1", Kind: entity.ItemProduct, ItemID: "gatorade", Quantity: dec(3),
	}

	debited, filled, err := inventory.RecordWaste(rec, snap)
	require.NoError(t, err)
	require.True(t, debited.Product("gatorade").Stock.Equal(dec(7)))

	restored, warn := inventory.DeleteWaste(filled, debited)
	assert.Nil(t, warn)
	assert.True(t, restored.Product("gatorade").Stock.Equal(dec(10)),
		"borrar la merma acredita la cantidad exacta")
}

func TestDeleteWaste_ItemInexistenteAdvierteSinAcreditar(t *testing.T) {
	snap := buildSnapshot()
	rec := entity.WasteRecord{Kind: entity.ItemIngredient, ItemID: "ya-borrado", Quantity: dec(4)}

	got, warn := inventory.DeleteWaste(rec, snap)
	require.NotNil(t, warn, "item inexistente se reporta como advertencia, no como error")
	assert.Equal(t, inventory.WarnMissingItem, warn.Code)
	assert.Equal(t, snap, got, "sin efecto de stock")
}
