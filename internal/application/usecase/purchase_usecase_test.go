package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/cantina-api/internal/application/dto"
	"github.com/jhoicas/cantina-api/internal/application/usecase"
	"github.com/jhoicas/cantina-api/internal/domain"
)

func TestRecord_ActualizaPromedioYStock(t *testing.T) {
	s := newSeededStore(t)
	uc := usecase.NewPurchaseUseCase(s)

	// Gatorade: 10 en stock a 3000. Entran 10 más a 5000 la unidad.
	out, err := uc.Record(context.Background(), dto.RecordPurchaseRequest{
		Supplier: "Distribuidora El Atleta",
		Lines: []dto.PurchaseLineRequest{
			{Kind: "producto", ItemID: "p-gatorade", Quantity: dec(10), LineTotal: dec(50000)},
		},
	})
	require.NoError(t, err)
	require.Len(t, out.Lines, 1)
	assert.True(t, out.Lines[0].FinalUnitCost.Equal(dec(5000)))

	st := s.GetSnapshot()
	assert.True(t, st.Products[0].Stock.Equal(dec(20)))
	assert.True(t, st.Products[0].AvgBuyPrice.Equal(dec(4000)),
		"(10×3000 + 10×5000) / 20 = 4000")
	require.Len(t, st.Purchases, 1)
}

func TestRecord_FleteSeReparteProporcional(t *testing.T) {
	s := newSeededStore(t)
	uc := usecase.NewPurchaseUseCase(s)

	// Totales 30000 y 70000, flete 10000 → cuotas 3000 y 7000.
	out, err := uc.Record(context.Background(), dto.RecordPurchaseRequest{
		TransportCost: dec(10000),
		Lines: []dto.PurchaseLineRequest{
			{Kind: "producto", ItemID: "p-gatorade", Quantity: dec(10), LineTotal: dec(30000)},
			{Kind: "ingrediente", ItemID: "i-pollo", Quantity: dec(1000), LineTotal: dec(70000)},
		},
	})
	require.NoError(t, err)
	require.Len(t, out.Lines, 2)
	assert.True(t, out.Lines[0].FinalUnitCost.Equal(dec(3300)), "(30000+3000)/10")
	assert.True(t, out.Lines[1].FinalUnitCost.Equal(dec(77)), "(70000+7000)/1000")
}

func TestRecord_LineasInvalidasSeExcluyen(t *testing.T) {
	s := newSeededStore(t)
	uc := usecase.NewPurchaseUseCase(s)

	out, err := uc.Record(context.Background(), dto.RecordPurchaseRequest{
		Lines: []dto.PurchaseLineRequest{
			{Kind: "producto", ItemID: "p-gatorade", Quantity: dec(5), LineTotal: dec(15000)},
			{Kind: "producto", ItemID: "fantasma", Quantity: dec(5), LineTotal: dec(15000)},
		},
	})
	require.NoError(t, err)
	assert.Len(t, out.Lines, 1, "solo la línea resoluble queda archivada")
}

func TestRecord_SinLineasValidasSeRechaza(t *testing.T) {
	s := newSeededStore(t)
	uc := usecase.NewPurchaseUseCase(s)

	_, err := uc.Record(context.Background(), dto.RecordPurchaseRequest{
		Lines: []dto.PurchaseLineRequest{
			{Kind: "producto", ItemID: "fantasma", Quantity: dec(5), LineTotal: dec(15000)},
		},
	})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, s.GetSnapshot().Purchases)
}

func TestUpdate_SoloProveedorYFecha(t *testing.T) {
	s := newSeededStore(t)
	uc := usecase.NewPurchaseUseCase(s)

	rec, err := uc.Record(context.Background(), dto.RecordPurchaseRequest{
		Lines: []dto.PurchaseLineRequest{
			{Kind: "producto", ItemID: "p-gatorade", Quantity: dec(5), LineTotal: dec(15000)},
		},
	})
	require.NoError(t, err)

	supplier := "Nuevo Proveedor"
	date := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	out, err := uc.Update(context.Background(), rec.ID, dto.UpdatePurchaseRequest{
		Supplier: &supplier,
		Date:     &date,
	})
	require.NoError(t, err)
	assert.Equal(t, supplier, out.Supplier)
	assert.True(t, date.Equal(out.Date))

	// Tocar montos está prohibido.
	flete := dec(999)
	_, err = uc.Update(context.Background(), rec.ID, dto.UpdatePurchaseRequest{TransportCost: &flete})
	assert.ErrorIs(t, err, domain.ErrIllegalEdit)
}

func TestDelete_RevierteStockYPreservaPromedio(t *testing.T) {
	s := newSeededStore(t)
	uc := usecase.NewPurchaseUseCase(s)

	rec, err := uc.Record(context.Background(), dto.RecordPurchaseRequest{
		Lines: []dto.PurchaseLineRequest{
			{Kind: "producto", ItemID: "p-gatorade", Quantity: dec(10), LineTotal: dec(50000)},
		},
	})
	require.NoError(t, err)

	out, err := uc.Delete(context.Background(), rec.ID)
	require.NoError(t, err)
	assert.Empty(t, out.Warnings)

	st := s.GetSnapshot()
	assert.True(t, st.Products[0].Stock.Equal(dec(10)), "el stock vuelve a su nivel previo")
	assert.True(t, st.Products[0].AvgBuyPrice.Equal(dec(4000)),
		"el promedio no se recalcula hacia atrás")
	assert.Empty(t, st.Purchases)
}

func TestDelete_ItemBorradoGeneraAdvertencia(t *testing.T) {
	s := newSeededStore(t)
	purchaseUC := usecase.NewPurchaseUseCase(s)
	productUC := usecase.NewProductUseCase(s)

	rec, err := purchaseUC.Record(context.Background(), dto.RecordPurchaseRequest{
		Lines: []dto.PurchaseLineRequest{
			{Kind: "producto", ItemID: "p-gatorade", Quantity: dec(5), LineTotal: dec(15000)},
		},
	})
	require.NoError(t, err)
	require.NoError(t, productUC.Delete(context.Background(), "p-gatorade"))

	out, err := purchaseUC.Delete(context.Background(), rec.ID)
	require.NoError(t, err, "el hueco referencial no bloquea la reversa")
	require.Len(t, out.Warnings, 1)
	assert.Equal(t, "p-gatorade", out.Warnings[0].ItemID)
}
