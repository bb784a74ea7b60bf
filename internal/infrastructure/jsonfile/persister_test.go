package jsonfile_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/cantina-api/internal/application/store"
	"github.com/jhoicas/cantina-api/internal/domain/entity"
	"github.com/jhoicas/cantina-api/internal/infrastructure/jsonfile"
)

func TestPersister_RoundTrip(t *testing.T) {
	p, err := jsonfile.New(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	st := store.NewState()
	st.Products = []entity.Product{{ID: "p1", Name: "Gatorade", Stock: decimal.NewFromInt(10), AvgBuyPrice: decimal.NewFromInt(3)}}
	st.Foods = []entity.Food{{
		ID: "f1", Name: "Bowl",
		Recipe: []entity.RecipeLine{{IngredientID: "A", Quantity: decimal.NewFromInt(2)}},
	}}

	require.NoError(t, p.Replace(ctx, st))

	loaded, err := p.Load(ctx)
	require.NoError(t, err)
	require.Len(t, loaded.Products, 1)
	assert.Equal(t, "Gatorade", loaded.Products[0].Name)
	assert.True(t, loaded.Products[0].Stock.Equal(decimal.NewFromInt(10)),
		"los decimales sobreviven el viaje por JSON")
	require.Len(t, loaded.Foods, 1)
	assert.Len(t, loaded.Foods[0].Recipe, 1)
}

func TestPersister_PrimerArranqueVacio(t *testing.T) {
	p, err := jsonfile.New(t.TempDir())
	require.NoError(t, err)

	st, err := p.Load(context.Background())
	require.NoError(t, err, "archivos ausentes no son un error en el primer arranque")
	assert.Empty(t, st.Products)
	assert.Empty(t, st.Orders)
}

func TestPersister_ReplaceParcialNoTocaOtrasColecciones(t *testing.T) {
	p, err := jsonfile.New(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	st := store.NewState()
	st.Products = []entity.Product{{ID: "p1", Name: "Gatorade"}}
	st.Customers = []entity.Customer{{ID: "c1", Name: "Andrés"}}
	require.NoError(t, p.Replace(ctx, st))

	// Solo se reemplaza products: customers en disco conserva lo previo.
	st2 := store.NewState()
	st2.Products = []entity.Product{{ID: "p2", Name: "Barra proteica"}}
	require.NoError(t, p.Replace(ctx, st2, store.ColProducts))

	loaded, err := p.Load(ctx)
	require.NoError(t, err)
	require.Len(t, loaded.Products, 1)
	assert.Equal(t, "p2", loaded.Products[0].ID, "la colección indicada se sobreescribe completa")
	require.Len(t, loaded.Customers, 1)
	assert.Equal(t, "c1", loaded.Customers[0].ID)
}
