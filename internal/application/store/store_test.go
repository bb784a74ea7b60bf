package store_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/cantina-api/internal/application/store"
	"github.com/jhoicas/cantina-api/internal/domain/entity"
)

// memPersister persistidor en memoria para los tests del contenedor.
type memPersister struct {
	saved    *store.State
	replaces int
	failNext bool
}

func (m *memPersister) Load(_ context.Context) (*store.State, error) {
	return m.saved, nil
}

func (m *memPersister) Replace(_ context.Context, st *store.State, _ ...store.Collection) error {
	if m.failNext {
		m.failNext = false
		return errors.New("disco lleno")
	}
	m.saved = st.Clone()
	m.replaces++
	return nil
}

func newStore(t *testing.T) (*store.Store, *memPersister) {
	t.Helper()
	p := &memPersister{}
	s := store.New(p)
	require.NoError(t, s.Load(context.Background()))
	return s, p
}

func TestCommit_PublicaYNotificaSincrono(t *testing.T) {
	s, p := newStore(t)

	var notified *store.State
	s.Subscribe(func(st *store.State) { notified = st })

	err := s.Commit(context.Background(), func(st *store.State) error {
		st.Products = append(st.Products, entity.Product{ID: "p1", Name: "Gatorade", Stock: decimal.NewFromInt(10)})
		return nil
	}, store.ColProducts)
	require.NoError(t, err)

	require.NotNil(t, notified, "el fan-out ocurre antes de que Commit retorne")
	assert.Len(t, notified.Products, 1)
	assert.Equal(t, 1, p.replaces, "una confirmación = una escritura")
	assert.Len(t, s.GetSnapshot().Products, 1)
}

func TestCommit_MutacionFallidaNoDejaRastro(t *testing.T) {
	s, p := newStore(t)

	calls := 0
	s.Subscribe(func(*store.State) { calls++ })

	err := s.Commit(context.Background(), func(st *store.State) error {
		st.Products = append(st.Products, entity.Product{ID: "p1"})
		return errors.New("validación falló")
	})
	require.Error(t, err)

	assert.Empty(t, s.GetSnapshot().Products, "la copia de trabajo se descarta completa")
	assert.Zero(t, calls, "nadie se entera de un commit fallido")
	assert.Zero(t, p.replaces)
}

func TestCommit_PersistenciaFallidaNoPublica(t *testing.T) {
	s, p := newStore(t)
	p.failNext = true

	err := s.Commit(context.Background(), func(st *store.State) error {
		st.Customers = append(st.Customers, entity.Customer{ID: "c1", Name: "Andrés"})
		return nil
	})
	require.Error(t, err)
	assert.Empty(t, s.GetSnapshot().Customers,
		"si Replace falla, el estado vigente queda intacto")
}

func TestGetSnapshot_CopiaAislada(t *testing.T) {
	s, _ := newStore(t)
	require.NoError(t, s.Commit(context.Background(), func(st *store.State) error {
		st.Foods = append(st.Foods, entity.Food{
			ID: "f1", Name: "Bowl",
			Recipe: []entity.RecipeLine{{IngredientID: "A", Quantity: decimal.NewFromInt(2)}},
		})
		return nil
	}))

	snap := s.GetSnapshot()
	snap.Foods[0].Name = "Mutado"
	snap.Foods[0].Recipe[0].IngredientID = "Z"

	fresh := s.GetSnapshot()
	assert.Equal(t, "Bowl", fresh.Foods[0].Name, "mutar la copia no toca el estado publicado")
	assert.Equal(t, "A", fresh.Foods[0].Recipe[0].IngredientID, "la copia es profunda, receta incluida")
}

func TestSubscribe_BajaDejaDeNotificar(t *testing.T) {
	s, _ := newStore(t)

	calls := 0
	unsubscribe := s.Subscribe(func(*store.State) { calls++ })

	require.NoError(t, s.Commit(context.Background(), func(*store.State) error { return nil }))
	unsubscribe()
	require.NoError(t, s.Commit(context.Background(), func(*store.State) error { return nil }))

	assert.Equal(t, 1, calls)
}
