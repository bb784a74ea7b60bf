package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/jhoicas/cantina-api/internal/application/store"
)

var _ store.Persister = (*Persister)(nil)

// Persister guarda cada colección como un documento JSON en disco.
// Implementa la semántica replace del contenedor: cada escritura
// sobreescribe la colección completa (tmp + rename, nunca escritura
// parcial visible). Es el driver por defecto de la aplicación.
type Persister struct {
	dir string
}

// New construye el persistidor sobre el directorio de datos, creándolo
// si no existe.
func New(dir string) (*Persister, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("crear directorio de datos: %w", err)
	}
	return &Persister{dir: dir}, nil
}

func (p *Persister) path(col store.Collection) string {
	return filepath.Join(p.dir, string(col)+".json")
}

// Load lee todas las colecciones. Un archivo ausente es una colección
// vacía, no un error (primer arranque).
func (p *Persister) Load(_ context.Context) (*store.State, error) {
	st := store.NewState()
	for _, col := range store.Collections {
		data, err := os.ReadFile(p.path(col))
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("leer %s: %w", col, err)
		}
		if err := json.Unmarshal(data, target(st, col)); err != nil {
			return nil, fmt.Errorf("decodificar %s: %w", col, err)
		}
	}
	return st, nil
}

// Replace sobreescribe las colecciones indicadas (todas si cols está
// vacío) con el contenido del estado.
func (p *Persister) Replace(_ context.Context, st *store.State, cols ...store.Collection) error {
	if len(cols) == 0 {
		cols = store.Collections
	}
	for _, col := range cols {
		data, err := json.MarshalIndent(target(st, col), "", "  ")
		if err != nil {
			return fmt.Errorf("codificar %s: %w", col, err)
		}
		if err := writeAtomic(p.path(col), data); err != nil {
			return fmt.Errorf("escribir %s: %w", col, err)
		}
	}
	return nil
}

// writeAtomic escribe a un archivo temporal y renombra: el lector nunca
// ve una colección a medio escribir.
func writeAtomic(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// target retorna el puntero al slice de la colección dentro del estado.
func target(st *store.State, col store.Collection) any {
	switch col {
	case store.ColProducts:
		return &st.Products
	case store.ColIngredients:
		return &st.Ingredients
	case store.ColFoods:
		return &st.Foods
	case store.ColOrders:
		return &st.Orders
	case store.ColPurchases:
		return &st.Purchases
	case store.ColWastes:
		return &st.Wastes
	case store.ColCustomers:
		return &st.Customers
	case store.ColExpenses:
		return &st.Expenses
	}
	return nil
}
