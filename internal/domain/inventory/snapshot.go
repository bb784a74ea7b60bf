package inventory

import "github.com/jhoicas/cantina-api/internal/domain/entity"

// Snapshot vista inmutable de productos e ingredientes: la unidad de
// trabajo del libro de stock. Las operaciones del paquete nunca mutan
// el snapshot de entrada; devuelven uno nuevo.
type Snapshot struct {
	Products    []entity.Product
	Ingredients []entity.Ingredient
}

// Clone devuelve una copia de trabajo independiente del snapshot.
func (s Snapshot) Clone() Snapshot {
	out := Snapshot{
		Products:    make([]entity.Product, len(s.Products)),
		Ingredients: make([]entity.Ingredient, len(s.Ingredients)),
	}
	copy(out.Products, s.Products)
	copy(out.Ingredients, s.Ingredients)
	return out
}

// productIndex construye el mapa id → posición una vez por operación
// (no por render, como hacía la versión anterior del dashboard).
func (s Snapshot) productIndex() map[string]int {
	idx := make(map[string]int, len(s.Products))
	for i, p := range s.Products {
		idx[p.ID] = i
	}
	return idx
}

func (s Snapshot) ingredientIndex() map[string]int {
	idx := make(map[string]int, len(s.Ingredients))
	for i, ing := range s.Ingredients {
		idx[ing.ID] = i
	}
	return idx
}

// Product busca un producto por ID. Retorna nil si no existe.
func (s Snapshot) Product(id string) *entity.Product {
	for i := range s.Products {
		if s.Products[i].ID == id {
			return &s.Products[i]
		}
	}
	return nil
}

// Ingredient busca un ingrediente por ID. Retorna nil si no existe.
func (s Snapshot) Ingredient(id string) *entity.Ingredient {
	for i := range s.Ingredients {
		if s.Ingredients[i].ID == id {
			return &s.Ingredients[i]
		}
	}
	return nil
}
