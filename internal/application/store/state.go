package store

import (
	"context"

	"github.com/jhoicas/cantina-api/internal/domain/entity"
	"github.com/jhoicas/cantina-api/internal/domain/inventory"
)

// Collection identifica una colección persistible. El Persister
// sobreescribe colecciones COMPLETAS: nunca hay patch a nivel de campo.
type Collection string

const (
	ColProducts    Collection = "products"
	ColIngredients Collection = "ingredients"
	ColFoods       Collection = "foods"
	ColOrders      Collection = "orders"
	ColPurchases   Collection = "purchases"
	ColWastes      Collection = "wastes"
	ColCustomers   Collection = "customers"
	ColExpenses    Collection = "expenses"
)

// Collections todas las colecciones, en orden estable.
var Collections = []Collection{
	ColProducts, ColIngredients, ColFoods, ColOrders,
	ColPurchases, ColWastes, ColCustomers, ColExpenses,
}

// Persister puerto de persistencia: cargar el estado completo y
// reemplazar colecciones enteras en una sola escritura. El contenedor
// nunca asume que una escritura parcial quedó aplicada a medias.
type Persister interface {
	Load(ctx context.Context) (*State, error)
	Replace(ctx context.Context, st *State, cols ...Collection) error
}

// State estado completo de la aplicación en memoria.
type State struct {
	Products    []entity.Product
	Ingredients []entity.Ingredient
	Foods       []entity.Food
	Orders      []entity.Order
	Purchases   []entity.Purchase
	Wastes      []entity.WasteRecord
	Customers   []entity.Customer
	Expenses    []entity.Expense
}

// NewState estado vacío listo para usar.
func NewState() *State {
	return &State{}
}

// Clone copia profunda: también los slices anidados (recetas, líneas),
// para que una copia de trabajo nunca comparta memoria con el estado
// publicado.
func (s *State) Clone() *State {
	out := &State{
		Products:    append([]entity.Product(nil), s.Products...),
		Ingredients: append([]entity.Ingredient(nil), s.Ingredients...),
		Foods:       append([]entity.Food(nil), s.Foods...),
		Orders:      append([]entity.Order(nil), s.Orders...),
		Purchases:   append([]entity.Purchase(nil), s.Purchases...),
		Wastes:      append([]entity.WasteRecord(nil), s.Wastes...),
		Customers:   append([]entity.Customer(nil), s.Customers...),
		Expenses:    append([]entity.Expense(nil), s.Expenses...),
	}
	for i := range out.Foods {
		out.Foods[i].Recipe = append([]entity.RecipeLine(nil), out.Foods[i].Recipe...)
	}
	for i := range out.Orders {
		out.Orders[i].Lines = append([]entity.OrderLine(nil), out.Orders[i].Lines...)
	}
	for i := range out.Purchases {
		out.Purchases[i].Lines = append([]entity.PurchaseLine(nil), out.Purchases[i].Lines...)
	}
	return out
}

// Inventory arma el snapshot que consume el libro de stock.
func (s *State) Inventory() inventory.Snapshot {
	return inventory.Snapshot{Products: s.Products, Ingredients: s.Ingredients}
}

// ApplyInventory reemplaza productos e ingredientes con el snapshot
// retornado por una operación del libro.
func (s *State) ApplyInventory(snap inventory.Snapshot) {
	s.Products = snap.Products
	s.Ingredients = snap.Ingredients
}

// Food busca un plato por ID. Retorna nil si no existe.
func (s *State) Food(id string) *entity.Food {
	for i := range s.Foods {
		if s.Foods[i].ID == id {
			return &s.Foods[i]
		}
	}
	return nil
}

// Customer busca un cliente por ID. Retorna nil si no existe.
func (s *State) Customer(id string) *entity.Customer {
	for i := range s.Customers {
		if s.Customers[i].ID == id {
			return &s.Customers[i]
		}
	}
	return nil
}
