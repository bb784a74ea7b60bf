package inventory

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/cantina-api/internal/domain"
	"github.com/jhoicas/cantina-api/internal/domain/entity"
)

// Unlimited valor de MaxServings para un plato con receta vacía.
const Unlimited int64 = math.MaxInt64

// CanFulfill indica si el snapshot puede despachar qty unidades del
// item. Producto: stock ≥ qty. Plato: todas las líneas de la receta
// deben tener stock ≥ cantidadPorUnidad × qty; un ingrediente faltante
// o una línea insuficiente lo hacen no disponible. Receta vacía =
// siempre disponible. Función pura: dos llamadas con los mismos
// argumentos dan el mismo resultado.
func CanFulfill(item OrderItem, qty int64, snap Snapshot) bool {
	if qty <= 0 {
		return false
	}
	q := decimal.NewFromInt(qty)
	switch item.Kind {
	case entity.ItemProduct:
		p := snap.Product(item.Product.ID)
		return p != nil && p.Stock.GreaterThanOrEqual(q)
	case entity.ItemFood:
		for _, line := range item.Food.Recipe {
			if !line.Quantity.IsPositive() {
				return false
			}
			ing := snap.Ingredient(line.IngredientID)
			if ing == nil {
				return false
			}
			required := line.Quantity.Mul(q)
			if ing.Stock.LessThan(required) {
				return false
			}
		}
		return true
	}
	return false
}

// MaxServings retorna cuántas unidades del plato pueden despacharse
// simultáneamente: min sobre las líneas de floor(stock / cantPorUnidad).
// Una línea con cantidad ≤ 0, o con ingrediente faltante o sin stock,
// limita a 0. Receta vacía no limita (Unlimited).
func MaxServings(food *entity.Food, snap Snapshot) int64 {
	max := Unlimited
	for _, line := range food.Recipe {
		if !line.Quantity.IsPositive() {
			return 0
		}
		ing := snap.Ingredient(line.IngredientID)
		if ing == nil || !ing.Stock.IsPositive() {
			return 0
		}
		servings := ing.Stock.Div(line.Quantity).Floor().IntPart()
		if servings < max {
			max = servings
		}
	}
	return max
}

// Fulfill despacha el carrito completo contra el snapshot: todo o nada.
// Trabaja sobre una copia, descontando línea a línea, de modo que el
// consumo de un ingrediente por líneas anteriores del mismo carrito ya
// está descontado al verificar una línea posterior. En la primera línea
// insuficiente retorna el snapshot ORIGINAL sin modificar y el error;
// si todas pasan, retorna la copia completamente mutada.
func Fulfill(cart []OrderItem, snap Snapshot) (Snapshot, error) {
	working := snap.Clone()
	prodIdx := working.productIndex()
	ingIdx := working.ingredientIndex()

	for _, item := range cart {
		if item.Quantity <= 0 {
			return snap, fmt.Errorf("línea %q: %w", item.Name(), domain.ErrInvalidInput)
		}
		q := decimal.NewFromInt(item.Quantity)
		switch item.Kind {
		case entity.ItemProduct:
			i, ok := prodIdx[item.Product.ID]
			if !ok {
				return snap, fmt.Errorf("producto %q: %w", item.Product.Name, domain.ErrNotFound)
			}
			if working.Products[i].Stock.LessThan(q) {
				return snap, fmt.Errorf("producto %q: %w", item.Product.Name, domain.ErrInsufficientStock)
			}
			working.Products[i].Stock = working.Products[i].Stock.Sub(q)
		case entity.ItemFood:
			for _, line := range item.Food.Recipe {
				if !line.Quantity.IsPositive() {
					return snap, fmt.Errorf("receta de %q: %w", item.Food.Name, domain.ErrInvalidInput)
				}
				i, ok := ingIdx[line.IngredientID]
				if !ok {
					return snap, fmt.Errorf("plato %q, ingrediente %s: %w", item.Food.Name, line.IngredientID, domain.ErrInsufficientStock)
				}
				required := line.Quantity.Mul(q)
				if working.Ingredients[i].Stock.LessThan(required) {
					return snap, fmt.Errorf("plato %q, ingrediente %q: %w", item.Food.Name, working.Ingredients[i].Name, domain.ErrInsufficientStock)
				}
				working.Ingredients[i].Stock = working.Ingredients[i].Stock.Sub(required)
			}
		default:
			return snap, fmt.Errorf("tipo de item %q: %w", item.Kind, domain.ErrInvalidInput)
		}
	}
	return working, nil
}
