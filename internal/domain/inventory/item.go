package inventory

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/cantina-api/internal/domain/entity"
)

// OrderItem línea de carrito sobre un producto simple o un plato de
// receta. Variante etiquetada: Kind indica cuál de los dos punteros
// está poblado.
type OrderItem struct {
	Kind     entity.ItemKind
	Product  *entity.Product // Kind == entity.ItemProduct
	Food     *entity.Food    // Kind == entity.ItemFood
	Quantity int64           // entero > 0
}

// NewProductItem construye una línea de carrito para un producto.
func NewProductItem(p *entity.Product, qty int64) OrderItem {
	return OrderItem{Kind: entity.ItemProduct, Product: p, Quantity: qty}
}

// NewFoodItem construye una línea de carrito para un plato.
func NewFoodItem(f *entity.Food, qty int64) OrderItem {
	return OrderItem{Kind: entity.ItemFood, Food: f, Quantity: qty}
}

// ItemID retorna el ID del item referido.
func (it OrderItem) ItemID() string {
	switch it.Kind {
	case entity.ItemProduct:
		return it.Product.ID
	case entity.ItemFood:
		return it.Food.ID
	}
	return ""
}

// Name retorna el nombre del item referido.
func (it OrderItem) Name() string {
	switch it.Kind {
	case entity.ItemProduct:
		return it.Product.Name
	case entity.ItemFood:
		return it.Food.Name
	}
	return ""
}

// UnitPrice retorna el precio de venta unitario.
func (it OrderItem) UnitPrice() decimal.Decimal {
	switch it.Kind {
	case entity.ItemProduct:
		return it.Product.SellPrice
	case entity.ItemFood:
		return it.Food.SellPrice
	}
	return decimal.Zero
}
