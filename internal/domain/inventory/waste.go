package inventory

import (
	"fmt"

	"github.com/jhoicas/cantina-api/internal/domain"
	"github.com/jhoicas/cantina-api/internal/domain/entity"
)

// RecordWaste registra una merma/consumible: debita el stock del item y
// toma una foto del costo (cantidad × costo promedio vigente). El costo
// no se recalcula si el promedio cambia después. Retorna el snapshot
// resultante y el registro completado (nombre, unidad y costo).
func RecordWaste(rec entity.WasteRecord, snap Snapshot) (Snapshot, entity.WasteRecord, error) {
	if !rec.Quantity.IsPositive() {
		return snap, rec, fmt.Errorf("cantidad de merma: %w", domain.ErrInvalidInput)
	}
	working := snap.Clone()
	switch rec.Kind {
	case entity.ItemProduct:
		i, ok := working.productIndex()[rec.ItemID]
		if !ok {
			return snap, rec, fmt.Errorf("producto %s: %w", rec.ItemID, domain.ErrNotFound)
		}
		p := &working.Products[i]
		if p.Stock.LessThan(rec.Quantity) {
			return snap, rec, fmt.Errorf("producto %q: %w", p.Name, domain.ErrInsufficientStock)
		}
		p.Stock = p.Stock.Sub(rec.Quantity)
		rec.ItemName = p.Name
		rec.Unit = entity.UnitCount
		rec.Cost = rec.Quantity.Mul(p.AvgBuyPrice)
	case entity.ItemIngredient:
		i, ok := working.ingredientIndex()[rec.ItemID]
		if !ok {
			return snap, rec, fmt.Errorf("ingrediente %s: %w", rec.ItemID, domain.ErrNotFound)
		}
		ing := &working.Ingredients[i]
		if ing.Stock.LessThan(rec.Quantity) {
			return snap, rec, fmt.Errorf("ingrediente %q: %w", ing.Name, domain.ErrInsufficientStock)
		}
		ing.Stock = ing.Stock.Sub(rec.Quantity)
		rec.ItemName = ing.Name
		rec.Unit = ing.Unit
		rec.Cost = rec.Quantity.Mul(ing.AvgBuyPrice)
	default:
		return snap, rec, fmt.Errorf("tipo de item %q: %w", rec.Kind, domain.ErrInvalidInput)
	}
	return working, rec, nil
}

// EditWaste ajusta un registro de merma existente. Solo cambia
// cantidad, fecha y motivo: cambiar el item referido está prohibido.
// Aplica el delta (nuevaCantidad − cantidadAnterior) sobre el stock;
// un aumento exige stock suficiente para absorberlo. El costo se
// reescala con el costo unitario fotografiado en el registro original,
// no con el promedio vigente.
func EditWaste(existing, upd entity.WasteRecord, snap Snapshot) (Snapshot, entity.WasteRecord, error) {
	if upd.Kind != existing.Kind || upd.ItemID != existing.ItemID {
		return snap, existing, fmt.Errorf("cambiar el item de una merma: %w", domain.ErrIllegalEdit)
	}
	if !upd.Quantity.IsPositive() {
		return snap, existing, fmt.Errorf("cantidad de merma: %w", domain.ErrInvalidInput)
	}

	delta := upd.Quantity.Sub(existing.Quantity)
	working := snap.Clone()
	switch existing.Kind {
	case entity.ItemProduct:
		i, ok := working.productIndex()[existing.ItemID]
		if !ok {
			return snap, existing, fmt.Errorf("producto %s: %w", existing.ItemID, domain.ErrNotFound)
		}
		if delta.IsPositive() && working.Products[i].Stock.LessThan(delta) {
			return snap, existing, fmt.Errorf("producto %q: %w", working.Products[i].Name, domain.ErrInsufficientStock)
		}
		working.Products[i].Stock = working.Products[i].Stock.Sub(delta)
	case entity.ItemIngredient:
		i, ok := working.ingredientIndex()[existing.ItemID]
		if !ok {
			return snap, existing, fmt.Errorf("ingrediente %s: %w", existing.ItemID, domain.ErrNotFound)
		}
		if delta.IsPositive() && working.Ingredients[i].Stock.LessThan(delta) {
			return snap, existing, fmt.Errorf("ingrediente %q: %w", working.Ingredients[i].Name, domain.ErrInsufficientStock)
		}
		working.Ingredients[i].Stock = working.Ingredients[i].Stock.Sub(delta)
	default:
		return snap, existing, fmt.Errorf("tipo de item %q: %w", existing.Kind, domain.ErrInvalidInput)
	}

	out := existing
	out.Quantity = upd.Quantity
	out.Reason = upd.Reason
	out.Date = upd.Date
	// Reescala con el costo unitario original del registro.
	out.Cost = upd.Quantity.Mul(existing.Cost.Div(existing.Quantity))
	return working, out, nil
}

// DeleteWaste revierte una merma: acredita la cantidad de vuelta al
// item. Si el item ya no existe, el registro se elimina igual pero sin
// acreditar stock, y eso se reporta como advertencia, no como error.
func DeleteWaste(rec entity.WasteRecord, snap Snapshot) (Snapshot, *Warning) {
	working := snap.Clone()
	switch rec.Kind {
	case entity.ItemProduct:
		i, ok := working.productIndex()[rec.ItemID]
		if !ok {
			return snap, &Warning{Code: WarnMissingItem, ItemID: rec.ItemID, Detail: "producto de la merma ya no existe, no se acredita stock"}
		}
		working.Products[i].Stock = working.Products[i].Stock.Add(rec.Quantity)
	case entity.ItemIngredient:
		i, ok := working.ingredientIndex()[rec.ItemID]
		if !ok {
			return snap, &Warning{Code: WarnMissingItem, ItemID: rec.ItemID, Detail: "ingrediente de la merma ya no existe, no se acredita stock"}
		}
		working.Ingredients[i].Stock = working.Ingredients[i].Stock.Add(rec.Quantity)
	default:
		return snap, &Warning{Code: WarnMissingItem, ItemID: rec.ItemID, Detail: "tipo de item desconocido en la merma"}
	}
	return working, nil
}
