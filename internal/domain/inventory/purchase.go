package inventory

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/cantina-api/internal/domain"
	"github.com/jhoicas/cantina-api/internal/domain/entity"
)

// lineValid determina si la línea entra al conjunto efectivo de la
// factura: referencia resoluble en el snapshot, cantidad y total > 0.
// Las líneas inválidas se excluyen en silencio.
func lineValid(line entity.PurchaseLine, snap Snapshot) bool {
	if !line.Quantity.IsPositive() || !line.LineTotal.IsPositive() {
		return false
	}
	switch line.Kind {
	case entity.ItemProduct:
		return snap.Product(line.ItemID) != nil
	case entity.ItemIngredient:
		return snap.Ingredient(line.ItemID) != nil
	}
	return false
}

// ApplyPurchase registra una factura de compra: suma stock y recalcula
// el costo promedio ponderado de cada item, repartiendo el flete
// proporcional al total de cada línea válida. Retorna el snapshot
// resultante y las líneas efectivas con FinalUnitCost ya calculado.
// Si NINGUNA línea es válida, rechaza la compra completa sin mutar nada.
func ApplyPurchase(p entity.Purchase, snap Snapshot) (Snapshot, []entity.PurchaseLine, error) {
	var valid []entity.PurchaseLine
	sum := decimal.Zero
	for _, line := range p.Lines {
		if lineValid(line, snap) {
			valid = append(valid, line)
			sum = sum.Add(line.LineTotal)
		}
	}
	if len(valid) == 0 {
		return snap, nil, fmt.Errorf("compra sin líneas válidas: %w", domain.ErrInvalidInput)
	}

	working := snap.Clone()
	prodIdx := working.productIndex()
	ingIdx := working.ingredientIndex()

	for n, line := range valid {
		share := TransportShare(line.LineTotal, sum, p.TransportCost)
		finalUnitCost := line.LineTotal.Add(share).Div(line.Quantity)
		valid[n].FinalUnitCost = finalUnitCost

		switch line.Kind {
		case entity.ItemProduct:
			i := prodIdx[line.ItemID]
			pr := &working.Products[i]
			pr.AvgBuyPrice = WeightedAverageCost(pr.Stock, pr.AvgBuyPrice, line.Quantity, finalUnitCost)
			pr.Stock = pr.Stock.Add(line.Quantity)
		case entity.ItemIngredient:
			i := ingIdx[line.ItemID]
			ing := &working.Ingredients[i]
			ing.AvgBuyPrice = WeightedAverageCost(ing.Stock, ing.AvgBuyPrice, line.Quantity, finalUnitCost)
			ing.Stock = ing.Stock.Add(line.Quantity)
		}
	}
	return working, valid, nil
}

// ReversePurchase revierte una compra archivada: por cada línea
// original, stock = max(0, stock − cantidad). El costo promedio NO se
// recalcula hacia atrás: hacerlo exacto exigiría reproducir todo el
// historial de compras, que este libro no implementa (limitación
// conocida). Un item ya inexistente genera advertencia, no error.
func ReversePurchase(p entity.Purchase, snap Snapshot) (Snapshot, []Warning) {
	working := snap.Clone()
	prodIdx := working.productIndex()
	ingIdx := working.ingredientIndex()

	var warnings []Warning
	for _, line := range p.Lines {
		switch line.Kind {
		case entity.ItemProduct:
			i, ok := prodIdx[line.ItemID]
			if !ok {
				warnings = append(warnings, Warning{Code: WarnMissingItem, ItemID: line.ItemID, Detail: "producto de la compra ya no existe, no se descuenta stock"})
				continue
			}
			working.Products[i].Stock = floorZero(working.Products[i].Stock.Sub(line.Quantity))
		case entity.ItemIngredient:
			i, ok := ingIdx[line.ItemID]
			if !ok {
				warnings = append(warnings, Warning{Code: WarnMissingItem, ItemID: line.ItemID, Detail: "ingrediente de la compra ya no existe, no se descuenta stock"})
				continue
			}
			working.Ingredients[i].Stock = floorZero(working.Ingredients[i].Stock.Sub(line.Quantity))
		}
	}
	return working, warnings
}

func floorZero(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
