package inventory

import "github.com/shopspring/decimal"

// WeightedAverageCost implementa la lógica de costo promedio ponderado.
// NuevoCosto = ((StockActual × CostoActual) + (CantEntrada × CostoEntrada)) / (StockActual + CantEntrada)
// Si el denominador es ≤ 0, retorna el costo de entrada tal cual.
func WeightedAverageCost(stockActual, costoActual, cantEntrada, costoEntrada decimal.Decimal) decimal.Decimal {
	sum := stockActual.Add(cantEntrada)
	if sum.LessThanOrEqual(decimal.Zero) {
		return costoEntrada
	}
	num := stockActual.Mul(costoActual).Add(cantEntrada.Mul(costoEntrada))
	return num.Div(sum)
}

// TransportShare reparte el flete de la factura proporcional al total
// de la línea: flete × (totalLínea / sumaTotales). Suma ≤ 0 ⇒ 0.
func TransportShare(lineTotal, sumTotals, transportCost decimal.Decimal) decimal.Decimal {
	if !sumTotals.IsPositive() {
		return decimal.Zero
	}
	return transportCost.Mul(lineTotal).Div(sumTotals)
}
