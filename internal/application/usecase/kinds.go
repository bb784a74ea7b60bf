package usecase

import (
	"fmt"

	"github.com/jhoicas/cantina-api/internal/domain"
	"github.com/jhoicas/cantina-api/internal/domain/entity"
)

// parseStockKind valida un kind que refiere stock directo (compras y
// mermas operan sobre productos e ingredientes, nunca sobre platos).
func parseStockKind(s string) (entity.ItemKind, error) {
	switch entity.ItemKind(s) {
	case entity.ItemProduct:
		return entity.ItemProduct, nil
	case entity.ItemIngredient:
		return entity.ItemIngredient, nil
	}
	return "", fmt.Errorf("kind %q: %w", s, domain.ErrInvalidInput)
}

// parseSaleKind valida un kind vendible en caja (producto o plato).
func parseSaleKind(s string) (entity.ItemKind, error) {
	switch entity.ItemKind(s) {
	case entity.ItemProduct:
		return entity.ItemProduct, nil
	case entity.ItemFood:
		return entity.ItemFood, nil
	}
	return "", fmt.Errorf("kind %q: %w", s, domain.ErrInvalidInput)
}
