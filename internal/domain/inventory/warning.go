package inventory

import "fmt"

// Códigos de advertencia no fatal.
const (
	WarnMissingItem = "ITEM_INEXISTENTE"
)

// Warning condición no fatal: la operación procede sin el efecto de
// stock y el llamador decide cómo mostrarla. Se reporta como valor,
// nunca como error (un registro que apunta a un item ya borrado no debe
// bloquear la operación).
type Warning struct {
	Code   string
	ItemID string
	Detail string
}

func (w Warning) String() string {
	return fmt.Sprintf("%s (%s): %s", w.Code, w.ItemID, w.Detail)
}
