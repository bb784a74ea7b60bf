package inventory

// CanAddOne indica si puede agregarse una unidad más del item a un
// carrito aún no confirmado sin violar el stock. Reproduce los
// descuentos del carrito actual sobre una copia del snapshot con la
// MISMA regla de expansión que Fulfill y pregunta por una unidad más;
// así, un item validado como agregable nunca se rechaza al confirmar
// (sin mutaciones concurrentes de por medio). Disminuir o quitar una
// línea nunca necesita chequeo: solo libera stock.
func CanAddOne(item OrderItem, snap Snapshot, cart []OrderItem) bool {
	scratch := snap
	if len(cart) > 0 {
		replayed, err := Fulfill(cart, snap)
		if err != nil {
			return false
		}
		scratch = replayed
	}
	return CanFulfill(item, 1, scratch)
}
