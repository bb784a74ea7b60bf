package store

import (
	"context"
	"fmt"
	"sync"
)

// Listener recibe el estado ya confirmado. La notificación es un
// fan-out síncrono tras cada Commit exitoso.
type Listener func(st *State)

// Store contenedor explícito de estado de la aplicación: una instancia
// por proceso, construida en el arranque (sin singletons ocultos).
// Commit clona el estado vigente, aplica la mutación, persiste el
// resultado como UNA escritura a través del Persister y recién entonces
// publica el puntero nuevo y notifica suscriptores. Una mutación o
// persistencia fallida no deja rastro y no notifica a nadie.
//
// El negocio asume un único escritor activo; el mutex existe porque la
// capa HTTP atiende en paralelo, no como control de concurrencia
// multiusuario.
type Store struct {
	mu        sync.RWMutex
	persister Persister
	state     *State
	listeners []Listener
}

// New construye el contenedor con su persistidor.
func New(p Persister) *Store {
	return &Store{persister: p, state: NewState()}
}

// Load carga el último estado persistido. Sin datos previos arranca
// con colecciones vacías.
func (s *Store) Load(ctx context.Context) error {
	st, err := s.persister.Load(ctx)
	if err != nil {
		return fmt.Errorf("cargar estado: %w", err)
	}
	if st == nil {
		st = NewState()
	}
	s.mu.Lock()
	s.state = st
	s.mu.Unlock()
	return nil
}

// GetSnapshot retorna una copia aislada del estado vigente: el llamador
// puede leerla y descartarla sin afectar al contenedor.
func (s *Store) GetSnapshot() *State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone()
}

// Subscribe registra un listener y retorna su función de baja.
func (s *Store) Subscribe(fn Listener) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
	i := len(s.listeners) - 1
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.listeners[i] = nil
	}
}

// Commit aplica la mutación sobre una copia de trabajo, persiste las
// colecciones indicadas (todas si no se indica ninguna) y publica el
// resultado. Todo o nada: si la mutación o la persistencia fallan, el
// estado vigente no cambia.
func (s *Store) Commit(ctx context.Context, mutation func(st *State) error, cols ...Collection) error {
	s.mu.Lock()
	working := s.state.Clone()
	if err := mutation(working); err != nil {
		s.mu.Unlock()
		return err
	}
	if err := s.persister.Replace(ctx, working, cols...); err != nil {
		s.mu.Unlock()
		return fmt.Errorf("persistir estado: %w", err)
	}
	s.state = working
	listeners := make([]Listener, len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()

	// Fan-out síncrono, fuera del lock: cada listener recibe su copia.
	for _, fn := range listeners {
		if fn != nil {
			fn(working.Clone())
		}
	}
	return nil
}
