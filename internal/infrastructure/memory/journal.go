package memory

import "github.com/triple000-it/schiedam/internal/domain/entity"

// journal acciones de deshacer de una transacción, en orden de escritura. Solo
// recoge lo escrito a través del Store de la transacción; las escrituras hechas
// por otros llamadores durante la transacción no se tocan al deshacer.
type journal struct {
	undo []func(t *tables)
}

// rollback aplica las acciones en orden inverso. Requiere mu.
func (j *journal) rollback(t *tables) {
	for i := len(j.undo) - 1; i >= 0; i-- {
		j.undo[i](t)
	}
	j.undo = nil
}

// remember anota fn si s pertenece a una transacción. Requiere mu.
func (s *Store) remember(fn func(t *tables)) {
	if s.tx != nil {
		s.tx.undo = append(s.tx.undo, fn)
	}
}

// rememberKey anota cómo restaurar la clave key de la tabla que devuelve of:
// su valor anterior o su ausencia. Llamar antes de escribir; requiere mu.
func rememberKey[V any](s *Store, of func(t *tables) map[string]V, key string) {
	if s.tx == nil {
		return
	}
	prev, existed := of(s.t)[key]
	s.remember(func(t *tables) {
		if existed {
			of(t)[key] = prev
		} else {
			delete(of(t), key)
		}
	})
}

func profilesOf(t *tables) map[string]entity.Profile     { return t.profiles }
func categoriesOf(t *tables) map[string]entity.Category { return t.categories }
func businessesOf(t *tables) map[string]entity.Business { return t.businesses }
func productsOf(t *tables) map[string]entity.Product    { return t.products }
func ordersOf(t *tables) map[string]entity.Order        { return t.orders }
func paymentsOf(t *tables) map[string]entity.Payment    { return t.payments }

// withoutFunc devuelve una copia de list sin los elementos que cumplen drop.
func withoutFunc[T any](list []T, drop func(T) bool) []T {
	out := make([]T, 0, len(list))
	for _, v := range list {
		if !drop(v) {
			out = append(out, v)
		}
	}
	return out
}
