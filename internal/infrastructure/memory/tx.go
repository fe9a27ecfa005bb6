package memory

import (
	"context"

	"github.com/triple000-it/schiedam/internal/domain/repository"
)

var _ repository.TxRunner = (*TxRunner)(nil)

// TxRunner emula una transacción: serializa los Run y entrega a fn un Store que
// anota cada escritura. Si fn falla se deshacen solo esas escrituras; lo que
// otros llamadores escriban mientras tanto se conserva.
type TxRunner struct {
	s *Store
}

// NewTxRunner construye el runner sobre s.
func NewTxRunner(s *Store) *TxRunner {
	return &TxRunner{s: s}
}

// Run ejecuta fn; deshace sus escrituras si devuelve error.
func (r *TxRunner) Run(_ context.Context, fn func(tx repository.Store) error) error {
	r.s.txMu.Lock()
	defer r.s.txMu.Unlock()

	j := &journal{}
	if err := fn(&Store{state: r.s.state, tx: j}); err != nil {
		r.s.mu.Lock()
		j.rollback(r.s.t)
		r.s.mu.Unlock()
		return err
	}
	return nil
}
