package switchboard

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// ApplyBatch routes every row of in through the forward table and
// returns the routed rows in the same order. Rows are independent, so
// they are routed in parallel, bounded by GOMAXPROCS. Every row must
// have length InputDim (ErrDimensionMismatch).
func (s *Switchboard) ApplyBatch(in [][]float64) ([][]float64, error) {
	return s.routeBatch(in, s.Apply)
}

// UnapplyBatch routes every row of out through the inverse table.
// Fails with ErrNotInvertible when the table is not a bijection.
func (s *Switchboard) UnapplyBatch(out [][]float64) ([][]float64, error) {
	if s.table.inverse == nil {
		return nil, ErrNotInvertible
	}

	return s.routeBatch(out, s.Unapply)
}

// routeBatch applies route to every row concurrently. Each goroutine
// writes only its own result slot, so no synchronization beyond the
// errgroup is needed.
func (s *Switchboard) routeBatch(rows [][]float64, route func([]float64) ([]float64, error)) ([][]float64, error) {
	routed := make([][]float64, len(rows))
	g := new(errgroup.Group)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := range rows {
		i := i
		g.Go(func() error {
			r, err := route(rows[i])
			if err != nil {
				return fmt.Errorf("row %d: %w", i, err)
			}
			routed[i] = r

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return routed, nil
}
