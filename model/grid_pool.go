package model

import "sync"

// GridToPool returns a candidate grid to the pool for reuse
func GridToPool(grid []Cell, pool *GridPool) {
	if pool == nil {
		return
	}

	pool.Put(grid)
}

// GridPool recycles candidate grids between steps. Only scratch buffers pass
// through it; a Generation never does.
type GridPool struct {
	pool sync.Pool
}

func NewGridPool() *GridPool {
	return &GridPool{
		pool: sync.Pool{
			New: func() interface{} {
				grid := make([]Cell, 0, 64)
				return &grid
			},
		},
	}
}

// Get retrieves an empty grid with room for at least size cells
func (p *GridPool) Get(size int) []Cell {
	grid := *p.pool.Get().(*[]Cell)
	if cap(grid) < size {
		return make([]Cell, 0, size)
	}
	return grid[:0]
}

// Put returns a grid to the pool, dropping its contents
func (p *GridPool) Put(grid []Cell) {
	grid = grid[:0]
	p.pool.Put(&grid)
}
