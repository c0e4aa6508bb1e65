package world

import (
	"sync"

	"github.com/san-kum/ballsim/internal/physics"
)

// bodyPool recycles Body allocations across the spawn/evict churn.
type bodyPool struct {
	pool sync.Pool
}

func newBodyPool() *bodyPool {
	return &bodyPool{
		pool: sync.Pool{
			New: func() interface{} {
				return &physics.Body{}
			},
		},
	}
}

func (p *bodyPool) get() *physics.Body {
	return p.pool.Get().(*physics.Body)
}

func (p *bodyPool) put(b *physics.Body) {
	*b = physics.Body{}
	p.pool.Put(b)
}
