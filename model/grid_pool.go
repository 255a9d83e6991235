package model

import "sync"

// SetToPool returns a live set to the pool for reuse
func SetToPool(set *LiveSet, pool *LiveSetPool) {
	if pool == nil || set == nil {
		return
	}

	pool.Put(set)
}

// LiveSetPool for memory efficiency across generations
type LiveSetPool struct {
	pool sync.Pool
}

func NewLiveSetPool() *LiveSetPool {
	return &LiveSetPool{
		pool: sync.Pool{
			New: func() interface{} {
				return NewLiveSet()
			},
		},
	}
}

// Get retrieves an empty live set from the pool
func (p *LiveSetPool) Get() *LiveSet {
	return p.pool.Get().(*LiveSet)
}

// Put returns a live set to the pool, clearing its state
func (p *LiveSetPool) Put(s *LiveSet) {
	s.Clear()
	p.pool.Put(s)
}

// getSet takes a set from the pool, or allocates one when pool is nil
func getSet(pool *LiveSetPool) *LiveSet {
	if pool == nil {
		return NewLiveSet()
	}
	return pool.Get()
}
