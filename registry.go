// registry.go: Owner-keyed pool registry for worker lifecycles
//
// Copyright (c) 2025 AGILira
// Series: an AGLIra fragment
// SPDX-License-Identifier: MPL-2.0

package cyclefmt

import "sync"

// Registry hands out one pool per owner key, so programs that run a fixed
// set of workers can tie each worker's pool to its lifecycle and guarantee
// teardown when the worker exits. Go has no goroutine-local storage; the
// owner key (a worker name or ID chosen by the caller) stands in for
// thread identity.
//
// Only the registry's map is synchronized. A pool returned by Acquire is
// the exclusive property of its owner and must only ever be used from that
// owner's goroutine.
type Registry struct {
	mu     sync.Mutex
	config Config
	pools  map[string]*Pool
}

// NewRegistry creates a registry whose pools are built from config
func NewRegistry(config Config) *Registry {
	return &Registry{
		config: config,
		pools:  make(map[string]*Pool),
	}
}

// Acquire returns the pool registered for owner, creating it on first use.
// Repeated calls with the same owner return the same pool.
func (r *Registry) Acquire(owner string) *Pool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if p, ok := r.pools[owner]; ok {
		return p
	}
	p := NewWithConfig(r.config)
	r.pools[owner] = p
	return p
}

// Release tears down and forgets the pool registered for owner. It must be
// called by the owner itself (or after the owner has provably stopped),
// since teardown invalidates every view the pool has handed out. Unknown
// owners are ignored.
func (r *Registry) Release(owner string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if p, ok := r.pools[owner]; ok {
		p.Teardown()
		delete(r.pools, owner)
	}
}

// TeardownAll releases every registered pool. Intended for process
// shutdown, after all owners have stopped rendering.
func (r *Registry) TeardownAll() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for owner, p := range r.pools {
		p.Teardown()
		delete(r.pools, owner)
	}
}

// Len returns the number of registered pools
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.pools)
}
