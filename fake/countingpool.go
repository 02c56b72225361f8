// Author: momentics <momentics@gmail.com>
// SPDX-License-Identifier: MIT

// Package fake provides instrumented block pools for tests: a counting
// wrapper asserting rent/return balance, and a fixed-size pool forcing
// segmentation at known block boundaries.
package fake

import (
	"sync"

	"github.com/momentics/segbuf/api"
)

// CountingPool wraps a BlockPool and counts every Rent and Return, so a
// scenario can assert that each rented block was returned exactly once.
type CountingPool struct {
	Inner api.BlockPool

	mu       sync.Mutex
	rents    int
	returns  int
	cleared  int
	returned [][]byte // blocks handed back, in order
}

// NewCountingPool wraps inner; a nil inner counts over plain allocation.
func NewCountingPool(inner api.BlockPool) *CountingPool {
	return &CountingPool{Inner: inner}
}

func (p *CountingPool) Rent(minLen int) []byte {
	p.mu.Lock()
	p.rents++
	p.mu.Unlock()
	if p.Inner != nil {
		return p.Inner.Rent(minLen)
	}
	return make([]byte, minLen)
}

func (p *CountingPool) Return(block []byte, clear bool) {
	p.mu.Lock()
	p.returns++
	if clear {
		p.cleared++
	}
	p.returned = append(p.returned, block)
	p.mu.Unlock()
	if p.Inner != nil {
		p.Inner.Return(block, clear)
	}
}

// Rents returns how many blocks were rented.
func (p *CountingPool) Rents() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.rents
}

// Returns returns how many blocks were returned.
func (p *CountingPool) Returns() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.returns
}

// Cleared returns how many returns requested clearing.
func (p *CountingPool) Cleared() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cleared
}

// Returned exposes the returned blocks in return order.
func (p *CountingPool) Returned() [][]byte {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([][]byte(nil), p.returned...)
}

// Balanced reports whether every rent has been matched by a return.
func (p *CountingPool) Balanced() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.rents == p.returns
}

var _ api.BlockPool = (*CountingPool)(nil)

// FixedPool hands out blocks of exactly Size bytes regardless of the
// requested minimum (requests above Size get the request). Returns are
// dropped. Deterministic block sizes let tests force a segment boundary
// at a known write offset.
type FixedPool struct {
	Size int
}

func (p *FixedPool) Rent(minLen int) []byte {
	size := p.Size
	if minLen > size {
		size = minLen
	}
	return make([]byte, size)
}

func (p *FixedPool) Return(_ []byte, _ bool) {}

var _ api.BlockPool = (*FixedPool)(nil)
