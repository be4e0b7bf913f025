// Package query defines the read-only lookup shared by parsed .SRCINFO
// documents and anything that wraps them.
package query

import (
	"sync"

	"github.com/git-pkgs/srcinfo/field"
)

// Querier returns the raw text stored for a field, if any.
type Querier interface {
	QueryRawText(name field.AnyFieldName) (string, bool)
}

// Mutex shares a Querier between goroutines behind a sync.Mutex.
type Mutex[Q Querier] struct {
	mu sync.Mutex
	q  Q
}

// NewMutex wraps q.
func NewMutex[Q Querier](q Q) *Mutex[Q] {
	return &Mutex[Q]{q: q}
}

// QueryRawText forwards to the wrapped Querier while holding the lock.
func (m *Mutex[Q]) QueryRawText(name field.AnyFieldName) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.q.QueryRawText(name)
}

// Swap replaces the wrapped Querier and returns the previous one.
func (m *Mutex[Q]) Swap(q Q) Q {
	m.mu.Lock()
	defer m.mu.Unlock()
	old := m.q
	m.q = q
	return old
}

// RWMutex shares a Querier between goroutines behind a sync.RWMutex.
// Lookups take the read lock, so they run in parallel.
type RWMutex[Q Querier] struct {
	mu sync.RWMutex
	q  Q
}

// NewRWMutex wraps q.
func NewRWMutex[Q Querier](q Q) *RWMutex[Q] {
	return &RWMutex[Q]{q: q}
}

// QueryRawText forwards to the wrapped Querier while holding the read lock.
func (m *RWMutex[Q]) QueryRawText(name field.AnyFieldName) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.q.QueryRawText(name)
}

// Swap replaces the wrapped Querier and returns the previous one.
func (m *RWMutex[Q]) Swap(q Q) Q {
	m.mu.Lock()
	defer m.mu.Unlock()
	old := m.q
	m.q = q
	return old
}

var (
	_ Querier = (*Mutex[Querier])(nil)
	_ Querier = (*RWMutex[Querier])(nil)
)
