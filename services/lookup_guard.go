package services

import (
	"sync"
)

// LookupGuard implements last-request-wins for overlapping price
// lookups from the same client: each lookup takes a sequence token at
// start, and a result is only delivered if that client began no newer
// lookup while it was in flight. Lookups from different clients are
// independent and never discard each other.
type LookupGuard struct {
	mu   sync.Mutex
	seqs map[string]uint64
}

func NewLookupGuard() *LookupGuard {
	return &LookupGuard{
		seqs: make(map[string]uint64),
	}
}

// Begin registers a new lookup for the client and returns its token.
func (g *LookupGuard) Begin(clientID string) uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.seqs[clientID]++
	return g.seqs[clientID]
}

// Current reports whether token still belongs to the client's newest
// lookup.
func (g *LookupGuard) Current(clientID string, token uint64) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.seqs[clientID] == token
}
