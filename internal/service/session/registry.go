package session

import "sync"

// Registry mirrors each account's persisted refresh token in memory.
// The auth guard consults it to decide whether a session is still
// active; the accounts table remains the source of truth across
// restarts. Entries are overwritten on every signup and login, so the
// map is bounded by the number of accounts.
type Registry struct {
	mu     sync.RWMutex
	tokens map[string]string
}

func NewRegistry() *Registry {
	return &Registry{
		tokens: make(map[string]string),
	}
}

// Seed loads the (username, refresh token) pairs read from storage at
// startup.
func (r *Registry) Seed(tokens map[string]string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for username, token := range tokens {
		r.tokens[username] = token
	}
}

func (r *Registry) Put(username string, token string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tokens[username] = token
}

func (r *Registry) Contains(username string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.tokens[username]
	return ok
}

// Token returns the refresh token currently registered for username.
func (r *Registry) Token(username string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	token, ok := r.tokens[username]
	return token, ok
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.tokens)
}
