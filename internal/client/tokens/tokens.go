// Package tokens breaks the structural cycle between the HTTP client and the
// application state store: the client needs the current credential, the
// store's flows need the client. A Provider is handed to the client at
// construction time and bound to the store once the store exists.
package tokens

import "sync"

// Provider hands out the current bearer credential. It is safe for
// concurrent use. Before Bind is called, Token returns "" — callers must
// treat that as "no credential", never as a failure.
type Provider struct {
	mu sync.RWMutex
	fn func() string
}

func NewProvider() *Provider {
	return &Provider{}
}

// Bind installs the credential lookup. Called once by the composition root
// after the store is constructed; a later call replaces the lookup.
func (p *Provider) Bind(fn func() string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.fn = fn
}

// Token returns the current credential, or "" when none is available.
func (p *Provider) Token() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.fn == nil {
		return ""
	}
	return p.fn()
}
