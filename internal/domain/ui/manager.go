// internal/domain/ui/manager.go
package ui

import (
	"sync"
	"time"

	"github.com/your-org/storefront-backend/internal/config"
)

// Manager owns one dialog controller per session.
type Manager struct {
	mu          sync.Mutex
	controllers map[string]*Controller

	carts        CartAdder
	ackDuration  time.Duration
	dismissDelay time.Duration
}

// NewManager creates a controller manager with the configured dialog timing.
func NewManager(carts CartAdder, cfg *config.Config) *Manager {
	return &Manager{
		controllers:  make(map[string]*Controller),
		carts:        carts,
		ackDuration:  cfg.UI.AckDuration,
		dismissDelay: cfg.UI.DismissDelay,
	}
}

// Get returns the controller for a session, creating it in the Closed state
// on first use.
func (m *Manager) Get(sessionID string) *Controller {
	m.mu.Lock()
	defer m.mu.Unlock()

	if c, ok := m.controllers[sessionID]; ok {
		return c
	}
	c := newController(sessionID, m.carts, m.ackDuration, m.dismissDelay)
	m.controllers[sessionID] = c
	return c
}

// Close dismisses the session's dialog if a controller exists. Sessions that
// never opened a dialog are left alone.
func (m *Manager) Close(sessionID string) {
	m.mu.Lock()
	c, ok := m.controllers[sessionID]
	m.mu.Unlock()

	if ok {
		c.Close()
	}
}
