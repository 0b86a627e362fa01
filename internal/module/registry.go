package module

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/soyeahso/underline/internal/logging"
)

type entry struct {
	module Module
	args   []any
}

// Registry initializes modules in the order they were registered.
type Registry struct {
	mu      sync.RWMutex
	modules map[string]entry
	order   []string // insertion order for deterministic init
	log     *logging.Logger
}

// NewRegistry creates a module registry.
func NewRegistry(log *logging.Logger) *Registry {
	return &Registry{
		modules: make(map[string]entry),
		log:     log.Sub("modules"),
	}
}

// Register adds a module without initializing it. args are handed to its
// Init by InitAll.
func (r *Registry) Register(m Module, args ...any) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.modules[m.ID()]; exists {
		return fmt.Errorf("module already registered: %s", m.ID())
	}

	r.modules[m.ID()] = entry{module: m, args: args}
	r.order = append(r.order, m.ID())

	r.log.Debug().
		Str("id", m.ID()).
		Str("name", m.Name()).
		Msg("module registered")

	return nil
}

// InitAll initializes all registered modules in registration order and
// stops at the first failure.
func (r *Registry) InitAll(ctx context.Context) error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	runID := uuid.NewString()
	for _, id := range r.order {
		if err := ctx.Err(); err != nil {
			return err
		}

		e := r.modules[id]
		r.log.Info().Str("run", runID).Str("id", id).Msg("initializing module")
		if err := e.module.Init(ctx, e.args...); err != nil {
			r.log.Error().Err(err).Str("run", runID).Str("id", id).Msg("module init failed")
			return fmt.Errorf("init module %s: %w", id, err)
		}
	}
	return nil
}

// Get returns a module by ID, or nil if not found.
func (r *Registry) Get(id string) Module {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.modules[id].module
}

// List returns all registered module IDs in registration order.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Count returns the number of registered modules.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.modules)
}

// Info returns summary information about all registered modules.
func (r *Registry) Info() []ModuleInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()

	infos := make([]ModuleInfo, 0, len(r.order))
	for _, id := range r.order {
		m := r.modules[id].module
		infos = append(infos, ModuleInfo{
			ID:   m.ID(),
			Name: m.Name(),
		})
	}
	return infos
}

// ModuleInfo holds summary data about a module.
type ModuleInfo struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}
