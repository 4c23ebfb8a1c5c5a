package pipeline

import "sync"

// Registry is the lookup table from a step kind key to its definition.
type Registry struct {
	definitions map[string]StepDefinition
	mu          sync.RWMutex
}

// NewRegistry creates an empty step registry.
func NewRegistry() *Registry {
	return &Registry{
		definitions: make(map[string]StepDefinition),
	}
}

// NewRegistryFrom creates a registry pre-populated with the given
// definitions. Duplicate keys resolve to the last definition in the list.
func NewRegistryFrom(definitions []StepDefinition) *Registry {
	registry := NewRegistry()
	for _, def := range definitions {
		registry.Register(def)
	}

	return registry
}

// Register inserts or overwrites a definition by key. The last registration
// for a given key wins.
func (r *Registry) Register(def StepDefinition) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.definitions[def.Key] = def
}

// TryFind returns the definition for the key, if registered.
func (r *Registry) TryFind(key string) (StepDefinition, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	def, ok := r.definitions[key]

	return def, ok
}

// All returns every registered definition. Order is not significant;
// callers that need a stable order must sort explicitly.
func (r *Registry) All() []StepDefinition {
	r.mu.RLock()
	defer r.mu.RUnlock()

	definitions := make([]StepDefinition, 0, len(r.definitions))
	for _, def := range r.definitions {
		definitions = append(definitions, def)
	}

	return definitions
}
