// Package extension lets host applications register the message types a
// mesh carries, so diagnostics can name channel slots by their registered
// type rather than a raw reflect representation.
package extension

import (
	"reflect"
	"sync"

	"github.com/viant/x"
)

// Types is a registry of message types known to a mesh service.
type Types struct {
	x.Registry
	mu     sync.RWMutex
	byType map[reflect.Type]*x.Type
}

// Register adds a data type to the registry.
func (t *Types) Register(dataType *x.Type) {
	t.mu.Lock()
	t.byType[dataType.Type] = dataType
	t.mu.Unlock()
	t.Registry.Register(dataType)
}

// Lookup returns a registered data type by name, or nil.
func (t *Types) Lookup(name string) *x.Type {
	return t.Registry.Lookup(name)
}

// NameFor resolves the registered name of rType, falling back to the
// reflect representation for unregistered types.
func (t *Types) NameFor(rType reflect.Type) string {
	t.mu.RLock()
	registered, ok := t.byType[rType]
	t.mu.RUnlock()
	if ok && registered.Name != "" {
		return registered.Name
	}
	return rType.String()
}

// NewTypes creates a new types registry.
func NewTypes(options ...x.RegistryOption) *Types {
	return &Types{
		Registry: *x.NewRegistry(options...),
		byType:   map[reflect.Type]*x.Type{},
	}
}
