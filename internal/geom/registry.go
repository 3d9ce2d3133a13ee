package geom

import (
	"fmt"
	"sort"
	"sync"

	plotforgeerrors "github.com/plotforge/plotforge/pkg/errors"
)

var (
	registryMu sync.RWMutex
	registry   = make(map[string]Geom)
)

// Register adds a geom under its name. Registering nil or a duplicate name
// is an error.
func Register(g Geom) error {
	if g == nil {
		return fmt.Errorf("geom is nil")
	}

	registryMu.Lock()
	defer registryMu.Unlock()

	if _, exists := registry[g.Name()]; exists {
		return fmt.Errorf("geom %q already registered", g.Name())
	}

	registry[g.Name()] = g
	return nil
}

// MustRegister registers a geom and panics on failure. Built-in geom
// packages call this from init, where a failure means a programming error.
func MustRegister(g Geom) {
	if err := Register(g); err != nil {
		panic(err)
	}
}

// Get looks up a registered geom by name.
func Get(name string) (Geom, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	g, ok := registry[name]
	if !ok {
		return nil, plotforgeerrors.NewUnknownGeomError(name, namesLocked())
	}
	return g, nil
}

// Names returns the registered geom names in sorted order.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return namesLocked()
}

func namesLocked() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
