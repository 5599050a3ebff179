// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package driver

import (
	"fmt"
	"sort"
	"sync"
)

// Factory opens one driver. New calls it once per driver it returns.
type Factory func() (Driver, error)

// registryMu guards factories.
var (
	registryMu sync.RWMutex
	factories  = make(map[string]Factory)
)

// Register makes a driver available under name. Driver packages call it
// from init:
//
//	func init() {
//	    driver.Register("trace", func() (driver.Driver, error) {
//	        return New(), nil
//	    })
//	}
//
// It panics on a nil factory or a name that is already taken.
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if factory == nil {
		panic("driver: Register factory is nil")
	}
	if _, dup := factories[name]; dup {
		panic("driver: Register called twice for " + name)
	}
	factories[name] = factory
}

// Unregister drops name. Unknown names are ignored. Tests use it to undo
// their own Register calls.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(factories, name)
}

// New opens the driver registered as name. An unknown name usually means
// the driver package was never imported, and the error says so.
func New(name string) (Driver, error) {
	registryMu.RLock()
	factory, ok := factories[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("driver: unknown driver %q (forgotten import?)", name)
	}
	d, err := factory()
	if err != nil {
		return nil, fmt.Errorf("driver: create %q: %w", name, err)
	}
	return d, nil
}

// Must is like New but panics on error.
func Must(name string) Driver {
	d, err := New(name)
	if err != nil {
		panic(err)
	}
	return d
}

// Drivers lists the registered names in sorted order.
func Drivers() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsRegistered reports whether name has a factory.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := factories[name]
	return ok
}
