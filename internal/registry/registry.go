// Package registry provides a global registry for level packs.
// Packs register themselves in init() functions, allowing the platform
// to discover and load campaigns without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/colorbubble/internal/level"
)

// Pack describes how to load one campaign's levels.
type Pack struct {
	// ID is a unique identifier (e.g., "classic"), used by the --pack flag
	// and as the key for run records.
	ID string

	// Title is a human-readable name for menus.
	Title string

	// Load decodes the pack's levels. It is called every time a campaign
	// starts; implementations may cache.
	Load func() (*level.Set, error)
}

// PackInfo contains metadata about a registered pack.
type PackInfo struct {
	ID    string
	Title string
}

var (
	packs = make(map[string]Pack)
	mu    sync.RWMutex
)

// Register adds a level pack to the registry.
// Typically called from a pack's init() function.
// Panics if a pack with the same ID is already registered.
func Register(p Pack) {
	mu.Lock()
	defer mu.Unlock()

	if p.ID == "" || p.Load == nil {
		panic("registry: pack needs an ID and a Load function")
	}
	if _, exists := packs[p.ID]; exists {
		panic(fmt.Sprintf("registry: pack %q already registered", p.ID))
	}
	if p.Title == "" {
		p.Title = p.ID
	}
	packs[p.ID] = p
}

// List returns information about all registered packs, sorted by ID.
func List() []PackInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]PackInfo, 0, len(packs))
	for id, p := range packs {
		result = append(result, PackInfo{
			ID:    id,
			Title: p.Title,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Load decodes the levels of a pack by its ID.
// Returns an error if the pack ID is not registered or fails to load.
func Load(id string) (*level.Set, error) {
	mu.RLock()
	p, ok := packs[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown pack %q", id)
	}

	set, err := p.Load()
	if err != nil {
		return nil, fmt.Errorf("registry: load pack %q: %w", id, err)
	}
	return set, nil
}

// Exists checks if a pack with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := packs[id]
	return ok
}
