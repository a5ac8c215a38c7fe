// Package catalog provides a registry of symbol catalogs ("themes").
// Themes register themselves in init() functions, so the board builder can
// take symbols from any of them by name.
package catalog

import (
	"fmt"
	"sort"
	"sync"
)

// DefaultTheme is used when no theme is selected.
const DefaultTheme = "animals"

// Catalog is a named, ordered list of distinct card symbols.
// Boards take symbols from the front, so order decides which symbols appear
// on smaller boards.
type Catalog struct {
	Name    string
	Title   string
	Symbols []string
}

// Len returns the number of symbols, the largest pair count the catalog can serve.
func (c Catalog) Len() int {
	return len(c.Symbols)
}

// First returns the first n symbols, or all of them if the catalog is shorter.
func (c Catalog) First(n int) []string {
	if n > len(c.Symbols) {
		n = len(c.Symbols)
	}
	if n < 0 {
		n = 0
	}
	out := make([]string, n)
	copy(out, c.Symbols[:n])
	return out
}

var (
	catalogs = make(map[string]Catalog)
	mu       sync.RWMutex
)

// Register adds a catalog to the registry.
// Panics if a catalog with the same name is already registered or if it
// contains duplicate symbols.
func Register(c Catalog) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := catalogs[c.Name]; exists {
		panic(fmt.Sprintf("catalog: theme %q already registered", c.Name))
	}

	seen := make(map[string]bool, len(c.Symbols))
	for _, s := range c.Symbols {
		if seen[s] {
			panic(fmt.Sprintf("catalog: theme %q has duplicate symbol %q", c.Name, s))
		}
		seen[s] = true
	}

	catalogs[c.Name] = c
}

// Get returns the catalog registered under name.
func Get(name string) (Catalog, error) {
	mu.RLock()
	defer mu.RUnlock()

	c, ok := catalogs[name]
	if !ok {
		return Catalog{}, fmt.Errorf("catalog: unknown theme %q", name)
	}
	return c, nil
}

// List returns all registered catalogs, sorted by name.
func List() []Catalog {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Catalog, 0, len(catalogs))
	for _, c := range catalogs {
		result = append(result, c)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}
