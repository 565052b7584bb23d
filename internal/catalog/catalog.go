package catalog

import (
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"slices"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/testrig-io/testrig/internal/platform"
)

// Catalog holds the platforms discovered under a set of board roots.
// Read-only after Discover returns.
type Catalog struct {
	platforms []*platform.Platform
	byName    map[string]*platform.Platform
	sources   map[string]string // index key -> defining file
}

// Discover walks each root for *.yaml platform definition files, loads
// every one, and indexes the result by identifier. The first load or scan
// failure aborts discovery; a duplicate identifier across files is an error
// naming both files.
func Discover(roots ...string) (*Catalog, error) {
	c := &Catalog{
		byName:  make(map[string]*platform.Platform),
		sources: make(map[string]string),
	}

	for _, root := range roots {
		files, err := findPlatformFiles(root)
		if err != nil {
			return nil, fmt.Errorf("scanning %s: %w", root, err)
		}
		for _, path := range files {
			p := platform.New()
			if err := p.Load(path); err != nil {
				return nil, err
			}
			key := indexKey(p.Name)
			if prev, ok := c.sources[key]; ok {
				return nil, fmt.Errorf("duplicate platform identifier %q in %s (already defined in %s)",
					p.Name, path, prev)
			}
			c.sources[key] = path
			c.byName[key] = p
			c.platforms = append(c.platforms, p)
			slog.Debug("loaded platform", "name", p.Name, "file", path)
		}
	}

	slices.SortFunc(c.platforms, func(a, b *platform.Platform) int {
		return strings.Compare(a.Name, b.Name)
	})
	return c, nil
}

// Get returns the platform with the given identifier, accepting either the
// declared or the normalized form of the name. Returns nil when unknown.
func (c *Catalog) Get(name string) *platform.Platform {
	if p, ok := c.byName[indexKey(name)]; ok {
		return p
	}
	for _, p := range c.platforms {
		if p.NormalizedName == name {
			return p
		}
	}
	return nil
}

// All returns every discovered platform sorted by identifier.
func (c *Catalog) All() []*platform.Platform {
	return slices.Clone(c.platforms)
}

// Defaults returns the platforms whose testing.default flag is set.
func (c *Catalog) Defaults() []*platform.Platform {
	var out []*platform.Platform
	for _, p := range c.platforms {
		if p.Default {
			out = append(out, p)
		}
	}
	return out
}

// EnvSatisfied returns the platforms whose declared environment
// requirements were met when they were loaded.
func (c *Catalog) EnvSatisfied() []*platform.Platform {
	var out []*platform.Platform
	for _, p := range c.platforms {
		if p.EnvSatisfied {
			out = append(out, p)
		}
	}
	return out
}

// findPlatformFiles recursively collects *.yaml files under root.
func findPlatformFiles(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && filepath.Ext(path) == ".yaml" {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

// indexKey normalizes an identifier to NFC so lookups are insensitive to
// the Unicode composition of board names.
func indexKey(name string) string {
	return norm.NFC.String(name)
}
