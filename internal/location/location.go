// Package location resolves symbolic folder names and literal paths.
package location

import (
	"os"
	"path/filepath"
	"strings"
)

// Resolver maps well-known folder names (desktop, downloads, ...) to
// user-profile directories and expands literal paths. It is built once and
// never mutated after configuration.
type Resolver struct {
	home      string
	locations map[string]string
}

// NewResolver builds a resolver bound to the current user's home directory.
func NewResolver() (*Resolver, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	return NewResolverWithHome(home), nil
}

// NewResolverWithHome builds a resolver rooted at an explicit home directory.
// Used by tests and by configurations that relocate the profile.
func NewResolverWithHome(home string) *Resolver {
	return &Resolver{
		home: home,
		locations: map[string]string{
			"desktop":   filepath.Join(home, "Desktop"),
			"downloads": filepath.Join(home, "Downloads"),
			"documents": filepath.Join(home, "Documents"),
			"pictures":  filepath.Join(home, "Pictures"),
			"music":     filepath.Join(home, "Music"),
			"videos":    filepath.Join(home, "Videos"),
		},
	}
}

// Override rebinds a symbolic name to a custom directory.
func (r *Resolver) Override(name, dir string) {
	r.locations[strings.ToLower(strings.TrimSpace(name))] = ExpandPath(dir, r.home)
}

// Names returns the symbolic names the resolver knows about.
func (r *Resolver) Names() []string {
	names := make([]string, 0, len(r.locations))
	for name := range r.locations {
		names = append(names, name)
	}
	return names
}

// Resolve maps input to an absolute path. A symbolic name (case-insensitive,
// trimmed) returns its bound directory; anything else is treated as a literal
// path with home-directory expansion. Existence is not required here; callers
// that need the root to exist check separately.
func (r *Resolver) Resolve(input string) string {
	key := strings.ToLower(strings.TrimSpace(input))
	if dir, ok := r.locations[key]; ok {
		return dir
	}

	expanded := ExpandPath(strings.TrimSpace(input), r.home)
	if abs, err := filepath.Abs(expanded); err == nil {
		return abs
	}
	return expanded
}

// ExpandPath expands a leading ~ to the home directory. Paths without the
// shorthand are returned unchanged.
func ExpandPath(path, home string) string {
	if path == "~" || path == "~/" {
		return home
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(home, path[2:])
	}
	return path
}
