package codec

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aretw0/sheaf/pkg/core"
)

// Registry maps file extensions and format names to codecs.
type Registry struct {
	byExt    map[string]core.Codec
	fallback core.Codec
}

// DefaultRegistry returns the standard set of codecs, falling back to JSON.
func DefaultRegistry() *Registry {
	r := &Registry{byExt: make(map[string]core.Codec), fallback: JSON}
	r.Register(".json", JSON)
	r.Register(".yaml", YAML)
	r.Register(".yml", YAML)
	return r
}

// Register binds ext (with or without the leading dot) to c.
func (r *Registry) Register(ext string, c core.Codec) {
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	r.byExt[strings.ToLower(ext)] = c
}

// Lookup returns the codec registered for the extension of name.
func (r *Registry) Lookup(name string) (core.Codec, bool) {
	c, ok := r.byExt[strings.ToLower(filepath.Ext(name))]
	return c, ok
}

// ForName returns the codec for the extension of name, or the fallback.
func (r *Registry) ForName(name string) core.Codec {
	if c, ok := r.Lookup(name); ok {
		return c
	}
	return r.fallback
}

// ForFormat resolves a format name such as "json" or "yml".
func (r *Registry) ForFormat(format string) (core.Codec, error) {
	if c, ok := r.byExt["."+strings.ToLower(strings.TrimPrefix(format, "."))]; ok {
		return c, nil
	}
	return nil, fmt.Errorf("%w: %q (known: %s)", core.ErrUnknownFormat, format, strings.Join(r.Formats(), ", "))
}

// Formats lists the registered extensions without dots, sorted.
func (r *Registry) Formats() []string {
	out := make([]string, 0, len(r.byExt))
	for ext := range r.byExt {
		out = append(out, strings.TrimPrefix(ext, "."))
	}
	sort.Strings(out)
	return out
}
