// Package descriptor holds the Tailwind configuration descriptor: the content
// globs scanned for class names, the theme extension merged into the default
// theme, and the ordered plugin list.
//
// A Descriptor is immutable once built. Accessors return copies, so callers
// may hand the same value to any number of consumers.
package descriptor

import (
	"maps"
	"slices"

	"github.com/google/go-cmp/cmp"
)

// Extension maps a theme category (e.g. "colors") to its token values.
type Extension map[string]map[string]string

// Clone returns a deep copy of the extension.
func (e Extension) Clone() Extension {
	out := make(Extension, len(e))
	for category, tokens := range e {
		out[category] = maps.Clone(tokens)
		if out[category] == nil {
			out[category] = map[string]string{}
		}
	}
	return out
}

// Token returns the value of a token, if the extension defines it.
func (e Extension) Token(category, token string) (string, bool) {
	v, ok := e[category][token]
	return v, ok
}

// PluginRef references a plugin by name. Options are passed through to the
// consumer untouched.
type PluginRef struct {
	Name    string
	Options map[string]any
}

// Descriptor is the complete configuration. Build one with New or Project.
type Descriptor struct {
	content   []string
	extension Extension
	plugins   []PluginRef
}

// New builds a descriptor. Brace groups in content are expanded and
// duplicate patterns dropped, keeping the first occurrence.
func New(content []string, ext Extension, plugins []PluginRef) *Descriptor {
	d := &Descriptor{
		content:   normalizeContent(content),
		extension: ext.Clone(),
		plugins:   make([]PluginRef, 0, len(plugins)),
	}
	for _, p := range plugins {
		d.plugins = append(d.plugins, PluginRef{Name: p.Name, Options: cloneOptions(p.Options)})
	}
	return d
}

// Content returns the glob patterns in declared order.
func (d *Descriptor) Content() []string {
	return slices.Clone(d.content)
}

// Extension returns the theme extension.
func (d *Descriptor) Extension() Extension {
	return d.extension.Clone()
}

// Plugins returns the plugin references in application order.
func (d *Descriptor) Plugins() []PluginRef {
	out := make([]PluginRef, len(d.plugins))
	for i, p := range d.plugins {
		out[i] = PluginRef{Name: p.Name, Options: cloneOptions(p.Options)}
	}
	return out
}

// Equal reports structural equality. Nil and empty collections compare equal.
func (d *Descriptor) Equal(other *Descriptor) bool {
	if d == nil || other == nil {
		return d == other
	}
	return cmp.Equal(d.snapshot(), other.snapshot(), cmpopts()...)
}

// Diff returns a human readable diff between two descriptors, empty when
// they are equal.
func Diff(old, next *Descriptor) string {
	return cmp.Diff(old.snapshot(), next.snapshot(), cmpopts()...)
}

// snapshot is the comparable view of a descriptor.
type snapshot struct {
	Content   []string
	Extension Extension
	Plugins   []PluginRef
}

func (d *Descriptor) snapshot() snapshot {
	if d == nil {
		return snapshot{}
	}
	return snapshot{Content: d.content, Extension: d.extension, Plugins: d.plugins}
}

func cmpopts() []cmp.Option {
	return []cmp.Option{
		cmp.Comparer(func(a, b []string) bool { return slices.Equal(a, b) }),
		cmp.Comparer(func(a, b map[string]string) bool { return maps.Equal(a, b) }),
		cmp.Transformer("plugins", func(in []PluginRef) []PluginRef {
			if len(in) == 0 {
				return nil
			}
			return in
		}),
		cmp.Transformer("extension", func(in Extension) map[string]map[string]string {
			if len(in) == 0 {
				return nil
			}
			return in
		}),
		cmp.Transformer("options", func(in map[string]any) map[string]any {
			if len(in) == 0 {
				return nil
			}
			return in
		}),
	}
}

func normalizeContent(patterns []string) []string {
	out := make([]string, 0, len(patterns))
	seen := make(map[string]struct{}, len(patterns))
	for _, p := range patterns {
		for _, expanded := range ExpandBraces(p) {
			if _, dup := seen[expanded]; dup {
				continue
			}
			seen[expanded] = struct{}{}
			out = append(out, expanded)
		}
	}
	return out
}
