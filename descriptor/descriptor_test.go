package descriptor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProject(t *testing.T) {
	d := Project()

	assert.Equal(t, []string{
		"./templates/**/*.html",
		"./**/templates/**/*.html",
		"./static/src/**/*.js",
		"./static/src/**/*.ts",
	}, d.Content())

	primary, ok := d.Extension().Token("colors", "primary")
	require.True(t, ok)
	assert.Equal(t, "#f97316", primary)
	assert.Len(t, d.Extension(), 1)
	assert.Empty(t, d.Plugins())
}

func TestProjectIsDeterministic(t *testing.T) {
	a, b := Project(), Project()
	assert.NotSame(t, a, b)
	assert.True(t, a.Equal(b))
	assert.Empty(t, Diff(a, b))
}

func TestAccessorsReturnCopies(t *testing.T) {
	d := New(
		[]string{"./a/**/*.html"},
		Extension{"colors": {"primary": "#000000"}},
		[]PluginRef{{Name: "@tailwindcss/forms", Options: map[string]any{"strategy": "class"}}},
	)

	content := d.Content()
	content[0] = "changed"
	ext := d.Extension()
	ext["colors"]["primary"] = "changed"
	ext["spacing"] = map[string]string{"1": "1px"}
	plugins := d.Plugins()
	plugins[0].Name = "changed"
	plugins[0].Options["strategy"] = "changed"

	assert.Equal(t, []string{"./a/**/*.html"}, d.Content())
	assert.Equal(t, Extension{"colors": {"primary": "#000000"}}, d.Extension())
	assert.Equal(t, "@tailwindcss/forms", d.Plugins()[0].Name)
	assert.Equal(t, "class", d.Plugins()[0].Options["strategy"])
}

func TestNewDoesNotAliasInputs(t *testing.T) {
	content := []string{"./a/*.html"}
	ext := Extension{"colors": {"primary": "#111111"}}
	d := New(content, ext, nil)

	content[0] = "changed"
	ext["colors"]["primary"] = "changed"

	assert.Equal(t, []string{"./a/*.html"}, d.Content())
	v, _ := d.Extension().Token("colors", "primary")
	assert.Equal(t, "#111111", v)
}

func TestNewDropsDuplicatePatterns(t *testing.T) {
	d := New([]string{
		"./src/**/*.{js,ts}",
		"./src/**/*.js",
		"./templates/*.html",
		"./templates/*.html",
	}, nil, nil)

	assert.Equal(t, []string{
		"./src/**/*.js",
		"./src/**/*.ts",
		"./templates/*.html",
	}, d.Content())
}

func TestPluginOrderPreserved(t *testing.T) {
	refs := []PluginRef{{Name: "c"}, {Name: "a"}, {Name: "b"}}
	d := New(nil, nil, refs)

	var names []string
	for _, p := range d.Plugins() {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"c", "a", "b"}, names)
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name  string
		a, b  *Descriptor
		equal bool
	}{
		{
			name:  "nil and empty collections",
			a:     New(nil, nil, nil),
			b:     New([]string{}, Extension{}, []PluginRef{}),
			equal: true,
		},
		{
			name:  "different content order",
			a:     New([]string{"a", "b"}, nil, nil),
			b:     New([]string{"b", "a"}, nil, nil),
			equal: false,
		},
		{
			name:  "different token value",
			a:     New(nil, Extension{"colors": {"primary": "#000"}}, nil),
			b:     New(nil, Extension{"colors": {"primary": "#fff"}}, nil),
			equal: false,
		},
		{
			name:  "empty options equal missing options",
			a:     New(nil, nil, []PluginRef{{Name: "p"}}),
			b:     New(nil, nil, []PluginRef{{Name: "p", Options: map[string]any{}}}),
			equal: true,
		},
		{
			name:  "both nil",
			equal: true,
		},
		{
			name:  "one nil",
			a:     Project(),
			equal: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.equal, tt.a.Equal(tt.b))
		})
	}
}

func TestDiffNamesChangedToken(t *testing.T) {
	a := Project()
	b := New(a.Content(), Extension{"colors": {"primary": "#ea580c"}}, nil)

	diff := Diff(a, b)
	assert.Contains(t, diff, "#f97316")
	assert.Contains(t, diff, "#ea580c")
}

func TestPluginOptionsAreDeepCopies(t *testing.T) {
	input := map[string]any{
		"inner": map[string]any{"k": "v"},
		"list":  []any{"a", map[string]any{"k": "v"}},
	}
	d := New(nil, nil, []PluginRef{{Name: "p", Options: input}})
	fresh := New(nil, nil, []PluginRef{{Name: "p", Options: map[string]any{
		"inner": map[string]any{"k": "v"},
		"list":  []any{"a", map[string]any{"k": "v"}},
	}}})

	opts := d.Plugins()[0].Options
	opts["inner"].(map[string]any)["k"] = "changed"
	opts["list"].([]any)[0] = "changed"
	opts["list"].([]any)[1].(map[string]any)["k"] = "changed"

	input["inner"].(map[string]any)["k"] = "changed"
	input["list"].([]any)[1].(map[string]any)["k"] = "changed"

	assert.True(t, d.Equal(fresh), Diff(fresh, d))
}

func TestPluginOptionsCanonicalNumbers(t *testing.T) {
	d := New(nil, nil, []PluginRef{{Name: "p", Options: map[string]any{
		"int":    7,
		"uint8":  uint8(3),
		"whole":  2.0,
		"ratio":  1.5,
		"nested": map[any]any{"n": int32(4)},
		"names":  []string{"a", "b"},
	}}})

	assert.Equal(t, map[string]any{
		"int":    int64(7),
		"uint8":  int64(3),
		"whole":  int64(2),
		"ratio":  1.5,
		"nested": map[string]any{"n": int64(4)},
		"names":  []any{"a", "b"},
	}, d.Plugins()[0].Options)
}
