package descriptor

import (
	"fmt"
	"maps"
	"slices"
)

// fromRaw checks a decoded document against the descriptor schema.
func fromRaw(raw map[string]any) (*Descriptor, error) {
	var (
		content []string
		ext     = Extension{}
		plugins []PluginRef
		err     error
	)

	for _, key := range slices.Sorted(maps.Keys(raw)) {
		v := raw[key]
		switch key {
		case "content":
			content, err = parseContent(v)
		case "theme":
			ext, err = parseTheme(v)
		case "plugins":
			plugins, err = parsePlugins(v)
		default:
			err = unknownField(key)
		}
		if err != nil {
			return nil, err
		}
	}

	return New(content, ext, plugins), nil
}

// parseContent accepts a sequence of strings, a single string (read as a
// one-element sequence) or the {files = [...]} object form.
func parseContent(v any) ([]string, error) {
	switch c := v.(type) {
	case nil:
		return nil, nil
	case string:
		return []string{c}, nil
	case []any:
		return stringList("content", c)
	}

	m, ok := asMap(v)
	if !ok {
		return nil, malformed("content", "expected a sequence of glob patterns, got %s", typeName(v))
	}
	var files []string
	for _, key := range slices.Sorted(maps.Keys(m)) {
		switch key {
		case "files":
			list, ok := m[key].([]any)
			if !ok {
				return nil, malformed("content.files", "expected a sequence of glob patterns, got %s", typeName(m[key]))
			}
			var err error
			if files, err = stringList("content.files", list); err != nil {
				return nil, err
			}
		case "relative":
			if _, ok := m[key].(bool); !ok {
				return nil, malformed("content.relative", "expected a boolean, got %s", typeName(m[key]))
			}
		default:
			return nil, unknownField("content." + key)
		}
	}
	return files, nil
}

func stringList(path string, list []any) ([]string, error) {
	out := make([]string, 0, len(list))
	for i, item := range list {
		s, ok := item.(string)
		if !ok {
			return nil, malformed(fmt.Sprintf("%s[%d]", path, i), "expected a string, got %s", typeName(item))
		}
		out = append(out, s)
	}
	return out, nil
}

func parseTheme(v any) (Extension, error) {
	if v == nil {
		return Extension{}, nil
	}
	m, ok := asMap(v)
	if !ok {
		return nil, malformed("theme", "expected a mapping, got %s", typeName(v))
	}

	ext := Extension{}
	for _, key := range slices.Sorted(maps.Keys(m)) {
		if key != "extend" {
			return nil, unknownField("theme." + key)
		}
		if m[key] == nil {
			continue
		}
		categories, ok := asMap(m[key])
		if !ok {
			return nil, malformed("theme.extend", "expected a mapping of categories, got %s", typeName(m[key]))
		}
		for _, category := range slices.Sorted(maps.Keys(categories)) {
			path := "theme.extend." + category
			tokens, ok := asMap(categories[category])
			if !ok {
				return nil, malformed(path, "expected a mapping of tokens, got %s", typeName(categories[category]))
			}
			flat := map[string]string{}
			if err := flattenTokens(path, "", tokens, flat); err != nil {
				return nil, err
			}
			ext[category] = flat
		}
	}
	return ext, nil
}

// flattenTokens folds nested token groups into dashed names:
// {primary = {DEFAULT = "...", 600 = "..."}} gives "primary" and "primary-600".
func flattenTokens(path, prefix string, tokens map[string]any, out map[string]string) error {
	for _, key := range slices.Sorted(maps.Keys(tokens)) {
		name := key
		switch {
		case prefix != "" && key == "DEFAULT":
			name = prefix
		case prefix != "":
			name = prefix + "-" + key
		}

		switch t := tokens[key].(type) {
		case string:
			if _, dup := out[name]; dup {
				return malformed(path+"."+key, "token %q is defined more than once", name)
			}
			out[name] = t
		default:
			nested, ok := asMap(t)
			if !ok {
				return malformed(path+"."+key, "expected a string token, got %s", typeName(t))
			}
			if err := flattenTokens(path+"."+key, name, nested, out); err != nil {
				return err
			}
		}
	}
	return nil
}

func parsePlugins(v any) ([]PluginRef, error) {
	if v == nil {
		return nil, nil
	}
	list, ok := v.([]any)
	if !ok {
		return nil, malformed("plugins", "expected a sequence, got %s", typeName(v))
	}

	plugins := make([]PluginRef, 0, len(list))
	for i, item := range list {
		path := fmt.Sprintf("plugins[%d]", i)
		if name, ok := item.(string); ok {
			plugins = append(plugins, PluginRef{Name: name})
			continue
		}
		m, ok := asMap(item)
		if !ok {
			return nil, malformed(path, "expected a plugin name or mapping, got %s", typeName(item))
		}
		var ref PluginRef
		for _, key := range slices.Sorted(maps.Keys(m)) {
			switch key {
			case "name":
				name, ok := m[key].(string)
				if !ok {
					return nil, malformed(path+".name", "expected a string, got %s", typeName(m[key]))
				}
				ref.Name = name
			case "options":
				opts, ok := asMap(m[key])
				if !ok {
					return nil, malformed(path+".options", "expected a mapping, got %s", typeName(m[key]))
				}
				ref.Options = opts
			default:
				return nil, unknownField(path + "." + key)
			}
		}
		plugins = append(plugins, ref)
	}
	return plugins, nil
}

// asMap normalizes the mapping types produced by the TOML, YAML and JSON
// decoders. yaml.v3 yields map[any]any when a mapping has non-string keys.
func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			out[fmt.Sprint(k)] = val
		}
		return out, true
	}
	return nil, false
}

func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case []any:
		return "sequence"
	case map[string]any, map[any]any:
		return "mapping"
	case int, int64, uint64, float64:
		return "number"
	}
	return fmt.Sprintf("%T", v)
}
