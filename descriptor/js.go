package descriptor

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"slices"
)

// WriteJS writes the descriptor as a tailwind.config.js module that the
// Tailwind CLI loads directly. Plugins are emitted as require() calls.
func WriteJS(w io.Writer, d *Descriptor) error {
	b := bufio.NewWriter(w)

	b.WriteString("/** @type {import('tailwindcss').Config} */\n")
	b.WriteString("module.exports = {\n")

	b.WriteString("  content: [\n")
	for _, pattern := range d.content {
		fmt.Fprintf(b, "    %s,\n", jsString(pattern))
	}
	b.WriteString("  ],\n")

	b.WriteString("  theme: {\n")
	b.WriteString("    extend: {\n")
	for _, category := range slices.Sorted(maps.Keys(d.extension)) {
		fmt.Fprintf(b, "      %s: {\n", jsString(category))
		tokens := d.extension[category]
		for _, token := range slices.Sorted(maps.Keys(tokens)) {
			fmt.Fprintf(b, "        %s: %s,\n", jsString(token), jsString(tokens[token]))
		}
		b.WriteString("      },\n")
	}
	b.WriteString("    },\n")
	b.WriteString("  },\n")

	if len(d.plugins) == 0 {
		b.WriteString("  plugins: [],\n")
	} else {
		b.WriteString("  plugins: [\n")
		for _, p := range d.plugins {
			if len(p.Options) == 0 {
				fmt.Fprintf(b, "    require(%s),\n", jsString(p.Name))
				continue
			}
			opts, err := json.Marshal(p.Options)
			if err != nil {
				return fmt.Errorf("plugin %s options: %w", p.Name, err)
			}
			fmt.Fprintf(b, "    require(%s)(%s),\n", jsString(p.Name), opts)
		}
		b.WriteString("  ],\n")
	}

	b.WriteString("};\n")
	return b.Flush()
}

// jsString quotes s as a JavaScript string literal. JSON string syntax is a
// subset of JavaScript's.
func jsString(s string) string {
	out, _ := json.Marshal(s)
	return string(out)
}
