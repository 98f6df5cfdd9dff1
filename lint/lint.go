// Package lint reports descriptor values the build tool would ignore or
// reject. Findings are advisory; a descriptor with findings still loads.
package lint

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/agiangrant/twconfig/descriptor"
	"github.com/agiangrant/twconfig/theme"
)

// Severity of a finding.
type Severity string

const (
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Finding is a single lint result.
type Finding struct {
	Severity Severity
	Path     string
	Message  string
}

func (f Finding) String() string {
	return fmt.Sprintf("%s: %s: %s", f.Severity, f.Path, f.Message)
}

var hexColor = regexp.MustCompile(`^#([0-9a-fA-F]{3,4}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)

var colorKeywords = map[string]bool{
	"inherit": true, "currentcolor": true, "transparent": true,
	"black": true, "white": true, "none": true,
}

// colorFunctions are CSS color notations passed through verbatim.
var colorFunctions = []string{"rgb(", "rgba(", "hsl(", "hsla(", "oklch(", "oklab(", "var(", "color-mix("}

// Run checks d and returns its findings in a stable order.
func Run(d *descriptor.Descriptor) []Finding {
	var findings []Finding

	content := d.Content()
	if len(content) == 0 {
		findings = append(findings, Finding{
			Severity: SeverityWarning,
			Path:     "content",
			Message:  "no content patterns; no classes will be detected",
		})
	}
	for i, pattern := range content {
		path := fmt.Sprintf("content[%d]", i)
		if !doublestar.ValidatePattern(pattern) {
			findings = append(findings, Finding{Severity: SeverityError, Path: path, Message: fmt.Sprintf("invalid glob %q", pattern)})
			continue
		}
		if strings.HasPrefix(pattern, "/") {
			findings = append(findings, Finding{Severity: SeverityWarning, Path: path, Message: "absolute pattern; content globs are resolved from the project root"})
		}
	}

	ext := d.Extension()
	th := theme.Theme(ext)
	for _, category := range th.Categories() {
		path := "theme.extend." + category
		if !theme.Known(category) {
			findings = append(findings, Finding{Severity: SeverityWarning, Path: path, Message: "unknown theme category; the build tool ignores it"})
			continue
		}
		if category != "colors" {
			continue
		}
		for _, token := range th.Tokens(category) {
			if !ValidColor(ext[category][token]) {
				findings = append(findings, Finding{
					Severity: SeverityError,
					Path:     path + "." + token,
					Message:  fmt.Sprintf("%q is not a CSS color", ext[category][token]),
				})
			}
		}
	}

	for i, p := range d.Plugins() {
		if strings.TrimSpace(p.Name) == "" {
			findings = append(findings, Finding{Severity: SeverityError, Path: fmt.Sprintf("plugins[%d]", i), Message: "plugin has no name"})
		}
	}

	return findings
}

// ValidColor accepts hex colors, CSS color keywords and color functions.
func ValidColor(v string) bool {
	if hexColor.MatchString(v) {
		return true
	}
	lower := strings.ToLower(strings.TrimSpace(v))
	if colorKeywords[lower] {
		return true
	}
	for _, fn := range colorFunctions {
		if strings.HasPrefix(lower, fn) && strings.HasSuffix(lower, ")") {
			return true
		}
	}
	return false
}

// HasErrors reports whether any finding is an error.
func HasErrors(findings []Finding) bool {
	for _, f := range findings {
		if f.Severity == SeverityError {
			return true
		}
	}
	return false
}
