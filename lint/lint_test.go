package lint

import (
	"testing"

	"github.com/agiangrant/twconfig/descriptor"
	"github.com/stretchr/testify/assert"
)

func TestRunProjectIsClean(t *testing.T) {
	assert.Empty(t, Run(descriptor.Project()))
}

func TestRun(t *testing.T) {
	tests := []struct {
		name  string
		d     *descriptor.Descriptor
		want  []Finding
		fails bool
	}{
		{
			name: "empty content",
			d:    descriptor.New(nil, nil, nil),
			want: []Finding{{Severity: SeverityWarning, Path: "content", Message: "no content patterns; no classes will be detected"}},
		},
		{
			name:  "invalid glob",
			d:     descriptor.New([]string{"./ok/*.html", "./bad/[a-.html"}, nil, nil),
			want:  []Finding{{Severity: SeverityError, Path: "content[1]", Message: `invalid glob "./bad/[a-.html"`}},
			fails: true,
		},
		{
			name: "absolute glob",
			d:    descriptor.New([]string{"/srv/app/*.html"}, nil, nil),
			want: []Finding{{Severity: SeverityWarning, Path: "content[0]", Message: "absolute pattern; content globs are resolved from the project root"}},
		},
		{
			name: "unknown category",
			d:    descriptor.New([]string{"./a/*.html"}, descriptor.Extension{"colours": {"primary": "#fff"}}, nil),
			want: []Finding{{Severity: SeverityWarning, Path: "theme.extend.colours", Message: "unknown theme category; the build tool ignores it"}},
		},
		{
			name: "standard categories",
			d: descriptor.New([]string{"./a/*.html"}, descriptor.Extension{
				"padding":            {"18": "4.5rem"},
				"margin":             {"18": "4.5rem"},
				"minWidth":           {"prose": "65ch"},
				"fill":               {"brand": "#f97316"},
				"transitionProperty": {"height": "height"},
			}, nil),
		},
		{
			name:  "bad color",
			d:     descriptor.New([]string{"./a/*.html"}, descriptor.Extension{"colors": {"primary": "orange", "ok": "#ea580c"}}, nil),
			want:  []Finding{{Severity: SeverityError, Path: "theme.extend.colors.primary", Message: `"orange" is not a CSS color`}},
			fails: true,
		},
		{
			name:  "unnamed plugin",
			d:     descriptor.New([]string{"./a/*.html"}, nil, []descriptor.PluginRef{{Name: " "}}),
			want:  []Finding{{Severity: SeverityError, Path: "plugins[0]", Message: "plugin has no name"}},
			fails: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Run(tt.d)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.fails, HasErrors(got))
		})
	}
}

func TestValidColor(t *testing.T) {
	for _, v := range []string{"#f97316", "#FFF", "#ffff", "#f9731680", "transparent", "currentColor", "rgb(0 0 0)", "oklch(70% 0.1 50)", "var(--primary)"} {
		assert.True(t, ValidColor(v), v)
	}
	for _, v := range []string{"", "f97316", "#f9731", "#ggg", "orange", "rgb(0 0 0"} {
		assert.False(t, ValidColor(v), v)
	}
}
