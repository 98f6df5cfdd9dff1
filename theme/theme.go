// Package theme resolves design tokens: the Tailwind default theme with a
// descriptor's extension merged on top.
package theme

import (
	"maps"
	"slices"

	"github.com/agiangrant/twconfig/descriptor"
)

// Theme maps a category to its token values.
type Theme map[string]map[string]string

// Known reports whether category is part of the default theme schema.
// Extensions under other categories are ignored by the build tool.
func Known(category string) bool {
	_, ok := knownCategories[category]
	return ok
}

// knownCategories lists the theme keys of the Tailwind schema, including
// those Default leaves empty.
var knownCategories = map[string]struct{}{
	"accentColor": {}, "animation": {}, "aria": {}, "aspectRatio": {},
	"backdropBlur": {}, "backdropBrightness": {}, "backdropContrast": {},
	"backdropGrayscale": {}, "backdropHueRotate": {}, "backdropInvert": {},
	"backdropOpacity": {}, "backdropSaturate": {}, "backdropSepia": {},
	"backgroundColor": {}, "backgroundImage": {}, "backgroundOpacity": {},
	"backgroundPosition": {}, "backgroundSize": {}, "blur": {},
	"borderColor": {}, "borderOpacity": {}, "borderRadius": {},
	"borderSpacing": {}, "borderWidth": {}, "boxShadow": {},
	"boxShadowColor": {}, "brightness": {}, "caretColor": {}, "colors": {},
	"columns": {}, "container": {}, "content": {}, "contrast": {}, "cursor": {},
	"data": {}, "divideColor": {}, "divideOpacity": {}, "divideWidth": {},
	"dropShadow": {}, "fill": {}, "flex": {}, "flexBasis": {}, "flexGrow": {},
	"flexShrink": {}, "fontFamily": {}, "fontSize": {}, "fontWeight": {},
	"gap": {}, "gradientColorStopPositions": {}, "gradientColorStops": {},
	"grayscale": {}, "gridAutoColumns": {}, "gridAutoRows": {},
	"gridColumn": {}, "gridColumnEnd": {}, "gridColumnStart": {}, "gridRow": {},
	"gridRowEnd": {}, "gridRowStart": {}, "gridTemplateColumns": {},
	"gridTemplateRows": {}, "height": {}, "hueRotate": {}, "inset": {},
	"invert": {}, "keyframes": {}, "letterSpacing": {}, "lineClamp": {},
	"lineHeight": {}, "listStyleImage": {}, "listStyleType": {}, "margin": {},
	"maxHeight": {}, "maxWidth": {}, "minHeight": {}, "minWidth": {},
	"objectPosition": {}, "opacity": {}, "order": {}, "outlineColor": {},
	"outlineOffset": {}, "outlineWidth": {}, "padding": {},
	"placeholderColor": {}, "placeholderOpacity": {}, "ringColor": {},
	"ringOffsetColor": {}, "ringOffsetWidth": {}, "ringOpacity": {},
	"ringWidth": {}, "rotate": {}, "saturate": {}, "scale": {}, "screens": {},
	"scrollMargin": {}, "scrollPadding": {}, "sepia": {}, "size": {},
	"skew": {}, "space": {}, "spacing": {}, "stroke": {}, "strokeWidth": {},
	"supports": {}, "textColor": {}, "textDecorationColor": {},
	"textDecorationThickness": {}, "textIndent": {}, "textOpacity": {},
	"textUnderlineOffset": {}, "transformOrigin": {}, "transitionDelay": {},
	"transitionDuration": {}, "transitionProperty": {},
	"transitionTimingFunction": {}, "translate": {}, "width": {},
	"willChange": {}, "zIndex": {},
}

// Resolve merges ext into base and returns the result. Tokens in ext add to
// or replace tokens in base; everything else in base is kept. base is not
// modified.
func Resolve(base Theme, ext descriptor.Extension) Theme {
	out := make(Theme, len(base)+len(ext))
	for category, tokens := range base {
		out[category] = maps.Clone(tokens)
	}
	for category, tokens := range ext {
		if out[category] == nil {
			out[category] = make(map[string]string, len(tokens))
		}
		maps.Copy(out[category], tokens)
	}
	return out
}

// ForDescriptor resolves the default theme against d's extension.
func ForDescriptor(d *descriptor.Descriptor) Theme {
	return Resolve(Default(), d.Extension())
}

// Lookup returns a single token value.
func (t Theme) Lookup(category, token string) (string, bool) {
	v, ok := t[category][token]
	return v, ok
}

// Categories returns the category names in sorted order.
func (t Theme) Categories() []string {
	return slices.Sorted(maps.Keys(t))
}

// Tokens returns the token names of a category in sorted order.
func (t Theme) Tokens(category string) []string {
	return slices.Sorted(maps.Keys(t[category]))
}
