// Package twconfig exposes the project's Tailwind configuration descriptor.
//
// The descriptor lists the content globs the Tailwind CLI scans for class
// names, the theme extension merged over the default theme, and the plugin
// list. It is built once and never modified:
//
//	cfg := twconfig.Config()
//	cfg.Content()   // ./templates/**/*.html, ...
//	twconfig.Theme(cfg).Lookup("colors", "primary")
//
// Files on disk (twconfig.toml, .yaml or .json) are read with Load.
package twconfig

import (
	"github.com/agiangrant/twconfig/descriptor"
	"github.com/agiangrant/twconfig/theme"
)

// Descriptor is a re-export of descriptor.Descriptor for consumer convenience.
type Descriptor = descriptor.Descriptor

// Extension is a re-export of descriptor.Extension.
type Extension = descriptor.Extension

// PluginRef is a re-export of descriptor.PluginRef.
type PluginRef = descriptor.PluginRef

// ErrMalformedConfiguration is returned by Load for documents that do not
// match the descriptor schema.
var ErrMalformedConfiguration = descriptor.ErrMalformedConfiguration

// Config returns the project descriptor.
func Config() *Descriptor {
	return descriptor.Project()
}

// Load reads a descriptor file.
func Load(path string) (*Descriptor, error) {
	return descriptor.Load(path)
}

// Theme returns the default theme with d's extension merged in.
func Theme(d *Descriptor) theme.Theme {
	return theme.ForDescriptor(d)
}
