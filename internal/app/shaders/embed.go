// Package shaders provides the embedded GLSL shader sources.
package shaders

import "embed"

// FS holds the GLSL sources. Shared code lives under include/ and is pulled
// in with #include directives.
//
//go:embed *.vert *.frag include/*.glsl
var FS embed.FS

// Source file names inside FS.
const (
	DefaultVertex    = "default.vert"
	DefaultFragment  = "default.frag"
	ScreenVertex     = "screen.vert"
	ScreenFragment   = "screen.frag"
	RaymarchFragment = "raymarch.frag"
)
