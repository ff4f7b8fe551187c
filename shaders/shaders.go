// Package shaders embeds the built-in WGSL material sources.
package shaders

import _ "embed"

//go:embed wave.wgsl
var WaveWGSL string

//go:embed creative.wgsl
var CreativeWGSL string
