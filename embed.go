package playlearn

import "embed"

// EmbeddedAssets contains the enhancement script shipped with the binary:
// site.js (Escape closes the lightbox and the mobile menu).
//
//go:embed embedded/*
var EmbeddedAssets embed.FS
