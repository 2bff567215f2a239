package folio

import "embed"

// EmbeddedAssets contains static assets shipped with the binary:
// site.css and gradient.js.
//
//go:embed embedded/*
var EmbeddedAssets embed.FS
