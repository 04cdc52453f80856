package folio

import "embed"

// EmbeddedAssets contains static assets shipped with the engine:
// placeholder.svg and folio.js.
//
//go:embed embedded/*
var EmbeddedAssets embed.FS
