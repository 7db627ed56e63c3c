package codernote

import "embed"

// EmbeddedAssets contains the default theme stylesheet served at
// /public/theme.css.
//
//go:embed embedded/*
var EmbeddedAssets embed.FS
