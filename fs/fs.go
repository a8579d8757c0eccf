// Package fs embeds the static files the app needs at runtime.
package fs

import "embed"

//go:embed migrations
var FS embed.FS
