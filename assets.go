// Package hrmsadmin provides embedded assets for production builds.
package hrmsadmin

import "embed"

// Embedded assets for production builds.
// In dev mode (IsDev=true), templates and static files are loaded from disk
// so edits show up without a rebuild.

//go:embed all:frontend/static
var StaticFS embed.FS

//go:embed all:frontend/templates
var TemplateFS embed.FS
