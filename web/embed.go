package web

import (
	"embed"
	"io/fs"
)

// staticFS embeds the client assets (web/dist) into the Go binary so the
// application serves its frontend without external dependencies.
//
//go:embed all:dist
var staticFS embed.FS

// FS returns the embedded filesystem containing the client static files,
// rooted at the dist directory.
func FS() (fs.FS, error) {
	return fs.Sub(staticFS, "dist")
}
