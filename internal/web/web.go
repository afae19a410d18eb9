// Package web embeds the site's static assets.
package web

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed static/*.js static/*.css static/*.svg
var staticFS embed.FS

// Static returns the asset tree rooted at the static directory.
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		// The directory is embedded at build time.
		panic(err)
	}
	return sub
}

// FileServer serves the embedded assets; mount it under /static/.
func FileServer() http.Handler {
	return http.FileServer(http.FS(Static()))
}
