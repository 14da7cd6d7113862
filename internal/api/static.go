package api

import (
	"io/fs"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"orgboard/internal/middleware"
	"orgboard/web"
)

// registerStaticRoutes mounts the embedded client as the NoRoute fallback.
// Unknown /api paths stay JSON 404s; any other unknown path falls back to
// index.html so client-side routing keeps working after a reload.
func registerStaticRoutes(r *gin.Engine) error {
	dist, err := web.FS()
	if err != nil {
		return err
	}

	index, err := fs.ReadFile(dist, "index.html")
	if err != nil {
		return err
	}

	fileServer := http.FileServer(http.FS(dist))

	r.NoRoute(func(c *gin.Context) {
		path := c.Request.URL.Path
		if path == "/api" || strings.HasPrefix(path, "/api/") {
			middleware.NotFoundHandler(c)
			return
		}

		trimmed := strings.TrimPrefix(path, "/")
		if trimmed != "" {
			if f, openErr := dist.Open(trimmed); openErr == nil {
				_ = f.Close()
				fileServer.ServeHTTP(c.Writer, c.Request)
				return
			}
		}

		c.Data(http.StatusOK, "text/html; charset=utf-8", index)
	})

	return nil
}
