package http

import (
	"net/http"
	"os"
	"path"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/iamasit07/4-in-a-row/brain/internal/config"
	"github.com/iamasit07/4-in-a-row/brain/internal/transport/http/middleware"
)

// NewRouter wires the move API, an optional websocket handler and the
// browser client's static files.
func NewRouter(cfg *config.Config, moves *MoveHandler, ws gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestLogger(), gin.Recovery())
	router.Use(middleware.CORSMiddleware(cfg))

	router.GET("/health", Health)
	router.POST("/api/move", moves.Move)
	router.POST("/api/analyze", moves.Analyze)

	if ws != nil {
		router.GET("/ws", ws)
	}

	// Serve the browser client
	if info, err := os.Stat(cfg.StaticDir); cfg.StaticDir != "" && err == nil && info.IsDir() {
		router.NoRoute(staticFiles(cfg.StaticDir))
	}

	return router
}

func staticFiles(dir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			c.Status(http.StatusNotFound)
			return
		}

		rel := path.Clean("/" + c.Request.URL.Path)
		if rel == "/" {
			rel = "/index.html"
		}
		file := filepath.Join(dir, filepath.FromSlash(rel))

		if info, err := os.Stat(file); err == nil && !info.IsDir() {
			c.File(file)
			return
		}
		c.Status(http.StatusNotFound)
	}
}
