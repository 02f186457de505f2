package http

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/iamasit07/hotseat-connect4/internal/transport/http/middleware"
	"github.com/iamasit07/hotseat-connect4/pkg/auth"
)

type RouterOptions struct {
	Games          *GameHandler
	Signer         *auth.Signer
	WebSocket      http.HandlerFunc
	AllowedOrigins []string
	StaticDir      string
	Logger         *log.Logger
}

func NewRouter(opts RouterOptions) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestLogger(opts.Logger.WithPrefix("http")), gin.Recovery())
	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(middleware.CORSMiddleware(opts.AllowedOrigins, opts.Logger.WithPrefix("cors")))

	router.GET("/healthz", opts.Games.Health)
	router.POST("/api/games", opts.Games.CreateGame)

	seat := router.Group("/api/games/:id")
	seat.Use(middleware.SeatAuth(opts.Signer))
	{
		seat.GET("", opts.Games.GetGame)
		seat.POST("/moves", opts.Games.PlayMove)
		seat.DELETE("", opts.Games.DeleteGame)
	}

	// WebSocket Route (auth handled inside the WS handler itself)
	if opts.WebSocket != nil {
		router.GET("/ws", gin.WrapF(opts.WebSocket))
	}

	if opts.StaticDir != "" {
		serveStatic(router, opts.StaticDir)
	}

	return router
}

// serveStatic serves the browser page from dir, falling back to index.html.
func serveStatic(router *gin.Engine, dir string) {
	if _, err := os.Stat(dir); err != nil {
		return
	}
	index := filepath.Join(dir, "index.html")

	router.GET("/", func(c *gin.Context) {
		c.File(index)
	})

	router.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.Status(http.StatusNotFound)
			return
		}

		path := filepath.Join(dir, filepath.Clean("/"+c.Request.URL.Path))
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			c.File(path)
			return
		}

		// For asset requests that don't exist, return 404
		if strings.HasSuffix(c.Request.URL.Path, ".css") || strings.HasSuffix(c.Request.URL.Path, ".js") {
			c.Status(http.StatusNotFound)
			return
		}

		c.File(index)
	})
}
