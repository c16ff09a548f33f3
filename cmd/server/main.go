package main

import (
	"context"
	"embed"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/obaspub/scholarsite/backend/internal/config"
	"github.com/obaspub/scholarsite/backend/pkg/logger"
)

//go:embed static/*
var staticFiles embed.FS

func main() {
	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.Log.Level)

	svc := bootstrap(cfg)

	gin.SetMode(cfg.Server.Mode)
	r := gin.New()

	registerRoutes(r, svc)
	registerStatic(r)

	addr := cfg.Server.Host + ":" + cfg.Server.Port
	server := &http.Server{
		Addr:    addr,
		Handler: r,
	}

	go func() {
		logger.Infof("Server starting on %s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("Shutting down")
	svc.shutdown()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("Forced shutdown")
	}
}

// registerStatic serves the embedded frontend build, falling back to
// index.html so client-side routes resolve on refresh.
func registerStatic(r *gin.Engine) {
	staticFS, err := fs.Sub(staticFiles, "static")
	if err != nil {
		return
	}

	serveIndex := func(c *gin.Context) {
		data, readErr := fs.ReadFile(staticFS, "index.html")
		if readErr != nil {
			c.String(404, "index.html not found")
			return
		}
		c.Data(200, "text/html; charset=utf-8", data)
	}

	r.GET("/", serveIndex)

	r.NoRoute(func(c *gin.Context) {
		path := c.Request.URL.Path[1:]

		data, readErr := fs.ReadFile(staticFS, path)
		if readErr != nil {
			serveIndex(c)
			return
		}

		contentType := "application/octet-stream"
		if len(path) > 3 {
			switch path[len(path)-3:] {
			case ".js":
				contentType = "application/javascript"
			case "css":
				contentType = "text/css"
			case "tml":
				contentType = "text/html"
			case "son":
				contentType = "application/json"
			case "svg":
				contentType = "image/svg+xml"
			case "png":
				contentType = "image/png"
			case "ico":
				contentType = "image/x-icon"
			}
		}
		c.Data(200, contentType, data)
	})
}
