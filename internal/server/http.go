package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"path"
	"strings"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/nonx2/yuuna-server/internal/config"
	"github.com/nonx2/yuuna-server/internal/server/middlewares"
)

const apiV1 string = "/api/v1"

type Server struct {
	srv *http.Server
}

func NewServer(cfg *config.Configuration, registerHandlerFn func(router *gin.RouterGroup)) (*Server, error) {
	gin.SetMode(gin.DebugMode)
	if config.ServerModeType(cfg.Server.ServerMode) == config.ServerModeProd {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()

	// The front end runs on another origin in dev and as an OBS browser source.
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, middlewares.RequestIDHeader)
	corsCfg.ExposeHeaders = []string{middlewares.RequestIDHeader}

	engine.Use(
		middlewares.RequestID(),
		middlewares.Logger(),
		ginzap.RecoveryWithZap(zap.S().Desugar(), true),
		cors.New(corsCfg),
	)

	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if config.ServerModeType(cfg.Server.ServerMode) == config.ServerModeProd {
		if cfg.Server.StaticsFolder == "" {
			return nil, errors.New("statics folder is required in prod mode")
		}

		engine.Static("/static", cfg.Server.StaticsFolder)
		engine.StaticFile("/", path.Join(cfg.Server.StaticsFolder, "index.html"))
		engine.StaticFile("/favicon.ico", path.Join(cfg.Server.StaticsFolder, "favicon.ico"))

		engine.NoRoute(func(c *gin.Context) {
			if strings.HasPrefix(c.Request.URL.Path, "/api") {
				c.JSON(http.StatusNotFound, gin.H{"error": "API endpoint not found"})
				return
			}
			c.File(path.Join(cfg.Server.StaticsFolder, "index.html"))
		})
	}

	registerHandlerFn(engine.Group(apiV1))

	srv := &http.Server{
		Addr:    fmt.Sprintf("0.0.0.0:%d", cfg.Server.HTTPPort),
		Handler: engine,
	}

	return &Server{srv: srv}, nil
}

// Handler exposes the router, mostly for tests.
func (r *Server) Handler() http.Handler {
	return r.srv.Handler
}

// Start serves until Stop is called. A graceful shutdown is not reported as an error.
func (r *Server) Start(ctx context.Context) error {
	zap.S().Named("http").Infow("http server listening", "addr", r.srv.Addr)

	if err := r.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		zap.S().Named("http").Errorw("failed to start server", "error", err)
		return err
	}

	return nil
}

func (r *Server) Stop(ctx context.Context) error {
	if err := r.srv.Shutdown(ctx); err != nil {
		zap.S().Named("http").Errorw("server shutdown", "error", err)
		return err
	}
	return nil
}
