package router

import (
	"github.com/dideey/alx-backend-user-data/internal/auth"
	"github.com/dideey/alx-backend-user-data/internal/config"
	"github.com/dideey/alx-backend-user-data/internal/handler"
	"github.com/dideey/alx-backend-user-data/internal/middleware"
	"github.com/dideey/alx-backend-user-data/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// SetupRouter configures the Gin engine and wires the auth service and the
// Basic-Auth guarded API group.
func SetupRouter(cfg *config.Config, db *gorm.DB, logger zerolog.Logger) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.New()
	r.Use(middleware.RequestLogger(logger), gin.Recovery())

	users := store.NewUserStore(db)
	svc := auth.NewService(users, cfg.Security.BcryptCost)
	authHandler := handler.NewAuthHandler(svc)

	// session-cookie routes
	r.GET("/", handler.Index)
	r.POST("/users", authHandler.Register)
	r.POST("/sessions", authHandler.Login)
	r.DELETE("/sessions", authHandler.Logout)
	r.GET("/sessions", authHandler.Profile)

	// API routes guarded by Basic-Auth, minus the excluded paths
	basic := auth.NewBasicAuth(users)
	api := r.Group("/api/v1")
	api.Use(
		middleware.RequireAuth(basic, cfg.Auth.ExcludedPaths),
		middleware.Audit(db),
	)
	api.GET("/status", handler.Status)
	api.GET("/users/me", handler.GetMe)

	return r
}
