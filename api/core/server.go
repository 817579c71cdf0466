// Package core assembles the gin router and the HTTP server.
package core

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/basingerf-felix/spilna-peremoga-website/api"
	"github.com/basingerf-felix/spilna-peremoga-website/api/common"
	handlerAdmin "github.com/basingerf-felix/spilna-peremoga-website/api/handler/admin"
	handlerContact "github.com/basingerf-felix/spilna-peremoga-website/api/handler/contact"
	handlerMedia "github.com/basingerf-felix/spilna-peremoga-website/api/handler/media"
	handlerProjects "github.com/basingerf-felix/spilna-peremoga-website/api/handler/projects"
	"github.com/basingerf-felix/spilna-peremoga-website/api/middleware"
	"github.com/basingerf-felix/spilna-peremoga-website/config"
	"github.com/basingerf-felix/spilna-peremoga-website/database/repo/contacts"
	"github.com/basingerf-felix/spilna-peremoga-website/internal/auth"
	contactSvc "github.com/basingerf-felix/spilna-peremoga-website/internal/contact"
	"github.com/basingerf-felix/spilna-peremoga-website/internal/dashboard"
	"github.com/basingerf-felix/spilna-peremoga-website/internal/gallery"
	projectsSvc "github.com/basingerf-felix/spilna-peremoga-website/internal/projects"
	"github.com/basingerf-felix/spilna-peremoga-website/storage"
)

var startTime = time.Now()

// ServerDependencies wires the services into the router.
type ServerDependencies struct {
	DB               *gorm.DB
	StorageFactory   *storage.Factory
	ProjectsService  *projectsSvc.Service
	ContactService   *contactSvc.Service
	GalleryService   *gallery.Service
	DashboardService *dashboard.Service
	ContactsRepo     *contacts.Repository
	LoginService     *auth.LoginService
	JWTService       *auth.JWTService
}

func setupRouter(deps *ServerDependencies) (*gin.Engine, func()) {
	cfg := config.Get()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	if config.IsDevelopment() {
		router.Use(gin.Logger())
	}
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.SetTrustedProxies(nil)

	router.MaxMultipartMemory = int64(cfg.UploadMaxSizeMB) << 20

	authRateLimiter := middleware.NewIPRateLimiter(cfg.RateLimitAuthRPS, cfg.RateLimitAuthBurst, cfg.RateLimitExpireTime)
	apiRateLimiter := middleware.NewIPRateLimiter(cfg.RateLimitAPIRPS, cfg.RateLimitAPIBurst, cfg.RateLimitExpireTime)
	contactRateLimiter := middleware.NewIPRateLimiter(cfg.RateLimitContactRPS, cfg.RateLimitContactBurst, cfg.RateLimitExpireTime)
	cleanup := func() {
		authRateLimiter.StopCleanup()
		apiRateLimiter.StopCleanup()
		contactRateLimiter.StopCleanup()
	}

	router.GET("/health", func(c *gin.Context) {
		checks := gin.H{
			"database": checkDatabaseHealth(deps.DB),
			"storage":  checkStorageHealth(deps.StorageFactory),
		}
		httpStatus := http.StatusOK
		for _, result := range checks {
			if s, ok := result.(string); ok && s != "ok" {
				httpStatus = http.StatusServiceUnavailable
				break
			}
		}
		c.JSON(httpStatus, gin.H{
			"status":  "ok",
			"uptime":  time.Since(startTime).Round(time.Second).String(),
			"version": config.Version,
			"checks":  checks,
		})
	})
	router.GET("/version", func(c *gin.Context) {
		common.RespondSuccess(c, gin.H{
			"version": config.Version,
			"commit":  config.CommitHash,
		})
	})

	projectsHandler := handlerProjects.NewHandler(deps.ProjectsService)
	contactHandler := handlerContact.NewHandler(deps.ContactService)
	mediaHandler := handlerMedia.NewHandler(deps.StorageFactory.GetDefault())
	galleryHandler := handlerAdmin.NewGalleryHandler(deps.GalleryService)
	messagesHandler := handlerAdmin.NewMessagesHandler(deps.ContactsRepo)
	dashboardHandler := handlerAdmin.NewDashboardHandler(deps.DashboardService)
	loginHandler := api.NewLoginHandler(deps.LoginService)

	mediaGroup := router.Group("/media")
	mediaGroup.Use(apiRateLimiter.Middleware())
	{
		mediaGroup.GET("/*path", mediaHandler.Serve)
	}

	apiGroup := router.Group("/api")
	apiGroup.Use(func(c *gin.Context) {
		c.Header("Cache-Control", "no-store")
		c.Next()
	})
	{
		authGroup := apiGroup.Group("/auth")
		authGroup.Use(authRateLimiter.Middleware())
		{
			authGroup.POST("/login", loginHandler.LoginHandlerFunc)
		}

		v1 := apiGroup.Group("/v1")
		v1.Use(apiRateLimiter.Middleware())
		{
			v1.GET("/projects", projectsHandler.ListProjects)
			v1.GET("/projects/:slug", projectsHandler.GetProject)
			v1.GET("/details/:slug", projectsHandler.GetDetail)
			v1.GET("/units", projectsHandler.ListUnits)
			v1.GET("/pages/:page/projects", projectsHandler.PageProjects)

			v1.POST("/contact", contactRateLimiter.Middleware(), contactHandler.Submit)

			adminGroup := v1.Group("/admin")
			adminGroup.Use(middleware.RequireAdmin(deps.JWTService))
			{
				adminGroup.POST("/details/:id/grid", galleryHandler.UploadGrid)
				adminGroup.DELETE("/details/:id/grid", galleryHandler.ClearGrid)
				adminGroup.POST("/details/:id/gallery", galleryHandler.UploadGallery)
				adminGroup.DELETE("/details/:id/gallery", galleryHandler.ClearGallery)

				adminGroup.GET("/messages", messagesHandler.List)
				adminGroup.GET("/dashboard", dashboardHandler.GetStats)
			}
		}
	}

	return router, cleanup
}

// StartServer builds the http.Server around the assembled router.
func StartServer(deps *ServerDependencies) (*http.Server, func()) {
	cfg := config.Get()
	router, cleanup := setupRouter(deps)

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.ServerReadTimeout,
		WriteTimeout: cfg.ServerWriteTimeout,
		IdleTimeout:  cfg.ServerIdleTimeout,
	}

	return srv, cleanup
}
