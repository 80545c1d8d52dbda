package routes

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/bizbudz/bizbudz/config"
	"github.com/bizbudz/bizbudz/controllers"
	"github.com/bizbudz/bizbudz/middleware"
	"github.com/bizbudz/bizbudz/store"
	"github.com/bizbudz/bizbudz/utils"
)

// SetupRouter wires routes, middlewares, and controllers.
func SetupRouter(st store.Store, catalog store.Catalog) *gin.Engine {
	// Load config and set Gin mode from configuration
	cfg := config.Get()
	switch strings.ToLower(cfg.GinMode) {
	case "debug":
		gin.SetMode(gin.DebugMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	// Replace default console logger with file-based zap logger
	gl, err := utils.NewRollingFileLogger(cfg.GinPath, cfg.LogLevel, cfg.LogMaxSizeMB, cfg.LogMaxBackups, cfg.LogMaxAgeDays, cfg.LogCompress)
	if err == nil {
		r.Use(utils.Ginzap(gl, time.RFC3339, true))
		r.Use(utils.RecoveryWithZap(gl, false))
	} else {
		// fallback to default recovery if logger failed to init
		r.Use(gin.Recovery())
	}

	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	if len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.AllowedOrigins
	}

	r.Use(cors.New(corsCfg))
	// Record PV after each request
	r.Use(middleware.PageViewRecorder(st))

	r.Static("/static", "./static")

	r.GET("/", func(c *gin.Context) {
		c.File("./static/index.html")
	})

	r.GET("/health", func(ctx *gin.Context) {
		utils.Success(ctx, gin.H{"status": "ok"})
	})

	authController := controllers.NewAuthController(st)
	noteController := controllers.NewNoteController(st)
	sessionController := controllers.NewSessionController(st)
	statsController := controllers.NewStatsController(st)
	catalogController := controllers.NewCatalogController(catalog)

	api := r.Group("/api/v1")

	authGroup := api.Group("/auth")
	authGroup.Use(middleware.RateLimitMiddleware())
	authGroup.POST("/register", authController.Register)
	authGroup.POST("/login", authController.Login)
	authGroup.GET("/oauth/:provider/login", authController.OAuthRedirect)
	authGroup.GET("/oauth/:provider/callback", authController.OAuthCallback)
	authGroup.POST("/logout", middleware.AuthRequired(), authController.Logout)
	authGroup.GET("/me", middleware.AuthRequired(), authController.Me)

	// Public feed and schedule
	api.GET("/notes", noteController.ListNotes)
	api.GET("/notes/:id", noteController.GetNote)
	api.GET("/notes/:id/comments", noteController.ListComments)
	api.GET("/sessions", sessionController.ListSessions)
	api.GET("/sessions/:id", sessionController.GetSession)
	api.GET("/users/:id/likes", noteController.ListUserLikes)
	api.GET("/users/:id/stats", statsController.GetUserStats)

	// Public platform stats and catalog
	api.GET("/stats", statsController.GetStats)
	api.GET("/catalog/courses", catalogController.ListCourses)
	api.GET("/catalog/quizzes", catalogController.ListQuizzes)
	api.GET("/catalog/materials", catalogController.ListMaterials)

	protected := api.Group("")
	protected.Use(middleware.AuthRequired(), middleware.RateLimitMiddleware())
	protected.POST("/notes", noteController.CreateNote)
	protected.POST("/notes/:id/like", noteController.LikeNote)
	protected.DELETE("/notes/:id/like", noteController.UnlikeNote)
	protected.POST("/notes/:id/comments", noteController.CreateComment)
	protected.POST("/sessions/:id/signup", sessionController.SignUp)
	protected.DELETE("/sessions/:id/signup", sessionController.CancelSignup)
	protected.GET("/users/me/signups", sessionController.ListMySignups)
	protected.PATCH("/users/me/stats", statsController.UpdateMyStats)

	r.NoRoute(func(ctx *gin.Context) {
		path := ctx.Request.URL.Path
		if strings.HasPrefix(path, "/api/") {
			utils.Error(ctx, http.StatusNotFound, 40400, "api route not found")
			return
		}
		if strings.HasPrefix(path, "/static/") {
			ctx.JSON(http.StatusNotFound, gin.H{"message": "static asset not found"})
			return
		}
		// Everything else falls back to the SPA entry point.
		ctx.Status(http.StatusOK)
		ctx.File("./static/index.html")
	})

	return r
}
