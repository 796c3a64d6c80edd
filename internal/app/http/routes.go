package routes

import (
	"log/slog"
	"net/http"
	"time"

	authapi "sportsclub-app/internal/api/auth"
	"sportsclub-app/internal/api/users"
	"sportsclub-app/internal/app/http/middleware"
	"sportsclub-app/internal/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Deps struct {
	Log        *slog.Logger
	CORSOrigin string
	Verify     *services.VerificationService
	Auth       *services.AuthService
}

// NewRouter builds the engine with middleware and all routes registered.
func NewRouter(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.AccessLog(d.Log))

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{d.CORSOrigin},
		AllowMethods:     []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterRoutes(r, d)
	return r
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authH := authapi.NewHandler(d.Verify, d.Auth)
	usersH := users.NewHandler(d.Auth)

	public := r.Group("/user")
	public.Use(middleware.SanitizeAndCleanInputMiddleware())

	public.POST("/email/request/verify/code", authH.RequestVerifyCode)
	public.POST("/email/verify/auth/code", authH.VerifyAuthCode)
	public.POST("/email/register", authH.Register)
	public.POST("/email/login", authH.Login)
	public.POST("/email/request/password/reset", authH.RequestPasswordReset)
	public.POST("/password/reset", authH.ResetPassword)
	public.POST("/token/refresh", authH.Refresh)

	// Authenticated
	auth := r.Group("/user")
	auth.Use(middleware.AuthMiddleware(d.Auth), middleware.SanitizeAndCleanInputMiddleware())
	auth.GET("/me", usersH.GetCurrentUser)
	auth.PATCH("/me", usersH.UpdateCurrentUser)
}
