package api

import (
	"database/sql"
	"log"
	stdhttp "net/http"
	"time"

	intconfig "busbooking/internal/config"
	"busbooking/internal/domain"
	h "busbooking/internal/http/handlers"
	"busbooking/internal/http/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env, db *sql.DB) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     env.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization", "Accept", "Origin"},
		AllowCredentials: true,
		MaxAge:           24 * time.Hour,
	}))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	secret := []byte(env.JWTSecret)
	authH := h.AuthHandler{DB: db, JWTSecret: secret}
	tripH := h.TripHandler{DB: db}
	bookingH := h.BookingHandler{DB: db}
	systemH := h.SystemHandler{DB: db}

	api := r.Group("/api")
	{
		api.GET("/health", systemH.Health)
		api.GET("/db-check", systemH.DBCheck)
		api.POST("/seed", systemH.Seed)

		auth := api.Group("/auth")
		auth.POST("/register", authH.Register)
		auth.POST("/login", authH.Login)
		auth.GET("/me", middleware.Auth(secret), authH.Me)

		trips := api.Group("/trips")
		trips.GET("", tripH.Search)
		trips.GET("/:id/seats", tripH.TakenSeats)
		trips.POST("", middleware.Auth(secret), middleware.RequireRoles(domain.RoleOperator), tripH.Publish)

		bookings := api.Group("/bookings")
		bookings.Use(middleware.Auth(secret))
		bookings.GET("", bookingH.List)
		bookings.POST("", bookingH.Create)
		bookings.DELETE("/:id", bookingH.Delete)
		bookings.GET("/:id/e-ticket", bookingH.ETicket)
	}

	return r
}
