package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"stayfinder-backend/controllers"
	"stayfinder-backend/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter wires the controllers. Public routes cover browsing and
// search; booking and host routes require a session.
func SetupRouter(
	ac *controllers.AuthController,
	lc *controllers.ListingController,
	hc *controllers.HostController,
	bc *controllers.BookingController,
	sc *controllers.SearchController,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/signup", ac.SignUp)
			auth.POST("/login", ac.Login)
			auth.GET("/me", middleware.RequireAuth(), ac.Me)
		}

		listings := api.Group("/listings")
		{
			// Fixed paths must precede /:id.
			listings.GET("", lc.Browse)
			listings.GET("/markers", lc.Markers)
			listings.GET("/:id", lc.Detail)
			listings.GET("/:id/quote", lc.Quote)
		}

		search := api.Group("/search/sessions")
		{
			search.POST("", sc.OpenSession)
			search.PATCH("/:id", sc.UpdateSession)
			search.POST("/:id/clear", sc.ClearSession)
			search.GET("/:id/results", sc.SessionResults)
			search.DELETE("/:id", sc.CloseSession)
		}

		bookings := api.Group("/bookings", middleware.RequireAuth())
		{
			bookings.POST("", bc.CreateBooking)
			bookings.GET("", bc.MyBookings)
			bookings.GET("/:id", bc.BookingDetails)
		}

		host := api.Group("/host/listings", middleware.RequireAuth())
		{
			host.GET("", hc.MyListings)
			host.POST("", hc.CreateListing)
			host.PUT("/:id", hc.UpdateListing)
			host.PATCH("/:id/active", hc.SetActive)
			host.DELETE("/:id", hc.DeleteListing)
		}
	}

	return r
}
