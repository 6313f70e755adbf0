package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"hotel-booking-backend/controllers"
	"hotel-booking-backend/middleware"
	"hotel-booking-backend/services"
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

// SetupRouter wires controllers onto the API surface. The websocket quote
// stream and the view endpoint stay public, matching the rest of the
// read-only offer surface; everything mutating sits behind bearer auth.
func SetupRouter(
	uc *controllers.UserController,
	hc *controllers.HotelController,
	oc *controllers.OfferController,
	fc *controllers.FavoriteController,
	userSvc *services.UserService,
) *gin.Engine {
	r := gin.Default()
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

	auth := middleware.RequireAuth(userSvc)

	api := r.Group("/api")
	{
		users := api.Group("/users")
		{
			users.POST("/register", uc.Register)
			users.POST("/login", uc.Login)
			users.GET("/me", auth, uc.Me)
		}

		hotels := api.Group("/hotels")
		{
			hotels.GET("/", hc.ListHotels)
			hotels.POST("/", auth, hc.CreateHotel)
			hotels.POST("/rooms/", auth, hc.CreateRoom)

			hotels.GET("/rooms/offers/", hc.ListOffers)
			hotels.POST("/rooms/offers/", auth, hc.CreateOffer)
			hotels.POST("/rooms/offers/:id/book", auth, oc.Book)
			hotels.POST("/rooms/offers/:id/view", oc.RecordView)

			hotels.GET("/ws/rooms/offers/:id", oc.StreamQuotes)
		}

		favorites := api.Group("/favorites", auth)
		{
			favorites.GET("/", fc.List)
			favorites.POST("/:room_id", fc.Add)
			favorites.DELETE("/:room_id", fc.Remove)
		}
	}

	return r
}
