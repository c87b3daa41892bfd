package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"room-booking-backend/config"
	"room-booking-backend/controllers"
	"room-booking-backend/middleware"
	"room-booking-backend/models"
	"room-booking-backend/services"
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

func SetupRouter(
	rtc *controllers.RoomTypeController,
	bc *controllers.BookingController,
	adc *controllers.AdminController,
	auc *controllers.AuthController,
	auth *services.AuthService,
) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logger(), gin.Recovery())

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
		if err := config.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "database": "unreachable"})
			return
		}
		var roomTypes int64
		config.DB.Model(&models.RoomType{}).Count(&roomTypes)
		c.JSON(http.StatusOK, gin.H{"status": "ok", "database": "connected", "room_types": roomTypes})
	})

	api := r.Group("/api")
	{
		roomTypes := api.Group("/room-types")
		{
			roomTypes.GET("", rtc.GetRoomTypes)
			roomTypes.GET("/:id", rtc.GetRoomType)
			roomTypes.GET("/:id/availability", rtc.GetAvailability)
			roomTypes.POST("/:id/book", bc.CreateBooking)
		}

		bookings := api.Group("/bookings")
		{
			bookings.GET("", bc.GetBookings)
			bookings.GET("/by-email", bc.GetBookingsByEmail)
			bookings.GET("/:id", bc.GetBookingByID)
			bookings.DELETE("/:id/cancel", bc.CancelBooking)
		}

		api.POST("/auth/login", auc.Login)

		admin := api.Group("/admin", middleware.AdminAuth(auth))
		{
			admin.POST("/room-types", adc.CreateRoomType)
			admin.PUT("/room-types/:id", adc.UpdateRoomType)
			admin.DELETE("/room-types/:id", adc.DeleteRoomType)
		}
	}

	return r
}
