package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"salonapp/handlers"
	"salonapp/utils"
)

// RegisterRoutes registers all endpoints of the salon API.
func RegisterRoutes(r *gin.Engine, bookingHandler *handlers.BookingHandler, reviewHandler *handlers.ReviewHandler, authHandler *handlers.AuthHandler) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, utils.GetHealthStatus())
	})

	api := r.Group("/api")
	{
		booking := api.Group("/booking")
		{
			booking.GET("/services", bookingHandler.GetServices)
			booking.GET("/slots", bookingHandler.GetBookedSlots)
			booking.POST("/reservations", bookingHandler.SubmitReservation)
		}

		reviews := api.Group("/reviews")
		{
			reviews.GET("", reviewHandler.ListReviews)
			reviews.POST("", reviewHandler.SubmitReview)
		}

		authGroup := api.Group("/auth")
		{
			authGroup.POST("/login", authHandler.Login)
			authGroup.GET("/session/:sessionID", authHandler.Restore)
			authGroup.DELETE("/session/:sessionID", authHandler.Logout)
		}
	}
}
