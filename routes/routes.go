package routes

import (
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"glowbook-backend/config"
	"glowbook-backend/controllers"
	"glowbook-backend/utils"
)

// Controllers bundles everything the router mounts.
type Controllers struct {
	Auth      *controllers.AuthController
	Bookings  *controllers.BookingController
	Staff     *controllers.StaffController
	Services  *controllers.ServiceController
	Customers *controllers.CustomerController
	Records   *controllers.RecordsController
}

func SetupRouter(ctrl Controllers) *gin.Engine {
	r := gin.Default()

	origins := []string{"http://localhost:3000"}
	if env := os.Getenv("CORS_ORIGINS"); env != "" {
		origins = strings.Split(env, ",")
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	auth := r.Group("/auth")
	{
		auth.POST("/login", ctrl.Auth.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", ctrl.Auth.Me)
	}

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware())
	{
		// Booking routes
		bookings := api.Group("/bookings")
		{
			bookings.POST("", ctrl.Bookings.CreateBooking)
			bookings.GET("", ctrl.Bookings.GetBookings)
			bookings.PUT("/:id/status", ctrl.Bookings.UpdateBookingStatus)
		}

		// Staff routes
		staff := api.Group("/staff")
		{
			staff.POST("", ctrl.Staff.CreateStaff)
			staff.GET("", ctrl.Staff.GetStaff)
			staff.PUT("/:id", ctrl.Staff.UpdateStaff)
			staff.PUT("/:id/services", ctrl.Staff.SyncServices)
		}

		// Service routes
		services := api.Group("/services")
		{
			services.POST("", ctrl.Services.CreateService)
			services.GET("", ctrl.Services.GetServices)
			services.PUT("/:id", ctrl.Services.UpdateService)
		}

		// Customer routes
		api.GET("/customers/:userId", ctrl.Customers.GetCustomerDetails)

		// CRM record routes
		records := api.Group("/customer-records")
		{
			records.GET("/profile/:userId", ctrl.Records.GetProfile)
			records.POST("/profile", ctrl.Records.UpsertProfile)
			records.GET("/treatments/:bookingId", ctrl.Records.GetTreatment)
			records.POST("/treatments", ctrl.Records.UpsertTreatment)
		}
	}

	return r
}
