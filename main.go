package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"glowbook-backend/config"
	"glowbook-backend/controllers"
	"glowbook-backend/models"
	"glowbook-backend/routes"
	"glowbook-backend/scheduling"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("connect database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.Salon{},
		&models.SubscriptionPlan{},
		&models.Subscription{},
		&models.User{},
		&models.Staff{},
		&models.Service{},
		&models.ServiceAssignment{},
		&models.Booking{},
		&models.CustomerSalonProfile{},
		&models.TreatmentRecord{},
	); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	locks := scheduling.NewTenantLocks()
	quota := scheduling.NewQuotaLedger(db)
	conflicts := scheduling.NewConflictChecker(db)
	directory := scheduling.NewDirectory(db, quota, locks)
	bookings := scheduling.NewBookingService(db, conflicts, directory, locks)
	enrichment := scheduling.NewEnrichment(db)
	records := scheduling.NewRecords(db)

	sweeper := scheduling.NewSweeper(db)
	sweeper.StartScheduler()

	r := routes.SetupRouter(routes.Controllers{
		Auth:      controllers.NewAuthController(db),
		Bookings:  controllers.NewBookingController(bookings),
		Staff:     controllers.NewStaffController(directory),
		Services:  controllers.NewServiceController(directory),
		Customers: controllers.NewCustomerController(enrichment),
		Records:   controllers.NewRecordsController(records),
	})
	printRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r.Run(":" + port)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
