package main

import (
	"log"
	"net/http"
	"os"

	"autohub/config"
	"autohub/handlers"
	"autohub/middleware"
	"autohub/models"
	"autohub/repositories"
	"autohub/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	// Initialize database
	db := config.InitDB()

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	vehicleRepo := repositories.NewVehicleRepository(db)
	accessoryRepo := repositories.NewAccessoryRepository(db)
	productRepo := repositories.NewProductRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo)
	vehicleService := services.NewVehicleService(vehicleRepo)
	accessoryService := services.NewAccessoryService(accessoryRepo)
	productService := services.NewProductService(productRepo)
	uploadService := services.NewUploadService(config.UploadDir())

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(authService)
	vehicleHandler := handlers.NewVehicleHandler(vehicleService)
	accessoryHandler := handlers.NewAccessoryHandler(accessoryService)
	productHandler := handlers.NewProductHandler(productService)
	uploadHandler := handlers.NewUploadHandler(uploadService)

	// Setup router
	router := gin.Default()

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	// Uploaded listing images
	router.Static("/uploads", config.UploadDir())

	// API routes
	v1 := router.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		// Catalog reads (public, identity resolved when a token is present)
		catalog := v1.Group("/")
		catalog.Use(middleware.OptionalAuthMiddleware())
		{
			catalog.GET("/vehicles", vehicleHandler.ListVehicles)
			catalog.GET("/vehicles/:id", vehicleHandler.GetVehicle)
			catalog.GET("/accessories", accessoryHandler.ListAccessories)
			catalog.GET("/accessories/:id", accessoryHandler.GetAccessory)
			catalog.GET("/products", productHandler.ListProducts)
			catalog.GET("/products/:id", productHandler.GetProduct)
		}

		// Protected routes
		protected := v1.Group("/")
		protected.Use(middleware.AuthMiddleware())
		{
			// Profile
			protected.GET("/profile", authHandler.GetProfile)
			protected.PUT("/profile", authHandler.UpdateProfile)

			// Submissions and images (any authenticated role)
			protected.POST("/vehicles", vehicleHandler.CreateVehicle)
			protected.POST("/vehicles/images", uploadHandler.UploadImages)

			// Review and editing tools
			staff := protected.Group("/")
			staff.Use(middleware.RequireRole(models.RoleStaff, models.RoleAdmin))
			{
				staff.PATCH("/vehicles/:id/status", vehicleHandler.ChangeStatus)
				staff.PUT("/vehicles/:id", vehicleHandler.UpdateVehicle)
				staff.DELETE("/vehicles/:id", vehicleHandler.DeleteVehicle)

				staff.POST("/accessories", accessoryHandler.CreateAccessory)
				staff.PUT("/accessories/:id", accessoryHandler.UpdateAccessory)
				staff.DELETE("/accessories/:id", accessoryHandler.DeleteAccessory)

				staff.POST("/products", productHandler.CreateProduct)
				staff.PUT("/products/:id", productHandler.UpdateProduct)
				staff.DELETE("/products/:id", productHandler.DeleteProduct)
			}

			// User management
			admin := protected.Group("/")
			admin.Use(middleware.RequireRole(models.RoleAdmin))
			{
				admin.GET("/users", userHandler.ListUsers)
				admin.PUT("/users/:id/role", userHandler.UpdateUserRole)
				admin.DELETE("/users/:id", userHandler.DeleteUser)
			}
		}
	}

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, router))
}
