package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/taskstack/user-task-api/internal/auth"
	"github.com/taskstack/user-task-api/internal/config"
	"github.com/taskstack/user-task-api/internal/database"
	"github.com/taskstack/user-task-api/internal/handlers"
	"github.com/taskstack/user-task-api/internal/repository"
	"github.com/taskstack/user-task-api/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	if cfg.DBDriver == "postgres" {
		if err := database.AddIndexes(db); err != nil {
			log.Fatalf("Failed to add indexes: %v", err)
		}
	}

	// Initialize repositories and services
	userRepo := repository.NewUserRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	userService := services.NewUserService(userRepo, auth.NewPasswordHasher())
	taskService := services.NewTaskService(taskRepo)

	// Initialize handlers
	userHandler := handlers.NewUserHandler(userService)
	taskHandler := handlers.NewTaskHandler(taskService)

	// Initialize Gin router
	r := gin.Default()

	// CORS middleware
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	r.Use(cors.New(corsConfig))

	r.GET("/", func(c *gin.Context) {
		c.String(200, "Welcome to User Tasks Management System")
	})

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "User Task API is running",
		})
	})

	// User routes
	r.POST("/signup", userHandler.Signup)
	r.POST("/login", userHandler.Login)
	r.GET("/getallusers", userHandler.ListUsers)
	r.GET("/getuser/:id", userHandler.GetUser)
	r.POST("/updateuser/:id", userHandler.UpdateUser)
	r.POST("/deleteuser/:id", userHandler.DeleteUser)

	// Task routes; reads carry parameters in the body, so they are POST
	r.POST("/addtask", taskHandler.AddTask)
	r.POST("/updatetask", taskHandler.UpdateTask)
	r.POST("/deletetask", taskHandler.DeleteTask)
	r.POST("/getalltasks", taskHandler.ListTasks)
	r.POST("/gettask", taskHandler.GetTask)
	r.POST("/getallusertasks", taskHandler.ListTasks)
	r.POST("/giveremarks", taskHandler.GiveRemarks)

	// Start server
	log.Printf("Server starting on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
