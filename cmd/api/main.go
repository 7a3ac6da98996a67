package main

import (
	"log"

	_ "libraryapi/api/swagger" // swagger docs
	"libraryapi/internal/config"
	"libraryapi/internal/database"
	"libraryapi/internal/handler"
	"libraryapi/internal/middleware"
	"libraryapi/internal/repository"
	"libraryapi/internal/service"
	"libraryapi/internal/websocket"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Library API
// @version         1.0
// @description     This is an API for managing a library catalog (authors, books, publishers) with role and claim based authorization.
// @host            localhost:8080
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	db, err := database.NewConnection(cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
	}
	log.Println("Connected to PostgreSQL successfully.")

	if err := database.SeedRoles(db); err != nil {
		log.Fatalf("Role seeding failed: %v", err)
	}

	// Set up WebSocket Hub
	wsHub := websocket.NewHub()
	go wsHub.Run()

	// Set up dependencies (Repository -> Service -> Handler)
	txManager := repository.NewTransactionManager(db)
	authorRepo := repository.NewAuthorRepository(db)
	bookRepo := repository.NewBookRepository(db)
	publisherRepo := repository.NewPublisherRepository(db)
	bookPublisherRepo := repository.NewBookPublisherRepository(db)
	userRepo := repository.NewUserRepository(db)

	tokenService := service.NewTokenService(cfg.JWT, userRepo)
	authorService := service.NewAuthorService(authorRepo, wsHub)
	bookService := service.NewBookService(bookRepo, authorRepo, wsHub)
	publisherService := service.NewPublisherService(publisherRepo, wsHub)
	bookPublisherService := service.NewBookPublisherService(bookPublisherRepo, txManager, wsHub)
	accountService := service.NewAccountService(userRepo, tokenService)
	manageUserService := service.NewManageUserService(userRepo, txManager)

	// Initialize Handlers
	authorHandler := handler.NewAuthorHandler(authorService)
	bookHandler := handler.NewBookHandler(bookService)
	publisherHandler := handler.NewPublisherHandler(publisherService)
	bookPublisherHandler := handler.NewBookPublisherHandler(bookPublisherService)
	accountHandler := handler.NewAccountHandler(accountService)
	manageUserHandler := handler.NewManageUserHandler(manageUserService)

	// Set up Gin Router
	router := gin.Default()

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	router.Use(cors.New(corsConfig))

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "OK"})
	})

	// WebSocket endpoint for catalog change events
	router.GET("/ws", func(c *gin.Context) {
		websocket.ServeWs(wsHub, c, cfg.JWT.Secret)
	})

	// Register API Routes
	authn := middleware.Authenticate(cfg.JWT)
	api := router.Group("/libraryApi")
	authorHandler.RegisterRoutes(api, authn)
	bookHandler.RegisterRoutes(api, authn)
	publisherHandler.RegisterRoutes(api, authn)
	bookPublisherHandler.RegisterRoutes(api, authn)
	accountHandler.RegisterRoutes(api, authn)
	manageUserHandler.RegisterRoutes(api, authn)

	log.Printf("Server listening on :%s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
