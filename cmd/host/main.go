package main

import (
	_ "billdesk/api/swagger" // swagger docs
	"billdesk/internal/command"
	"billdesk/internal/database"
	"billdesk/internal/handler"
	"billdesk/internal/middleware"
	"billdesk/internal/repository"
	"billdesk/internal/service"
	"billdesk/internal/websocket"
	"context"
	"log"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           BillDesk Host API
// @version         1.0
// @description     Command endpoint and auth for the BillDesk invoicing front end.
// @host            localhost:8080
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := godotenv.Load("configs/.env"); err != nil {
		log.Println("No configs/.env file found or error loading it")
	}

	dbHost := os.Getenv("DB_HOST")
	dbPort := os.Getenv("DB_PORT")
	dbUser := os.Getenv("DB_USER")
	dbPassword := os.Getenv("DB_PASSWORD")
	dbName := os.Getenv("DB_NAME")
	dbSslMode := os.Getenv("DB_SSLMODE")

	if dbHost == "" {
		dbHost = "localhost"
	}
	if dbPort == "" {
		dbPort = "5432"
	}
	if dbUser == "" {
		dbUser = "postgres"
	}
	if dbPassword == "" {
		dbPassword = "postgres"
	}
	if dbName == "" {
		dbName = "billdesk"
	}
	if dbSslMode == "" {
		dbSslMode = "disable"
	}

	dsn := "postgres://" + dbUser + ":" + dbPassword + "@" + dbHost + ":" + dbPort + "/" + dbName + "?sslmode=" + dbSslMode

	db, err := database.NewConnection(dsn)
	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
	}
	log.Println("Connected to PostgreSQL successfully.")

	// Set up WebSocket Hub
	wsHub := websocket.NewHub()
	go wsHub.Run()

	// Set up dependencies (Repository -> Service -> Dispatcher)
	txManager := repository.NewTransactionManager(db)
	customerRepo := repository.NewCustomerRepository(db)
	productRepo := repository.NewProductRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	templateRepo := repository.NewTemplateRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)
	payrollRepo := repository.NewPayrollRepository(db)
	auditRepo := repository.NewAuditRepository(db)
	userRepo := repository.NewUserRepository(db)

	auditService := service.NewAuditService(auditRepo)
	customerService := service.NewCustomerService(customerRepo, auditService)
	productService := service.NewProductService(productRepo, auditService)
	invoiceService := service.NewInvoiceService(invoiceRepo, customerRepo, txManager, auditService)
	dashboardService := service.NewDashboardService(invoiceRepo, payrollRepo)
	settingsService := service.NewSettingsService(settingsRepo, auditService)
	templateService := service.NewTemplateService(templateRepo, settingsService, auditService)
	employeeService := service.NewEmployeeService(employeeRepo, auditService)
	payrollService := service.NewPayrollService(payrollRepo, employeeRepo, auditService)
	userService := service.NewUserService(userRepo, auditService)
	exportService := service.NewExportService(invoiceRepo, settingsRepo)

	if err := userService.EnsureDefaultAdmin(context.Background()); err != nil {
		log.Printf("WARNING: failed to seed default admin: %v", err)
	}

	dispatcher := command.NewDispatcher(command.Services{
		Customers: customerService,
		Products:  productService,
		Invoices:  invoiceService,
		Dashboard: dashboardService,
		Settings:  settingsService,
		Templates: templateService,
		Employees: employeeService,
		Payroll:   payrollService,
		Audit:     auditService,
		Users:     userService,
		Export:    exportService,
	}, wsHub)

	// Initialize Handlers
	authHandler := handler.NewAuthHandler(userService)
	commandHandler := handler.NewCommandHandler(dispatcher)
	auditHandler := handler.NewAuditHandler(auditService)

	// Set up Gin Router
	router := gin.Default()

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"http://localhost:5173", "http://127.0.0.1:5173", "tauri://localhost"}
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	router.Use(cors.New(corsConfig))

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "OK"})
	})

	// WebSocket endpoint
	router.GET("/ws", func(c *gin.Context) {
		websocket.ServeWs(wsHub, c, middleware.GetJWTSecret())
	})

	// Register API Routes
	authHandler.RegisterRoutes(router.Group(""))
	commandHandler.RegisterRoutes(router.Group(""))
	auditHandler.RegisterRoutes(router.Group(""))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server listening on :%s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
