package main

import (
	"context"
	"log"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"go-restaurant-pos/config"
	"go-restaurant-pos/controllers"
	"go-restaurant-pos/database"
	"go-restaurant-pos/middleware"
	"go-restaurant-pos/routes"
	"go-restaurant-pos/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	ginlimiter "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

func main() {
	config.LoadConfig()

	// Collections mirror the local-storage keys of the browser app.
	productsCol := database.OpenCollection(database.Client, "product")
	invoicesCol := database.OpenCollection(database.Client, "draftInvoices")
	ordersCol := database.OpenCollection(database.Client, "ordersStore")
	archiveCol := database.OpenCollection(database.Client, "archivedOrders")
	historyCol := database.OpenCollection(database.Client, "salesHistory")
	settingsCol := database.OpenCollection(database.Client, "settings")
	usersCol := database.OpenCollection(database.Client, "user")

	events := services.NewEventBus()
	settings := services.NewSettingsStore(settingsCol)
	invoices := services.NewInvoiceStore(invoicesCol, settings)
	gate := services.NewManagerGate(invoices, settings, config.AppConfig.Defaults.ManagerPassword)
	ledger := services.NewOrderLedger(ordersCol, archiveCol, settings, invoices, events)
	history := services.NewHistoryLog(historyCol, ledger)

	// Bring the history log up to date with whatever the ledger holds.
	syncCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := history.Sync(syncCtx); err != nil {
		log.Printf("sales history sync on startup failed: %v", err)
	}
	cancel()

	router := gin.New()
	router.Use(gin.Logger())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     config.AppConfig.Server.CORSOrigins,
		AllowMethods:     []string{"POST", "GET", "PATCH", "DELETE", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "token"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	rate := limiter.Rate{
		Period: 1 * time.Minute,
		Limit:  300,
	}
	rateLimiter := ginlimiter.NewMiddleware(limiter.New(memory.NewStore(), rate))
	router.Use(rateLimiter)

	// Serve the built single-page frontend.
	router.Static("/frontend", filepath.Join(".", "frontend", "dist"))
	router.NoRoute(func(c *gin.Context) {
		path := c.Request.URL.Path
		if strings.HasPrefix(path, "/frontend") {
			c.File(filepath.Join(".", "frontend", "dist", "index.html"))
		} else {
			c.JSON(http.StatusNotFound, gin.H{"message": "Page not found"})
		}
	})

	userController := controllers.NewUserController(usersCol)
	productController := controllers.NewProductController(productsCol)
	invoiceController := controllers.NewInvoiceController(invoices, ledger, history, gate, events, productsCol)
	orderController := controllers.NewOrderController(ledger)
	reportController := controllers.NewReportController(ledger)
	historyController := controllers.NewHistoryController(history)
	settingsController := controllers.NewSettingsController(settings, gate)
	notificationController := controllers.NewNotificationController(events)

	routes.UserRoutes(router, userController)
	router.GET("/ws", notificationController.HandleWebSocket())

	router.Use(middleware.Authentication())
	routes.ProductRoutes(router, productController)
	routes.InvoiceRoutes(router, invoiceController)
	routes.OrderRoutes(router, orderController)
	routes.ReportRoutes(router, reportController)
	routes.HistoryRoutes(router, historyController)
	routes.SettingsRoutes(router, settingsController)

	if err := router.Run(":" + config.AppConfig.Server.Port); err != nil {
		log.Fatal(err)
	}
}
