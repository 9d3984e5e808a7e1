package routes

import (
	"log"

	"dinkys-shop/controllers"
	"dinkys-shop/middleware"
	"dinkys-shop/models"
	"dinkys-shop/services"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func SetupRoutes(router *gin.Engine) {
	blob, err := models.NewCloudinaryService()
	if err != nil {
		log.Println("Blob storage disabled:", err)
		blob = nil
	}

	emailService, err := models.NewEmailService()
	if err != nil {
		log.Println("Email disabled:", err)
		emailService = nil
	}

	authCtrl := controllers.NewAuthController()
	productCtrl := controllers.NewProductController(services.NewProductService(blob))
	categoryCtrl := controllers.NewCategoryController()
	cartCtrl := controllers.NewCartController()
	checkoutCtrl := controllers.NewCheckoutController(emailService)
	uploadCtrl := controllers.NewUploadController(blob)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	router.POST("/auth/signup", authCtrl.Signup)
	router.POST("/auth/login", authCtrl.Login)

	router.GET("/categories", categoryCtrl.ListCategories)
	router.GET("/products", productCtrl.ListProducts)
	router.GET("/products/:slug", productCtrl.GetProductBySlug)

	router.GET("/cart", cartCtrl.GetCart)
	router.DELETE("/cart", cartCtrl.ClearCart)
	router.POST("/cart/items", cartCtrl.AddItem)
	router.PATCH("/cart/items", cartCtrl.UpdateItem)
	router.DELETE("/cart/items", cartCtrl.RemoveItem)

	router.POST("/checkout", checkoutCtrl.Checkout)

	admin := router.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		admin.GET("/products/:id", productCtrl.GetProductByID)
		admin.POST("/products", productCtrl.CreateProduct)
		admin.PUT("/products/:id", productCtrl.UpdateProduct)
		admin.DELETE("/products/:id", productCtrl.DeleteProduct)

		admin.POST("/categories", categoryCtrl.CreateCategory)

		admin.POST("/upload", uploadCtrl.UploadImage)
	}
}
