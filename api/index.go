package api

import (
	"net/http"
	"sync"

	"dinkys-shop/config"
	"dinkys-shop/middleware"
	"dinkys-shop/routes"

	"github.com/gin-gonic/gin"
)

var (
	router *gin.Engine
	once   sync.Once
)

// Handler is the serverless entry point; init happens once per instance.
func Handler(w http.ResponseWriter, r *http.Request) {
	once.Do(func() {
		gin.SetMode(gin.ReleaseMode)

		config.LoadConfig()
		config.ConnectDB()
		config.InitRedis()

		router = gin.New()
		router.Use(gin.Recovery())
		router.Use(middleware.CORSMiddleware())

		routes.SetupRoutes(router)
	})

	router.ServeHTTP(w, r)
}
