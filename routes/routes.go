package routes

import (
	"net/http"

	"polyconf/config"
	"polyconf/controllers/provisioning"
	"polyconf/log"
	middleware "polyconf/middlewares"

	"github.com/gin-gonic/gin"
)

// Router - returns gin router engine
func Router() *gin.Engine {

	var conf = config.GetConfig()

	// debug mode only when asked for
	if !conf.GetBool("app.debug") {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(log.GetLogger()))
	router.Use(middleware.Recovery(log.GetLogger()))
	router.Use(middleware.CORS(conf.GetString("app.cors_origin")))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": http.StatusText(http.StatusOK)})
		c.Abort()
	})

	/*
		PROVISIONING
	*/

	// polycom <ext>.cfg
	router.OPTIONS("/generate", provisioning.GenerateConfig)
	router.POST("/generate", provisioning.GenerateConfig)

	// user pool download
	router.OPTIONS("/export_pool", provisioning.ExportPool)
	router.POST("/export_pool", provisioning.ExportPool)

	// user pool upload
	router.OPTIONS("/import_pool", provisioning.ImportPool)
	router.POST("/import_pool", provisioning.ImportPool)

	return router
}
