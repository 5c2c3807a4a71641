// Package http exposes the computation engine over a JSON API.
package http

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"go.miqat.io/miqat-api/internal/usecase"
)

// SetupRouter creates and configures the Gin router. An empty origins
// list allows all origins.
func SetupRouter(timesUC *usecase.TimesUseCase, allowedOrigins []string) *gin.Engine {
	router := gin.Default()

	corsConfig := cors.DefaultConfig()
	if len(allowedOrigins) > 0 {
		corsConfig.AllowOrigins = allowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	router.Use(cors.New(corsConfig))

	handler := NewHandler(timesUC)

	v1 := router.Group("/v1")

	prayers := v1.Group("/prayers")
	prayers.GET("/times", handler.GetTimes)

	hijri := v1.Group("/hijri")
	hijri.GET("/from-gregorian", handler.GetHijriFromGregorian)
	hijri.GET("/to-gregorian", handler.GetGregorianFromHijri)

	v1.GET("/qiblah", handler.GetQiblah)
	v1.GET("/methods", handler.GetMethods)

	router.GET("/health", handler.HealthCheck)

	return router
}
