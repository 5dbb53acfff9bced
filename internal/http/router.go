// README: HTTP router registration.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"livery/internal/http/handlers"
	"livery/internal/http/middleware"
	"livery/internal/logger"
)

func NewRouter(
	quoteService handlers.QuoteService,
	catalogService handlers.CatalogService,
	log logger.Logger,
) http.Handler {
	r := gin.New()
	r.Use(middleware.Logging(log), middleware.Recovery(log))

	quoteHandler := handlers.NewQuoteHandler(quoteService)
	r.POST("/api/quotes", quoteHandler.Create)
	r.GET("/api/quotes/:number", quoteHandler.Get)

	catalogHandler := handlers.NewCatalogHandler(catalogService)
	r.GET("/api/catalog", catalogHandler.Get)
	r.POST("/api/catalog/invalidate", catalogHandler.Invalidate)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	return r
}
