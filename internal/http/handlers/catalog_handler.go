// README: Catalog handlers for listing and cache invalidation.
package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"livery/internal/modules/catalog"
)

// CatalogService is the subset of *catalog.Service the handler uses.
type CatalogService interface {
	Snapshot(ctx context.Context) (catalog.Catalog, error)
	Invalidate(ctx context.Context) error
}

type CatalogHandler struct {
	catalog CatalogService
}

func NewCatalogHandler(svc CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: svc}
}

// Get returns the reference data the quote form renders its options from.
func (h *CatalogHandler) Get(c *gin.Context) {
	cat, err := h.catalog.Snapshot(c.Request.Context())
	if err != nil {
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(c, http.StatusOK, cat)
}

// Invalidate drops the cached catalog after rate or tax edits.
func (h *CatalogHandler) Invalidate(c *gin.Context) {
	if err := h.catalog.Invalidate(c.Request.Context()); err != nil {
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(c, http.StatusOK, map[string]any{"invalidated": true})
}
