// internal/handlers/catalog.go
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/marketradar/marketradar-backend/internal/services"
	"github.com/marketradar/marketradar-backend/internal/utils"
)

type CatalogHandler struct {
	catalogService *services.CatalogService
}

func NewCatalogHandler(catalogService *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
	}
}

// GET /api/products
func (h *CatalogHandler) GetProducts(c *gin.Context) {
	products, err := h.catalogService.ListProducts()
	if err != nil {
		logrus.WithError(err).Error("Failed to list products")
		utils.InternalErrorResponse(c, "failed to load products")
		return
	}

	utils.SuccessResponse(c, products)
}

// GET /api/best-products
func (h *CatalogHandler) GetBestProducts(c *gin.Context) {
	leaders, err := h.catalogService.ListLeaders()
	if err != nil {
		logrus.WithError(err).Error("Failed to list leader products")
		utils.InternalErrorResponse(c, "failed to load leader products")
		return
	}

	utils.SuccessResponse(c, leaders)
}

// GET /api/predictions
func (h *CatalogHandler) GetPredictions(c *gin.Context) {
	predictions, err := h.catalogService.ListPredictions()
	if err != nil {
		logrus.WithError(err).Error("Failed to list predictions")
		utils.InternalErrorResponse(c, "failed to load predictions")
		return
	}

	utils.SuccessResponse(c, predictions)
}
