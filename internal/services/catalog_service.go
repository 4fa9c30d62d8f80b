// internal/services/catalog_service.go
package services

import (
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/marketradar/marketradar-backend/internal/models"
)

// CatalogService is the read side: it translates stored rows into
// API-shaped records. The JSON columns are decoded by the store layer on
// load; a malformed value fails the whole query, never a single field.
type CatalogService struct {
	db          *gorm.DB
	imagePrefix string
}

func NewCatalogService(db *gorm.DB, imagePrefix string) *CatalogService {
	return &CatalogService{
		db:          db,
		imagePrefix: strings.TrimRight(imagePrefix, "/"),
	}
}

func (s *CatalogService) ListProducts() ([]models.Product, error) {
	var products []models.Product
	if err := s.db.Order("category").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}

	for i := range products {
		s.rewriteImagePaths(&products[i])
	}
	return products, nil
}

func (s *CatalogService) ListLeaders() ([]models.Product, error) {
	var products []models.Product
	if err := s.db.Where("is_leader = ?", true).Order("category").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to load leaders: %w", err)
	}

	for i := range products {
		s.rewriteImagePaths(&products[i])
	}
	return products, nil
}

func (s *CatalogService) ListPredictions() ([]models.Prediction, error) {
	var predictions []models.Prediction
	if err := s.db.Find(&predictions).Error; err != nil {
		return nil, fmt.Errorf("failed to load predictions: %w", err)
	}
	return predictions, nil
}

func (s *CatalogService) rewriteImagePaths(p *models.Product) {
	p.Image = s.imagePrefix + "/" + p.Image
	for i := range p.Images {
		p.Images[i] = s.imagePrefix + "/" + p.Images[i]
	}
}
