// internal/services/generation_service.go
package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/marketradar/marketradar-backend/internal/config"
	"github.com/marketradar/marketradar-backend/internal/database"
	"github.com/marketradar/marketradar-backend/internal/generator"
	"github.com/marketradar/marketradar-backend/internal/utils"
)

// GenerationService builds a synthetic catalog generation and replaces
// the persisted one atomically.
type GenerationService struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewGenerationService(db *gorm.DB, cfg *config.Config) *GenerationService {
	return &GenerationService{
		db:  db,
		cfg: cfg,
	}
}

// Run executes one full generation cycle. Any failure aborts the cycle
// before or inside the replace transaction; the previous generation
// stays authoritative.
func (s *GenerationService) Run() error {
	runID := uuid.New().String()
	start := time.Now()
	log := logrus.WithField("run_id", runID)

	gen, err := generator.Build(generator.Config{
		LeaderCount: s.cfg.Generator.LeaderCount,
		ImageDir:    s.cfg.Images.Dir,
	})
	if err != nil {
		return fmt.Errorf("failed to build catalog: %w", err)
	}

	for i := range gen.Products {
		if err := utils.ValidateStruct(&gen.Products[i]); err != nil {
			return fmt.Errorf("generated product %q failed validation: %w", gen.Products[i].Category, err)
		}
	}
	for i := range gen.Predictions {
		if err := utils.ValidateStruct(&gen.Predictions[i]); err != nil {
			return fmt.Errorf("generated prediction for %q failed validation: %w", gen.Predictions[i].ProductName, err)
		}
	}

	if err := s.replace(gen); err != nil {
		return fmt.Errorf("failed to replace catalog: %w", err)
	}

	log.WithFields(logrus.Fields{
		"products":    len(gen.Products),
		"predictions": len(gen.Predictions),
		"duration_ms": time.Since(start).Milliseconds(),
	}).Info("Catalog generation completed")

	return nil
}

// replace swaps in the new generation inside one transaction: both
// tables are cleared and refilled together, so no stale leader flags or
// orphaned predictions can survive a run.
func (s *GenerationService) replace(gen *generator.Generation) error {
	return database.WithTransaction(s.db, func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM predictions").Error; err != nil {
			return fmt.Errorf("failed to clear predictions: %w", err)
		}
		if err := tx.Exec("DELETE FROM products").Error; err != nil {
			return fmt.Errorf("failed to clear products: %w", err)
		}
		if err := tx.Create(&gen.Products).Error; err != nil {
			return fmt.Errorf("failed to insert products: %w", err)
		}
		if err := tx.Omit("Product").Create(&gen.Predictions).Error; err != nil {
			return fmt.Errorf("failed to insert predictions: %w", err)
		}
		return nil
	})
}
