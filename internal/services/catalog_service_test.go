// internal/services/catalog_service_test.go
package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/marketradar/marketradar-backend/internal/generator"
	"github.com/marketradar/marketradar-backend/internal/models"
)

type CatalogServiceTestSuite struct {
	suite.Suite
	db      *gorm.DB
	service *CatalogService
}

func (suite *CatalogServiceTestSuite) SetupTest() {
	suite.db = newTestDB(suite.T())
	cfg := newTestConfig(suite.T())
	require.NoError(suite.T(), NewGenerationService(suite.db, cfg).Run())
	suite.service = NewCatalogService(suite.db, cfg.Images.URLPrefix)
}

func (suite *CatalogServiceTestSuite) TestListProducts() {
	products, err := suite.service.ListProducts()
	require.NoError(suite.T(), err)
	suite.Len(products, len(generator.Categories))

	seen := make(map[uint]bool)
	for _, p := range products {
		suite.NotEmpty(p.Category)
		suite.False(seen[p.ArticleNumber], "duplicate article number %d", p.ArticleNumber)
		seen[p.ArticleNumber] = true

		suite.True(strings.HasPrefix(p.Image, "/images/"), "image path not rewritten: %s", p.Image)
		for _, img := range p.Images {
			suite.True(strings.HasPrefix(img, "/images/"), "image path not rewritten: %s", img)
		}
		suite.Equal(p.Image, p.Images[0])
		suite.Len(p.Specs, 5)
	}
}

func (suite *CatalogServiceTestSuite) TestListLeaders() {
	leaders, err := suite.service.ListLeaders()
	require.NoError(suite.T(), err)
	suite.Len(leaders, 5)

	for _, p := range leaders {
		suite.True(p.IsLeader)
		suite.True(strings.HasPrefix(p.Image, "/images/"))
	}
}

func (suite *CatalogServiceTestSuite) TestListPredictions() {
	predictions, err := suite.service.ListPredictions()
	require.NoError(suite.T(), err)
	suite.Len(predictions, 5)

	for _, pred := range predictions {
		suite.NotZero(pred.ProductID)
		suite.NotEmpty(pred.ProductName)
		suite.GreaterOrEqual(pred.PredictedPopularityScore, 70)
		suite.LessOrEqual(pred.PredictedPopularityScore, 100)
	}
}

func (suite *CatalogServiceTestSuite) TestCorruptSpecsFailsWholeQuery() {
	var product models.Product
	require.NoError(suite.T(), suite.db.First(&product).Error)
	require.NoError(suite.T(), suite.db.Exec(
		"UPDATE products SET specs_json = ? WHERE article_number = ?",
		"{not valid json", product.ArticleNumber,
	).Error)

	products, err := suite.service.ListProducts()
	suite.Error(err)
	suite.Nil(products)
}

func TestCatalogServiceSuite(t *testing.T) {
	suite.Run(t, new(CatalogServiceTestSuite))
}
