// internal/generator/catalog.go
package generator

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/marketradar/marketradar-backend/internal/models"
)

// Categories is the fixed seed list. One product is generated per entry
// on every run.
var Categories = []string{
	"Candy Bags for School",
	"Midi Sequin Skirts",
	"Winter Hats for Boys",
	"Running Shoes",
	"Casual Jackets",
	"Smart Watches",
	"Backpacks",
	"Sports T-Shirts",
	"LED Makeup Mirrors",
	"Eco-friendly Water Bottles",
	"Wireless Earbuds",
	"Yoga Mats",
	"Sunglasses",
	"Leather Wallets",
	"Portable Chargers",
}

var remarks = []string{
	"Emerging niche with steady growth",
	"Strong growth, higher price point",
	"Large market volume, steady sales",
	"Growing niche with stable demand",
	"Seasonal spikes, high profitability",
	"Steady growth, tech-related demand",
	"Popular among younger demographics",
	"Highly competitive, requires unique selling proposition",
	"High demand in urban areas",
	"Eco-conscious consumers increasing",
	"High-tech features attracting buyers",
	"Well-received in fitness communities",
	"Fashionable and trendy",
	"Classic style with modern appeal",
	"Essential for mobile lifestyles",
}

const (
	articleNumberMin = 100000000
	articleNumberMax = 999999999

	predictionWindowDays = 30

	// Roughly one category in ten is missing the trailing analytics
	// fields, mirroring real niche reports with incomplete data.
	missingMetricDenominator = 10
)

// Config controls one catalog build.
type Config struct {
	Categories  []string
	LeaderCount int
	ImageDir    string
	Now         time.Time
}

// Generation is a complete in-memory dataset ready to be persisted.
type Generation struct {
	Products    []models.Product
	Predictions []models.Prediction
}

// Build assembles one full synthetic generation: a product per category
// with all metrics, attributes and placeholder images, plus the sampled
// leader subset and its predictions.
func Build(cfg Config) (*Generation, error) {
	categories := cfg.Categories
	if len(categories) == 0 {
		categories = Categories
	}
	leaderCount := cfg.LeaderCount
	if leaderCount == 0 {
		leaderCount = 5
	}
	now := cfg.Now
	if now.IsZero() {
		now = time.Now()
	}

	if len(categories) < leaderCount {
		return nil, fmt.Errorf("catalog size %d is smaller than leader count %d", len(categories), leaderCount)
	}

	products := make([]models.Product, 0, len(categories))
	seen := make(map[uint]struct{}, len(categories))

	for i, category := range categories {
		images, err := GenerateImages(cfg.ImageDir, category, i+1)
		if err != nil {
			return nil, err
		}

		products = append(products, models.Product{
			ArticleNumber:       drawArticleNumber(seen),
			Category:            category,
			NicheScore:          randBetween(10, 15),
			MarketVolume:        randBetween(5_000_000, 80_000_000),
			PriceSegment:        randomPriceSegment(),
			AverageCheck:        randBetween(500, 3000),
			ItemsWithSalesPct:   randBetween(40, 70),
			GrowthPct:           maybeFloat(20.0, 300.0),
			UnitsSold:           maybeInt(500, 5000),
			TopProductACP:       maybeInt(1000, 50000),
			TopProductUnitsSold: maybeInt(500, 5000),
			TopProductPrice:     maybeInt(1000, 50000),
			Remarks:             pick(remarks),
			Description:         Description(category),
			Specs:               Specs(),
			Feedbacks:           Feedbacks(),
			Image:               images[0],
			Images:              images,
		})
	}

	predictions := selectLeaders(products, leaderCount, now)

	return &Generation{Products: products, Predictions: predictions}, nil
}

// selectLeaders samples leaderCount products without replacement, marks
// them and emits one prediction per leader.
func selectLeaders(products []models.Product, leaderCount int, now time.Time) []models.Prediction {
	predictions := make([]models.Prediction, 0, leaderCount)
	start := now.Format("2006-01-02")
	end := now.AddDate(0, 0, predictionWindowDays).Format("2006-01-02")

	for _, idx := range rand.Perm(len(products))[:leaderCount] {
		products[idx].IsLeader = true
		predictions = append(predictions, models.Prediction{
			ProductID:                 products[idx].ArticleNumber,
			ProductName:               products[idx].Category,
			PredictedPopularityScore:  randBetween(70, 100),
			PredictedStartSalesWindow: start,
			PredictedEndSalesWindow:   end,
		})
	}

	return predictions
}

// drawArticleNumber re-rolls on collision so identifiers are unique
// within the run. Cross-run collisions are irrelevant: the replace step
// clears both tables before inserting.
func drawArticleNumber(seen map[uint]struct{}) uint {
	for {
		n := uint(randBetween(articleNumberMin, articleNumberMax))
		if _, taken := seen[n]; !taken {
			seen[n] = struct{}{}
			return n
		}
	}
}

func randomPriceSegment() string {
	low := randBetween(300, 2000)
	return fmt.Sprintf("%d-%d", low, low+randBetween(100, 1500))
}

func maybeInt(min, max int) *int {
	if rand.IntN(missingMetricDenominator) == 0 {
		return nil
	}
	v := randBetween(min, max)
	return &v
}

func maybeFloat(min, max float64) *float64 {
	if rand.IntN(missingMetricDenominator) == 0 {
		return nil
	}
	v := min + rand.Float64()*(max-min)
	v = float64(int(v*100)) / 100
	return &v
}
