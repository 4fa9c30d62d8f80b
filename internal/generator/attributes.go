// internal/generator/attributes.go
package generator

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/marketradar/marketradar-backend/internal/models"
)

var (
	adjectives = []string{
		"Premium", "Durable", "Stylish", "Innovative",
		"Eco-friendly", "Compact", "Lightweight", "Versatile",
	}
	features = []string{
		"design", "build quality", "materials",
		"craftsmanship", "finish", "stitching",
	}
	benefits = []string{
		"for everyday use", "that lasts for years", "at an affordable price",
		"loved by customers", "for any occasion", "with unbeatable value",
	}

	materials = []string{"Cotton", "Polyester", "Leather", "Plastic", "Metal", "Wood", "Silicone"}
	colors    = []string{"Black", "White", "Red", "Blue", "Green", "Gray", "Beige", "Pink"}
	countries = []string{"China", "Vietnam", "Turkey", "India", "Bangladesh", "Russia"}

	feedbackPhrases = []string{
		"Great product, exactly as described!",
		"Quality could be better, but okay for the price.",
		"Fast delivery and nice packaging.",
		"Not what I expected, returning it.",
		"My second purchase, highly recommend.",
		"Perfect fit and great quality.",
		"The color is slightly different from the photos.",
		"Amazing value for money!",
		"Arrived damaged, but the seller replaced it quickly.",
		"Works great, very happy with this purchase.",
	}
)

// Description composes a one-sentence product description around the
// category name from fixed adjective/feature/benefit pools.
func Description(category string) string {
	return fmt.Sprintf("%s %s with excellent %s %s.",
		pick(adjectives), category, pick(features), pick(benefits))
}

// Specs returns the five fixed product attributes with freshly
// randomized values.
func Specs() map[string]string {
	return map[string]string{
		"Material":          pick(materials),
		"Weight":            fmt.Sprintf("%dg", randBetween(100, 1000)),
		"Dimensions":        fmt.Sprintf("%dx%dx%d cm", randBetween(10, 100), randBetween(10, 100), randBetween(1, 50)),
		"Color":             pick(colors),
		"Country of Origin": pick(countries),
	}
}

// Feedbacks returns 5 to 15 synthetic customer reviews dated within the
// past year.
func Feedbacks() []models.Feedback {
	count := randBetween(5, 15)
	feedbacks := make([]models.Feedback, 0, count)

	for i := 0; i < count; i++ {
		feedbacks = append(feedbacks, models.Feedback{
			ReviewerName: randomReviewerName(),
			Date:         time.Now().AddDate(0, 0, -rand.IntN(365)).Format("2006-01-02"),
			Rating:       randBetween(1, 5),
			Content:      pick(feedbackPhrases),
			Media:        []string{},
		})
	}

	return feedbacks
}

func randomReviewerName() string {
	letters := make([]byte, 5)
	for i := range letters {
		letters[i] = byte('A' + rand.IntN(26))
	}
	return string(letters)
}

func pick(pool []string) string {
	return pool[rand.IntN(len(pool))]
}

// randBetween returns a uniform int in [min, max].
func randBetween(min, max int) int {
	return min + rand.IntN(max-min+1)
}
