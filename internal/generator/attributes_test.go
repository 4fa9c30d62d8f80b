// internal/generator/attributes_test.go
package generator

import (
	"regexp"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescriptionContainsCategory(t *testing.T) {
	for _, category := range Categories {
		desc := Description(category)
		assert.NotEmpty(t, desc)
		assert.Contains(t, desc, category)
	}
}

func TestSpecsKeysAndFormats(t *testing.T) {
	weightRe := regexp.MustCompile(`^(\d+)g$`)
	dimensionsRe := regexp.MustCompile(`^(\d+)x(\d+)x(\d+) cm$`)

	for i := 0; i < 50; i++ {
		specs := Specs()
		require.Len(t, specs, 5)

		for _, key := range []string{"Material", "Weight", "Dimensions", "Color", "Country of Origin"} {
			assert.Contains(t, specs, key)
			assert.NotEmpty(t, specs[key])
		}

		weight := weightRe.FindStringSubmatch(specs["Weight"])
		require.NotNil(t, weight, "unexpected weight format: %s", specs["Weight"])
		grams, err := strconv.Atoi(weight[1])
		require.NoError(t, err)
		assert.GreaterOrEqual(t, grams, 100)
		assert.LessOrEqual(t, grams, 1000)

		dims := dimensionsRe.FindStringSubmatch(specs["Dimensions"])
		require.NotNil(t, dims, "unexpected dimensions format: %s", specs["Dimensions"])
		for j, bounds := range [][2]int{{10, 100}, {10, 100}, {1, 50}} {
			v, err := strconv.Atoi(dims[j+1])
			require.NoError(t, err)
			assert.GreaterOrEqual(t, v, bounds[0])
			assert.LessOrEqual(t, v, bounds[1])
		}
	}
}

func TestFeedbacks(t *testing.T) {
	reviewerRe := regexp.MustCompile(`^[A-Z]{5}$`)

	for i := 0; i < 50; i++ {
		feedbacks := Feedbacks()
		require.GreaterOrEqual(t, len(feedbacks), 5)
		require.LessOrEqual(t, len(feedbacks), 15)

		for _, fb := range feedbacks {
			assert.Regexp(t, reviewerRe, fb.ReviewerName)
			assert.GreaterOrEqual(t, fb.Rating, 1)
			assert.LessOrEqual(t, fb.Rating, 5)
			assert.NotEmpty(t, fb.Content)

			date, err := time.Parse("2006-01-02", fb.Date)
			require.NoError(t, err)
			assert.False(t, date.After(time.Now()))
			assert.True(t, date.After(time.Now().AddDate(0, 0, -366)))

			// media is reserved but must serialize as [], not null
			assert.NotNil(t, fb.Media)
			assert.Empty(t, fb.Media)
		}
	}
}

func TestDescriptionUsesTemplatePools(t *testing.T) {
	desc := Description("Running Shoes")
	assert.True(t, strings.HasSuffix(desc, "."))

	var hasAdjective bool
	for _, adj := range adjectives {
		if strings.HasPrefix(desc, adj) {
			hasAdjective = true
			break
		}
	}
	assert.True(t, hasAdjective, "description does not start with a known adjective: %s", desc)
}
