// internal/models/product.go
package models

// Feedback is a single synthetic customer review. Media is reserved for
// future use and always serialized as an empty list, never null.
type Feedback struct {
	ReviewerName string   `json:"reviewer_name" validate:"required"`
	Date         string   `json:"date" validate:"required,iso_date"`
	Rating       int      `json:"rating" validate:"min=1,max=5"`
	Content      string   `json:"content" validate:"required"`
	Media        []string `json:"media"`
}

// Product is one fully denormalized catalog record. Specs, Feedbacks and
// Images are held as structured values in memory; gorm's JSON serializer
// encodes them into the *_json text columns at the store edge.
type Product struct {
	ArticleNumber       uint              `json:"article_number" gorm:"primaryKey;column:article_number;autoIncrement:false"`
	Category            string            `json:"category" gorm:"size:100;not null" validate:"required"`
	NicheScore          int               `json:"niche_score" gorm:"column:niche_score" validate:"min=10,max=15"`
	MarketVolume        int               `json:"market_volume" gorm:"column:market_volume" validate:"min=5000000,max=80000000"`
	PriceSegment        string            `json:"price_segment" gorm:"column:price_segment;size:50" validate:"required"`
	AverageCheck        int               `json:"average_check" gorm:"column:average_check" validate:"min=500,max=3000"`
	ItemsWithSalesPct   int               `json:"items_with_sales_pct" gorm:"column:items_with_sales_pct" validate:"min=40,max=70"`
	GrowthPct           *float64          `json:"growth_pct" gorm:"column:growth_pct" validate:"omitempty,min=20,max=300"`
	UnitsSold           *int              `json:"units_sold" gorm:"column:units_sold" validate:"omitempty,min=500,max=5000"`
	TopProductACP       *int              `json:"top_product_acp" gorm:"column:top_product_acp" validate:"omitempty,min=1000,max=50000"`
	TopProductUnitsSold *int              `json:"top_product_units_sold" gorm:"column:top_product_units_sold" validate:"omitempty,min=500,max=5000"`
	TopProductPrice     *int              `json:"top_product_price" gorm:"column:top_product_price" validate:"omitempty,min=1000,max=50000"`
	Remarks             string            `json:"remarks" validate:"required"`
	Description         string            `json:"description" gorm:"type:text" validate:"required"`
	Specs               map[string]string `json:"specs" gorm:"column:specs_json;type:text;serializer:json" validate:"len=5"`
	Feedbacks           []Feedback        `json:"feedbacks" gorm:"column:feedbacks_json;type:text;serializer:json" validate:"min=5,max=15,dive"`
	Image               string            `json:"image" validate:"required"`
	Images              []string          `json:"images" gorm:"column:images_json;type:text;serializer:json" validate:"min=1"`
	IsLeader            bool              `json:"is_leader" gorm:"column:is_leader;index"`
}

func (Product) TableName() string {
	return "products"
}
