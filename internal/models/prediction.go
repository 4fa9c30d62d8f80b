// internal/models/prediction.go
package models

// Prediction is a derived "predicted leader" row. ProductID doubles as the
// primary key: leaders are sampled without replacement, so one prediction
// per product per generation.
type Prediction struct {
	ProductID                 uint    `json:"product_id" gorm:"primaryKey;column:product_id;autoIncrement:false"`
	ProductName               string  `json:"product_name" gorm:"column:product_name;size:100" validate:"required"`
	PredictedPopularityScore  int     `json:"predicted_popularity_score" gorm:"column:predicted_popularity_score" validate:"min=70,max=100"`
	PredictedStartSalesWindow string  `json:"predicted_start_sales_window" gorm:"column:predicted_start_sales_window;size:20" validate:"required,iso_date"`
	PredictedEndSalesWindow   string  `json:"predicted_end_sales_window" gorm:"column:predicted_end_sales_window;size:20" validate:"required,iso_date"`
	Product                   Product `json:"-" validate:"-" gorm:"foreignKey:ProductID;references:ArticleNumber;constraint:OnDelete:CASCADE"`
}

func (Prediction) TableName() string {
	return "predictions"
}
