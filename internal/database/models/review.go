package models

// Review is a rating-and-text record attached to exactly one campground
type Review struct {
	BaseModel
	Body   string  `json:"body" gorm:"type:text;not null"`
	Rating float64 `json:"rating" gorm:"not null"`
}

// TableName returns the table name for Review
func (Review) TableName() string {
	return "reviews"
}
