package db_models

type NewsItem struct {
	BaseModel
	Title       string `gorm:"not null"`
	Summary     string `gorm:"type:text"`
	ImageURL    string
	PublishedAt int64
}
