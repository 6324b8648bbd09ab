package db_models

import "github.com/lib/pq"

type Article struct {
	BaseModel
	Title       string `gorm:"not null"`
	Category    string `gorm:"index"`
	Body        string `gorm:"type:text"`
	CoverURL    string
	Tags        pq.StringArray `gorm:"type:text[]"`
	PublishedAt int64
}
