package db_models

import (
	"github.com/lib/pq"
)

// Program categories. The catalog never grows new kinds at runtime.
const (
	CategoryStudyAbroad    = "study-abroad"
	CategoryMicroStudy     = "micro-study"
	CategoryLanguageSchool = "language-school"
	CategorySummerCamp     = "summer-camp"
	CategoryWinterCamp     = "winter-camp"
)

// Program is one catalog offering. Records are loaded once and treated
// as read-only for the lifetime of the process.
type Program struct {
	BaseModel
	Title        string `gorm:"not null"`
	Country      string `gorm:"index"`
	City         string
	AgeRange     string // free text, e.g. "13-18 歲"
	Duration     string // free text, e.g. "2 weeks"
	DisplayPrice string // presentation only
	BudgetTWD    int    `gorm:"check:budget_twd >= 0"`
	Category     string `gorm:"index;not null"`
	Language     string
	Description  string         `gorm:"type:text"`
	Tags         pq.StringArray `gorm:"type:text[]"`
	Highlights   pq.StringArray `gorm:"type:text[]"`
	Images       pq.StringArray `gorm:"type:text[]"`
}
