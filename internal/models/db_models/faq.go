package db_models

type FAQ struct {
	BaseModel
	Question string `gorm:"type:text;not null"`
	Answer   string `gorm:"type:text;not null"`
	Order    int    `gorm:"column:display_order"`
}
