package db_models

type TeamMember struct {
	BaseModel
	Name     string `gorm:"not null"`
	Role     string
	Bio      string `gorm:"type:text"`
	PhotoURL string
	Order    int `gorm:"column:display_order"`
}
