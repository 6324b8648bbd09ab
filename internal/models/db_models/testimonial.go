package db_models

type Testimonial struct {
	BaseModel
	Author   string `gorm:"not null"`
	Program  string
	Quote    string `gorm:"type:text;not null"`
	PhotoURL string
}
