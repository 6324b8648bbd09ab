package response_models

type Program struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Country      string   `json:"country"`
	City         string   `json:"city"`
	AgeRange     string   `json:"age_range"`
	Duration     string   `json:"duration"`
	DisplayPrice string   `json:"display_price"`
	Category     string   `json:"category"`
	Language     string   `json:"language"`
	Description  string   `json:"description"`
	Tags         []string `json:"tags"`
	Highlights   []string `json:"highlights"`
	Images       []string `json:"images"`
}
