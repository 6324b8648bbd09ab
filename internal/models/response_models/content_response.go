package response_models

type TeamMemberResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	Bio      string `json:"bio"`
	PhotoURL string `json:"photo_url"`
}

type TestimonialResponse struct {
	ID       string `json:"id"`
	Author   string `json:"author"`
	Program  string `json:"program"`
	Quote    string `json:"quote"`
	PhotoURL string `json:"photo_url"`
}

type FAQResponse struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type NewsItemResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Summary     string `json:"summary"`
	ImageURL    string `json:"image_url"`
	PublishedAt int64  `json:"published_at"`
}

type ArticleResponse struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Category    string   `json:"category"`
	Body        string   `json:"body,omitempty"`
	CoverURL    string   `json:"cover_url"`
	Tags        []string `json:"tags"`
	PublishedAt int64    `json:"published_at"`
}
