package request_models

// Budget buckets used for coarse catalog filtering. Values are TWD.
// 100000 and 200000 both fall in the middle bucket.
const (
	BucketUnder100k  = "under-100k"
	Bucket100kTo200k = "100k-200k"
	BucketOver200k   = "over-200k"
)

// FilterCriteria carries the user's catalog filter selections. An empty
// field applies no constraint.
type FilterCriteria struct {
	Category     string `form:"category" json:"category"`
	Country      string `form:"country" json:"country"`
	AgeBand      string `form:"ageBand" json:"age_band"`
	BudgetBucket string `form:"budgetBucket" json:"budget_bucket"`
	Language     string `form:"language" json:"language"`
}

// IsZero reports whether no constraint is set at all.
func (f FilterCriteria) IsZero() bool {
	return f.Category == "" && f.Country == "" && f.AgeBand == "" &&
		f.BudgetBucket == "" && f.Language == ""
}
