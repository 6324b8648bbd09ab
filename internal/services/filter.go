package services

import (
	"strings"

	"edugo/internal/models/db_models"
	"edugo/internal/models/request_models"
)

// FilterPrograms narrows the catalog to the records that satisfy every set
// criterion, preserving catalog order. Unset criteria hold trivially. Pure
// function: safe to call on every criteria change.
func FilterPrograms(catalog []db_models.Program, criteria request_models.FilterCriteria) []db_models.Program {
	result := make([]db_models.Program, 0, len(catalog))
	for _, program := range catalog {
		if matchesCriteria(program, criteria) {
			result = append(result, program)
		}
	}
	return result
}

func matchesCriteria(p db_models.Program, c request_models.FilterCriteria) bool {
	if c.Category != "" && p.Category != c.Category {
		return false
	}
	if c.Country != "" && p.Country != c.Country {
		return false
	}
	if c.Language != "" && p.Language != c.Language {
		return false
	}
	if c.AgeBand != "" && !matchesAgeBand(p, c.AgeBand) {
		return false
	}
	if c.BudgetBucket != "" && !matchesBudgetBucket(p.BudgetTWD, c.BudgetBucket) {
		return false
	}
	return true
}

// matchesAgeBand is a free-text containment test against the age-range field
// and the tag list, not a numeric range comparison. Known-loose heuristic
// carried over from the product as-is.
func matchesAgeBand(p db_models.Program, band string) bool {
	if strings.Contains(p.AgeRange, band) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(tag, band) {
			return true
		}
	}
	return false
}

// matchesBudgetBucket: 100000 and 200000 both belong to the middle bucket.
func matchesBudgetBucket(budget int, bucket string) bool {
	switch bucket {
	case request_models.BucketUnder100k:
		return budget < 100000
	case request_models.Bucket100kTo200k:
		return budget >= 100000 && budget <= 200000
	case request_models.BucketOver200k:
		return budget > 200000
	default:
		return false
	}
}
