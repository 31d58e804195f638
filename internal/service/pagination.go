package service

import "math"

const DefaultQuestionsPerPage = 10

// Paginate converts a 1-based page number into a LIMIT/OFFSET pair.
// Pages below 1 are treated as the first page. ok is false when the
// page lies so far out that its offset does not fit in an int.
func Paginate(page, perPage int) (limit, offset int, ok bool) {
	if perPage <= 0 {
		perPage = DefaultQuestionsPerPage
	}
	if page < 1 {
		page = 1
	}
	if page-1 > math.MaxInt/perPage {
		return perPage, 0, false
	}
	return perPage, (page - 1) * perPage, true
}
