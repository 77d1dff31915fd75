package pagination

// Params holds page-based pagination parameters from a request
type Params struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// ceiling on the page number; keeps Offset inside int range, and a SQL
// OFFSET this deep returns no rows regardless
const maxPage = 1_000_000

// Normalize applies defaults and clamps: page in [1, maxPage],
// limit in [1, maxLimit]
func Normalize(page, limit, defaultLimit, maxLimit int) Params {
	if page < 1 {
		page = 1
	}

	if page > maxPage {
		page = maxPage
	}

	if limit < 1 {
		limit = defaultLimit
	}

	if limit > maxLimit {
		limit = maxLimit
	}

	return Params{Page: page, Limit: limit}
}

// Offset converts the page number into a row offset
func (p Params) Offset() int {
	return (p.Page - 1) * p.Limit
}
