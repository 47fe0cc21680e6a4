package models

// Pagination describes the envelope attached to every paginated response.
// Total is the count of all qualifying rows, not the page size.
type Pagination struct {
	Total  int64 `json:"total"`
	Limit  int   `json:"limit"`
	Offset int   `json:"offset"`
}

// PaginatedResponse is the `{data, pagination}` envelope returned by all
// list endpoints that page their results.
type PaginatedResponse struct {
	Data       interface{} `json:"data"`
	Pagination Pagination  `json:"pagination"`
}
