package dto

// Pagination is a generic pagination envelope for list results.
// Total/TotalPages come from the content API's X-WP-Total / X-WP-TotalPages headers.
// Page is 1-based; PageSize is the requested page size.
//
// swagger:model Pagination
// (Swagger generators may not fully support generics; handlers may need custom annotations.)
type Pagination[T any] struct {
	Data       []T   `json:"data"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

// PaginationPostDTO is a concrete swagger-friendly type for paginated posts response
// swagger:model PaginationPostDTO
type PaginationPostDTO struct {
	Data       []PostDTO `json:"data"`
	Page       int       `json:"page"`
	PageSize   int       `json:"page_size"`
	Total      int64     `json:"total"`
	TotalPages int       `json:"total_pages"`
}
