package schema

// ListResponse represents a unified paginated list view response
type ListResponse[T any] struct {
	Pagination *ListMetadata `json:"pagination"`
	Data       []T           `json:"data"`
}

// ListMetadata represents the pagination metadata present in a ListResponse
type ListMetadata struct {
	Page          int `json:"page"`
	PageSize      int `json:"page_size"`
	TotalPages    int `json:"total_pages"`
	TotalFiltered int `json:"total_filtered"`
}

// OffsetResponse represents a unified offset-paginated response as used for the audit log
type OffsetResponse[T any] struct {
	Pagination *OffsetMetadata `json:"pagination"`
	Data       []T             `json:"data"`
}

// OffsetMetadata represents the metadata present in an OffsetResponse
type OffsetMetadata struct {
	Offset        uint64 `json:"offset"`
	Limit         uint64 `json:"limit"`
	TotalCount    uint64 `json:"total_count"`
	IncludedCount int    `json:"included_count"`
}

// BuildOffsetResponse builds a unified offset-paginated response
func BuildOffsetResponse[T any](offset, limit, totalCount uint64, data []T) *OffsetResponse[T] {
	if data == nil {
		data = []T{}
	}
	return &OffsetResponse[T]{
		Pagination: &OffsetMetadata{
			Offset:        offset,
			Limit:         limit,
			TotalCount:    totalCount,
			IncludedCount: len(data),
		},
		Data: data,
	}
}

// BuildListResponse builds a unified paginated list view response
func BuildListResponse[T any](page, pageSize, totalPages, totalFiltered int, data []T) *ListResponse[T] {
	if data == nil {
		data = []T{}
	}
	return &ListResponse[T]{
		Pagination: &ListMetadata{
			Page:          page,
			PageSize:      pageSize,
			TotalPages:    totalPages,
			TotalFiltered: totalFiltered,
		},
		Data: data,
	}
}
