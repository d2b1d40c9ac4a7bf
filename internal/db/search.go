package db

// SortOrder is the direction of a SORTBY clause.
type SortOrder string

const (
	// SortAsc sorts ascending.
	SortAsc SortOrder = "ASC"
	// SortDesc sorts descending.
	SortDesc SortOrder = "DESC"
)

// ListQuery is the input for a paginated FT.SEARCH.
type ListQuery struct {
	IndexName    string
	Query        string // "*" matches everything
	Offset       int
	Limit        int
	ReturnFields []string
	SortBy       string // optional; the field must be SORTABLE
	Order        SortOrder
}

// SearchResult is the output of a search operation.
type SearchResult struct {
	Total   int
	Entries []SearchEntry
}

// SearchEntry is a single document hit from a search.
type SearchEntry struct {
	Key    string
	Fields map[string]string
}
