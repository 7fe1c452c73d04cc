// Package paging models the paginated list envelope used by the backend
// ({count, next, previous, results}) and the list query options.
//
// Encode options for a request:
//
//	opts := paging.DefaultOptions()
//	opts.Search = "algebra"
//	values, err := opts.Values()
//	// ordering=-created_at&page=1&page_size=20&search=algebra
//
// Only Results is consumed by the course store; Count, Next and Previous are
// kept for callers that page through the listing.
package paging
