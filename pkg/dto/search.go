package dto

// SearchResponse is the result of POST /api/search. Mode names the query
// mode the request resolved to.
type SearchResponse struct {
	Mode    string          `json:"mode"`
	Results []EntryResponse `json:"results"`
	Total   int             `json:"total"`
}
