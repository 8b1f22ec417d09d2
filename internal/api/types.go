package api

import "github.com/lvicens/blanca-med/backend/internal/search"

// SearchResponse is the JSON shape the rendering layer consumes. Outcome
// and Message come straight from the presenter contract and must be
// displayed verbatim; MustAvoid and Safe are never merged into one list.
type SearchResponse struct {
	Mode      search.Mode     `json:"mode"`
	Query     string          `json:"query"`
	Outcome   search.Outcome  `json:"outcome"`
	Message   string          `json:"message"`
	MustAvoid []search.Record `json:"must_avoid"`
	Safe      []search.Record `json:"safe"`
}

func newSearchResponse(d search.Descriptor, r search.Result) SearchResponse {
	p := search.Present(d, r)
	return SearchResponse{
		Mode:      d.Mode,
		Query:     d.Text,
		Outcome:   p.Outcome,
		Message:   p.Message,
		MustAvoid: p.MustAvoid,
		Safe:      p.Safe,
	}
}

// ExportResponse carries the presigned download link for a dataset dump
type ExportResponse struct {
	URL   string `json:"url"`
	Count int    `json:"count"`
}
