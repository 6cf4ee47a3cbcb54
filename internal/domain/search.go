package domain

// SearchCandidate is one hit surviving per-index capping during a tool
// round. Extra holds the record fields passed through opaquely to the model.
type SearchCandidate struct {
	Index string         `json:"index"`
	Title string         `json:"title"`
	Score float64        `json:"score"`
	Extra map[string]any `json:"extra,omitempty"`
}

// IndexHit is one raw hit returned by the search capability for a single
// index, before capping. Score is on whatever scale the capability defines;
// it is never renormalized downstream.
type IndexHit struct {
	Title  string
	Score  float64
	Fields map[string]any
}
