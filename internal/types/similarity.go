package types

import (
	"sort"
	"time"
)

// SimilarityMatch is a candidate existing job description returned by a
// similarity check, as a partial projection of the full record. Matches are
// transient and never persisted client-side.
type SimilarityMatch struct {
	ID          string    `json:"id"`
	JobCode     string    `json:"jobCode"`
	Posisi      string    `json:"posisi"`
	Divisi      string    `json:"divisi,omitempty"`
	Departemen  string    `json:"departemen"`
	Company     *Company  `json:"company,omitempty"`
	Status      Status    `json:"status"`
	Version     int       `json:"version"`
	MainPurpose string    `json:"mainPurpose,omitempty"`
	Similarity  int       `json:"similarity"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt,omitempty"`
}

// SortMatches orders matches by similarity descending, ties broken by most
// recent creation time first. The server promises this order already; sorting
// again keeps the contract even against a misbehaving server.
func SortMatches(matches []SimilarityMatch) {
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Similarity != matches[j].Similarity {
			return matches[i].Similarity > matches[j].Similarity
		}
		return matches[i].CreatedAt.After(matches[j].CreatedAt)
	})
}
