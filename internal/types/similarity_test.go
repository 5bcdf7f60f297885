package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSortMatches(t *testing.T) {
	older := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	newer := time.Date(2025, 5, 20, 0, 0, 0, 0, time.UTC)

	matches := []SimilarityMatch{
		{JobCode: "JD-003", Similarity: 70, CreatedAt: older},
		{JobCode: "JD-001", Similarity: 92, CreatedAt: older},
		{JobCode: "JD-004", Similarity: 70, CreatedAt: newer},
		{JobCode: "JD-002", Similarity: 85, CreatedAt: newer},
	}

	SortMatches(matches)

	codes := make([]string, len(matches))
	for i, m := range matches {
		codes[i] = m.JobCode
	}
	// Similarity descending; the 70% tie broken by newest first.
	assert.Equal(t, []string{"JD-001", "JD-002", "JD-004", "JD-003"}, codes)
}

func TestSortMatchesEmpty(t *testing.T) {
	var matches []SimilarityMatch
	SortMatches(matches)
	assert.Empty(t, matches)
}
