// Package stats provides aggregate summaries over batches of pairwise
// alignments.
package stats

import (
	"fmt"
	"sort"

	"github.com/innaky/seqalign/internal/align"
)

// AlignmentSetStats summarizes a batch of alignments of one query
// against many targets.
type AlignmentSetStats struct {
	Count        int
	MinScore     int
	MaxScore     int
	MeanScore    float64
	MedianScore  float64
	MeanIdentity float64
	TotalGaps    int
}

// FromAlignments aggregates scores, identities and gap counts over a
// non-empty batch.
func FromAlignments(alns []*align.Alignment) (*AlignmentSetStats, error) {
	if len(alns) == 0 {
		return nil, fmt.Errorf("alignment set cannot be empty")
	}

	scores := make([]int, len(alns))
	sumScore := 0.0
	sumIdentity := 0.0
	totalGaps := 0
	minScore, maxScore := alns[0].Score, alns[0].Score

	for i, a := range alns {
		scores[i] = a.Score
		sumScore += float64(a.Score)
		sumIdentity += a.Identity()
		totalGaps += a.TotalGaps()
		if a.Score < minScore {
			minScore = a.Score
		}
		if a.Score > maxScore {
			maxScore = a.Score
		}
	}

	sort.Ints(scores)
	var median float64
	mid := len(scores) / 2
	if len(scores)%2 == 1 {
		median = float64(scores[mid])
	} else {
		median = float64(scores[mid-1]+scores[mid]) / 2.0
	}

	return &AlignmentSetStats{
		Count:        len(alns),
		MinScore:     minScore,
		MaxScore:     maxScore,
		MeanScore:    sumScore / float64(len(alns)),
		MedianScore:  median,
		MeanIdentity: sumIdentity / float64(len(alns)),
		TotalGaps:    totalGaps,
	}, nil
}

func (s *AlignmentSetStats) String() string {
	return fmt.Sprintf(`AlignmentSetStats {
  count: %d
  score: min %d, max %d, mean %.2f, median %.1f
  mean identity: %.1f%%
  total gaps: %d
}`, s.Count, s.MinScore, s.MaxScore, s.MeanScore, s.MedianScore,
		s.MeanIdentity*100, s.TotalGaps)
}
