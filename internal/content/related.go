package content

import (
	"math/rand"
	"sort"

	"github.com/svitanok-centre/site/internal/domain"
)

// RelatedNews returns up to limit entries for the "read also" block:
// recency-ordered, excluding the document being viewed.
func RelatedNews(docs []domain.NewsDocument, excludeID string, limit int) []domain.NewsDocument {
	if limit <= 0 {
		return nil
	}
	remaining := make([]domain.NewsDocument, 0, len(docs))
	for _, doc := range docs {
		if doc.ID == excludeID {
			continue
		}
		remaining = append(remaining, doc)
	}
	sort.SliceStable(remaining, func(i, j int) bool {
		return remaining[i].DateYMD > remaining[j].DateYMD
	})
	if len(remaining) > limit {
		remaining = remaining[:limit]
	}
	return remaining
}

// RelatedProjects returns up to limit randomly chosen projects excluding
// the one being viewed. A source list smaller than the limit yields all
// remaining items without padding.
func RelatedProjects(docs []domain.ProjectDocument, excludeID string, limit int, rng *rand.Rand) []domain.ProjectDocument {
	if limit <= 0 {
		return nil
	}
	remaining := make([]domain.ProjectDocument, 0, len(docs))
	for _, doc := range docs {
		if doc.ID == excludeID {
			continue
		}
		remaining = append(remaining, doc)
	}
	if rng != nil {
		rng.Shuffle(len(remaining), func(i, j int) {
			remaining[i], remaining[j] = remaining[j], remaining[i]
		})
	}
	if len(remaining) > limit {
		remaining = remaining[:limit]
	}
	return remaining
}
