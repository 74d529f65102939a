package content

import (
	"math/rand"
	"testing"

	"github.com/svitanok-centre/site/internal/domain"
)

func TestRelatedNews_ExcludesCurrentAndOrdersByRecency(t *testing.T) {
	docs := []domain.NewsDocument{
		newsDoc("current", "2025-06-01", false),
		newsDoc("old", "2024-01-01", false),
		newsDoc("new", "2025-05-01", false),
		newsDoc("mid", "2025-01-01", false),
	}

	related := RelatedNews(docs, "current", 2)
	if len(related) != 2 {
		t.Fatalf("len = %d", len(related))
	}
	if related[0].ID != "new" || related[1].ID != "mid" {
		t.Fatalf("order: %s, %s", related[0].ID, related[1].ID)
	}
}

func TestRelatedNews_ShortListReturnsAllRemaining(t *testing.T) {
	docs := []domain.NewsDocument{newsDoc("current", "2025-06-01", false)}
	if got := RelatedNews(docs, "current", 3); len(got) != 0 {
		t.Fatalf("got %d items", len(got))
	}
}

func TestRelatedProjects_BoundedAndExcluding(t *testing.T) {
	docs := []domain.ProjectDocument{
		{ID: "current"}, {ID: "a"}, {ID: "b"}, {ID: "c"},
	}
	rng := rand.New(rand.NewSource(7))

	related := RelatedProjects(docs, "current", 2, rng)
	if len(related) != 2 {
		t.Fatalf("len = %d", len(related))
	}
	for _, doc := range related {
		if doc.ID == "current" {
			t.Fatal("current document leaked into related list")
		}
	}
}

func TestRelatedProjects_SourceSmallerThanLimit(t *testing.T) {
	docs := []domain.ProjectDocument{{ID: "current"}, {ID: "only"}}
	rng := rand.New(rand.NewSource(1))

	related := RelatedProjects(docs, "current", 5, rng)
	if len(related) != 1 || related[0].ID != "only" {
		t.Fatalf("got %+v", related)
	}
}
