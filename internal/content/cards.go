// Package content maps raw documents into the display view-models consumed
// by the public pages and the admin preview. View-models are ephemeral:
// they are recomputed on every fetch and on every language change.
package content

import (
	"sort"

	"github.com/svitanok-centre/site/internal/dates"
	"github.com/svitanok-centre/site/internal/domain"
	"github.com/svitanok-centre/site/internal/richtext"
)

// NewsCard is the display view-model for one news entry. It keeps the raw
// document so language can be re-resolved without refetching.
type NewsCard struct {
	ID            string              `json:"id"`
	Title         string              `json:"title"`
	TitleLang     domain.Lang         `json:"titleLang,omitempty"`
	TitleFallback bool                `json:"titleFallback"`
	ExcerptHTML   string              `json:"excerptHtml"`
	ImageURL      string              `json:"image"`
	CategoryKey   string              `json:"category"`
	DateYMD       string              `json:"date"`
	DateDisplay   string              `json:"dateDisplay"`
	Featured      bool                `json:"featured"`
	Source        domain.NewsDocument `json:"source"`
}

// ProjectCard is the display view-model for one project entry.
type ProjectCard struct {
	ID              string                 `json:"id"`
	Title           string                 `json:"title"`
	TitleLang       domain.Lang            `json:"titleLang,omitempty"`
	TitleFallback   bool                   `json:"titleFallback"`
	DescriptionHTML string                 `json:"descriptionHtml"`
	Links           []domain.Link          `json:"links,omitempty"`
	Location        string                 `json:"location"`
	ImageURL        string                 `json:"image"`
	GalleryURLs     []string               `json:"gallery,omitempty"`
	YouTubeURLs     []string               `json:"youtubeUrls,omitempty"`
	DateDisplay     string                 `json:"dateDisplay"`
	Featured        bool                   `json:"featured"`
	Source          domain.ProjectDocument `json:"source"`
}

// MapNewsCards resolves localized fields for lang and returns cards sorted
// by canonical date descending. The sort is stable so equal dates keep
// their fetch order deterministically.
func MapNewsCards(docs []domain.NewsDocument, lang domain.Lang) []NewsCard {
	ordered := make([]domain.NewsDocument, len(docs))
	copy(ordered, docs)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].DateYMD > ordered[j].DateYMD
	})

	cards := make([]NewsCard, 0, len(ordered))
	for _, doc := range ordered {
		cards = append(cards, newsCard(doc, lang))
	}
	return cards
}

func newsCard(doc domain.NewsDocument, lang domain.Lang) NewsCard {
	title := doc.Title.Resolve(lang)
	excerpt := doc.ExcerptHTML.Resolve(lang)
	return NewsCard{
		ID:            doc.ID,
		Title:         title.Text,
		TitleLang:     title.UsedLang,
		TitleFallback: title.IsFallback(lang),
		ExcerptHTML:   richtext.EnhanceLinks(richtext.Sanitize(excerpt.Text)),
		ImageURL:      doc.ImageURL,
		CategoryKey:   doc.CategoryKey,
		DateYMD:       doc.DateYMD,
		DateDisplay:   dates.FormatDisplay(doc.DateYMD, lang),
		Featured:      doc.Featured,
		Source:        doc,
	}
}

// FeaturedNews picks the single homepage slot: the first card flagged
// featured, falling back to the first card in date order. The second
// return is false only for an empty list.
func FeaturedNews(cards []NewsCard) (NewsCard, bool) {
	if len(cards) == 0 {
		return NewsCard{}, false
	}
	for _, card := range cards {
		if card.Featured {
			return card, true
		}
	}
	return cards[0], true
}

// MapProjectCards resolves localized fields for lang and orders cards
// featured-first (stable), then by the best available date descending.
func MapProjectCards(docs []domain.ProjectDocument, lang domain.Lang) []ProjectCard {
	ordered := make([]domain.ProjectDocument, len(docs))
	copy(ordered, docs)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Featured != ordered[j].Featured {
			return ordered[i].Featured
		}
		return ordered[i].BestDateYMD() > ordered[j].BestDateYMD()
	})

	cards := make([]ProjectCard, 0, len(ordered))
	for _, doc := range ordered {
		cards = append(cards, projectCard(doc, lang))
	}
	return cards
}

func projectCard(doc domain.ProjectDocument, lang domain.Lang) ProjectCard {
	title := doc.Title.Resolve(lang)
	description := doc.DescriptionHTML.Resolve(lang)
	location := doc.Location.Resolve(lang)

	links := doc.DescriptionLinks[lang]
	if links == nil && description.UsedLang != "" {
		links = doc.DescriptionLinks[description.UsedLang]
	}

	return ProjectCard{
		ID:              doc.ID,
		Title:           title.Text,
		TitleLang:       title.UsedLang,
		TitleFallback:   title.IsFallback(lang),
		DescriptionHTML: richtext.EnhanceLinks(richtext.Sanitize(description.Text)),
		Links:           links,
		Location:        location.Text,
		ImageURL:        doc.ImageURL,
		GalleryURLs:     doc.GalleryURLs,
		YouTubeURLs:     doc.YouTubeURLs,
		DateDisplay:     dates.FormatRange(doc.DateYMD, doc.DateStartYMD, doc.DateEndYMD, lang),
		Featured:        doc.Featured,
		Source:          doc,
	}
}
