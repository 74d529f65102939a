// Package firestore implements the repository contracts on Cloud Firestore.
//
// Documents written by earlier revisions of the site store localized fields
// as plain strings and dates as raw timestamps, so decoding goes through
// hand-rolled codecs over snapshot data instead of DataTo.
package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"

	"github.com/svitanok-centre/site/internal/dates"
	domain "github.com/svitanok-centre/site/internal/domain"
)

func decodeNews(_ context.Context, snap *firestore.DocumentSnapshot) (domain.NewsDocument, error) {
	data := snap.Data()
	return domain.NewsDocument{
		ID:          snap.Ref.ID,
		Title:       domain.LocalizedFromWire(data["title"]),
		ExcerptHTML: domain.LocalizedFromWire(data["excerpt"]),
		ImageURL:    stringField(data, "image"),
		DateYMD:     dates.ToCanonicalYMD(data["date"]),
		CategoryKey: stringField(data, "category"),
		Featured:    boolField(data, "featured"),
		CreatedAt:   timeField(data, "createdAt"),
		UpdatedAt:   timeField(data, "updatedAt"),
		AuthorEmail: stringField(data, "authorEmail"),
	}, nil
}

func encodeNews(_ context.Context, doc domain.NewsDocument) (any, error) {
	return map[string]any{
		"title":       doc.Title.Wire(),
		"excerpt":     doc.ExcerptHTML.Wire(),
		"image":       doc.ImageURL,
		"date":        doc.DateYMD,
		"category":    doc.CategoryKey,
		"featured":    doc.Featured,
		"createdAt":   doc.CreatedAt,
		"updatedAt":   doc.UpdatedAt,
		"authorEmail": doc.AuthorEmail,
	}, nil
}

func decodeProject(_ context.Context, snap *firestore.DocumentSnapshot) (domain.ProjectDocument, error) {
	data := snap.Data()
	return domain.ProjectDocument{
		ID:               snap.Ref.ID,
		Title:            domain.LocalizedFromWire(data["title"]),
		DescriptionHTML:  domain.LocalizedFromWire(data["description"]),
		DescriptionLinks: linksField(data, "descriptionLinks"),
		ImageURL:         stringField(data, "image"),
		GalleryURLs:      stringListField(data, "gallery"),
		DateYMD:          dates.ToCanonicalYMD(data["date"]),
		DateStartYMD:     dates.ToCanonicalYMD(data["dateStart"]),
		DateEndYMD:       dates.ToCanonicalYMD(data["dateEnd"]),
		Location:         domain.LocalizedFromWire(data["location"]),
		YouTubeURLs:      stringListField(data, "youtubeUrls"),
		Featured:         boolField(data, "featured"),
		CreatedAt:        timeField(data, "createdAt"),
		UpdatedAt:        timeField(data, "updatedAt"),
		AuthorEmail:      stringField(data, "authorEmail"),
	}, nil
}

func encodeProject(_ context.Context, doc domain.ProjectDocument) (any, error) {
	payload := map[string]any{
		"title":       doc.Title.Wire(),
		"description": doc.DescriptionHTML.Wire(),
		"image":       doc.ImageURL,
		"location":    doc.Location.Wire(),
		"featured":    doc.Featured,
		"createdAt":   doc.CreatedAt,
		"updatedAt":   doc.UpdatedAt,
		"authorEmail": doc.AuthorEmail,
	}
	if len(doc.DescriptionLinks) > 0 {
		links := make(map[string]any, len(doc.DescriptionLinks))
		for lang, list := range doc.DescriptionLinks {
			links[string(lang)] = list
		}
		payload["descriptionLinks"] = links
	}
	if doc.GalleryURLs != nil {
		payload["gallery"] = doc.GalleryURLs
	}
	if doc.YouTubeURLs != nil {
		payload["youtubeUrls"] = doc.YouTubeURLs
	}
	if doc.DateYMD != "" {
		payload["date"] = doc.DateYMD
	}
	if doc.DateStartYMD != "" {
		payload["dateStart"] = doc.DateStartYMD
	}
	if doc.DateEndYMD != "" {
		payload["dateEnd"] = doc.DateEndYMD
	}
	return payload, nil
}

func stringField(data map[string]any, key string) string {
	value, _ := data[key].(string)
	return value
}

func boolField(data map[string]any, key string) bool {
	value, _ := data[key].(bool)
	return value
}

func timeField(data map[string]any, key string) time.Time {
	value, _ := data[key].(time.Time)
	return value
}

func stringListField(data map[string]any, key string) []string {
	raw, ok := data[key].([]any)
	if !ok || len(raw) == 0 {
		return nil
	}
	list := make([]string, 0, len(raw))
	for _, entry := range raw {
		if text, ok := entry.(string); ok && text != "" {
			list = append(list, text)
		}
	}
	if len(list) == 0 {
		return nil
	}
	return list
}

// linksField decodes the per-language link record. Legacy documents store a
// flat list alongside a plain-string description; those links apply to every
// language, mirroring how plain localized strings resolve.
func linksField(data map[string]any, key string) map[domain.Lang][]domain.Link {
	switch raw := data[key].(type) {
	case map[string]any:
		result := make(map[domain.Lang][]domain.Link, len(raw))
		for code, entry := range raw {
			lang := domain.Lang(code)
			if lang != domain.LangUA && lang != domain.LangEN {
				continue
			}
			if links := decodeLinkList(entry); links != nil {
				result[lang] = links
			}
		}
		if len(result) == 0 {
			return nil
		}
		return result
	case []any:
		links := decodeLinkList(raw)
		if links == nil {
			return nil
		}
		return map[domain.Lang][]domain.Link{
			domain.LangUA: links,
			domain.LangEN: links,
		}
	default:
		return nil
	}
}

func decodeLinkList(raw any) []domain.Link {
	entries, ok := raw.([]any)
	if !ok || len(entries) == 0 {
		return nil
	}
	links := make([]domain.Link, 0, len(entries))
	for _, entry := range entries {
		record, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		link := domain.Link{
			Text: stringField(record, "text"),
			Href: stringField(record, "href"),
		}
		if link.Href == "" {
			continue
		}
		links = append(links, link)
	}
	if len(links) == 0 {
		return nil
	}
	return links
}
