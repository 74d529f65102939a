// Package richtext post-processes author-supplied HTML from the admin
// rich-text editor before it is persisted or rendered.
package richtext

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/microcosm-cc/bluemonday"

	"github.com/svitanok-centre/site/internal/domain"
)

var policy = newContentPolicy()

func newContentPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowURLSchemes("http", "https", "mailto", "tel")
	// target and rel are rewritten by EnhanceLinks; the policy must keep
	// them so a second sanitize pass is a no-op.
	p.AllowAttrs("target", "rel").OnElements("a")
	p.AllowAttrs("class").OnElements("p", "span", "blockquote")
	return p
}

// Sanitize strips script-capable markup. It is a pure policy pass: anchors
// keep their authored hrefs, so link extraction on the result still sees
// the raw form. EnhanceLinks handles anchor rewriting separately. The
// result is stable under repeated application: admin edit-reload runs
// previously saved HTML through this function again.
func Sanitize(html string) string {
	if strings.TrimSpace(html) == "" {
		return ""
	}
	return policy.Sanitize(html)
}

// EnhanceLinks rewrites anchors in already-sanitized HTML: hrefs without a
// recognised protocol get https:// prepended, and target/rel are forced so
// authored links never hijack the current tab or leak an opener handle.
func EnhanceLinks(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return html
	}
	doc.Find("a[href]").Each(func(_ int, anchor *goquery.Selection) {
		href, _ := anchor.Attr("href")
		anchor.SetAttr("href", NormalizeHref(href))
		anchor.SetAttr("target", "_blank")
		anchor.SetAttr("rel", "noopener noreferrer")
	})
	body, err := doc.Find("body").Html()
	if err != nil {
		return html
	}
	return body
}

var passthroughPrefixes = []string{"http://", "https://", "mailto:", "tel:", "/", "#"}

// NormalizeHref treats bare domains and paths as external web addresses by
// default, prepending https:// unless the href already carries a known
// protocol or is site-relative.
func NormalizeHref(href string) string {
	trimmed := strings.TrimSpace(href)
	if trimmed == "" {
		return trimmed
	}
	for _, prefix := range passthroughPrefixes {
		if strings.HasPrefix(trimmed, prefix) {
			return trimmed
		}
	}
	return "https://" + trimmed
}

// ExtractLinks captures the trimmed visible text and raw href of every
// anchor with a non-empty href, for storage as structured metadata
// alongside the HTML blob. Hrefs are reported pre-normalization.
func ExtractLinks(html string) []domain.Link {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil
	}
	var links []domain.Link
	doc.Find("a[href]").Each(func(_ int, anchor *goquery.Selection) {
		href, _ := anchor.Attr("href")
		if strings.TrimSpace(href) == "" {
			return
		}
		links = append(links, domain.Link{
			Text: strings.TrimSpace(anchor.Text()),
			Href: href,
		})
	})
	return links
}
