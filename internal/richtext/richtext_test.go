package richtext

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

func parse(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("parse html: %v", err)
	}
	return doc
}

func TestSanitize_StripsScriptCapableMarkup(t *testing.T) {
	out := Sanitize(`<p>hi</p><script>alert(1)</script><img src=x onerror=alert(1)>`)
	if strings.Contains(out, "script") || strings.Contains(out, "onerror") {
		t.Fatalf("unsafe markup survived: %q", out)
	}
	if !strings.Contains(out, "<p>hi</p>") {
		t.Fatalf("benign markup lost: %q", out)
	}
}

func TestSanitize_KeepsAuthoredHrefs(t *testing.T) {
	out := Sanitize(`<p><a href="www.donate.org">фонд</a><script>alert(1)</script></p>`)
	doc := parse(t, out)

	if href, _ := doc.Find("a").Attr("href"); href != "www.donate.org" {
		t.Fatalf("href must survive the policy pass untouched, got %q", href)
	}
	links := ExtractLinks(out)
	if len(links) != 1 || links[0].Href != "www.donate.org" {
		t.Fatalf("extraction after sanitize must see the raw href, got %+v", links)
	}
}

func TestEnhanceLinks_ForcesTargetAndRelOnEveryAnchor(t *testing.T) {
	out := EnhanceLinks(Sanitize(`<a href="https://example.org" target="_self" rel="opener">site</a>`))
	doc := parse(t, out)

	anchor := doc.Find("a").First()
	if target, _ := anchor.Attr("target"); target != "_blank" {
		t.Fatalf("target = %q", target)
	}
	if rel, _ := anchor.Attr("rel"); rel != "noopener noreferrer" {
		t.Fatalf("rel = %q", rel)
	}
}

func TestEnhanceLinks_PrependsHTTPSToBareDomains(t *testing.T) {
	out := EnhanceLinks(Sanitize(`<a href="example.org/page">ext</a>`))
	doc := parse(t, out)
	if href, _ := doc.Find("a").Attr("href"); href != "https://example.org/page" {
		t.Fatalf("href = %q", href)
	}
}

func TestNormalizeHref_KnownPrefixesPassThrough(t *testing.T) {
	passthrough := []string{
		"http://a.example",
		"https://a.example",
		"mailto:info@example.org",
		"tel:+380441234567",
		"/projects/abc",
		"#section",
	}
	for _, href := range passthrough {
		if got := NormalizeHref(href); got != href {
			t.Errorf("NormalizeHref(%q) = %q", href, got)
		}
	}
	if got := NormalizeHref("example.org"); got != "https://example.org" {
		t.Errorf("bare domain: %q", got)
	}
	if got := NormalizeHref(""); got != "" {
		t.Errorf("empty href: %q", got)
	}
}

func TestSanitizeEnhancePipeline_Idempotent(t *testing.T) {
	pipeline := func(html string) string { return EnhanceLinks(Sanitize(html)) }
	inputs := []string{
		`<p>plain</p>`,
		`<a href="example.org">a</a><a href="/local">b</a>`,
		`<p>text <a href="mailto:x@y.z">mail</a> more</p>`,
	}
	for _, input := range inputs {
		once := pipeline(input)
		twice := pipeline(once)
		if once != twice {
			t.Errorf("not idempotent for %q:\n once: %q\ntwice: %q", input, once, twice)
		}
	}
}

func TestExtractLinks_CapturesRawHrefAndTrimmedText(t *testing.T) {
	links := ExtractLinks(`<p><a href="example.org">  Visit us </a><a href="https://b.example"></a><a href="">empty</a></p>`)
	if len(links) != 2 {
		t.Fatalf("got %d links, want 2", len(links))
	}
	if links[0].Text != "Visit us" {
		t.Fatalf("text = %q", links[0].Text)
	}
	if links[0].Href != "example.org" {
		t.Fatalf("href must be pre-normalization, got %q", links[0].Href)
	}
	if links[1].Text != "" {
		t.Fatalf("anchor without text must report empty text, got %q", links[1].Text)
	}
}

func TestExtractLinks_NoAnchors(t *testing.T) {
	if links := ExtractLinks(`<p>nothing here</p>`); links != nil {
		t.Fatalf("got %v, want nil", links)
	}
}
