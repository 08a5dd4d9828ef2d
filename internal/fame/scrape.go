package fame

import (
	"context"
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"hoopfame/internal"
)

var (
	rePair  = regexp.MustCompile(`(?s)<p>\s*<b>(.+?)</b>(.+?)</p>`)
	reTag   = regexp.MustCompile(`</?\w+[^>]*>`)
	reSpace = regexp.MustCompile(`\s`)
)

// scrape pulls the inductee list out of the live page markup: one content
// section located by id, inductee names in <b> inside <p>, category text
// after the closing tag. A narrow best-effort extractor tied to the page's
// current shape; any upstream markup change breaks it, so it stays behind
// Resolve where swapping it out is a local change.
func (r *Resolver) scrape(ctx context.Context) ([]internal.InducteeRecord, error) {
	body, err := r.get(ctx, r.cfg.FameScrapeURL)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(body)))
	if err != nil {
		return nil, err
	}

	section := doc.Find("section#" + r.cfg.FameSectionID)
	if section.Length() == 0 {
		return nil, &ScrapeError{Reason: fmt.Sprintf("section %q not found", r.cfg.FameSectionID)}
	}

	var markup strings.Builder
	section.Find("p").Each(func(_ int, p *goquery.Selection) {
		if h, err := goquery.OuterHtml(p); err == nil {
			markup.WriteString(h)
			markup.WriteString("\n")
		}
	})

	pairs := rePair.FindAllStringSubmatch(markup.String(), -1)
	if len(pairs) == 0 {
		return nil, &ScrapeError{Reason: "no inductee paragraphs matched"}
	}

	// The first matched pair is the section heading, not an entry.
	out := make([]internal.InducteeRecord, 0, len(pairs)-1)
	for _, pair := range pairs[1:] {
		name := strings.TrimSpace(html.UnescapeString(reTag.ReplaceAllString(pair[1], "")))
		if name == "" {
			continue
		}
		category := reTag.ReplaceAllString(pair[2], "")
		category = reSpace.ReplaceAllString(category, "")
		category = strings.ReplaceAll(category, ",", "")
		out = append(out, internal.InducteeRecord{Name: name, Category: html.UnescapeString(category)})
	}
	if len(out) == 0 {
		return nil, &ScrapeError{Reason: "no inductee entries extracted"}
	}
	return out, nil
}
