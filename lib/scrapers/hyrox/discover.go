package hyrox

import (
	"bytes"
	"context"
	"strings"

	"hyroxstats-backend/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const listingEndpoint = "index.php"

// the container holding the <li> result rows on a listing page
const resultsListSelector = "div.col-sm-12.row-xs"

// BaseUrl strips the query string from a listing URL and ensures the
// remainder ends with the listing endpoint.
func BaseUrl(listingUrl string) string {
	base, _, _ := strings.Cut(listingUrl, "?")
	if !strings.HasSuffix(base, listingEndpoint) {
		base += listingEndpoint
	}
	return base
}

// Discover fetches a results-listing page and returns the athlete page
// URLs it links to, in document order. Document order usually follows
// rank, but nothing downstream may rely on that.
//
// Athlete URLs are formed by appending each anchor's raw href to the
// listing's base URL with no separator in between; the site emits
// "?pidp=..." hrefs so the result is a well-formed URL.
func (c *Client) Discover(ctx context.Context, listingUrl string) ([]string, error) {
	ctx, span := tracer.Start(ctx, "Discover")
	defer span.End()
	span.SetAttributes(attribute.String("url", listingUrl))

	res, err := c.Http.R().
		SetContext(ctx).
		Get(listingUrl)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch listing page")
		return nil, err
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewBuffer(res.Body()))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to parse listing page html")
		return nil, err
	}

	urls, err := discoverLinks(ctx, doc, BaseUrl(listingUrl))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetAttributes(attribute.Int("athlete_count", len(urls)))
	return urls, nil
}

func discoverLinks(ctx context.Context, doc *goquery.Document, baseUrl string) ([]string, error) {
	container := doc.Find(resultsListSelector).First()
	if container.Length() == 0 {
		return nil, StructureError{Reason: "results list container not found"}
	}

	var urls []string
	for _, anchor := range htmlutil.GetAnchors(ctx, container.Find("li a")) {
		if anchor.Href == "" {
			// list items without a link are routine markup noise
			continue
		}
		urls = append(urls, baseUrl+anchor.Href)
	}
	return urls, nil
}
