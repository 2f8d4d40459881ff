package hyrox

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"sync"

	"hyroxstats-backend/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// Individual is the outcome of fetching one athlete page. A failed
// fetch or parse leaves Record nil and Err set; the batch keeps going
// without it.
type Individual struct {
	Url    string
	Record *AthleteRecord
	Err    error
}

func (i Individual) Usable() bool {
	return i.Err == nil && i.Record != nil
}

// Details is an ordered collection of athlete outcomes, in discovery
// order. Discovery order usually follows rank but is not guaranteed to.
type Details struct {
	Individuals []Individual
}

// Records returns the usable athlete records, preserving order.
func (d Details) Records() []*AthleteRecord {
	var out []*AthleteRecord
	for _, individual := range d.Individuals {
		if individual.Usable() {
			out = append(out, individual.Record)
		}
	}
	return out
}

// Parsed returns how many athletes were fetched and parsed
// successfully.
func (d Details) Parsed() int {
	count := 0
	for _, individual := range d.Individuals {
		if individual.Usable() {
			count++
		}
	}
	return count
}

// MergeDetails concatenates result sets in argument order.
func MergeDetails(list ...Details) Details {
	var out Details
	for _, d := range list {
		out.Individuals = append(out.Individuals, d.Individuals...)
	}
	return out
}

// FetchIndividual fetches one athlete page and parses its result
// tables.
func (c *Client) FetchIndividual(ctx context.Context, url string) (*AthleteRecord, error) {
	ctx, span := tracer.Start(ctx, "FetchIndividual")
	defer span.End()
	span.SetAttributes(attribute.String("url", url))

	res, err := c.Http.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch athlete page")
		return nil, err
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewBuffer(res.Body()))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to parse athlete page html")
		return nil, err
	}

	record, err := ParseRecord(htmlutil.ExtractTables(doc))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to parse athlete record")
		return nil, err
	}
	return record, nil
}

// FetchIndividuals fetches every athlete URL concurrently. Output
// position i always corresponds to urls[i] regardless of completion
// order, so consumers see a stable, input-deterministic order.
// Failures occupy their slot as unusable entries instead of aborting
// the batch.
func (c *Client) FetchIndividuals(ctx context.Context, urls []string) Details {
	ctx, span := tracer.Start(ctx, "FetchIndividuals")
	defer span.End()

	individuals := make([]Individual, len(urls))
	wg := sync.WaitGroup{}
	for i, url := range urls {
		i, url := i, url
		wg.Add(1)
		go func() {
			defer wg.Done()

			record, err := c.FetchIndividual(ctx, url)
			if err != nil {
				slog.WarnContext(ctx, "skipping athlete page", "url", url, "err", err)
			}
			individuals[i] = Individual{Url: url, Record: record, Err: err}
		}()
	}
	wg.Wait()

	details := Details{Individuals: individuals}
	span.SetAttributes(
		attribute.Int("requested", len(urls)),
		attribute.Int("parsed", details.Parsed()),
	)
	slog.InfoContext(
		ctx, "fetched athlete pages",
		"requested", len(urls),
		"parsed", details.Parsed(),
	)
	return details
}

// FetchDetails discovers athlete pages across every listing URL in
// order, then fetches and parses each one. A listing that cannot be
// fetched or lacks a results list fails the whole call; individual
// athlete failures do not.
func (c *Client) FetchDetails(ctx context.Context, listingUrls []string) (Details, error) {
	var athleteUrls []string
	for _, listing := range listingUrls {
		urls, err := c.Discover(ctx, listing)
		if err != nil {
			return Details{}, fmt.Errorf("discover %s: %w", listing, err)
		}
		athleteUrls = append(athleteUrls, urls...)
	}
	return c.FetchIndividuals(ctx, athleteUrls), nil
}
