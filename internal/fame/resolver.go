// Package fame obtains the Hall of Fame inductee list. Resolution is a
// two-stage strategy: a precomputed CSV resource first, a live scrape of
// the inductee page only when that fails. The second stage never runs
// speculatively.
package fame

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"hoopfame/internal"
	"hoopfame/internal/clean"
	"hoopfame/internal/config"
	"hoopfame/internal/dataset"
)

// ErrUnavailable is returned when both inductee sources fail. Every
// downstream join depends on the inductee set, so the caller must abort.
var ErrUnavailable = errors.New("hall of fame list unavailable")

// ScrapeError reports a fallback page whose structure no longer matches
// what the extractor expects.
type ScrapeError struct {
	Reason string
}

func (e *ScrapeError) Error() string {
	return "hall of fame scrape: " + e.Reason
}

// Source identifies which resolution stage produced the inductee list.
type Source string

const (
	SourceCSV    Source = "csv"
	SourceScrape Source = "scrape"
)

var csvSchema = dataset.Schema{
	Columns: []dataset.Column{
		{Name: "name", Kind: dataset.KindString},
		{Name: "category", Kind: dataset.KindCategory},
	},
}

type Resolver struct {
	cfg        config.Config
	httpClient *http.Client
	log        *zap.Logger
}

type Option func(*Resolver)

func WithHTTPClient(c *http.Client) Option {
	return func(r *Resolver) { r.httpClient = c }
}

func WithLogger(l *zap.Logger) Option {
	return func(r *Resolver) { r.log = l }
}

func NewResolver(cfg config.Config, opts ...Option) *Resolver {
	r := &Resolver{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: time.Duration(cfg.HTTPTimeoutMs) * time.Millisecond},
		log:        zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve produces the inductee list and applies the known name fixups.
// No retries on the primary path and no third fallback.
func (r *Resolver) Resolve(ctx context.Context) ([]internal.InducteeRecord, Source, error) {
	source := SourceCSV
	inductees, csvErr := r.fetchCSV(ctx)
	if csvErr != nil {
		r.log.Warn("inductee csv fetch failed, scraping live page", zap.Error(csvErr))
		var scrapeErr error
		inductees, scrapeErr = r.scrape(ctx)
		if scrapeErr != nil {
			return nil, "", fmt.Errorf("%w: csv: %v; fallback: %w", ErrUnavailable, csvErr, scrapeErr)
		}
		source = SourceScrape
		r.log.Info("inductees scraped from live page", zap.Int("count", len(inductees)))
	} else {
		r.log.Info("inductees loaded from cached csv", zap.Int("count", len(inductees)))
	}

	for i := range inductees {
		inductees[i].Name = clean.FixInducteeName(inductees[i].Name)
	}
	return inductees, source, nil
}

func (r *Resolver) fetchCSV(ctx context.Context) ([]internal.InducteeRecord, error) {
	body, err := r.get(ctx, r.cfg.FameCSVURL)
	if err != nil {
		return nil, err
	}

	rows, err := dataset.Read(bytes.NewReader(body), csvSchema)
	if err != nil {
		return nil, err
	}

	out := make([]internal.InducteeRecord, 0, len(rows))
	for _, row := range rows {
		name := row.Str("name")
		if name == "" {
			continue
		}
		out = append(out, internal.InducteeRecord{Name: name, Category: row.Str("category")})
	}
	if len(out) == 0 {
		return nil, errors.New("inductee csv: no entries")
	}
	return out, nil
}

func (r *Resolver) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%s: status %d", url, resp.StatusCode)
	}
	return body, nil
}
