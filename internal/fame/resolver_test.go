package fame

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"hoopfame/internal/config"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func testConfig() config.Config {
	return config.Config{
		FameCSVURL:    "https://example.test/hof.csv",
		FameScrapeURL: "https://example.test/inductees/",
		FameSectionID: "nbaArticleContent",
		HTTPTimeoutMs: 1000,
	}
}

func response(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     make(http.Header),
	}
}

func stubResolver(t *testing.T, rt roundTripFunc) *Resolver {
	t.Helper()
	return NewResolver(testConfig(), WithHTTPClient(&http.Client{Transport: rt}))
}

const scrapePage = `<html><body>
<section id="nbaArticleContent">
<p> <b>Naismith Memorial Basketball Hall of Fame</b> Inductees</p>
<p> <b>Dan Issell</b> Player, 1993</p>
<p> <b>Red Auerbach</b> <b>Coach</b></p>
</section>
</body></html>`

func TestResolvePrimaryCSV(t *testing.T) {
	r := stubResolver(t, func(req *http.Request) (*http.Response, error) {
		if req.URL.String() != "https://example.test/hof.csv" {
			t.Fatalf("unexpected url %s", req.URL)
		}
		return response(http.StatusOK, "name,category\nDan Issell,Player\nRed Auerbach,Coach\n"), nil
	})

	inductees, source, err := r.Resolve(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if source != SourceCSV {
		t.Fatalf("source=%s", source)
	}
	if len(inductees) != 2 {
		t.Fatalf("len=%d", len(inductees))
	}
	if inductees[0].Name != "Dan Issel" {
		t.Fatalf("misspelling not fixed: %q", inductees[0].Name)
	}
	if inductees[1].Category != "Coach" {
		t.Fatalf("category=%q", inductees[1].Category)
	}
}

func TestResolveFallbackScrape(t *testing.T) {
	r := stubResolver(t, func(req *http.Request) (*http.Response, error) {
		switch req.URL.String() {
		case "https://example.test/hof.csv":
			return response(http.StatusNotFound, "not here"), nil
		case "https://example.test/inductees/":
			return response(http.StatusOK, scrapePage), nil
		}
		t.Fatalf("unexpected url %s", req.URL)
		return nil, nil
	})

	inductees, source, err := r.Resolve(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if source != SourceScrape {
		t.Fatalf("source=%s", source)
	}
	// The heading paragraph is discarded.
	if len(inductees) != 2 {
		t.Fatalf("len=%d: %+v", len(inductees), inductees)
	}
	if inductees[0].Name != "Dan Issel" {
		t.Fatalf("name=%q", inductees[0].Name)
	}
	// Tags, whitespace and commas stripped from the trailing text.
	if inductees[0].Category != "Player1993" {
		t.Fatalf("category=%q", inductees[0].Category)
	}
	if inductees[1].Category != "Coach" {
		t.Fatalf("category=%q", inductees[1].Category)
	}
}

func TestResolveScrapeErrorOnEmptySection(t *testing.T) {
	page := `<html><body><section id="nbaArticleContent"><p>No bold entries here.</p></section></body></html>`
	r := stubResolver(t, func(req *http.Request) (*http.Response, error) {
		if req.URL.String() == "https://example.test/hof.csv" {
			return response(http.StatusInternalServerError, "boom"), nil
		}
		return response(http.StatusOK, page), nil
	})

	_, _, err := r.Resolve(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	var scrape *ScrapeError
	if !errors.As(err, &scrape) {
		t.Fatalf("want ScrapeError, got %v", err)
	}
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("want ErrUnavailable, got %v", err)
	}
}

func TestResolveScrapeErrorOnMissingSection(t *testing.T) {
	page := `<html><body><div id="other"></div></body></html>`
	r := stubResolver(t, func(req *http.Request) (*http.Response, error) {
		if req.URL.String() == "https://example.test/hof.csv" {
			return response(http.StatusBadGateway, ""), nil
		}
		return response(http.StatusOK, page), nil
	})

	_, _, err := r.Resolve(context.Background())
	var scrape *ScrapeError
	if !errors.As(err, &scrape) {
		t.Fatalf("want ScrapeError, got %v", err)
	}
}

func TestResolveBothPathsDown(t *testing.T) {
	r := stubResolver(t, func(req *http.Request) (*http.Response, error) {
		return nil, errors.New("connection refused")
	})

	_, _, err := r.Resolve(context.Background())
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("want ErrUnavailable, got %v", err)
	}
}
