package api

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"beltempo/internal/domain/entity"
	"beltempo/internal/domain/model/external"
	"beltempo/pkg/http"
	"beltempo/pkg/util/stringutils"
)

const apiPath = "/w/api.php"

// wikipediaSummaryGateway implements SummaryGateway with the MediaWiki action API
type wikipediaSummaryGateway struct {
	httpClient *http.Client
	maxChars   int
}

// NewWikipediaSummaryGateway creates a SummaryGateway. Extracts are cut to maxChars runes.
func NewWikipediaSummaryGateway(baseUrl string, maxChars int, clientOptions http.ClientOptions) SummaryGateway {
	if maxChars <= 0 {
		maxChars = 1000
	}
	return &wikipediaSummaryGateway{
		httpClient: http.NewHttpClient(baseUrl, clientOptions),
		maxChars:   maxChars,
	}
}

func (w *wikipediaSummaryGateway) Name() string {
	return "summary"
}

func (w *wikipediaSummaryGateway) Probe(ctx context.Context) error {
	return probe(ctx, w.httpClient)
}

// Search runs a full-text search, then loads the intro extract of the top hit.
func (w *wikipediaSummaryGateway) Search(ctx context.Context, query string) (*entity.Summary, error) {
	title, err := w.topHit(ctx, query)
	if err != nil {
		return nil, err
	}

	page, err := w.page(ctx, title)
	if err != nil {
		return nil, err
	}

	if page.Missing || page.Invalid {
		return nil, fmt.Errorf("%w: page %q", ErrSummaryNotFound, title)
	}
	if _, ok := page.PageProps["disambiguation"]; ok {
		return nil, fmt.Errorf("%w: page %q", ErrSummaryAmbiguous, page.Title)
	}

	text := strings.TrimSpace(page.Extract)
	if text == "" {
		return nil, fmt.Errorf("%w: page %q has no extract", ErrSummaryNotFound, page.Title)
	}

	return &entity.Summary{
		Title: page.Title,
		Text:  stringutils.Truncate(text, w.maxChars),
		URL:   page.FullURL,
	}, nil
}

func (w *wikipediaSummaryGateway) topHit(ctx context.Context, query string) (string, error) {
	successResp, errResp, _, err := w.httpClient.Request().
		WithContext(ctx).
		WithMethod(http.GET).
		WithPath(apiPath).
		WithQueryParams(map[string]string{
			"action":   "query",
			"list":     "search",
			"srsearch": query,
			"srlimit":  "1",
			"format":   "json",
		}).
		WithSuccessResp(&external.WikipediaSearchResponse{}).
		WithErrorResp(&external.WikipediaError{}).
		Execute()

	if errResp != nil {
		errorResponse := errResp.(*external.WikipediaError)
		return "", fmt.Errorf("summary search rejected: %s: %w", errorResponse.Error.Info, err)
	}
	if err != nil {
		return "", fmt.Errorf("failed to search summary for %q: %w", query, err)
	}

	hits := successResp.(*external.WikipediaSearchResponse).Query.Search
	if len(hits) == 0 {
		return "", fmt.Errorf("%w: no hit for %q", ErrSummaryNotFound, query)
	}
	return hits[0].Title, nil
}

func (w *wikipediaSummaryGateway) page(ctx context.Context, title string) (*external.WikipediaPage, error) {
	successResp, errResp, _, err := w.httpClient.Request().
		WithContext(ctx).
		WithMethod(http.GET).
		WithPath(apiPath).
		WithQueryParams(map[string]string{
			"action":        "query",
			"titles":        title,
			"prop":          "extracts|info|pageprops",
			"ppprop":        "disambiguation",
			"exintro":       "1",
			"explaintext":   "1",
			"exchars":       strconv.Itoa(w.maxChars),
			"inprop":        "url",
			"redirects":     "1",
			"format":        "json",
			"formatversion": "2",
		}).
		WithSuccessResp(&external.WikipediaPageResponse{}).
		WithErrorResp(&external.WikipediaError{}).
		Execute()

	if errResp != nil {
		errorResponse := errResp.(*external.WikipediaError)
		return nil, fmt.Errorf("summary page rejected: %s: %w", errorResponse.Error.Info, err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load summary page %q: %w", title, err)
	}

	pages := successResp.(*external.WikipediaPageResponse).Query.Pages
	if len(pages) == 0 {
		return nil, fmt.Errorf("%w: page %q", ErrSummaryNotFound, title)
	}
	return &pages[0], nil
}
