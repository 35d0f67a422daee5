package upstream

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/windoze95/servicehub-api/internal/models"
)

const (
	// DefaultBooksBaseURL is the Open Library search endpoint.
	DefaultBooksBaseURL = "https://openlibrary.org/search.json"

	// DefaultPageSize is the number of books requested per page.
	DefaultPageSize = 20

	coversBaseURL = "https://covers.openlibrary.org/b/id"
)

// OpenLibraryProvider implements BookProvider.
type OpenLibraryProvider struct {
	baseURL string
	fetch   *fetcher
}

// NewOpenLibraryProvider creates a book search adapter.
func NewOpenLibraryProvider(baseURL string, httpClient *http.Client, rps float64) *OpenLibraryProvider {
	if baseURL == "" {
		baseURL = DefaultBooksBaseURL
	}
	return &OpenLibraryProvider{
		baseURL: baseURL,
		fetch:   newFetcher("openlibrary", httpClient, rps),
	}
}

// SearchBooks runs a full-text search for one page of results.
func (p *OpenLibraryProvider) SearchBooks(ctx context.Context, query string, page, limit int) (*models.BookSearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultPageSize
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("page", strconv.Itoa(page))
	params.Set("limit", strconv.Itoa(limit))

	var result models.BookSearchResult
	if err := p.fetch.getJSON(ctx, p.baseURL+"?"+params.Encode(), &result); err != nil {
		return nil, err
	}
	if result.Docs == nil {
		result.Docs = []models.BookDoc{}
	}
	return &result, nil
}

// CoverURL derives a cover image URL. Size is S, M or L; anything else means M.
// A missing cover ID yields "".
func CoverURL(coverID *int, size string) string {
	if coverID == nil || *coverID <= 0 {
		return ""
	}
	switch size {
	case "S", "M", "L":
	default:
		size = "M"
	}
	return fmt.Sprintf("%s/%d-%s.jpg", coversBaseURL, *coverID, size)
}
