package service

import (
	"context"
	"reflect"
	"testing"

	"github.com/windoze95/servicehub-api/internal/config"
	"github.com/windoze95/servicehub-api/internal/models"
	"github.com/windoze95/servicehub-api/internal/testutil"
	"github.com/windoze95/servicehub-api/internal/upstream"
)

func TestBookSearch_EmptyQuerySkipsUpstream(t *testing.T) {
	provider := &testutil.MockBookProvider{}
	svc := NewBookService(&config.Config{}, provider)

	page, err := svc.Search(context.Background(), "   ", 3)
	if err != nil {
		t.Fatalf("Search error: %v", err)
	}
	if provider.CallCount() != 0 {
		t.Errorf("upstream called %d times, want 0", provider.CallCount())
	}
	if len(page.Books) != 0 || page.NumFound != 0 {
		t.Errorf("expected empty page, got %+v", page)
	}
}

func TestBookSearch_BuildsCardsAndPaging(t *testing.T) {
	var gotPage, gotLimit int
	provider := &testutil.MockBookProvider{
		SearchBooksFunc: func(ctx context.Context, query string, page, limit int) (*models.BookSearchResult, error) {
			gotPage, gotLimit = page, limit
			return testutil.TestBookSearchResult(205), nil
		},
	}
	svc := NewBookService(&config.Config{}, provider)

	page, err := svc.Search(context.Background(), "dune", 10)
	if err != nil {
		t.Fatalf("Search error: %v", err)
	}
	if gotPage != 10 || gotLimit != 20 {
		t.Errorf("upstream page/limit = %d/%d, want 10/20", gotPage, gotLimit)
	}
	if page.TotalPages != 11 {
		t.Errorf("TotalPages = %d, want 11", page.TotalPages)
	}
	if !reflect.DeepEqual(page.Window, []int{8, 9, 10, 11}) {
		t.Errorf("Window = %v, want [8 9 10 11]", page.Window)
	}
	if !page.HasPrev || !page.HasNext {
		t.Errorf("HasPrev/HasNext = %v/%v, want true/true", page.HasPrev, page.HasNext)
	}

	if len(page.Books) != 2 {
		t.Fatalf("Books = %d, want 2", len(page.Books))
	}
	dune := page.Books[0]
	if dune.CoverURL != "https://covers.openlibrary.org/b/id/11481354-M.jpg" {
		t.Errorf("CoverURL = %q", dune.CoverURL)
	}
	if dune.Year != "1965" || dune.Language != "eng" || dune.Subject != "Science fiction" {
		t.Errorf("card = %+v", dune)
	}

	lotr := page.Books[1]
	if lotr.Authors != "J.R.R. Tolkien, Alan Lee" {
		t.Errorf("Authors = %q", lotr.Authors)
	}
	if lotr.Year != "—" {
		t.Errorf("Year = %q, want '—'", lotr.Year)
	}
	if lotr.CoverURL != "" {
		t.Errorf("CoverURL = %q, want ''", lotr.CoverURL)
	}
}

func TestBookSearch_PagePastEnd(t *testing.T) {
	provider := &testutil.MockBookProvider{
		SearchBooksFunc: func(ctx context.Context, query string, page, limit int) (*models.BookSearchResult, error) {
			return &models.BookSearchResult{NumFound: 400}, nil
		},
	}
	svc := NewBookService(&config.Config{}, provider)

	page, err := svc.Search(context.Background(), "x", 50)
	if err != nil {
		t.Fatalf("Search error: %v", err)
	}
	if page.TotalPages != 20 {
		t.Errorf("TotalPages = %d, want 20", page.TotalPages)
	}
	if !reflect.DeepEqual(page.Window, []int{18, 19, 20}) {
		t.Errorf("Window = %v, want [18 19 20]", page.Window)
	}
	if page.HasNext {
		t.Error("HasNext should be false past the last page")
	}
	if len(page.Books) != 0 {
		t.Errorf("Books = %d, want 0", len(page.Books))
	}
}

func TestBookSearch_PropagatesUpstreamError(t *testing.T) {
	provider := &testutil.MockBookProvider{
		SearchBooksFunc: func(ctx context.Context, query string, page, limit int) (*models.BookSearchResult, error) {
			return nil, upstream.RemoteServiceError{Service: "openlibrary", StatusCode: 500}
		},
	}
	svc := NewBookService(&config.Config{}, provider)

	_, err := svc.Search(context.Background(), "dune", 1)
	if _, ok := err.(upstream.RemoteServiceError); !ok {
		t.Errorf("error type = %T, want RemoteServiceError", err)
	}
}
