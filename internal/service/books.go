package service

import (
	"context"
	"strconv"
	"strings"

	"github.com/windoze95/servicehub-api/internal/config"
	"github.com/windoze95/servicehub-api/internal/controller"
	"github.com/windoze95/servicehub-api/internal/upstream"
)

const missingYear = "—"

// BookService is the business logic layer for book search.
type BookService struct {
	Cfg      *config.Config
	Provider upstream.BookProvider
	PageSize int
}

// BookCard is a display-ready search result.
type BookCard struct {
	Key      string `json:"key"`
	Title    string `json:"title"`
	CoverURL string `json:"coverUrl"`
	Authors  string `json:"authors"`
	Year     string `json:"year"`
	Language string `json:"language,omitempty"`
	Subject  string `json:"subject,omitempty"`
}

// BookPage is one page of search results with its paging controls.
type BookPage struct {
	Query      string     `json:"query"`
	Page       int        `json:"page"`
	PageSize   int        `json:"pageSize"`
	NumFound   int        `json:"numFound"`
	TotalPages int        `json:"totalPages"`
	Window     []int      `json:"window"`
	HasPrev    bool       `json:"hasPrev"`
	HasNext    bool       `json:"hasNext"`
	Books      []BookCard `json:"books"`
}

// NewBookService is the constructor function for initializing a new BookService.
func NewBookService(cfg *config.Config, provider upstream.BookProvider) *BookService {
	pageSize := controller.DefaultPageSize
	if cfg != nil && cfg.EnvVars.PageSize > 0 {
		pageSize = cfg.EnvVars.PageSize
	}
	return &BookService{Cfg: cfg, Provider: provider, PageSize: pageSize}
}

func (s *BookService) pageSize() int {
	if s.PageSize <= 0 {
		return controller.DefaultPageSize
	}
	return s.PageSize
}

// Search returns one page of results. A blank query returns an empty page
// without calling the upstream.
func (s *BookService) Search(ctx context.Context, query string, page int) (*BookPage, error) {
	query = strings.TrimSpace(query)
	if page < 1 {
		page = 1
	}
	result := &BookPage{
		Query:    query,
		Page:     page,
		PageSize: s.pageSize(),
		Window:   []int{},
		Books:    []BookCard{},
	}
	if query == "" {
		return result, nil
	}

	cards, total, err := s.FetchPage(ctx, controller.FetchRequest{Query: query, Page: page, PageSize: s.pageSize()})
	if err != nil {
		return nil, err
	}

	pager := controller.NewPager(page, total, s.pageSize())
	result.NumFound = total
	result.TotalPages = pager.TotalPages()
	result.Window = pager.Window()
	result.HasPrev = pager.HasPrev()
	result.HasNext = pager.HasNext()
	result.Books = cards
	return result, nil
}

// FetchPage loads and converts one page. Its signature matches
// controller.FetchFunc so live search can use it directly.
func (s *BookService) FetchPage(ctx context.Context, req controller.FetchRequest) ([]BookCard, int, error) {
	size := req.PageSize
	if size <= 0 {
		size = s.pageSize()
	}
	result, err := s.Provider.SearchBooks(ctx, req.Query, req.Page, size)
	if err != nil {
		return nil, 0, err
	}

	cards := make([]BookCard, 0, len(result.Docs))
	for _, doc := range result.Docs {
		card := BookCard{
			Key:      doc.Key,
			Title:    doc.Title,
			CoverURL: upstream.CoverURL(doc.CoverID, "M"),
			Authors:  strings.Join(doc.AuthorNames, ", "),
			Year:     missingYear,
		}
		if doc.FirstPublishYear != nil && *doc.FirstPublishYear != 0 {
			card.Year = strconv.Itoa(*doc.FirstPublishYear)
		}
		if len(doc.Languages) > 0 {
			card.Language = doc.Languages[0]
		}
		if len(doc.Subjects) > 0 {
			card.Subject = doc.Subjects[0]
		}
		cards = append(cards, card)
	}
	return cards, result.NumFound, nil
}
