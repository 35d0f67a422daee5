package controller

import "strings"

// SearchState is the paged result view for one query. Searched stays false
// until a query has been committed, so "not searched yet" differs from an
// empty result.
type SearchState[T any] struct {
	Query      string `json:"query"`
	Page       int    `json:"page"`
	PageSize   int    `json:"page_size"`
	Items      []T    `json:"items"`
	Total      int    `json:"total"`
	TotalPages int    `json:"total_pages"`
	Window     []int  `json:"window"`
	HasPrev    bool   `json:"has_prev"`
	HasNext    bool   `json:"has_next"`
	Loading    bool   `json:"loading"`
	Searched   bool   `json:"searched"`
	Error      string `json:"error,omitempty"`

	// Generation identifies the latest issued request.
	Generation uint64 `json:"-"`
}

// NewSearchState returns the initial, not-yet-searched state.
func NewSearchState[T any](pageSize int) SearchState[T] {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return SearchState[T]{
		Page:     1,
		PageSize: pageSize,
		Items:    []T{},
		Window:   []int{},
	}
}

// FetchRequest asks the caller to load one page.
type FetchRequest struct {
	Generation uint64
	Query      string
	Page       int
	PageSize   int
}

// Event is an input to Reduce.
type Event interface {
	searchEvent()
}

// QueryCommitted is a debounced query.
type QueryCommitted struct {
	Query string
}

// PageChanged is a page selection.
type PageChanged struct {
	Page int
}

// FetchResolved carries a successful page load.
type FetchResolved[T any] struct {
	Generation uint64
	Items      []T
	Total      int
}

// FetchFailed carries a failed page load.
type FetchFailed struct {
	Generation uint64
	Err        error
}

func (QueryCommitted) searchEvent()   {}
func (PageChanged) searchEvent()      {}
func (FetchResolved[T]) searchEvent() {}
func (FetchFailed) searchEvent()      {}

// Reduce applies e to s. When the new state needs data it also returns the
// request to issue. Results for anything but the latest request are dropped.
func Reduce[T any](s SearchState[T], e Event) (SearchState[T], *FetchRequest) {
	switch ev := e.(type) {
	case QueryCommitted:
		query := strings.TrimSpace(ev.Query)
		s.Generation++
		if query == "" {
			next := NewSearchState[T](s.PageSize)
			next.Generation = s.Generation
			return next, nil
		}
		s.Query = query
		s.Page = 1
		return s.issue()

	case PageChanged:
		if s.Query == "" {
			return s, nil
		}
		page := ev.Page
		if total := s.TotalPages; total > 0 && page > total {
			page = total
		}
		if page < 1 {
			page = 1
		}
		s.Generation++
		s.Page = page
		return s.issue()

	case FetchResolved[T]:
		if ev.Generation != s.Generation {
			return s, nil
		}
		s.Loading = false
		s.Searched = true
		s.Error = ""
		s.Items = ev.Items
		if s.Items == nil {
			s.Items = []T{}
		}
		s.Total = ev.Total
		s.paginate()
		// A page chosen before the total was known may be past the end.
		if s.TotalPages > 0 && s.Page > s.TotalPages {
			s.Generation++
			s.Page = s.TotalPages
			s.paginate()
			return s.issue()
		}
		return s, nil

	case FetchFailed:
		if ev.Generation != s.Generation {
			return s, nil
		}
		s.Loading = false
		s.Searched = true
		s.Items = []T{}
		s.Total = 0
		if ev.Err != nil {
			s.Error = ev.Err.Error()
		}
		s.paginate()
		return s, nil
	}
	return s, nil
}

func (s SearchState[T]) issue() (SearchState[T], *FetchRequest) {
	s.Loading = true
	s.Error = ""
	return s, &FetchRequest{
		Generation: s.Generation,
		Query:      s.Query,
		Page:       s.Page,
		PageSize:   s.PageSize,
	}
}

func (s *SearchState[T]) paginate() {
	p := Pager{CurrentPage: s.Page, TotalCount: s.Total, PageSize: s.PageSize}
	s.TotalPages = p.TotalPages()
	s.Window = p.Window()
	s.HasPrev = p.HasPrev()
	s.HasNext = p.HasNext()
}
