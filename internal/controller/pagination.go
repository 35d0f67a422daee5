package controller

// DefaultPageSize is the number of results shown per page.
const DefaultPageSize = 20

// windowWidth is the number of page buttons shown at once.
const windowWidth = 5

// PageWindow returns the page numbers to show around current. current is
// clamped into [1, totalPages].
func PageWindow(current, totalPages int) []int {
	if totalPages <= 0 {
		return []int{}
	}
	if totalPages <= windowWidth {
		return pageRange(1, totalPages)
	}
	if current > totalPages {
		current = totalPages
	}
	start := current - 2
	if start < 1 {
		start = 1
	}
	end := start + windowWidth - 1
	if end > totalPages {
		end = totalPages
	}
	return pageRange(start, end)
}

func pageRange(from, to int) []int {
	if to < from {
		return []int{}
	}
	pages := make([]int, 0, to-from+1)
	for p := from; p <= to; p++ {
		pages = append(pages, p)
	}
	return pages
}

// Pager derives paging controls from a result count.
type Pager struct {
	CurrentPage int
	TotalCount  int
	PageSize    int
}

// NewPager creates a Pager. A non-positive size means DefaultPageSize.
func NewPager(current, total, size int) Pager {
	if size <= 0 {
		size = DefaultPageSize
	}
	if current < 1 {
		current = 1
	}
	return Pager{CurrentPage: current, TotalCount: total, PageSize: size}
}

func (p Pager) size() int {
	if p.PageSize <= 0 {
		return DefaultPageSize
	}
	return p.PageSize
}

// TotalPages is ceil(TotalCount / PageSize).
func (p Pager) TotalPages() int {
	if p.TotalCount <= 0 {
		return 0
	}
	size := p.size()
	return (p.TotalCount + size - 1) / size
}

// HasPrev reports whether a previous page exists.
func (p Pager) HasPrev() bool {
	return p.CurrentPage != 1
}

// HasNext reports whether a next page exists.
func (p Pager) HasNext() bool {
	return p.CurrentPage < p.TotalPages()
}

// Offset is the zero-based index of the first result on the current page.
func (p Pager) Offset() int {
	if p.CurrentPage < 1 {
		return 0
	}
	return (p.CurrentPage - 1) * p.size()
}

// Window is PageWindow for the current page.
func (p Pager) Window() []int {
	return PageWindow(p.CurrentPage, p.TotalPages())
}
