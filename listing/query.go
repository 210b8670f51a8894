package listing

import "blightwatch-be/models"

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Query is the state behind a paged case list. Changing any filter value
// through a With* method sends the list back to page 1.
type Query struct {
	Filter   Filter
	Page     int
	PageSize int
}

func NewQuery() Query {
	return Query{Page: 1, PageSize: DefaultPageSize}
}

func (q Query) WithFilter(f Filter) Query {
	if f != q.Filter {
		q.Filter = f
		q.Page = 1
	}
	return q
}

func (q Query) WithStatus(status string) Query {
	f := q.Filter
	f.Status = status
	return q.WithFilter(f)
}

func (q Query) WithOrganization(org string) Query {
	f := q.Filter
	f.Organization = org
	return q.WithFilter(f)
}

func (q Query) WithArea(area string) Query {
	f := q.Filter
	f.Area = area
	return q.WithFilter(f)
}

func (q Query) WithSearch(query string) Query {
	f := q.Filter
	f.Query = query
	return q.WithFilter(f)
}

func (q Query) WithPage(page int) Query {
	q.Page = page
	return q
}

func (q Query) WithPageSize(size int) Query {
	if size != q.PageSize {
		q.PageSize = size
		q.Page = 1
	}
	return q
}

// Page is one screenful of a filtered case list. Start and End are 1-based
// and inclusive ("Showing 11-20 of 42"); both are 0 when Total is 0.
type Page struct {
	Cases      []*models.Case `json:"cases"`
	Page       int            `json:"page"`
	PageSize   int            `json:"pageSize"`
	Total      int            `json:"total"`
	TotalPages int            `json:"totalPages"`
	Start      int            `json:"start"`
	End        int            `json:"end"`
}

// Paginate slices cases into pages of size, clamping page into range.
func Paginate(cases []*models.Case, page, size int) Page {
	if size < 1 || size > MaxPageSize {
		size = DefaultPageSize
	}
	total := len(cases)
	totalPages := (total + size - 1) / size
	if page > totalPages {
		page = totalPages
	}
	if page < 1 {
		page = 1
	}

	p := Page{
		Cases:      []*models.Case{},
		Page:       page,
		PageSize:   size,
		Total:      total,
		TotalPages: totalPages,
	}
	if total == 0 {
		return p
	}
	start := (page - 1) * size
	end := start + size
	if end > total {
		end = total
	}
	p.Cases = cases[start:end]
	p.Start = start + 1
	p.End = end
	return p
}

// Run filters, sorts newest first and paginates.
func Run(cases []*models.Case, q Query) Page {
	filtered := Apply(cases, q.Filter)
	SortNewestFirst(filtered)
	return Paginate(filtered, q.Page, q.PageSize)
}
