package appointment

import (
	"sort"
	"strings"

	"github.com/BruksfildServices01/frontdesk/internal/httperr"
)

// SortMode orders the list view.
type SortMode string

const (
	SortDateAsc  SortMode = "dateAsc"
	SortDateDesc SortMode = "dateDesc"
	SortNameAsc  SortMode = "nameAsc"
	SortNameDesc SortMode = "nameDesc"
)

const DefaultPageSize = 10

var pageSizes = map[int]bool{10: true, 20: true, 50: true}

func (m SortMode) Valid() bool {
	switch m {
	case SortDateAsc, SortDateDesc, SortNameAsc, SortNameDesc:
		return true
	}
	return false
}

// ViewParams is everything the list view holds besides the collection.
// Status "" means all.
type ViewParams struct {
	Search   string
	Status   Status
	Sort     SortMode
	PageSize int
	Page     int
}

func DefaultViewParams() ViewParams {
	return ViewParams{Sort: SortDateAsc, PageSize: DefaultPageSize, Page: 1}
}

// Normalize fills defaults for unknown sort, page size and page.
func (p ViewParams) Normalize() ViewParams {
	if !p.Sort.Valid() {
		p.Sort = SortDateAsc
	}
	if !pageSizes[p.PageSize] {
		p.PageSize = DefaultPageSize
	}
	if p.Page < 1 {
		p.Page = 1
	}
	return p
}

// Validate rejects a status filter that is neither empty nor a known status.
func (p ViewParams) Validate() error {
	if p.Status != "" && !p.Status.Valid() {
		return httperr.ErrValidation("Status filter must be Pending or Completed")
	}
	return nil
}

// Page is one derived projection of the collection.
type Page struct {
	// Filtered is the searched, filtered and sorted sequence before paging.
	Filtered []Row
	Rows     []Row

	Total      int
	TotalPages int
	Page       int
	PageSize   int
	Sort       SortMode
}

// Matches reports whether r passes both the search and the status filter.
func (p ViewParams) Matches(r Row) bool {
	return matchesSearch(r, normalizeSearch(p.Search)) && matchesStatus(r, p.Status)
}

func normalizeSearch(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func matchesSearch(r Row, q string) bool {
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(r.PatientName), q) ||
		strings.Contains(strings.ToLower(r.Reason), q) ||
		strings.Contains(strings.ToLower(string(r.Status)), q) ||
		strings.Contains(r.Date, q)
}

func matchesStatus(r Row, status Status) bool {
	return status == "" || r.Status == status
}

// Derive filters, sorts and pages rows. rows is never modified.
func Derive(rows []Row, params ViewParams) Page {
	params = params.Normalize()
	q := normalizeSearch(params.Search)

	filtered := make([]Row, 0, len(rows))
	for _, r := range rows {
		if matchesSearch(r, q) && matchesStatus(r, params.Status) {
			filtered = append(filtered, r)
		}
	}

	SortRows(filtered, params.Sort)

	total := len(filtered)
	totalPages := TotalPages(total, params.PageSize)
	page := params.Page
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * params.PageSize
	end := start + params.PageSize
	if end > total {
		end = total
	}

	return Page{
		Filtered:   filtered,
		Rows:       filtered[start:end:end],
		Total:      total,
		TotalPages: totalPages,
		Page:       page,
		PageSize:   params.PageSize,
		Sort:       params.Sort,
	}
}

// TotalPages is max(1, ceil(count/size)).
func TotalPages(count, size int) int {
	if size <= 0 {
		size = DefaultPageSize
	}
	n := (count + size - 1) / size
	if n < 1 {
		return 1
	}
	return n
}

// SortRows stable-sorts rows in place. Date modes rely on date and time being
// fixed-width zero-padded strings.
func SortRows(rows []Row, mode SortMode) {
	var less func(a, b Row) bool
	switch mode {
	case SortDateDesc:
		less = func(a, b Row) bool { return a.Date+a.Time > b.Date+b.Time }
	case SortNameAsc:
		less = func(a, b Row) bool { return a.PatientName < b.PatientName }
	case SortNameDesc:
		less = func(a, b Row) bool { return a.PatientName > b.PatientName }
	default:
		less = func(a, b Row) bool { return a.Date+a.Time < b.Date+b.Time }
	}
	sort.SliceStable(rows, func(i, j int) bool { return less(rows[i], rows[j]) })
}
