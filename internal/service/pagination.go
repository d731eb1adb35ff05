package service

import "github.com/mtlprog/proposedesk/internal/domain"

// linksAhead is how many page links are shown past the current page.
const linksAhead = 2

// PageControls tells a list surface which pagination controls are enabled.
type PageControls struct {
	CurrentPage     int   `json:"current_page"`
	TotalPages      int   `json:"total_pages"`
	TotalProposes   int   `json:"total_proposes"`
	PreviousEnabled bool  `json:"previous_enabled"`
	NextEnabled     bool  `json:"next_enabled"`
	Links           []int `json:"links"`
}

// NewPageControls derives controls from the server pagination descriptor.
// Links run from 1 to currentPage+2 and never past the last page.
func NewPageControls(p domain.Pagination) PageControls {
	last := min(p.TotalPages, p.CurrentPage+linksAhead)
	links := make([]int, 0, max(last, 0))
	for n := 1; n <= last; n++ {
		links = append(links, n)
	}

	return PageControls{
		CurrentPage:     p.CurrentPage,
		TotalPages:      p.TotalPages,
		TotalProposes:   p.TotalProposes,
		PreviousEnabled: p.HasPreviousPage,
		NextEnabled:     p.HasNextPage,
		Links:           links,
	}
}
