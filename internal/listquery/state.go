// Package listquery holds the query state of a list view (page, free-text
// search and filters) and keeps it synchronized with its persisted form and
// with the outbound list-fetch parameters.
//
// State values are immutable from the caller's point of view: every
// transition returns a new State and leaves the receiver untouched.
package listquery

import (
	"slices"
	"strings"
	"time"
)

// FirstPage is the lowest page index; pages are 1-based.
const FirstPage = 1

// DateRange is an optional [From, To] interval; either bound may be absent.
type DateRange struct {
	From *time.Time
	To   *time.Time
}

// IsZero reports whether neither bound is set.
func (r DateRange) IsZero() bool {
	return r.From == nil && r.To == nil
}

// Equal compares bounds by instant.
func (r DateRange) Equal(o DateRange) bool {
	return timeEqual(r.From, o.From) && timeEqual(r.To, o.To)
}

func (r DateRange) normalized() DateRange {
	return DateRange{From: utc(r.From), To: utc(r.To)}
}

// State is the canonical "current list view": which page under which filters.
type State struct {
	Page             int
	SearchTerm       string
	ProposeStatus    []string // empty means unfiltered
	InspectionStatus []string // empty means unfiltered
	AssigneeID       string   // empty means any assignee
	ProposeDate      DateRange
	InspectionDate   DateRange
}

// Default returns the state of a freshly mounted view.
func Default() State {
	return State{Page: FirstPage}
}

// FilterFields is a partial filter update. Nil fields are left untouched;
// a non-nil pointer to an empty value clears that filter.
type FilterFields struct {
	ProposeStatus    *[]string
	InspectionStatus *[]string
	AssigneeID       *string
	ProposeDate      *DateRange
	InspectionDate   *DateRange
}

// IsEmpty reports whether the update carries no field at all.
func (f FilterFields) IsEmpty() bool {
	return f.ProposeStatus == nil && f.InspectionStatus == nil && f.AssigneeID == nil &&
		f.ProposeDate == nil && f.InspectionDate == nil
}

// KnownCodes lists the status codes accepted for each status filter.
// A nil list accepts any code.
type KnownCodes struct {
	Propose    []string
	Inspection []string
}

// WithSearchTerm replaces the free-text term, trimmed. A different term starts
// over at the first page; the same term leaves the state unchanged.
func (s State) WithSearchTerm(term string) State {
	term = strings.TrimSpace(term)
	if term == s.SearchTerm {
		return s
	}
	s.SearchTerm = term
	s.Page = FirstPage
	return s
}

// WithFilters merges the set fields of f and resets the page. An empty
// update returns the state unchanged.
func (s State) WithFilters(f FilterFields) State {
	if f.IsEmpty() {
		return s
	}
	if f.ProposeStatus != nil {
		s.ProposeStatus = *f.ProposeStatus
	}
	if f.InspectionStatus != nil {
		s.InspectionStatus = *f.InspectionStatus
	}
	if f.AssigneeID != nil {
		s.AssigneeID = *f.AssigneeID
	}
	if f.ProposeDate != nil {
		s.ProposeDate = *f.ProposeDate
	}
	if f.InspectionDate != nil {
		s.InspectionDate = *f.InspectionDate
	}
	s.Page = FirstPage
	return s.normalized()
}

// Cleared drops every filter and keeps the page and the search term.
func (s State) Cleared() State {
	return State{Page: s.Page, SearchTerm: s.SearchTerm}.normalized()
}

// Next moves one page forward.
func (s State) Next() State {
	s.Page = clampPage(s.Page) + 1
	return s
}

// Previous moves one page back, never below the first page.
func (s State) Previous() State {
	s.Page = clampPage(s.Page - 1)
	return s
}

// MoveTo jumps to page n. Values below the first page clamp to it; there is no
// upper bound because the total page count belongs to the server.
func (s State) MoveTo(n int) State {
	s.Page = clampPage(n)
	return s
}

// HasFilters reports whether any filter field (search term excluded) is set.
func (s State) HasFilters() bool {
	return len(s.ProposeStatus) > 0 || len(s.InspectionStatus) > 0 || s.AssigneeID != "" ||
		!s.ProposeDate.IsZero() || !s.InspectionDate.IsZero()
}

// Sanitize drops status codes that are not in known and clamps the page.
// It is applied to anything read back from an editable representation.
func (s State) Sanitize(known KnownCodes) State {
	s = s.normalized()
	s.ProposeStatus = keepKnown(s.ProposeStatus, known.Propose)
	s.InspectionStatus = keepKnown(s.InspectionStatus, known.Inspection)
	return s
}

// Clone returns a copy that shares no slices with s.
func (s State) Clone() State {
	s.ProposeStatus = slices.Clone(s.ProposeStatus)
	s.InspectionStatus = slices.Clone(s.InspectionStatus)
	return s
}

// Equal compares two states; status sets compare without regard to order.
func (s State) Equal(o State) bool {
	a, b := s.normalized(), o.normalized()
	return a.Page == b.Page &&
		a.SearchTerm == b.SearchTerm &&
		slices.Equal(a.ProposeStatus, b.ProposeStatus) &&
		slices.Equal(a.InspectionStatus, b.InspectionStatus) &&
		a.AssigneeID == b.AssigneeID &&
		a.ProposeDate.Equal(b.ProposeDate) &&
		a.InspectionDate.Equal(b.InspectionDate)
}

func (s State) normalized() State {
	s.Page = clampPage(s.Page)
	s.SearchTerm = strings.TrimSpace(s.SearchTerm)
	s.AssigneeID = strings.TrimSpace(s.AssigneeID)
	s.ProposeStatus = normalizeCodes(s.ProposeStatus)
	s.InspectionStatus = normalizeCodes(s.InspectionStatus)
	s.ProposeDate = s.ProposeDate.normalized()
	s.InspectionDate = s.InspectionDate.normalized()
	return s
}

func clampPage(page int) int {
	if page < FirstPage {
		return FirstPage
	}
	return page
}

// normalizeCodes returns a sorted, deduplicated copy; empty input becomes nil.
func normalizeCodes(codes []string) []string {
	out := make([]string, 0, len(codes))
	for _, c := range codes {
		if c = strings.TrimSpace(c); c != "" {
			out = append(out, c)
		}
	}
	if len(out) == 0 {
		return nil
	}
	slices.Sort(out)
	return slices.Compact(out)
}

func keepKnown(codes, known []string) []string {
	if known == nil || codes == nil {
		return codes
	}
	out := make([]string, 0, len(codes))
	for _, c := range codes {
		if slices.Contains(known, c) {
			out = append(out, c)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func utc(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := t.UTC()
	return &v
}

func timeEqual(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(*b)
}
