package dto

import (
	"time"

	"github.com/mtlprog/proposedesk/internal/listquery"
)

// MovePageRequest represents the request body for PUT /views/{view}/page.
type MovePageRequest struct {
	Page *int `json:"page"`
}

// DateRangeRequest is an optional date interval; either bound may be omitted.
type DateRangeRequest struct {
	From *time.Time `json:"from,omitempty"`
	To   *time.Time `json:"to,omitempty"`
}

// UpdateFiltersRequest represents the request body for PATCH /views/{view}/filters.
// Omitted or null fields are left untouched; an empty list, an empty string or
// an empty range clears that filter.
type UpdateFiltersRequest struct {
	ProposeStatus    *[]string         `json:"proposeStatus,omitempty"`
	InspectionStatus *[]string         `json:"inspectionStatus,omitempty"`
	AssigneeID       *string           `json:"userInfoIdUser,omitempty"`
	ProposeDate      *DateRangeRequest `json:"proposeDate,omitempty"`
	InspectionDate   *DateRangeRequest `json:"inspectionDate,omitempty"`
}

// ToFilterFields converts the request to a partial filter update.
func (r UpdateFiltersRequest) ToFilterFields() listquery.FilterFields {
	return listquery.FilterFields{
		ProposeStatus:    r.ProposeStatus,
		InspectionStatus: r.InspectionStatus,
		AssigneeID:       r.AssigneeID,
		ProposeDate:      r.ProposeDate.toRange(),
		InspectionDate:   r.InspectionDate.toRange(),
	}
}

func (r *DateRangeRequest) toRange() *listquery.DateRange {
	if r == nil {
		return nil
	}
	return &listquery.DateRange{From: r.From, To: r.To}
}

// SearchRequest represents the request body for PUT /views/{view}/search.
type SearchRequest struct {
	Term   string `json:"term"`
	Commit bool   `json:"commit"`
}

// MoveProposeRequest represents the request body for POST /proposes/{id}/move.
type MoveProposeRequest struct {
	Column string `json:"column"`
}

// NotifyUserRequest represents the request body for POST /users/{id}/notifications.
type NotifyUserRequest struct {
	Message string `json:"message"`
}
