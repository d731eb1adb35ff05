package dto

import (
	"net/url"
	"time"

	"github.com/mtlprog/proposedesk/internal/config"
	"github.com/mtlprog/proposedesk/internal/domain"
	"github.com/mtlprog/proposedesk/internal/listquery"
	"github.com/mtlprog/proposedesk/internal/service"
)

// DateRange is a date interval in a response.
type DateRange struct {
	From *time.Time `json:"from,omitempty"`
	To   *time.Time `json:"to,omitempty"`
}

// QueryState is the list-query state using the upstream wire keys.
type QueryState struct {
	Page             int        `json:"page"`
	SearchTerm       string     `json:"searchTerm"`
	ProposeStatus    []string   `json:"proposeStatus"`
	InspectionStatus []string   `json:"inspectionStatus"`
	AssigneeID       string     `json:"userInfoIdUser"`
	ProposeDate      *DateRange `json:"proposeDate,omitempty"`
	InspectionDate   *DateRange `json:"inspectionDate,omitempty"`
}

// StateResponse is returned by every state transition.
type StateResponse struct {
	View          string            `json:"view"`
	State         QueryState        `json:"state"`
	Query         map[string]string `json:"query"`
	SearchPending bool              `json:"search_pending"`
	PendingTerm   string            `json:"pending_search_term,omitempty"`
}

// ProposeListResponse is one page of proposes with its pagination controls.
type ProposeListResponse struct {
	View       string               `json:"view"`
	State      QueryState           `json:"state"`
	Proposes   []domain.Propose     `json:"proposes"`
	Pagination domain.Pagination    `json:"pagination"`
	Controls   service.PageControls `json:"controls"`
	FetchedAt  time.Time            `json:"fetched_at"`
}

// BoardColumn is a kanban column with its cards.
type BoardColumn struct {
	ID       string           `json:"id"`
	Title    string           `json:"title"`
	Status   string           `json:"status"`
	Count    int              `json:"count"`
	Proposes []domain.Propose `json:"proposes"`
}

// BoardResponse is one page of proposes grouped into kanban columns.
type BoardResponse struct {
	View      string               `json:"view"`
	State     QueryState           `json:"state"`
	Columns   []BoardColumn        `json:"columns"`
	Controls  service.PageControls `json:"controls"`
	FetchedAt time.Time            `json:"fetched_at"`
}

// SuppliersResponse lists assignable users.
type SuppliersResponse struct {
	Suppliers []domain.User `json:"suppliers"`
}

// UserListResponse is one page of the user directory.
type UserListResponse struct {
	State      QueryState           `json:"state"`
	Users      []domain.User        `json:"users"`
	Pagination domain.Pagination    `json:"pagination"`
	Controls   service.PageControls `json:"controls"`
	FetchedAt  time.Time            `json:"fetched_at"`
}

// NotificationsResponse lists notifications, newest first.
type NotificationsResponse struct {
	Notifications []domain.Notification `json:"notifications"`
	Unread        int                   `json:"unread"`
}

// MoveProposeResponse confirms a kanban move.
type MoveProposeResponse struct {
	ProposeID int64  `json:"propose_id"`
	Column    string `json:"column"`
	Status    string `json:"status"`
}

// CatalogResponse lists status codes and kanban columns.
type CatalogResponse struct {
	ProposeStatuses    []config.StatusOption `json:"propose_statuses"`
	InspectionStatuses []config.StatusOption `json:"inspection_statuses"`
	DefaultColumn      string                `json:"default_column"`
	Columns            []config.BoardColumn  `json:"columns"`
}

// ToQueryState converts a state to its response form.
func ToQueryState(s listquery.State) QueryState {
	return QueryState{
		Page:             s.Page,
		SearchTerm:       s.SearchTerm,
		ProposeStatus:    nonNil(s.ProposeStatus),
		InspectionStatus: nonNil(s.InspectionStatus),
		AssigneeID:       s.AssigneeID,
		ProposeDate:      toDateRange(s.ProposeDate),
		InspectionDate:   toDateRange(s.InspectionDate),
	}
}

// ToStateResponse converts a service state result.
func ToStateResponse(res *service.StateResult) StateResponse {
	return StateResponse{
		View:          string(res.View),
		State:         ToQueryState(res.State),
		Query:         flatten(res.Query),
		SearchPending: res.SearchPending,
		PendingTerm:   res.PendingSearch,
	}
}

// ToProposeListResponse converts a service list result.
func ToProposeListResponse(res *service.ListResult) ProposeListResponse {
	proposes := res.Page.Proposes
	if proposes == nil {
		proposes = []domain.Propose{}
	}
	return ProposeListResponse{
		View:       string(res.View),
		State:      ToQueryState(res.State),
		Proposes:   proposes,
		Pagination: res.Page.Pagination,
		Controls:   res.Controls,
		FetchedAt:  res.FetchedAt,
	}
}

// ToBoardResponse converts a service board result.
func ToBoardResponse(res *service.BoardResult) BoardResponse {
	columns := make([]BoardColumn, len(res.Columns))
	for i, col := range res.Columns {
		columns[i] = BoardColumn{
			ID:       col.ID,
			Title:    col.Title,
			Status:   col.Status,
			Count:    len(col.Proposes),
			Proposes: col.Proposes,
		}
	}
	return BoardResponse{
		View:      string(res.View),
		State:     ToQueryState(res.State),
		Columns:   columns,
		Controls:  res.Controls,
		FetchedAt: res.FetchedAt,
	}
}

// ToCatalogResponse converts the status catalog.
func ToCatalogResponse(c *config.Catalog) CatalogResponse {
	return CatalogResponse{
		ProposeStatuses:    c.ProposeStatuses,
		InspectionStatuses: c.InspectionStatuses,
		DefaultColumn:      c.Board.DefaultColumn,
		Columns:            c.Board.Columns,
	}
}

func toDateRange(r listquery.DateRange) *DateRange {
	if r.IsZero() {
		return nil
	}
	return &DateRange{From: r.From, To: r.To}
}

func nonNil(codes []string) []string {
	if codes == nil {
		return []string{}
	}
	return codes
}

func flatten(v url.Values) map[string]string {
	out := make(map[string]string, len(v))
	for k := range v {
		out[k] = v.Get(k)
	}
	return out
}

// ToUserListResponse converts a service directory result.
func ToUserListResponse(res *service.UserListResult) UserListResponse {
	return UserListResponse{
		State:      ToQueryState(res.State),
		Users:      res.Page.Users,
		Pagination: res.Page.Pagination,
		Controls:   res.Controls,
		FetchedAt:  res.FetchedAt,
	}
}

// ToNotificationsResponse counts the unread entries of list.
func ToNotificationsResponse(list []domain.Notification) NotificationsResponse {
	if list == nil {
		list = []domain.Notification{}
	}
	resp := NotificationsResponse{Notifications: list}
	for i := range list {
		if list[i].Unread() {
			resp.Unread++
		}
	}
	return resp
}
