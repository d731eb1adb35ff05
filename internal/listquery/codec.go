package listquery

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"time"
)

// Wire keys shared by the persisted blob and the outbound list-fetch query.
const (
	KeyPage               = "page"
	KeySearchTerm         = "searchTerm"
	KeyProposeStatus      = "proposeStatus"
	KeyInspectionStatus   = "inspectionStatus"
	KeyAssignee           = "userInfoIdUser"
	KeyProposeDateFrom    = "proposeDateFrom"
	KeyProposeDateTo      = "proposeDateTo"
	KeyInspectionDateFrom = "inspectionDateFrom"
	KeyInspectionDateTo   = "inspectionDateTo"
)

// timeLayout is the ISO-8601 form used on the wire; values are always UTC.
const timeLayout = time.RFC3339Nano

// persistedState is the JSON shape of a State. Empty fields are omitted so
// the blob never distinguishes "explicitly empty" from "not provided".
type persistedState struct {
	Page               int        `json:"page"`
	SearchTerm         string     `json:"searchTerm,omitempty"`
	ProposeStatus      []string   `json:"proposeStatus,omitempty"`
	InspectionStatus   []string   `json:"inspectionStatus,omitempty"`
	UserInfoIDUser     string     `json:"userInfoIdUser,omitempty"`
	ProposeDateFrom    *time.Time `json:"proposeDateFrom,omitempty"`
	ProposeDateTo      *time.Time `json:"proposeDateTo,omitempty"`
	InspectionDateFrom *time.Time `json:"inspectionDateFrom,omitempty"`
	InspectionDateTo   *time.Time `json:"inspectionDateTo,omitempty"`
}

// MarshalJSON encodes the state with the wire keys.
func (s State) MarshalJSON() ([]byte, error) {
	n := s.normalized()
	return json.Marshal(persistedState{
		Page:               n.Page,
		SearchTerm:         n.SearchTerm,
		ProposeStatus:      n.ProposeStatus,
		InspectionStatus:   n.InspectionStatus,
		UserInfoIDUser:     n.AssigneeID,
		ProposeDateFrom:    n.ProposeDate.From,
		ProposeDateTo:      n.ProposeDate.To,
		InspectionDateFrom: n.InspectionDate.From,
		InspectionDateTo:   n.InspectionDate.To,
	})
}

// UnmarshalJSON decodes a blob written by MarshalJSON. Wrong types are an
// error; a missing or non-positive page becomes the first page.
func (s *State) UnmarshalJSON(data []byte) error {
	var p persistedState
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*s = State{
		Page:             p.Page,
		SearchTerm:       p.SearchTerm,
		ProposeStatus:    p.ProposeStatus,
		InspectionStatus: p.InspectionStatus,
		AssigneeID:       p.UserInfoIDUser,
		ProposeDate:      DateRange{From: p.ProposeDateFrom, To: p.ProposeDateTo},
		InspectionDate:   DateRange{From: p.InspectionDateFrom, To: p.InspectionDateTo},
	}.normalized()
	return nil
}

// Encode serializes the state for the store.
func Encode(s State) ([]byte, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("encode list query state: %w", err)
	}
	return data, nil
}

// Decode parses a stored blob. Callers that must not fail fall back to
// Default on error.
func Decode(data []byte) (State, error) {
	var s State
	if err := json.Unmarshal(data, &s); err != nil {
		return Default(), fmt.Errorf("decode list query state: %w", err)
	}
	return s, nil
}

// QueryParams flattens the state into the list-fetch query. Empty search,
// empty status sets, an absent assignee and absent range bounds are omitted.
func (s State) QueryParams() url.Values {
	n := s.normalized()
	v := url.Values{}
	v.Set(KeyPage, strconv.Itoa(n.Page))
	if n.SearchTerm != "" {
		v.Set(KeySearchTerm, n.SearchTerm)
	}
	setCodes(v, KeyProposeStatus, n.ProposeStatus)
	setCodes(v, KeyInspectionStatus, n.InspectionStatus)
	if n.AssigneeID != "" {
		v.Set(KeyAssignee, n.AssigneeID)
	}
	setTime(v, KeyProposeDateFrom, n.ProposeDate.From)
	setTime(v, KeyProposeDateTo, n.ProposeDate.To)
	setTime(v, KeyInspectionDateFrom, n.InspectionDate.From)
	setTime(v, KeyInspectionDateTo, n.InspectionDate.To)
	return v
}

// FromQueryParams rebuilds a state from its flat form. It is lenient: a
// value that does not parse is dropped instead of failing the whole state.
func FromQueryParams(v url.Values) State {
	s := Default()
	if page, err := strconv.Atoi(v.Get(KeyPage)); err == nil {
		s.Page = page
	}
	s.SearchTerm = v.Get(KeySearchTerm)
	s.ProposeStatus = parseCodes(v.Get(KeyProposeStatus))
	s.InspectionStatus = parseCodes(v.Get(KeyInspectionStatus))
	s.AssigneeID = v.Get(KeyAssignee)
	s.ProposeDate = DateRange{From: parseTime(v.Get(KeyProposeDateFrom)), To: parseTime(v.Get(KeyProposeDateTo))}
	s.InspectionDate = DateRange{From: parseTime(v.Get(KeyInspectionDateFrom)), To: parseTime(v.Get(KeyInspectionDateTo))}
	return s.normalized()
}

// CacheKey is a canonical string for the state: equal states give equal keys.
func (s State) CacheKey() string {
	return s.QueryParams().Encode()
}

func setCodes(v url.Values, key string, codes []string) {
	if len(codes) == 0 {
		return
	}
	// A []string always marshals.
	data, _ := json.Marshal(codes)
	v.Set(key, string(data))
}

func setTime(v url.Values, key string, t *time.Time) {
	if t == nil {
		return
	}
	v.Set(key, t.UTC().Format(timeLayout))
}

func parseCodes(raw string) []string {
	if raw == "" {
		return nil
	}
	var codes []string
	if err := json.Unmarshal([]byte(raw), &codes); err != nil {
		return nil
	}
	return codes
}

func parseTime(raw string) *time.Time {
	if raw == "" {
		return nil
	}
	t, err := time.Parse(timeLayout, raw)
	if err != nil {
		return nil
	}
	return &t
}
