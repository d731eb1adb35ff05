package domain

import "time"

// ProposeStatus is the short status code attached to a propose.
type ProposeStatus string

const (
	ProposeStatusAccepted    ProposeStatus = "A"
	ProposeStatusRefused     ProposeStatus = "R"
	ProposeStatusCompleted   ProposeStatus = "C"
	ProposeStatusInProgress  ProposeStatus = "P"
	ProposeStatusMakeReport  ProposeStatus = "M"
	ProposeStatusReschedule  ProposeStatus = "T"
	ProposeStatusProblemDocs ProposeStatus = "D"
	ProposeStatusDelivered   ProposeStatus = "F"
)

// InspectionStatus is the short status code attached to an inspection.
type InspectionStatus string

const (
	InspectionStatusInProgress  InspectionStatus = "P"
	InspectionStatusMakeReport  InspectionStatus = "B"
	InspectionStatusReschedule  InspectionStatus = "R"
	InspectionStatusCancelled   InspectionStatus = "C"
	InspectionStatusProblemDocs InspectionStatus = "E"
	InspectionStatusDelivered   InspectionStatus = "F"
)

// Propose is a property-appraisal service request as returned by the REST API.
type Propose struct {
	ID             int64              `json:"idProposes"`
	Title          string             `json:"proposeTitle"`
	ResType        string             `json:"proposeResType"`
	Cep            string             `json:"proposeCep"`
	Address        string             `json:"proposeAddress"`
	Date           *time.Time         `json:"proposeDate"`
	Description    string             `json:"proposeDescription"`
	Status         ProposeStatus      `json:"proposeStatus"`
	UserInfoIDUser int64              `json:"userInfoIdUser"`
	AdditionalInfo *ProposeAdditional `json:"proposeAdditionalInfo,omitempty"`
	Inspection     *Inspection        `json:"inspections,omitempty"`
	User           *User              `json:"user,omitempty"`
	UserSupplier   *User              `json:"userSupplier,omitempty"`
}

// ProposeAdditional holds the client and location details of a propose.
type ProposeAdditional struct {
	ProposeNumber string `json:"proposesAddProposeNumber"`
	ClientName    string `json:"proposeAddClientName"`
	City          string `json:"proposeAddCity"`
	UF            string `json:"proposeAddUf"`
	Neighborhood  string `json:"proposeAddNeighborhood"`
	Priority      bool   `json:"proposeAddPriority"`
	Color         string `json:"proposeAddColor"`
}

// Inspection is the on-site visit record associated with a propose.
type Inspection struct {
	ID     int64            `json:"id_inspection"`
	Date   *time.Time       `json:"inspectionDate"`
	Status InspectionStatus `json:"inspectionStatus"`
	UserID int64            `json:"userId"`
}

// Pagination describes the page returned by the list endpoint.
type Pagination struct {
	CurrentPage     int  `json:"currentPage"`
	PageSize        int  `json:"pageSize"`
	TotalProposes   int  `json:"totalProposes"`
	TotalPages      int  `json:"totalPages"`
	HasNextPage     bool `json:"hasNextPage"`
	HasPreviousPage bool `json:"hasPreviousPage"`
}

// ProposePage is one page of proposes plus its pagination descriptor.
// A page past the end has no proposes and is still a valid page.
type ProposePage struct {
	Proposes   []Propose  `json:"proposes"`
	Pagination Pagination `json:"pagination"`
}

// IsEmpty reports whether the page carries no proposes.
func (p *ProposePage) IsEmpty() bool {
	return len(p.Proposes) == 0
}

// InspectionStatusCode returns the inspection status or "" when there is no inspection yet.
func (p *Propose) InspectionStatusCode() InspectionStatus {
	if p.Inspection == nil {
		return ""
	}
	return p.Inspection.Status
}

// ClientName returns the client name from the additional info, if present.
func (p *Propose) ClientName() string {
	if p.AdditionalInfo == nil {
		return ""
	}
	return p.AdditionalInfo.ClientName
}
