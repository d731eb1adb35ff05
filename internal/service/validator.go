package service

import (
	"fmt"
	"slices"
	"strings"

	"github.com/mtlprog/proposedesk/internal/config"
	"github.com/mtlprog/proposedesk/internal/domain"
	"github.com/mtlprog/proposedesk/internal/listquery"
)

// Validator checks client input against the status catalog before it reaches
// the list-query state.
type Validator struct {
	catalog *config.Catalog
}

// NewValidator creates a new Validator.
func NewValidator(catalog *config.Catalog) *Validator {
	return &Validator{catalog: catalog}
}

// ValidateView rejects views that have no list surface.
func (v *Validator) ValidateView(view domain.View) error {
	if !view.IsValid() {
		return fmt.Errorf("%w: %q", domain.ErrUnknownView, view)
	}
	return nil
}

// ValidateProposeView rejects views that do not page through proposes.
func (v *Validator) ValidateProposeView(view domain.View) error {
	if err := v.ValidateView(view); err != nil {
		return err
	}
	if !view.ListsProposes() {
		return fmt.Errorf("%w: %q does not list proposes", domain.ErrUnknownView, view)
	}
	return nil
}

// ValidateFilters rejects unknown status codes, non-numeric assignees and
// ranges whose lower bound is after the upper one.
func (v *Validator) ValidateFilters(f listquery.FilterFields) error {
	known := v.catalog.KnownCodes()

	if f.ProposeStatus != nil {
		if err := checkCodes("proposeStatus", *f.ProposeStatus, known.Propose); err != nil {
			return err
		}
	}
	if f.InspectionStatus != nil {
		if err := checkCodes("inspectionStatus", *f.InspectionStatus, known.Inspection); err != nil {
			return err
		}
	}

	if f.AssigneeID != nil {
		if id := strings.TrimSpace(*f.AssigneeID); id != "" && strings.Trim(id, "0123456789") != "" {
			return fmt.Errorf("%w: %q", domain.ErrInvalidAssignee, id)
		}
	}

	if f.ProposeDate != nil {
		if err := checkRange("proposeDate", *f.ProposeDate); err != nil {
			return err
		}
	}
	if f.InspectionDate != nil {
		if err := checkRange("inspectionDate", *f.InspectionDate); err != nil {
			return err
		}
	}

	return nil
}

// ValidateColumn resolves a kanban column id.
func (v *Validator) ValidateColumn(id string) (config.BoardColumn, error) {
	col, ok := v.catalog.Column(id)
	if !ok {
		return config.BoardColumn{}, fmt.Errorf("%w: %q", domain.ErrUnknownColumn, id)
	}
	return col, nil
}

func checkCodes(field string, codes, known []string) error {
	for _, code := range codes {
		if !slices.Contains(known, strings.TrimSpace(code)) {
			return fmt.Errorf("%w: %s %q", domain.ErrUnknownStatus, field, code)
		}
	}
	return nil
}

func checkRange(field string, r listquery.DateRange) error {
	if r.From != nil && r.To != nil && r.From.After(*r.To) {
		return fmt.Errorf("%w: %s from %s is after to %s",
			domain.ErrInvalidRange, field, r.From.Format("2006-01-02"), r.To.Format("2006-01-02"))
	}
	return nil
}
