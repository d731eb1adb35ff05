package service_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mtlprog/proposedesk/internal/domain"
	"github.com/mtlprog/proposedesk/internal/listquery"
	"github.com/mtlprog/proposedesk/internal/service"
)

func TestNewPageControls(t *testing.T) {
	cases := []struct {
		name       string
		pagination domain.Pagination
		links      []int
	}{
		{"first of many", domain.Pagination{CurrentPage: 1, TotalPages: 10, HasNextPage: true}, []int{1, 2, 3}},
		{"middle", domain.Pagination{CurrentPage: 5, TotalPages: 10, HasNextPage: true, HasPreviousPage: true}, []int{1, 2, 3, 4, 5, 6, 7}},
		{"near end", domain.Pagination{CurrentPage: 9, TotalPages: 10, HasNextPage: true, HasPreviousPage: true}, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}},
		{"empty result", domain.Pagination{CurrentPage: 1, TotalPages: 0}, []int{}},
		{"beyond end", domain.Pagination{CurrentPage: 40, TotalPages: 2, HasPreviousPage: true}, []int{1, 2}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			controls := service.NewPageControls(tc.pagination)

			assert.Equal(t, tc.links, controls.Links)
			assert.Equal(t, tc.pagination.HasNextPage, controls.NextEnabled)
			assert.Equal(t, tc.pagination.HasPreviousPage, controls.PreviousEnabled)
		})
	}
}

func TestGroupBoard(t *testing.T) {
	catalog := mustCatalog(t)
	proposes := []domain.Propose{
		{ID: 1, Status: domain.ProposeStatusInProgress},
		{ID: 2, Status: domain.ProposeStatusRefused},
		{ID: 3, Status: domain.ProposeStatusAccepted},
		{ID: 4, Status: domain.ProposeStatusRefused},
		{ID: 5, Status: domain.ProposeStatusDelivered},
	}

	columns := service.GroupBoard(catalog, proposes)

	byID := map[string][]int64{}
	for _, col := range columns {
		for _, p := range col.Proposes {
			byID[col.ID] = append(byID[col.ID], p.ID)
		}
	}
	assert.Equal(t, []int64{1, 3}, byID["progress"], "statuses without a column fall back to progress")
	assert.Equal(t, []int64{2, 4}, byID["cancelled"])
	assert.Equal(t, []int64{5}, byID["completed"])
	assert.NotNil(t, columns[1].Proposes, "empty columns render as empty lists")
}

func TestValidator_ValidateFilters(t *testing.T) {
	v := service.NewValidator(mustCatalog(t))
	early := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	late := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

	valid := []listquery.FilterFields{
		{},
		{ProposeStatus: &[]string{"A", "R"}},
		{InspectionStatus: &[]string{"B"}},
		{ProposeStatus: &[]string{}},
		{AssigneeID: ptr("42")},
		{AssigneeID: ptr("")},
		{ProposeDate: &listquery.DateRange{From: &early, To: &late}},
		{InspectionDate: &listquery.DateRange{From: &late}},
	}
	for _, f := range valid {
		assert.NoError(t, v.ValidateFilters(f))
	}

	invalid := map[error]listquery.FilterFields{
		domain.ErrUnknownStatus:   {InspectionStatus: &[]string{"Z"}},
		domain.ErrInvalidAssignee: {AssigneeID: ptr("joao")},
		domain.ErrInvalidRange:    {ProposeDate: &listquery.DateRange{From: &late, To: &early}},
	}
	for want, f := range invalid {
		assert.ErrorIs(t, v.ValidateFilters(f), want)
	}
}

func TestValidator_ValidateColumn(t *testing.T) {
	v := service.NewValidator(mustCatalog(t))

	col, err := v.ValidateColumn("makeReport")
	assert.NoError(t, err)
	assert.Equal(t, "M", col.Status)

	_, err = v.ValidateColumn("")
	assert.ErrorIs(t, err, domain.ErrUnknownColumn)

	assert.ErrorIs(t, v.ValidateView("calendar"), domain.ErrUnknownView)
	assert.NoError(t, v.ValidateView(domain.ViewBoard))
}

func ptr[T any](v T) *T {
	return &v
}
