package service

import (
	"github.com/mtlprog/proposedesk/internal/config"
	"github.com/mtlprog/proposedesk/internal/domain"
)

// BoardColumnView is a kanban column with the proposes it holds.
type BoardColumnView struct {
	ID       string
	Title    string
	Status   string
	Proposes []domain.Propose
}

// GroupBoard distributes proposes over the catalog's columns, keeping the
// column order and the order of proposes within the page. Proposes whose
// status has no column go to the default column.
func GroupBoard(catalog *config.Catalog, proposes []domain.Propose) []BoardColumnView {
	columns := make([]BoardColumnView, len(catalog.Board.Columns))
	index := make(map[string]int, len(columns))
	for i, col := range catalog.Board.Columns {
		columns[i] = BoardColumnView{
			ID:       col.ID,
			Title:    col.Title,
			Status:   col.Status,
			Proposes: []domain.Propose{},
		}
		index[col.ID] = i
	}

	for _, p := range proposes {
		i := index[catalog.ColumnForStatus(string(p.Status)).ID]
		columns[i].Proposes = append(columns[i].Proposes, p)
	}

	return columns
}
