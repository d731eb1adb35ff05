package config

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/mtlprog/proposedesk/internal/listquery"
	"github.com/mtlprog/proposedesk/internal/static"
)

// StatusOption is a status code with its display label.
type StatusOption struct {
	Code  string `yaml:"code" json:"code"`
	Label string `yaml:"label" json:"label"`
}

// BoardColumn is one kanban column and the propose status it represents.
type BoardColumn struct {
	ID     string `yaml:"id" json:"id"`
	Title  string `yaml:"title" json:"title"`
	Status string `yaml:"status" json:"status"`
}

// Board is the ordered kanban layout.
type Board struct {
	DefaultColumn string        `yaml:"default_column" json:"default_column"`
	Columns       []BoardColumn `yaml:"columns" json:"columns"`
}

// Catalog lists the status codes the list filters accept and the kanban layout.
type Catalog struct {
	ProposeStatuses    []StatusOption `yaml:"propose_statuses" json:"propose_statuses"`
	InspectionStatuses []StatusOption `yaml:"inspection_statuses" json:"inspection_statuses"`
	Board              Board          `yaml:"board" json:"board"`
}

// LoadCatalog reads the catalog at path, or the embedded default when path is empty.
func LoadCatalog(path string) (*Catalog, error) {
	if path == "" {
		return ParseCatalog(static.CatalogYAML)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	return ParseCatalog(data)
}

// ParseCatalog decodes and validates a YAML catalog.
func ParseCatalog(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}
	return &c, nil
}

func (c *Catalog) validate() error {
	if len(c.ProposeStatuses) == 0 {
		return errors.New("propose_statuses is empty")
	}
	if len(c.InspectionStatuses) == 0 {
		return errors.New("inspection_statuses is empty")
	}
	if len(c.Board.Columns) == 0 {
		return errors.New("board has no columns")
	}

	seen := make(map[string]bool, len(c.Board.Columns))
	for _, col := range c.Board.Columns {
		if col.ID == "" {
			return errors.New("board column without id")
		}
		if seen[col.ID] {
			return fmt.Errorf("duplicate board column %q", col.ID)
		}
		seen[col.ID] = true
		if !slices.Contains(codes(c.ProposeStatuses), col.Status) {
			return fmt.Errorf("board column %q uses unknown status %q", col.ID, col.Status)
		}
	}
	if !seen[c.Board.DefaultColumn] {
		return fmt.Errorf("default_column %q is not a board column", c.Board.DefaultColumn)
	}
	return nil
}

// KnownCodes returns the codes accepted by the status filters.
func (c *Catalog) KnownCodes() listquery.KnownCodes {
	return listquery.KnownCodes{
		Propose:    codes(c.ProposeStatuses),
		Inspection: codes(c.InspectionStatuses),
	}
}

// Column returns the board column with the given id.
func (c *Catalog) Column(id string) (BoardColumn, bool) {
	for _, col := range c.Board.Columns {
		if col.ID == id {
			return col, true
		}
	}
	return BoardColumn{}, false
}

// ColumnForStatus returns the column a propose status belongs to; unknown
// statuses land in the default column.
func (c *Catalog) ColumnForStatus(status string) BoardColumn {
	for _, col := range c.Board.Columns {
		if col.Status == status {
			return col
		}
	}
	col, _ := c.Column(c.Board.DefaultColumn)
	return col
}

// ProposeLabel returns the display label of a propose status code.
func (c *Catalog) ProposeLabel(code string) string {
	return label(c.ProposeStatuses, code)
}

// InspectionLabel returns the display label of an inspection status code.
func (c *Catalog) InspectionLabel(code string) string {
	return label(c.InspectionStatuses, code)
}

func codes(options []StatusOption) []string {
	out := make([]string, len(options))
	for i, o := range options {
		out[i] = o.Code
	}
	return out
}

func label(options []StatusOption, code string) string {
	for _, o := range options {
		if o.Code == code {
			return o.Label
		}
	}
	return code
}
